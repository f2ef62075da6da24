package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"showdown-calcbot/bot"
	"showdown-calcbot/calc"
)

func newListenCmd(a *app) *cobra.Command {
	var rooms []string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Connect to Showdown and answer calc commands in chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			sd := a.cfg.Showdown
			if len(rooms) > 0 {
				sd.Rooms = rooms
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b := bot.New(bot.Options{
				ServerURL: sd.ServerURL,
				LoginURL:  sd.ActionURL,
				Username:  sd.Username,
				Password:  sd.Password,
				Rooms:     sd.Rooms,
				Prefix:    a.cfg.Bot.Prefix,
			}, calc.Describer{}, a.logger)

			a.logger.Info("starting bot", zap.Strings("rooms", sd.Rooms), zap.String("prefix", a.cfg.Bot.Prefix))
			return b.Run(ctx)
		},
	}
	cmd.Flags().StringSliceVar(&rooms, "room", nil, "room to join (repeatable, overrides showdown.rooms)")
	return cmd
}
