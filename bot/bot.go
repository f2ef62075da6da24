// Package bot answers calc commands posted in Pokémon Showdown chat.
package bot

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"showdown-calcbot/calc"
	"showdown-calcbot/client"
	"showdown-calcbot/data"
	"showdown-calcbot/parser"
)

const usage = "Usage: %scalc <attacker> using <move> vs <defender>, e.g. " +
	"%scalc 252+ Atk Garchomp @ Choice Band using Earthquake vs 252 HP / 4 Def Toxapex in Sand with Stealth Rock"

type Options struct {
	ServerURL string
	LoginURL  string
	Username  string
	Password  string
	Rooms     []string
	Prefix    string
}

type Bot struct {
	opts   Options
	engine calc.Engine
	log    *zap.Logger
	http   *http.Client

	// self is the name the server last confirmed for this connection.
	self string
}

func New(opts Options, engine calc.Engine, log *zap.Logger) *Bot {
	if opts.Prefix == "" {
		opts.Prefix = "!"
	}
	return &Bot{
		opts:   opts,
		engine: engine,
		log:    log,
		http:   http.DefaultClient,
	}
}

func (b *Bot) Usage() string {
	return fmt.Sprintf(usage, b.opts.Prefix, b.opts.Prefix)
}

// Handle returns the reply to one chat or PM event. ok is false when the bot should
// stay quiet.
func (b *Bot) Handle(ctx context.Context, ev Event) (reply string, ok bool) {
	if ev.Kind != EventChat && ev.Kind != EventPM {
		return "", false
	}
	if ev.Backlog || (b.self != "" && data.ToID(ev.User) == data.ToID(b.self)) {
		return "", false
	}

	cmd, args, found := strings.Cut(strings.TrimSpace(ev.Text), " ")
	if !strings.HasPrefix(cmd, b.opts.Prefix) {
		return "", false
	}
	switch strings.ToLower(strings.TrimPrefix(cmd, b.opts.Prefix)) {
	case "calc":
		if !found {
			return b.Usage(), true
		}
		return b.calc(ctx, ev, args), true
	case "help":
		return b.Usage(), true
	default:
		return "", false
	}
}

func (b *Bot) calc(ctx context.Context, ev Event, line string) string {
	log := b.log.With(zap.String("room", ev.Room), zap.String("user", ev.User))

	sc, err := parser.ParseScenario(line)
	if err != nil {
		log.Info("unparseable calc", zap.String("line", line), zap.Error(err))
		return b.Usage()
	}
	sc = data.Canonicalize(sc)
	for _, name := range []string{sc.Attacker.Name, sc.Defender.Name} {
		if !data.KnownSpecies(name) {
			log.Warn("species not in dex", zap.String("species", name))
		}
	}

	result, err := b.engine.Calculate(ctx, sc)
	if err != nil {
		log.Error("calculation failed", zap.Error(err))
		return "Calculation failed for: " + calc.Describe(sc)
	}
	log.Debug("calc answered", zap.String("result", result))
	return result
}

// Run connects, joins the configured rooms and serves commands until ctx is done or
// the connection fails.
func (b *Bot) Run(ctx context.Context) error {
	sc, err := client.NewShowdownClient(ctx, b.opts.ServerURL, b.log)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		_ = sc.Close()
		return nil
	})
	g.Go(func() error {
		for {
			frame, err := sc.ReadMessage()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return err
			}
			for _, ev := range ParseFrame(frame) {
				if err := b.dispatch(gctx, sc, ev); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

func (b *Bot) dispatch(ctx context.Context, sc *client.ShowdownClient, ev Event) error {
	switch ev.Kind {
	case EventChallstr:
		return b.login(ctx, sc, ev.Text)
	case EventUpdateUser:
		b.self = ev.User
		b.log.Debug("user updated", zap.String("name", ev.User))
		return nil
	}

	reply, ok := b.Handle(ctx, ev)
	if !ok {
		return nil
	}
	var err error
	if ev.Kind == EventPM {
		err = sc.PM(ev.User, reply)
	} else {
		err = sc.Say(ev.Room, reply)
	}
	if err != nil {
		b.log.Error("reply failed", zap.String("room", ev.Room), zap.Error(err))
	}
	return nil
}

func (b *Bot) login(ctx context.Context, sc *client.ShowdownClient, challstr string) error {
	if b.opts.Username != "" && b.opts.Password != "" {
		assertion, err := client.Login(ctx, b.http, b.opts.LoginURL, b.opts.Username, b.opts.Password, challstr)
		if err != nil {
			return err
		}
		if err := sc.Rename(b.opts.Username, assertion); err != nil {
			return err
		}
		b.log.Info("logged in", zap.String("user", b.opts.Username))
	} else {
		b.log.Warn("no credentials configured, staying a guest; chat replies will be refused by the server")
	}

	for _, room := range b.opts.Rooms {
		if err := sc.JoinRoom(room); err != nil {
			return err
		}
		b.log.Info("joined room", zap.String("room", room))
	}
	return nil
}
