package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"showdown-calcbot/calc"
	"showdown-calcbot/game"
	"showdown-calcbot/parser"
)

var errSomeLinesFailed = errors.New("some lines could not be parsed")

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [scenario...]",
		Short: "Parse a calc line (or one per stdin line) and print the request",
		Example: `  calcbot parse "252+ Atk Garchomp @ Choice Band using Earthquake vs 252 HP / 4 Def Toxapex in Sand"
  calcbot parse --format json < scenarios.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := writerFor(format)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return parseLines(cmd.OutOrStdout(), cmd.ErrOrStderr(), []string{strings.Join(args, " ")}, write)
			}

			var lines []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					lines = append(lines, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return parseLines(cmd.OutOrStdout(), cmd.ErrOrStderr(), lines, write)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml, json or text")
	return cmd
}

type scenarioWriter func(w io.Writer, s *game.Scenario) error

func writerFor(format string) (scenarioWriter, error) {
	switch strings.ToLower(format) {
	case "yaml":
		return func(w io.Writer, s *game.Scenario) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(s); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	case "json":
		return func(w io.Writer, s *game.Scenario) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}, nil
	case "text":
		return func(w io.Writer, s *game.Scenario) error {
			_, err := fmt.Fprintln(w, calc.Describe(s))
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func parseLines(out, errOut io.Writer, lines []string, write scenarioWriter) error {
	failed := 0
	for _, line := range lines {
		s, err := parser.ParseScenario(line)
		if err != nil {
			failed++
			fmt.Fprintf(errOut, "%q: %v\n", line, err)
			continue
		}
		if err := write(out, s); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", errSomeLinesFailed, failed, len(lines))
	}
	return nil
}
