// Package parser turns one calc command line into a game.Scenario.
//
// The grammar is "<attacker> using <move> vs <defender>" with field conditions
// ("in Sand", "with Stealth Rock", ...) allowed anywhere in the line. Everything is a
// pure function of its input and safe to call from multiple goroutines.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"showdown-calcbot/game"
)

var (
	// ErrNoMatch means the line is not of the form "<attacker> using <move> vs <defender>".
	ErrNoMatch = errors.New("line does not match \"<attacker> using <move> vs <defender>\"")
	// ErrEmptyName means a side had no species left once modifiers were removed.
	ErrEmptyName = errors.New("empty species name")
)

var reScenario = regexp.MustCompile(`(?is)^\s*(.+?)\s+using\s+(.+?)\s+vs\.?\s+(.+?)\s*$`)

// ParseScenario parses a full calc line. On error the returned scenario is nil.
func ParseScenario(line string) (*game.Scenario, error) {
	field := ExtractField(line)
	cleaned := StripField(line)

	m := reScenario.FindStringSubmatch(cleaned)
	if m == nil {
		return nil, ErrNoMatch
	}

	attacker, err := ParseSide(m[1])
	if err != nil {
		return nil, fmt.Errorf("attacker: %w", err)
	}
	move := strings.TrimSpace(m[2])
	defender, err := ParseSide(m[3])
	if err != nil {
		return nil, fmt.Errorf("defender: %w", err)
	}

	return &game.Scenario{
		Attacker: attacker,
		Move:     move,
		Defender: defender,
		Field:    field,
	}, nil
}
