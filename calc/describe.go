package calc

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"showdown-calcbot/game"
)

// Describer renders a scenario the way the Showdown damage calculator prints its
// description line.
type Describer struct{}

func (Describer) Calculate(ctx context.Context, s *game.Scenario) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Describe(s), nil
}

func Describe(s *game.Scenario) string {
	var sb strings.Builder

	sb.WriteString(describeSide(s.Attacker))
	sb.WriteString(" ")
	sb.WriteString(s.Move)
	sb.WriteString(" vs. ")
	sb.WriteString(describeSide(s.Defender))
	if f := describeField(s.Field); f != "" {
		sb.WriteString(" ")
		sb.WriteString(f)
	}

	var notes []string
	for _, side := range []game.Side{s.Attacker, s.Defender} {
		if side.NatureInferred {
			notes = append(notes, fmt.Sprintf("%s nature assumed for %s", side.Nature, side.Name))
		}
	}
	if len(notes) > 0 {
		sb.WriteString(" (" + strings.Join(notes, "; ") + ")")
	}
	return sb.String()
}

func describeSide(side game.Side) string {
	raised, lowered, _ := side.Nature.Modifiers()

	stats := lo.FilterMap(game.Stats, func(stat game.Stat, _ int) (string, bool) {
		ev, hasEV := side.EVs[stat]
		boost := side.Boosts[stat]
		if !hasEV && boost == 0 {
			return "", false
		}
		var sb strings.Builder
		if boost != 0 {
			sb.WriteString(fmt.Sprintf("%+d ", boost))
		}
		if hasEV {
			sb.WriteString(fmt.Sprintf("%d", ev))
			switch stat {
			case raised:
				sb.WriteString("+")
			case lowered:
				sb.WriteString("-")
			}
			sb.WriteString(" ")
		}
		sb.WriteString(stat.Label())
		return sb.String(), true
	})

	parts := make([]string, 0, 4)
	if len(stats) > 0 {
		parts = append(parts, strings.Join(stats, " / "))
	}
	parts = lo.Compact(append(parts, side.Ability, side.Item, side.Name))
	return strings.Join(parts, " ")
}

func describeField(f game.Field) string {
	var parts []string
	if f.Weather != "" {
		parts = append(parts, "in "+string(f.Weather))
	}
	if f.Terrain != "" {
		parts = append(parts, "on "+string(f.Terrain)+" Terrain")
	}
	switch {
	case f.DefenderSide.IsReflect:
		parts = append(parts, "through Reflect")
	case f.DefenderSide.IsLightScreen:
		parts = append(parts, "through Light Screen")
	case f.DefenderSide.IsAuroraVeil:
		parts = append(parts, "through Aurora Veil")
	}
	if f.DefenderSide.IsStealthRock {
		parts = append(parts, "with Stealth Rock")
	}
	switch n := f.DefenderSide.Spikes; {
	case n == 1:
		parts = append(parts, "with 1 layer of Spikes")
	case n > 1:
		parts = append(parts, fmt.Sprintf("with %d layers of Spikes", n))
	}
	if f.IsGravity {
		parts = append(parts, "under Gravity")
	}
	return strings.Join(parts, " ")
}
