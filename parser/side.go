package parser

import (
	"regexp"
	"strings"

	"showdown-calcbot/game"
)

var (
	reAbility = regexp.MustCompile(`\(([^()]*)\)`)
	reParens  = regexp.MustCompile(`\([^()]*\)`)
	reSlash   = regexp.MustCompile(`\s*/\s*`)
)

// ParseSide reads one combatant, e.g. "+1 252+ Atk Garchomp (Rough Skin) @ Choice Band".
func ParseSide(text string) (game.Side, error) {
	side := game.Side{}

	// Signs are read before anything is stripped.
	side.Nature, side.NatureInferred = InferNature(ScanNatureMarkers(text))

	if m := reAbility.FindStringSubmatch(text); m != nil {
		side.Ability = strings.TrimSpace(m[1])
	}

	for _, tok := range scanStatTokens(text) {
		if tok.boost != nil && tok.stat != game.HP {
			if side.Boosts == nil {
				side.Boosts = make(map[game.Stat]int)
			}
			side.Boosts[tok.stat] = *tok.boost
		}
		if tok.evs != nil {
			if side.EVs == nil {
				side.EVs = make(map[game.Stat]int)
			}
			side.EVs[tok.stat] = *tok.evs
		}
	}

	name, item, _ := strings.Cut(StripSide(text), "@")
	side.Name = strings.TrimSpace(name)
	side.Item = strings.TrimSpace(item)
	if side.Name == "" {
		return game.Side{}, ErrEmptyName
	}
	return side, nil
}

// StripSide removes stat tokens, parenthesized groups and "/" separators. Applying it
// twice gives the same result as applying it once.
func StripSide(text string) string {
	for reParens.MatchString(text) {
		text = reParens.ReplaceAllString(text, " ")
	}
	text = reStatToken.ReplaceAllString(text, " ")
	text = reSlash.ReplaceAllString(text, " ")
	return collapseSpaces(text)
}
