package parser

import (
	"regexp"
	"strconv"
	"strings"

	"showdown-calcbot/game"
)

var statAliases = map[string]game.Stat{
	"hp":  game.HP,
	"atk": game.Atk,
	"def": game.Def,
	"spa": game.SpA,
	"spd": game.SpD,
	"spe": game.Spe,
}

// ResolveStat maps a stat abbreviation (any case) to its key.
func ResolveStat(token string) (game.Stat, bool) {
	s, ok := statAliases[strings.ToLower(strings.TrimSpace(token))]
	return s, ok
}

// reStatToken matches "[+N boost] [EV][+/-] Stat", e.g. "+1 252+ Atk", "4 Def", "-SpA".
// Groups: 1 boost, 2 EVs, 3 nature sign, 4 stat.
var reStatToken = regexp.MustCompile(`(?i)(?:([+-]\d{1,2})\s+)?(?:\b(\d{1,3})\s*)?([+-])?\s*\b(hp|atk|def|spa|spd|spe)\b`)

type statToken struct {
	stat  game.Stat
	boost *int
	evs   *int
	sign  byte
}

func scanStatTokens(text string) []statToken {
	var out []statToken
	for _, m := range reStatToken.FindAllStringSubmatch(text, -1) {
		stat, ok := ResolveStat(m[4])
		if !ok {
			continue
		}
		tok := statToken{stat: stat}
		if m[1] != "" {
			if b, err := strconv.Atoi(m[1]); err == nil {
				b = clamp(b, -game.MaxBoost, game.MaxBoost)
				tok.boost = &b
			}
		}
		if m[2] != "" {
			if ev, err := strconv.Atoi(m[2]); err == nil {
				ev = clamp(ev, 0, game.MaxEV)
				tok.evs = &ev
			}
		}
		if m[3] != "" {
			tok.sign = m[3][0]
		}
		out = append(out, tok)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
