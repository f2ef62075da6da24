package parser

import "showdown-calcbot/game"

// companionStats is the stat a raised stat is usually traded against when only the
// "+" side of a nature is written. This is a competitive convention, not a game rule.
var companionStats = map[game.Stat]game.Stat{
	game.Atk: game.SpA,
	game.SpA: game.Atk,
	game.Spe: game.Atk,
	game.Def: game.SpA,
	game.SpD: game.Atk,
}

// NatureMarkers holds the "+" and "-" stats seen in a side. Empty means not seen.
type NatureMarkers struct {
	Raised  game.Stat
	Lowered game.Stat
}

// ScanNatureMarkers reads every sign annotation in text ("252+ Atk", "-SpA").
// When several stats carry the same sign the last one wins.
func ScanNatureMarkers(text string) NatureMarkers {
	var m NatureMarkers
	for _, tok := range scanStatTokens(text) {
		if tok.stat == game.HP {
			continue
		}
		switch tok.sign {
		case '+':
			m.Raised = tok.stat
		case '-':
			m.Lowered = tok.stat
		}
	}
	return m
}

// InferNature resolves markers into a nature. inferred is true when the lowered stat
// was filled in from companionStats rather than written out.
func InferNature(m NatureMarkers) (nature game.Nature, inferred bool) {
	if m.Raised == "" {
		return "", false
	}
	if m.Lowered != "" {
		n, _ := game.NatureFor(m.Raised, m.Lowered)
		return n, false
	}
	lowered, ok := companionStats[m.Raised]
	if !ok || lowered == m.Raised {
		lowered = game.Atk
		if m.Raised == game.Atk {
			lowered = game.SpA
		}
	}
	n, ok := game.NatureFor(m.Raised, lowered)
	if !ok {
		return "", false
	}
	return n, true
}
