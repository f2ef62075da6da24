package game

type Nature string

const Hardy Nature = "Hardy"

type statPair struct {
	raised, lowered Stat
}

var natureTable = map[statPair]Nature{
	{Atk, Def}: "Lonely",
	{Atk, SpA}: "Adamant",
	{Atk, SpD}: "Naughty",
	{Atk, Spe}: "Brave",
	{Def, Atk}: "Bold",
	{Def, SpA}: "Impish",
	{Def, SpD}: "Lax",
	{Def, Spe}: "Relaxed",
	{SpA, Atk}: "Modest",
	{SpA, Def}: "Mild",
	{SpA, SpD}: "Rash",
	{SpA, Spe}: "Quiet",
	{SpD, Atk}: "Calm",
	{SpD, Def}: "Gentle",
	{SpD, SpA}: "Careful",
	{SpD, Spe}: "Sassy",
	{Spe, Atk}: "Timid",
	{Spe, Def}: "Hasty",
	{Spe, SpA}: "Jolly",
	{Spe, SpD}: "Naive",
}

var neutralNatures = []Nature{Hardy, "Docile", "Serious", "Bashful", "Quirky"}

// NatureFor returns the nature raising one stat and lowering another. A pair with
// raised == lowered is neutral. HP never takes part in a nature.
func NatureFor(raised, lowered Stat) (Nature, bool) {
	if raised == lowered && raised != HP {
		return Hardy, true
	}
	n, ok := natureTable[statPair{raised, lowered}]
	return n, ok
}

// Modifiers reports the raised and lowered stat of a nature. Neutral and unknown
// natures report ok=false.
func (n Nature) Modifiers() (raised, lowered Stat, ok bool) {
	for p, name := range natureTable {
		if name == n {
			return p.raised, p.lowered, true
		}
	}
	return "", "", false
}

func (n Nature) IsNeutral() bool {
	for _, v := range neutralNatures {
		if v == n {
			return true
		}
	}
	return false
}

// AllNatures returns the 25 natures. Order is unspecified.
func AllNatures() []Nature {
	out := make([]Nature, 0, len(natureTable)+len(neutralNatures))
	for _, n := range natureTable {
		out = append(out, n)
	}
	return append(out, neutralNatures...)
}
