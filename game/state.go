package game

type Stat string

const (
	HP  Stat = "hp"
	Atk Stat = "atk"
	Def Stat = "def"
	SpA Stat = "spa"
	SpD Stat = "spd"
	Spe Stat = "spe"
)

// Stats lists the six stats in the order Showdown prints them.
var Stats = []Stat{HP, Atk, Def, SpA, SpD, Spe}

var statLabels = map[Stat]string{
	HP:  "HP",
	Atk: "Atk",
	Def: "Def",
	SpA: "SpA",
	SpD: "SpD",
	Spe: "Spe",
}

func (s Stat) Label() string {
	if l, ok := statLabels[s]; ok {
		return l
	}
	return string(s)
}

const (
	MaxEV    = 252
	MaxBoost = 6
)

// Side is one combatant of a scenario line.
type Side struct {
	Name           string       `json:"name" yaml:"name"`
	Item           string       `json:"item,omitempty" yaml:"item,omitempty"`
	Ability        string       `json:"ability,omitempty" yaml:"ability,omitempty"`
	EVs            map[Stat]int `json:"evs,omitempty" yaml:"evs,omitempty"`
	Boosts         map[Stat]int `json:"boosts,omitempty" yaml:"boosts,omitempty"`
	Nature         Nature       `json:"nature,omitempty" yaml:"nature,omitempty"`
	NatureInferred bool         `json:"natureInferred,omitempty" yaml:"natureInferred,omitempty"`
}

func (s Side) EV(stat Stat) int {
	return s.EVs[stat]
}

func (s Side) Boost(stat Stat) int {
	return s.Boosts[stat]
}

type Weather string

const (
	Rain Weather = "Rain"
	Sun  Weather = "Sun"
	Sand Weather = "Sand"
	Hail Weather = "Hail"
	Snow Weather = "Snow"
)

type Terrain string

const (
	ElectricTerrain Terrain = "Electric"
	GrassyTerrain   Terrain = "Grassy"
	PsychicTerrain  Terrain = "Psychic"
	MistyTerrain    Terrain = "Misty"
)

// SideConditions are the defender-side effects. At most one screen is set by a parse.
type SideConditions struct {
	IsLightScreen bool `json:"isLightScreen,omitempty" yaml:"isLightScreen,omitempty"`
	IsReflect     bool `json:"isReflect,omitempty" yaml:"isReflect,omitempty"`
	IsAuroraVeil  bool `json:"isAuroraVeil,omitempty" yaml:"isAuroraVeil,omitempty"`
	IsStealthRock bool `json:"isSR,omitempty" yaml:"isSR,omitempty"`
	Spikes        int  `json:"spikes,omitempty" yaml:"spikes,omitempty"`
}

type Field struct {
	Weather      Weather        `json:"weather,omitempty" yaml:"weather,omitempty"`
	Terrain      Terrain        `json:"terrain,omitempty" yaml:"terrain,omitempty"`
	IsGravity    bool           `json:"isGravity,omitempty" yaml:"isGravity,omitempty"`
	DefenderSide SideConditions `json:"defenderSide" yaml:"defenderSide"`
}

// Scenario is a fully parsed calc request.
type Scenario struct {
	Attacker Side   `json:"attacker" yaml:"attacker"`
	Move     string `json:"move" yaml:"move"`
	Defender Side   `json:"defender" yaml:"defender"`
	Field    Field  `json:"field" yaml:"field"`
}
