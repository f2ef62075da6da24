package calc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-calcbot/game"
)

func garchompVsToxapex() *game.Scenario {
	return &game.Scenario{
		Attacker: game.Side{
			Name:           "Garchomp",
			Item:           "Choice Band",
			EVs:            map[game.Stat]int{game.Atk: 252},
			Nature:         "Adamant",
			NatureInferred: true,
		},
		Move: "Earthquake",
		Defender: game.Side{
			Name: "Toxapex",
			EVs:  map[game.Stat]int{game.HP: 252, game.Def: 4},
		},
		Field: game.Field{
			Weather:      game.Sand,
			DefenderSide: game.SideConditions{IsStealthRock: true},
		},
	}
}

func TestDescribe(t *testing.T) {
	got := Describe(garchompVsToxapex())
	assert.Equal(t,
		"252+ Atk Choice Band Garchomp Earthquake vs. 252 HP / 4 Def Toxapex in Sand with Stealth Rock (Adamant nature assumed for Garchomp)",
		got)
}

func TestDescribe_BoostsAbilityAndField(t *testing.T) {
	s := &game.Scenario{
		Attacker: game.Side{
			Name:    "Volcarona",
			Ability: "Flame Body",
			EVs:     map[game.Stat]int{game.SpA: 252, game.Atk: 0},
			Boosts:  map[game.Stat]int{game.SpA: 2, game.Spe: 1},
			Nature:  "Modest",
		},
		Move:     "Fiery Dance",
		Defender: game.Side{Name: "Blissey", Boosts: map[game.Stat]int{game.SpD: -1}},
		Field: game.Field{
			Terrain:      game.MistyTerrain,
			IsGravity:    true,
			DefenderSide: game.SideConditions{IsLightScreen: true, Spikes: 1},
		},
	}
	assert.Equal(t,
		"0- Atk / +2 252+ SpA / +1 Spe Flame Body Volcarona Fiery Dance vs. -1 SpD Blissey on Misty Terrain through Light Screen with 1 layer of Spikes under Gravity",
		Describe(s))
}

func TestDescriber_Calculate(t *testing.T) {
	var e Engine = Describer{}

	out, err := e.Calculate(context.Background(), garchompVsToxapex())
	require.NoError(t, err)
	assert.Contains(t, out, "Garchomp Earthquake vs.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Calculate(ctx, garchompVsToxapex())
	assert.ErrorIs(t, err, context.Canceled)
}
