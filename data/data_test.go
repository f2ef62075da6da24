package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-calcbot/game"
)

func writeJSON(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func loadFixtures(t *testing.T) {
	t.Helper()
	t.Cleanup(Reset)

	dir := t.TempDir()
	require.NoError(t, LoadPokemonData(writeJSON(t, dir, "pokedex.json", `{
		"garchomp": {"name": "Garchomp", "types": ["Dragon", "Ground"]},
		"porygonz": {"name": "Porygon-Z", "types": ["Normal"]}
	}`)))
	require.NoError(t, LoadMoveData(writeJSON(t, dir, "moves.json", `{
		"uturn": {"name": "U-turn", "type": "Bug", "basePower": 70}
	}`)))
	require.NoError(t, LoadItemData(writeJSON(t, dir, "items.json", `{
		"heavydutyboots": {"name": "Heavy-Duty Boots"}
	}`)))
}

func TestToID(t *testing.T) {
	assert.Equal(t, "porygonz", ToID("Porygon-Z"))
	assert.Equal(t, "heavydutyboots", ToID("Heavy-Duty Boots"))
	assert.Equal(t, "farfetchd", ToID("Farfetch’d"))
	assert.Equal(t, "", ToID(" - "))
}

func TestCanonicalNames_FromDex(t *testing.T) {
	loadFixtures(t)

	assert.Equal(t, "Porygon-Z", SpeciesName("porygon z"))
	assert.Equal(t, "U-turn", MoveName("u turn"))
	assert.Equal(t, "Heavy-Duty Boots", ItemName("heavy duty boots"))
	assert.True(t, KnownSpecies("GARCHOMP"))
	assert.False(t, KnownSpecies("Fakemon"))
}

func TestCanonicalNames_TitleCaseFallback(t *testing.T) {
	Reset()

	assert.Equal(t, "Tapu Lele", SpeciesName("tapu lele"))
	assert.Equal(t, "Extreme Speed", MoveName("extreme speed"))
	assert.Equal(t, "Choice Band", ItemName("choice band"))
	assert.Equal(t, "", ItemName(""))
	assert.True(t, KnownSpecies("anything"), "no dex loaded accepts every name")
}

func TestCanonicalize(t *testing.T) {
	loadFixtures(t)

	in := &game.Scenario{
		Attacker: game.Side{Name: "garchomp", Item: "heavy-duty boots", EVs: map[game.Stat]int{game.Atk: 252}},
		Move:     "uturn",
		Defender: game.Side{Name: "porygonz"},
	}
	out := Canonicalize(in)

	assert.Equal(t, "Garchomp", out.Attacker.Name)
	assert.Equal(t, "Heavy-Duty Boots", out.Attacker.Item)
	assert.Equal(t, 252, out.Attacker.EV(game.Atk))
	assert.Equal(t, "U-turn", out.Move)
	assert.Equal(t, "Porygon-Z", out.Defender.Name)
	assert.Equal(t, "", out.Defender.Item)

	assert.Equal(t, "garchomp", in.Attacker.Name, "input is not modified")
}

func TestLoad_Errors(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()

	assert.Error(t, LoadPokemonData(filepath.Join(dir, "missing.json")))
	err := LoadMoveData(writeJSON(t, dir, "bad.json", `{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}
