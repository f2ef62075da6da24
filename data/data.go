package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"showdown-calcbot/game"
)

type PokemonData struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

type MoveData struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Power int    `json:"power"`
}

type RawPokemonData struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

type RawMoveData struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Power int    `json:"basePower"`
}

type RawItemData struct {
	Name string `json:"name"`
}

var (
	mu        sync.RWMutex
	pokemonDB map[string]PokemonData
	moveDB    map[string]MoveData
	itemDB    map[string]string
)

// ToID mirrors Showdown's toID: lowercase letters and digits only.
func ToID(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func decodeFile(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func LoadPokemonData(path string) error {
	var rawData map[string]RawPokemonData
	if err := decodeFile(path, &rawData); err != nil {
		return err
	}

	db := make(map[string]PokemonData, len(rawData))
	for _, p := range rawData {
		db[ToID(p.Name)] = PokemonData{
			Name:  p.Name,
			Types: p.Types,
		}
	}

	mu.Lock()
	pokemonDB = db
	mu.Unlock()
	return nil
}

func LoadMoveData(path string) error {
	var rawData map[string]RawMoveData
	if err := decodeFile(path, &rawData); err != nil {
		return err
	}

	db := make(map[string]MoveData, len(rawData))
	for _, m := range rawData {
		db[ToID(m.Name)] = MoveData{
			Name:  m.Name,
			Type:  m.Type,
			Power: m.Power,
		}
	}

	mu.Lock()
	moveDB = db
	mu.Unlock()
	return nil
}

func LoadItemData(path string) error {
	var rawData map[string]RawItemData
	if err := decodeFile(path, &rawData); err != nil {
		return err
	}

	db := make(map[string]string, len(rawData))
	for _, it := range rawData {
		db[ToID(it.Name)] = it.Name
	}

	mu.Lock()
	itemDB = db
	mu.Unlock()
	return nil
}

// Reset forgets all loaded data.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	pokemonDB, moveDB, itemDB = nil, nil, nil
}

// KnownSpecies reports whether a dex is loaded and contains name. With no dex loaded
// every name is accepted.
func KnownSpecies(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	if pokemonDB == nil {
		return true
	}
	_, ok := pokemonDB[ToID(name)]
	return ok
}

func titleCase(name string) string {
	return cases.Title(language.English).String(name)
}

// SpeciesName returns the dex spelling of name, or name in title case.
func SpeciesName(name string) string {
	mu.RLock()
	defer mu.RUnlock()
	if p, ok := pokemonDB[ToID(name)]; ok {
		return p.Name
	}
	return titleCase(name)
}

func MoveName(name string) string {
	mu.RLock()
	defer mu.RUnlock()
	if m, ok := moveDB[ToID(name)]; ok {
		return m.Name
	}
	return titleCase(name)
}

func ItemName(name string) string {
	if name == "" {
		return ""
	}
	mu.RLock()
	defer mu.RUnlock()
	if it, ok := itemDB[ToID(name)]; ok {
		return it
	}
	return titleCase(name)
}

// Canonicalize returns a copy of s with species, move and item names spelled as in the
// loaded data.
func Canonicalize(s *game.Scenario) *game.Scenario {
	out := *s
	out.Attacker = canonicalSide(s.Attacker)
	out.Defender = canonicalSide(s.Defender)
	out.Move = MoveName(s.Move)
	return &out
}

func canonicalSide(side game.Side) game.Side {
	side.Name = SpeciesName(side.Name)
	side.Item = ItemName(side.Item)
	return side
}
