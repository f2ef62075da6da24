package parser

import (
	"regexp"
	"strconv"
	"strings"

	"showdown-calcbot/game"
)

var (
	reWeather     = regexp.MustCompile(`(?i)\bin\s+(rain|sun|sand|hail|snow)\b`)
	reTerrain     = regexp.MustCompile(`(?i)\b(?:on|with|in)\s+(electric|grassy|psychic|misty)\s+terrain\b`)
	reScreen      = regexp.MustCompile(`(?i)\b(?:under|with)\s+(light\s+screen|reflect|aurora\s+veil)\b`)
	reStealthRock = regexp.MustCompile(`(?i)\b(?:after|with)\s+stealth\s+rocks?\b`)
	reSpikes      = regexp.MustCompile(`(?i)(?:\bwith\s+)?\b(\d+)\s+layers?\s+of\s+spikes\b`)
	reGravity     = regexp.MustCompile(`(?i)\b(?:under|with)\s+gravity\b`)
)

var fieldPatterns = []*regexp.Regexp{reWeather, reTerrain, reScreen, reStealthRock, reSpikes, reGravity}

// reConnector is an "and"/","/"&" left dangling in front of a stripped phrase.
const reConnector = `(?i)(?:\s*(?:,|&|\band\b))?\s*`

var fieldStrippers = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(fieldPatterns))
	for i, re := range fieldPatterns {
		out[i] = regexp.MustCompile(reConnector + strings.TrimPrefix(re.String(), "(?i)"))
	}
	return out
}()

var weathers = map[string]game.Weather{
	"rain": game.Rain,
	"sun":  game.Sun,
	"sand": game.Sand,
	"hail": game.Hail,
	"snow": game.Snow,
}

var terrains = map[string]game.Terrain{
	"electric": game.ElectricTerrain,
	"grassy":   game.GrassyTerrain,
	"psychic":  game.PsychicTerrain,
	"misty":    game.MistyTerrain,
}

// ExtractField scans text for battle conditions. Each category is independent and the
// first match wins; nothing found leaves the zero value.
func ExtractField(text string) game.Field {
	var f game.Field

	if m := reWeather.FindStringSubmatch(text); m != nil {
		f.Weather = weathers[strings.ToLower(m[1])]
	}
	if m := reTerrain.FindStringSubmatch(text); m != nil {
		f.Terrain = terrains[strings.ToLower(m[1])]
	}
	if m := reScreen.FindStringSubmatch(text); m != nil {
		switch strings.Join(strings.Fields(strings.ToLower(m[1])), " ") {
		case "light screen":
			f.DefenderSide.IsLightScreen = true
		case "reflect":
			f.DefenderSide.IsReflect = true
		case "aurora veil":
			f.DefenderSide.IsAuroraVeil = true
		}
	}
	f.DefenderSide.IsStealthRock = reStealthRock.MatchString(text)
	if m := reSpikes.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			f.DefenderSide.Spikes = n
		}
	}
	f.IsGravity = reGravity.MatchString(text)

	return f
}

// StripField removes every phrase ExtractField recognizes, together with a connector
// word in front of it, so the rest of the line can be read as Pokémon descriptions.
func StripField(text string) string {
	for _, re := range fieldStrippers {
		text = re.ReplaceAllString(text, " ")
	}
	return collapseSpaces(text)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
