package parser

import (
	"regexp"
	"strings"
)

const levelMarker = "Loading level "

// levelPattern matches e.g. "Loading level Levels/mp_surf, mission ASSAULT".
var levelPattern = regexp.MustCompile(`Loading level [a-zA-Z_+\-,.0-9/ ]*\w`)

// ParseModeAndMap returns the game mode and map name of the first level load.
func ParseModeAndMap(doc string) (mode, mapName string, err error) {
	line := levelPattern.FindString(doc)
	if line == "" {
		return "", "", parseErrorf("", "no %q marker", strings.TrimSpace(levelMarker))
	}
	_, rest, _ := strings.Cut(line, levelMarker)

	path, _, _ := strings.Cut(rest, ",")
	_, mapName, ok := strings.Cut(path, "/")
	if !ok {
		return "", "", parseErrorf(line, "level path %q has no map segment", path)
	}
	if i := strings.Index(mapName, "/"); i >= 0 {
		mapName = mapName[:i]
	}

	tokens := strings.Split(rest, " ")
	mode = tokens[len(tokens)-1]
	return mode, mapName, nil
}
