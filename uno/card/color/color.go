package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a card color. The zero value is None and means no color was chosen.
type Color int

const (
	None Color = iota
	Red
	Blue
	Green
	Yellow
	Wild
)

type colorStruct struct {
	name          string
	rank          int
	colorFunction func(string, ...interface{}) string
}

var colorStructs = map[Color]colorStruct{
	Red: {
		name:          "red",
		rank:          0,
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		rank:          1,
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Green: {
		name:          "green",
		rank:          2,
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Yellow: {
		name:          "yellow",
		rank:          3,
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
	Wild: {
		name:          "wild",
		rank:          4,
		colorFunction: color.New(color.FgHiMagenta).SprintfFunc(),
	},
}

// Playable lists the colors a wild card may resolve to.
var Playable = []Color{Red, Blue, Green, Yellow}

func (c Color) Valid() bool {
	_, ok := colorStructs[c]
	return ok
}

// Concrete reports whether c is one of the four colors a card can be played in.
func (c Color) Concrete() bool {
	return c.Valid() && c != Wild
}

// Rank orders colors for hand display. Unknown colors sort last.
func (c Color) Rank() int {
	if s, ok := colorStructs[c]; ok {
		return s.rank
	}
	return 999
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	s, ok := colorStructs[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return s.colorFunction(text, args...)
}

func (c Color) String() string {
	if s, ok := colorStructs[c]; ok {
		return s.name
	}
	if c == None {
		return "none"
	}
	return fmt.Sprintf("invalid_color(%d)", int(c))
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, s := range colorStructs {
		if s.name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
