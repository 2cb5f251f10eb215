package fumosay

import (
	"embed"
	"strings"
)

//go:embed art/*.txt
var artFS embed.FS

// Style selects one of the fixed art variants.
type Style int

const (
	Style1 Style = iota + 1
	Style2
	Style3
)

var styleNames = map[string]Style{
	"style1":  Style1,
	"style2":  Style2,
	"style3":  Style3,
	"1":       Style1,
	"2":       Style2,
	"3":       Style3,
	"default": Style1,
}

// StyleNames returns the accepted style identifiers in display order.
func StyleNames() []string {
	return []string{"style1", "style2", "style3", "1", "2", "3", "default"}
}

// ParseStyle maps a long name ("style2"), short alias ("2") or "default" to
// a Style. Unrecognized names fall back to Style1.
func ParseStyle(name string) Style {
	if s, ok := styleNames[name]; ok {
		return s
	}
	return Style1
}

// String returns the long name of the style.
func (s Style) String() string {
	switch s {
	case Style2:
		return "style2"
	case Style3:
		return "style3"
	default:
		return "style1"
	}
}

var artBlocks = loadArt()

func loadArt() map[Style]string {
	blocks := make(map[Style]string, 3)
	for _, s := range []Style{Style1, Style2, Style3} {
		data, err := artFS.ReadFile("art/" + s.String() + ".txt")
		if err != nil {
			panic("fumosay: missing embedded art: " + err.Error())
		}
		blocks[s] = "\n" + strings.TrimRight(string(data), "\n") + "\n"
	}
	return blocks
}

// Art returns the art block for the style, a picture framed by a leading
// and a trailing newline. Unknown styles return the Style1 block.
func (s Style) Art() string {
	if a, ok := artBlocks[s]; ok {
		return a
	}
	return artBlocks[Style1]
}
