// Package grapheme splits text into user-perceived characters and measures
// them in terminal cells.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when a caller passes <= 0.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the number of cells cluster occupies when it starts at cell
// col. Tabs advance to the next tab stop; newlines take no cells.
func Width(cluster string, col, tabWidth int) int {
	switch cluster {
	case "":
		return 0
	case "\n", "\r\n":
		return 0
	case "\t":
		return tabAdvance(col, tabWidth)
	}

	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		// go-runewidth reports 0 for some emoji sequences that uniseg sizes.
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsNewline reports whether cluster ends a line. uniseg keeps CRLF as one
// cluster, so both forms count.
func IsNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// maxClusterRunes bounds how far Boundary looks past at. Longer clusters are
// cut there.
const maxClusterRunes = 32

// Boundary returns the first cluster boundary of text at or after rune index
// at. text must start on a boundary.
func Boundary(text []rune, at int) int {
	if at <= 0 {
		return 0
	}
	if at >= len(text) {
		return len(text)
	}
	g := uniseg.NewGraphemes(string(text[:min(len(text), at+maxClusterRunes)]))
	pos := 0
	for g.Next() {
		pos += len(g.Runes())
		if pos >= at {
			return pos
		}
	}
	return pos
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
