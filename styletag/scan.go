package styletag

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Name identifies a tag kind.
type Name string

const (
	Color         Name = "color"
	Background    Name = "bgcolor"
	Bold          Name = "b"
	Italic        Name = "i"
	Underline     Name = "u"
	Strikethrough Name = "s"
)

// maxTagLen bounds how far the scanner looks for the closing bracket.
const maxTagLen = 32

// Tag is one parsed opening tag.
type Tag struct {
	Name  Name
	Value string
}

func (n Name) valued() bool { return n == Color || n == Background }

func known(name string) (Name, bool) {
	switch n := Name(strings.ToLower(name)); n {
	case Color, Background, Bold, Italic, Underline, Strikethrough:
		return n, true
	default:
		return "", false
	}
}

// ScanTag recognises an opening tag at the start of text and returns it with
// its length in runes.
func ScanTag(text []rune) (Tag, int, bool) {
	body, n, ok := bracketed(text)
	if !ok || strings.HasPrefix(body, "/") {
		return Tag{}, 0, false
	}

	name, value, hasValue := strings.Cut(body, "=")
	tn, ok := known(strings.TrimSpace(name))
	if !ok {
		return Tag{}, 0, false
	}
	if tn.valued() != hasValue {
		return Tag{}, 0, false
	}
	if hasValue {
		value = strings.TrimSpace(value)
		c, err := colorful.Hex(value)
		if err != nil {
			return Tag{}, 0, false
		}
		value = c.Hex()
	}
	return Tag{Name: tn, Value: value}, n, true
}

// ScanEndingTag recognises an ending tag such as [/color] at the start of text.
func ScanEndingTag(text []rune) (Name, int, bool) {
	body, n, ok := bracketed(text)
	if !ok || !strings.HasPrefix(body, "/") {
		return "", 0, false
	}
	tn, ok := known(strings.TrimSpace(body[1:]))
	if !ok {
		return "", 0, false
	}
	return tn, n, true
}

// bracketed returns the text between a leading '[' and the first ']'.
func bracketed(text []rune) (string, int, bool) {
	if len(text) < 3 || text[0] != '[' {
		return "", 0, false
	}
	for i := 1; i < len(text) && i <= maxTagLen; i++ {
		switch text[i] {
		case ']':
			if i == 1 {
				return "", 0, false
			}
			return string(text[1:i]), i + 1, true
		case '[', '\n':
			return "", 0, false
		}
	}
	return "", 0, false
}

// Scanner reports tag lengths for block splitting.
type Scanner struct{}

// TagLen returns the length of the opening or ending tag at the start of
// text, or 0 when there is none.
func (Scanner) TagLen(text []rune) int {
	if _, n, ok := ScanTag(text); ok {
		return n
	}
	if _, n, ok := ScanEndingTag(text); ok {
		return n
	}
	return 0
}
