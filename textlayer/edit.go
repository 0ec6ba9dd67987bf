package textlayer

import (
	"image"

	"github.com/iw2rmb/texted/internal/grapheme"
	"github.com/iw2rmb/texted/styletag"
)

// AppendText adds text after the last character. tags carries open style
// tags across calls and may be nil when style tags are disabled. It returns
// the number of characters added. A caret at the end of the text stays at
// the end.
func (l *Layer) AppendText(text string, tags *styletag.Stack) int {
	chars := l.parse(text, tags)
	if len(chars) == 0 {
		return 0
	}
	l.keepCaretOffset()
	if l.caretOff == len(l.chars) {
		l.caretOff += len(chars)
	}
	l.chars = append(l.chars, chars...)
	l.stale = true
	return len(chars)
}

// InsertText inserts text at the caret and moves the caret past it.
func (l *Layer) InsertText(text string, tags *styletag.Stack) int {
	chars := l.parse(text, tags)
	if len(chars) == 0 {
		return 0
	}
	l.keepCaretOffset()
	off := l.caretOff

	next := make([]char, 0, len(l.chars)+len(chars))
	next = append(next, l.chars[:off]...)
	next = append(next, chars...)
	next = append(next, l.chars[off:]...)
	l.chars = next

	l.caretOff = off + len(chars)
	l.stale = true
	return len(chars)
}

// Backspace removes up to n characters before the caret. At offset 0 it is a
// no-op.
func (l *Layer) Backspace(n int) int {
	if n <= 0 {
		return 0
	}
	l.keepCaretOffset()
	off := l.caretOff
	k := min(n, off)
	if k == 0 {
		return 0
	}
	l.chars = append(l.chars[:off-k], l.chars[off:]...)
	l.caretOff = off - k
	l.stale = true
	return k
}

// Delete removes up to n characters after the caret.
func (l *Layer) Delete(n int) int {
	if n <= 0 {
		return 0
	}
	l.keepCaretOffset()
	off := l.caretOff
	k := min(n, len(l.chars)-off)
	if k <= 0 {
		return 0
	}
	l.chars = append(l.chars[:off], l.chars[off+k:]...)
	l.stale = true
	return k
}

// ClearText removes all characters and resets the caret and offset.
func (l *Layer) ClearText() {
	l.chars = nil
	l.caretOff = 0
	l.caretFromOffset = true
	l.offset = image.Point{}
	l.stale = true
	l.allDirty = true
}

// parse converts text into characters, consuming style tags when enabled.
func (l *Layer) parse(text string, tags *styletag.Stack) []char {
	if text == "" {
		return nil
	}
	if !l.opt.UsingStyleTags || tags == nil {
		return appendClusters(nil, text, styletag.Style{})
	}

	src := []rune(text)
	out := make([]char, 0, len(src))
	runStart := 0
	flush := func(end int) {
		if end > runStart {
			out = appendClusters(out, string(src[runStart:end]), tags.Style())
		}
	}
	for i := 0; i < len(src); {
		if src[i] != '[' {
			i++
			continue
		}
		if tag, n, ok := styletag.ScanTag(src[i:]); ok {
			flush(i)
			tags.Push(tag)
			i += n
			runStart = i
			continue
		}
		if name, n, ok := styletag.ScanEndingTag(src[i:]); ok {
			flush(i)
			tags.Pop(name)
			i += n
			runStart = i
			continue
		}
		i++
	}
	flush(len(src))
	return out
}

func appendClusters(out []char, text string, st styletag.Style) []char {
	for _, g := range grapheme.Split(text) {
		out = append(out, char{text: g, style: st})
	}
	return out
}
