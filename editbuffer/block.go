package editbuffer

// Kind marks a block's position within one Enqueue call. It is
// informational; blocks are applied the same way regardless of kind.
type Kind uint8

const (
	Begin Kind = iota
	Body
	End
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case Body:
		return "body"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Mode selects where a block's text lands when it is applied.
type Mode uint8

const (
	// Append adds the text after the last character.
	Append Mode = iota
	// Insert adds the text at the caret as it is when the block is applied.
	Insert
)

func (m Mode) String() string {
	if m == Insert {
		return "insert"
	}
	return "append"
}

// Block is one chunk of pending text.
type Block struct {
	Kind Kind
	Mode Mode
	Text []rune
}

// Scanner finds style tags that must not be split across blocks.
type Scanner interface {
	// TagLen returns the rune length of the tag at the start of text, or 0.
	TagLen(text []rune) int
}
