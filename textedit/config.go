package textedit

import (
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/texted/ime"
	"github.com/iw2rmb/texted/textlayer"
	"github.com/iw2rmb/texted/widget"
)

// DefaultAutoWidth is the width AutoSize reports when Config.AutoWidth is
// unset.
const DefaultAutoWidth = 20

// DefaultMaskChar masks password input when Config.PasswordChar is unset
// and masking is turned on later.
const DefaultMaskChar = '*'

// Config configures a Model.
type Config struct {
	// Initial text, queued like SetText.
	Text string

	Multiline      bool
	ReadOnly       bool
	UsingStyleTags bool

	// NoAutoWrap keeps long rows from wrapping in multiline mode.
	NoAutoWrap bool

	// PasswordChar masks the displayed text when non-zero.
	PasswordChar rune
	// AllowInput restricts typed characters to this set. Empty allows all.
	AllowInput string

	Placeholder string

	BlinkInterval time.Duration

	// Forwarded to editbuffer.Options.
	BlockSize  int
	MaxPending int

	// AutoWidth is the width AutoSize reports.
	AutoWidth int
	// Width and Height fix the widget's border box. Zero Width follows the
	// window; zero Height follows AutoSize.
	Width, Height int

	Sizing widget.BoxSizing

	Style     Style
	KeyMap    KeyMap
	Clipboard Clipboard

	// IME defaults to ime.Default.
	IME *ime.Manager

	// NewLayer builds the source and mask layers. Nil uses textlayer.New.
	NewLayer func(opt textlayer.Options) Layer

	// OnChange is called after a frame that changed the text.
	OnChange func(ChangeEvent)

	Logger *zap.Logger
}

func (cfg Config) withDefaults() Config {
	if cfg.AutoWidth <= 0 {
		cfg.AutoWidth = DefaultAutoWidth
	}
	if cfg.Style.isZero() {
		cfg.Style = DefaultStyle()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.IME == nil {
		cfg.IME = ime.Default
	}
	if cfg.NewLayer == nil {
		cfg.NewLayer = func(opt textlayer.Options) Layer { return textlayer.New(opt) }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
