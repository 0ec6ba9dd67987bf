// Package editbuffer queues text for a widget as bounded blocks.
//
// Producers on any goroutine call Enqueue; the UI goroutine calls DrainInto
// once per frame. The mutex is held only to append a batch or to swap the
// queue out, never while blocks are processed.
package editbuffer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/iw2rmb/texted/internal/grapheme"
)

// DefaultBlockSize is the number of runes per block when Options.BlockSize
// is unset.
const DefaultBlockSize = 512

// ErrOutOfMemory is returned when a batch would exceed Options.MaxPending.
var ErrOutOfMemory = errors.New("editbuffer: out of memory")

type Options struct {
	BlockSize int // default: 512
	// MaxPending caps the runes waiting to be drained. 0 means no cap.
	MaxPending int
}

// Buffer is an ordered queue of blocks safe for concurrent producers.
type Buffer struct {
	opt Options

	mu      sync.Mutex
	blocks  []Block
	pending int
}

func New(opt Options) *Buffer {
	if opt.BlockSize <= 0 {
		opt.BlockSize = DefaultBlockSize
	}
	return &Buffer{opt: opt}
}

func (b *Buffer) BlockSize() int { return b.opt.BlockSize }

// Enqueue splits text into blocks and queues them in order. With a non-nil
// scanner a block never ends inside a tag: the block grows to contain it.
// The batch is queued whole or not at all. It returns the number of blocks
// queued.
func (b *Buffer) Enqueue(text string, mode Mode, sc Scanner) (int, error) {
	src := []rune(text)
	if len(src) == 0 {
		return 0, nil
	}
	batch := split(src, mode, b.opt.BlockSize, sc)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.opt.MaxPending > 0 && b.pending+len(src) > b.opt.MaxPending {
		return 0, fmt.Errorf("queue %d runes with %d pending (max %d): %w",
			len(src), b.pending, b.opt.MaxPending, ErrOutOfMemory)
	}
	b.blocks = append(b.blocks, batch...)
	b.pending += len(src)
	return len(batch), nil
}

func split(src []rune, mode Mode, size int, sc Scanner) []Block {
	out := make([]Block, 0, len(src)/size+1)
	for i := 0; i < len(src); {
		end := min(i+size, len(src))
		for scanned := i; ; {
			scanned, end = growTags(src, scanned, end, sc)
			// Blocks never end inside a character.
			next := i + grapheme.Boundary(src[i:], end-i)
			if next == end {
				break
			}
			end = next
		}

		blk := Block{Mode: mode}
		switch {
		case i == 0:
			blk.Kind = Begin
		case end < len(src):
			blk.Kind = Body
		default:
			blk.Kind = End
		}
		blk.Text = append([]rune(nil), src[i:end]...)
		out = append(out, blk)
		i = end
	}
	return out
}

// growTags extends end past any tag that starts in src[from:end] and
// returns where scanning stopped along with the new end.
func growTags(src []rune, from, end int, sc Scanner) (int, int) {
	if sc == nil {
		return end, end
	}
	j := from
	for ; j < end; j++ {
		n := sc.TagLen(src[j:])
		if n == 0 {
			continue
		}
		if j+n > end {
			end = j + n
		}
		// Tags cannot nest, so skip over this one.
		j += n - 1
	}
	return j, end
}

// DrainInto removes every queued block and calls fn for each in the order
// they were queued. Blocks queued while fn runs wait for the next drain.
func (b *Buffer) DrainInto(fn func(Block)) int {
	b.mu.Lock()
	blocks := b.blocks
	b.blocks = nil
	b.pending = 0
	b.mu.Unlock()

	for i := range blocks {
		fn(blocks[i])
		blocks[i].Text = nil
	}
	return len(blocks)
}

// Reset drops every queued block.
func (b *Buffer) Reset() {
	b.mu.Lock()
	b.blocks = nil
	b.pending = 0
	b.mu.Unlock()
}

// Len returns the number of queued blocks.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.blocks)
}

// Pending returns the number of queued runes.
func (b *Buffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}
