package util

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/util/errs"
)

// Cursor reads an immutable byte buffer strictly left to right.
//
// It implements io.Reader and io.ByteScanner so every Read* helper of this
// package and the NBT decoders can consume from it without buffering ahead,
// which keeps Pos exact after every call.
type Cursor struct {
	buf []byte
	pos int
}

var (
	_ io.Reader      = (*Cursor)(nil)
	_ io.ByteScanner = (*Cursor)(nil)
)

// NewCursor returns a Cursor positioned at the start of b.
// The Cursor never modifies b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of bytes not yet consumed.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Len returns the total size of the backing buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Rest returns the unconsumed bytes without consuming them.
// The returned slice must not be modified.
func (c *Cursor) Rest() []byte { return c.buf[c.pos:] }

// Consumed returns the bytes consumed since position from.
func (c *Cursor) Consumed(from int) []byte { return c.buf[from:c.pos] }

func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= len(c.buf) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, c.buf[c.pos:])
	c.pos += n
	return n, nil
}

func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, io.EOF
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *Cursor) UnreadByte() error {
	if c.pos == 0 {
		return errs.Desyncf("cursor: unread at start of buffer")
	}
	c.pos--
	return nil
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, errs.Desync("peek", io.ErrUnexpectedEOF)
	}
	return c.buf[c.pos], nil
}

// Skip consumes n bytes.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > c.Remaining() {
		return errs.Desyncf("cursor: cannot skip %d bytes, %d remaining", n, c.Remaining())
	}
	c.pos += n
	return nil
}

// ExpectEnd returns a desync error if bytes are left.
func (c *Cursor) ExpectEnd() error {
	if r := c.Remaining(); r != 0 {
		return errs.Desyncf("%d trailing bytes after decode", r)
	}
	return nil
}

// byteScanner adapts a plain io.Reader to io.ByteScanner reading one byte at a time,
// so decoders that need to peek never read past what they consume.
type byteScanner struct {
	r       io.Reader
	last    byte
	hasLast bool // last can be unread
	unread  bool // last was unread and is returned next
}

// AsByteScanner returns r if it already is a reader and io.ByteScanner,
// otherwise a wrapper that reads byte by byte.
func AsByteScanner(r io.Reader) interface {
	io.Reader
	io.ByteScanner
} {
	if bs, ok := r.(interface {
		io.Reader
		io.ByteScanner
	}); ok {
		return bs
	}
	return &byteScanner{r: r}
}

func (b *byteScanner) ReadByte() (byte, error) {
	if b.unread {
		b.unread = false
		return b.last, nil
	}
	var p [1]byte
	if _, err := io.ReadFull(b.r, p[:]); err != nil {
		return 0, err
	}
	b.last, b.hasLast = p[0], true
	return p[0], nil
}

func (b *byteScanner) UnreadByte() error {
	if !b.hasLast || b.unread {
		return errs.Desyncf("byte scanner: nothing to unread")
	}
	b.unread = true
	return nil
}

func (b *byteScanner) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.unread {
		b.unread = false
		p[0] = b.last
		return 1, nil
	}
	n, err := b.r.Read(p)
	if n > 0 {
		b.last, b.hasLast = p[n-1], true
	}
	return n, err
}
