package internal

import (
	"encoding/binary"
	"fmt"
)

// nameSize is the width of the fixed segment and section name fields.
const nameSize = 16

// cursor reads fixed-width fields from a byte slice.
// Reads past the end of the slice are never performed: the first failing read
// records an error, and all following reads return zero values.
type cursor struct {
	b     []byte
	off   int
	order binary.ByteOrder
	err   error
}

func newCursor(b []byte, off int, order binary.ByteOrder) *cursor {
	c := &cursor{b: b, off: off, order: order}
	if off < 0 || off > len(b) {
		c.err = fmt.Errorf("offset %#x outside %d-byte buffer", off, len(b))
	}
	return c
}

func (c *cursor) next(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.b)-c.off {
		c.err = fmt.Errorf("reading %d bytes at %#x: buffer holds %d bytes", n, c.off, len(c.b))
		return nil
	}
	p := c.b[c.off : c.off+n]
	c.off += n
	return p
}

func (c *cursor) uint32() uint32 {
	p := c.next(4)
	if p == nil {
		return 0
	}
	return c.order.Uint32(p)
}

func (c *cursor) uint64() uint64 {
	p := c.next(8)
	if p == nil {
		return 0
	}
	return c.order.Uint64(p)
}

// name returns a fixed-width, NUL-padded name field.
func (c *cursor) name() []byte {
	return c.next(nameSize)
}

func (c *cursor) skip(n int) {
	c.next(n)
}

// nameEquals compares a fixed-width name field against want the way the
// platform does: at most nameSize bytes are significant, NUL terminates.
func nameEquals(field []byte, want string) bool {
	if len(want) > nameSize {
		want = want[:nameSize]
	}
	n := 0
	for n < len(field) && field[n] != 0 {
		n++
	}
	return string(field[:n]) == want
}
