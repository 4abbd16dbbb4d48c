package internal

import (
	"debug/macho"
	"encoding/binary"
	"math/bits"
)

// Kind classifies the container format of an image buffer.
type Kind int

const (
	Unknown Kind = iota
	Thin32       // single-architecture 32-bit image (unsupported)
	Thin64       // single-architecture 64-bit image
	Fat          // multi-architecture container
)

func (k Kind) String() string {
	switch k {
	case Thin32:
		return "thin32"
	case Thin64:
		return "thin64"
	case Fat:
		return "fat"
	default:
		return "unknown"
	}
}

// MagicSize is the size of the leading magic value.
const MagicSize = 4

// Format is the result of sniffing an image buffer.
type Format struct {
	Kind Kind
	// Swapped is set if the buffer was written in the opposite byte order of the host.
	// All structured reads within the container need to be byte-swapped.
	Swapped bool
}

// Order returns the byte order of structured fields in the container.
func (f Format) Order() binary.ByteOrder {
	if f.Swapped {
		return swappedEndian
	}
	return binary.NativeEndian
}

// swappedEndian is the byte order opposite to the host's.
var swappedEndian = func() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()

// Sniff classifies the leading magic value of b.
func Sniff(b []byte) (Format, error) {
	magic, ok := magicAt(b, 0)
	if !ok {
		return Format{}, NewExtractErr(ErrNotRecognizedContainer, "%d bytes are too short for a magic value", len(b))
	}
	f := classify(magic)
	if f.Kind == Unknown {
		return f, NewExtractErr(ErrNotRecognizedContainer, "magic %#08x", magic)
	}
	return f, nil
}

// magicAt reads the magic value at off in host byte order.
func magicAt(b []byte, off uint64) (uint32, bool) {
	if off > uint64(len(b)) || uint64(len(b))-off < MagicSize {
		return 0, false
	}
	return binary.NativeEndian.Uint32(b[off:]), true
}

func classify(magic uint32) Format {
	swapped := bits.ReverseBytes32(magic)
	switch {
	case magic == macho.Magic64:
		return Format{Kind: Thin64}
	case swapped == macho.Magic64:
		return Format{Kind: Thin64, Swapped: true}
	case magic == macho.Magic32:
		return Format{Kind: Thin32}
	case swapped == macho.Magic32:
		return Format{Kind: Thin32, Swapped: true}
	case magic == macho.MagicFat:
		return Format{Kind: Fat}
	case swapped == macho.MagicFat:
		return Format{Kind: Fat, Swapped: true}
	}
	return Format{Kind: Unknown}
}
