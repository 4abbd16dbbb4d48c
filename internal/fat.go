package internal

import (
	"debug/macho"
	"encoding/binary"
)

const (
	fatHeaderSize = 8  // magic, nfat_arch
	fatArchSize   = 20 // cputype, cpusubtype, offset, size, align
)

// Slice locates a 64-bit architecture slice inside a fat container.
type Slice struct {
	CPU    macho.Cpu
	SubCPU uint32
	Offset uint64 // Offset of the slice's mach header within the container
	Size   uint64
}

// FatSlices parses the slice directory of a fat container.
// Only slices holding a 64-bit image are returned, in directory order.
// If a cpu type is listed more than once, the first record wins.
// The result is empty if the container holds no usable slice.
func FatSlices(b []byte, order binary.ByteOrder) ([]Slice, error) {
	c := newCursor(b, MagicSize, order)
	count := c.uint32()
	if c.err != nil {
		return nil, WrapExtractErr(ErrNotRecognizedContainer, c.err, "truncated fat header")
	}
	if uint64(count)*fatArchSize > uint64(len(b)-fatHeaderSize) {
		return nil, NewExtractErr(ErrNotRecognizedContainer, "fat directory of %d slices exceeds %d-byte container", count, len(b))
	}

	slices := make([]Slice, 0, count)
	seen := make(map[macho.Cpu]bool, count)
	for i := uint32(0); i < count; i++ {
		cpu := macho.Cpu(c.uint32())
		sub := c.uint32()
		offset := uint64(c.uint32())
		size := uint64(c.uint32())
		c.skip(4) // align
		if c.err != nil {
			return nil, WrapExtractErr(ErrNotRecognizedContainer, c.err, "slice %d", i)
		}

		magic, ok := magicAt(b, offset)
		if !ok {
			return nil, NewExtractErr(ErrNotRecognizedContainer, "slice %d (%s) at offset %#x lies outside the container", i, cpu, offset)
		}
		if classify(magic).Kind != Thin64 || seen[cpu] {
			continue
		}
		seen[cpu] = true
		slices = append(slices, Slice{
			CPU:    cpu,
			SubCPU: sub,
			Offset: offset,
			Size:   size,
		})
	}
	return slices, nil
}
