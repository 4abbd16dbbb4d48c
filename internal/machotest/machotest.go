// Package machotest synthesizes mach-o images for tests.
//
// Images contain a mach header and one LC_SEGMENT_64 command per segment, nothing else.
// The first segment maps file offset zero to TextAddr, all others are mapped linearly behind it,
// so that virtual addresses and file offsets differ by TextAddr throughout the image.
package machotest

import (
	"debug/macho"
	"encoding/binary"
)

const (
	TextAddr = 0x100000000

	HeaderSize64     = 32
	HeaderSize32     = 28
	SegmentCmdSize64 = 72
	SectionSize64    = 80
	FatHeaderSize    = 8
	FatArchSize      = 20

	// SliceAlign is the power of two every slice of a fat container is aligned to.
	SliceAlign = 8
)

// Section is placed into a synthesized image.
type Section struct {
	Segment string
	Name    string
	Data    []byte
}

// Image describes a single-architecture image.
type Image struct {
	CPU   macho.Cpu              // Defaults to x86_64
	Is32  bool                   // Writes a bare 32-bit header instead
	Order binary.AppendByteOrder // Defaults to little endian

	Sections []Section
}

type segmentGroup struct {
	name     string
	sections []Section
}

// Bytes returns the image.
// Section data is placed in order behind the load commands.
func (img Image) Bytes() []byte {
	order := img.Order
	if order == nil {
		order = binary.LittleEndian
	}
	cpu := img.CPU
	if cpu == 0 {
		cpu = macho.CpuAmd64
	}

	if img.Is32 {
		b := order.AppendUint32(nil, macho.Magic32)
		b = order.AppendUint32(b, uint32(cpu&^0x01000000))
		b = order.AppendUint32(b, 3) // cpusubtype
		b = order.AppendUint32(b, uint32(macho.TypeExec))
		b = order.AppendUint32(b, 0) // ncmds
		b = order.AppendUint32(b, 0) // sizeofcmds
		b = order.AppendUint32(b, 0) // flags
		return b
	}

	groups := groupSegments(img.Sections)
	sizeofcmds := 0
	for _, g := range groups {
		sizeofcmds += SegmentCmdSize64 + SectionSize64*len(g.sections)
	}

	b := order.AppendUint32(nil, macho.Magic64)
	b = order.AppendUint32(b, uint32(cpu))
	b = order.AppendUint32(b, 0) // cpusubtype
	b = order.AppendUint32(b, uint32(macho.TypeExec))
	b = order.AppendUint32(b, uint32(len(groups)))
	b = order.AppendUint32(b, uint32(sizeofcmds))
	b = order.AppendUint32(b, 0) // flags
	b = order.AppendUint32(b, 0) // reserved

	var data []byte
	offset := uint64(HeaderSize64 + sizeofcmds)
	for i, g := range groups {
		fileoff := offset
		if i == 0 {
			fileoff = 0
		}
		end := offset
		for _, s := range g.sections {
			end += uint64(len(s.Data))
		}

		b = order.AppendUint32(b, uint32(macho.LoadCmdSegment64))
		b = order.AppendUint32(b, uint32(SegmentCmdSize64+SectionSize64*len(g.sections)))
		b = appendName(b, g.name)
		b = order.AppendUint64(b, TextAddr+fileoff) // vmaddr
		b = order.AppendUint64(b, end-fileoff)      // vmsize
		b = order.AppendUint64(b, fileoff)
		b = order.AppendUint64(b, end-fileoff) // filesize
		b = order.AppendUint32(b, 5)           // maxprot
		b = order.AppendUint32(b, 5)           // initprot
		b = order.AppendUint32(b, uint32(len(g.sections)))
		b = order.AppendUint32(b, 0) // flags

		for _, s := range g.sections {
			b = appendName(b, s.Name)
			b = appendName(b, g.name)
			b = order.AppendUint64(b, TextAddr+offset)
			b = order.AppendUint64(b, uint64(len(s.Data)))
			b = order.AppendUint32(b, uint32(offset))
			for j := 0; j < 7; j++ { // align, reloff, nreloc, flags, reserved1-3
				b = order.AppendUint32(b, 0)
			}
			data = append(data, s.Data...)
			offset += uint64(len(s.Data))
		}
	}
	return append(b, data...)
}

// SectionOffset returns the file offset of the n-th section header within the image.
func (img Image) SectionOffset(n int) int {
	off := HeaderSize64
	for _, g := range groupSegments(img.Sections) {
		off += SegmentCmdSize64
		for range g.sections {
			if n == 0 {
				return off
			}
			n--
			off += SectionSize64
		}
	}
	panic("machotest: section index out of range")
}

func groupSegments(sections []Section) []segmentGroup {
	var groups []segmentGroup
	index := make(map[string]int)
	for _, s := range sections {
		i, ok := index[s.Segment]
		if !ok {
			i = len(groups)
			index[s.Segment] = i
			groups = append(groups, segmentGroup{name: s.Segment})
		}
		groups[i].sections = append(groups[i].sections, s)
	}
	return groups
}

func appendName(b []byte, name string) []byte {
	var field [16]byte
	copy(field[:], name)
	return append(b, field[:]...)
}

// Fat describes a multi-architecture container.
type Fat struct {
	Slices []Image
	// Order of the fat header and directory. Defaults to big endian.
	Order binary.AppendByteOrder
}

// Bytes returns the container.
// Slices are aligned to 1<<SliceAlign bytes.
func (f Fat) Bytes() []byte {
	order := f.Order
	if order == nil {
		order = binary.BigEndian
	}

	images := make([][]byte, len(f.Slices))
	for i, img := range f.Slices {
		images[i] = img.Bytes()
	}

	b := order.AppendUint32(nil, macho.MagicFat)
	b = order.AppendUint32(b, uint32(len(images)))

	offsets := make([]int, len(images))
	offset := FatHeaderSize + FatArchSize*len(images)
	for i, img := range images {
		offset = align(offset)
		offsets[i] = offset
		offset += len(img)
	}

	for i, img := range images {
		cpu := f.Slices[i].CPU
		if cpu == 0 {
			cpu = macho.CpuAmd64
		}
		if f.Slices[i].Is32 {
			cpu &^= 0x01000000
		}
		b = order.AppendUint32(b, uint32(cpu))
		b = order.AppendUint32(b, 0) // cpusubtype
		b = order.AppendUint32(b, uint32(offsets[i]))
		b = order.AppendUint32(b, uint32(len(img)))
		b = order.AppendUint32(b, SliceAlign)
	}

	for i, img := range images {
		b = append(b, make([]byte, offsets[i]-len(b))...)
		b = append(b, img...)
	}
	return b
}

// SliceOffset returns the offset of the n-th slice within the container.
func (f Fat) SliceOffset(n int) int {
	offset := FatHeaderSize + FatArchSize*len(f.Slices)
	for i, img := range f.Slices {
		offset = align(offset)
		if i == n {
			return offset
		}
		offset += len(img.Bytes())
	}
	panic("machotest: slice index out of range")
}

func align(n int) int {
	const a = 1 << SliceAlign
	return (n + a - 1) &^ (a - 1)
}
