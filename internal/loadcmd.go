package internal

import (
	"debug/macho"
	"encoding/binary"
	"fmt"
)

const (
	HeaderSize64     = 32 // magic, cputype, cpusubtype, filetype, ncmds, sizeofcmds, flags, reserved
	loadCmdSize      = 8  // cmd, cmdsize
	SegmentCmdSize64 = 72
	SectionSize64    = 80
)

// Section locates a section within a 64-bit image.
type Section struct {
	// Offset of the section's data, relative to the start of the mach header.
	Offset uint64
	Size   uint64
	// Addr is the virtual address of the section.
	Addr uint64
	// ImageAddr is the virtual address the mach header is mapped to, i.e. that of the segment mapping file offset zero.
	// Only valid if Mapped is set.
	ImageAddr uint64
	Mapped    bool
}

// FindSection walks the load commands of the 64-bit image starting at hdr[0]
// and locates the named section.
// Load commands are never read beyond the size declared in the header,
// which itself must fit into hdr.
func FindSection(hdr []byte, segment, section string) (Section, error) {
	f, err := Sniff(hdr)
	if err != nil {
		return Section{}, err
	}
	switch f.Kind {
	case Thin64:
	case Thin32:
		return Section{}, NewExtractErr(ErrUnsupportedArchitecture, "32-bit image")
	default:
		return Section{}, NewExtractErr(ErrNotRecognizedContainer, "expected a 64-bit mach header, found %s", f.Kind)
	}
	order := f.Order()

	c := newCursor(hdr, 16, order) // skip magic, cputype, cpusubtype, filetype
	ncmds := c.uint32()
	sizeofcmds := uint64(c.uint32())
	if c.err == nil && len(hdr) < HeaderSize64 {
		c.err = fmt.Errorf("%d bytes are too short for a mach header", len(hdr))
	}
	if c.err != nil {
		return Section{}, malformed(c.err, "truncated mach header")
	}
	if sizeofcmds > uint64(len(hdr)-HeaderSize64) {
		return Section{}, malformed(nil, "load commands (%d bytes) exceed %d-byte image", sizeofcmds, len(hdr))
	}
	cmds := hdr[HeaderSize64 : HeaderSize64+sizeofcmds]

	var (
		found Section
		match bool
		base  uint64
		based bool
	)
	off := 0
	for i := uint32(0); i < ncmds; i++ {
		c := newCursor(cmds, off, order)
		cmd := macho.LoadCmd(c.uint32())
		size := int(c.uint32())
		if c.err != nil {
			return Section{}, malformed(c.err, "load command %d", i)
		}
		if size < loadCmdSize || size > len(cmds)-off {
			return Section{}, malformed(nil, "load command %d: size %d at %#x exceeds declared %d bytes", i, size, off, len(cmds))
		}

		if cmd == macho.LoadCmdSegment64 {
			seg, err := parseSegment(cmds[off:off+size], order)
			if err != nil {
				return Section{}, malformed(err, "load command %d", i)
			}
			if seg.fileoff == 0 && seg.filesize != 0 && !based {
				base, based = seg.vmaddr, true
			}
			if !match {
				found, match = seg.lookup(segment, section)
			}
		}
		off += size
	}

	if !match {
		return Section{}, NewExtractErr(ErrSectionNotFound, "%s,%s", segment, section)
	}
	found.ImageAddr, found.Mapped = base, based
	return found, nil
}

type segment struct {
	vmaddr   uint64
	fileoff  uint64
	filesize uint64
	sections []sectionHeader
}

type sectionHeader struct {
	name    []byte
	segname []byte
	addr    uint64
	size    uint64
	offset  uint32
}

// parseSegment decodes a LC_SEGMENT_64 command including its section headers.
func parseSegment(cmd []byte, order binary.ByteOrder) (segment, error) {
	c := newCursor(cmd, loadCmdSize, order)
	c.skip(nameSize) // segname
	seg := segment{vmaddr: c.uint64()}
	c.skip(8) // vmsize
	seg.fileoff = c.uint64()
	seg.filesize = c.uint64()
	c.skip(8) // maxprot, initprot
	nsects := uint64(c.uint32())
	c.skip(4) // flags
	if c.err != nil {
		return segment{}, c.err
	}
	if nsects*SectionSize64 > uint64(len(cmd)-SegmentCmdSize64) {
		return segment{}, fmt.Errorf("%d sections exceed segment command of %d bytes", nsects, len(cmd))
	}

	seg.sections = make([]sectionHeader, nsects)
	for i := range seg.sections {
		h := &seg.sections[i]
		h.name = c.name()
		h.segname = c.name()
		h.addr = c.uint64()
		h.size = c.uint64()
		h.offset = c.uint32()
		c.skip(28) // align, reloff, nreloc, flags, reserved1-3
	}
	return seg, c.err
}

func (s segment) lookup(segname, sectname string) (Section, bool) {
	for _, h := range s.sections {
		if nameEquals(h.segname, segname) && nameEquals(h.name, sectname) {
			return Section{
				Offset: uint64(h.offset),
				Size:   h.size,
				Addr:   h.addr,
			}, true
		}
	}
	return Section{}, false
}

func malformed(cause error, format string, a ...interface{}) *ExtractErr {
	detail := "malformed load commands: " + fmt.Sprintf(format, a...)
	if cause == nil {
		return NewExtractErr(ErrSectionNotFound, "%s", detail)
	}
	return WrapExtractErr(ErrSectionNotFound, cause, "%s", detail)
}
