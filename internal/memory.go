package internal

// Memory gives read access to an image loaded into the address space of the running process.
// Offsets are relative to the image's mach header.
type Memory interface {
	Bytes(off, n uint64) ([]byte, error)
}

// FindInMemory locates a section within a loaded 64-bit image and returns a copy of its data.
// Section data is addressed through its virtual address, as the image is mapped rather than read from a file.
func FindInMemory(mem Memory, segment, section string) ([]byte, error) {
	hdr, err := mem.Bytes(0, HeaderSize64)
	if err != nil {
		return nil, WrapExtractErr(ErrSelfImageUnavailable, err, "read mach header")
	}
	f, err := Sniff(hdr)
	if err != nil {
		return nil, NewExtractErr(ErrSelfImageUnavailable, "loaded image has no mach header")
	}
	switch f.Kind {
	case Thin64:
	case Thin32:
		return nil, NewExtractErr(ErrUnsupportedArchitecture, "running as 32-bit image")
	default:
		return nil, NewExtractErr(ErrSelfImageUnavailable, "loaded image is a %s container", f.Kind)
	}

	sizeofcmds := uint64(f.Order().Uint32(hdr[20:24]))
	hdr, err = mem.Bytes(0, HeaderSize64+sizeofcmds)
	if err != nil {
		return nil, WrapExtractErr(ErrSelfImageUnavailable, err, "read load commands")
	}
	sect, err := FindSection(hdr, segment, section)
	if err != nil {
		return nil, err
	}

	off := sect.Offset
	if sect.Mapped {
		if sect.Addr < sect.ImageAddr {
			return nil, NewExtractErr(ErrSectionNotFound, "section address %#x below image address %#x", sect.Addr, sect.ImageAddr)
		}
		off = sect.Addr - sect.ImageAddr
	}
	data, err := mem.Bytes(off, sect.Size)
	if err != nil {
		return nil, WrapExtractErr(ErrSectionNotFound, err, "read section data")
	}
	return Extract(data, 0, sect.Size)
}
