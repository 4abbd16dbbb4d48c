package internal

// Extract returns a copy of size bytes at offset off within b.
func Extract(b []byte, off, size uint64) ([]byte, error) {
	if off > uint64(len(b)) || size > uint64(len(b))-off {
		return nil, NewExtractErr(ErrSectionNotFound, "section data [%#x, %#x) outside %d-byte image", off, off+size, len(b))
	}
	data := make([]byte, size)
	copy(data, b[off:off+size])
	return data, nil
}
