//go:build darwin && cgo

package execinfo

/*
#include <mach-o/dyld.h>
*/
import "C"

import (
	"unsafe"

	"github.com/maja42/execinfo/internal"
)

// liveImage addresses an image mapped by dyld.
type liveImage struct {
	hdr unsafe.Pointer
}

func (m liveImage) Bytes(off, n uint64) ([]byte, error) {
	return unsafe.Slice((*byte)(unsafe.Add(m.hdr, off)), n), nil
}

// loadedImage returns the image of the main executable, which dyld always keeps at index zero.
func loadedImage() (internal.Memory, error) {
	hdr := C._dyld_get_image_header(0)
	if hdr == nil {
		return nil, internal.NewExtractErr(ErrSelfImageUnavailable, "dyld reports no main executable")
	}
	return liveImage{hdr: unsafe.Pointer(hdr)}, nil
}
