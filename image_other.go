//go:build !darwin || !cgo

package execinfo

import (
	"runtime"

	"github.com/maja42/execinfo/internal"
)

func loadedImage() (internal.Memory, error) {
	if runtime.GOOS == "darwin" {
		return nil, internal.NewExtractErr(ErrSelfImageUnavailable, "built without cgo")
	}
	return nil, internal.NewExtractErr(ErrSelfImageUnavailable, "no mach-o image loader on %s", runtime.GOOS)
}
