package main

import (
	"errors"

	"github.com/maja42/execinfo"
)

// Exit codes. Usage and I/O errors exit with 1.
const (
	exitNotRecognized      = 10
	exitUnsupportedArch    = 11
	exitSliceUnavailable   = 12
	exitSectionNotFound    = 13
	exitSelfUnavailable    = 14
	exitHostUndeterminable = 15
)

var exitCodes = []struct {
	kind error
	code int
}{
	{execinfo.ErrNotRecognizedContainer, exitNotRecognized},
	{execinfo.ErrUnsupportedArchitecture, exitUnsupportedArch},
	{execinfo.ErrRequestedSliceUnavailable, exitSliceUnavailable},
	{execinfo.ErrSectionNotFound, exitSectionNotFound},
	{execinfo.ErrSelfImageUnavailable, exitSelfUnavailable},
	{execinfo.ErrHostArchitectureUndeterminable, exitHostUndeterminable},
}

// exitCode maps extraction failures to distinct exit codes, so that scripts can tell them apart.
func exitCode(err error) int {
	for _, c := range exitCodes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return 1
}
