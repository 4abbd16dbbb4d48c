package execinfo

import "github.com/maja42/execinfo/internal"

// ExtractErr reports why a section could not be extracted.
// Use errors.Is with one of the Err* kinds to distinguish failures.
type ExtractErr = internal.ExtractErr

var (
	// ErrNotRecognizedContainer is returned if the leading magic value is neither a mach-o image nor a fat container.
	ErrNotRecognizedContainer = internal.ErrNotRecognizedContainer
	// ErrUnsupportedArchitecture is returned for 32-bit images, or fat containers without 64-bit slices.
	ErrUnsupportedArchitecture = internal.ErrUnsupportedArchitecture
	// ErrRequestedSliceUnavailable is returned if a fat container holds several slices, but none matches the requested architecture.
	ErrRequestedSliceUnavailable = internal.ErrRequestedSliceUnavailable
	// ErrSectionNotFound is returned if the section does not exist, or its data lies outside the image.
	ErrSectionNotFound = internal.ErrSectionNotFound
	// ErrSelfImageUnavailable is returned by ReadSelf if the image of the running process cannot be accessed.
	ErrSelfImageUnavailable = internal.ErrSelfImageUnavailable
	// ErrHostArchitectureUndeterminable is returned if the host's architecture is needed to pick a slice, but cannot be resolved.
	ErrHostArchitectureUndeterminable = internal.ErrHostArchitectureUndeterminable
)
