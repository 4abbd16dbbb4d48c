package execinfo

import (
	"github.com/rs/zerolog"

	"github.com/maja42/execinfo/internal"
	"github.com/maja42/execinfo/internal/hostarch"
)

// Option configures a single extraction.
type Option func(*options)

type options struct {
	arch    Arch
	logger  zerolog.Logger
	hostCPU internal.HostCPUFunc
}

func newOptions(opts []Option) options {
	o := options{
		arch:    NativeArch,
		logger:  zerolog.Nop(),
		hostCPU: hostarch.CPU,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithArch selects the slice to read from fat containers. Defaults to NativeArch.
func WithArch(a Arch) Option {
	return func(o *options) {
		o.arch = a
	}
}

// WithLogger reports the progress of the extraction on debug level.
// Nothing is logged by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
