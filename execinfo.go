// Package execinfo extracts sections embedded into mach-o executables,
// like the Info.plist or launchd.plist that is linked into command line tools.
//
// Sections can be read from arbitrary executables (single-architecture or fat),
// or from the image of the running process without touching the file system.
// The returned data is not interpreted in any way.
package execinfo

import (
	"debug/macho"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/maja42/execinfo/internal"
)

// ReadFile returns the data of a section within the executable at path.
func ReadFile(path string, target Target, opts ...Option) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read executable %q", path)
	}
	return Read(data, target, opts...)
}

// Read returns the data of a section within an executable.
// data must contain the whole executable and is not modified.
func Read(data []byte, target Target, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	log := o.logger.With().Stringer("section", target).Logger()

	off, err := locateImage(data, o, log)
	if err != nil {
		return nil, err
	}

	sect, err := internal.FindSection(data[off:], target.Segment, target.Section)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Uint64("offset", off+sect.Offset).
		Uint64("size", sect.Size).
		Msg("Found section")

	return internal.Extract(data, off+sect.Offset, sect.Size)
}

// locateImage returns the offset of the 64-bit mach header to read from.
func locateImage(data []byte, o options, log zerolog.Logger) (uint64, error) {
	f, err := internal.Sniff(data)
	if err != nil {
		return 0, err
	}
	log.Debug().Stringer("format", f.Kind).Bool("swapped", f.Swapped).Msg("Detected container")

	switch f.Kind {
	case internal.Thin64:
		return 0, nil
	case internal.Thin32:
		return 0, internal.NewExtractErr(ErrUnsupportedArchitecture, "32-bit image")
	}

	slices, err := internal.FatSlices(data, f.Order())
	if err != nil {
		return 0, err
	}
	log.Debug().Int("slices", len(slices)).Stringer("arch", o.arch).Msg("Selecting slice")

	slice, err := internal.SelectSlice(slices, o.arch.req, o.hostCPU)
	if err != nil {
		return 0, err
	}
	log.Debug().Stringer("cpu", slice.CPU).Uint64("offset", slice.Offset).Msg("Selected slice")
	return slice.Offset, nil
}

// Architectures returns the cpu types of all 64-bit images within an executable.
// Fat containers list their usable slices in directory order.
func Architectures(data []byte) ([]macho.Cpu, error) {
	f, err := internal.Sniff(data)
	if err != nil {
		return nil, err
	}

	switch f.Kind {
	case internal.Thin32:
		return nil, internal.NewExtractErr(ErrUnsupportedArchitecture, "32-bit image")
	case internal.Thin64:
		if len(data) < internal.HeaderSize64 {
			return nil, internal.NewExtractErr(ErrNotRecognizedContainer, "truncated mach header")
		}
		return []macho.Cpu{macho.Cpu(f.Order().Uint32(data[4:]))}, nil
	}

	slices, err := internal.FatSlices(data, f.Order())
	if err != nil {
		return nil, err
	}
	cpus := make([]macho.Cpu, len(slices))
	for i, s := range slices {
		cpus[i] = s.CPU
	}
	return cpus, nil
}
