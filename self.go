package execinfo

import "github.com/maja42/execinfo/internal"

// mainImage resolves the image of the running process. Replaced by tests.
var mainImage = loadedImage

// ReadSelf returns the data of a section within the executable of the running process.
// The section is read from memory, the executable file is not accessed.
//
// This is only supported on darwin, and requires cgo.
// Other platforms fail with ErrSelfImageUnavailable.
func ReadSelf(target Target, opts ...Option) ([]byte, error) {
	o := newOptions(opts)

	mem, err := mainImage()
	if err != nil {
		return nil, err
	}
	data, err := internal.FindInMemory(mem, target.Segment, target.Section)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().Stringer("section", target).Int("size", len(data)).Msg("Read section from own image")
	return data, nil
}
