package internal

import "debug/macho"

// RequestKind says how a slice of a fat container is picked.
type RequestKind int

const (
	RequestNative RequestKind = iota // Slice matching the host's cpu
	RequestAny                       // Any slice
	RequestCPU                       // Slice of a specific cpu
)

// Request selects a slice of a fat container.
type Request struct {
	Kind RequestKind
	CPU  macho.Cpu // Only used by RequestCPU
}

// HostCPUFunc resolves the cpu type of the host.
type HostCPUFunc func() (macho.Cpu, error)

// SelectSlice picks exactly one slice.
//
// A single usable slice is always returned, no matter what was requested.
// If several slices exist, the request decides. RequestAny returns the first slice in directory order.
// hostCPU is only called for native requests with more than one candidate.
func SelectSlice(slices []Slice, req Request, hostCPU HostCPUFunc) (Slice, error) {
	switch len(slices) {
	case 0:
		return Slice{}, NewExtractErr(ErrUnsupportedArchitecture, "fat container holds no 64-bit slice")
	case 1:
		return slices[0], nil
	}

	var want macho.Cpu
	switch req.Kind {
	case RequestAny:
		return slices[0], nil
	case RequestCPU:
		want = req.CPU
	default:
		cpu, err := hostCPU()
		if err != nil {
			return Slice{}, WrapExtractErr(ErrHostArchitectureUndeterminable, err, "")
		}
		want = cpu
	}

	for _, s := range slices {
		if s.CPU == want {
			return s, nil
		}
	}
	return Slice{}, NewExtractErr(ErrRequestedSliceUnavailable, "no slice for %s among %d slices", want, len(slices))
}
