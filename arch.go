package execinfo

import (
	"debug/macho"
	"strconv"

	"github.com/pkg/errors"

	"github.com/maja42/execinfo/internal"
	"github.com/maja42/execinfo/internal/hostarch"
)

// Arch selects the slice to read from fat containers.
// It has no effect on single-architecture images,
// and is ignored if a container holds only a single usable slice.
type Arch struct {
	req internal.Request
}

var (
	// NativeArch selects the slice matching the host's architecture. This is the default.
	NativeArch = Arch{req: internal.Request{Kind: internal.RequestNative}}
	// AnyArch selects an arbitrary slice.
	// The choice is deterministic for a given container, but should not be relied upon.
	AnyArch = Arch{req: internal.Request{Kind: internal.RequestAny}}
)

// ArchCPU selects the slice of a specific cpu type.
func ArchCPU(cpu macho.Cpu) Arch {
	return Arch{req: internal.Request{Kind: internal.RequestCPU, CPU: cpu}}
}

// ParseArch parses "native", "any", an architecture name like "arm64" or "x86_64", or a numeric cpu type.
// Only 64-bit architectures are accepted.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "", "native":
		return NativeArch, nil
	case "any":
		return AnyArch, nil
	}

	cpu, err := hostarch.FromName(s)
	if err != nil {
		n, perr := strconv.ParseUint(s, 0, 32)
		if perr != nil {
			return Arch{}, err
		}
		cpu = macho.Cpu(n)
	}
	if !hostarch.Is64(cpu) {
		return Arch{}, errors.Errorf("architecture %q is not 64-bit", s)
	}
	return ArchCPU(cpu), nil
}

func (a Arch) String() string {
	switch a.req.Kind {
	case internal.RequestAny:
		return "any"
	case internal.RequestCPU:
		return a.req.CPU.String()
	default:
		return "native"
	}
}
