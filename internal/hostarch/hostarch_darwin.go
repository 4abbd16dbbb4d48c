//go:build darwin

package hostarch

import (
	"debug/macho"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// CPU returns the cpu type of the host, combining the kernel's cpu type with its 64-bit capability.
func CPU() (macho.Cpu, error) {
	cputype, err := unix.SysctlUint32("hw.cputype")
	if err != nil {
		return 0, errors.Wrap(err, "sysctl hw.cputype")
	}
	capable, err := unix.SysctlUint32("hw.cpu64bit_capable")
	if err != nil {
		return 0, errors.Wrap(err, "sysctl hw.cpu64bit_capable")
	}

	cpu := macho.Cpu(cputype)
	if capable != 0 {
		cpu |= cpuArchABI64
	}
	return cpu, nil
}
