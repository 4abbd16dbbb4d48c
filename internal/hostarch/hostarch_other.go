//go:build !darwin

package hostarch

import (
	"debug/macho"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/host"
)

// CPU returns the cpu type matching the architecture reported by the host's kernel.
func CPU() (macho.Cpu, error) {
	arch, err := host.KernelArch()
	if err != nil {
		return 0, errors.Wrap(err, "query kernel architecture")
	}
	return FromName(arch)
}
