// Package hostarch resolves the architecture of the host in terms of mach-o cpu types.
package hostarch

import (
	"debug/macho"
	"strings"

	"github.com/pkg/errors"
)

// cpuArchABI64 marks the 64-bit variant of a cpu type.
const cpuArchABI64 = 0x01000000

var cpuNames = map[string]macho.Cpu{
	"x86_64":  macho.CpuAmd64,
	"amd64":   macho.CpuAmd64,
	"arm64":   macho.CpuArm64,
	"arm64e":  macho.CpuArm64,
	"aarch64": macho.CpuArm64,
	"i386":    macho.Cpu386,
	"i686":    macho.Cpu386,
	"x86":     macho.Cpu386,
	"386":     macho.Cpu386,
	"arm":     macho.CpuArm,
	"armv7l":  macho.CpuArm,
	"ppc":     macho.CpuPpc,
	"powerpc": macho.CpuPpc,
	"ppc64":   macho.CpuPpc64,
	"ppc64le": macho.CpuPpc64,
}

// FromName maps an architecture name, as reported by uname or used by GOARCH, to a cpu type.
func FromName(name string) (macho.Cpu, error) {
	cpu, ok := cpuNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown architecture %q", name)
	}
	return cpu, nil
}

// Is64 reports whether cpu denotes a 64-bit architecture.
func Is64(cpu macho.Cpu) bool {
	return cpu&cpuArchABI64 != 0
}
