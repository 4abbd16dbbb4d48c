package hostarch

import (
	"debug/macho"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	for name, want := range map[string]macho.Cpu{
		"x86_64":   macho.CpuAmd64,
		"amd64":    macho.CpuAmd64,
		"aarch64":  macho.CpuArm64,
		" ARM64\n": macho.CpuArm64,
		"i686":     macho.Cpu386,
		"ppc64le":  macho.CpuPpc64,
	} {
		cpu, err := FromName(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, cpu, name)
	}

	_, err := FromName("riscv64")
	assert.EqualError(t, err, `unknown architecture "riscv64"`)
}

func TestIs64(t *testing.T) {
	assert.True(t, Is64(macho.CpuAmd64))
	assert.True(t, Is64(macho.CpuArm64))
	assert.False(t, Is64(macho.Cpu386))
	assert.False(t, Is64(macho.CpuArm))
}

func TestCPU(t *testing.T) {
	cpu, err := CPU()
	if err != nil {
		t.Skipf("host architecture not resolvable: %s", err)
	}
	require.NotZero(t, cpu)
	_, known := map[macho.Cpu]bool{
		macho.CpuAmd64: true,
		macho.CpuArm64: true,
		macho.Cpu386:   true,
		macho.CpuArm:   true,
		macho.CpuPpc:   true,
		macho.CpuPpc64: true,
	}[cpu]
	assert.True(t, known, "unexpected cpu %s", cpu)
}
