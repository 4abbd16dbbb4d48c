package execinfo

import (
	"debug/macho"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	for s, want := range map[string]Arch{
		"":           NativeArch,
		"native":     NativeArch,
		"any":        AnyArch,
		"arm64":      ArchCPU(macho.CpuArm64),
		"x86_64":     ArchCPU(macho.CpuAmd64),
		"amd64":      ArchCPU(macho.CpuAmd64),
		"0x0100000c": ArchCPU(macho.CpuArm64),
		"16777223":   ArchCPU(macho.CpuAmd64),
	} {
		a, err := ParseArch(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, a, s)
	}
}

func TestParseArch_invalid(t *testing.T) {
	_, err := ParseArch("i386")
	assert.EqualError(t, err, `architecture "i386" is not 64-bit`)

	_, err = ParseArch("12")
	assert.EqualError(t, err, `architecture "12" is not 64-bit`)

	_, err = ParseArch("vax")
	assert.EqualError(t, err, `unknown architecture "vax"`)
}

func TestArch_String(t *testing.T) {
	assert.Equal(t, "native", NativeArch.String())
	assert.Equal(t, "any", AnyArch.String())
	assert.Equal(t, macho.CpuArm64.String(), ArchCPU(macho.CpuArm64).String())
}
