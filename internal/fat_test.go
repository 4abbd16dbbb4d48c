package internal

import (
	"debug/macho"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/maja42/execinfo/internal/machotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fatSlices(t *testing.T, b []byte) ([]Slice, error) {
	f, err := Sniff(b)
	require.NoError(t, err)
	require.Equal(t, Fat, f.Kind)
	return FatSlices(b, f.Order())
}

func TestFatSlices(t *testing.T) {
	fat := machotest.Fat{Slices: []machotest.Image{
		{CPU: macho.CpuAmd64},
		{CPU: macho.CpuArm64},
	}}

	slices, err := fatSlices(t, fat.Bytes())
	require.NoError(t, err)
	require.Len(t, slices, 2)

	assert.Equal(t, macho.CpuAmd64, slices[0].CPU)
	assert.Equal(t, uint64(fat.SliceOffset(0)), slices[0].Offset)
	assert.Equal(t, macho.CpuArm64, slices[1].CPU)
	assert.Equal(t, uint64(fat.SliceOffset(1)), slices[1].Offset)
	assert.Equal(t, uint64(len(fat.Slices[1].Bytes())), slices[1].Size)
}

func TestFatSlices_littleEndianDirectory(t *testing.T) {
	fat := machotest.Fat{
		Order: binary.LittleEndian,
		Slices: []machotest.Image{
			{CPU: macho.CpuAmd64},
			{CPU: macho.CpuArm64},
		},
	}

	slices, err := fatSlices(t, fat.Bytes())
	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, macho.CpuArm64, slices[1].CPU)
	assert.Equal(t, uint64(fat.SliceOffset(1)), slices[1].Offset)
}

func TestFatSlices_skips32Bit(t *testing.T) {
	fat := machotest.Fat{Slices: []machotest.Image{
		{CPU: macho.Cpu386, Is32: true},
		{CPU: macho.CpuArm64},
		{CPU: macho.CpuArm, Is32: true},
	}}

	slices, err := fatSlices(t, fat.Bytes())
	require.NoError(t, err)
	require.Len(t, slices, 1)
	assert.Equal(t, macho.CpuArm64, slices[0].CPU)
	assert.Equal(t, uint64(fat.SliceOffset(1)), slices[0].Offset)
}

func TestFatSlices_only32Bit(t *testing.T) {
	fat := machotest.Fat{Slices: []machotest.Image{
		{CPU: macho.Cpu386, Is32: true},
		{CPU: macho.CpuArm, Is32: true},
	}}

	slices, err := fatSlices(t, fat.Bytes())
	require.NoError(t, err)
	assert.Empty(t, slices)
}

func TestFatSlices_duplicateCPU(t *testing.T) {
	fat := machotest.Fat{Slices: []machotest.Image{
		{CPU: macho.CpuArm64},
		{CPU: macho.CpuArm64},
	}}

	slices, err := fatSlices(t, fat.Bytes())
	require.NoError(t, err)
	require.Len(t, slices, 1)
	assert.Equal(t, uint64(fat.SliceOffset(0)), slices[0].Offset)
}

func TestFatSlices_truncatedDirectory(t *testing.T) {
	b := machotest.Fat{Slices: []machotest.Image{{}, {}}}.Bytes()

	_, err := fatSlices(t, b[:machotest.FatHeaderSize+machotest.FatArchSize+3])
	assert.True(t, errors.Is(err, ErrNotRecognizedContainer))

	_, err = fatSlices(t, b[:6])
	assert.True(t, errors.Is(err, ErrNotRecognizedContainer))
}

func TestFatSlices_sliceOutOfBounds(t *testing.T) {
	fat := machotest.Fat{Slices: []machotest.Image{{}}}
	b := fat.Bytes()
	binary.BigEndian.PutUint32(b[machotest.FatHeaderSize+8:], uint32(len(b)-2))

	_, err := fatSlices(t, b)
	assert.True(t, errors.Is(err, ErrNotRecognizedContainer))
	assert.Contains(t, err.Error(), "outside the container")
}

func TestFatSlices_hugeCount(t *testing.T) {
	b := machotest.Fat{Slices: []machotest.Image{{}}}.Bytes()
	binary.BigEndian.PutUint32(b[4:], 0xffffffff)

	_, err := fatSlices(t, b)
	assert.True(t, errors.Is(err, ErrNotRecognizedContainer))
}
