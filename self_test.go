package execinfo

import (
	"debug/macho"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maja42/execinfo/internal"
	"github.com/maja42/execinfo/internal/machotest"
)

// fakeImage serves a synthesized image as the image of the running process.
type fakeImage []byte

func (m fakeImage) Bytes(off, n uint64) ([]byte, error) {
	if off > uint64(len(m)) || n > uint64(len(m))-off {
		return nil, fmt.Errorf("unmapped range [%#x, +%d)", off, n)
	}
	return m[off : off+n], nil
}

func withMainImage(t *testing.T, load func() (internal.Memory, error)) {
	orig := mainImage
	mainImage = load
	t.Cleanup(func() { mainImage = orig })
}

func TestReadSelf(t *testing.T) {
	mem := fakeImage(image(macho.CpuArm64, "own info").Bytes())
	withMainImage(t, func() (internal.Memory, error) { return mem, nil })

	first, err := ReadSelf(InfoPlist)
	require.NoError(t, err)
	assert.Equal(t, []byte("own info"), first)

	second, err := ReadSelf(InfoPlist)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	launchd, err := ReadSelf(LaunchdPlist)
	require.NoError(t, err)
	assert.Equal(t, []byte("launchd of own info"), launchd)

	_, err = ReadSelf(Custom("__missing"))
	assert.True(t, errors.Is(err, ErrSectionNotFound))
}

func TestReadSelf_unavailable(t *testing.T) {
	withMainImage(t, func() (internal.Memory, error) {
		return nil, internal.NewExtractErr(ErrSelfImageUnavailable, "simulated")
	})

	data, err := ReadSelf(InfoPlist)
	assert.Nil(t, data)
	assert.EqualError(t, err, "executable image of the running process unavailable: simulated")
}

func TestReadSelf_32Bit(t *testing.T) {
	mem := fakeImage(append(machotest.Image{Is32: true}.Bytes(), 0, 0, 0, 0))
	withMainImage(t, func() (internal.Memory, error) { return mem, nil })

	_, err := ReadSelf(InfoPlist)
	assert.True(t, errors.Is(err, ErrUnsupportedArchitecture))
}

// TestReadSelf_process reads from the image of the test binary itself.
func TestReadSelf_process(t *testing.T) {
	text := Target{Segment: "__TEXT", Section: "__text"}

	first, err := ReadSelf(text)
	if runtime.GOOS != "darwin" {
		assert.True(t, errors.Is(err, ErrSelfImageUnavailable))
		return
	}
	if errors.Is(err, ErrSelfImageUnavailable) {
		t.Skipf("no access to own image: %s", err)
	}
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := ReadSelf(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// test binaries carry no Info.plist
	_, err = ReadSelf(InfoPlist)
	assert.True(t, errors.Is(err, ErrSectionNotFound))
}
