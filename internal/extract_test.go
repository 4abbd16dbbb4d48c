package internal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	b := []byte("0123456789")

	data, err := Extract(b, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("234"), data)

	data, err = Extract(b, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, data)

	// result must not alias the image
	data, err = Extract(b, 0, 10)
	require.NoError(t, err)
	data[0] = 'x'
	assert.Equal(t, byte('0'), b[0])
}

func TestExtract_outOfBounds(t *testing.T) {
	b := []byte("0123456789")

	for _, r := range [][2]uint64{
		{0, 11},
		{9, 2},
		{11, 0},
		{math.MaxUint64, 2},
		{2, math.MaxUint64},
	} {
		_, err := Extract(b, r[0], r[1])
		assert.True(t, errors.Is(err, ErrSectionNotFound), "%v", r)
	}
}
