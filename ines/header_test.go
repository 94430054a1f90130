package ines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeader(flags6, flags7 byte) []byte {
	h := make([]byte, headerSize)
	copy(h[0:4], magic[:])
	h[4] = 2 // prg
	h[5] = 1 // chr
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestNewRejectsShortInput(t *testing.T) {
	_, err := New([]byte{0x4e, 0x45, 0x53})
	require.Error(t, err)
	var invalid *InvalidHeaderError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewRejectsBadMagic(t *testing.T) {
	h := validHeader(0, 0)
	h[0] = 0x00
	_, err := New(h)
	require.Error(t, err)
}

func TestFieldsAndMapper(t *testing.T) {
	// mapper 0x31: low nibble 1 from flags6, high nibble 3 from flags7
	h, err := New(validHeader(0b0001_0000, 0b0011_0000))
	require.NoError(t, err)

	assert.Equal(t, 2, h.PRGROMSize())
	assert.Equal(t, 1, h.CHRROMSize())
	assert.Equal(t, byte(0x31), h.Mapper())
}

func TestMirrorType(t *testing.T) {
	horiz, _ := New(validHeader(0, 0))
	assert.Equal(t, Horizontal, horiz.MirrorType())

	vert, _ := New(validHeader(0b0000_0001, 0))
	assert.Equal(t, Vertical, vert.MirrorType())

	four, _ := New(validHeader(0b0000_1001, 0))
	assert.Equal(t, FourScreen, four.MirrorType())
}

func TestTrainerAndPersistentRAM(t *testing.T) {
	h, _ := New(validHeader(0b0000_0110, 0))
	assert.True(t, h.HasTrainer())
	assert.True(t, h.HasPersistentRAM())

	h2, _ := New(validHeader(0, 0))
	assert.False(t, h2.HasTrainer())
	assert.False(t, h2.HasPersistentRAM())
}
