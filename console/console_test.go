package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestest-cpu/ines"
)

// buildROM assembles a minimal iNES file: a 16-byte header declaring
// prgBanks 16 KiB PRG banks (mapper 0, no trainer, no CHR), followed by
// prgBanks*16 KiB of PRG data. prgBanks must be 1 or 2.
func buildROM(prgBanks byte, prg []byte) []byte {
	header := make([]byte, ines.HeaderSize)
	copy(header[0:4], []byte{0x4e, 0x45, 0x53, 0x1a})
	header[4] = prgBanks
	rom := append(header, prg...)
	return rom
}

func TestNewPlacesTwoPRGBanksDistinctly(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	prg[0] = 0xAA
	prg[prgBankSize] = 0xBB

	rom := buildROM(2, prg)
	cons, err := New(rom)
	require.NoError(t, err)

	assert.Equal(t, byte(0xAA), cons.Bus.ReadU8Unrestricted(0x8000))
	assert.Equal(t, byte(0xBB), cons.Bus.ReadU8Unrestricted(0xC000))
}

func TestNewMirrorsSinglePRGBank(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42

	rom := buildROM(1, prg)
	cons, err := New(rom)
	require.NoError(t, err)

	assert.Equal(t, byte(0x42), cons.Bus.ReadU8Unrestricted(0x8000))
	assert.Equal(t, byte(0x42), cons.Bus.ReadU8Unrestricted(0xC000))
}

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	prg := make([]byte, prgBankSize)
	rom := buildROM(1, prg)
	rom[6] = 0x10 // mapper low nibble 1 -> mapper 1, unsupported

	_, err := New(rom)
	require.Error(t, err)
	var unsupported *ines.UnsupportedMapperError
	assert.ErrorAs(t, err, &unsupported)
}

func TestResetVectorScenario(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	// $FFFC/$FFFD live at the end of PRG bank 2 ($C000-$FFFF), i.e. PRG
	// offset prgBankSize + (0xFFFC - 0xC000).
	off := prgBankSize + (0xFFFC - 0xC000)
	prg[off] = 0x00
	prg[off+1] = 0x80

	rom := buildROM(2, prg)
	cons, err := New(rom)
	require.NoError(t, err)

	cons.Reset(nil)
	assert.Equal(t, uint16(0x8000), cons.Cpu.ProgramCounter)
}

func TestRunStepsUntilKeepGoingIsFalse(t *testing.T) {
	prg := make([]byte, 2*prgBankSize)
	// A NOP at $8000; the zeroed bytes after it decode as BRK, which
	// vectors through the zeroed $FFFE to more zeroes, so no step fails.
	prg[0] = 0xEA // NOP

	rom := buildROM(2, prg)
	cons, err := New(rom)
	require.NoError(t, err)
	cons.Reset(ptr(0x8000))

	steps := 0
	err = cons.Run(func() bool {
		steps++
		return steps < 5
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, steps, 5)
}

func ptr(addr uint16) *uint16 { return &addr }
