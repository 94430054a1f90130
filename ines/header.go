// Package ines decodes the 16-byte iNES cartridge header: magic validation,
// PRG/CHR bank counts, mirroring, and the mapper number split across the two
// flag bytes.
package ines

import (
	"fmt"

	"nestest-cpu/mask"
)

// Mirror describes the nametable mirroring a cartridge reports. The PPU
// collaborator, not this package, acts on it.
type Mirror int

const (
	Horizontal Mirror = iota
	Vertical
	FourScreen
)

const (
	headerSize  = 16
	trainerSize = 512

	// Bit positions within flags6, 1-indexed per the mask package's
	// convention (bit position 8 is the LSB, 1 is the MSB).
	bitMirroring  = mask.I8
	bitPersistent = mask.I7
	bitTrainer    = mask.I6
	bitFourScreen = mask.I5
)

var magic = [4]byte{0x4e, 0x45, 0x53, 0x1a} // "NES" + 0x1A

// InvalidHeaderError is returned when a byte slice is too short or lacks the
// iNES magic tag.
type InvalidHeaderError struct {
	Reason string
}

func (e *InvalidHeaderError) Error() string { return "invalid iNES header: " + e.Reason }

// UnsupportedMapperError is returned by callers (the ROM loader) once the
// mapper number is known to fall outside the set this emulator supports.
type UnsupportedMapperError struct {
	Mapper byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper: %d", e.Mapper)
}

// Header holds the decoded fields of a 16-byte iNES header. It is immutable
// once constructed.
type Header struct {
	prgROMSize byte // 16 KiB units
	chrROMSize byte // 8 KiB units
	flags6     byte
	flags7     byte
	flags9     byte
	flags10    byte
}

// New parses the first 16 bytes of rom as an iNES header. It fails if rom is
// shorter than 16 bytes or the magic tag does not match.
func New(rom []byte) (*Header, error) {
	if len(rom) < headerSize {
		return nil, &InvalidHeaderError{Reason: fmt.Sprintf("need at least %d bytes, got %d", headerSize, len(rom))}
	}
	for i, want := range magic {
		if rom[i] != want {
			return nil, &InvalidHeaderError{Reason: "missing iNES magic tag"}
		}
	}
	return &Header{
		prgROMSize: rom[4],
		chrROMSize: rom[5],
		flags6:     rom[6],
		flags7:     rom[7],
		flags9:     rom[9],
		flags10:    rom[10],
	}, nil
}

// PRGROMSize returns the number of 16 KiB PRG-ROM banks.
func (h *Header) PRGROMSize() int { return int(h.prgROMSize) }

// CHRROMSize returns the number of 8 KiB CHR-ROM banks.
func (h *Header) CHRROMSize() int { return int(h.chrROMSize) }

// MirrorType reports the cartridge's requested nametable mirroring.
func (h *Header) MirrorType() Mirror {
	if mask.IsSet(h.flags6, bitFourScreen) {
		return FourScreen
	}
	if mask.IsSet(h.flags6, bitMirroring) {
		return Vertical
	}
	return Horizontal
}

// HasPersistentRAM reports whether the cartridge has battery-backed PRG RAM.
func (h *Header) HasPersistentRAM() bool { return mask.IsSet(h.flags6, bitPersistent) }

// HasTrainer reports whether a 512-byte trainer precedes the PRG-ROM data.
func (h *Header) HasTrainer() bool { return mask.IsSet(h.flags6, bitTrainer) }

// Mapper returns the combined mapper number: the low nibble from flags6's
// high nibble, the high nibble from flags7's high nibble.
func (h *Header) Mapper() byte {
	lo := mask.Range(h.flags6, mask.I1, mask.I4)
	hi := mask.Range(h.flags7, mask.I1, mask.I4)
	return hi<<4 | lo
}

// TrainerSize is the fixed size, in bytes, of an iNES trainer.
const TrainerSize = trainerSize

// HeaderSize is the fixed size, in bytes, of an iNES header.
const HeaderSize = headerSize
