// Package console ties a parsed iNES ROM to a Bus and a Cpu and runs the
// fetch-execute loop described in spec.md §4.6: PRG (and trainer, if
// present) placement at load time, then a loop that steps the Cpu and
// advances the PPU collaborator by three ticks per CPU cycle.
package console

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"nestest-cpu/cpu"
	"nestest-cpu/ines"
	"nestest-cpu/mem"
)

// CrashDump prints c's register and trace state via go-spew, the teacher's
// own debug-dump tool. spec.md §7 requires this for DecodeFailure,
// LogDivergence, and any other fatal panic during Run.
func CrashDump(c *cpu.Cpu) {
	fmt.Println("CPU crash state:")
	spew.Dump(c)
}

const (
	prgBank1    = 0x8000
	prgBank2    = 0xc000
	prgBankSize = 0x4000 // 16 KiB

	// trainerDest is SRAM's $7000, where a 512-byte iNES trainer is copied
	// when present.
	trainerDest = 0x6000 + mem.TrainerOffset
)

// PPU is a minimal stand-in for the NES picture processing unit. Rendering
// and framebuffer output are out of scope (spec.md §1); what the CPU core
// actually depends on is the dot/scanline/frame tick and the draining of
// the bus's I/O touch state between CPU steps (spec.md §5, ordering
// guarantee 3).
type PPU struct {
	Dots     int
	Scanline int
	Frame    int

	bus *mem.Bus
}

func newPPU(bus *mem.Bus) *PPU { return &PPU{bus: bus} }

// Tick advances the PPU collaborator by n dots (3 per CPU cycle consumed)
// and drains touch state for every PPU register, the handoff spec.md §5
// requires happen only after the CPU step that produced it has returned.
func (p *PPU) Tick(n int) {
	for i := 0; i < n; i++ {
		p.Dots++
		if p.Dots >= 341 {
			p.Dots = 0
			p.Scanline++
			if p.Scanline >= 262 {
				p.Scanline = 0
				p.Frame++
			}
		}
	}
	for i := 0; i < 8; i++ {
		p.bus.PPUTouchState(i)
	}
}

// onOAMDMA is wired to the bus's $4014 write trigger. The 256-byte OAM copy
// itself is PPU-internal state this spec treats as out of scope; recording
// that the trigger fired is as far as this collaborator goes.
func (p *PPU) onOAMDMA(page byte) { _ = page }

// Console owns a loaded ROM's Bus, Cpu, and PPU collaborator, and the
// cooperative stepping/shutdown gate a debugger (if attached) drives.
type Console struct {
	Bus    *mem.Bus
	Cpu    *cpu.Cpu
	PPU    *PPU
	Header *ines.Header

	// Stepping and Shutdown form the cooperative gate described in
	// spec.md §4.7: Run steps the Cpu only while Stepping is true, and
	// exits once Shutdown is set.
	Stepping bool
	Shutdown bool
}

// New parses rom's iNES header, rejects unsupported mappers, and places PRG
// (and trainer, if present) into a fresh Bus. The returned Console has
// Stepping already true; call Reset before Run.
func New(rom []byte) (*Console, error) {
	header, err := ines.New(rom)
	if err != nil {
		return nil, err
	}
	if header.Mapper() != 0 {
		return nil, &ines.UnsupportedMapperError{Mapper: header.Mapper()}
	}

	bus := mem.New()
	ppu := newPPU(bus)
	bus.SetOAMDMAHook(ppu.onOAMDMA)

	offset := ines.HeaderSize
	if header.HasTrainer() {
		if len(rom) < offset+ines.TrainerSize {
			return nil, fmt.Errorf("iNES trainer flag set but ROM is too short")
		}
		bus.Memdump(trainerDest, rom[offset:offset+ines.TrainerSize])
		offset += ines.TrainerSize
	}

	prg := rom[offset:]
	switch header.PRGROMSize() {
	case 1:
		if len(prg) < prgBankSize {
			return nil, fmt.Errorf("PRG-ROM shorter than the one bank the header declares")
		}
		bus.Memdump(prgBank1, prg[:prgBankSize])
		bus.Memdump(prgBank2, prg[:prgBankSize])
	case 2:
		if len(prg) < 2*prgBankSize {
			return nil, fmt.Errorf("PRG-ROM shorter than the two banks the header declares")
		}
		bus.Memdump(prgBank1, prg[:prgBankSize])
		bus.Memdump(prgBank2, prg[prgBankSize:2*prgBankSize])
	default:
		return nil, fmt.Errorf("unsupported PRG-ROM bank count: %d", header.PRGROMSize())
	}

	return &Console{
		Bus:      bus,
		Cpu:      cpu.New(bus),
		PPU:      ppu,
		Header:   header,
		Stepping: true,
	}, nil
}

// Reset loads the Cpu's program counter from override, or the reset vector
// at $FFFC when override is nil.
func (c *Console) Reset(override *uint16) { c.Cpu.Reset(override) }

// Run executes the fetch-execute loop while keepGoing returns true and
// Shutdown is unset. Each iteration either steps the Cpu once and advances
// the PPU collaborator by 3x the consumed cycles, or -- while Stepping is
// false -- lets keepGoing itself account for the idle pacing (a debugger's
// poll function sleeps before returning). Returns the first Cpu.Step error,
// which the caller should treat as fatal: spec.md §7 requires a CPU crash
// dump and a distinct exit code for DecodeFailure and LogDivergence.
func (c *Console) Run(keepGoing func() bool) error {
	for keepGoing() && !c.Shutdown {
		if !c.Stepping {
			continue
		}
		cycles, err := c.Cpu.Step()
		if err != nil {
			return err
		}
		c.PPU.Tick(3 * cycles)
	}
	return nil
}
