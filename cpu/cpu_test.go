package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestest-cpu/mem"
)

func newCPU() (*Cpu, *mem.Bus) {
	bus := mem.New()
	return New(bus), bus
}

func at(addr uint16) *uint16 { return &addr }

func TestResetVector(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0xfffc, []byte{0x00, 0x80})
	c.Reset(nil)
	assert.Equal(t, uint16(0x8000), c.ProgramCounter)
}

func TestResetVectorOverride(t *testing.T) {
	c, _ := newCPU()
	c.Reset(at(0xc000))
	assert.Equal(t, uint16(0xc000), c.ProgramCounter)
}

func TestLDAImmediate(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xA9, 0x00})
	c.Reset(at(0x8000))

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, byte(0x00), c.Accumulator)
	assert.True(t, c.GetFlag(FlagZero))
	assert.False(t, c.GetFlag(FlagNegative))
	assert.Equal(t, uint16(0x8002), c.ProgramCounter)
	assert.Equal(t, 2, cycles)
}

func TestBranchPageCross(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x80f0, []byte{0xB0, 0x10}) // BCS +16
	c.Reset(at(0x80f0))
	c.SetFlag(FlagCarry, true)

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x8102), c.ProgramCounter)
	assert.Equal(t, 5, cycles) // 2 base + 1 taken + 2 page-cross
}

func TestBranchNotTakenCostsBaseCyclesOnly(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xB0, 0x10}) // BCS, carry clear
	c.Reset(at(0x8000))

	cycles, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x8002), c.ProgramCounter)
	assert.Equal(t, 2, cycles)
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x02ff, []byte{0x34})
	bus.Memdump(0x0200, []byte{0x12})
	bus.Memdump(0x0300, []byte{0xff})
	bus.Memdump(0x8000, []byte{0x6C, 0xFF, 0x02}) // JMP ($02FF)
	c.Reset(at(0x8000))

	_, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), c.ProgramCounter)
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0xc000, []byte{0x20, 0x40, 0xc0}) // JSR $C040
	bus.Memdump(0xc040, []byte{0x60})              // RTS
	c.Reset(at(0xc000))

	_, err := c.Step() // JSR
	require.NoError(t, err)
	assert.Equal(t, uint16(0xc040), c.ProgramCounter)

	_, err = c.Step() // RTS
	require.NoError(t, err)
	assert.Equal(t, uint16(0xc003), c.ProgramCounter)
	assert.Equal(t, byte(0xfd), c.Stack)
}

func TestPHPThenPLPPreservesBit5AndClearsBreak(t *testing.T) {
	c, _ := newCPU()
	c.P = FlagCarry | FlagOverflow | FlagUnused

	_ = c.PHP(nil, operand{})
	c.P = 0xff // scribble, as if an interrupt or other instruction ran meanwhile

	_ = c.PLP(nil, operand{})

	assert.Equal(t, FlagCarry|FlagOverflow|FlagUnused, c.P)
	assert.False(t, c.GetFlag(FlagBreak))
	assert.True(t, c.GetFlag(FlagUnused))
}

func TestADCSignedOverflow(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0x69, 0x50}) // ADC #$50
	c.Reset(at(0x8000))
	c.Accumulator = 0x50

	_, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, byte(0xa0), c.Accumulator)
	assert.True(t, c.GetFlag(FlagOverflow), "0x50+0x50 overflows a signed byte")
	assert.True(t, c.GetFlag(FlagNegative))
	assert.False(t, c.GetFlag(FlagCarry))
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xE9, 0x03}) // SBC #$03, carry clear
	c.Reset(at(0x8000))
	c.Accumulator = 0x05
	c.SetFlag(FlagCarry, false)

	_, err := c.Step()
	require.NoError(t, err)

	// 5 - 3 - 1(borrow) = 1, no further borrow needed so carry ends set.
	assert.Equal(t, byte(0x01), c.Accumulator)
	assert.True(t, c.GetFlag(FlagCarry))
}

func TestSBCWithCarrySetSubtractsExactlyM(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xE9, 0x03}) // SBC #$03, carry set
	c.Reset(at(0x8000))
	c.Accumulator = 0x05
	c.SetFlag(FlagCarry, true)

	_, err := c.Step()
	require.NoError(t, err)

	assert.Equal(t, byte(0x02), c.Accumulator)
	assert.True(t, c.GetFlag(FlagCarry))
}

func TestBITCopiesBits6And7RegardlessOfA(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x0010, []byte{0xc0}) // bits 7 and 6 set
	bus.Memdump(0x8000, []byte{0x24, 0x10}) // BIT $10
	c.Reset(at(0x8000))
	c.Accumulator = 0x00 // A&M == 0, so Z is set despite M's high bits

	_, err := c.Step()
	require.NoError(t, err)

	assert.True(t, c.GetFlag(FlagZero))
	assert.True(t, c.GetFlag(FlagNegative))
	assert.True(t, c.GetFlag(FlagOverflow))
}

func TestDecodeErrorOnIllegalOpcode(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xFF}) // not in the official opcode set
	c.Reset(at(0x8000))

	_, err := c.Step()
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

// TestMultiplyViaRepeatedAddition runs a hand-assembled program that
// multiplies 10 by 3 through repeated addition, looping on Y:
//
//	LDX #$0A   STX $00   LDX #$03   STX $01
//	LDY $00    LDA #$00  CLC
//	loop: ADC $01  DEY  BNE loop
//	STA $02  NOP NOP NOP  BRK
func TestMultiplyViaRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, // LDX #$0A
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,             // CLC
		0x6D, 0x01, 0x00, // loop: ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE loop
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
		0x00, // BRK
	}

	c, bus := newCPU()
	bus.Memdump(0x8000, program)
	c.Reset(at(0x8000))

	for steps := 0; ; steps++ {
		require.Less(t, steps, 100, "program did not reach BRK in a reasonable number of steps")
		_, err := c.Step()
		require.NoError(t, err)
		if c.LastInstruction.Opcode.Mnemonic == "BRK" {
			break
		}
	}

	assert.Equal(t, byte(30), c.Accumulator)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(10), bus.ReadU8(0x0000))
	assert.Equal(t, byte(3), bus.ReadU8(0x0001))
	assert.Equal(t, byte(30), bus.ReadU8(0x0002))
}

func TestAttachLogDetectsDivergence(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xA9, 0x05}) // LDA #$05
	c.Reset(at(0x8000))

	// A reference line claiming A ends up $06 instead of $05.
	badLine := "8000  A9 05     LDA #$05                        A:06 X:00 Y:00 P:24 SP:FD PPU:  0"
	c.AttachLog(strings.NewReader(badLine))

	_, err := c.Step()
	require.Error(t, err)
	var divergence *LogDivergenceError
	assert.ErrorAs(t, err, &divergence)
}

func TestAttachLogAcceptsMatchingFrame(t *testing.T) {
	c, bus := newCPU()
	bus.Memdump(0x8000, []byte{0xA9, 0x05}) // LDA #$05
	c.Reset(at(0x8000))

	frame := c.traceFrame(&Instruction{Op: 0xA9, Arg1: 0x05, Opcode: Opcodes[0xA9], PC: 0x8000}, &operand{Value: 0x05})
	c.AttachLog(strings.NewReader(frame.String()))

	_, err := c.Step()
	require.NoError(t, err)
}
