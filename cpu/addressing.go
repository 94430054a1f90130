package cpu

import "nestest-cpu/mask"

// An AddressingMode tells the Cpu where to find the byte (or address) an
// instruction operates on. There are 13 possible modes.
//
// Most instructions can index the full 64 KiB range of memory -- that is,
// 256 pages of 256 bytes. The exception is the ZeroPage family, which is
// confined to the first page.
//
// https://www.nesdev.org/wiki/CPU_addressing_modes
type AddressingMode int

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operand is the Accumulator itself

	Immediate // operand is the instruction's own second byte
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX
	IndirectX // (zp,X); rarely used
	IndirectY // (zp),Y; 1 pc increment, may page-cross on the +Y step
	Relative  // signed displacement from PC, branches only

	Absolute
	AbsoluteX // may page-cross
	AbsoluteY // may page-cross

	Indirect // JMP only; carries the $xxFF page-wrap hardware bug
)

// operand is what resolveOperand hands an Exec function: the effective
// address (when the mode has one), the fetched value (when NeedsValue or
// the mode is Accumulator/Immediate), and whether the address computation
// crossed a page boundary.
type operand struct {
	Addr         uint16
	Value        byte
	IsAccumulator bool
	Cross        mask.PageCross
}

// resolveOperand computes the address and, if needsValue is true (or the
// mode makes the value free to obtain, as with Accumulator/Immediate),
// reads the operand byte. Store-only instructions (STA/STX/STY) and
// address-only ones (JMP/JSR) pass needsValue=false so resolving their
// operand never performs a spurious read of the destination.
func (c *Cpu) resolveOperand(ins *Instruction, needsValue bool) operand {
	switch ins.Opcode.Mode {
	case Implied:
		return operand{}

	case Accumulator:
		return operand{Value: c.Accumulator, IsAccumulator: true}

	case Immediate:
		return operand{Value: ins.Arg1}

	case ZeroPage:
		addr := uint16(ins.Arg1)
		op := operand{Addr: addr}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case ZeroPageX:
		addr := uint16(ins.Arg1 + c.X) // byte add wraps within page 0
		op := operand{Addr: addr}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case ZeroPageY:
		addr := uint16(ins.Arg1 + c.Y)
		op := operand{Addr: addr}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case Relative:
		target := c.ProgramCounter + mask.SignExtend(ins.Arg1)
		return operand{Addr: target, Cross: mask.Crossed(c.ProgramCounter, target)}

	case Absolute:
		addr := mask.Word(ins.Arg2, ins.Arg1)
		op := operand{Addr: addr}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case AbsoluteX:
		base := mask.Word(ins.Arg2, ins.Arg1)
		addr := base + uint16(c.X)
		op := operand{Addr: addr, Cross: mask.Crossed(base, addr)}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case AbsoluteY:
		base := mask.Word(ins.Arg2, ins.Arg1)
		addr := base + uint16(c.Y)
		op := operand{Addr: addr, Cross: mask.Crossed(base, addr)}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case Indirect:
		base := mask.Word(ins.Arg2, ins.Arg1)
		return operand{Addr: c.Bus.ReadU16WrappedMSB(base)}

	case IndirectX:
		zp := ins.Arg1 + c.X
		addr := c.Bus.ReadU16ZeroPageWrapped(zp)
		op := operand{Addr: addr}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op

	case IndirectY:
		base := c.Bus.ReadU16ZeroPageWrapped(ins.Arg1)
		addr := base + uint16(c.Y)
		op := operand{Addr: addr, Cross: mask.Crossed(base, addr)}
		if needsValue {
			op.Value = c.Bus.ReadU8(addr)
		}
		return op
	}

	return operand{}
}

// writeBack stores result either to the Accumulator (Accumulator mode) or
// to the resolved memory address, for the read-modify-write instructions
// (ASL, LSR, ROL, ROR, INC, DEC).
func (c *Cpu) writeBack(op operand, result byte) {
	if op.IsAccumulator {
		c.Accumulator = result
		return
	}
	c.Bus.WriteU8(op.Addr, result)
}
