package cpu

// Instruction bodies, one method per mnemonic. Signatures were standardized
// to func(c *Cpu, ins *Instruction, op operand) bool so every entry in the
// Opcodes table has the same shape; the returned bool only means something
// for the Relative-mode branches, where it reports whether the branch was
// taken.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// ADC - Add with Carry
func (c *Cpu) ADC(ins *Instruction, op operand) bool {
	c.addWithCarry(op.Value)
	return false
}

// SBC - Subtract with Carry. Implemented as ADC on the ones' complement of
// the operand, which produces the correct carry-as-not-borrow semantics for
// free.
func (c *Cpu) SBC(ins *Instruction, op operand) bool {
	c.addWithCarry(^op.Value)
	return false
}

// addWithCarry is the shared ADC/SBC core: sum A + M + C in a 16-bit
// accumulator so the carry out of bit 7 falls out of bit 8, and compute
// overflow from the two operands' and the result's sign bits.
func (c *Cpu) addWithCarry(m byte) {
	var carryIn uint16
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.Accumulator) + uint16(m) + carryIn
	result := byte(sum)

	overflow := (c.Accumulator^result)&(m^result)&0x80 != 0

	c.SetFlag(FlagCarry, sum > 0xff)
	c.SetFlag(FlagOverflow, overflow)
	c.Accumulator = result
	c.toggleZN(result)
}

// AND - Logical AND
func (c *Cpu) AND(ins *Instruction, op operand) bool {
	c.Accumulator &= op.Value
	c.toggleZN(c.Accumulator)
	return false
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(ins *Instruction, op operand) bool {
	old := op.Value
	result := old << 1
	c.SetFlag(FlagCarry, old&0x80 != 0)
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// branch is the shared body for the eight conditional branches: if cond is
// true, jump to the resolved target and report the branch as taken.
func (c *Cpu) branch(cond bool, op operand) bool {
	if !cond {
		return false
	}
	c.ProgramCounter = op.Addr
	return true
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(ins *Instruction, op operand) bool { return c.branch(!c.GetFlag(FlagCarry), op) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS(ins *Instruction, op operand) bool { return c.branch(c.GetFlag(FlagCarry), op) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ(ins *Instruction, op operand) bool { return c.branch(c.GetFlag(FlagZero), op) }

// BMI - Branch if Minus
func (c *Cpu) BMI(ins *Instruction, op operand) bool { return c.branch(c.GetFlag(FlagNegative), op) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE(ins *Instruction, op operand) bool { return c.branch(!c.GetFlag(FlagZero), op) }

// BPL - Branch if Positive
func (c *Cpu) BPL(ins *Instruction, op operand) bool { return c.branch(!c.GetFlag(FlagNegative), op) }

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(ins *Instruction, op operand) bool { return c.branch(!c.GetFlag(FlagOverflow), op) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(ins *Instruction, op operand) bool { return c.branch(c.GetFlag(FlagOverflow), op) }

// BIT - Bit Test. Z comes from A&M; N and V are copied verbatim from bits 7
// and 6 of M, regardless of A.
func (c *Cpu) BIT(ins *Instruction, op operand) bool {
	c.SetFlag(FlagZero, c.Accumulator&op.Value == 0)
	c.SetFlag(FlagNegative, op.Value&0x80 != 0)
	c.SetFlag(FlagOverflow, op.Value&0x40 != 0)
	return false
}

// BRK - Force Interrupt. Unlike every other instruction, BRK consumes a
// second (padding) byte: the return address pushed is PC+2, not PC+1. The
// pushed status has Break and Unused set, identifying it as a software
// break to any handler that inspects the stacked P.
func (c *Cpu) BRK(ins *Instruction, op operand) bool {
	c.ProgramCounter++ // skip the padding byte
	c.Stack = c.Bus.PushU16(c.Stack, c.ProgramCounter)
	c.Stack = c.Bus.PushU8(c.Stack, c.P|FlagBreak|FlagUnused)
	c.SetFlag(FlagInterruptDisable, true)
	c.ProgramCounter = c.Bus.ReadU16(irqVector)
	return false
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(ins *Instruction, op operand) bool { c.SetFlag(FlagCarry, false); return false }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(ins *Instruction, op operand) bool { c.SetFlag(FlagDecimal, false); return false }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(ins *Instruction, op operand) bool {
	c.SetFlag(FlagInterruptDisable, false)
	return false
}

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(ins *Instruction, op operand) bool { c.SetFlag(FlagOverflow, false); return false }

// compare is the shared CMP/CPX/CPY core: set C, Z, N from reg - M without
// storing the result.
func (c *Cpu) compare(reg, m byte) {
	result := reg - m
	c.SetFlag(FlagCarry, reg >= m)
	c.SetFlag(FlagZero, reg == m)
	c.SetFlag(FlagNegative, result&0x80 != 0)
}

// CMP - Compare Accumulator
func (c *Cpu) CMP(ins *Instruction, op operand) bool { c.compare(c.Accumulator, op.Value); return false }

// CPX - Compare X Register
func (c *Cpu) CPX(ins *Instruction, op operand) bool { c.compare(c.X, op.Value); return false }

// CPY - Compare Y Register
func (c *Cpu) CPY(ins *Instruction, op operand) bool { c.compare(c.Y, op.Value); return false }

// DEC - Decrement Memory
func (c *Cpu) DEC(ins *Instruction, op operand) bool {
	result := op.Value - 1
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// DEX - Decrement X Register
func (c *Cpu) DEX(ins *Instruction, op operand) bool {
	c.X--
	c.toggleZN(c.X)
	return false
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(ins *Instruction, op operand) bool {
	c.Y--
	c.toggleZN(c.Y)
	return false
}

// EOR - Exclusive OR
func (c *Cpu) EOR(ins *Instruction, op operand) bool {
	c.Accumulator ^= op.Value
	c.toggleZN(c.Accumulator)
	return false
}

// INC - Increment Memory
func (c *Cpu) INC(ins *Instruction, op operand) bool {
	result := op.Value + 1
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// INX - Increment X Register
func (c *Cpu) INX(ins *Instruction, op operand) bool {
	c.X++
	c.toggleZN(c.X)
	return false
}

// INY - Increment Y Register
func (c *Cpu) INY(ins *Instruction, op operand) bool {
	c.Y++
	c.toggleZN(c.Y)
	return false
}

// JMP - Jump
func (c *Cpu) JMP(ins *Instruction, op operand) bool {
	c.ProgramCounter = op.Addr
	return false
}

// JSR - Jump to Subroutine. Pushes the address of the last byte of the JSR
// instruction (PC-1, since PC already points past all three bytes), then
// jumps.
func (c *Cpu) JSR(ins *Instruction, op operand) bool {
	c.Stack = c.Bus.PushU16(c.Stack, c.ProgramCounter-1)
	c.ProgramCounter = op.Addr
	return false
}

// LDA - Load Accumulator
func (c *Cpu) LDA(ins *Instruction, op operand) bool {
	c.Accumulator = op.Value
	c.toggleZN(c.Accumulator)
	return false
}

// LDX - Load X Register
func (c *Cpu) LDX(ins *Instruction, op operand) bool {
	c.X = op.Value
	c.toggleZN(c.X)
	return false
}

// LDY - Load Y Register
func (c *Cpu) LDY(ins *Instruction, op operand) bool {
	c.Y = op.Value
	c.toggleZN(c.Y)
	return false
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(ins *Instruction, op operand) bool {
	old := op.Value
	result := old >> 1
	c.SetFlag(FlagCarry, old&0x01 != 0)
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// NOP - No Operation
func (c *Cpu) NOP(ins *Instruction, op operand) bool { return false }

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(ins *Instruction, op operand) bool {
	c.Accumulator |= op.Value
	c.toggleZN(c.Accumulator)
	return false
}

// PHA - Push Accumulator
func (c *Cpu) PHA(ins *Instruction, op operand) bool {
	c.Stack = c.Bus.PushU8(c.Stack, c.Accumulator)
	return false
}

// PHP - Push Processor Status. Break and Unused are forced set in the
// pushed byte, regardless of their state in P.
func (c *Cpu) PHP(ins *Instruction, op operand) bool {
	c.Stack = c.Bus.PushU8(c.Stack, c.P|FlagBreak|FlagUnused)
	return false
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(ins *Instruction, op operand) bool {
	sp, v := c.Bus.PopU8(c.Stack)
	c.Stack = sp
	c.Accumulator = v
	c.toggleZN(c.Accumulator)
	return false
}

// PLP - Pull Processor Status. Break is cleared and bit 5 forced set in the
// restored P, per restoreStatus.
func (c *Cpu) PLP(ins *Instruction, op operand) bool {
	sp, v := c.Bus.PopU8(c.Stack)
	c.Stack = sp
	c.restoreStatus(v)
	return false
}

// ROL - Rotate Left
func (c *Cpu) ROL(ins *Instruction, op operand) bool {
	old := op.Value
	result := old << 1
	if c.GetFlag(FlagCarry) {
		result |= 0x01
	}
	c.SetFlag(FlagCarry, old&0x80 != 0)
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// ROR - Rotate Right
func (c *Cpu) ROR(ins *Instruction, op operand) bool {
	old := op.Value
	result := old >> 1
	if c.GetFlag(FlagCarry) {
		result |= 0x80
	}
	c.SetFlag(FlagCarry, old&0x01 != 0)
	c.toggleZN(result)
	c.writeBack(op, result)
	return false
}

// RTI - Return from Interrupt. Pops P (same rules as PLP), then pops PC
// with no +1 correction -- unlike RTS, the pushed PC here was never
// decremented.
func (c *Cpu) RTI(ins *Instruction, op operand) bool {
	sp, p := c.Bus.PopU8(c.Stack)
	c.restoreStatus(p)
	sp, pc := c.Bus.PopU16(sp)
	c.Stack = sp
	c.ProgramCounter = pc
	return false
}

// RTS - Return from Subroutine. Pulls PC from the stack and adds one, the
// inverse of JSR's PC-1 push.
func (c *Cpu) RTS(ins *Instruction, op operand) bool {
	sp, pc := c.Bus.PopU16(c.Stack)
	c.Stack = sp
	c.ProgramCounter = pc + 1
	return false
}

// SEC - Set Carry Flag
func (c *Cpu) SEC(ins *Instruction, op operand) bool { c.SetFlag(FlagCarry, true); return false }

// SED - Set Decimal Flag
func (c *Cpu) SED(ins *Instruction, op operand) bool { c.SetFlag(FlagDecimal, true); return false }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(ins *Instruction, op operand) bool {
	c.SetFlag(FlagInterruptDisable, true)
	return false
}

// STA - Store Accumulator
func (c *Cpu) STA(ins *Instruction, op operand) bool {
	c.Bus.WriteU8(op.Addr, c.Accumulator)
	return false
}

// STX - Store X Register
func (c *Cpu) STX(ins *Instruction, op operand) bool {
	c.Bus.WriteU8(op.Addr, c.X)
	return false
}

// STY - Store Y Register
func (c *Cpu) STY(ins *Instruction, op operand) bool {
	c.Bus.WriteU8(op.Addr, c.Y)
	return false
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(ins *Instruction, op operand) bool {
	c.X = c.Accumulator
	c.toggleZN(c.X)
	return false
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(ins *Instruction, op operand) bool {
	c.Y = c.Accumulator
	c.toggleZN(c.Y)
	return false
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(ins *Instruction, op operand) bool {
	c.X = c.Stack
	c.toggleZN(c.X)
	return false
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(ins *Instruction, op operand) bool {
	c.Accumulator = c.X
	c.toggleZN(c.Accumulator)
	return false
}

// TXS - Transfer X to Stack Pointer. Unlike TSX, this does not affect
// flags: the stack pointer isn't a value register.
func (c *Cpu) TXS(ins *Instruction, op operand) bool {
	c.Stack = c.X
	return false
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(ins *Instruction, op operand) bool {
	c.Accumulator = c.Y
	c.toggleZN(c.Accumulator)
	return false
}
