package cpu

// An Opcode is associated with a unique byte value (0x00-0xff). There are
// 256 possible opcodes (16x16), but only the entries below correspond to a
// valid instruction; anything else is a DecodeError.
//
// Importantly, the Opcode carries the AddressingMode, the instruction's
// byte Length (1-3, including the opcode byte itself), the base Cycles
// count, and whether a page-crossing indexed read adds one more cycle.
//
// Multiple Opcodes may execute the same Instruction, differing only in how
// the data is to be retrieved; that is handled by resolveOperand, not by
// Exec itself.
type Opcode struct {
	Mnemonic string
	Mode     AddressingMode
	Length   byte // total instruction length in bytes, 1-3

	// Cycles is the base cost. An indexed read across a page boundary adds
	// one more when ReadPageCross is set; a taken branch adds one, plus
	// two more if the branch target lands on a different page.
	Cycles        byte
	ReadPageCross bool

	// NeedsValue tells resolveOperand whether to perform the memory read
	// for non-register-direct modes. Store instructions and those that
	// only need an address (JMP, JSR) leave this false so they never
	// trigger a spurious read of their own destination.
	NeedsValue bool

	// Exec runs the instruction. The returned bool only matters for
	// Relative-mode opcodes: it reports whether the branch was taken.
	Exec func(c *Cpu, ins *Instruction, op operand) bool
}

// Opcodes lists every byte value the Cpu recognizes, mapped to its
// instruction, addressing mode, and timing.
//
// http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = map[byte]Opcode{
	0x69: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 2, Length: 2, Mode: Immediate},
	0x65: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x75: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x6D: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0x7D: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0x79: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0x61: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0x71: {Mnemonic: "ADC", Exec: (*Cpu).ADC, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0x29: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 2, Length: 2, Mode: Immediate},
	0x25: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x35: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x2D: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0x3D: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0x39: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0x21: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0x31: {Mnemonic: "AND", Exec: (*Cpu).AND, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0x0A: {Mnemonic: "ASL", Exec: (*Cpu).ASL, Cycles: 2, Length: 1, Mode: Accumulator},
	0x06: {Mnemonic: "ASL", Exec: (*Cpu).ASL, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x16: {Mnemonic: "ASL", Exec: (*Cpu).ASL, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x0E: {Mnemonic: "ASL", Exec: (*Cpu).ASL, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0x1E: {Mnemonic: "ASL", Exec: (*Cpu).ASL, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0x24: {Mnemonic: "BIT", Exec: (*Cpu).BIT, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x2C: {Mnemonic: "BIT", Exec: (*Cpu).BIT, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},

	0x00: {Mnemonic: "BRK", Exec: (*Cpu).BRK, Cycles: 7, Length: 1, Mode: Implied},

	0xC9: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 2, Length: 2, Mode: Immediate},
	0xC5: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xD5: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xCD: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0xDD: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0xD9: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0xC1: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0xD1: {Mnemonic: "CMP", Exec: (*Cpu).CMP, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0xE0: {Mnemonic: "CPX", Exec: (*Cpu).CPX, Cycles: 2, Length: 2, Mode: Immediate},
	0xE4: {Mnemonic: "CPX", Exec: (*Cpu).CPX, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xEC: {Mnemonic: "CPX", Exec: (*Cpu).CPX, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},

	0xC0: {Mnemonic: "CPY", Exec: (*Cpu).CPY, Cycles: 2, Length: 2, Mode: Immediate},
	0xC4: {Mnemonic: "CPY", Exec: (*Cpu).CPY, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xCC: {Mnemonic: "CPY", Exec: (*Cpu).CPY, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},

	0xC6: {Mnemonic: "DEC", Exec: (*Cpu).DEC, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xD6: {Mnemonic: "DEC", Exec: (*Cpu).DEC, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xCE: {Mnemonic: "DEC", Exec: (*Cpu).DEC, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0xDE: {Mnemonic: "DEC", Exec: (*Cpu).DEC, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0x49: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 2, Length: 2, Mode: Immediate},
	0x45: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x55: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x4D: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0x5D: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0x59: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0x41: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0x51: {Mnemonic: "EOR", Exec: (*Cpu).EOR, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0xE6: {Mnemonic: "INC", Exec: (*Cpu).INC, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xF6: {Mnemonic: "INC", Exec: (*Cpu).INC, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xEE: {Mnemonic: "INC", Exec: (*Cpu).INC, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0xFE: {Mnemonic: "INC", Exec: (*Cpu).INC, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0x4C: {Mnemonic: "JMP", Exec: (*Cpu).JMP, Cycles: 3, Length: 3, Mode: Absolute},
	0x6C: {Mnemonic: "JMP", Exec: (*Cpu).JMP, Cycles: 5, Length: 3, Mode: Indirect},
	0x20: {Mnemonic: "JSR", Exec: (*Cpu).JSR, Cycles: 6, Length: 3, Mode: Absolute},

	0xA9: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 2, Length: 2, Mode: Immediate},
	0xA5: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xB5: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xAD: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0xBD: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0xB9: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0xA1: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0xB1: {Mnemonic: "LDA", Exec: (*Cpu).LDA, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0xA2: {Mnemonic: "LDX", Exec: (*Cpu).LDX, Cycles: 2, Length: 2, Mode: Immediate},
	0xA6: {Mnemonic: "LDX", Exec: (*Cpu).LDX, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xB6: {Mnemonic: "LDX", Exec: (*Cpu).LDX, Cycles: 4, Length: 2, Mode: ZeroPageY, NeedsValue: true},
	0xAE: {Mnemonic: "LDX", Exec: (*Cpu).LDX, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0xBE: {Mnemonic: "LDX", Exec: (*Cpu).LDX, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},

	0xA0: {Mnemonic: "LDY", Exec: (*Cpu).LDY, Cycles: 2, Length: 2, Mode: Immediate},
	0xA4: {Mnemonic: "LDY", Exec: (*Cpu).LDY, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xB4: {Mnemonic: "LDY", Exec: (*Cpu).LDY, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xAC: {Mnemonic: "LDY", Exec: (*Cpu).LDY, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0xBC: {Mnemonic: "LDY", Exec: (*Cpu).LDY, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},

	0x4A: {Mnemonic: "LSR", Exec: (*Cpu).LSR, Cycles: 2, Length: 1, Mode: Accumulator},
	0x46: {Mnemonic: "LSR", Exec: (*Cpu).LSR, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x56: {Mnemonic: "LSR", Exec: (*Cpu).LSR, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x4E: {Mnemonic: "LSR", Exec: (*Cpu).LSR, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0x5E: {Mnemonic: "LSR", Exec: (*Cpu).LSR, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0xEA: {Mnemonic: "NOP", Exec: (*Cpu).NOP, Cycles: 2, Length: 1, Mode: Implied},

	0x09: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 2, Length: 2, Mode: Immediate},
	0x05: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x15: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x0D: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0x1D: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0x19: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0x01: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0x11: {Mnemonic: "ORA", Exec: (*Cpu).ORA, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0x2A: {Mnemonic: "ROL", Exec: (*Cpu).ROL, Cycles: 2, Length: 1, Mode: Accumulator},
	0x26: {Mnemonic: "ROL", Exec: (*Cpu).ROL, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x36: {Mnemonic: "ROL", Exec: (*Cpu).ROL, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x2E: {Mnemonic: "ROL", Exec: (*Cpu).ROL, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0x3E: {Mnemonic: "ROL", Exec: (*Cpu).ROL, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0x6A: {Mnemonic: "ROR", Exec: (*Cpu).ROR, Cycles: 2, Length: 1, Mode: Accumulator},
	0x66: {Mnemonic: "ROR", Exec: (*Cpu).ROR, Cycles: 5, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0x76: {Mnemonic: "ROR", Exec: (*Cpu).ROR, Cycles: 6, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0x6E: {Mnemonic: "ROR", Exec: (*Cpu).ROR, Cycles: 6, Length: 3, Mode: Absolute, NeedsValue: true},
	0x7E: {Mnemonic: "ROR", Exec: (*Cpu).ROR, Cycles: 7, Length: 3, Mode: AbsoluteX, NeedsValue: true},

	0x40: {Mnemonic: "RTI", Exec: (*Cpu).RTI, Cycles: 6, Length: 1, Mode: Implied},
	0x60: {Mnemonic: "RTS", Exec: (*Cpu).RTS, Cycles: 6, Length: 1, Mode: Implied},

	0xE9: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 2, Length: 2, Mode: Immediate},
	0xE5: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 3, Length: 2, Mode: ZeroPage, NeedsValue: true},
	0xF5: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 4, Length: 2, Mode: ZeroPageX, NeedsValue: true},
	0xED: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 4, Length: 3, Mode: Absolute, NeedsValue: true},
	0xFD: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 4, Length: 3, Mode: AbsoluteX, NeedsValue: true, ReadPageCross: true},
	0xF9: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 4, Length: 3, Mode: AbsoluteY, NeedsValue: true, ReadPageCross: true},
	0xE1: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 6, Length: 2, Mode: IndirectX, NeedsValue: true},
	0xF1: {Mnemonic: "SBC", Exec: (*Cpu).SBC, Cycles: 5, Length: 2, Mode: IndirectY, NeedsValue: true, ReadPageCross: true},

	0x85: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 3, Length: 2, Mode: ZeroPage},
	0x95: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 4, Length: 2, Mode: ZeroPageX},
	0x8D: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 4, Length: 3, Mode: Absolute},
	0x9D: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 5, Length: 3, Mode: AbsoluteX},
	0x99: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 5, Length: 3, Mode: AbsoluteY},
	0x81: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 6, Length: 2, Mode: IndirectX},
	0x91: {Mnemonic: "STA", Exec: (*Cpu).STA, Cycles: 6, Length: 2, Mode: IndirectY},

	0x86: {Mnemonic: "STX", Exec: (*Cpu).STX, Cycles: 3, Length: 2, Mode: ZeroPage},
	0x96: {Mnemonic: "STX", Exec: (*Cpu).STX, Cycles: 4, Length: 2, Mode: ZeroPageY},
	0x8E: {Mnemonic: "STX", Exec: (*Cpu).STX, Cycles: 4, Length: 3, Mode: Absolute},

	0x84: {Mnemonic: "STY", Exec: (*Cpu).STY, Cycles: 3, Length: 2, Mode: ZeroPage},
	0x94: {Mnemonic: "STY", Exec: (*Cpu).STY, Cycles: 4, Length: 2, Mode: ZeroPageX},
	0x8C: {Mnemonic: "STY", Exec: (*Cpu).STY, Cycles: 4, Length: 3, Mode: Absolute},

	// clear, set
	0x18: {Mnemonic: "CLC", Exec: (*Cpu).CLC, Cycles: 2, Length: 1, Mode: Implied},
	0x38: {Mnemonic: "SEC", Exec: (*Cpu).SEC, Cycles: 2, Length: 1, Mode: Implied},
	0x58: {Mnemonic: "CLI", Exec: (*Cpu).CLI, Cycles: 2, Length: 1, Mode: Implied},
	0x78: {Mnemonic: "SEI", Exec: (*Cpu).SEI, Cycles: 2, Length: 1, Mode: Implied},
	0xB8: {Mnemonic: "CLV", Exec: (*Cpu).CLV, Cycles: 2, Length: 1, Mode: Implied},
	0xD8: {Mnemonic: "CLD", Exec: (*Cpu).CLD, Cycles: 2, Length: 1, Mode: Implied},
	0xF8: {Mnemonic: "SED", Exec: (*Cpu).SED, Cycles: 2, Length: 1, Mode: Implied},

	// transfer, increment, decrement
	0xAA: {Mnemonic: "TAX", Exec: (*Cpu).TAX, Cycles: 2, Length: 1, Mode: Implied},
	0x8A: {Mnemonic: "TXA", Exec: (*Cpu).TXA, Cycles: 2, Length: 1, Mode: Implied},
	0xCA: {Mnemonic: "DEX", Exec: (*Cpu).DEX, Cycles: 2, Length: 1, Mode: Implied},
	0xE8: {Mnemonic: "INX", Exec: (*Cpu).INX, Cycles: 2, Length: 1, Mode: Implied},
	0xA8: {Mnemonic: "TAY", Exec: (*Cpu).TAY, Cycles: 2, Length: 1, Mode: Implied},
	0x98: {Mnemonic: "TYA", Exec: (*Cpu).TYA, Cycles: 2, Length: 1, Mode: Implied},
	0x88: {Mnemonic: "DEY", Exec: (*Cpu).DEY, Cycles: 2, Length: 1, Mode: Implied},
	0xC8: {Mnemonic: "INY", Exec: (*Cpu).INY, Cycles: 2, Length: 1, Mode: Implied},

	// branch
	0x10: {Mnemonic: "BPL", Exec: (*Cpu).BPL, Cycles: 2, Length: 2, Mode: Relative},
	0x30: {Mnemonic: "BMI", Exec: (*Cpu).BMI, Cycles: 2, Length: 2, Mode: Relative},
	0x50: {Mnemonic: "BVC", Exec: (*Cpu).BVC, Cycles: 2, Length: 2, Mode: Relative},
	0x70: {Mnemonic: "BVS", Exec: (*Cpu).BVS, Cycles: 2, Length: 2, Mode: Relative},
	0x90: {Mnemonic: "BCC", Exec: (*Cpu).BCC, Cycles: 2, Length: 2, Mode: Relative},
	0xB0: {Mnemonic: "BCS", Exec: (*Cpu).BCS, Cycles: 2, Length: 2, Mode: Relative},
	0xD0: {Mnemonic: "BNE", Exec: (*Cpu).BNE, Cycles: 2, Length: 2, Mode: Relative},
	0xF0: {Mnemonic: "BEQ", Exec: (*Cpu).BEQ, Cycles: 2, Length: 2, Mode: Relative},

	// stack
	0x9A: {Mnemonic: "TXS", Exec: (*Cpu).TXS, Cycles: 2, Length: 1, Mode: Implied},
	0xBA: {Mnemonic: "TSX", Exec: (*Cpu).TSX, Cycles: 2, Length: 1, Mode: Implied},
	0x48: {Mnemonic: "PHA", Exec: (*Cpu).PHA, Cycles: 3, Length: 1, Mode: Implied},
	0x68: {Mnemonic: "PLA", Exec: (*Cpu).PLA, Cycles: 4, Length: 1, Mode: Implied},
	0x08: {Mnemonic: "PHP", Exec: (*Cpu).PHP, Cycles: 3, Length: 1, Mode: Implied},
	0x28: {Mnemonic: "PLP", Exec: (*Cpu).PLP, Cycles: 4, Length: 1, Mode: Implied},
}
