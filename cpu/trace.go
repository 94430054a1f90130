package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is one parsed line of a Nintendulator-format trace: the fields the
// log-compare harness checks for equality, grounded on the field layout
// real Nintendulator logs (and this emulator's own --verbose output) share.
type Frame struct {
	PC          uint16
	HasByte     [3]bool
	Bytes       [3]byte
	Disasm      string
	A, X, Y, P  byte
	SP          byte
	PPUDots     int
}

// traceFrame builds the Frame for the instruction about to execute, using
// register state as it stands before Exec runs -- matching the convention
// of every 6502 trace log, where each line describes the machine state the
// instruction was fetched into, not the state it leaves behind.
func (c *Cpu) traceFrame(ins *Instruction, op *operand) Frame {
	f := Frame{
		PC:      ins.PC,
		Disasm:  c.disassemble(ins, op),
		A:       c.Accumulator,
		X:       c.X,
		Y:       c.Y,
		P:       c.P,
		SP:      c.Stack,
		PPUDots: c.PPUDots,
	}
	f.HasByte[0] = true
	f.Bytes[0] = ins.Op
	if ins.Opcode.Length >= 2 {
		f.HasByte[1] = true
		f.Bytes[1] = ins.Arg1
	}
	if ins.Opcode.Length >= 3 {
		f.HasByte[2] = true
		f.Bytes[2] = ins.Arg2
	}
	return f
}

// byteField renders one instruction-byte column: two hex digits, or two
// spaces when the instruction doesn't have that many bytes.
func byteField(present bool, b byte) string {
	if !present {
		return "  "
	}
	return fmt.Sprintf("%02X", b)
}

// String renders f in the fixed-column layout described in spec.md §6:
//
//	[0,4)   PC
//	[6,8) [9,11) [12,14)   up to 3 instruction bytes
//	[16,46) disassembly, left-justified in 30 columns
//	[50,52) A  [55,57) X  [60,62) Y  [65,67) P  [71,73) SP
//	[78,81) PPU dot counter
func (f Frame) String() string {
	return fmt.Sprintf("%04X  %s %s %s  %-30s  A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d",
		f.PC,
		byteField(f.HasByte[0], f.Bytes[0]),
		byteField(f.HasByte[1], f.Bytes[1]),
		byteField(f.HasByte[2], f.Bytes[2]),
		f.Disasm,
		f.A, f.X, f.Y, f.P, f.SP,
		f.PPUDots,
	)
}

// Equal compares the fields the log-compare harness cares about: PC,
// instruction bytes, disassembly text, registers, and PPU dot count.
func (f Frame) Equal(other Frame) bool {
	if f.PC != other.PC || f.A != other.A || f.X != other.X || f.Y != other.Y ||
		f.P != other.P || f.SP != other.SP || f.PPUDots != other.PPUDots {
		return false
	}
	if strings.TrimRight(f.Disasm, " ") != strings.TrimRight(other.Disasm, " ") {
		return false
	}
	for i := range f.Bytes {
		if f.HasByte[i] != other.HasByte[i] {
			return false
		}
		if f.HasByte[i] && f.Bytes[i] != other.Bytes[i] {
			return false
		}
	}
	return true
}

// ParseFrame parses one reference-log line back into a Frame, using the
// same fixed columns String writes. A short or malformed line is a fatal
// log-format error, not a divergence: the log itself is untrustworthy.
func ParseFrame(line string) (Frame, error) {
	if len(line) < 73 {
		return Frame{}, fmt.Errorf("trace line too short (%d bytes): %q", len(line), line)
	}

	pc, err := strconv.ParseUint(strings.TrimSpace(line[0:4]), 16, 16)
	if err != nil {
		return Frame{}, fmt.Errorf("parsing PC field: %w", err)
	}

	var f Frame
	f.PC = uint16(pc)

	cols := [3][2]int{{6, 8}, {9, 11}, {12, 14}}
	for i, c := range cols {
		field := line[c[0]:c[1]]
		if strings.TrimSpace(field) == "" {
			continue
		}
		b, err := strconv.ParseUint(strings.TrimSpace(field), 16, 8)
		if err != nil {
			return Frame{}, fmt.Errorf("parsing instruction byte %d: %w", i, err)
		}
		f.HasByte[i] = true
		f.Bytes[i] = byte(b)
	}

	disasmEnd := 46
	if disasmEnd > len(line) {
		disasmEnd = len(line)
	}
	f.Disasm = strings.TrimSpace(line[16:disasmEnd])

	parseReg := func(lo, hi int) (byte, error) {
		if hi > len(line) {
			return 0, fmt.Errorf("register field [%d,%d) out of range", lo, hi)
		}
		v, err := strconv.ParseUint(line[lo:hi], 16, 8)
		if err != nil {
			return 0, err
		}
		return byte(v), nil
	}

	var perr error
	regs := []struct {
		lo, hi int
		dst    *byte
	}{
		{50, 52, &f.A},
		{55, 57, &f.X},
		{60, 62, &f.Y},
		{65, 67, &f.P},
		{71, 73, &f.SP},
	}
	for _, r := range regs {
		v, err := parseReg(r.lo, r.hi)
		if err != nil {
			perr = err
			break
		}
		*r.dst = v
	}
	if perr != nil {
		return Frame{}, fmt.Errorf("parsing register fields: %w", perr)
	}

	if len(line) >= 81 {
		dots, err := strconv.Atoi(strings.TrimSpace(line[78:81]))
		if err == nil {
			f.PPUDots = dots
		}
	}

	return f, nil
}
