// This file is part of mos6507.
//
// mos6507 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6507 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6507.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Table is the opcode -> Definition map for the whole instruction set: the
// full documented 6502 set plus the widely emulated "stable" undocumented
// opcodes (LAX, SAX, DCP, ISB, SLO, RLA, SRE, RRA, ANC, ALR, ARR, AXS, and
// the illegal NOPs). Opcodes with no entry here are genuinely undefined —
// the highly unstable undocumented opcodes (XAA, AHX/SHA, TAS, SHX, SHY,
// LAS, and the unstable form of LAX #imm) are deliberately left absent
// rather than emulated with guessed, chip-revision-dependent behaviour.
//
// This table is a compile-time constant, per the source's own generator
// design: opcode -> Definition, built once and never mutated.
var Table = [256]Definition{
	0x00: {OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, AddressingMode: Implied, Effect: Interrupt},
	0x01: {OpCode: 0x01, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x02: {OpCode: 0x02, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x03: {OpCode: 0x03, Mnemonic: "SLO", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0x04: {OpCode: 0x04, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x05: {OpCode: 0x05, Mnemonic: "ORA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x06: {OpCode: 0x06, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x07: {OpCode: 0x07, Mnemonic: "SLO", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x08: {OpCode: 0x08, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Write},
	0x09: {OpCode: 0x09, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x0A: {OpCode: 0x0A, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x0B: {OpCode: 0x0B, Mnemonic: "ANC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x0C: {OpCode: 0x0C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x0D: {OpCode: 0x0D, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x0E: {OpCode: 0x0E, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x0F: {OpCode: 0x0F, Mnemonic: "SLO", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0x10: {OpCode: 0x10, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x11: {OpCode: 0x11, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x12: {OpCode: 0x12, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x13: {OpCode: 0x13, Mnemonic: "SLO", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0x14: {OpCode: 0x14, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x15: {OpCode: 0x15, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x16: {OpCode: 0x16, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x17: {OpCode: 0x17, Mnemonic: "SLO", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x18: {OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x19: {OpCode: 0x19, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x1A: {OpCode: 0x1A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x1B: {OpCode: 0x1B, Mnemonic: "SLO", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0x1C: {OpCode: 0x1C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x1D: {OpCode: 0x1D, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x1E: {OpCode: 0x1E, Mnemonic: "ASL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x1F: {OpCode: 0x1F, Mnemonic: "SLO", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0x20: {OpCode: 0x20, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
	0x21: {OpCode: 0x21, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x22: {OpCode: 0x22, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x23: {OpCode: 0x23, Mnemonic: "RLA", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0x24: {OpCode: 0x24, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x25: {OpCode: 0x25, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x26: {OpCode: 0x26, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x27: {OpCode: 0x27, Mnemonic: "RLA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x28: {OpCode: 0x28, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	0x29: {OpCode: 0x29, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x2A: {OpCode: 0x2A, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x2B: {OpCode: 0x2B, Mnemonic: "ANC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x2C: {OpCode: 0x2C, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x2D: {OpCode: 0x2D, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x2E: {OpCode: 0x2E, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x2F: {OpCode: 0x2F, Mnemonic: "RLA", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0x30: {OpCode: 0x30, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x31: {OpCode: 0x31, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x32: {OpCode: 0x32, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x33: {OpCode: 0x33, Mnemonic: "RLA", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0x34: {OpCode: 0x34, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x35: {OpCode: 0x35, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x36: {OpCode: 0x36, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x37: {OpCode: 0x37, Mnemonic: "RLA", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x38: {OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x39: {OpCode: 0x39, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x3A: {OpCode: 0x3A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x3B: {OpCode: 0x3B, Mnemonic: "RLA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0x3C: {OpCode: 0x3C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3D: {OpCode: 0x3D, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3E: {OpCode: 0x3E, Mnemonic: "ROL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x3F: {OpCode: 0x3F, Mnemonic: "RLA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0x40: {OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Interrupt},
	0x41: {OpCode: 0x41, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x42: {OpCode: 0x42, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x43: {OpCode: 0x43, Mnemonic: "SRE", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0x44: {OpCode: 0x44, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x45: {OpCode: 0x45, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x46: {OpCode: 0x46, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x47: {OpCode: 0x47, Mnemonic: "SRE", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x48: {OpCode: 0x48, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, Effect: Write},
	0x49: {OpCode: 0x49, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x4A: {OpCode: 0x4A, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x4B: {OpCode: 0x4B, Mnemonic: "ALR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x4C: {OpCode: 0x4C, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	0x4D: {OpCode: 0x4D, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x4E: {OpCode: 0x4E, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x4F: {OpCode: 0x4F, Mnemonic: "SRE", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0x50: {OpCode: 0x50, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x51: {OpCode: 0x51, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x52: {OpCode: 0x52, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x53: {OpCode: 0x53, Mnemonic: "SRE", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0x54: {OpCode: 0x54, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x55: {OpCode: 0x55, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x56: {OpCode: 0x56, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x57: {OpCode: 0x57, Mnemonic: "SRE", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x58: {OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x59: {OpCode: 0x59, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x5A: {OpCode: 0x5A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x5B: {OpCode: 0x5B, Mnemonic: "SRE", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0x5C: {OpCode: 0x5C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x5D: {OpCode: 0x5D, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x5E: {OpCode: 0x5E, Mnemonic: "LSR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x5F: {OpCode: 0x5F, Mnemonic: "SRE", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0x60: {OpCode: 0x60, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, Effect: Subroutine},
	0x61: {OpCode: 0x61, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0x62: {OpCode: 0x62, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x63: {OpCode: 0x63, Mnemonic: "RRA", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0x64: {OpCode: 0x64, Mnemonic: "NOP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x65: {OpCode: 0x65, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0x66: {OpCode: 0x66, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x67: {OpCode: 0x67, Mnemonic: "RRA", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0x68: {OpCode: 0x68, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, Effect: Read},
	0x69: {OpCode: 0x69, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x6A: {OpCode: 0x6A, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Effect: RMW},
	0x6B: {OpCode: 0x6B, Mnemonic: "ARR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x6C: {OpCode: 0x6C, Mnemonic: "JMP", Bytes: 3, Cycles: 5, AddressingMode: Indirect, Effect: Flow},
	0x6D: {OpCode: 0x6D, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0x6E: {OpCode: 0x6E, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0x6F: {OpCode: 0x6F, Mnemonic: "RRA", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0x70: {OpCode: 0x70, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x71: {OpCode: 0x71, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x72: {OpCode: 0x72, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0x73: {OpCode: 0x73, Mnemonic: "RRA", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0x74: {OpCode: 0x74, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x75: {OpCode: 0x75, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0x76: {OpCode: 0x76, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x77: {OpCode: 0x77, Mnemonic: "RRA", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0x78: {OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x79: {OpCode: 0x79, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x7A: {OpCode: 0x7A, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x7B: {OpCode: 0x7B, Mnemonic: "RRA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0x7C: {OpCode: 0x7C, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x7D: {OpCode: 0x7D, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x7E: {OpCode: 0x7E, Mnemonic: "ROR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0x7F: {OpCode: 0x7F, Mnemonic: "RRA", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0x80: {OpCode: 0x80, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x81: {OpCode: 0x81, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	0x82: {OpCode: 0x82, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x83: {OpCode: 0x83, Mnemonic: "SAX", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Write},
	0x84: {OpCode: 0x84, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x85: {OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x86: {OpCode: 0x86, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x87: {OpCode: 0x87, Mnemonic: "SAX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Write},
	0x88: {OpCode: 0x88, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x89: {OpCode: 0x89, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0x8A: {OpCode: 0x8A, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x8C: {OpCode: 0x8C, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8D: {OpCode: 0x8D, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8E: {OpCode: 0x8E, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},
	0x8F: {OpCode: 0x8F, Mnemonic: "SAX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Write},

	0x90: {OpCode: 0x90, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0x91: {OpCode: 0x91, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, Effect: Write},
	0x94: {OpCode: 0x94, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x95: {OpCode: 0x95, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Write},
	0x96: {OpCode: 0x96, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	0x97: {OpCode: 0x97, Mnemonic: "SAX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Write},
	0x98: {OpCode: 0x98, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x99: {OpCode: 0x99, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, Effect: Write},
	0x9A: {OpCode: 0x9A, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0x9D: {OpCode: 0x9D, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, Effect: Write},

	0xA0: {OpCode: 0xA0, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xA1: {OpCode: 0xA1, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xA2: {OpCode: 0xA2, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xA3: {OpCode: 0xA3, Mnemonic: "LAX", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xA4: {OpCode: 0xA4, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xA5: {OpCode: 0xA5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xA6: {OpCode: 0xA6, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xA7: {OpCode: 0xA7, Mnemonic: "LAX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xA8: {OpCode: 0xA8, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xA9: {OpCode: 0xA9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xAA: {OpCode: 0xAA, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xAC: {OpCode: 0xAC, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xAD: {OpCode: 0xAD, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xAE: {OpCode: 0xAE, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xAF: {OpCode: 0xAF, Mnemonic: "LAX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},

	0xB0: {OpCode: 0xB0, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xB1: {OpCode: 0xB1, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xB3: {OpCode: 0xB3, Mnemonic: "LAX", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xB4: {OpCode: 0xB4, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xB5: {OpCode: 0xB5, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xB6: {OpCode: 0xB6, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	0xB7: {OpCode: 0xB7, Mnemonic: "LAX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, Effect: Read},
	0xB8: {OpCode: 0xB8, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xB9: {OpCode: 0xB9, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xBA: {OpCode: 0xBA, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xBC: {OpCode: 0xBC, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xBD: {OpCode: 0xBD, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xBE: {OpCode: 0xBE, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xBF: {OpCode: 0xBF, Mnemonic: "LAX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},

	0xC0: {OpCode: 0xC0, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xC1: {OpCode: 0xC1, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xC2: {OpCode: 0xC2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xC3: {OpCode: 0xC3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0xC4: {OpCode: 0xC4, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xC5: {OpCode: 0xC5, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xC6: {OpCode: 0xC6, Mnemonic: "DEC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xC7: {OpCode: 0xC7, Mnemonic: "DCP", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xC8: {OpCode: 0xC8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xC9: {OpCode: 0xC9, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xCA: {OpCode: 0xCA, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xCB: {OpCode: 0xCB, Mnemonic: "AXS", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xCC: {OpCode: 0xCC, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xCD: {OpCode: 0xCD, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xCE: {OpCode: 0xCE, Mnemonic: "DEC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xCF: {OpCode: 0xCF, Mnemonic: "DCP", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0xD0: {OpCode: 0xD0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xD1: {OpCode: 0xD1, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xD3: {OpCode: 0xD3, Mnemonic: "DCP", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0xD4: {OpCode: 0xD4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xD5: {OpCode: 0xD5, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xD6: {OpCode: 0xD6, Mnemonic: "DEC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xD7: {OpCode: 0xD7, Mnemonic: "DCP", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xD8: {OpCode: 0xD8, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xD9: {OpCode: 0xD9, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xDA: {OpCode: 0xDA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xDB: {OpCode: 0xDB, Mnemonic: "DCP", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0xDC: {OpCode: 0xDC, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xDD: {OpCode: 0xDD, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xDE: {OpCode: 0xDE, Mnemonic: "DEC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0xDF: {OpCode: 0xDF, Mnemonic: "DCP", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0xE0: {OpCode: 0xE0, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xE1: {OpCode: 0xE1, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, Effect: Read},
	0xE2: {OpCode: 0xE2, Mnemonic: "NOP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xE3: {OpCode: 0xE3, Mnemonic: "ISB", Bytes: 2, Cycles: 8, AddressingMode: IndexedIndirect, Effect: RMW},
	0xE4: {OpCode: 0xE4, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xE5: {OpCode: 0xE5, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	0xE6: {OpCode: 0xE6, Mnemonic: "INC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xE7: {OpCode: 0xE7, Mnemonic: "ISB", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, Effect: RMW},
	0xE8: {OpCode: 0xE8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xE9: {OpCode: 0xE9, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xEA: {OpCode: 0xEA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xEB: {OpCode: 0xEB, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	0xEC: {OpCode: 0xEC, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xED: {OpCode: 0xED, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},
	0xEE: {OpCode: 0xEE, Mnemonic: "INC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},
	0xEF: {OpCode: 0xEF, Mnemonic: "ISB", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: RMW},

	0xF0: {OpCode: 0xF0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	0xF1: {OpCode: 0xF1, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xF3: {OpCode: 0xF3, Mnemonic: "ISB", Bytes: 2, Cycles: 8, AddressingMode: IndirectIndexed, Effect: RMW},
	0xF4: {OpCode: 0xF4, Mnemonic: "NOP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xF5: {OpCode: 0xF5, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, Effect: Read},
	0xF6: {OpCode: 0xF6, Mnemonic: "INC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xF7: {OpCode: 0xF7, Mnemonic: "ISB", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, Effect: RMW},
	0xF8: {OpCode: 0xF8, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xF9: {OpCode: 0xF9, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xFA: {OpCode: 0xFA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Effect: Read},
	0xFB: {OpCode: 0xFB, Mnemonic: "ISB", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedY, Effect: RMW},
	0xFC: {OpCode: 0xFC, Mnemonic: "NOP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xFD: {OpCode: 0xFD, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xFE: {OpCode: 0xFE, Mnemonic: "INC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},
	0xFF: {OpCode: 0xFF, Mnemonic: "ISB", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, Effect: RMW},

	0x92: {OpCode: 0x92, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0xB2: {OpCode: 0xB2, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0xD2: {OpCode: 0xD2, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
	0xF2: {OpCode: 0xF2, Mnemonic: "KIL", Bytes: 1, Cycles: 1, AddressingMode: Implied, Effect: Interrupt},
}
