package cpu

import "github.com/scanline-labs/mos6507/cpu/registers"

// compare implements CMP/CPX/CPY: an unstored subtraction that only ever
// touches N, Z and C.
func compare(c *CPU, reg uint8, v uint8) {
	result := reg - v
	c.Status.Carry = reg >= v
	c.Status.SetNZ(result)
}

// modify runs one of Register's shift/rotate primitives against a
// throwaway register wrapping v, used by every RMW and accumulator-form
// opcode so the bit-twiddling logic lives in exactly one place.
func modify(mnemonic string, c *CPU, v uint8) uint8 {
	reg := registers.NewRegister(v, "")
	var carry bool
	switch mnemonic {
	case "ASL", "SLO":
		carry = reg.ASL()
	case "LSR", "SRE":
		carry = reg.LSR()
	case "ROL", "RLA":
		carry = reg.ROL(c.Status.Carry)
	case "ROR", "RRA":
		carry = reg.ROR(c.Status.Carry)
	case "INC", "ISB":
		reg.Load(reg.Value() + 1)
	case "DEC", "DCP":
		reg.Load(reg.Value() - 1)
	}
	switch mnemonic {
	case "ASL", "LSR", "ROL", "ROR", "SLO", "SRE", "RLA", "RRA":
		c.Status.Carry = carry
	}
	c.Status.SetNZ(reg.Value())
	return reg.Value()
}

func branchCondition(mnemonic string) func(c *CPU) bool {
	switch mnemonic {
	case "BPL":
		return func(c *CPU) bool { return !c.Status.Sign }
	case "BMI":
		return func(c *CPU) bool { return c.Status.Sign }
	case "BVC":
		return func(c *CPU) bool { return !c.Status.Overflow }
	case "BVS":
		return func(c *CPU) bool { return c.Status.Overflow }
	case "BCC":
		return func(c *CPU) bool { return !c.Status.Carry }
	case "BCS":
		return func(c *CPU) bool { return c.Status.Carry }
	case "BNE":
		return func(c *CPU) bool { return !c.Status.Zero }
	case "BEQ":
		return func(c *CPU) bool { return c.Status.Zero }
	}
	return func(c *CPU) bool { return false }
}

// addWithMode dispatches ADC to binary or decimal arithmetic depending on
// the D flag, mirroring the asymmetric flag behaviour Cwik documents:
// decimal ADC derives N/V from the pre-adjust nibble math and Z from the
// binary low byte of the sum.
func addWithMode(c *CPU, v uint8) {
	if c.Status.DecimalMode {
		c.Status.Carry, c.Status.Zero, c.Status.Overflow, c.Status.Sign = c.A.AddDecimal(v, c.Status.Carry)
		return
	}
	c.Status.Carry, c.Status.Overflow = c.A.Add(v, c.Status.Carry)
	c.Status.SetNZ(c.A.Value())
}

// subtractWithMode dispatches SBC to binary or decimal arithmetic. Unlike
// addWithMode, decimal SBC's N/Z/V/C mirror an ordinary binary subtraction;
// only the digits stored back into A get BCD-corrected.
func subtractWithMode(c *CPU, v uint8) {
	if c.Status.DecimalMode {
		c.Status.Carry, c.Status.Zero, c.Status.Overflow, c.Status.Sign = c.A.SubtractDecimal(v, c.Status.Carry)
		return
	}
	c.Status.Carry, c.Status.Overflow = c.A.Subtract(v, c.Status.Carry)
	c.Status.SetNZ(c.A.Value())
}

// operationFor returns the opSpec that addressing-mode builders drive for
// mnemonic. Mnemonics handled by bespoke programs in compiler.go (stack,
// subroutine, interrupt and flow control ops, and branches) never reach
// here.
func operationFor(mnemonic string) opSpec {
	switch mnemonic {

	case "LDA":
		return opSpec{onRead: func(c *CPU, v uint8) { c.A.Load(v); c.Status.SetNZ(v) }}
	case "LDX":
		return opSpec{onRead: func(c *CPU, v uint8) { c.X.Load(v); c.Status.SetNZ(v) }}
	case "LDY":
		return opSpec{onRead: func(c *CPU, v uint8) { c.Y.Load(v); c.Status.SetNZ(v) }}
	case "LAX":
		return opSpec{onRead: func(c *CPU, v uint8) {
			c.A.Load(v)
			c.X.Load(v)
			c.Status.SetNZ(v)
		}}

	case "STA":
		return opSpec{onWrite: func(c *CPU) uint8 { return c.A.Value() }}
	case "STX":
		return opSpec{onWrite: func(c *CPU) uint8 { return c.X.Value() }}
	case "STY":
		return opSpec{onWrite: func(c *CPU) uint8 { return c.Y.Value() }}
	case "SAX":
		return opSpec{onWrite: func(c *CPU) uint8 { return c.A.Value() & c.X.Value() }}

	case "ADC":
		return opSpec{onRead: addWithMode}
	case "SBC":
		return opSpec{onRead: subtractWithMode}

	case "AND":
		return opSpec{onRead: func(c *CPU, v uint8) { c.A.AND(v); c.Status.SetNZ(c.A.Value()) }}
	case "ORA":
		return opSpec{onRead: func(c *CPU, v uint8) { c.A.ORA(v); c.Status.SetNZ(c.A.Value()) }}
	case "EOR":
		return opSpec{onRead: func(c *CPU, v uint8) { c.A.EOR(v); c.Status.SetNZ(c.A.Value()) }}

	case "CMP":
		return opSpec{onRead: func(c *CPU, v uint8) { compare(c, c.A.Value(), v) }}
	case "CPX":
		return opSpec{onRead: func(c *CPU, v uint8) { compare(c, c.X.Value(), v) }}
	case "CPY":
		return opSpec{onRead: func(c *CPU, v uint8) { compare(c, c.Y.Value(), v) }}

	case "BIT":
		return opSpec{onRead: func(c *CPU, v uint8) {
			c.Status.Zero = c.A.Value()&v == 0
			c.Status.Sign = v&0x80 != 0
			c.Status.Overflow = v&0x40 != 0
		}}

	case "ASL", "LSR", "ROL", "ROR", "INC", "DEC":
		m := mnemonic
		return opSpec{onModify: func(c *CPU, v uint8) uint8 { return modify(m, c, v) }}

	case "SLO":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("SLO", c, v)
			c.A.ORA(r)
			c.Status.SetNZ(c.A.Value())
			return r
		}}
	case "SRE":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("SRE", c, v)
			c.A.EOR(r)
			c.Status.SetNZ(c.A.Value())
			return r
		}}
	case "RLA":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("RLA", c, v)
			c.A.AND(r)
			c.Status.SetNZ(c.A.Value())
			return r
		}}
	case "RRA":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("RRA", c, v)
			addWithMode(c, r)
			return r
		}}
	case "DCP":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("DCP", c, v)
			compare(c, c.A.Value(), r)
			return r
		}}
	case "ISB":
		return opSpec{onModify: func(c *CPU, v uint8) uint8 {
			r := modify("ISB", c, v)
			subtractWithMode(c, r)
			return r
		}}

	case "ANC":
		return opSpec{onRead: func(c *CPU, v uint8) {
			c.A.AND(v)
			c.Status.SetNZ(c.A.Value())
			c.Status.Carry = c.A.Value()&0x80 != 0
		}}
	case "ALR":
		return opSpec{onRead: func(c *CPU, v uint8) {
			c.A.AND(v)
			c.Status.Carry = c.A.LSR()
			c.Status.SetNZ(c.A.Value())
		}}
	case "ARR":
		return opSpec{onRead: func(c *CPU, v uint8) {
			c.A.AND(v)
			c.A.ROR(c.Status.Carry)
			r := c.A.Value()
			c.Status.SetNZ(r)
			c.Status.Carry = r&0x40 != 0
			c.Status.Overflow = (r&0x40 != 0) != (r&0x20 != 0)
		}}
	case "AXS":
		return opSpec{onRead: func(c *CPU, v uint8) {
			r := (c.A.Value() & c.X.Value()) - v
			c.Status.Carry = (c.A.Value() & c.X.Value()) >= v
			c.Status.SetNZ(r)
			c.X.Load(r)
		}}

	case "TAX":
		return opSpec{onImplied: func(c *CPU) { c.X.Load(c.A.Value()); c.Status.SetNZ(c.X.Value()) }}
	case "TXA":
		return opSpec{onImplied: func(c *CPU) { c.A.Load(c.X.Value()); c.Status.SetNZ(c.A.Value()) }}
	case "TAY":
		return opSpec{onImplied: func(c *CPU) { c.Y.Load(c.A.Value()); c.Status.SetNZ(c.Y.Value()) }}
	case "TYA":
		return opSpec{onImplied: func(c *CPU) { c.A.Load(c.Y.Value()); c.Status.SetNZ(c.A.Value()) }}
	case "TSX":
		return opSpec{onImplied: func(c *CPU) { c.X.Load(c.S.Value()); c.Status.SetNZ(c.X.Value()) }}
	case "TXS":
		return opSpec{onImplied: func(c *CPU) { c.S.Load(c.X.Value()) }}

	case "INX":
		return opSpec{onImplied: func(c *CPU) { c.X.Load(c.X.Value() + 1); c.Status.SetNZ(c.X.Value()) }}
	case "DEX":
		return opSpec{onImplied: func(c *CPU) { c.X.Load(c.X.Value() - 1); c.Status.SetNZ(c.X.Value()) }}
	case "INY":
		return opSpec{onImplied: func(c *CPU) { c.Y.Load(c.Y.Value() + 1); c.Status.SetNZ(c.Y.Value()) }}
	case "DEY":
		return opSpec{onImplied: func(c *CPU) { c.Y.Load(c.Y.Value() - 1); c.Status.SetNZ(c.Y.Value()) }}

	case "CLC":
		return opSpec{onImplied: func(c *CPU) { c.Status.Carry = false }}
	case "SEC":
		return opSpec{onImplied: func(c *CPU) { c.Status.Carry = true }}
	case "CLD":
		return opSpec{onImplied: func(c *CPU) { c.Status.DecimalMode = false }}
	case "SED":
		return opSpec{onImplied: func(c *CPU) { c.Status.DecimalMode = true }}
	case "CLI":
		return opSpec{onImplied: func(c *CPU) { c.Status.InterruptDisable = false }}
	case "SEI":
		return opSpec{onImplied: func(c *CPU) { c.Status.InterruptDisable = true }}
	case "CLV":
		return opSpec{onImplied: func(c *CPU) { c.Status.Overflow = false }}

	case "NOP":
		return opSpec{onImplied: func(c *CPU) {}, onRead: func(c *CPU, v uint8) {}}
	}

	return opSpec{onImplied: func(c *CPU) {}, onRead: func(c *CPU, v uint8) {}}
}
