package registers

// The decimal-mode helpers below return zero/overflow/sign information in
// addition to carry, unlike the binary Add/Subtract, because on real 6502
// hardware the N, V and Z flags are latched at different points of the BCD
// correction than the final result — see "Flags on Decimal mode in the NMOS
// 6502" (Jorge Cwik). The exact sequencing of the nibble corrections below
// reproduces those quirks bit-for-bit; do not simplify it into a single
// packed-BCD add.

func addDecimalNibble(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds val to the register as though both operands were packed
// BCD. Returns the new carry, zero, overflow and sign flag states.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var ucarry, tcarry bool

	units := r.value & 0x0f
	vunits := val & 0x0f
	units, ucarry = addDecimalNibble(units, vunits, carry)

	tens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	tens, tcarry = addDecimalNibble(tens, vtens, ucarry)

	// Z reflects the binary low byte of the sum, not the pre-adjust nibble
	// totals: spec.md singles this out as "binary low byte" precisely
	// because summing the raw (unreduced, up to 19) nibbles independently
	// does not agree with the wraparound 8-bit sum whenever a units carry
	// pushes the tens nibble's raw total past 15 (e.g. 0x99+0x67 sums to
	// 0x100 in binary, Z=true, even though the raw nibble totals are 16/16).
	sum := uint16(r.value) + uint16(val)
	if carry {
		sum++
	}
	zero = uint8(sum) == 0x00

	if ucarry {
		units -= 10
	}

	// "The N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble."
	overflow = tens&0x04 == 0x04
	sign = tens&0x08 == 0x08

	if tcarry {
		tens -= 10
	}

	r.value = (tens << 4) | units

	return tcarry, zero, overflow, sign
}

func subtractDecimalNibble(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a - b
	if carry {
		r--
	}
	return r, b > a || (carry && b == a)
}

// SubtractDecimal subtracts val from the register as though both operands
// were packed BCD. Unlike AddDecimal, the N, V, Z and C flags returned here
// mirror an equivalent *binary* subtraction bit-for-bit (Cwik's "Flags on
// Decimal mode in the NMOS 6502" documents this asymmetry between ADC and
// SBC); only the digits actually stored in the register receive the BCD
// correction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	binary := *r
	rcarry, overflow = binary.Subtract(val, carry)
	zero = binary.IsZero()
	sign = binary.IsNegative()

	var ucarry, tcarry bool

	// the 6502 carry flag is inverted (borrow sense) relative to addition
	bcdCarry := !carry

	units := r.value & 0x0f
	vunits := val & 0x0f
	units, ucarry = subtractDecimalNibble(units, vunits, bcdCarry)

	tens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	tens, tcarry = subtractDecimalNibble(tens, vtens, ucarry)

	if ucarry {
		units += 10
	}
	if tcarry {
		tens += 10
	}

	r.value = (tens << 4) | units

	return rcarry, zero, overflow, sign
}
