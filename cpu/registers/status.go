package registers

import "strings"

// StatusRegister holds the seven architectural flag bits of the 6507. The
// "unused" bit (0x20, called E in spec discussions of this core) is not
// stored as a field — it has no observable effect on any operation — but is
// always forced high whenever the flags are packed into a byte with Value().
type StatusRegister struct {
	Sign             bool // N
	Overflow         bool // V
	Break            bool // B - meaningful only in the byte pushed by BRK/PHP
	DecimalMode      bool // D
	InterruptDisable bool // I
	Zero             bool // Z
	Carry            bool // C
}

// NewStatusRegister returns a zeroed status register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the register's display name.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune('-')
		}
	}
	flag(sr.Sign, 'N')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')
	return s.String()
}

// Reset clears every flag (the unused bit still reads back set via Value).
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
}

// SetNZ sets the Sign and Zero flags from v, the common ALU/load result
// side-effect.
func (sr *StatusRegister) SetNZ(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v == 0
}

// Value packs the flags into their canonical byte representation, with the
// unused bit (0x20) always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	v |= 0x20
	return v
}

// PushValue is Value() with an explicit choice of the B bit, used by the
// three code paths (BRK, PHP, hardware interrupt entry) that push the flags
// but disagree about B.
func (sr StatusRegister) PushValue(brk bool) uint8 {
	v := sr.Value() &^ 0x10
	if brk {
		v |= 0x10
	}
	return v
}

// Load unpacks a byte (typically pulled from the stack) into the flags. The
// unused bit is never surfaced as a field so it is simply discarded here;
// Break is loaded verbatim. PLP and RTI use LoadIgnoringBreak instead, which
// forces Break clear.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

// LoadIgnoringBreak unpacks a byte into the flags, always clearing Break.
// The B bit only ever exists in the pushed copy of the status byte; PLP and
// RTI must not let it leak back into the architectural flags.
func (sr *StatusRegister) LoadIgnoringBreak(v uint8) {
	sr.Load(v)
	sr.Break = false
}
