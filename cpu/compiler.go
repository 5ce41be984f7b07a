package cpu

import "github.com/scanline-labs/mos6507/cpu/instructions"

// compile builds the fixed [256]program table once, at construction. Every
// function value a step carries is a reference to a package-level or
// locally-closed function resolved right here; nothing is allocated again
// once this runs.
func compile() [256]program {
	var table [256]program

	for i := range instructions.Table {
		defn := instructions.Table[i]
		if defn.Mnemonic == "" || defn.Mnemonic == "KIL" {
			continue
		}

		prog := compileOne(defn)
		markPoll(defn, prog)
		table[defn.OpCode] = prog
	}

	return table
}

// markPoll sets the poll flag on the true penultimate step of prog, for
// every instruction whose length is fixed and at least two cycles.
// Branches manage polling themselves (see modeRelative) and are skipped
// here. Page-sensitive indexed reads have their skippable page-fixup read
// at this position; when it is skipped, the step before it polls instead
// (see modeAbsoluteIndexed and modeIndirectIndexed).
func markPoll(defn instructions.Definition, prog program) {
	if defn.AddressingMode == instructions.Relative {
		return
	}
	if len(prog) < 2 {
		return
	}
	prog[len(prog)-2].poll = true
}

// compileOne builds the program for one opcode. Stack, subroutine,
// interrupt and flow-control mnemonics get bespoke programs; everything
// else is composed from an addressing-mode builder plus the mnemonic's
// opSpec.
func compileOne(defn instructions.Definition) program {
	switch defn.Mnemonic {
	case "PHA":
		return buildPush(func(c *CPU) uint8 { return c.A.Value() })
	case "PHP":
		return buildPush(func(c *CPU) uint8 { return c.Status.PushValue(true) })
	case "PLA":
		return buildPull(func(c *CPU, v uint8) { c.A.Load(v); c.Status.SetNZ(v) })
	case "PLP":
		return buildPull(func(c *CPU, v uint8) { c.Status.LoadIgnoringBreak(v) })
	case "JSR":
		return buildJSR()
	case "RTS":
		return buildRTS()
	case "RTI":
		return buildRTI()
	case "BRK":
		return buildBRK()
	case "JMP":
		if defn.AddressingMode == instructions.Indirect {
			return buildJMPIndirect()
		}
		return buildJMPAbsolute()
	}

	if defn.IsBranch() {
		return modeRelative(branchCondition(defn.Mnemonic))
	}

	op := operationFor(defn.Mnemonic)

	switch defn.AddressingMode {
	case instructions.Implied:
		return modeImplied(op)
	case instructions.Accumulator:
		return modeAccumulator(op)
	case instructions.Immediate:
		return modeImmediate(op)
	case instructions.ZeroPage:
		return modeZeroPage(defn, op)
	case instructions.ZeroPageIndexedX:
		return modeZeroPageIndexed(defn, op, func(c *CPU) uint8 { return c.X.Value() })
	case instructions.ZeroPageIndexedY:
		return modeZeroPageIndexed(defn, op, func(c *CPU) uint8 { return c.Y.Value() })
	case instructions.Absolute:
		return modeAbsolute(defn, op)
	case instructions.AbsoluteIndexedX:
		return modeAbsoluteIndexed(defn, op, func(c *CPU) uint8 { return c.X.Value() })
	case instructions.AbsoluteIndexedY:
		return modeAbsoluteIndexed(defn, op, func(c *CPU) uint8 { return c.Y.Value() })
	case instructions.IndexedIndirect:
		return modeIndexedIndirect(defn, op)
	case instructions.IndirectIndexed:
		return modeIndirectIndexed(defn, op)
	}

	return nil
}

func stackAddr(c *CPU) uint16 { return c.S.Address() }

func buildPush(value func(c *CPU) uint8) program {
	return program{
		dummyRead(atPC),
		writeThenEffect(stackAddr, value, decrementS),
	}
}

// pull reads at 0x0100|S after first incrementing S, the shape shared by
// PLA, PLP, RTS and RTI.
func pull(consume func(c *CPU, v uint8)) step {
	return step{
		kind: readAccess,
		addr: func(c *CPU) uint16 {
			incrementS(c)
			return c.S.Address()
		},
		apply: consume,
	}
}

func buildPull(consume func(c *CPU, v uint8)) program {
	return program{
		dummyRead(atPC),
		dummyRead(stackAddr),
		pull(consume),
	}
}

func buildJSR() program {
	return program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		dummyRead(stackAddr),
		writeThenEffect(stackAddr, func(c *CPU) uint8 { return uint8(c.P.Address() >> 8) }, decrementS),
		writeThenEffect(stackAddr, func(c *CPU) uint8 { return uint8(c.P.Address()) }, decrementS),
		read(atPC, func(c *CPU, v uint8) {
			c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo))
		}),
	}
}

func buildRTS() program {
	return program{
		dummyRead(atPC),
		dummyRead(stackAddr),
		pull(func(c *CPU, v uint8) { c.scratch.lo = v }),
		pull(func(c *CPU, v uint8) { c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo)) }),
		read(atPC, func(c *CPU, _ uint8) { c.P.Increment() }),
	}
}

func buildRTI() program {
	return program{
		dummyRead(atPC),
		dummyRead(stackAddr),
		pull(func(c *CPU, v uint8) { c.Status.LoadIgnoringBreak(v) }),
		pull(func(c *CPU, v uint8) { c.scratch.lo = v }),
		pull(func(c *CPU, v uint8) { c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo)) }),
	}
}

// buildBRK discards the byte following the opcode (software BRK always
// skips one byte, conventionally a signature/break-mark) then runs the
// same push/vector sequence as a hardware interrupt, with B forced set.
func buildBRK() program {
	prog := program{fetchOperand(nil)}
	return append(prog, interruptTail(irqVectorLow, true)...)
}

func buildJMPAbsolute() program {
	return program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		read(atPC, func(c *CPU, v uint8) {
			c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo))
		}),
	}
}

// buildJMPIndirect reproduces the classic 6502 page-wrap bug: the high
// byte of the target is fetched from (pointer & 0xff00) | ((pointer+1) &
// 0xff), never crossing into the next page.
func buildJMPIndirect() program {
	return program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		fetchOperand(func(c *CPU, v uint8) {
			c.scratch.hi = v
			c.scratch.base = uint16(v)<<8 | uint16(c.scratch.lo)
		}),
		read(func(c *CPU) uint16 { return c.scratch.base }, func(c *CPU, v uint8) {
			c.scratch.lo = v
		}),
		read(func(c *CPU) uint16 {
			return (c.scratch.base & 0xff00) | ((c.scratch.base + 1) & 0xff)
		}, func(c *CPU, v uint8) {
			c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo))
		}),
	}
}
