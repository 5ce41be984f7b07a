package cpu

import "github.com/scanline-labs/mos6507/cpu/instructions"

// opSpec is the small set of behaviours an operation micro-machine can
// plug into an addressing-mode program. Only the field matching the
// instruction's EffectCategory is ever called by the addressing-mode
// builders in this file.
type opSpec struct {
	onRead   func(c *CPU, v uint8)
	onWrite  func(c *CPU) uint8
	onModify func(c *CPU, v uint8) uint8
	onImplied func(c *CPU)
}

// finalAccess appends the one to three bus cycles that actually touch the
// effective address, shaped by the instruction's effect category. addr is
// evaluated once per cycle; it is a pure function of already-computed
// scratch state so re-evaluating it for RMW's three cycles is safe.
func finalAccess(effect instructions.EffectCategory, op opSpec, addr func(c *CPU) uint16) program {
	switch effect {
	case instructions.Read:
		return program{read(addr, op.onRead)}
	case instructions.Write:
		return program{write(addr, op.onWrite)}
	case instructions.RMW:
		return program{
			read(addr, func(c *CPU, v uint8) { c.scratch.original = v }),
			write(addr, func(c *CPU) uint8 { return c.scratch.original }),
			write(addr, func(c *CPU) uint8 { return op.onModify(c, c.scratch.original) }),
		}
	}
	return nil
}

func modeImmediate(op opSpec) program {
	return program{
		{
			kind: readAccess,
			addr: atPC,
			apply: func(c *CPU, v uint8) {
				c.P.Increment()
				op.onRead(c, v)
			},
		},
	}
}

func modeZeroPage(defn instructions.Definition, op opSpec) program {
	prog := program{fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v })}
	addr := func(c *CPU) uint16 { return uint16(c.scratch.lo) }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

func modeZeroPageIndexed(defn instructions.Definition, op opSpec, index func(c *CPU) uint8) program {
	prog := program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		dummyRead(func(c *CPU) uint16 { return uint16(c.scratch.lo) }),
	}
	addr := func(c *CPU) uint16 { return uint16(c.scratch.lo + index(c)) }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

func modeAbsolute(defn instructions.Definition, op opSpec) program {
	prog := program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		fetchOperand(func(c *CPU, v uint8) { c.scratch.hi = v }),
	}
	addr := func(c *CPU) uint16 { return uint16(c.scratch.hi)<<8 | uint16(c.scratch.lo) }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

// modeAbsoluteIndexed implements absolute,X and absolute,Y. Stores always
// pay the dummy read on the page-fixup cycle; reads pay it only when the
// index actually crosses a page, modelled as a runtime-skippable step so
// the true cycle count varies exactly like the real chip's.
func modeAbsoluteIndexed(defn instructions.Definition, op opSpec, index func(c *CPU) uint8) program {
	prog := program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.lo = v }),
		fetchOperand(func(c *CPU, v uint8) {
			c.scratch.hi = v
			c.scratch.base = uint16(v)<<8 | uint16(c.scratch.lo)
			eff := c.scratch.base + uint16(index(c))
			c.scratch.eff = eff
			c.scratch.crossed = (eff & 0xff00) != (c.scratch.base & 0xff00)
			if defn.PageSensitive && !c.scratch.crossed {
				// the poll-marked dummy read below is skipped, which makes
				// this the penultimate cycle.
				c.poll()
				c.pollAtNextFetch = false
			}
		}),
	}

	dummy := step{
		kind: readAccess,
		addr: func(c *CPU) uint16 { return (c.scratch.base & 0xff00) | (c.scratch.eff & 0xff) },
	}
	if defn.PageSensitive {
		// stores and read-modify-writes always pay this cycle; only a
		// plain read skips it when the index didn't cross a page.
		dummy.skip = func(c *CPU) bool { return !c.scratch.crossed }
	}
	prog = append(prog, dummy)

	addr := func(c *CPU) uint16 { return c.scratch.eff }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

func modeIndexedIndirect(defn instructions.Definition, op opSpec) program {
	prog := program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.ptr = v }),
		dummyRead(func(c *CPU) uint16 { return uint16(c.scratch.ptr) }),
		read(func(c *CPU) uint16 { return uint16(c.scratch.ptr + c.X.Value()) }, func(c *CPU, v uint8) {
			c.scratch.lo = v
		}),
		read(func(c *CPU) uint16 { return uint16(c.scratch.ptr + c.X.Value() + 1) }, func(c *CPU, v uint8) {
			c.scratch.hi = v
		}),
	}
	addr := func(c *CPU) uint16 { return uint16(c.scratch.hi)<<8 | uint16(c.scratch.lo) }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

func modeIndirectIndexed(defn instructions.Definition, op opSpec) program {
	prog := program{
		fetchOperand(func(c *CPU, v uint8) { c.scratch.ptr = v }),
		read(func(c *CPU) uint16 { return uint16(c.scratch.ptr) }, func(c *CPU, v uint8) {
			c.scratch.lo = v
		}),
		read(func(c *CPU) uint16 { return uint16(c.scratch.ptr + 1) }, func(c *CPU, v uint8) {
			c.scratch.hi = v
			c.scratch.base = uint16(v)<<8 | uint16(c.scratch.lo)
			eff := c.scratch.base + uint16(c.Y.Value())
			c.scratch.eff = eff
			c.scratch.crossed = (eff & 0xff00) != (c.scratch.base & 0xff00)
			if defn.PageSensitive && !c.scratch.crossed {
				// the poll-marked dummy read below is skipped, which makes
				// this the penultimate cycle.
				c.poll()
				c.pollAtNextFetch = false
			}
		}),
	}

	dummy := step{
		kind: readAccess,
		addr: func(c *CPU) uint16 { return (c.scratch.base & 0xff00) | (c.scratch.eff & 0xff) },
	}
	if defn.PageSensitive {
		// stores and read-modify-writes always pay this cycle; only a
		// plain read skips it when the index didn't cross a page.
		dummy.skip = func(c *CPU) bool { return !c.scratch.crossed }
	}
	prog = append(prog, dummy)

	addr := func(c *CPU) uint16 { return c.scratch.eff }
	return append(prog, finalAccess(defn.Effect, op, addr)...)
}

// modeImplied is the generic implied/no-operand shape: one dummy read at p,
// then the operation acts on registers only.
func modeImplied(op opSpec) program {
	return program{
		{
			kind:  readAccess,
			addr:  atPC,
			apply: func(c *CPU, _ uint8) { op.onImplied(c) },
		},
	}
}

// modeAccumulator reuses the RMW modify function directly against A,
// skipping the bus entirely for the actual mutation, matching real
// hardware's accumulator-form opcodes.
func modeAccumulator(op opSpec) program {
	return program{
		{
			kind: readAccess,
			addr: atPC,
			apply: func(c *CPU, _ uint8) {
				c.A.Load(op.onModify(c, c.A.Value()))
			},
		},
	}
}

func signExtend(v uint8) uint16 {
	if v&0x80 != 0 {
		return uint16(v) | 0xff00
	}
	return uint16(v)
}

// modeRelative implements branch instructions. All three cycle counts (2,
// 3 or 4) come out of the same three-step template: the last two steps are
// skipped, in turn, when the branch isn't taken or doesn't cross a page.
// Each of the three possible final steps calls poll itself, since which
// step is actually last can only be known once the branch has been
// evaluated and the offset has been added.
func modeRelative(taken func(c *CPU) bool) program {
	return program{
		{
			kind: readAccess,
			addr: atPC,
			apply: func(c *CPU, v uint8) {
				c.P.Increment()
				c.scratch.operand = v
				c.scratch.branch = taken(c)
				c.scratch.base = c.P.Address()
				if !c.scratch.branch {
					c.poll()
					c.pollAtNextFetch = false
				}
			},
		},
		{
			kind: readAccess,
			addr: func(c *CPU) uint16 { return c.scratch.base },
			skip: func(c *CPU) bool { return !c.scratch.branch },
			apply: func(c *CPU, _ uint8) {
				eff := c.scratch.base + signExtend(c.scratch.operand)
				c.scratch.eff = eff
				c.scratch.crossed = (eff & 0xff00) != (c.scratch.base & 0xff00)
				if c.scratch.crossed {
					c.P.Load((c.scratch.base & 0xff00) | (eff & 0xff))
				} else {
					c.P.Load(eff)
					c.poll()
					c.pollAtNextFetch = false
				}
			},
		},
		{
			kind: readAccess,
			addr: atPC,
			skip: func(c *CPU) bool { return !c.scratch.branch || !c.scratch.crossed },
			apply: func(c *CPU, _ uint8) {
				c.P.Load(c.scratch.eff)
				c.poll()
				c.pollAtNextFetch = false
			},
		},
	}
}
