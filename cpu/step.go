package cpu

import "github.com/scanline-labs/mos6507/cpu/execution"

const (
	readAccess  = execution.Read
	writeAccess = execution.Write
)

// step is one compiled bus cycle. Its function fields are resolved once,
// when the opcode table is built (see compiler.go) — never per cycle — and
// are almost always references to shared package-level functions rather
// than freshly allocated closures. What changes cycle to cycle is only the
// CPU's own scratch state, which the functions read and write.
type step struct {
	kind execution.Access

	// addr computes the address for this cycle. Present on every step.
	addr func(c *CPU) uint16

	// value computes the byte to place on the bus. Present only on write
	// steps.
	value func(c *CPU) uint8

	// apply consumes the byte the bus returned on read steps that need the
	// value (dummy reads leave this nil). On write steps built by
	// writeThenEffect it runs that step's side effect after the write.
	apply func(c *CPU, v uint8)

	// poll marks this as the instruction's penultimate cycle: the driver
	// runs the interrupt poll immediately before honoring this step.
	poll bool

	// skip, when non-nil, is evaluated before the step would otherwise run;
	// if it returns true the step is passed over entirely and consumes no
	// bus cycle, used for the page-crossing dummy read that real hardware
	// only performs part of the time.
	skip func(c *CPU) bool
}

// program is a fixed sequence of steps compiled for one opcode, or for one
// of the three vectored entries.
type program []step

func dummyRead(addr func(c *CPU) uint16) step {
	return step{kind: execution.Read, addr: addr}
}

func read(addr func(c *CPU) uint16, apply func(c *CPU, v uint8)) step {
	return step{kind: execution.Read, addr: addr, apply: apply}
}

func write(addr func(c *CPU) uint16, value func(c *CPU) uint8) step {
	return step{kind: execution.Write, addr: addr, value: value}
}

// writeThenEffect is a write step with a side effect run immediately after
// the value is placed on the bus (S-- after a push).
func writeThenEffect(addr func(c *CPU) uint16, value func(c *CPU) uint8, effect func(c *CPU)) step {
	return step{kind: execution.Write, addr: addr, value: value, apply: func(c *CPU, _ uint8) { effect(c) }}
}

// atPC reads the address currently in the program counter without
// advancing it — used for dummy reads that must not consume a byte.
func atPC(c *CPU) uint16 { return c.P.Address() }

// fetchOperand reads the byte at p and advances p, the shape shared by
// every addressing mode's first (or only) cycle.
func fetchOperand(apply func(c *CPU, v uint8)) step {
	return step{
		kind: execution.Read,
		addr: atPC,
		apply: func(c *CPU, v uint8) {
			c.P.Increment()
			if apply != nil {
				apply(c, v)
			}
		},
	}
}
