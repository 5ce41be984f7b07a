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

// Package cpu implements the 6507 CPU execution core: a single-step Cycle
// primitive that performs exactly one bus access per call and advances an
// internal microcode state machine, driven cycle by cycle by whatever
// pixel-clocked hardware sits on the other side of the bus.
package cpu

import (
	"github.com/scanline-labs/mos6507/cpu/bus"
	"github.com/scanline-labs/mos6507/cpu/execution"
	"github.com/scanline-labs/mos6507/cpu/instructions"
	"github.com/scanline-labs/mos6507/cpu/registers"
	"github.com/scanline-labs/mos6507/internal/coreset/logger"
)

// scratch holds the working state of the instruction currently being
// decoded or executed: address bytes still being assembled, the fetched
// operand, and the handful of flags the addressing-mode and operation
// micro-programs pass between their steps. It is reset whenever a fetched
// opcode is decoded into a compiled instruction.
type scratch struct {
	lo, hi   uint8
	ptr      uint8
	base     uint16
	eff      uint16
	operand  uint8
	original uint8
	crossed  bool
	branch   bool
}

// CPU is the 6507 register file plus the compiled microcode driver.
type CPU struct {
	A, X, Y registers.Register
	S       registers.StackPointer
	P       registers.ProgramCounter
	Status  registers.StatusRegister

	bus bus.Bus
	rng RNG
	log *logger.Entry

	scratch scratch

	table [256]program
	boot  program
	irq   program
	nmi   program

	prog program
	idx  int

	halted bool

	// irqLine/nmiLine are the CPU-internal latches state.irq/state.nmi:
	// the outcome of the most recent poll. irqPending/nmiPending are the
	// external request lines, sampled only at a poll.
	irqLine, nmiLine       bool
	irqPending, nmiPending bool

	pollAtNextFetch bool

	lastFetchPC uint16

	invalidInstruction func(opcode uint8)
}

// NewCPU constructs a CPU driven by bus and, optionally, rng (for
// register-scrambling resets). Passing a nil rng zeroes registers on reset
// instead of scrambling them.
func NewCPU(b bus.Bus, rng RNG) *CPU {
	c := &CPU{
		bus: b,
		rng: rng,
		log: logger.Tag("cpu"),
	}
	c.table = compile()
	c.boot = bootProgram()
	c.irq = interruptEntryProgram(irqVectorLow, false)
	c.nmi = interruptEntryProgram(nmiVectorLow, false)
	c.Reset()
	return c
}

// NewCPUWithRandomizedReset is NewCPU with a time-seeded RNG already
// supplied, for hosts that want the "uninitialized memory" reset behaviour
// without wiring their own randomizer.
func NewCPUWithRandomizedReset(b bus.Bus) *CPU {
	return NewCPU(b, newDefaultRNG())
}

// SetInvalidInstructionCallback installs fn to be called whenever the fetch
// stage decodes an opcode with no table entry. Passing nil removes it.
func (c *CPU) SetInvalidInstructionCallback(fn func(opcode uint8)) {
	c.invalidInstruction = fn
}

// GetInvalidInstructionCallback returns the currently installed callback,
// or nil.
func (c *CPU) GetInvalidInstructionCallback() func(opcode uint8) {
	return c.invalidInstruction
}

// GetLastInstructionPointer returns p as it was at the start of the most
// recently decoded instruction, for disassembly and debugging hosts.
func (c *CPU) GetLastInstructionPointer() uint16 {
	return c.lastFetchPC
}

// SetInterrupt raises or lowers the level-sensitive IRQ line. It has no
// immediate effect; the line is sampled at the next interrupt poll.
func (c *CPU) SetInterrupt(asserted bool) {
	c.irqPending = asserted
}

// IsInterrupt reports the current state of the external IRQ line.
func (c *CPU) IsInterrupt() bool {
	return c.irqPending
}

// NMI latches a non-maskable interrupt request, edge-triggered: it is
// consumed by the next poll regardless of how many times it is called
// before then.
func (c *CPU) NMI() {
	c.nmiPending = true
}

// Halt freezes execution: reads stop happening (cycle() becomes a no-op)
// but any write already in flight is still issued.
func (c *CPU) Halt() {
	c.halted = true
}

// Resume clears a halt previously set by Halt or by executing a KIL/HLT
// opcode.
func (c *CPU) Resume() {
	c.halted = false
}

// IsHalt reports whether the CPU is currently halted.
func (c *CPU) IsHalt() bool {
	return c.halted
}

// Reset scrambles (or zeroes) A, X, Y, p and the flags, forces I on and the
// stack pointer to 0x00, and starts the seven-cycle boot micro-machine. The
// value given to p here is overwritten once the boot program reads the
// reset vector.
func (c *CPU) Reset() {
	if c.rng != nil {
		c.A.Load(uint8(c.rng.Int(0xff)))
		c.X.Load(uint8(c.rng.Int(0xff)))
		c.Y.Load(uint8(c.rng.Int(0xff)))
		c.Status.Load(uint8(c.rng.Int(0xff)))
		c.P.Load(uint16(c.rng.Int(0xffff)))
	} else {
		c.A.Load(0)
		c.X.Load(0)
		c.Y.Load(0)
		c.Status.Reset()
		c.P.Load(0)
	}

	// the real chip always starts the reset sequence with s=0x00: three
	// phantom pushes during boot decrement it to the architectural 0xfd.
	c.S.Load(0x00)

	// Component design (§4.8) says reset forces I, E and B all high, but the
	// spec's own concrete scenario 1 pins the observable post-reset flag byte
	// at 0x24 (I+E only) — B has no physical storage outside a pushed copy,
	// so "forcing it high" here would only be observable via Value() before
	// any push, which the scenario says should read 0x24. Leaving Break
	// unset reconciles the two.
	c.Status.InterruptDisable = true

	c.irqLine = false
	c.nmiLine = false
	c.irqPending = false
	c.nmiPending = false
	c.halted = false
	c.pollAtNextFetch = false

	c.scratch = scratch{}
	c.prog = c.boot
	c.idx = 0
}

// nextIsWrite reports whether the very next bus action the CPU would
// perform, if not halted, is a write.
func (c *CPU) nextIsWrite() bool {
	if c.prog == nil || c.idx >= len(c.prog) {
		return false
	}
	return c.prog[c.idx].kind == writeAccess
}

// Cycle performs exactly one bus access and advances the microcode state
// machine by one step, returning a Result describing the access that was
// performed. It is the only entry point hosts need to call; most hosts
// ignore the return value, but a host that wants to snoop the bus traffic
// (a disassembler, a bus-conflict model) can use it without instrumenting
// the bus collaborator itself.
func (c *CPU) Cycle() execution.Result {
	if c.halted && !c.nextIsWrite() {
		return execution.Result{}
	}
	if c.prog == nil || c.idx >= len(c.prog) {
		return c.fetch()
	}
	return c.advance()
}

// advance performs the current step's bus access and, unless it is a dummy
// read with nothing to apply, feeds the result back into the instruction.
// A step whose skip predicate fires costs no bus cycle at all: advance
// keeps moving the index forward, within this same call, until it finds a
// step that actually runs one, or fetches the next opcode when every
// remaining step was skipped.
func (c *CPU) advance() execution.Result {
	for c.prog[c.idx].skip != nil && c.prog[c.idx].skip(c) {
		c.idx++
		if c.idx >= len(c.prog) {
			c.prog = nil
			c.idx = 0
			return c.fetch()
		}
	}

	s := c.prog[c.idx]

	var polled bool
	if s.poll {
		c.poll()
		c.pollAtNextFetch = false
		polled = true
	}

	var result execution.Result
	result.PollInterrupts = polled

	switch s.kind {
	case readAccess:
		addr := s.addr(c)
		v := c.bus.Read(addr)
		if s.apply != nil {
			s.apply(c, v)
		}
		result.Kind = execution.Read
		result.Address = addr
		result.Value = v
	case writeAccess:
		addr := s.addr(c)
		v := s.value(c)
		c.bus.Write(addr, v)
		if s.apply != nil {
			s.apply(c, v)
		}
		result.Kind = execution.Write
		result.Address = addr
		result.Value = v
	}

	c.idx++
	if c.idx >= len(c.prog) {
		c.prog = nil
		c.idx = 0
	}

	return result
}

// fetch performs the opcode-fetch bus cycle and either starts an interrupt
// entry, decodes and starts a compiled instruction, halts on a KIL opcode,
// or reports an invalid opcode. The opcode read is always the Result
// returned, regardless of which of those paths is taken.
func (c *CPU) fetch() execution.Result {
	var polled bool
	if c.pollAtNextFetch {
		c.poll()
		c.pollAtNextFetch = false
		polled = true
	}

	addr := c.P.Address()
	opcode := c.bus.Read(addr)
	result := execution.Result{Kind: execution.Read, Address: addr, Value: opcode}

	if c.nmiLine {
		c.nmiLine = false
		c.prog = c.nmi
		c.idx = 0
		result.PollInterrupts = polled
		return result
	}
	if c.irqLine && !c.Status.InterruptDisable {
		c.prog = c.irq
		c.idx = 0
		result.PollInterrupts = polled
		return result
	}

	c.lastFetchPC = addr

	defn := instructions.Table[opcode]
	if defn.Mnemonic == "" {
		// p is deliberately left unmoved: a host that keeps calling Cycle
		// sees this same bad opcode fetched over and over.
		c.log.Warnf("invalid opcode %#02x at %#04x", opcode, addr)
		if c.invalidInstruction != nil {
			c.invalidInstruction(opcode)
		}
		result.PollInterrupts = polled
		return result
	}

	if defn.Mnemonic == "KIL" {
		// same reasoning: p stays parked on the KIL opcode's own address.
		c.log.Warnf("KIL opcode %#02x executed at %#04x; halting", opcode, addr)
		c.halted = true
		result.PollInterrupts = polled
		return result
	}

	c.P.Increment()
	c.scratch = scratch{}
	c.prog = c.table[opcode]
	c.idx = 0

	if defn.AddressingMode == instructions.Relative {
		// branch programs call poll themselves, from whichever of their
		// steps turns out to be the real last one.
		result.PollInterrupts = polled
		return result
	}

	if defn.Cycles == 2 {
		// the overall penultimate cycle of a two-cycle instruction is the
		// fetch that just happened, which no compiled step can mark.
		c.poll()
		polled = true
	} else {
		// fallback: honored only if no step of this instruction ends up
		// marked poll (compile() marks the true penultimate step for every
		// instruction of three cycles or more, so this should never fire).
		c.pollAtNextFetch = true
	}
	result.PollInterrupts = polled
	return result
}

// poll samples the interrupt lines, per the source's level/edge rules: NMI
// is edge-triggered and always wins; IRQ is level-triggered and masked by
// the I flag.
func (c *CPU) poll() {
	c.irqLine = false
	if c.nmiPending {
		c.nmiLine = true
		c.nmiPending = false
		return
	}
	if c.irqPending && !c.nmiLine && !c.Status.InterruptDisable {
		c.irqLine = true
	}
}
