package execution_test

import (
	"testing"

	"github.com/scanline-labs/mos6507/cpu"
	"github.com/scanline-labs/mos6507/cpu/execution"
)

// memBus is the smallest possible bus.Bus: a flat 64K array with no side
// effects, enough to drive Cycle and inspect the Results it returns.
type memBus struct {
	mem [65536]uint8
}

func (b *memBus) Read(address uint16) uint8 {
	return b.mem[address]
}

func (b *memBus) Write(address uint16, value uint8) {
	b.mem[address] = value
}

// TestCycleReturnsOpcodeFetchResult checks that Cycle's Result for a fetch
// reports the opcode byte actually read, at the address it was read from.
func TestCycleReturnsOpcodeFetchResult(t *testing.T) {
	b := &memBus{}
	b.mem[0xfffc] = 0x00
	b.mem[0xfffd] = 0x02
	c := cpu.NewCPU(b, nil)

	for i := 0; i < 7; i++ {
		c.Cycle()
	}

	b.mem[0x0200] = 0xa9 // LDA #imm
	b.mem[0x0201] = 0x42

	result := c.Cycle()
	if result.Kind != execution.Read {
		t.Fatalf("Kind = %v, want Read", result.Kind)
	}
	if result.Address != 0x0200 {
		t.Fatalf("Address = %#04x, want 0x0200", result.Address)
	}
	if result.Value != 0xa9 {
		t.Fatalf("Value = %#02x, want 0xa9 (the opcode byte)", result.Value)
	}
}

// TestCycleReturnsWriteResult checks that a write cycle's Result reports the
// byte actually placed on the bus and the address it was written to.
func TestCycleReturnsWriteResult(t *testing.T) {
	b := &memBus{}
	b.mem[0xfffc] = 0x00
	b.mem[0xfffd] = 0x02
	c := cpu.NewCPU(b, nil)

	for i := 0; i < 7; i++ {
		c.Cycle()
	}

	b.mem[0x0200] = 0x85 // STA $10
	b.mem[0x0201] = 0x10
	c.A.Load(0x5a)

	c.Cycle() // fetch
	c.Cycle() // operand
	result := c.Cycle()

	if result.Kind != execution.Write {
		t.Fatalf("Kind = %v, want Write", result.Kind)
	}
	if result.Address != 0x0010 {
		t.Fatalf("Address = %#04x, want 0x0010", result.Address)
	}
	if result.Value != 0x5a {
		t.Fatalf("Value = %#02x, want 0x5a (the byte in A)", result.Value)
	}
}

// TestAccessString checks Access's Stringer, the one behavior in this
// package with no other caller to exercise it.
func TestAccessString(t *testing.T) {
	if execution.Read.String() != "read" {
		t.Fatalf("Read.String() = %q, want %q", execution.Read.String(), "read")
	}
	if execution.Write.String() != "write" {
		t.Fatalf("Write.String() = %q, want %q", execution.Write.String(), "write")
	}
}
