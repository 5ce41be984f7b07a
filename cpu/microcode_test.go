package cpu

import "testing"

// TestZeroPageIndexedWrapsWithinPage checks the documented zero-page,X
// wraparound: the base + index never carries into page one.
func TestZeroPageIndexedWrapsWithinPage(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xb5, 0xff) // LDA $FF,X
	c.X.Load(0x02)
	b.mem[0x0001] = 0x77 // ($ff+2) & 0xff = 0x01, not 0x101

	for i := 0; i < 4; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x77 {
		t.Fatalf("A = %#02x, want 0x77 (zero-page,X must wrap within page zero)", c.A.Value())
	}
}

// TestIndexedIndirectPointerWrapsWithinPage checks (zp,X) pointer arithmetic
// wraps within page zero for both the pointer-plus-X step and its +1.
func TestIndexedIndirectPointerWrapsWithinPage(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa1, 0xff) // LDA ($FF,X)
	c.X.Load(0x01)
	// ptr+X = 0x00, ptr+X+1 = 0x01, both in page zero.
	b.mem[0x0000] = 0x00
	b.mem[0x0001] = 0x30
	b.mem[0x3000] = 0x5a

	for i := 0; i < 6; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x5a {
		t.Fatalf("A = %#02x, want 0x5a", c.A.Value())
	}
}

// TestIndirectIndexedCrossingCostsOneExtraCycle exercises (zp),Y's
// page-crossing dummy read via the same skip mechanism as absolute,X/Y.
func TestIndirectIndexedCrossingCostsOneExtraCycle(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xb1, 0x10) // LDA ($10),Y
	b.mem[0x0010] = 0xff
	b.mem[0x0011] = 0x20 // base = $20ff
	c.Y.Load(0x01)       // effective = $2100: crosses
	b.mem[0x2100] = 0x64

	for i := 0; i < 6; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x64 {
		t.Fatalf("A = %#02x, want 0x64", c.A.Value())
	}
}

// TestRMWIndexedAlwaysPaysDummyReadRegardlessOfCrossing checks the bug this
// module fixed during development: RMW-effect indexed addressing must pay
// the page-fixup dummy read unconditionally, unlike plain reads.
func TestRMWIndexedAlwaysPaysDummyReadRegardlessOfCrossing(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	// ASL $2000,X with X=1: no page crossing, but RMW's cycle count (7) is
	// fixed regardless.
	b.loadProgram(0x0200, 0x1e, 0x00, 0x20)
	c.X.Load(0x01)
	b.mem[0x2001] = 0x01

	for i := 0; i < 7; i++ {
		c.Cycle()
	}
	if b.mem[0x2001] != 0x02 {
		t.Fatalf("mem[0x2001] = %#02x, want 0x02 (ASL of 0x01)", b.mem[0x2001])
	}
}

// TestBRKPushesWithBreakSetAndEntersIRQVector checks BRK's discard byte,
// push sequence and vector selection all match the shared interruptTail.
func TestBRKPushesWithBreakSetAndEntersIRQVector(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0x00, 0xaa) // BRK, signature byte (discarded)
	b.mem[0xfffe] = 0x00
	b.mem[0xffff] = 0x40 // IRQ/BRK vector -> $4000

	for i := 0; i < 7; i++ {
		c.Cycle()
	}

	if c.P.Address() != 0x4000 {
		t.Fatalf("p = %#04x, want 0x4000 after BRK", c.P.Address())
	}
	pushedFlags := b.mem[0x01fb]
	if pushedFlags&0x10 == 0 {
		t.Fatal("BRK must push flags with B set")
	}
	if !c.Status.InterruptDisable {
		t.Fatal("BRK must set I")
	}
}

// TestIRQEntryLeavesBreakClear distinguishes hardware IRQ entry from BRK:
// both share interruptTail, but only BRK sets the pushed B bit.
func TestIRQEntryLeavesBreakClear(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xea, 0xea)
	b.mem[0xfffe] = 0x00
	b.mem[0xffff] = 0x50

	c.Status.InterruptDisable = false
	c.SetInterrupt(true)
	c.Cycle() // fetch NOP: poll observes irqPending and latches irqLine

	// NOP's own execute cycle, the fetch that discovers irqLine and pivots
	// to the interrupt program instead of decoding the second NOP, and the
	// interrupt program's 7 steps.
	for i := 0; i < 1+1+7; i++ {
		c.Cycle()
	}

	if c.P.Address() != 0x5000 {
		t.Fatalf("p = %#04x, want 0x5000 after IRQ entry", c.P.Address())
	}
	pushedFlags := b.mem[0x01fb]
	if pushedFlags&0x10 != 0 {
		t.Fatal("IRQ entry must push flags with B clear")
	}
}

func TestGetLastInstructionPointerTracksRealFetchesOnly(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa9, 0x01) // LDA #$01

	c.Cycle()
	c.Cycle()
	if c.GetLastInstructionPointer() != 0x0200 {
		t.Fatalf("GetLastInstructionPointer() = %#04x, want 0x0200", c.GetLastInstructionPointer())
	}
}
