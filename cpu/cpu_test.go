package cpu

import "testing"

// access records one bus operation, in order, for tests that need to assert
// on the exact cycle-by-cycle shape of an instruction rather than just its
// final register state.
type access struct {
	write   bool
	address uint16
	value   uint8
}

// mockBus is a flat 64KB address space backing every test in this package,
// grounded on the teacher's own test doubles for hardware.CPUBus: a plain
// byte array plus a recorded access log.
type mockBus struct {
	mem [65536]uint8
	log []access
}

func newMockBus() *mockBus {
	return &mockBus{}
}

func (b *mockBus) Read(addr uint16) uint8 {
	v := b.mem[addr]
	b.log = append(b.log, access{write: false, address: addr, value: v})
	return v
}

func (b *mockBus) Write(addr uint16, v uint8) {
	b.mem[addr] = v
	b.log = append(b.log, access{write: true, address: addr, value: v})
}

func (b *mockBus) loadProgram(addr uint16, bytes ...uint8) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = v
	}
}

func (b *mockBus) setResetVector(addr uint16) {
	b.mem[0xfffc] = uint8(addr)
	b.mem[0xfffd] = uint8(addr >> 8)
}

// newTestCPU builds a CPU with no RNG (deterministic, zeroed reset) whose
// reset vector points at start, and drains the seven-cycle boot sequence so
// tests begin at the first real fetch.
func newTestCPU(b *mockBus, start uint16) *CPU {
	b.setResetVector(start)
	c := NewCPU(b, nil)
	for i := 0; i < 7; i++ {
		c.Cycle()
	}
	b.log = nil
	return c
}

// --- Concrete scenarios from the testable-properties list ---

func TestScenario1_ResetState(t *testing.T) {
	b := newMockBus()
	b.setResetVector(0x1234)
	c := NewCPU(b, nil)

	if c.A.Value() != 0 || c.X.Value() != 0 || c.Y.Value() != 0 {
		t.Fatal("expected A=X=Y=0 immediately after a zeroed reset")
	}
	if c.S.Value() != 0x00 {
		t.Fatalf("S = %#02x, want 0x00 before the boot sequence's phantom pushes", c.S.Value())
	}
	if c.Status.Value() != 0x24 {
		t.Fatalf("flags = %#02x, want 0x24 (I+E)", c.Status.Value())
	}

	for i := 0; i < 7; i++ {
		c.Cycle()
	}

	if c.S.Value() != 0xfd {
		t.Fatalf("S after boot = %#02x, want 0xfd", c.S.Value())
	}
	for _, a := range b.log {
		if a.write {
			t.Fatalf("boot sequence performed a write at %#04x, want reads only", a.address)
		}
	}
	last := b.log[len(b.log)-1]
	if last.address != 0xfffd {
		t.Fatalf("last boot cycle read %#04x, want 0xfffd", last.address)
	}
	if b.log[len(b.log)-2].address != 0xfffc {
		t.Fatalf("second-to-last boot cycle read %#04x, want 0xfffc", b.log[len(b.log)-2].address)
	}
	if c.P.Address() != 0x1234 {
		t.Fatalf("p after boot = %#04x, want 0x1234", c.P.Address())
	}
}

func TestScenario2_LDAThenADC(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa9, 0x05, 0x69, 0x03)

	c.Cycle()
	c.Cycle()
	if c.A.Value() != 0x05 || c.Status.Sign || c.Status.Zero {
		t.Fatalf("after LDA #$05: A=%#02x N=%v Z=%v", c.A.Value(), c.Status.Sign, c.Status.Zero)
	}

	c.Cycle()
	c.Cycle()
	if c.A.Value() != 0x08 {
		t.Fatalf("after ADC #$03: A=%#02x, want 0x08", c.A.Value())
	}
	if c.Status.Carry || c.Status.Overflow || c.Status.Sign || c.Status.Zero {
		t.Fatal("ADC #$03 to 0x05 should not set C, V, N or Z")
	}
}

func TestScenario3_TXSDoesNotSetNZ(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa2, 0xff, 0x9a)

	// LDX #$FF
	c.Cycle()
	c.Cycle()

	// flags that TXS of X=0xff would overwrite if it set N and Z
	c.Status.Sign = false
	c.Status.Zero = true

	// TXS
	c.Cycle()
	c.Cycle()

	if c.X.Value() != 0xff {
		t.Fatalf("X = %#02x, want 0xff", c.X.Value())
	}
	if c.S.Value() != 0xff {
		t.Fatalf("S = %#02x, want 0xff", c.S.Value())
	}
	if c.Status.Sign || !c.Status.Zero {
		t.Fatal("TXS must not touch N or Z, even though X=0xff would set N")
	}
}

func TestScenario4_DecimalADC(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xf8, 0xa9, 0x09, 0x69, 0x01)

	for i := 0; i < 2+2+2; i++ {
		c.Cycle()
	}

	if c.A.Value() != 0x10 {
		t.Fatalf("A = %#02x, want 0x10 (BCD 09+01)", c.A.Value())
	}
	if c.Status.Carry {
		t.Fatal("did not expect a decimal carry out of 09+01")
	}
}

func TestScenario5_IndirectJMPPageWrap(t *testing.T) {
	// The instruction itself lives away from the pointer's own page so its
	// opcode bytes don't collide with the wrapped read address ($1000).
	b := newMockBus()
	c := newTestCPU(b, 0x2000)
	b.loadProgram(0x2000, 0x6c, 0xff, 0x10) // JMP ($10FF)
	b.mem[0x10ff] = 0x34
	b.mem[0x1000] = 0x12 // high byte read wraps to $1000, not $1100

	for i := 0; i < 5; i++ {
		c.Cycle()
	}

	if c.P.Address() != 0x1234 {
		t.Fatalf("p = %#04x, want 0x1234 (page-wrap bug)", c.P.Address())
	}
}

func TestScenario6_NMIDuringTwoCycleNOP(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xea, 0xea) // NOP, NOP
	b.mem[0xfffa] = 0x00
	b.mem[0xfffb] = 0x30 // NMI vector -> $3000

	// A 2-cycle instruction's poll happens on its own fetch cycle (the
	// penultimate of its 2 total cycles), so the request must be latched
	// before that fetch to be honored at this instruction boundary.
	c.NMI()
	c.Cycle() // fetch NOP: poll observes the pending NMI and latches nmiLine
	c.Cycle() // NOP's second (implied) cycle; nmiLine is already decided

	pBefore := c.P.Address()
	c.Cycle() // fetch: nmiLine is set, so this does not decode the second NOP
	if c.P.Address() != pBefore {
		t.Fatalf("p advanced from %#04x to %#04x on the NMI-hijacked fetch", pBefore, c.P.Address())
	}

	// the triggering fetch above only pivoted c.prog to the NMI program; none
	// of its 7 steps (2 dummy reads + interruptTail's 5) have run yet.
	for i := 0; i < 7; i++ {
		c.Cycle()
	}

	if c.P.Address() != 0x3000 {
		t.Fatalf("p = %#04x, want 0x3000 after NMI vector entry", c.P.Address())
	}
	if !c.Status.InterruptDisable {
		t.Fatal("NMI entry should set I")
	}
	if c.Status.Break {
		t.Fatal("hardware NMI entry should push and leave B clear")
	}
}

// --- Round-trip properties ---

func TestRoundTrip_PHA_PLA(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa9, 0x7f, 0x48, 0xa9, 0x00, 0x68)

	for i := 0; i < 2+3+2; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x00 {
		t.Fatalf("A = %#02x after LDA #$00, want 0x00", c.A.Value())
	}

	for i := 0; i < 4; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x7f {
		t.Fatalf("A = %#02x after PLA, want 0x7f restored", c.A.Value())
	}
	if c.Status.Zero || c.Status.Sign {
		t.Fatal("PLA of 0x7f should clear both Z and N")
	}
}

func TestRoundTrip_PHP_PLP(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0x08, 0x28)

	c.Status.Carry = true
	c.Status.Sign = true

	for i := 0; i < 3; i++ {
		c.Cycle()
	}
	pushed := b.mem[0x01fd]
	if pushed&0x20 == 0 {
		t.Fatal("PHP should push with E set")
	}
	if pushed&0x10 == 0 {
		t.Fatal("PHP should push with B set")
	}

	c.Status.Carry = false
	c.Status.Sign = false

	for i := 0; i < 4; i++ {
		c.Cycle()
	}
	if !c.Status.Carry || !c.Status.Sign {
		t.Fatal("PLP should restore the pushed C and N")
	}
	if c.Status.Break {
		t.Fatal("PLP must force B clear regardless of the pushed value")
	}
}

func TestRoundTrip_JSR_RTS(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0x20, 0x00, 0x03) // JSR $0300
	b.loadProgram(0x0300, 0x60)             // RTS

	for i := 0; i < 6; i++ {
		c.Cycle()
	}
	if c.P.Address() != 0x0300 {
		t.Fatalf("p = %#04x after JSR, want 0x0300", c.P.Address())
	}

	for i := 0; i < 6; i++ {
		c.Cycle()
	}
	if c.P.Address() != 0x0203 {
		t.Fatalf("p = %#04x after RTS, want 0x0203 (the byte after JSR)", c.P.Address())
	}
}

// --- Boundary / cycle-count properties ---

func TestIndexedReadDummyReadOnlyOnCrossing(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	// LDA $20FF,X with X=1 crosses into $2100: costs 5 cycles.
	b.loadProgram(0x0200, 0xbd, 0xff, 0x20)
	b.mem[0x2100] = 0x42
	c.X.Load(0x01)

	for i := 0; i < 5; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A.Value())
	}

	b2 := newMockBus()
	c2 := newTestCPU(b2, 0x0200)
	// LDA $2000,X with X=1 does not cross: costs 4 cycles.
	b2.loadProgram(0x0200, 0xbd, 0x00, 0x20)
	b2.mem[0x2001] = 0x99
	c2.X.Load(0x01)

	for i := 0; i < 4; i++ {
		c2.Cycle()
	}
	if c2.A.Value() != 0x99 {
		t.Fatalf("A = %#02x, want 0x99", c2.A.Value())
	}
}

func TestIndexedStoreAlwaysPaysDummyRead(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	// STA $2000,X with X=1 never crosses a page but still costs 5 cycles.
	b.loadProgram(0x0200, 0x9d, 0x00, 0x20)
	c.X.Load(0x01)
	c.A.Load(0x55)

	for i := 0; i < 5; i++ {
		c.Cycle()
	}
	if b.mem[0x2001] != 0x55 {
		t.Fatalf("mem[0x2001] = %#02x, want 0x55", b.mem[0x2001])
	}
}

func TestBranchCycleCounts(t *testing.T) {
	// not taken: 2 cycles, p advances past the operand only.
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xd0, 0x05) // BNE +5, Z set so not taken
	c.Status.Zero = true
	c.Cycle()
	c.Cycle()
	if c.P.Address() != 0x0202 {
		t.Fatalf("p = %#04x, want 0x0202 (not taken)", c.P.Address())
	}

	// taken, same page: 3 cycles.
	b2 := newMockBus()
	c2 := newTestCPU(b2, 0x0200)
	b2.loadProgram(0x0200, 0xd0, 0x05) // BNE +5, Z clear so taken
	c2.Status.Zero = false
	c2.Cycle()
	c2.Cycle()
	c2.Cycle()
	if c2.P.Address() != 0x0207 {
		t.Fatalf("p = %#04x, want 0x0207 (taken, same page)", c2.P.Address())
	}

	// taken, page-crossed: 4 cycles.
	b3 := newMockBus()
	c3 := newTestCPU(b3, 0x02fc)
	b3.loadProgram(0x02fc, 0xd0, 0x05) // BNE +5 from $02fc lands on $0303
	c3.Status.Zero = false
	c3.Cycle()
	c3.Cycle()
	c3.Cycle()
	c3.Cycle()
	if c3.P.Address() != 0x0303 {
		t.Fatalf("p = %#04x, want 0x0303 (taken, page-crossed)", c3.P.Address())
	}
}

func TestRMWWritesOriginalThenModified(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xe6, 0x10) // INC $10
	b.mem[0x0010] = 0x7f

	for i := 0; i < 5; i++ {
		c.Cycle()
	}

	var writes []access
	for _, a := range b.log {
		if a.write && a.address == 0x0010 {
			writes = append(writes, a)
		}
	}
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes to $0010 (original then modified), got %d", len(writes))
	}
	if writes[0].value != 0x7f {
		t.Fatalf("first RMW write = %#02x, want the original 0x7f", writes[0].value)
	}
	if writes[1].value != 0x80 {
		t.Fatalf("second RMW write = %#02x, want the incremented 0x80", writes[1].value)
	}
	if b.mem[0x0010] != 0x80 {
		t.Fatalf("final memory value = %#02x, want 0x80", b.mem[0x0010])
	}
}

func TestInvalidOpcodeDoesNotAdvancePC(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.mem[0x0200] = 0x02 // KIL, but exercise invalid-path logic via a genuinely undefined opcode instead

	// 0x02 is KIL in this table; pick a real gap for "invalid opcode".
	b.mem[0x0200] = 0x93 // absent from Table (unstable SHA variant we deliberately did not implement)

	var invoked int
	c.SetInvalidInstructionCallback(func(opcode uint8) { invoked++ })

	pBefore := c.P.Address()
	c.Cycle()
	if c.P.Address() != pBefore {
		t.Fatal("p must not advance past an invalid opcode")
	}
	if invoked != 1 {
		t.Fatalf("invalid instruction callback invoked %d times, want 1", invoked)
	}

	c.Cycle()
	if invoked != 2 {
		t.Fatal("repeated cycle() calls should keep re-reading the same bad opcode")
	}
}

func TestKILHalts(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0x02) // KIL

	c.Cycle()
	if !c.IsHalt() {
		t.Fatal("executing KIL should halt the CPU")
	}

	before := len(b.log)
	c.Cycle()
	if len(b.log) != before {
		t.Fatal("Cycle() while halted on a read should perform no bus access")
	}
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xea, 0xea)
	c.Status.InterruptDisable = true
	c.SetInterrupt(true)

	for i := 0; i < 4; i++ {
		c.Cycle()
	}
	if c.P.Address() == 0 {
		t.Fatal("sanity: p should have advanced past the NOPs")
	}
	if c.irqLine {
		t.Fatal("IRQ line should never latch while I is set")
	}
}

func TestUndocumentedLAX(t *testing.T) {
	b := newMockBus()
	c := newTestCPU(b, 0x0200)
	b.loadProgram(0x0200, 0xa7, 0x10) // LAX $10
	b.mem[0x0010] = 0x88

	for i := 0; i < 3; i++ {
		c.Cycle()
	}
	if c.A.Value() != 0x88 || c.X.Value() != 0x88 {
		t.Fatalf("LAX should load both A and X: A=%#02x X=%#02x", c.A.Value(), c.X.Value())
	}
	if !c.Status.Sign {
		t.Fatal("LAX $10 loading 0x88 should set N")
	}
}
