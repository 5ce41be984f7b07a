package cpu

// The three fixed vector addresses (low byte; high byte is addr+1).
const (
	nmiVectorLow   uint16 = 0xfffa
	resetVectorLow uint16 = 0xfffc
	irqVectorLow   uint16 = 0xfffe
)

func decrementS(c *CPU) {
	c.S.Load(c.S.Value() - 1)
}

func incrementS(c *CPU) {
	c.S.Load(c.S.Value() + 1)
}

// interruptTail builds the five bus cycles shared by BRK and hardware
// interrupt entry: push PCH, push PCL, push flags, read the vector low
// byte, read the vector high byte and assign p. Each push step decrements S
// as a side effect after placing its byte on the bus.
func interruptTail(vectorLow uint16, brk bool) program {
	stackAddr := func(c *CPU) uint16 { return c.S.Address() }
	return program{
		writeThenEffect(stackAddr, func(c *CPU) uint8 { return uint8(c.P.Address() >> 8) }, decrementS),
		writeThenEffect(stackAddr, func(c *CPU) uint8 { return uint8(c.P.Address()) }, decrementS),
		writeThenEffect(stackAddr, func(c *CPU) uint8 { return c.Status.PushValue(brk) }, decrementS),
		read(func(c *CPU) uint16 { return vectorLow }, func(c *CPU, v uint8) { c.scratch.lo = v }),
		read(func(c *CPU) uint16 { return vectorLow + 1 }, func(c *CPU, v uint8) {
			c.Status.InterruptDisable = true
			c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo))
		}),
	}
}

// bootProgram is the seven-cycle power-on/reset sequence: two dummy reads
// at whatever p currently holds, three phantom stack "pushes" that only
// decrement s, then the two vector reads that finally give p its real
// value.
func bootProgram() program {
	phantomPush := read(func(c *CPU) uint16 { return c.S.Address() }, func(c *CPU, _ uint8) { decrementS(c) })
	return program{
		dummyRead(atPC),
		dummyRead(atPC),
		phantomPush,
		phantomPush,
		phantomPush,
		read(func(c *CPU) uint16 { return resetVectorLow }, func(c *CPU, v uint8) { c.scratch.lo = v }),
		read(func(c *CPU) uint16 { return resetVectorLow + 1 }, func(c *CPU, v uint8) {
			c.P.Load(uint16(v)<<8 | uint16(c.scratch.lo))
		}),
	}
}

// interruptEntryProgram is the seven-cycle hardware interrupt response: two
// internal cycles standing in for the fetch that never happens, then the
// shared interruptTail with B forced clear.
func interruptEntryProgram(vectorLow uint16, brk bool) program {
	prog := program{dummyRead(atPC), dummyRead(atPC)}
	return append(prog, interruptTail(vectorLow, brk)...)
}
