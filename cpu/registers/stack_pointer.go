package registers

// StackPointer is the 6507 stack pointer. Its value is an 8-bit page-zero
// offset but the stack always lives in page one, so Address() folds in the
// 0x0100 base.
type StackPointer struct {
	Register
}

// NewStackPointer creates a stack pointer with an initial value.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the current stack address (0x0100 | value).
func (s StackPointer) Address() uint16 {
	return 0x0100 | uint16(s.Value())
}
