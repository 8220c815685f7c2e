package vm

// execLoad implements LDx/LDxN (C=8..23): V, the (L:R) field of
// memory[M], is loaded into the selected register, negated first for the
// LDxN variants. Loading into a half-register (rI1..rI6) fails with
// InvalidMemRange if V's magnitude does not fit two bytes.
func execLoad(vm *VM, inst Instruction, m int) error {
	f, err := inst.FieldSpec()
	if err != nil {
		return err
	}
	mem, err := vm.Mem.ReadWord(m)
	if err != nil {
		return err
	}
	v := mem.ReadField(f)

	if loadNegates(inst.C) {
		v.Sign = v.Sign.Negate()
		if v.IsZero() {
			v.Sign = SignPos
		}
	}

	width, set, err := loadTarget(vm.Reg, inst.C)
	if err != nil {
		return err
	}
	fitted, err := fitWord(v, width)
	if err != nil {
		return err
	}
	set(fitted)
	return nil
}

func loadNegates(c int) bool {
	return c >= OpLDAN && c <= OpLDXN
}

// loadTarget returns the register width and setter for a given LDx/LDxN
// opcode.
func loadTarget(r *Registers, c int) (int, func(Word), error) {
	switch {
	case c == OpLDA || c == OpLDAN:
		return FullWordBytes, func(w Word) { r.A = w }, nil
	case c == OpLDX || c == OpLDXN:
		return FullWordBytes, func(w Word) { r.X = w }, nil
	case c >= OpLD1 && c <= OpLD6:
		idx := c - OpLD1 + 1
		return HalfWordBytes, func(w Word) { *r.Index(idx) = w }, nil
	case c >= OpLD1N && c <= OpLD6N:
		idx := c - OpLD1N + 1
		return HalfWordBytes, func(w Word) { *r.Index(idx) = w }, nil
	default:
		return 0, nil, &StepError{Kind: ErrInvalidInstruction, Detail: "not an LDx/LDxN opcode"}
	}
}

// fitWord reshapes v to exactly width magnitude bytes: zero-extended on
// the left if v is narrower, or validated-and-truncated if wider (any
// nonzero byte beyond width is an InvalidMemRange, since it would be lost).
func fitWord(v Word, width int) (Word, error) {
	if v.Width() == width {
		return v.Clone(), nil
	}
	if v.Width() < width {
		out := Word{Sign: v.Sign, Magnitude: make([]byte, width)}
		copy(out.Magnitude[width-v.Width():], v.Magnitude)
		return out, nil
	}
	excess := v.Width() - width
	for i := 0; i < excess; i++ {
		if v.Magnitude[i] != 0 {
			return Word{}, &StepError{Kind: ErrInvalidMemRange, Detail: "value does not fit target register width"}
		}
	}
	return Word{Sign: v.Sign, Magnitude: append([]byte(nil), v.Magnitude[excess:]...)}, nil
}

// execStore implements STx/STZ/STJ (C=24..33): the selected register (or
// zero, for STZ) is written into the (L:R) field of memory[M]. Word.WriteField
// already zero-extends a narrower source on the left, so half-registers
// (rI1..rI6, rJ) need no special-casing here.
func execStore(vm *VM, inst Instruction, m int) error {
	f, err := inst.FieldSpec()
	if err != nil {
		return err
	}

	var src Word
	switch {
	case inst.C == OpSTZ:
		src = NewFullWord()
	case inst.C == OpSTJ:
		src = vm.Reg.J
	case inst.C == OpSTA:
		src = vm.Reg.A
	case inst.C == OpSTX:
		src = vm.Reg.X
	case inst.C >= OpST1 && inst.C <= OpST6:
		src = *vm.Reg.Index(inst.C - OpST1 + 1)
	default:
		return &StepError{Kind: ErrInvalidInstruction, Detail: "not a STx/STZ/STJ opcode"}
	}

	return vm.Mem.WriteField(m, f, src)
}
