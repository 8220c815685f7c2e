package vm

// execCompare executes the CMPx family (C=56..63): compare the (L:R) field
// of register x against the same field of M[M], setting Comp. Comparing a
// sign-only (0:0) field treats both sides as zero, so Comp is always
// Equal (spec.md §4.3). Under x-ieee754, F=7 on CMPA/CMPX compares rA/rX
// and the memory word as ordered binary32 values instead.
func execCompare(vm *VM, inst Instruction, m int) error {
	if inst.F == 7 && (inst.C == OpCMPA || inst.C == OpCMPX) {
		return execCompareFloat(vm, inst, m)
	}

	f, err := inst.FieldSpec()
	if err != nil {
		return err
	}

	reg, err := compareRegister(vm.Reg, inst.C)
	if err != nil {
		return err
	}

	mem, err := vm.Mem.ReadWord(m)
	if err != nil {
		return err
	}

	vm.Reg.Comp = compareFields(reg.Widened(), mem, f)
	return nil
}

// compareRegister maps a CMPx opcode to the register it compares.
func compareRegister(r *Registers, c int) (Word, error) {
	switch c {
	case OpCMPA:
		return r.A, nil
	case OpCMPX:
		return r.X, nil
	case OpCMP1, OpCMP2, OpCMP3, OpCMP4, OpCMP5, OpCMP6:
		return *r.Index(c - OpCMP1 + 1), nil
	default:
		return Word{}, &StepError{Kind: ErrInvalidInstruction, Detail: "not a CMPx opcode"}
	}
}
