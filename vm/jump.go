package vm

// execJump implements the JMP family (C=39, sub-dispatched by F): plain
// JMP and the conditional overflow/comparison jumps update rJ to the
// "return address" nextPC when taken; JSJ jumps without touching rJ.
func execJump(vm *VM, inst Instruction, m, nextPC int) (bool, error) {
	switch inst.F {
	case JmpJMP:
		return doJump(vm, m, nextPC, true), nil
	case JmpJSJ:
		vm.Reg.PC = m
		return true, nil
	case JmpJOV:
		taken := vm.Reg.Overflow
		vm.Reg.Overflow = false
		return condJump(vm, m, nextPC, taken), nil
	case JmpJNOV:
		taken := !vm.Reg.Overflow
		vm.Reg.Overflow = false
		return condJump(vm, m, nextPC, taken), nil
	case JmpJL:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompLess), nil
	case JmpJE:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompEqual), nil
	case JmpJG:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompGreater), nil
	case JmpJGE:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompGreater || vm.Reg.Comp == CompEqual), nil
	case JmpJNE:
		return condJump(vm, m, nextPC, vm.Reg.Comp != CompEqual), nil
	case JmpJLE:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompLess || vm.Reg.Comp == CompEqual), nil
	case JmpJORD:
		return condJump(vm, m, nextPC, vm.Reg.Comp != CompUnordered), nil
	case JmpJUNORD:
		return condJump(vm, m, nextPC, vm.Reg.Comp == CompUnordered), nil
	default:
		return false, &StepError{Kind: ErrInvalidInstruction, Detail: "unknown JMP sub-opcode"}
	}
}

// execConditionalJump implements Jx (C=40..47, sub-dispatched by F):
// conditional jumps on the sign/zero-ness of the selected register. With
// x-binary, F=6/7 (JxE/JxO) test the register's low-order bit instead.
func execConditionalJump(vm *VM, inst Instruction, m, nextPC int) (bool, error) {
	reg, err := jumpRegister(vm.Reg, inst.C)
	if err != nil {
		return false, err
	}
	value := reg.ToInt64()

	var taken bool
	switch inst.F {
	case JxN:
		taken = value < 0
	case JxZ:
		taken = value == 0
	case JxP:
		taken = value > 0
	case JxNN:
		taken = value >= 0
	case JxNZ:
		taken = value != 0
	case JxNP:
		taken = value <= 0
	case JxE:
		taken = reg.Magnitude[len(reg.Magnitude)-1]&1 == 0
	case JxO:
		taken = reg.Magnitude[len(reg.Magnitude)-1]&1 == 1
	default:
		return false, &StepError{Kind: ErrInvalidInstruction, Detail: "unknown Jx sub-opcode"}
	}
	return condJump(vm, m, nextPC, taken), nil
}

func jumpRegister(r *Registers, c int) (Word, error) {
	switch {
	case c == OpJA:
		return r.A, nil
	case c == OpJX:
		return r.X, nil
	case c >= OpJ1 && c <= OpJ6:
		return *r.Index(c - OpJ1 + 1), nil
	default:
		return Word{}, &StepError{Kind: ErrInvalidInstruction, Detail: "not a Jx opcode"}
	}
}

// condJump jumps (updating rJ) only when cond holds.
func condJump(vm *VM, m, nextPC int, cond bool) bool {
	if !cond {
		return false
	}
	return doJump(vm, m, nextPC, true)
}

// doJump sets PC to m and, if updateJ, sets rJ to nextPC.
func doJump(vm *VM, m, nextPC int, updateJ bool) bool {
	vm.Reg.PC = m
	if updateJ {
		j := NewHalfWord()
		_ = j.SetFromInt64(int64(nextPC))
		vm.Reg.SetJ(j)
	}
	return true
}
