package vm

// execMove implements MOVE (C=7): F words are copied from memory[M] to the
// address held in rI1, in ascending order, after which rI1 is incremented
// by F. Overlapping ranges resolve the same way a forward copy would
// (TAOCP's documented behavior), since each destination write happens
// strictly after the corresponding source read.
func execMove(vm *VM, inst Instruction, m int) error {
	count := inst.F
	dest := int(vm.Reg.Index(1).ToInt64())

	for i := 0; i < count; i++ {
		w, err := vm.Mem.ReadWord(m + i)
		if err != nil {
			return err
		}
		if err := vm.Mem.WriteWord(dest+i, w); err != nil {
			return err
		}
	}

	next := vm.Reg.Index(1).ToInt64() + int64(count)
	updated := NewHalfWord()
	if err := updated.SetFromInt64(next); err != nil {
		return err
	}
	*vm.Reg.Index(1) = updated
	return nil
}
