package vm

// execIO implements the I/O family (C=34..38): JBUS and JRED are
// jump-capable (poll device status), IOC sends a control code, IN/OUT
// transfer BlockSize() words between memory and the device. The device
// slot is always F, per spec.md §6.
func execIO(vm *VM, inst Instruction, m, nextPC int) (bool, error) {
	dev, err := vm.Devices.Get(inst.F)
	if err != nil {
		return false, err
	}

	switch inst.C {
	case OpJBUS:
		if dev.IsBusy() {
			vm.Reg.PC = m
			return true, nil
		}
		return false, nil

	case OpJRED:
		if dev.IsReady() {
			vm.Reg.PC = m
			return true, nil
		}
		return false, nil

	case OpIOC:
		if err := dev.Control(m); err != nil {
			return false, &StepError{Kind: ErrIoError, Detail: "IOC", Cause: err}
		}
		vm.Devices.recordControl(inst.F)
		return false, nil

	case OpIN:
		size, err := SafeBlockSize(dev.BlockSize())
		if err != nil {
			return false, &StepError{Kind: ErrIoError, Detail: "IN", Cause: err}
		}
		buf := make([]Word, size)
		if err := dev.Read(buf); err != nil {
			return false, &StepError{Kind: ErrIoError, Detail: "IN", Cause: err}
		}
		for i, w := range buf {
			if err := vm.Mem.WriteWord(m+i, w); err != nil {
				return false, err
			}
		}
		vm.Devices.recordRead(inst.F)
		return false, nil

	case OpOUT:
		size, err := SafeBlockSize(dev.BlockSize())
		if err != nil {
			return false, &StepError{Kind: ErrIoError, Detail: "OUT", Cause: err}
		}
		buf := make([]Word, size)
		for i := range buf {
			w, err := vm.Mem.ReadWord(m + i)
			if err != nil {
				return false, err
			}
			buf[i] = w
		}
		if _, err := dev.Write(buf); err != nil {
			return false, &StepError{Kind: ErrIoError, Detail: "OUT", Cause: err}
		}
		vm.Devices.recordWrite(inst.F)
		return false, nil

	default:
		return false, &StepError{Kind: ErrInvalidInstruction, Detail: "not an I/O opcode"}
	}
}
