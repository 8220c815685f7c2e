package vm

// execModify implements the Modify family (C=48..55): INCx/DECx add or
// subtract M from the selected register with arithmetic-style overflow
// accounting; ENTx/ENNx replace it outright with M or -M.
func execModify(vm *VM, inst Instruction, m int) error {
	width, get, set, err := modifyTarget(vm.Reg, inst.C)
	if err != nil {
		return err
	}

	switch inst.F {
	case ModINC:
		return execIncDec(get, set, width, vm, int64(m))
	case ModDEC:
		return execIncDec(get, set, width, vm, -int64(m))
	case ModENT:
		return execEnt(set, width, m, false)
	case ModENN:
		return execEnt(set, width, m, true)
	default:
		return &StepError{Kind: ErrInvalidInstruction, Detail: "unknown Modify sub-opcode"}
	}
}

// modifyTarget returns the register width, getter and setter for a given
// Modify-family opcode.
func modifyTarget(r *Registers, c int) (int, func() Word, func(Word), error) {
	switch {
	case c == OpModA:
		return FullWordBytes, func() Word { return r.A }, func(w Word) { r.A = w }, nil
	case c == OpModX:
		return FullWordBytes, func() Word { return r.X }, func(w Word) { r.X = w }, nil
	case c >= OpMod1 && c <= OpMod6:
		idx := c - OpMod1 + 1
		return HalfWordBytes, func() Word { return *r.Index(idx) }, func(w Word) { *r.Index(idx) = w }, nil
	default:
		return 0, nil, nil, &StepError{Kind: ErrInvalidInstruction, Detail: "not a Modify opcode"}
	}
}

// execIncDec adds delta to the register's current value, truncating into
// width bytes and setting Overflow on capacity loss, exactly like ADD/SUB.
func execIncDec(get func() Word, set func(Word), width int, vm *VM, delta int64) error {
	sum := get().ToInt64() + delta

	mag := sum
	if mag < 0 {
		mag = -mag
	}
	cap := maxMagnitude(width)
	if mag > cap {
		vm.Reg.Overflow = true
		mag %= cap + 1
	}

	sign := SignPos
	if sum < 0 {
		sign = SignNeg
	}
	w := zeroWord(width)
	fillMagnitude(&w, mag)
	w.Sign = sign
	if mag == 0 {
		w.Sign = SignPos
	}
	set(w)
	return nil
}

// execEnt implements ENTx/ENNx: the register becomes m (or -m when negate
// is true). Unlike INCx/DECx, a zero result keeps the sign it was given —
// ENNx of 0 deliberately yields negative zero, the idiom MIXAL programs
// use to set a register's sign without touching its magnitude.
func execEnt(set func(Word), width, m int, negate bool) error {
	mag := int64(m)
	sign := SignPos
	if mag < 0 {
		mag = -mag
		sign = SignNeg
	}
	if negate {
		sign = sign.Negate()
	}
	if mag > maxMagnitude(width) {
		return &StepError{Kind: ErrInvalidMemRange, Detail: "address does not fit target register width"}
	}
	w := zeroWord(width)
	fillMagnitude(&w, mag)
	w.Sign = sign
	set(w)
	return nil
}

func zeroWord(width int) Word {
	return Word{Sign: SignPos, Magnitude: make([]byte, width)}
}

func fillMagnitude(w *Word, mag int64) {
	for i := len(w.Magnitude) - 1; i >= 0; i-- {
		w.Magnitude[i] = byte(mag % ByteRange)
		mag /= ByteRange
	}
}
