package vm

import "math/big"

// fullWordBase is 256^FullWordBytes, the modulus a full word's magnitude
// wraps around on overflow.
var fullWordBase = new(big.Int).Exp(big.NewInt(ByteRange), big.NewInt(FullWordBytes), nil)

// execArithmetic executes ADD/SUB/MUL/DIV (C=1..4). The operand V is the
// (L:R) field of memory[M]. Under x-ieee754, F=7 repurposes the field-spec
// byte as a flavor selector: the operands become rA and the whole memory
// word read as binary32 instead of an integer field (spec.md §6).
func execArithmetic(vm *VM, inst Instruction, m int) error {
	if inst.F == 7 {
		return execArithmeticFloat(vm, inst, m)
	}

	f, err := inst.FieldSpec()
	if err != nil {
		return err
	}

	mem, err := vm.Mem.ReadWord(m)
	if err != nil {
		return err
	}
	v := mem.ReadField(f)

	switch inst.C {
	case OpADD:
		return execAddSub(vm, v, false)
	case OpSUB:
		return execAddSub(vm, v, true)
	case OpMUL:
		return execMul(vm, v)
	case OpDIV:
		return execDiv(vm, v)
	default:
		return &StepError{Kind: ErrInvalidInstruction, Detail: "not an arithmetic opcode"}
	}
}

// execAddSub implements ADD and SUB. On magnitude overflow the toggle is
// set and rA retains the low-order FullWordBytes bytes of the true result,
// per TAOCP's defined overflow behavior.
func execAddSub(vm *VM, v Word, subtract bool) error {
	delta := v.ToInt64()
	if subtract {
		delta = -delta
	}
	sum := vm.Reg.A.ToInt64() + delta

	mag := sum
	if mag < 0 {
		mag = -mag
	}
	cap := maxMagnitude(FullWordBytes)
	if mag > cap {
		vm.Reg.Overflow = true
		mag %= cap + 1
	}

	signed := mag
	if sum < 0 {
		signed = -mag
	}
	w, err := WordFromInt64(signed)
	if err != nil {
		return err
	}
	if mag == 0 {
		w.Sign = SignPos
	}
	vm.Reg.A = w
	return nil
}

// execMul implements MUL: the true product of rA and V (up to 2*FullWordBytes
// bytes of magnitude) is split into (rA,rX), rA holding the high-order
// FullWordBytes bytes and rX the low-order FullWordBytes bytes. MUL never
// overflows: a 10-byte result always holds the product of two 5-byte
// operands.
func execMul(vm *VM, v Word) error {
	a := big.NewInt(vm.Reg.A.ToInt64())
	b := big.NewInt(v.ToInt64())
	prod := new(big.Int).Mul(a, b)

	sign := SignPos
	if prod.Sign() < 0 {
		sign = SignNeg
	}
	mag := new(big.Int).Abs(prod)

	high := new(big.Int)
	low := new(big.Int)
	high.DivMod(mag, fullWordBase, low)

	vm.Reg.A = wordFromMagnitude(sign, high, FullWordBytes)
	vm.Reg.X = wordFromMagnitude(sign, low, FullWordBytes)
	return nil
}

// execDiv implements DIV: the 10-byte magnitude held across (rA,rX) is
// divided by V. Division by zero or a quotient too large for five bytes
// sets Overflow and zeroes rA and rX; this is reported as a successful Step
// with Overflow set, not as an error, per the frozen domain-error behavior.
func execDiv(vm *VM, v Word) error {
	dividendMag := new(big.Int).SetBytes(append(append([]byte(nil), vm.Reg.A.Magnitude...), vm.Reg.X.Magnitude...))
	divisorMag := new(big.Int).SetInt64(v.ToInt64())
	if divisorMag.Sign() < 0 {
		divisorMag.Neg(divisorMag)
	}

	if divisorMag.Sign() == 0 {
		vm.Reg.Overflow = true
		vm.Reg.A = NewFullWord()
		vm.Reg.X = NewFullWord()
		return nil
	}

	quotient := new(big.Int)
	remainder := new(big.Int)
	quotient.DivMod(dividendMag, divisorMag, remainder)

	if quotient.Cmp(big.NewInt(maxMagnitude(FullWordBytes))) > 0 {
		vm.Reg.Overflow = true
		vm.Reg.A = NewFullWord()
		vm.Reg.X = NewFullWord()
		return nil
	}

	qSign := SignPos
	if vm.Reg.A.Sign != v.Sign {
		qSign = SignNeg
	}
	rSign := vm.Reg.A.Sign

	vm.Reg.A = wordFromMagnitude(qSign, quotient, FullWordBytes)
	vm.Reg.X = wordFromMagnitude(rSign, remainder, FullWordBytes)
	return nil
}

// wordFromMagnitude builds a width-byte word from a nonnegative big.Int
// magnitude, zero-padded on the left. Sign is forced to SignPos when the
// magnitude is zero, matching MIX's "zero has no sign" convention.
func wordFromMagnitude(sign Sign, mag *big.Int, width int) Word {
	out := Word{Sign: sign, Magnitude: make([]byte, width)}
	if mag.Sign() == 0 {
		out.Sign = SignPos
		return out
	}
	b := mag.Bytes()
	copy(out.Magnitude[width-len(b):], b)
	return out
}
