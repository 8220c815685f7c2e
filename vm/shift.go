package vm

import "math/big"

// execShift executes the Shift family (C=6), sub-dispatched by F. All
// shift amounts come from M, clamped to a nonnegative count; magnitude
// bytes that shift off the end are discarded (or wrap, for the circular
// variants), and register signs are always preserved.
func execShift(vm *VM, inst Instruction, m int) error {
	if m < 0 {
		m = 0
	}
	switch inst.F {
	case ShiftSLA:
		vm.Reg.A.Magnitude = shiftBytesZeroFill(vm.Reg.A.Magnitude, m, true)
	case ShiftSRA:
		vm.Reg.A.Magnitude = shiftBytesZeroFill(vm.Reg.A.Magnitude, m, false)
	case ShiftSLAX:
		shiftPair(vm, m, true, false)
	case ShiftSRAX:
		shiftPair(vm, m, false, false)
	case ShiftSLC:
		shiftPair(vm, m, true, true)
	case ShiftSRC:
		shiftPair(vm, m, false, true)
	case ShiftSLB:
		shiftPairBits(vm, m, true)
	case ShiftSRB:
		shiftPairBits(vm, m, false)
	default:
		return &StepError{Kind: ErrInvalidInstruction, Detail: "unknown Shift sub-opcode"}
	}
	return nil
}

// shiftBytesZeroFill returns mag shifted by n bytes (clamped to len(mag)),
// zero-filling the vacated end.
func shiftBytesZeroFill(mag []byte, n int, left bool) []byte {
	width := len(mag)
	if n > width {
		n = width
	}
	out := make([]byte, width)
	if left {
		copy(out, mag[n:])
	} else {
		copy(out[n:], mag[:width-n])
	}
	return out
}

// shiftPair implements SLAX/SRAX (circular=false) and SLC/SRC
// (circular=true): the 10 magnitude bytes of (rA,rX) are treated as one
// combined buffer, shifted or rotated by n bytes, then split back across
// the two registers. Each register keeps its own original sign.
func shiftPair(vm *VM, n int, left, circular bool) {
	combined := append(append([]byte(nil), vm.Reg.A.Magnitude...), vm.Reg.X.Magnitude...)
	width := len(combined)

	var out []byte
	if circular {
		n %= width
		if n < 0 {
			n += width
		}
		if !left {
			n = width - n
			if n == width {
				n = 0
			}
		}
		out = append(append([]byte(nil), combined[n:]...), combined[:n]...)
	} else {
		out = shiftBytesZeroFill(combined, n, left)
	}

	aSign, xSign := vm.Reg.A.Sign, vm.Reg.X.Sign
	vm.Reg.A = Word{Sign: aSign, Magnitude: append([]byte(nil), out[:FullWordBytes]...)}
	vm.Reg.X = Word{Sign: xSign, Magnitude: append([]byte(nil), out[FullWordBytes:]...)}
}

// shiftPairBits implements the x-binary SLB/SRB ops: (rA,rX) is treated as
// one 80-bit unsigned buffer, shifted by n bits with zero fill (not
// circular). Each register keeps its own original sign.
func shiftPairBits(vm *VM, n int, left bool) {
	width := 2 * FullWordBytes
	bits := uint(width * 8)

	combined := new(big.Int).SetBytes(append(append([]byte(nil), vm.Reg.A.Magnitude...), vm.Reg.X.Magnitude...))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits), big.NewInt(1))

	shifted := new(big.Int)
	if left {
		shifted.Lsh(combined, uint(n))
	} else {
		shifted.Rsh(combined, uint(n))
	}
	shifted.And(shifted, mask)

	out := make([]byte, width)
	b := shifted.Bytes()
	copy(out[width-len(b):], b)

	aSign, xSign := vm.Reg.A.Sign, vm.Reg.X.Sign
	vm.Reg.A = Word{Sign: aSign, Magnitude: append([]byte(nil), out[:FullWordBytes]...)}
	vm.Reg.X = Word{Sign: xSign, Magnitude: append([]byte(nil), out[FullWordBytes:]...)}
}
