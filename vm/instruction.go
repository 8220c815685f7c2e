package vm

// Instruction is the decoded view of a full word fetched at PC: signed
// address A, index I, modifier F, opcode C.
type Instruction struct {
	Raw Word
	A   int // signed, magnitude from bytes 1..2
	I   int // byte 3
	F   int // byte 4
	C   int // byte 5
}

// DecodeInstruction splits a full word into its (A, I, F, C) components,
// per spec.md §4.2. It does not validate I or F — that happens when the
// effective address and field spec are computed, so the specific error
// kind (InvalidIndex vs InvalidField) can be reported.
func DecodeInstruction(w Word) Instruction {
	mag := int(w.Magnitude[0])*ByteRange + int(w.Magnitude[1])
	a := mag
	if w.Sign == SignNeg {
		a = -mag
	}
	return Instruction{
		Raw: w,
		A:   a,
		I:   int(w.Magnitude[2]),
		F:   int(w.Magnitude[3]),
		C:   int(w.Magnitude[4]),
	}
}

// EffectiveAddress computes M = A, or A + rIi when I selects an index
// register, per spec.md §4.2. It fails with InvalidIndex if I>6 and
// InvalidAddress if the signed sum does not fit a 12-bit address.
func (inst Instruction) EffectiveAddress(r *Registers) (int, error) {
	m := inst.A
	if inst.I != 0 {
		if inst.I < 0 || inst.I > MaxIndex {
			return 0, &StepError{Kind: ErrInvalidIndex, Detail: "index register out of range"}
		}
		m += int(r.Index(inst.I).ToInt64())
	}
	if m < -MaxEffectiveAddress || m > MaxEffectiveAddress {
		return 0, &StepError{Kind: ErrInvalidAddress, Detail: "effective address does not fit in 12 signed bits"}
	}
	return m, nil
}

// FieldSpec decodes the instruction's F byte into a FieldSpec.
func (inst Instruction) FieldSpec() (FieldSpec, error) {
	return DecodeFieldSpec(byte(inst.F))
}
