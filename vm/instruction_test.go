package vm

import "testing"

func TestDecodeInstruction(t *testing.T) {
	w := Word{Sign: SignNeg, Magnitude: []byte{0, 200, 2, 3, OpLDA}}
	inst := DecodeInstruction(w)

	if inst.A != -200 {
		t.Errorf("A = %d, want -200", inst.A)
	}
	if inst.I != 2 {
		t.Errorf("I = %d, want 2", inst.I)
	}
	if inst.F != 3 {
		t.Errorf("F = %d, want 3", inst.F)
	}
	if inst.C != OpLDA {
		t.Errorf("C = %d, want %d", inst.C, OpLDA)
	}
}

func TestEffectiveAddressPlainA(t *testing.T) {
	w := Word{Sign: SignPos, Magnitude: []byte{0, 100, 0, 5, OpLDA}}
	inst := DecodeInstruction(w)
	r := NewRegisters()

	m, err := inst.EffectiveAddress(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 100 {
		t.Errorf("M = %d, want 100", m)
	}
}

func TestEffectiveAddressIndexed(t *testing.T) {
	w := Word{Sign: SignPos, Magnitude: []byte{0, 100, 2, 5, OpLDA}}
	inst := DecodeInstruction(w)
	r := NewRegisters()
	_ = r.Index(2).SetFromInt64(50)

	m, err := inst.EffectiveAddress(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 150 {
		t.Errorf("M = %d, want 150", m)
	}
}

func TestEffectiveAddressInvalidIndex(t *testing.T) {
	w := Word{Sign: SignPos, Magnitude: []byte{0, 100, 7, 5, OpLDA}}
	inst := DecodeInstruction(w)
	r := NewRegisters()

	_, err := inst.EffectiveAddress(r)
	se, ok := err.(*StepError)
	if !ok || se.Kind != ErrInvalidIndex {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestEffectiveAddressOutOfRange(t *testing.T) {
	w := Word{Sign: SignPos, Magnitude: []byte{16, 0, 0, 5, OpLDA}}
	inst := DecodeInstruction(w)
	r := NewRegisters()

	_, err := inst.EffectiveAddress(r)
	se, ok := err.(*StepError)
	if !ok || se.Kind != ErrInvalidAddress {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}
