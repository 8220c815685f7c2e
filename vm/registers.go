package vm

// RegisterIndex names the index registers rI1..rI6 and the accumulator
// pair, for handlers that are parameterized over "which register".
type RegisterIndex int

const (
	RegA RegisterIndex = iota
	RegX
	RegI1
	RegI2
	RegI3
	RegI4
	RegI5
	RegI6
	RegJ
)

// Registers holds the full MIX register file plus the flags that live
// alongside it (overflow toggle, comparison indicator, halt latch).
type Registers struct {
	A Word // full word
	X Word // full word

	I [6]Word // rI1..rI6, half words, signed

	J Word // half word, sign pinned to SignPos

	PC int // 0..MaxAddress

	Overflow bool
	Comp     CompIndicator
	Halted   bool
}

// NewRegisters returns a register file in the +0/.../Equal/not-halted
// state described by spec.md §3.
func NewRegisters() *Registers {
	r := &Registers{
		A: NewFullWord(),
		X: NewFullWord(),
		J: NewHalfWord(),
	}
	for i := range r.I {
		r.I[i] = NewHalfWord()
	}
	r.Comp = CompEqual
	return r
}

// Reset zeroes every register and flag and clears Halted, per spec.md §3's
// reset lifecycle operation. PC is left untouched; callers that also want
// PC=0 should follow with Restart.
func (r *Registers) Reset() {
	r.A = NewFullWord()
	r.X = NewFullWord()
	for i := range r.I {
		r.I[i] = NewHalfWord()
	}
	r.J = NewHalfWord()
	r.Overflow = false
	r.Comp = CompEqual
	r.Halted = false
}

// Restart clears Halted and sets PC=0, as described by the Host API in
// spec.md §6.
func (r *Registers) Restart() {
	r.Halted = false
	r.PC = 0
}

// Index returns rIi for i in 1..6. Callers must validate the decoded I
// field first (InvalidIndex) — this does not bounds-check.
func (r *Registers) Index(i int) *Word {
	return &r.I[i-1]
}

// SetJ writes rJ's magnitude bytes, always pinning the sign to SignPos
// regardless of what the caller passed (spec.md §3: "rJ's sign is
// observably POS regardless of writes").
func (r *Registers) SetJ(w Word) {
	r.J = Word{Sign: SignPos, Magnitude: append([]byte(nil), w.Magnitude...)}
}
