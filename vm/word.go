package vm

import "fmt"

// Word is a sign-magnitude container of up to FullWordBytes magnitude bytes.
// Byte 0 conceptually holds the sign; here it is split out as Sign so that
// half-word values (2 magnitude bytes) and full-word values (5 magnitude
// bytes) share a single representation. Magnitude[0] is the most
// significant byte.
type Word struct {
	Sign      Sign
	Magnitude []byte // len == width, MSB first
}

// NewFullWord returns a zeroed 5-byte word (+0).
func NewFullWord() Word {
	return Word{Sign: SignPos, Magnitude: make([]byte, FullWordBytes)}
}

// NewHalfWord returns a zeroed 2-byte word (+0).
func NewHalfWord() Word {
	return Word{Sign: SignPos, Magnitude: make([]byte, HalfWordBytes)}
}

// Width returns the number of magnitude bytes.
func (w Word) Width() int {
	return len(w.Magnitude)
}

// Bytes returns the full on-the-wire representation: sign cell (0 or 1)
// followed by the magnitude bytes, MSB first.
func (w Word) Bytes() []byte {
	out := make([]byte, w.Width()+1)
	out[0] = byte(w.Sign)
	copy(out[1:], w.Magnitude)
	return out
}

// WordFromBytes decodes a sign cell plus magnitude bytes into a Word. The
// sign cell must be exactly 0 (SignPos) or 1 (SignNeg); any other value is
// undefined input per spec.md §3 and is normalized to SignPos here so that
// construction never panics.
func WordFromBytes(b []byte) Word {
	if len(b) == 0 {
		return NewFullWord()
	}
	sign := SignPos
	if Sign(b[0]) == SignNeg {
		sign = SignNeg
	}
	mag := make([]byte, len(b)-1)
	copy(mag, b[1:])
	return Word{Sign: sign, Magnitude: mag}
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	mag := make([]byte, len(w.Magnitude))
	copy(mag, w.Magnitude)
	return Word{Sign: w.Sign, Magnitude: mag}
}

// Equal reports whether two words have identical sign and magnitude.
func (w Word) Equal(o Word) bool {
	if w.Sign != o.Sign || len(w.Magnitude) != len(o.Magnitude) {
		return false
	}
	for i := range w.Magnitude {
		if w.Magnitude[i] != o.Magnitude[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every magnitude byte is zero (sign is ignored:
// MIX treats -0 and +0 as numerically identical, see spec.md §9).
func (w Word) IsZero() bool {
	for _, b := range w.Magnitude {
		if b != 0 {
			return false
		}
	}
	return true
}

// ToInt64 converts a sign-magnitude word to a signed two's-complement
// value. Magnitude bytes are big-endian, base ByteRange.
func (w Word) ToInt64() int64 {
	var mag int64
	for _, b := range w.Magnitude {
		mag = mag*ByteRange + int64(b)
	}
	if w.Sign == SignNeg {
		return -mag
	}
	return mag
}

// maxMagnitude is the largest magnitude representable in n bytes: ByteRange^n - 1.
func maxMagnitude(n int) int64 {
	m := int64(1)
	for i := 0; i < n; i++ {
		m *= ByteRange
	}
	return m - 1
}

// SetFromInt64 fills w's magnitude bytes (preserving w's width) from a
// signed integer. It fails with InvalidMemRange if k's magnitude does not
// fit in w's width.
func (w *Word) SetFromInt64(k int64) error {
	mag := k
	sign := SignPos
	if mag < 0 {
		mag = -mag
		sign = SignNeg
	}
	if mag > maxMagnitude(w.Width()) {
		return &StepError{Kind: ErrInvalidMemRange, Detail: fmt.Sprintf("value %d does not fit in %d bytes", k, w.Width())}
	}
	for i := w.Width() - 1; i >= 0; i-- {
		w.Magnitude[i] = byte(mag % ByteRange)
		mag /= ByteRange
	}
	w.Sign = sign
	if k == 0 {
		w.Sign = SignPos
	}
	return nil
}

// WordFromInt64 builds a full word from a signed integer. It fails with
// InvalidMemRange if k's magnitude exceeds FullWordBytes capacity (see
// SetFromInt64); no clamping is done.
func WordFromInt64(k int64) (Word, error) {
	w := NewFullWord()
	err := w.SetFromInt64(k)
	return w, err
}

// FieldSpec is a packed (L:R) byte-field selector, 0<=L<=R<=5.
type FieldSpec struct {
	L, R int
}

// DecodeFieldSpec decodes a packed f = 8*L+R byte into a FieldSpec. Returns
// InvalidField if L>R or R>FullWordBytes.
func DecodeFieldSpec(f byte) (FieldSpec, error) {
	l := int(f) / 8
	r := int(f) % 8
	if l > r || r > FullWordBytes {
		return FieldSpec{}, &StepError{Kind: ErrInvalidField, Detail: fmt.Sprintf("field spec %d decodes to (%d:%d)", f, l, r)}
	}
	return FieldSpec{L: l, R: r}, nil
}

// Pack encodes a FieldSpec back into its 8*L+R byte form.
func (f FieldSpec) Pack() byte {
	return byte(8*f.L + f.R)
}

// ReadField extracts the (L:R) field of a full/half word as its own Word.
// The result's sign is POS unless L==0, in which case w's sign cell is
// copied. (L:R) is inclusive of both ends in 1-based TAOCP byte numbering
// (byte 0 is the sign), so the result width is R when L==0 (byte 0 is the
// sign, not a magnitude byte) and R-L+1 when L>=1.
func (w Word) ReadField(f FieldSpec) Word {
	width := f.R
	if f.L > 0 {
		width = f.R - f.L + 1
	}
	out := Word{Sign: SignPos, Magnitude: make([]byte, width)}
	if f.L == 0 {
		out.Sign = w.Sign
	}
	start := f.L
	if start < 1 {
		start = 1
	}
	for i, srcIdx := 0, start; srcIdx <= f.R; i, srcIdx = i+1, srcIdx+1 {
		if srcIdx-1 < len(w.Magnitude) {
			out.Magnitude[i] = w.Magnitude[srcIdx-1]
		}
	}
	return out
}

// WriteField copies src's low-order (right-most) bytes into w's (L:R)
// field. When L==0, src's sign overwrites w's sign; otherwise w's sign is
// untouched. If src is narrower than the field, src is conceptually
// zero-extended on the left; if wider, only its right-most bytes are used.
// See ReadField for the inclusive-range width rule.
func (w *Word) WriteField(f FieldSpec, src Word) {
	width := f.R
	if f.L > 0 {
		width = f.R - f.L + 1
	}
	if width <= 0 {
		if f.L == 0 {
			w.Sign = src.Sign
		}
		return
	}
	// Right-most `width` bytes of src's magnitude, zero-padded on the left.
	srcBytes := make([]byte, width)
	skip := len(src.Magnitude) - width
	for i := 0; i < width; i++ {
		si := skip + i
		if si >= 0 && si < len(src.Magnitude) {
			srcBytes[i] = src.Magnitude[si]
		}
	}
	start := f.L
	if start < 1 {
		start = 1
	}
	for i, dstIdx := 0, start; dstIdx <= f.R; i, dstIdx = i+1, dstIdx+1 {
		if dstIdx-1 < len(w.Magnitude) {
			w.Magnitude[dstIdx-1] = srcBytes[i]
		}
	}
	if f.L == 0 {
		w.Sign = src.Sign
	}
}

// FullFieldSpec is the (0:5) field selecting an entire full word.
var FullFieldSpec = FieldSpec{L: 0, R: FullWordBytes}

// Widened returns w reinterpreted as a full word: its magnitude bytes are
// right-aligned into FullWordBytes positions with leading zero bytes, sign
// unchanged. Used by CMPx on index registers, which TAOCP defines as
// comparing the half word as though it occupied the low-order bytes of a
// full word (bytes 1..3 implicitly zero).
func (w Word) Widened() Word {
	if w.Width() == FullWordBytes {
		return w.Clone()
	}
	out := NewFullWord()
	out.Sign = w.Sign
	skip := FullWordBytes - w.Width()
	copy(out.Magnitude[skip:], w.Magnitude)
	return out
}
