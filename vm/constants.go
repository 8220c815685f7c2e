package vm

// ============================================================================
// MIX Architecture Constants
// ============================================================================
// These values are defined by Knuth's MIX specification (TAOCP Vol. 1) and
// should not be modified.

const (
	// FullWordBytes is the magnitude byte count of rA, rX, memory cells and
	// instructions. The sign cell is stored separately in Word.Sign.
	FullWordBytes = 5

	// HalfWordBytes is the magnitude byte count of rI1..rI6 and rJ.
	HalfWordBytes = 2

	// ByteRange is the number of distinct values a byte can hold. MIX only
	// requires 64, this simulator fixes the full 8-bit range.
	ByteRange = 256

	// MemorySize is the number of addressable full words.
	MemorySize = 4000

	// MaxAddress is the highest valid memory address (MemorySize - 1).
	MaxAddress = MemorySize - 1

	// MaxIndex is the highest valid index register number (rI1..rI6).
	MaxIndex = 6

	// DeviceCount is the canonical MIX device table size.
	DeviceCount = 20

	// FieldSpecMax is the highest packed (L:R) field-spec byte: 8*5+5.
	FieldSpecMax = 8*FullWordBytes + FullWordBytes

	// MaxEffectiveAddress is the largest magnitude a 12-bit signed address
	// field (the A byte pair plus indexing) may hold.
	MaxEffectiveAddress = 4095
)

// Sign is the sign cell of a Word: one of SignPos or SignNeg.
type Sign byte

const (
	SignPos Sign = 0
	SignNeg Sign = 1
)

// Negate flips a sign; used by the LDxN family and unary negation.
func (s Sign) Negate() Sign {
	if s == SignPos {
		return SignNeg
	}
	return SignPos
}

// CompIndicator is the comparison flag set by CMPx instructions.
type CompIndicator int

const (
	CompLess CompIndicator = iota
	CompEqual
	CompGreater
	// CompUnordered results only from an x-ieee754 float comparison
	// (CmpA/CmpX with F=7, or Special FCMPO) against a NaN operand.
	CompUnordered
)

func (c CompIndicator) String() string {
	switch c {
	case CompLess:
		return "LESS"
	case CompEqual:
		return "EQUAL"
	case CompGreater:
		return "GREATER"
	case CompUnordered:
		return "UNORDERED"
	default:
		return "UNKNOWN"
	}
}

// Opcode (C field) families. Names follow TAOCP's mnemonics.
const (
	OpNOP = 0

	OpADD = 1
	OpSUB = 2
	OpMUL = 3
	OpDIV = 4

	OpSpecial = 5 // NUM/CHAR/HLT/fp-conv/bitwise, sub-dispatched by F
	OpShift   = 6 // SLA/SRA/SLAX/SRAX/SLC/SRC/SLB/SRB, sub-dispatched by F
	OpMove    = 7

	OpLDA = 8
	OpLD1 = 9
	OpLD2 = 10
	OpLD3 = 11
	OpLD4 = 12
	OpLD5 = 13
	OpLD6 = 14
	OpLDX = 15

	OpLDAN = 16
	OpLD1N = 17
	OpLD2N = 18
	OpLD3N = 19
	OpLD4N = 20
	OpLD5N = 21
	OpLD6N = 22
	OpLDXN = 23

	OpSTA = 24
	OpST1 = 25
	OpST2 = 26
	OpST3 = 27
	OpST4 = 28
	OpST5 = 29
	OpST6 = 30
	OpSTX = 31
	OpSTJ = 32
	OpSTZ = 33

	OpJBUS = 34
	OpIOC  = 35
	OpIN   = 36
	OpOUT  = 37
	OpJRED = 38

	OpJMP = 39 // unconditional/overflow/comparison jumps, sub-dispatched by F

	OpJA = 40
	OpJ1 = 41
	OpJ2 = 42
	OpJ3 = 43
	OpJ4 = 44
	OpJ5 = 45
	OpJ6 = 46
	OpJX = 47

	OpModA = 48 // INCA/DECA/ENTA/ENNA
	OpMod1 = 49
	OpMod2 = 50
	OpMod3 = 51
	OpMod4 = 52
	OpMod5 = 53
	OpMod6 = 54
	OpModX = 55

	OpCMPA = 56
	OpCMP1 = 57
	OpCMP2 = 58
	OpCMP3 = 59
	OpCMP4 = 60
	OpCMP5 = 61
	OpCMP6 = 62
	OpCMPX = 63
)

// Special (C=5) sub-opcodes, selected by F.
const (
	SpecialNUM      = 0
	SpecialCHAR     = 1
	SpecialHLT      = 2
	SpecialFloatFlot  = 3 // x-ieee754: rA integer -> binary32
	SpecialFloatFix   = 4 // x-ieee754: rA binary32 -> integer (truncate toward zero)
	SpecialFloatCmpO  = 5 // x-ieee754: ordered compare of rA against V as binary32
	SpecialFloatAbs   = 6 // x-ieee754: |rA| as binary32
	SpecialFloatNeg   = 7 // x-ieee754: -rA as binary32
	SpecialFloatSqrt  = 8 // x-ieee754: sqrt(rA) as binary32

	SpecialNOT = 9  // x-binarith
	SpecialAND = 10 // x-binarith
	SpecialOR  = 11 // x-binarith
	SpecialXOR = 12 // x-binarith
)

// Shift (C=6) sub-opcodes, selected by F.
const (
	ShiftSLA  = 0
	ShiftSRA  = 1
	ShiftSLAX = 2
	ShiftSRAX = 3
	ShiftSLC  = 4
	ShiftSRC  = 5
	ShiftSLB  = 6 // x-binary
	ShiftSRB  = 7 // x-binary
)

// JMP family (C=39) sub-opcodes, selected by F.
const (
	JmpJMP  = 0 // unconditional, rJ updated
	JmpJSJ  = 1 // unconditional, rJ NOT updated
	JmpJOV  = 2 // jump if overflow, clears toggle
	JmpJNOV = 3 // jump if not overflow, clears toggle
	JmpJL   = 4
	JmpJE   = 5
	JmpJG   = 6
	JmpJGE  = 7
	JmpJNE  = 8
	JmpJLE  = 9

	// x-ieee754: jump on ordered/unordered comparison outcome.
	JmpJORD   = 10
	JmpJUNORD = 11
)

// Jx (C=40..47) condition sub-opcodes, selected by F.
const (
	JxN  = 0 // negative
	JxZ  = 1 // zero
	JxP  = 2 // positive
	JxNN = 3 // nonnegative
	JxNZ = 4 // nonzero
	JxNP = 5 // nonpositive
	JxE  = 6 // x-binary: even (bit 0 of low byte clear)
	JxO  = 7 // x-binary: odd
)

// Modify family (C=48..55) sub-opcodes, selected by F.
const (
	ModINC = 0
	ModDEC = 1
	ModENT = 2
	ModENN = 3
)

// VM execution defaults.
const (
	// DefaultMaxCycles bounds a Run() loop; Step() itself never consults it.
	DefaultMaxCycles = 1000000

	// DefaultTraceCapacity is the ring-buffer size for ExecutionTrace.
	DefaultTraceCapacity = 1000
)
