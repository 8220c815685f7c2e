package vm

import "fmt"

// Memory is the MIX core: MemorySize addressable full words.
type Memory struct {
	cells [MemorySize]Word

	AccessCount uint64
	ReadCount   uint64
	WriteCount  uint64
}

// NewMemory returns a memory image of MemorySize words, all +0.
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.cells {
		m.cells[i] = NewFullWord()
	}
	return m
}

func (m *Memory) checkAddress(addr int) error {
	if addr < 0 || addr > MaxAddress {
		return &StepError{Kind: ErrInvalidAddress, Detail: fmt.Sprintf("address %d out of range [0,%d]", addr, MaxAddress)}
	}
	return nil
}

// ReadWord returns the full word at addr.
func (m *Memory) ReadWord(addr int) (Word, error) {
	if err := m.checkAddress(addr); err != nil {
		return Word{}, err
	}
	m.AccessCount++
	m.ReadCount++
	return m.cells[addr].Clone(), nil
}

// WriteWord stores w at addr in full.
func (m *Memory) WriteWord(addr int, w Word) error {
	if err := m.checkAddress(addr); err != nil {
		return err
	}
	m.AccessCount++
	m.WriteCount++
	m.cells[addr] = w.Clone()
	return nil
}

// ReadField reads the (L:R) field of memory[addr], per Word.ReadField.
func (m *Memory) ReadField(addr int, f FieldSpec) (Word, error) {
	if err := m.checkAddress(addr); err != nil {
		return Word{}, err
	}
	m.AccessCount++
	m.ReadCount++
	return m.cells[addr].ReadField(f), nil
}

// WriteField writes src into the (L:R) field of memory[addr], per
// Word.WriteField.
func (m *Memory) WriteField(addr int, f FieldSpec, src Word) error {
	if err := m.checkAddress(addr); err != nil {
		return err
	}
	m.AccessCount++
	m.WriteCount++
	cell := m.cells[addr]
	cell.WriteField(f, src)
	m.cells[addr] = cell
	return nil
}

// Reset zeroes every cell and its counters, per spec.md §3's reset
// lifecycle operation.
func (m *Memory) Reset() {
	for i := range m.cells {
		m.cells[i] = NewFullWord()
	}
	m.AccessCount = 0
	m.ReadCount = 0
	m.WriteCount = 0
}
