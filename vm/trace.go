package vm

import "fmt"

// TraceEntry is a single recorded step: where it ran, which opcode/
// modifier it decoded to, and the overflow/comparison state it left
// behind. This is the ambient "logging" layer — the teacher repo carries
// no external logging library (no log/logrus/zap/charmbracelet-log import
// anywhere in vm/), favoring ring-buffered trace structs instead
// (FlagTrace, RegisterTrace); we follow that same convention here with a
// single merged trace since MIX has far fewer state dimensions than an
// ARM CPSR + 15 general registers.
type TraceEntry struct {
	PC       int
	Opcode   int
	Modifier int
	Overflow bool
	Comp     CompIndicator
}

// ExecutionTrace is a fixed-capacity ring buffer of recent TraceEntry
// values. Recording is a no-op once Enabled is false, so a VM built
// without diagnostics pays no cost beyond the nil check in Step.
type ExecutionTrace struct {
	Enabled  bool
	capacity int
	entries  []TraceEntry
	next     int
	full     bool
}

// NewExecutionTrace returns an enabled trace with room for capacity
// entries (0 disables recording entirely).
func NewExecutionTrace(capacity int) *ExecutionTrace {
	return &ExecutionTrace{
		Enabled:  capacity > 0,
		capacity: capacity,
		entries:  make([]TraceEntry, capacity),
	}
}

// Record appends an entry, overwriting the oldest once capacity is
// reached.
func (t *ExecutionTrace) Record(e TraceEntry) {
	if t == nil || !t.Enabled || t.capacity == 0 {
		return
	}
	t.entries[t.next] = e
	t.next = (t.next + 1) % t.capacity
	if t.next == 0 {
		t.full = true
	}
}

// Entries returns the recorded entries in chronological order.
func (t *ExecutionTrace) Entries() []TraceEntry {
	if t == nil {
		return nil
	}
	if !t.full {
		return append([]TraceEntry(nil), t.entries[:t.next]...)
	}
	out := make([]TraceEntry, 0, t.capacity)
	out = append(out, t.entries[t.next:]...)
	out = append(out, t.entries[:t.next]...)
	return out
}

// Clear discards all recorded entries without changing Enabled.
func (t *ExecutionTrace) Clear() {
	if t == nil {
		return
	}
	t.next = 0
	t.full = false
}

func (e TraceEntry) String() string {
	return fmt.Sprintf("PC=%04d C=%02d F=%02d OV=%v CMP=%s", e.PC, e.Opcode, e.Modifier, e.Overflow, e.Comp)
}
