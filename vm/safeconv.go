package vm

import "fmt"

// SafeBlockSize validates a Device's BlockSize() before a transfer buffer
// is allocated from it. Device is an external boundary (spec.md §5's
// pluggable I/O capability) — a misbehaving implementation could otherwise
// make IN/OUT allocate a negative or huge buffer.
func SafeBlockSize(n int) (int, error) {
	if n <= 0 || n > MemorySize {
		return 0, fmt.Errorf("device block size %d out of range (1..%d)", n, MemorySize)
	}
	return n, nil
}
