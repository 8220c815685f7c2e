package vm_test

import (
	"testing"

	"github.com/example/mix-vm/vm"
	"github.com/stretchr/testify/require"
)

// fullWordMaxMagnitude is 256^5-1, the largest magnitude a full word holds.
const fullWordMaxMagnitude = 1<<40 - 1

// setInstruction writes an instruction word at addr from its (sign, a, i, f, c) parts.
func setInstruction(t *testing.T, machine *vm.VM, addr int, sign vm.Sign, a, i, f, c int) {
	t.Helper()
	mag0 := byte((a >> 8) & 0xFF)
	mag1 := byte(a & 0xFF)
	w := vm.Word{Sign: sign, Magnitude: []byte{mag0, mag1, byte(i), byte(f), byte(c)}}
	require.NoError(t, machine.Mem.WriteWord(addr, w))
}
