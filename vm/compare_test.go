package vm_test

import (
	"testing"

	"github.com/example/mix-vm/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBasic(t *testing.T) {
	machine := vm.NewVM()
	require.NoError(t, machine.Reg.A.SetFromInt64(5))

	v, err := vm.WordFromInt64(9)
	require.NoError(t, err)
	require.NoError(t, machine.Mem.WriteWord(10, v))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpCMPA)
	require.NoError(t, machine.Step())

	assert.Equal(t, vm.CompLess, machine.Reg.Comp)
}

// TestCompareSignOnlyFieldEqual covers the frozen rule: two zero-magnitude
// fields compare Equal regardless of differing sign cells.
func TestCompareSignOnlyFieldEqual(t *testing.T) {
	machine := vm.NewVM()
	machine.Reg.A = vm.Word{Sign: vm.SignNeg, Magnitude: []byte{0, 0, 0, 0, 0}}

	mem := vm.Word{Sign: vm.SignPos, Magnitude: []byte{0, 0, 0, 0, 0}}
	require.NoError(t, machine.Mem.WriteWord(10, mem))

	// field (0:0): sign cell only.
	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 0, vm.OpCMPA)
	require.NoError(t, machine.Step())

	assert.Equal(t, vm.CompEqual, machine.Reg.Comp, "a zero-magnitude sign-only field always compares Equal")
}

func TestCompareIndexRegisterWidened(t *testing.T) {
	machine := vm.NewVM()
	require.NoError(t, machine.Reg.Index(1).SetFromInt64(7))

	v, err := vm.WordFromInt64(7)
	require.NoError(t, err)
	require.NoError(t, machine.Mem.WriteWord(10, v))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpCMP1)
	require.NoError(t, machine.Step())

	assert.Equal(t, vm.CompEqual, machine.Reg.Comp)
}
