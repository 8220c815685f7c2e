package vm_test

import (
	"testing"

	"github.com/example/mix-vm/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLdaLoadsFullWord(t *testing.T) {
	machine := vm.NewVM()
	v, err := vm.WordFromInt64(12345)
	require.NoError(t, err)
	require.NoError(t, machine.Mem.WriteWord(10, v))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpLDA)
	require.NoError(t, machine.Step())

	assert.Equal(t, int64(12345), machine.Reg.A.ToInt64())
}

func TestLdanNegatesSign(t *testing.T) {
	machine := vm.NewVM()
	v, err := vm.WordFromInt64(12345)
	require.NoError(t, err)
	require.NoError(t, machine.Mem.WriteWord(10, v))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpLDAN)
	require.NoError(t, machine.Step())

	assert.Equal(t, int64(-12345), machine.Reg.A.ToInt64())
}

func TestLdaPartialFieldForcesPositiveSign(t *testing.T) {
	machine := vm.NewVM()
	mem := vm.Word{Sign: vm.SignNeg, Magnitude: []byte{1, 2, 3, 4, 5}}
	require.NoError(t, machine.Mem.WriteWord(10, mem))

	// field (1:3): bytes 1..3 only, sign left alone since L!=0.
	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 8*1+3, vm.OpLDA)
	require.NoError(t, machine.Step())

	assert.Equal(t, vm.SignPos, machine.Reg.A.Sign)
	assert.Equal(t, []byte{0, 0, 1, 2, 3}, machine.Reg.A.Magnitude)
}

func TestStaWritesFullWord(t *testing.T) {
	machine := vm.NewVM()
	require.NoError(t, machine.Reg.A.SetFromInt64(777))
	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpSTA)

	require.NoError(t, machine.Step())

	stored, err := machine.Mem.ReadWord(10)
	require.NoError(t, err)
	assert.Equal(t, int64(777), stored.ToInt64())
}

func TestStzZeroesField(t *testing.T) {
	machine := vm.NewVM()
	mem := vm.Word{Sign: vm.SignNeg, Magnitude: []byte{1, 2, 3, 4, 5}}
	require.NoError(t, machine.Mem.WriteWord(10, mem))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpSTZ)
	require.NoError(t, machine.Step())

	stored, err := machine.Mem.ReadWord(10)
	require.NoError(t, err)
	assert.True(t, stored.IsZero())
	assert.Equal(t, vm.SignPos, stored.Sign)
}

func TestLd1IntoHalfRegisterOverflows(t *testing.T) {
	machine := vm.NewVM()
	v, err := vm.WordFromInt64(123456)
	require.NoError(t, err)
	require.NoError(t, machine.Mem.WriteWord(10, v))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 5, vm.OpLD1)
	err = machine.Step()

	require.Error(t, err, "a value too wide for a half register should fail")
	se, ok := err.(*vm.StepError)
	require.True(t, ok)
	assert.Equal(t, vm.ErrInvalidMemRange, se.Kind)
}
