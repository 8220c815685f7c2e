package vm_test

import (
	"math"
	"testing"

	"github.com/example/mix-vm/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatWordRoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 3.5, -3.5, 1e10, -1e-10} {
		w := vm.WordFromFloat32(f)
		got := vm.Float32FromWord(w)
		assert.Equal(t, f, got)
	}
}

func TestFloatAddViaF7Flavor(t *testing.T) {
	machine := vm.NewVM()
	machine.Reg.A = vm.WordFromFloat32(1.5)
	require.NoError(t, machine.Mem.WriteWord(10, vm.WordFromFloat32(2.5)))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 7, vm.OpADD)
	require.NoError(t, machine.Step())

	assert.InDelta(t, float32(4.0), vm.Float32FromWord(machine.Reg.A), 0.0001)
}

func TestFloatCompareUnorderedOnNaN(t *testing.T) {
	machine := vm.NewVM()
	machine.Reg.A = vm.WordFromFloat32(float32(math.NaN()))
	require.NoError(t, machine.Mem.WriteWord(10, vm.WordFromFloat32(1.0)))

	setInstruction(t, machine, 0, vm.SignPos, 10, 0, 7, vm.OpCMPA)
	require.NoError(t, machine.Step())

	assert.Equal(t, vm.CompUnordered, machine.Reg.Comp)
}

func TestFlotFixRoundTrip(t *testing.T) {
	machine := vm.NewVM()
	require.NoError(t, machine.Reg.A.SetFromInt64(42))

	setInstruction(t, machine, 0, vm.SignPos, 0, 0, vm.SpecialFloatFlot, vm.OpSpecial)
	require.NoError(t, machine.Step())
	assert.Equal(t, float32(42), vm.Float32FromWord(machine.Reg.A))

	setInstruction(t, machine, 1, vm.SignPos, 0, 0, vm.SpecialFloatFix, vm.OpSpecial)
	require.NoError(t, machine.Step())
	assert.Equal(t, int64(42), machine.Reg.A.ToInt64())
}

func TestFsqrtSetsOverflowOnNegativeInput(t *testing.T) {
	machine := vm.NewVM()
	machine.Reg.A = vm.WordFromFloat32(-4.0)

	setInstruction(t, machine, 0, vm.SignPos, 0, 0, vm.SpecialFloatSqrt, vm.OpSpecial)
	require.NoError(t, machine.Step())

	assert.True(t, machine.Reg.Overflow)
}
