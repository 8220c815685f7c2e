package vm_test

import (
	"testing"

	"github.com/example/mix-vm/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAdvancesPC(t *testing.T) {
	machine := vm.NewVM()
	setInstruction(t, machine, 0, vm.SignPos, 0, 0, 0, vm.OpNOP)

	require.NoError(t, machine.Step())

	assert.Equal(t, 1, machine.Reg.PC)
	assert.Equal(t, uint64(1), machine.Cycles)
}

func TestHaltIsSticky(t *testing.T) {
	machine := vm.NewVM()
	setInstruction(t, machine, 0, vm.SignPos, 0, 0, vm.SpecialHLT, vm.OpSpecial)

	err := machine.Step()
	require.Error(t, err)
	assert.True(t, machine.Reg.Halted)

	// A second Step after Halted is a no-op that returns Halted again
	// without mutating state further.
	cyclesBefore := machine.Cycles
	err2 := machine.Step()
	require.Error(t, err2)
	assert.Equal(t, cyclesBefore, machine.Cycles)
}

func TestRunStopsAtCycleCeiling(t *testing.T) {
	machine := vm.NewVM()
	machine.MaxCycles = 3
	// Infinite loop: JMP to self.
	setInstruction(t, machine, 0, vm.SignPos, 0, 0, vm.JmpJMP, vm.OpJMP)

	err := machine.Run()
	require.Error(t, err)
	assert.Equal(t, uint64(3), machine.Cycles)
}

func TestResetClearsRegistersButNotPC(t *testing.T) {
	machine := vm.NewVM()
	require.NoError(t, machine.Reg.A.SetFromInt64(42))
	machine.Reg.PC = 17

	machine.Reset()

	assert.True(t, machine.Reg.A.IsZero())
	assert.Equal(t, 17, machine.Reg.PC, "Reset does not touch PC")
}

func TestRestartClearsHaltedAndPC(t *testing.T) {
	machine := vm.NewVM()
	machine.Reg.Halted = true
	machine.Reg.PC = 99

	machine.Restart()

	assert.False(t, machine.Reg.Halted)
	assert.Equal(t, 0, machine.Reg.PC)
}

func TestTraceRecordsSteps(t *testing.T) {
	machine := vm.NewVM()
	machine.Trace = vm.NewExecutionTrace(2)
	setInstruction(t, machine, 0, vm.SignPos, 0, 0, 0, vm.OpNOP)
	setInstruction(t, machine, 1, vm.SignPos, 0, 0, 0, vm.OpNOP)
	setInstruction(t, machine, 2, vm.SignPos, 0, 0, 0, vm.OpNOP)

	require.NoError(t, machine.Step())
	require.NoError(t, machine.Step())
	require.NoError(t, machine.Step())

	entries := machine.Trace.Entries()
	require.Len(t, entries, 2, "ring buffer should cap at its capacity")
	assert.Equal(t, 1, entries[0].PC, "oldest entry (PC=0) should have rolled off")
}
