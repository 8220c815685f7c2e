package vm

import "fmt"

// VM is the complete MIX virtual machine: registers, memory and the
// installed I/O device table. All state lives in this single value, so
// multiple VMs coexist without interference (spec.md §9).
type VM struct {
	Reg     *Registers
	Mem     *Memory
	Devices *DeviceTable

	// MaxCycles bounds Run(); Step() itself never consults it (spec.md §1:
	// "exposed but not used internally to pace execution").
	MaxCycles uint64
	Cycles    uint64

	Trace *ExecutionTrace
}

// NewVM constructs a fresh VM. Per spec.md §3, state is otherwise
// "uninitialized-undefined" until Reset is called; NewVM pre-zeroes
// everything for convenience, matching the teacher's NewCPU()/NewMemory()
// constructors which already return zeroed state.
func NewVM() *VM {
	return &VM{
		Reg:       NewRegisters(),
		Mem:       NewMemory(),
		Devices:   &DeviceTable{},
		MaxCycles: DefaultMaxCycles,
		Trace:     NewExecutionTrace(DefaultTraceCapacity),
	}
}

// Reset zeroes memory, registers and flags, per spec.md §3.
func (vm *VM) Reset() {
	vm.Reg.Reset()
	vm.Mem.Reset()
	vm.Cycles = 0
}

// Restart clears Halted and sets PC=0, per spec.md §6's Host API.
func (vm *VM) Restart() {
	vm.Reg.Restart()
}

// Step executes a single instruction: fetch, decode, compute M (and V
// where applicable), dispatch to the opcode handler, advance PC, and
// report status. Once Halted, Step is a no-op that returns the Halted
// error without mutating state (spec.md §8 invariant 7).
func (vm *VM) Step() error {
	if vm.Reg.Halted {
		return &StepError{Kind: ErrHalted}
	}

	curPC := vm.Reg.PC
	raw, err := vm.Mem.ReadWord(curPC)
	if err != nil {
		vm.fail(err)
		return err
	}

	inst := DecodeInstruction(raw)
	nextPC := curPC + 1

	m, err := inst.EffectiveAddress(vm.Reg)
	if err != nil {
		vm.fail(err)
		return err
	}

	jumped, err := vm.dispatch(inst, m, nextPC)
	if err != nil {
		vm.fail(err)
		return err
	}

	if !jumped {
		vm.Reg.PC = nextPC
	}

	vm.Cycles++
	if vm.Trace != nil {
		vm.Trace.Record(TraceEntry{
			PC:       curPC,
			Opcode:   inst.C,
			Modifier: inst.F,
			Overflow: vm.Reg.Overflow,
			Comp:     vm.Reg.Comp,
		})
	}
	return nil
}

// fail records a terminal error: Halted is latched so subsequent Step
// calls return Halted without further mutation (spec.md §7).
func (vm *VM) fail(err error) {
	if se, ok := err.(*StepError); ok && !se.terminal() {
		return
	}
	vm.Reg.Halted = true
}

// dispatch routes a decoded instruction to its opcode family handler.
// Returns jumped=true when the handler itself set PC (the JMP and Jx
// families, and JBUS/JRED); other handlers leave PC management to Step.
func (vm *VM) dispatch(inst Instruction, m, nextPC int) (bool, error) {
	switch {
	case inst.C == OpNOP:
		return false, nil

	case inst.C == OpADD || inst.C == OpSUB || inst.C == OpMUL || inst.C == OpDIV:
		return false, execArithmetic(vm, inst, m)

	case inst.C == OpSpecial:
		return false, execSpecial(vm, inst, m)

	case inst.C == OpShift:
		return false, execShift(vm, inst, m)

	case inst.C == OpMove:
		return false, execMove(vm, inst, m)

	case inst.C >= OpLDA && inst.C <= OpLDXN:
		return false, execLoad(vm, inst, m)

	case inst.C >= OpSTA && inst.C <= OpSTZ:
		return false, execStore(vm, inst, m)

	case inst.C >= OpJBUS && inst.C <= OpJRED:
		return execIO(vm, inst, m, nextPC)

	case inst.C == OpJMP:
		return execJump(vm, inst, m, nextPC)

	case inst.C >= OpJA && inst.C <= OpJX:
		return execConditionalJump(vm, inst, m, nextPC)

	case inst.C >= OpModA && inst.C <= OpModX:
		return false, execModify(vm, inst, m)

	case inst.C >= OpCMPA && inst.C <= OpCMPX:
		return false, execCompare(vm, inst, m)

	default:
		return false, &StepError{Kind: ErrInvalidInstruction, Detail: fmt.Sprintf("opcode %d", inst.C)}
	}
}

// Run steps the VM until it halts, a cycle ceiling is reached, or an error
// occurs. MaxCycles==0 means unbounded.
func (vm *VM) Run() error {
	for !vm.Reg.Halted {
		if vm.MaxCycles > 0 && vm.Cycles >= vm.MaxCycles {
			return fmt.Errorf("cycle limit exceeded (%d cycles)", vm.MaxCycles)
		}
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}

// DumpState returns a one-line summary of VM status, in the teacher's
// DumpState() style.
func (vm *VM) DumpState() string {
	return fmt.Sprintf(
		"PC=%04d A=%s X=%s OV=%v CMP=%s Halted=%v Cycles=%d",
		vm.Reg.PC, wordHex(vm.Reg.A), wordHex(vm.Reg.X), vm.Reg.Overflow, vm.Reg.Comp, vm.Reg.Halted, vm.Cycles,
	)
}

func wordHex(w Word) string {
	sign := "+"
	if w.Sign == SignNeg {
		sign = "-"
	}
	s := sign
	for _, b := range w.Magnitude {
		s += fmt.Sprintf("%02X", b)
	}
	return s
}
