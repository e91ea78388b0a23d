package ir

// This file holds small builder helpers used by tests and the cmd/infer demo
// to hand-construct ir.Module values, standing in for the AST-to-IR lowering
// stage that is out of scope for this module.

// NewFunction creates an empty function with the given formal parameter
// names.
func NewFunction(name string, paramNames ...string) *Function {
	f := &Function{Name: name, ReturnType: Any}
	for i, n := range paramNames {
		f.Params = append(f.Params, &Parameter{Name: n, Index: i, t: Any})
	}
	return f
}

// NewVariable adds a fresh closure-captured Variable to f's scope.
func (f *Function) NewVariable(name string) *Variable {
	v := &Variable{Name: name, t: Any}
	f.Variables = append(f.Variables, v)
	return v
}

// NewBlock appends a fresh, empty basic block to f.
func (f *Function) NewBlock(name string) *BasicBlock {
	b := &BasicBlock{Name: name, Func: f}
	f.Blocks = append(f.Blocks, b)
	return b
}

// Connect records a CFG edge from b to succ (used by Phi's predecessor
// bookkeeping and by nothing else in this pass, since infer never walks
// the CFG itself - only program order within a block matters to it).
func Connect(b, succ *BasicBlock) {
	b.Succs = append(b.Succs, succ)
	succ.Preds = append(succ.Preds, b)
}

// SetPhiEntries assigns a phi's incoming edges and registers the phi as a
// user of each instruction-valued entry. Phi entries are set after Emit
// (a loop-carried phi's back-edge value does not exist yet when the phi is
// emitted), so Emit's operand-user wiring cannot cover them.
func (i *Instruction) SetPhiEntries(entries ...PhiEntry) {
	i.PhiEntries = entries
	for _, e := range entries {
		if def, ok := e.Value.(*Instruction); ok {
			def.AddUser(i)
		}
	}
}

// Emit appends instr to b, wires instr.Block, and registers instr as a user
// of each of its operands.
func (b *BasicBlock) Emit(instr *Instruction) *Instruction {
	instr.Block = b
	b.Instrs = append(b.Instrs, instr)
	for _, op := range instr.Operands {
		switch def := op.(type) {
		case *Instruction:
			def.AddUser(instr)
		case *Variable:
			def.AddUser(instr)
		}
	}
	switch target := instr.Target.(type) {
	case *Instruction:
		target.AddUser(instr)
	case *Variable:
		target.AddUser(instr)
	}
	return instr
}
