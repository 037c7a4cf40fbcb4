package front

import (
	"context"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/yaxollum/brickroll/compiler/ir"
)

type (
	state struct {
		p *ir.Program
	}
)

// Lower translates source text into the command list.
// Any byte that is not one of the eight instructions is a comment.
func Lower(ctx context.Context, src []byte) (p *ir.Program) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "front: lower", "size", len(src))
	defer func() {
		tr.Finish("prog", p)
	}()

	s := &state{
		p: &ir.Program{},
	}

	tab := TableChars()

	tr.Printw("tables", "chars", tab, "size", tab.Size())

	s.charToInt(tab)
	s.intToChar(tab)
	s.main()
	s.initVars()

	for _, c := range src {
		switch c {
		case '>':
			s.incPointer()
		case '<':
			s.decPointer()
		case '+':
			s.incData()
		case '-':
			s.decData()
		case '.':
			s.output()
		case ',':
			s.input()
		case '[':
			s.loop()
		case ']':
			s.loopEnd()
		}
	}

	return s.p
}

func (s *state) add(c ir.Cmd) {
	if l := tlog.V("lower"); l != nil {
		l.Printw("emit", "i", len(s.p.Cmds), "typ", tlog.NextAsType, c, "val", c, "from", loc.Caller(1))
	}

	s.p.Add(c)
}

func (s *state) main() {
	s.add(ir.DeclareMain{})
}

func (s *state) initVars() {
	for _, v := range []ir.Var{ir.Zero, ir.Tape, ir.Temp, ir.Buffer, ir.Pointer} {
		s.add(ir.DeclareVar{Var: v})
	}

	s.add(ir.Assign{Var: ir.Zero, Value: ir.Int(0)})
	s.add(ir.Assign{Var: ir.Tape, Value: ir.EmptyArray{}})
	s.add(ir.Call{Func: ir.ArrayPush{Array: ir.Tape, Index: ir.Zero, Value: ir.Zero}, Out: ir.Tape})
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Int(0)})
	s.add(ir.Assign{Var: ir.Buffer, Value: ir.EmptyArray{}})
	s.add(ir.Assign{Var: ir.Pointer, Value: ir.Int(0)})
}

// incPointer grows the tape by one zero cell when the pointer
// steps past its right end.
func (s *state) incPointer() {
	s.add(ir.Assign{Var: ir.Pointer, Value: ir.Inc{X: ir.Pointer}})
	s.add(ir.Call{Func: ir.ArrayLength{Array: ir.Tape}, Out: ir.Temp})
	s.add(ir.Cond{Cond: ir.EqVar{X: ir.Pointer, Y: ir.Temp}})
	s.add(ir.Call{Func: ir.ArrayPush{Array: ir.Tape, Index: ir.Temp, Value: ir.Zero}, Out: ir.Tape})
	s.add(ir.EndIf{})
}

// decPointer has no lower bound check.
// Moving left of the first cell is undefined in the source language.
func (s *state) decPointer() {
	s.add(ir.Assign{Var: ir.Pointer, Value: ir.Dec{X: ir.Pointer}})
}

func (s *state) incData() {
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Index{Array: ir.Tape, Index: ir.Pointer}})
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Inc{X: ir.Temp}})
	s.add(ir.Call{Func: ir.ArrayReplace{Array: ir.Tape, Index: ir.Pointer, Value: ir.Temp}, Out: ir.Tape})
}

func (s *state) decData() {
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Index{Array: ir.Tape, Index: ir.Pointer}})
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Dec{X: ir.Temp}})
	s.add(ir.Call{Func: ir.ArrayReplace{Array: ir.Tape, Index: ir.Pointer, Value: ir.Temp}, Out: ir.Tape})
}

func (s *state) output() {
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Index{Array: ir.Tape, Index: ir.Pointer}})
	s.add(ir.Call{Func: ir.IntToChar{X: ir.Temp}, Out: ir.Temp})
	s.add(ir.CallNoReturn{Func: ir.PutChar{X: ir.Temp}})
}

// input takes the next char of the line buffer,
// reading a new line once the buffer is drained.
func (s *state) input() {
	s.add(ir.Call{Func: ir.ArrayLength{Array: ir.Buffer}, Out: ir.Temp})
	s.add(ir.Cond{Cond: ir.EqLit{X: ir.Temp, Y: ir.Int(0)}})
	s.add(ir.Call{Func: ir.ReadLine{}, Out: ir.Buffer})
	s.add(ir.EndIf{})
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Index{Array: ir.Buffer, Index: ir.Zero}})
	s.add(ir.Call{Func: ir.ArrayPop{Array: ir.Buffer, Index: ir.Zero}, Out: ir.Buffer})
	s.add(ir.Call{Func: ir.CharToInt{X: ir.Temp}, Out: ir.Temp})
	s.add(ir.Call{Func: ir.ArrayReplace{Array: ir.Tape, Index: ir.Pointer, Value: ir.Temp}, Out: ir.Tape})
}

func (s *state) loop() {
	s.add(ir.Assign{Var: ir.Temp, Value: ir.Index{Array: ir.Tape, Index: ir.Pointer}})
	s.add(ir.Cond{Cond: ir.NeLit{X: ir.Temp, Y: ir.Int(0)}})
}

func (s *state) loopEnd() {
	s.add(ir.EndWhile{})
}
