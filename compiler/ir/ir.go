package ir

import (
	"tlog.app/go/tlog/tlwire"
)

type (
	Var int

	Expr interface {
		expr()
	}

	Literal interface {
		Expr
		literal()
	}

	Char rune
	Int  uint8

	EmptyArray struct{}

	Inc struct {
		X Var
	}

	Dec struct {
		X Var
	}

	Index struct {
		Array Var
		Index Var
	}

	EqLit struct {
		X Var
		Y Literal
	}

	EqVar struct {
		X Var
		Y Var
	}

	NeLit struct {
		X Var
		Y Literal
	}

	Cmd interface {
		cmd()
	}

	DeclareVar struct {
		Var Var
	}

	// DeclareFunc opens a routine definition.
	// Its body follows and ends with a Return.
	DeclareFunc struct {
		Func Routine
	}

	Return struct {
		Value Expr
	}

	DeclareMain struct{}

	Assign struct {
		Var   Var
		Value Expr
	}

	Call struct {
		Func Routine
		Out  Var
	}

	CallNoReturn struct {
		Func Routine
	}

	// Cond opens a block. It is closed by either EndIf or EndWhile
	// which decides whether the block is a branch or a loop.
	Cond struct {
		Cond Expr
	}

	EndIf    struct{}
	EndWhile struct{}

	Program struct {
		Cmds []Cmd
	}
)

const (
	Zero Var = iota
	Pointer
	Tape
	Temp
	Buffer
)

var varNames = [...]string{
	Zero:    "Zero",
	Pointer: "Pointer",
	Tape:    "Tape",
	Temp:    "Temp",
	Buffer:  "Buffer",
}

func (v Var) String() string {
	if v < 0 || int(v) >= len(varNames) {
		return "Var(?)"
	}

	return varNames[v]
}

func (v Var) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	return e.AppendString(b, v.String())
}

func (p *Program) Add(c ...Cmd) {
	p.Cmds = append(p.Cmds, c...)
}

func (p *Program) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Cmds)
}

// Blocks counts opened blocks.
func (p *Program) Blocks() (n int) {
	if p == nil {
		return 0
	}

	for _, c := range p.Cmds {
		if _, ok := c.(Cond); ok {
			n++
		}
	}

	return n
}

func (p *Program) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 2)

	b = e.AppendKeyInt(b, "cmds", p.Len())
	b = e.AppendKeyInt(b, "blocks", p.Blocks())

	return b
}

func (Char) expr()       {}
func (Int) expr()        {}
func (EmptyArray) expr() {}
func (Inc) expr()        {}
func (Dec) expr()        {}
func (Index) expr()      {}
func (EqLit) expr()      {}
func (EqVar) expr()      {}
func (NeLit) expr()      {}

func (Char) literal()       {}
func (Int) literal()        {}
func (EmptyArray) literal() {}

func (DeclareVar) cmd()   {}
func (DeclareFunc) cmd()  {}
func (Return) cmd()       {}
func (DeclareMain) cmd()  {}
func (Assign) cmd()       {}
func (Call) cmd()         {}
func (CallNoReturn) cmd() {}
func (Cond) cmd()         {}
func (EndIf) cmd()        {}
func (EndWhile) cmd()     {}
