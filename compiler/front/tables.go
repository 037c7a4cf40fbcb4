package front

import (
	"github.com/yaxollum/brickroll/compiler/ir"
	"github.com/yaxollum/brickroll/compiler/set"
)

const (
	tableFirst = ' '
	tableLast  = '~'
)

// Fallback values of the conversion routines for values out of the table.
const (
	CharToIntFallback = ir.Int(0)
	IntToCharFallback = ir.Char('$')
)

// TableChars is the set of chars the conversion routines know about:
// newline and printable ASCII.
func TableChars() (s set.Bytes) {
	s.Set('\n')
	s.FillSet(tableFirst, tableLast)

	return s
}

func (s *state) charToInt(tab set.Bytes) {
	s.add(ir.DeclareFunc{Func: ir.CharToInt{X: ir.Temp}})

	tab.Range(func(c byte) bool {
		s.add(ir.Cond{Cond: ir.EqLit{X: ir.Temp, Y: ir.Char(c)}})
		s.add(ir.Return{Value: ir.Int(c)})
		s.add(ir.EndIf{})

		return true
	})

	s.add(ir.Return{Value: CharToIntFallback})
}

func (s *state) intToChar(tab set.Bytes) {
	s.add(ir.DeclareFunc{Func: ir.IntToChar{X: ir.Temp}})

	tab.Range(func(c byte) bool {
		s.add(ir.Cond{Cond: ir.EqLit{X: ir.Temp, Y: ir.Int(c)}})
		s.add(ir.Return{Value: ir.Char(c)})
		s.add(ir.EndIf{})

		return true
	})

	s.add(ir.Return{Value: IntToCharFallback})
}
