package format

import (
	"strconv"
	"unicode/utf8"

	"tlog.app/go/errors"

	"github.com/yaxollum/brickroll/compiler/ir"
)

func appendExpr(b []byte, x ir.Expr) (_ []byte, err error) {
	switch x := x.(type) {
	case ir.Inc:
		b = append(b, x.X.String()...)
		b = append(b, " + 1"...)
	case ir.Dec:
		b = append(b, x.X.String()...)
		b = append(b, " - 1"...)
	case ir.Index:
		b = append(b, x.Array.String()...)
		b = append(b, " : "...)
		b = append(b, x.Index.String()...)
	case ir.EqVar:
		b = append(b, x.X.String()...)
		b = append(b, " == "...)
		b = append(b, x.Y.String()...)
	case ir.EqLit:
		b = append(b, x.X.String()...)
		b = append(b, " == "...)

		return appendLiteral(b, x.Y)
	case ir.NeLit:
		b = append(b, x.X.String()...)
		b = append(b, " != "...)

		return appendLiteral(b, x.Y)
	case ir.Literal:
		return appendLiteral(b, x)
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

func appendLiteral(b []byte, l ir.Literal) ([]byte, error) {
	switch l := l.(type) {
	case ir.Int:
		return strconv.AppendUint(b, uint64(l), 10), nil
	case ir.Char:
		b = append(b, '\'')

		switch l {
		case '\n':
			b = append(b, `\n`...)
		case '\'':
			b = append(b, `\'`...)
		case '\\':
			b = append(b, `\\`...)
		default:
			b = utf8.AppendRune(b, rune(l))
		}

		return append(b, '\''), nil
	case ir.EmptyArray:
		return append(b, "ARRAY"...), nil
	default:
		return nil, errors.New("unsupported literal: %T", l)
	}
}
