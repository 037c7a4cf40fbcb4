package format

import (
	"context"
	"fmt"
	"io"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/yaxollum/brickroll/compiler/ir"
)

type (
	Options struct {
		// Indent is the number of spaces per block level.
		Indent int

		// Trace puts a comment with the command index before every command of the main block.
		Trace bool
	}

	// BracketError is returned when blocks are not nested properly.
	BracketError struct {
		// Index of the command at which the mismatch was found.
		// It equals the command count if some blocks were never closed.
		Index int

		// Unclosed is the number of blocks left open at the end.
		Unclosed int
	}

	state struct {
		Options

		depth  int
		inMain bool
	}
)

var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

func DefaultOptions() Options {
	return Options{Indent: 2}
}

// Render is Format into a new string.
func Render(ctx context.Context, p *ir.Program, opts Options) (string, error) {
	b, err := Format(ctx, nil, p, opts)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Write renders the whole program and only then writes it to w,
// so nothing is written if the program is malformed.
func Write(ctx context.Context, w io.Writer, p *ir.Program, opts Options) (n int, err error) {
	b, err := Format(ctx, nil, p, opts)
	if err != nil {
		return 0, err
	}

	n, err = w.Write(b)
	if err != nil {
		return n, errors.Wrap(err, "write")
	}

	return n, nil
}

// Format appends program text to b.
func Format(ctx context.Context, b []byte, p *ir.Program, opts Options) (_ []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "format: render", "prog", p, "indent", opts.Indent, "trace", opts.Trace)
	defer tr.Finish("err", &err)

	if opts.Indent < 0 {
		opts.Indent = 0
	}

	s := &state{Options: opts}
	st := len(b)

	n := p.Len()

	for i := 0; i < n; i++ {
		c := p.Cmds[i]

		switch c.(type) {
		case ir.EndIf, ir.EndWhile:
			if s.depth == 0 {
				return nil, &BracketError{Index: i}
			}

			s.depth--
		}

		if s.Trace && s.inMain {
			b = s.app(b, "Never gonna say %d\n", i)
		}

		b, err = s.formatCmd(ctx, b, c)
		if err != nil {
			return nil, errors.Wrap(err, "command %d", i)
		}
	}

	if s.depth != 0 {
		return nil, &BracketError{Index: n, Unclosed: s.depth}
	}

	tr.Printw("rendered", "size", len(b)-st)

	return b, nil
}

func (s *state) formatCmd(ctx context.Context, b []byte, c ir.Cmd) (_ []byte, err error) {
	if l := tlog.V("format"); l != nil {
		l.Printw("command", "depth", s.depth, "typ", tlog.NextAsType, c, "val", c)
	}

	switch c := c.(type) {
	case ir.DeclareVar:
		b = s.app(b, "Never gonna let %v down\n", c.Var)
	case ir.DeclareFunc:
		b = s.app(b, "[Verse %s]\n", c.Func.Name())
		b = s.app(b, "(Ooh give you ")
		b = appendArgs(b, c.Func)
		b = append(b, ")\n"...)
	case ir.Return:
		b = s.app(b, "(Ooh) Never gonna give, never gonna give (give you ")

		b, err = appendExpr(b, c.Value)
		if err != nil {
			return nil, errors.Wrap(err, "return")
		}

		b = append(b, ")\n"...)
	case ir.DeclareMain:
		b = s.app(b, "[Chorus]\n")
		s.inMain = true
	case ir.Assign:
		b = s.app(b, "Never gonna give %v ", c.Var)

		b, err = appendExpr(b, c.Value)
		if err != nil {
			return nil, errors.Wrap(err, "assign")
		}

		b = append(b, '\n')
	case ir.Call:
		b = s.app(b, "(Ooh give you %v) ", c.Out)
		b = appendRun(b, c.Func)
	case ir.CallNoReturn:
		b = s.app(b, "")
		b = appendRun(b, c.Func)
	case ir.Cond:
		b = s.app(b, "Inside we both know ")

		b, err = appendExpr(b, c.Cond)
		if err != nil {
			return nil, errors.Wrap(err, "cond")
		}

		b = append(b, '\n')
		s.depth++
	case ir.EndIf:
		b = s.app(b, "Your heart's been aching but you're too shy to say it\n")
	case ir.EndWhile:
		b = s.app(b, "We know the game and we're gonna play it\n")
	default:
		return nil, errors.New("unsupported command: %T", c)
	}

	return b, nil
}

func appendRun(b []byte, f ir.Routine) []byte {
	b = hfmt.Appendf(b, "Never gonna run %s and desert ", f.Name())
	b = appendArgs(b, f)

	return append(b, '\n')
}

func appendArgs(b []byte, f ir.Routine) []byte {
	args := f.Args()

	if len(args) == 0 {
		return append(b, "you"...)
	}

	for i, a := range args {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = append(b, a.String()...)
	}

	return b
}

func (s *state) app(b []byte, f string, args ...any) []byte {
	for i := s.depth * s.Indent; i > 0; i-- {
		b = append(b, ' ')
	}

	return hfmt.Appendf(b, f, args...)
}

func (e *BracketError) Error() string {
	if e.Unclosed != 0 {
		return fmt.Sprintf("unbalanced brackets: %d blocks left open", e.Unclosed)
	}

	return fmt.Sprintf("unbalanced brackets: block closed at command %d was never opened", e.Index)
}

func (e *BracketError) Unwrap() error { return ErrUnbalancedBrackets }
