package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/yaxollum/brickroll/compiler/format"
	"github.com/yaxollum/brickroll/compiler/front"
)

type (
	Config struct {
		Indent int
		Trace  bool
	}
)

func DefaultConfig() Config {
	opts := format.DefaultOptions()

	return Config{
		Indent: opts.Indent,
		Trace:  opts.Trace,
	}
}

func (c Config) Validate() error {
	if c.Indent < 0 {
		return errors.New("negative indent: %d", c.Indent)
	}

	return nil
}

func (c Config) options() format.Options {
	return format.Options{
		Indent: c.Indent,
		Trace:  c.Trace,
	}
}

func CompileFile(ctx context.Context, name string, cfg Config) (obj []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, name, text, cfg)
}

// CompileToFile compiles the in file and writes the result to out.
// out is not touched if compilation fails.
func CompileToFile(ctx context.Context, in, out string, cfg Config) error {
	obj, err := CompileFile(ctx, in, cfg)
	if err != nil {
		return err
	}

	err = os.WriteFile(out, obj, 0o644)
	if err != nil {
		return errors.Wrap(err, "write file")
	}

	tlog.SpanFromContext(ctx).Printw("write file", "size", len(obj), "name", out)

	return nil
}

func Compile(ctx context.Context, name string, text []byte, cfg Config) (obj []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile", "name", name)
	defer tr.Finish("err", &err)

	err = cfg.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}

	p := front.Lower(ctx, text)

	tr.Printw("lowered", "prog", p)

	obj, err = format.Format(ctx, nil, p, cfg.options())
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}

	return obj, nil
}
