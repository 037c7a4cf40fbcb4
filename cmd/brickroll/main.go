package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/yaxollum/brickroll/compiler"
	"github.com/yaxollum/brickroll/compiler/front"
)

func main() {
	def := compiler.DefaultConfig()

	compileCmd := &cli.Command{
		Name:        "compile",
		Description: "translate a brainfuck file into rickroll",
		Action:      compileAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("output,o", "", "output rickroll file"),
			cli.NewFlag("indent", def.Indent, "number of spaces per indentation level"),
			cli.NewFlag("trace", def.Trace, "insert debugging trace statements into the output"),
			cli.NewFlag("verbosity,v", "", "tlog verbosity topics"),
			cli.HelpFlag,
		},
	}

	dumpCmd := &cli.Command{
		Name:        "dump",
		Description: "print lowered command list",
		Action:      dumpAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("verbosity,v", "", "tlog verbosity topics"),
			cli.HelpFlag,
		},
	}

	app := &cli.Command{
		Name:        "brickroll",
		Description: "brickroll compiles brainfuck into rickroll",
		Commands: []*cli.Command{
			compileCmd,
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func compileAct(c *cli.Command) (err error) {
	ctx := setup(c)

	if len(c.Args) != 1 {
		return errors.New("expected exactly one input file, got %d", len(c.Args))
	}

	out := c.String("output")
	if out == "" {
		return errors.New("output file is required (-o)")
	}

	cfg := compiler.Config{
		Indent: c.Int("indent"),
		Trace:  c.Bool("trace"),
	}

	in := c.Args[0]

	err = compiler.CompileToFile(ctx, in, out, cfg)
	if err != nil {
		return errors.Wrap(err, "compile %v", in)
	}

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		p := front.Lower(ctx, text)

		for i, x := range p.Cmds {
			fmt.Printf("%6d  %T %+v\n", i, x, x)
		}
	}

	return nil
}

func setup(c *cli.Command) context.Context {
	tlog.SetVerbosity(c.String("verbosity"))

	return tlog.ContextWithSpan(context.Background(), tlog.Root())
}
