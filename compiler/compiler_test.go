package compiler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaxollum/brickroll/compiler/format"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.Trace)
	assert.NoError(t, cfg.Validate())

	assert.Error(t, Config{Indent: -1}.Validate())
}

func TestCompile(t *testing.T) {
	ctx := context.Background()

	obj, err := Compile(ctx, "hello.bf", []byte("+[-]"), DefaultConfig())
	require.NoError(t, err)

	text := string(obj)
	assert.True(t, strings.HasPrefix(text, "[Verse CharToInt]\n"))
	assert.True(t, strings.HasSuffix(text, "  Never gonna give Temp Temp - 1\n"+
		"  (Ooh give you Tape) Never gonna run ArrayReplace and desert Tape, Pointer, Temp\n"+
		"We know the game and we're gonna play it\n"))

	_, err = Compile(ctx, "bad.bf", []byte("+"), Config{Indent: -2})
	assert.ErrorContains(t, err, "negative indent")

	_, err = Compile(ctx, "open.bf", []byte("[+"), DefaultConfig())
	assert.ErrorIs(t, err, format.ErrUnbalancedBrackets)
}

func TestCompileToFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	in := filepath.Join(dir, "in.bf")
	out := filepath.Join(dir, "out.rickroll")

	require.NoError(t, os.WriteFile(in, []byte("echo: ,[.,]"), 0o644))

	err := CompileToFile(ctx, in, out, Config{Indent: 4, Trace: true})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	exp, err := Compile(ctx, in, []byte(",[.,]"), Config{Indent: 4, Trace: true})
	require.NoError(t, err)

	assert.Equal(t, string(exp), string(data))
	assert.Contains(t, string(data), "    Never gonna run PutChar and desert Temp\n")
}

func TestCompileToFileErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	out := filepath.Join(dir, "out.rickroll")

	err := CompileToFile(ctx, filepath.Join(dir, "missing.bf"), out, DefaultConfig())
	assert.ErrorIs(t, err, os.ErrNotExist)

	in := filepath.Join(dir, "unbalanced.bf")
	require.NoError(t, os.WriteFile(in, []byte("+]"), 0o644))

	err = CompileToFile(ctx, in, out, DefaultConfig())
	assert.ErrorIs(t, err, format.ErrUnbalancedBrackets)

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(in, []byte("+"), 0o644))

	err = CompileToFile(ctx, in, filepath.Join(dir, "no", "such", "dir", "out"), DefaultConfig())
	assert.ErrorContains(t, err, "write file")
}
