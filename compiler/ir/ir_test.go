package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarString(t *testing.T) {
	assert.Equal(t, "Zero", Zero.String())
	assert.Equal(t, "Pointer", Pointer.String())
	assert.Equal(t, "Tape", Tape.String())
	assert.Equal(t, "Temp", Temp.String())
	assert.Equal(t, "Buffer", Buffer.String())
	assert.Equal(t, "Var(?)", Var(42).String())
}

func TestRoutineArity(t *testing.T) {
	for _, tc := range []struct {
		r     Routine
		name  string
		arity int
	}{
		{ArrayReplace{Tape, Pointer, Temp}, "ArrayReplace", 3},
		{ArrayPush{Tape, Temp, Zero}, "ArrayPush", 3},
		{ArrayPop{Buffer, Zero}, "ArrayPop", 2},
		{ArrayLength{Tape}, "ArrayLength", 1},
		{CharToInt{Temp}, "CharToInt", 1},
		{IntToChar{Temp}, "IntToChar", 1},
		{PutChar{Temp}, "PutChar", 1},
		{ReadLine{}, "ReadLine", 0},
	} {
		assert.Equal(t, tc.name, tc.r.Name())
		assert.Len(t, tc.r.Args(), tc.arity, tc.name)
	}

	assert.Equal(t, []Var{Tape, Pointer, Temp}, ArrayReplace{Tape, Pointer, Temp}.Args())
}

func TestProgramBlocks(t *testing.T) {
	var nilp *Program

	assert.Equal(t, 0, nilp.Len())
	assert.Equal(t, 0, nilp.Blocks())

	p := &Program{}
	p.Add(DeclareMain{}, Cond{Cond: NeLit{X: Temp, Y: Int(0)}}, Cond{Cond: EqVar{X: Pointer, Y: Temp}}, EndIf{}, EndWhile{})

	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 2, p.Blocks())
}
