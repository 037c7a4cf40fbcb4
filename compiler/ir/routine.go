package ir

type (
	// Routine is a library operation of the target language.
	Routine interface {
		Name() string
		Args() []Var
	}

	ArrayReplace struct {
		Array Var
		Index Var
		Value Var
	}

	ArrayPush struct {
		Array Var
		Index Var
		Value Var
	}

	ArrayPop struct {
		Array Var
		Index Var
	}

	ArrayLength struct {
		Array Var
	}

	CharToInt struct {
		X Var
	}

	IntToChar struct {
		X Var
	}

	PutChar struct {
		X Var
	}

	ReadLine struct{}
)

func (ArrayReplace) Name() string { return "ArrayReplace" }
func (ArrayPush) Name() string    { return "ArrayPush" }
func (ArrayPop) Name() string     { return "ArrayPop" }
func (ArrayLength) Name() string  { return "ArrayLength" }
func (CharToInt) Name() string    { return "CharToInt" }
func (IntToChar) Name() string    { return "IntToChar" }
func (PutChar) Name() string      { return "PutChar" }
func (ReadLine) Name() string     { return "ReadLine" }

func (f ArrayReplace) Args() []Var { return []Var{f.Array, f.Index, f.Value} }
func (f ArrayPush) Args() []Var    { return []Var{f.Array, f.Index, f.Value} }
func (f ArrayPop) Args() []Var     { return []Var{f.Array, f.Index} }
func (f ArrayLength) Args() []Var  { return []Var{f.Array} }
func (f CharToInt) Args() []Var    { return []Var{f.X} }
func (f IntToChar) Args() []Var    { return []Var{f.X} }
func (f PutChar) Args() []Var      { return []Var{f.X} }
func (ReadLine) Args() []Var       { return nil }
