package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func members(s *Bytes) (r []byte) {
	s.Range(func(v byte) bool {
		r = append(r, v)
		return true
	})

	return r
}

func TestBytesRangeAscending(t *testing.T) {
	var s Bytes

	for _, v := range []byte{'~', '\n', 200, 0, 'b'} {
		s.Set(v)
	}

	s.FillSet('a', 'c')

	assert.Equal(t, []byte{0, '\n', 'a', 'b', 'c', '~', 200}, members(&s))
	assert.Equal(t, 7, s.Size())
}

func TestBytesFillSetFull(t *testing.T) {
	var s Bytes

	assert.Equal(t, 0, s.Size())
	assert.Empty(t, members(&s))

	s.FillSet(0, 255)

	assert.Equal(t, 256, s.Size())
	assert.Len(t, members(&s), 256)

	var nilp *Bytes
	assert.Equal(t, 0, nilp.Size())
}

func TestBytesRangeStop(t *testing.T) {
	var s Bytes
	s.FillSet('x', 'z')

	n := 0

	s.Range(func(v byte) bool {
		n++
		return v != 'y'
	})

	assert.Equal(t, 2, n)
}

func TestBytesTlogAppend(t *testing.T) {
	var s Bytes
	s.FillSet('a', 'c')

	b := s.TlogAppend(nil)
	assert.NotEmpty(t, b)

	var e Bytes
	assert.Less(t, len(e.TlogAppend(nil)), len(b))
}
