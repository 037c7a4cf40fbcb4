package set

import (
	"math/bits"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Bytes is a set of byte values.
	Bytes struct {
		b [4]uint64
	}
)

func (s *Bytes) Set(v byte) {
	i, j := s.ij(v)

	s.b[i] |= 1 << j
}

// FillSet adds the closed range [l, r].
func (s *Bytes) FillSet(l, r byte) {
	for v := int(l); v <= int(r); v++ {
		s.Set(byte(v))
	}
}

func (s *Bytes) Size() (r int) {
	if s == nil {
		return 0
	}

	for _, c := range s.b {
		r += bits.OnesCount64(c)
	}

	return r
}

// Range calls f for every member in ascending order until f returns false.
func (s *Bytes) Range(f func(v byte) bool) {
	for i, x := range s.b {
		for x != 0 {
			j := bits.TrailingZeros64(x)
			x &^= 1 << j

			if !f(byte(i*64 + j)) {
				return
			}
		}
	}
}

func (s Bytes) TlogAppend(b []byte) []byte {
	var e tlwire.LowEncoder

	b = e.AppendTag(b, tlwire.Array, -1)

	s.Range(func(v byte) bool {
		b = e.AppendInt(b, int(v))

		return true
	})

	b = e.AppendBreak(b)

	return b
}

func (s *Bytes) ij(v byte) (i int, j int) {
	return int(v) / 64, int(v) % 64
}
