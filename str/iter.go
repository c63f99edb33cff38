package str

import "iter"

// Chars returns an iterator over (index, byte) pairs of the content.
// The iteration bounds are captured when iteration starts; mutating the
// string mid-iteration is the caller's hazard.
func (s *Str) Chars() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		b := s.Bytes()
		for i := 0; i < len(b); i++ {
			if !yield(i, b[i]) {
				return
			}
		}
	}
}
