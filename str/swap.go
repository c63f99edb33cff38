package str

import (
	serrors "github.com/wippyai/strkit/errors"
)

// Swap exchanges the contents of a and b. When neither side currently
// resides in its embedded local buffer the exchange is an O(1) swap of
// the header fields; otherwise a full content copy is performed, because
// a local buffer's address is tied to its owning instance. The local
// buffer binding and its size never move between instances, so swapping
// across differently sized variants is safe by construction.
func Swap(a, b *Str) {
	a.copyCheck(serrors.OpSwap)
	b.copyCheck(serrors.OpSwap)
	if a == b {
		return
	}

	if a.UsingLocalBuffer() || b.UsingLocalBuffer() {
		var tmp Str
		tmp.Set(b.Bytes())
		b.Set(a.Bytes())
		a.Set(tmp.Bytes())
		return
	}

	// Capacity and ownership travel with the buffer; the local-size bits
	// stay with their instance.
	a.data, b.data = b.data, a.data
	a.length, b.length = b.length, a.length

	aCap, bCap := a.Cap(), b.Cap()
	a.setCap(bCap)
	b.setCap(aCap)

	aOwns, bOwns := a.owns(), b.owns()
	a.setOwns(bOwns)
	b.setOwns(aOwns)
}

// Take moves src's contents into s, leaving src empty. Heap blocks and
// reference bindings are stolen in O(1); local-buffer content is copied,
// since the buffer cannot leave its instance.
func (s *Str) Take(src *Str) {
	s.copyCheck(serrors.OpSwap)
	src.copyCheck(serrors.OpSwap)
	if s == src {
		return
	}

	if src.UsingLocalBuffer() {
		s.Set(src.Bytes())
		src.ClearNoFree()
		return
	}

	s.releaseHeap()
	s.data = src.data
	s.length = src.length
	s.setCap(src.Cap())
	s.setOwns(src.owns())

	// Detach src from the stolen buffer. Its local buffer, if any, is
	// re-entered on the next Clear or reservation.
	src.data = nil
	src.length = 0
	src.setCap(0)
	src.setOwns(false)
}
