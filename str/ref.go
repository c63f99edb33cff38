package str

import (
	"bytes"

	serrors "github.com/wippyai/strkit/errors"
)

// Reference mode wraps externally owned bytes with zero copying and zero
// lifetime tracking. The length is snapshotted eagerly at bind time:
// later mutation of the referenced bytes is not observed. The engine
// never writes through a reference; keeping the memory valid for the
// binding's lifetime is entirely the caller's contract.

// NewRef returns a Str referencing src without copying it.
func NewRef(src []byte) *Str {
	s := &Str{}
	s.SetRef(src)
	return s
}

// NewRefString returns a Str referencing v's bytes without copying them.
func NewRefString(v string) *Str {
	s := &Str{}
	s.SetRefString(v)
	return s
}

// SetRef releases any previously owned heap buffer and binds the
// instance to src in non-owning mode: capacity 0, owns false. The
// content length is the position of the first 0 byte in src, or
// len(src) if it carries none. A nil src is a precondition violation.
func (s *Str) SetRef(src []byte) {
	s.setRef(src, 0)
}

// SetRefOffset binds like SetRef, starting at src[first].
func (s *Str) SetRefOffset(src []byte, first int) {
	s.setRef(src, first)
}

// SetRefString binds like SetRef to the bytes of v.
func (s *Str) SetRefString(v string) {
	s.copyCheck(serrors.OpBind)
	if len(v) == 0 {
		s.ClearNoFree()
		return
	}
	s.bind(stringToBytes(v))
}

func (s *Str) setRef(src []byte, first int) {
	s.copyCheck(serrors.OpBind)
	if src == nil {
		fail(serrors.NilSource(serrors.OpBind))
		return
	}
	if first < 0 || first > len(src) {
		fail(serrors.OutOfBounds(serrors.OpBind, first, len(src)))
		return
	}

	view := src[first:]
	if len(view) == 0 || view[0] == 0 {
		// Binding to an empty string empties the instance instead.
		s.ClearNoFree()
		return
	}
	s.bind(view)
}

func (s *Str) bind(view []byte) {
	n := bytes.IndexByte(view, 0)
	if n < 0 {
		n = len(view)
	}

	s.releaseHeap()
	s.data = view
	s.length = int32(n)
	s.setCap(0)
	s.setOwns(false)
	debugf("set_ref: bound %d chars, non-owning", n)
}
