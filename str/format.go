package str

import (
	serrors "github.com/wippyai/strkit/errors"
)

// Formatted writes go through the replaceable FormatFunc primitive
// (strkit.AppendFormat by default). fmt.Appendf reports the rendered
// length while writing into existing capacity, so formatting is single
// pass: only a result that outgrew the buffer costs a reservation and a
// copy.

// Setf replaces the content with the rendered format. On a formatting
// failure the instance is reset to empty and Setf reports false.
func (s *Str) Setf(format string, args ...any) bool {
	return s.Setfv(format, args)
}

// Setfv is Setf with an explicit argument slice.
func (s *Str) Setfv(format string, args []any) bool {
	s.copyCheck(serrors.OpFormat)

	var dst []byte
	if s.owns() && len(s.data) > 0 {
		dst = s.data[:0]
	}

	out, err := formatFn(dst, format, args)
	if err != nil {
		debugf("setf: formatter failed: %v", err)
		s.ClearNoFree()
		return false
	}

	if len(out) == 0 {
		s.ClearNoFree()
		return true
	}

	need := len(out) + 1
	if sameBacking(out, s.data) {
		// Rendered in place. Growing for the terminator, if required,
		// must preserve the rendered bytes.
		s.length = int32(len(out))
		if need > s.Cap() {
			if !s.reserve(need, dynamicAllocExtra) {
				s.ClearNoFree()
				return false
			}
		}
	} else {
		if !s.reserveDiscard(need, dynamicAllocExtra) {
			s.ClearNoFree()
			return false
		}
		copy(s.data, out)
		s.length = int32(len(out))
	}
	s.data[s.length] = 0
	s.setOwns(true)
	return true
}

// Appendf appends the rendered format after the current content. On a
// formatting failure the instance is reset to empty and Appendf reports
// false.
func (s *Str) Appendf(format string, args ...any) bool {
	return s.Appendfv(format, args)
}

// Appendfv is Appendf with an explicit argument slice.
func (s *Str) Appendfv(format string, args []any) bool {
	s.copyCheck(serrors.OpFormat)

	// Reference content must survive the append; capture it in an owned
	// buffer before formatting.
	if !s.promoteForWrite() {
		s.ClearNoFree()
		return false
	}

	cur := int(s.length)
	var dst []byte
	if s.owns() && len(s.data) > 0 {
		dst = s.data[:cur]
	}

	out, err := formatFn(dst, format, args)
	if err != nil {
		debugf("appendf: formatter failed: %v", err)
		s.ClearNoFree()
		return false
	}

	need := len(out) + 1
	if sameBacking(out, s.data) {
		s.length = int32(len(out))
		if need > s.Cap() {
			if !s.reserve(need, dynamicAllocExtra) {
				s.ClearNoFree()
				return false
			}
		}
	} else {
		// dst was nil (empty instance) or the formatter reallocated.
		// Reserve preserves the first cur bytes; copy the rendered tail.
		if !s.reserve(need, dynamicAllocExtra) {
			s.ClearNoFree()
			return false
		}
		copy(s.data[cur:], out[cur:])
		s.length = int32(len(out))
	}
	s.data[s.length] = 0
	return true
}

// SetfNoGrow renders the format into at most the current capacity,
// truncating rather than reallocating. It reports false only on a
// formatting failure; truncation is detected by comparing lengths.
func (s *Str) SetfNoGrow(format string, args ...any) bool {
	return s.SetfvNoGrow(format, args)
}

// SetfvNoGrow is SetfNoGrow with an explicit argument slice.
func (s *Str) SetfvNoGrow(format string, args []any) bool {
	s.copyCheck(serrors.OpFormat)

	var dst []byte
	if s.owns() && len(s.data) > 0 {
		dst = s.data[:0]
	}

	out, err := formatFn(dst, format, args)
	if err != nil {
		debugf("setf_no_grow: formatter failed: %v", err)
		s.ClearNoFree()
		return false
	}

	if !s.owns() || s.Cap() == 0 {
		// No writable storage; the result is empty.
		s.ClearNoFree()
		return true
	}

	n := len(out)
	if max := s.Cap() - 1; n > max {
		n = max // overflowed the buffer, but still succeeds
	}
	if !sameBacking(out, s.data) {
		copy(s.data, out[:n])
	}
	s.length = int32(n)
	s.data[n] = 0
	return true
}

func sameBacking(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
