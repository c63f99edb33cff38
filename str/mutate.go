package str

import (
	serrors "github.com/wippyai/strkit/errors"
)

// Set replaces the content with a copy of p. An empty or nil p makes the
// string empty without releasing storage.
func (s *Str) Set(p []byte) {
	s.copyCheck(serrors.OpSet)
	s.setBytes(p)
}

// SetString replaces the content with a copy of v.
func (s *Str) SetString(v string) {
	s.copyCheck(serrors.OpSet)
	s.setBytes(stringToBytes(v))
}

// SetRange copies count bytes starting at p[first]. Negative or
// out-of-range first/count are precondition violations.
func (s *Str) SetRange(p []byte, first, count int) {
	s.copyCheck(serrors.OpSet)
	if !s.checkRange(serrors.OpSet, len(p), first, count) {
		return
	}
	s.setBytes(p[first : first+count])
}

func (s *Str) setBytes(src []byte) {
	if len(src) == 0 {
		s.ClearNoFree()
		return
	}

	need := len(src) + 1
	if s.Cap() < need {
		if !s.reserveDiscard(need, dynamicAllocExtra) {
			return
		}
	}

	copy(s.data, src)
	s.data[len(src)] = 0
	s.length = int32(len(src))
	s.setOwns(true)
}

// Append adds a copy of p after the current content.
func (s *Str) Append(p []byte) {
	s.copyCheck(serrors.OpAppend)
	s.appendBytes(p)
}

// AppendString adds a copy of v after the current content.
func (s *Str) AppendString(v string) {
	s.copyCheck(serrors.OpAppend)
	s.appendBytes(stringToBytes(v))
}

// AppendRange appends count bytes starting at p[first].
func (s *Str) AppendRange(p []byte, first, count int) {
	s.copyCheck(serrors.OpAppend)
	if !s.checkRange(serrors.OpAppend, len(p), first, count) {
		return
	}
	s.appendBytes(p[first : first+count])
}

func (s *Str) appendBytes(src []byte) {
	if len(src) == 0 {
		return
	}

	cur := int(s.length)
	need := cur + len(src) + 1
	if s.Cap() < need {
		// Growing may hand the current block back to the allocator while
		// src still points into it. Detach aliased input first.
		if aliases(s.data, src) {
			tmp := make([]byte, len(src))
			copy(tmp, src)
			src = tmp
		}
		if !s.reserve(need, dynamicAllocExtra) {
			return
		}
	}

	copy(s.data[cur:], src)
	s.length = int32(cur + len(src))
	s.data[s.length] = 0
}

func (s *Str) checkRange(op serrors.Op, n, first, count int) bool {
	if first < 0 {
		fail(serrors.NegativeCount(op, first))
		return false
	}
	if count < 0 {
		fail(serrors.NegativeCount(op, count))
		return false
	}
	if first+count > n {
		fail(serrors.OutOfBounds(op, first+count, n))
		return false
	}
	return true
}

// PushBack appends a single character. Amortized O(1): growth goes through
// Reserve, which over-allocates by a small slack.
func (s *Str) PushBack(c byte) {
	s.copyCheck(serrors.OpAppend)
	if !s.reserve(int(s.length)+2, dynamicAllocExtra) {
		return
	}
	s.data[s.length] = c
	s.length++
	s.data[s.length] = 0
}

// PopBack removes the last character. No-op on an empty string.
func (s *Str) PopBack() {
	s.copyCheck(serrors.OpResize)
	if s.length > 0 {
		s.length--
		if s.owns() {
			s.data[s.length] = 0
		}
	}
}

// TrimRight removes trailing whitespace in place.
func (s *Str) TrimRight() *Str {
	s.copyCheck(serrors.OpResize)
	b := s.Bytes()
	n := len(b)
	for n > 0 && isSpace(b[n-1]) {
		n--
	}
	if n != len(b) {
		s.length = int32(n)
		if s.owns() {
			s.data[n] = 0
		}
	}
	return s
}

// TrimLeft removes leading whitespace in place, shifting the remaining
// bytes down. A reference binding is re-sliced instead of written.
func (s *Str) TrimLeft() *Str {
	s.copyCheck(serrors.OpResize)
	b := s.Bytes()
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	if i == 0 {
		return s
	}

	n := len(b) - i
	if s.owns() {
		copy(s.data, s.data[i:i+n]) // overlapping ranges; copy handles the forward move
		s.data[n] = 0
	} else {
		s.data = s.data[i:]
	}
	s.length = int32(n)
	return s
}

// Trim removes leading and trailing whitespace in place.
func (s *Str) Trim() *Str {
	return s.TrimRight().TrimLeft()
}

// ToUpper maps the content to upper case in place, one byte at a time.
// A reference binding is promoted to an owned copy first.
func (s *Str) ToUpper() *Str {
	s.copyCheck(serrors.OpSet)
	if !s.promoteForWrite() {
		return s
	}
	for i := 0; i < int(s.length); i++ {
		s.data[i] = upperASCII(s.data[i])
	}
	return s
}

// ToLower maps the content to lower case in place, one byte at a time.
// A reference binding is promoted to an owned copy first.
func (s *Str) ToLower() *Str {
	s.copyCheck(serrors.OpSet)
	if !s.promoteForWrite() {
		return s
	}
	for i := 0; i < int(s.length); i++ {
		s.data[i] = lowerASCII(s.data[i])
	}
	return s
}

// promoteForWrite turns a non-owning binding into an owned copy so an
// in-place mutation cannot touch caller memory. It reports false when the
// binding is too large to own, leaving it untouched.
func (s *Str) promoteForWrite() bool {
	if !s.owns() && s.length > 0 {
		return s.reserve(int(s.length)+1, dynamicAllocExtra)
	}
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
