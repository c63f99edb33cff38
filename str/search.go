package str

import (
	"bytes"
)

// Search is a linear scan over the content. "Not found" is the -1
// sentinel, never an error. Searching for the terminator byte 0 is a
// documented special case: it returns the string's length.

// IndexByte returns the index of the first occurrence of c, or -1.
func (s *Str) IndexByte(c byte) int {
	if c == 0 {
		return int(s.length)
	}
	return bytes.IndexByte(s.Bytes(), c)
}

// LastIndexByte returns the index of the last occurrence of c, or -1.
func (s *Str) LastIndexByte(c byte) int {
	if c == 0 {
		return int(s.length)
	}
	return bytes.LastIndexByte(s.Bytes(), c)
}

// Index returns the index of the first occurrence of sub, or -1.
// An empty sub never matches.
func (s *Str) Index(sub string) int {
	if s.length == 0 || len(sub) == 0 {
		return -1
	}
	return bytes.Index(s.Bytes(), stringToBytes(sub))
}

// LastIndex returns the index of the last occurrence of sub, or -1.
// An empty sub never matches.
func (s *Str) LastIndex(sub string) int {
	if s.length == 0 || len(sub) == 0 {
		return -1
	}
	return bytes.LastIndex(s.Bytes(), stringToBytes(sub))
}

// IndexAny returns the index of the first byte that appears in charset,
// or -1. The charset is matched byte-wise, not rune-wise.
func (s *Str) IndexAny(charset string) int {
	if s.length == 0 || len(charset) == 0 {
		return -1
	}
	for i, c := range s.Bytes() {
		for j := 0; j < len(charset); j++ {
			if c == charset[j] {
				return i
			}
		}
	}
	return -1
}

// HasPrefix reports whether the content starts with prefix. An empty
// prefix or an empty string reports false.
func (s *Str) HasPrefix(prefix string) bool {
	if s.length == 0 || len(prefix) == 0 || int(s.length) < len(prefix) {
		return false
	}
	return string(s.data[:len(prefix)]) == prefix
}

// HasSuffix reports whether the content ends with suffix. An empty
// suffix or an empty string reports false.
func (s *Str) HasSuffix(suffix string) bool {
	if s.length == 0 || len(suffix) == 0 || int(s.length) < len(suffix) {
		return false
	}
	return string(s.data[int(s.length)-len(suffix):s.length]) == suffix
}

// Compare orders the content against rhs byte-wise.
func (s *Str) Compare(rhs *Str) int {
	return bytes.Compare(s.Bytes(), rhs.Bytes())
}

// CompareString orders the content against rhs byte-wise.
func (s *Str) CompareString(rhs string) int {
	return bytes.Compare(s.Bytes(), stringToBytes(rhs))
}

// Equal reports whether the content matches rhs exactly.
func (s *Str) Equal(rhs *Str) bool {
	return bytes.Equal(s.Bytes(), rhs.Bytes())
}

// EqualString reports whether the content matches rhs exactly.
func (s *Str) EqualString(rhs string) bool {
	return string(s.Bytes()) == rhs
}

// CompareNoCase orders the content against rhs, folding ASCII case.
func (s *Str) CompareNoCase(rhs *Str) int {
	return foldCompare(s.Bytes(), rhs.Bytes())
}

// CompareNoCaseString orders the content against rhs, folding ASCII case.
func (s *Str) CompareNoCaseString(rhs string) int {
	return foldCompare(s.Bytes(), stringToBytes(rhs))
}

// CompareNoCase orders a against b, folding ASCII case byte by byte.
func CompareNoCase(a, b string) int {
	return foldCompare(stringToBytes(a), stringToBytes(b))
}

func foldCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
