package str

import (
	"bytes"

	serrors "github.com/wippyai/strkit/errors"
)

// Helpers for fixed-size, null-terminated byte buffers that live outside
// the engine (stack arrays, arena slices). They always terminate the
// destination and truncate on overflow instead of failing.

// CopyInto copies src into dst, truncating if dst is too small, and
// always writes a terminator. It returns the number of characters
// written, not counting the terminator. An empty dst is a precondition
// violation.
func CopyInto(dst []byte, src string) int {
	if len(dst) == 0 {
		fail(serrors.OutOfBounds(serrors.OpSet, 0, 0))
		return 0
	}
	n := len(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n
}

// AppendInto appends src after the terminated content already in dst,
// truncating if dst is too small, and always re-terminates. It returns
// the resulting content length. dst must contain a terminator.
func AppendInto(dst []byte, src string) int {
	cur := bytes.IndexByte(dst, 0)
	if cur < 0 {
		fail(serrors.OutOfBounds(serrors.OpAppend, len(dst), len(dst)))
		return 0
	}
	n := len(src)
	if avail := len(dst) - cur - 1; n > avail {
		n = avail
	}
	copy(dst[cur:], src[:n])
	dst[cur+n] = 0
	return cur + n
}

// NextToken scans p for the next token delimited by any byte in delims
// and returns the token together with the remainder to continue scanning
// from. A nil token means no tokens remain. Unlike strtok-style splitting
// it holds no state and never writes into p.
func NextToken(p []byte, delims string) (token, rest []byte) {
	i := 0
	for i < len(p) && isDelim(p[i], delims) {
		i++
	}
	j := i
	for j < len(p) && !isDelim(p[j], delims) {
		j++
	}
	if i == j {
		return nil, nil
	}
	return p[i:j], p[j:]
}

func isDelim(c byte, delims string) bool {
	for i := 0; i < len(delims); i++ {
		if c == delims[i] {
			return true
		}
	}
	return false
}

// SkipLeadingWhitespace returns p with leading whitespace sliced off.
func SkipLeadingWhitespace(p []byte) []byte {
	i := 0
	for i < len(p) && isSpace(p[i]) {
		i++
	}
	return p[i:]
}

// ToUpperASCII maps p to upper case in place and returns p.
func ToUpperASCII(p []byte) []byte {
	for i := range p {
		p[i] = upperASCII(p[i])
	}
	return p
}

// ToLowerASCII maps p to lower case in place and returns p.
func ToLowerASCII(p []byte) []byte {
	for i := range p {
		p[i] = lowerASCII(p[i])
	}
	return p
}
