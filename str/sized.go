package str

import (
	serrors "github.com/wippyai/strkit/errors"
)

// Sized variants embed a fixed-size byte array directly in the instance.
// Their constructors bind the header into local mode before anything
// else, so content below the buffer size never touches the allocator.
// Go has no constant generics, so the frequently used power-of-two sizes
// get concrete types and NewLocal covers arbitrary sizes with a single
// construction-time allocation.

// NewLocal returns a Str with an n-byte local buffer, 1 <= n <= 1023.
// The buffer is allocated once here; content shorter than n never
// allocates again, and Clear returns to it.
func NewLocal(n int) *Str {
	s := &Str{}
	if n <= 0 || n > MaxLocalSize {
		fail(serrors.LocalSizeLimit(n, MaxLocalSize))
		return s
	}
	s.initLocal(make([]byte, n))
	return s
}

// Str16 is a string with a 16-byte embedded buffer.
type Str16 struct {
	Str
	buf [16]byte
}

// NewStr16 constructs an empty Str16 in local mode.
func NewStr16() *Str16 {
	s := &Str16{}
	s.initLocal(s.buf[:])
	return s
}

// Str32 is a string with a 32-byte embedded buffer.
type Str32 struct {
	Str
	buf [32]byte
}

// NewStr32 constructs an empty Str32 in local mode.
func NewStr32() *Str32 {
	s := &Str32{}
	s.initLocal(s.buf[:])
	return s
}

// Str64 is a string with a 64-byte embedded buffer.
type Str64 struct {
	Str
	buf [64]byte
}

// NewStr64 constructs an empty Str64 in local mode.
func NewStr64() *Str64 {
	s := &Str64{}
	s.initLocal(s.buf[:])
	return s
}

// Str128 is a string with a 128-byte embedded buffer.
type Str128 struct {
	Str
	buf [128]byte
}

// NewStr128 constructs an empty Str128 in local mode.
func NewStr128() *Str128 {
	s := &Str128{}
	s.initLocal(s.buf[:])
	return s
}

// Str256 is a string with a 256-byte embedded buffer.
type Str256 struct {
	Str
	buf [256]byte
}

// NewStr256 constructs an empty Str256 in local mode.
func NewStr256() *Str256 {
	s := &Str256{}
	s.initLocal(s.buf[:])
	return s
}

// Str512 is a string with a 512-byte embedded buffer.
type Str512 struct {
	Str
	buf [512]byte
}

// NewStr512 constructs an empty Str512 in local mode.
func NewStr512() *Str512 {
	s := &Str512{}
	s.initLocal(s.buf[:])
	return s
}
