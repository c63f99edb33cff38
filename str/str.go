package str

import (
	"unsafe"

	serrors "github.com/wippyai/strkit/errors"
)

// Packed header field widths. Capacity, local-buffer size and the
// ownership flag share one 32-bit word so the header stays within two
// machine words plus the slice bookkeeping Go adds on top.
const (
	capacityBits  = 21
	localSizeBits = 10

	// MaxCapacity is the largest representable capacity in characters,
	// including the terminator slot (just under 2 MiB).
	MaxCapacity = 1<<capacityBits - 1

	// MaxLocalSize is the largest embeddable local buffer in bytes.
	MaxLocalSize = 1<<localSizeBits - 1

	localShift = capacityBits
	ownsFlag   = uint32(1) << (capacityBits + localSizeBits)
)

// Str is a mutable, null-terminated byte string with small-string
// optimization. The zero value is an empty string bound to no storage.
// A non-zero Str must not be copied by value; see the package docs.
type Str struct {
	data   []byte // active buffer window, sized to capacity; nil when empty and unbound
	local  []byte // embedded local buffer of a sized variant; nil for the plain variant
	addr   *Str   // of receiver, to detect copies by value
	length int32  // character count, excluding the terminator
	pack   uint32 // capacity | localSize<<localShift | ownsFlag
}

// New returns a Str owning a copy of v.
func New(v string) *Str {
	s := &Str{}
	s.SetString(v)
	return s
}

// FromBytes returns a Str owning a copy of p.
func FromBytes(p []byte) *Str {
	s := &Str{}
	s.Set(p)
	return s
}

// Len returns the character count, excluding the terminator.
func (s *Str) Len() int { return int(s.length) }

// Cap returns the usable character slots in the active buffer, including
// the terminator slot. It is 0 for the zero value and in reference mode.
func (s *Str) Cap() int { return int(s.pack & MaxCapacity) }

// Empty reports whether the string has no content.
func (s *Str) Empty() bool { return s.length == 0 }

// Valid reports whether the string is bound to storage and non-empty.
func (s *Str) Valid() bool { return s.data != nil && s.length != 0 }

// OwnsBuffer reports whether the active buffer must be released by this
// instance. It is false for the zero value and in reference mode.
func (s *Str) OwnsBuffer() bool { return s.owns() }

// UsingLocalBuffer reports whether the content currently lives in the
// instance's embedded local buffer.
func (s *Str) UsingLocalBuffer() bool {
	return s.localSize() != 0 && len(s.data) > 0 && len(s.local) > 0 && &s.data[0] == &s.local[0]
}

// LocalSize returns the size of the embedded local buffer, or 0 for the
// plain variant. Fixed for the lifetime of the instance.
func (s *Str) LocalSize() int { return s.localSize() }

// Bytes returns the current content as a view into the active buffer.
// The view is invalidated by any subsequent mutation.
func (s *Str) Bytes() []byte {
	if s.data == nil {
		return nil
	}
	return s.data[:s.length]
}

// String returns a copy of the content as a Go string.
func (s *Str) String() string { return string(s.Bytes()) }

// At returns the byte at index i. Out-of-bounds access is a precondition
// violation.
func (s *Str) At(i int) byte {
	if i < 0 || i >= int(s.length) {
		fail(serrors.OutOfBounds(serrors.OpIndex, i, int(s.length)))
		return 0
	}
	return s.data[i]
}

// SetAt overwrites the byte at index i. Writing through a non-owning
// reference binding is a precondition violation.
func (s *Str) SetAt(i int, c byte) {
	s.copyCheck(serrors.OpIndex)
	if i < 0 || i >= int(s.length) {
		fail(serrors.OutOfBounds(serrors.OpIndex, i, int(s.length)))
		return
	}
	if !s.owns() {
		fail(serrors.RefWrite(serrors.OpIndex))
		return
	}
	s.data[i] = c
}

// Clone returns an independent plain-variant copy of the content.
// Reference bindings are deep-copied.
func (s *Str) Clone() *Str { return FromBytes(s.Bytes()) }

// packed field accessors

func (s *Str) owns() bool     { return s.pack&ownsFlag != 0 }
func (s *Str) localSize() int { return int(s.pack >> localShift & MaxLocalSize) }

func (s *Str) setCap(n int) {
	s.pack = s.pack&^uint32(MaxCapacity) | uint32(n)&MaxCapacity
}

func (s *Str) setOwns(v bool) {
	if v {
		s.pack |= ownsFlag
	} else {
		s.pack &^= ownsFlag
	}
}

// initLocal binds the instance to its embedded local buffer and enters
// local mode. Called exactly once, before any other operation, by the
// sized-variant constructors.
func (s *Str) initLocal(buf []byte) {
	if len(buf) == 0 || len(buf) > MaxLocalSize {
		fail(serrors.LocalSizeLimit(len(buf), MaxLocalSize))
		return
	}
	s.local = buf
	s.data = buf
	s.length = 0
	s.pack = uint32(len(buf)) | uint32(len(buf))<<localShift | ownsFlag
	s.addr = s
	buf[0] = 0
}

// copyCheck pins the instance's address on first mutation and rejects
// later mutation through a value copy, whose header would alias this
// instance's storage. Same discipline as strings.Builder.
func (s *Str) copyCheck(op serrors.Op) {
	if s.addr == nil {
		s.addr = (*Str)(noescape(unsafe.Pointer(s)))
	} else if s.addr != s {
		fail(serrors.CopiedValue(op))
	}
}

// releaseHeap frees the active buffer if and only if it is a heap-owned
// block: never the local buffer, never a reference, never the zero state.
func (s *Str) releaseHeap() {
	if s.owns() && s.data != nil && !s.UsingLocalBuffer() {
		allocator.Free(s.data)
	}
}
