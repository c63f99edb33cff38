package str

import (
	"strings"
	"testing"

	serrors "github.com/wippyai/strkit/errors"
)

// countingAllocator wraps the default allocator and counts Alloc/Free
// calls, so tests can pin down exactly when the engine touches the heap.
type countingAllocator struct {
	allocs int
	frees  int
}

func (a *countingAllocator) Alloc(n int) []byte {
	a.allocs++
	return make([]byte, n)
}

func (a *countingAllocator) Free(p []byte) {
	a.frees++
}

func withCountingAllocator(t *testing.T) *countingAllocator {
	t.Helper()
	a := &countingAllocator{}
	SetAllocator(a)
	t.Cleanup(func() { SetAllocator(nil) })
	return a
}

// recyclingAllocator scribbles over freed blocks, the way a pooling
// allocator handing memory to the next caller would.
type recyclingAllocator struct {
	countingAllocator
}

func (a *recyclingAllocator) Free(p []byte) {
	for i := range p {
		p[i] = 0xAA
	}
	a.countingAllocator.Free(p)
}

// captureAsserts replaces the panicking assert hook with a recorder.
func captureAsserts(t *testing.T) *[]error {
	t.Helper()
	var got []error
	SetAssertHandler(func(err error) { got = append(got, err) })
	t.Cleanup(func() { SetAssertHandler(nil) })
	return &got
}

// checkTerminated verifies invariant 1: data[length] == 0 whenever the
// instance owns its buffer.
func checkTerminated(t *testing.T, s *Str) {
	t.Helper()
	if !s.OwnsBuffer() {
		return
	}
	if s.data == nil {
		if s.Len() != 0 {
			t.Fatalf("owned instance with nil data and length %d", s.Len())
		}
		return
	}
	if s.data[s.Len()] != 0 {
		t.Fatalf("missing terminator: data[%d] = %q", s.Len(), s.data[s.Len()])
	}
}

func TestZeroValue(t *testing.T) {
	var s Str

	if s.Len() != 0 || !s.Empty() {
		t.Fatal("zero value should be empty")
	}
	if s.Cap() != 0 {
		t.Fatalf("zero value capacity = %d, want 0", s.Cap())
	}
	if s.OwnsBuffer() {
		t.Fatal("zero value should not own a buffer")
	}
	if s.UsingLocalBuffer() {
		t.Fatal("zero value has no local buffer")
	}
	if s.Valid() {
		t.Fatal("zero value is not valid (empty)")
	}
	if s.Bytes() != nil {
		t.Fatal("zero value Bytes() should be nil")
	}
	if s.String() != "" {
		t.Fatal("zero value String() should be empty")
	}
}

func TestSetRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"hello",
		"filename.h",
		strings.Repeat("x", 100),
		strings.Repeat("yz", 500),
		" spaced out ",
	}

	for _, in := range inputs {
		var s Str
		s.SetString(in)
		if s.String() != in {
			t.Fatalf("round trip failed: got %q, want %q", s.String(), in)
		}
		if s.Len() != len(in) {
			t.Fatalf("Len() = %d, want %d", s.Len(), len(in))
		}
		if !s.OwnsBuffer() {
			t.Fatal("Set should leave the instance owning")
		}
		checkTerminated(t, &s)
	}
}

func TestSetEmptyMakesEmpty(t *testing.T) {
	s := New("something")
	before := s.Cap()

	s.SetString("")
	if !s.Empty() {
		t.Fatal("set with empty source should empty the string")
	}
	if s.Cap() != before {
		t.Fatal("set with empty source should not release storage")
	}
	checkTerminated(t, s)
}

func TestSetRange(t *testing.T) {
	src := []byte("hello world")

	var s Str
	s.SetRange(src, 6, 5)
	if s.String() != "world" {
		t.Fatalf("SetRange = %q, want %q", s.String(), "world")
	}

	s.SetRange(src, 0, 0)
	if !s.Empty() {
		t.Fatal("zero count should empty the string")
	}
}

func TestSetRangePreconditions(t *testing.T) {
	got := captureAsserts(t)
	src := []byte("abc")

	var s Str
	s.SetRange(src, -1, 1)
	s.SetRange(src, 0, -1)
	s.SetRange(src, 2, 5)

	if len(*got) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(*got))
	}
}

func TestAppend(t *testing.T) {
	var s Str
	s.SetString("file")
	s.AppendString("name")
	s.Append([]byte(".h"))

	if s.String() != "filename.h" {
		t.Fatalf("append result = %q", s.String())
	}
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	checkTerminated(t, &s)

	s.AppendString("")
	if s.String() != "filename.h" {
		t.Fatal("appending empty should be a no-op")
	}
}

func TestSelfAppendWithinCapacity(t *testing.T) {
	s := New("repeat")
	s.Reserve(32)
	s.Append(s.Bytes())
	if s.String() != "repeatrepeat" {
		t.Fatalf("self append = %q", s.String())
	}
	checkTerminated(t, s)
}

func TestSelfAppendSurvivesRecycledBlocks(t *testing.T) {
	a := &recyclingAllocator{}
	SetAllocator(a)
	t.Cleanup(func() { SetAllocator(nil) })

	// The growth below replaces the block the source view points into.
	s := New("abcdefghij0123456789")
	s.Append(s.Bytes())

	if s.String() != "abcdefghij0123456789abcdefghij0123456789" {
		t.Fatalf("self append = %q", s.String())
	}
	checkTerminated(t, s)
	if a.frees != 1 {
		t.Fatalf("frees = %d, want 1", a.frees)
	}
}

func TestSelfAppendRangeSurvivesRecycledBlocks(t *testing.T) {
	a := &recyclingAllocator{}
	SetAllocator(a)
	t.Cleanup(func() { SetAllocator(nil) })

	s := New("abcdefghij0123456789")
	s.AppendRange(s.Bytes(), 10, 10)

	if s.String() != "abcdefghij01234567890123456789" {
		t.Fatalf("self append range = %q", s.String())
	}
	checkTerminated(t, s)
}

func TestAppendRange(t *testing.T) {
	var s Str
	s.SetString("ab")
	s.AppendRange([]byte("xyzw"), 1, 2)
	if s.String() != "abyz" {
		t.Fatalf("AppendRange = %q, want %q", s.String(), "abyz")
	}
}

func TestPushPopBack(t *testing.T) {
	var s Str
	for _, c := range []byte("abc") {
		s.PushBack(c)
	}
	if s.String() != "abc" {
		t.Fatalf("after pushes: %q", s.String())
	}
	checkTerminated(t, &s)

	s.PopBack()
	if s.String() != "ab" {
		t.Fatalf("after pop: %q", s.String())
	}
	checkTerminated(t, &s)

	s.PopBack()
	s.PopBack()
	s.PopBack() // extra pop on empty is a no-op
	if !s.Empty() {
		t.Fatal("expected empty after popping everything")
	}
}

func TestAtSetAt(t *testing.T) {
	s := New("abc")

	if s.At(0) != 'a' || s.At(2) != 'c' {
		t.Fatal("At returned wrong bytes")
	}

	s.SetAt(1, 'B')
	if s.String() != "aBc" {
		t.Fatalf("after SetAt: %q", s.String())
	}

	got := captureAsserts(t)
	s.At(3)
	s.At(-1)
	s.SetAt(3, 'x')
	if len(*got) != 3 {
		t.Fatalf("expected 3 bounds violations, got %d", len(*got))
	}
}

func TestClone(t *testing.T) {
	a := New("shared?")
	b := a.Clone()

	b.SetString("independent")
	if a.String() != "shared?" {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestCopyGuard(t *testing.T) {
	got := captureAsserts(t)

	a := New("pinned")
	b := *a // illegal copy of a non-zero Str
	b.SetString("boom")

	if len(*got) != 1 {
		t.Fatalf("expected 1 copied-value violation, got %d", len(*got))
	}
	serr, ok := (*got)[0].(*serrors.Error)
	if !ok || serr.Kind != serrors.KindCopiedValue {
		t.Fatalf("unexpected violation: %v", (*got)[0])
	}
}

func TestValid(t *testing.T) {
	var s Str
	if s.Valid() {
		t.Fatal("empty unbound string is not valid")
	}
	s.SetString("x")
	if !s.Valid() {
		t.Fatal("non-empty string is valid")
	}
	s.ClearNoFree()
	if s.Valid() {
		t.Fatal("emptied string is not valid")
	}
}

func TestChars(t *testing.T) {
	s := New("abc")
	var collected []byte
	for i, c := range s.Chars() {
		if int(s.At(i)) != int(c) {
			t.Fatalf("index mismatch at %d", i)
		}
		collected = append(collected, c)
	}
	if string(collected) != "abc" {
		t.Fatalf("iterated %q", collected)
	}

	// early break
	n := 0
	for range s.Chars() {
		n++
		break
	}
	if n != 1 {
		t.Fatal("break should stop iteration")
	}
}
