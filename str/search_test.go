package str

import (
	"testing"
)

func TestIndexByte(t *testing.T) {
	s := New("abcabc")

	if got := s.IndexByte('b'); got != 1 {
		t.Fatalf("IndexByte('b') = %d, want 1", got)
	}
	if got := s.LastIndexByte('b'); got != 4 {
		t.Fatalf("LastIndexByte('b') = %d, want 4", got)
	}
	if got := s.IndexByte('z'); got != -1 {
		t.Fatalf("IndexByte('z') = %d, want -1", got)
	}
}

func TestIndexByteTerminator(t *testing.T) {
	// Searching for the terminator is a special case: it reports the
	// content length, even for bindings that carry no terminator at all.
	s := New("abc")
	if got := s.IndexByte(0); got != 3 {
		t.Fatalf("IndexByte(0) = %d, want 3", got)
	}

	r := NewRef([]byte("xyzw"))
	if got := r.IndexByte(0); got != 4 {
		t.Fatalf("ref IndexByte(0) = %d, want 4", got)
	}

	var empty Str
	if got := empty.IndexByte(0); got != 0 {
		t.Fatalf("empty IndexByte(0) = %d, want 0", got)
	}
}

func TestIndexSubstring(t *testing.T) {
	s := New("the quick brown fox, the end")

	if got := s.Index("the"); got != 0 {
		t.Fatalf("Index = %d, want 0", got)
	}
	if got := s.LastIndex("the"); got != 21 {
		t.Fatalf("LastIndex = %d, want 21", got)
	}
	if got := s.Index("missing"); got != -1 {
		t.Fatalf("Index(missing) = %d, want -1", got)
	}
	if got := s.Index(""); got != -1 {
		t.Fatal("empty substring never matches")
	}
}

func TestIndexAny(t *testing.T) {
	s := New("key=value;next")

	if got := s.IndexAny(";="); got != 3 {
		t.Fatalf("IndexAny = %d, want 3", got)
	}
	if got := s.IndexAny("#@"); got != -1 {
		t.Fatalf("IndexAny = %d, want -1", got)
	}
	if got := s.IndexAny(""); got != -1 {
		t.Fatal("empty charset never matches")
	}
}

func TestPrefixSuffix(t *testing.T) {
	s := New("filename.h")

	if !s.HasPrefix("file") {
		t.Fatal("expected prefix match")
	}
	if s.HasPrefix("name") {
		t.Fatal("unexpected prefix match")
	}
	if !s.HasSuffix(".h") {
		t.Fatal("expected suffix match")
	}
	if s.HasSuffix(".hpp") {
		t.Fatal("unexpected suffix match")
	}
	if !s.HasSuffix("filename.h") {
		t.Fatal("the whole content is its own suffix")
	}
	if s.HasPrefix("") || s.HasSuffix("") {
		t.Fatal("empty pattern never matches")
	}

	var empty Str
	if empty.HasPrefix("x") || empty.HasSuffix("x") {
		t.Fatal("empty string matches nothing")
	}
}

func TestCompare(t *testing.T) {
	a := New("apple")
	b := New("banana")

	if a.Compare(b) >= 0 {
		t.Fatal("apple should sort before banana")
	}
	if b.Compare(a) <= 0 {
		t.Fatal("banana should sort after apple")
	}
	if a.Compare(a) != 0 {
		t.Fatal("self comparison should be 0")
	}
	if a.CompareString("apple") != 0 {
		t.Fatal("CompareString mismatch")
	}
	if !a.EqualString("apple") || a.EqualString("apples") {
		t.Fatal("EqualString mismatch")
	}
	if !a.Equal(New("apple")) {
		t.Fatal("Equal mismatch")
	}
}

func TestCompareNoCase(t *testing.T) {
	if CompareNoCase("Hello", "hello") != 0 {
		t.Fatal("case fold failed")
	}
	if CompareNoCase("ABC", "abd") >= 0 {
		t.Fatal("abc should sort before abd, case folded")
	}
	if CompareNoCase("long", "lo") <= 0 {
		t.Fatal("the longer string sorts after its prefix")
	}

	s := New("MiXeD")
	if s.CompareNoCaseString("mixed") != 0 {
		t.Fatal("CompareNoCaseString failed")
	}
	if s.CompareNoCase(New("MIXED")) != 0 {
		t.Fatal("CompareNoCase failed")
	}
}
