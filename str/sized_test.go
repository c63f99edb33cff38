package str

import (
	"strings"
	"testing"
)

func TestSizedVariantsStartLocal(t *testing.T) {
	cases := []struct {
		s    *Str
		size int
	}{
		{&NewStr16().Str, 16},
		{&NewStr32().Str, 32},
		{&NewStr64().Str, 64},
		{&NewStr128().Str, 128},
		{&NewStr256().Str, 256},
		{&NewStr512().Str, 512},
	}

	for _, c := range cases {
		if !c.s.UsingLocalBuffer() {
			t.Fatalf("size %d: expected local mode on construction", c.size)
		}
		if !c.s.OwnsBuffer() {
			t.Fatalf("size %d: local mode owns its storage", c.size)
		}
		if c.s.Cap() != c.size {
			t.Fatalf("size %d: Cap() = %d", c.size, c.s.Cap())
		}
		if c.s.LocalSize() != c.size {
			t.Fatalf("size %d: LocalSize() = %d", c.size, c.s.LocalSize())
		}
		if !c.s.Empty() {
			t.Fatalf("size %d: expected empty", c.size)
		}
	}
}

func TestNewLocalBounds(t *testing.T) {
	s := NewLocal(MaxLocalSize)
	if s.Cap() != MaxLocalSize {
		t.Fatalf("Cap() = %d, want %d", s.Cap(), MaxLocalSize)
	}

	got := captureAsserts(t)
	NewLocal(0)
	NewLocal(-1)
	NewLocal(MaxLocalSize + 1)
	if len(*got) != 3 {
		t.Fatalf("expected 3 violations, got %d", len(*got))
	}
}

func TestLocalCapacityHoldsSizeMinusOneChars(t *testing.T) {
	s := NewStr16()
	s.SetString("123456789012345") // 15 chars + terminator exactly fills 16
	if !s.UsingLocalBuffer() {
		t.Fatal("15 chars should still fit the 16-byte buffer")
	}

	s.PushBack('!') // 16 chars spill
	if s.UsingLocalBuffer() {
		t.Fatal("16 chars cannot fit a 16-byte buffer with its terminator")
	}
	if s.String() != "123456789012345!" {
		t.Fatalf("content after spill = %q", s.String())
	}
}

func TestSpillAndReturn(t *testing.T) {
	a := withCountingAllocator(t)

	s := NewStr32()
	s.SetString(strings.Repeat("q", 100))
	if s.UsingLocalBuffer() || a.allocs != 1 {
		t.Fatalf("expected one heap spill, allocs = %d", a.allocs)
	}

	s.Clear()
	if !s.UsingLocalBuffer() {
		t.Fatal("Clear should return to the local buffer")
	}
	if a.frees != 1 {
		t.Fatalf("frees = %d, the heap block should be released", a.frees)
	}

	s.SetString("short again")
	if !s.UsingLocalBuffer() || a.allocs != 1 {
		t.Fatal("short content after Clear should reuse the local buffer")
	}
}

func TestLocalModeAddressIdentity(t *testing.T) {
	s := NewStr64()
	s.SetString("x")
	if &s.Bytes()[0] != &s.buf[0] {
		t.Fatal("local mode content should live in the embedded array")
	}
}

func TestSmallReserveEntersLocalBuffer(t *testing.T) {
	a := withCountingAllocator(t)

	s := NewStr128()
	s.SetRefString("elsewhere") // leaves local mode without freeing it
	s.Reserve(20)

	if !s.UsingLocalBuffer() {
		t.Fatal("a reservation below the local size should re-enter local mode")
	}
	if s.String() != "elsewhere" {
		t.Fatalf("content lost across reserve: %q", s.String())
	}
	if a.allocs != 0 {
		t.Fatalf("allocs = %d, want 0", a.allocs)
	}
	checkTerminated(t, &s.Str)
}
