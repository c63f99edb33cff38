package str

import (
	serrors "github.com/wippyai/strkit/errors"
)

// dynamicAllocExtra is the slack added to heap blocks so short bursts of
// appends after a reservation do not reallocate immediately.
const dynamicAllocExtra = 16

// Reserve guarantees Cap() >= n on return, preserving existing content.
// Capacity never shrinks. A request that fits the embedded local buffer
// re-enters local mode; anything larger goes to a heap block with a small
// slack. Requests beyond MaxCapacity are a limit violation and leave the
// instance unchanged.
func (s *Str) Reserve(n int) {
	s.copyCheck(serrors.OpReserve)
	s.reserve(n, dynamicAllocExtra)
}

// ReserveDiscard gives the same capacity guarantee as Reserve but resets
// the length to 0 and skips copying old content. Used when the caller will
// fully overwrite the buffer.
func (s *Str) ReserveDiscard(n int) {
	s.copyCheck(serrors.OpReserve)
	s.reserveDiscard(n, dynamicAllocExtra)
}

func (s *Str) reserve(n, extra int) bool {
	if n < 0 {
		fail(serrors.NegativeCount(serrors.OpReserve, n))
		return false
	}
	if n > MaxCapacity {
		fail(serrors.CapacityLimit(serrors.OpReserve, n, MaxCapacity))
		return false
	}
	if n <= s.Cap() {
		return true
	}

	// A reference binding can hold more content than the request; size the
	// target for whichever is larger so the preserve-copy below cannot
	// overflow. A binding longer than the capacity limit cannot be
	// reserved on at all.
	if need := int(s.length) + 1; need > n {
		n = need
		if n > MaxCapacity {
			fail(serrors.CapacityLimit(serrors.OpReserve, n, MaxCapacity))
			return false
		}
	}

	var newData []byte
	newCap := n
	if n <= s.localSize() {
		// singleton/reference -> local buffer
		newData = s.local[:s.localSize()]
		newCap = s.localSize()
		debugf("reserve: entering local buffer, cap %d", newCap)
	} else {
		// singleton/reference/local -> heap
		newCap = n + extra
		if newCap > MaxCapacity {
			newCap = MaxCapacity
		}
		newData = allocator.Alloc(newCap)
		debugf("reserve: heap block, cap %d -> %d", s.Cap(), newCap)
	}

	copied := copy(newData, s.Bytes())
	newData[copied] = 0

	s.releaseHeap()
	s.data = newData
	s.setCap(newCap)
	s.setOwns(true)
	return true
}

func (s *Str) reserveDiscard(n, extra int) bool {
	if n < 0 {
		fail(serrors.NegativeCount(serrors.OpReserve, n))
		return false
	}
	if n > MaxCapacity {
		fail(serrors.CapacityLimit(serrors.OpReserve, n, MaxCapacity))
		return false
	}

	if n > s.Cap() {
		s.releaseHeap()
		if n <= s.localSize() {
			// singleton/reference -> local buffer
			s.data = s.local[:s.localSize()]
			s.setCap(s.localSize())
			debugf("reserve_discard: entering local buffer, cap %d", s.localSize())
		} else {
			// singleton/reference/local -> heap
			newCap := n + extra
			if newCap > MaxCapacity {
				newCap = MaxCapacity
			}
			s.data = allocator.Alloc(newCap)
			s.setCap(newCap)
			debugf("reserve_discard: heap block, cap %d", newCap)
		}
		s.setOwns(true)
	}

	// Previous contents are lost.
	s.length = 0
	if s.owns() && len(s.data) > 0 {
		s.data[0] = 0
	}
	return true
}

// ShrinkToFit reallocates a heap-owned, over-allocated buffer down to
// exactly Len()+1 slots. No-op in every other storage state.
func (s *Str) ShrinkToFit() {
	s.copyCheck(serrors.OpReserve)
	if !s.owns() || s.UsingLocalBuffer() {
		return
	}

	newCap := int(s.length) + 1
	if s.Cap() <= newCap {
		return
	}

	newData := allocator.Alloc(newCap)
	copy(newData, s.data[:newCap])
	allocator.Free(s.data)

	s.data = newData
	s.setCap(newCap)
	debugf("shrink_to_fit: cap -> %d", newCap)
}

// Clear releases any heap allocation, then re-enters local mode when a
// local buffer exists, or returns to the unbound empty state otherwise.
func (s *Str) Clear() {
	s.copyCheck(serrors.OpResize)
	s.releaseHeap()

	if n := s.localSize(); n > 0 {
		s.data = s.local[:n]
		s.data[0] = 0
		s.length = 0
		s.setCap(n)
		s.setOwns(true)
	} else {
		s.data = nil
		s.length = 0
		s.setCap(0)
		s.setOwns(false)
	}
}

// ClearNoFree blanks the content without releasing or reallocating
// anything. The storage binding (heap block, local buffer, or reference)
// is kept; a reference is never written through.
func (s *Str) ClearNoFree() {
	s.copyCheck(serrors.OpResize)
	s.length = 0
	if s.owns() && len(s.data) > 0 {
		s.data[0] = 0
	}
}

// Truncate shortens the content to at most maxLen characters. No-op when
// maxLen >= Len(). Never reallocates.
func (s *Str) Truncate(maxLen int) *Str {
	s.copyCheck(serrors.OpResize)
	if maxLen < 0 {
		fail(serrors.NegativeCount(serrors.OpResize, maxLen))
		return s
	}
	if maxLen < int(s.length) {
		s.length = int32(maxLen)
		if s.owns() {
			s.data[maxLen] = 0
		}
	}
	return s
}

// Resize sets the content length to n, truncating or padding with fill.
func (s *Str) Resize(n int, fill byte) {
	s.copyCheck(serrors.OpResize)
	if n < 0 {
		fail(serrors.NegativeCount(serrors.OpResize, n))
		return
	}
	if n == 0 {
		s.ClearNoFree()
		return
	}
	cur := int(s.length)
	if n <= cur {
		s.Truncate(n)
		return
	}

	if !s.reserve(n+1, dynamicAllocExtra) {
		return
	}
	for i := cur; i < n; i++ {
		s.data[i] = fill
	}
	s.length = int32(n)
	s.data[n] = 0
}

// ResizeDiscard sets the content to n copies of fill, discarding prior
// content and skipping the preserve-copy on any storage transition.
func (s *Str) ResizeDiscard(n int, fill byte) {
	s.copyCheck(serrors.OpResize)
	if n < 0 {
		fail(serrors.NegativeCount(serrors.OpResize, n))
		return
	}
	if n == 0 {
		s.ClearNoFree()
		return
	}

	if !s.reserveDiscard(n+1, dynamicAllocExtra) {
		return
	}
	for i := 0; i < n; i++ {
		s.data[i] = fill
	}
	s.length = int32(n)
	s.data[n] = 0
}
