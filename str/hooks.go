package str

import (
	"github.com/wippyai/strkit"
	serrors "github.com/wippyai/strkit/errors"
)

// AssertHandler receives precondition and limit violations. The default
// handler panics with the structured *errors.Error: the engine prefers
// crashing over silent corruption.
type AssertHandler func(err error)

var (
	assertHandler AssertHandler     = defaultAssert
	allocator     strkit.Allocator  = strkit.HeapAllocator{}
	formatFn      strkit.FormatFunc = strkit.AppendFormat
)

func defaultAssert(err error) { panic(err) }

// SetAssertHandler replaces the assertion hook. Passing nil restores the
// panicking default. A handler that returns instead of halting leaves the
// engine past a violated precondition: behavior from there is a documented
// trust boundary, not a supported mode.
func SetAssertHandler(h AssertHandler) {
	if h == nil {
		h = defaultAssert
	}
	assertHandler = h
}

// SetAllocator replaces the allocation/free pair used for heap-owned
// buffers. Passing nil restores the default Go-heap allocator.
// Must be installed before any instance grows onto the heap.
func SetAllocator(a strkit.Allocator) {
	if a == nil {
		a = strkit.HeapAllocator{}
	}
	allocator = a
}

// SetFormatter replaces the formatted-write primitive used by Setf and
// friends. Passing nil restores the fmt-based default.
func SetFormatter(f strkit.FormatFunc) {
	if f == nil {
		f = strkit.AppendFormat
	}
	formatFn = f
}

func fail(err *serrors.Error) {
	assertHandler(err)
}
