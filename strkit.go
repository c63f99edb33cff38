package strkit

import "fmt"

// Allocator provisions and releases character buffers for the string engine.
// The default allocator uses the Go heap and relies on the garbage collector,
// making Free a no-op. Embedding applications can install a pooling allocator
// via str.SetAllocator to recycle heap blocks explicitly.
type Allocator interface {
	// Alloc returns a zeroed buffer with len(buf) == n.
	Alloc(n int) []byte
	// Free releases a buffer previously returned by Alloc.
	Free(buf []byte)
}

// HeapAllocator is the default Allocator. Free is a no-op; the garbage
// collector reclaims released buffers.
type HeapAllocator struct{}

// Alloc returns a zeroed buffer of n bytes.
func (HeapAllocator) Alloc(n int) []byte { return make([]byte, n) }

// Free is a no-op.
func (HeapAllocator) Free([]byte) {}

// FormatFunc is the formatted-write primitive consumed by the engine.
// It appends the rendered output to dst and returns the extended slice,
// or an error if the payload cannot be encoded. The returned slice must
// contain dst's bytes unchanged as its prefix.
type FormatFunc func(dst []byte, format string, args []any) ([]byte, error)

// AppendFormat is the default FormatFunc, backed by fmt.Appendf.
// It never fails.
func AppendFormat(dst []byte, format string, args []any) ([]byte, error) {
	return fmt.Appendf(dst, format, args...), nil
}
