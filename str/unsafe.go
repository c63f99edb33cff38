package str

import "unsafe"

// stringToBytes returns a byte view of v without copying. The result is
// read-only: writes through it are undefined. Used for comparisons and
// reference bindings, both of which never mutate the view.
func stringToBytes(v string) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(v), len(v))
}

// aliases reports whether p's first byte lies inside buf. Appends that
// read from the buffer about to be replaced must detach their input
// before the old block goes back to the allocator.
func aliases(buf, p []byte) bool {
	if len(buf) == 0 || len(p) == 0 {
		return false
	}
	b := uintptr(unsafe.Pointer(&buf[0]))
	q := uintptr(unsafe.Pointer(&p[0]))
	return q >= b && q < b+uintptr(len(buf))
}

// noescape hides a pointer from escape analysis. The address pin in
// copyCheck must not force every Str onto the heap.
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0) //nolint:staticcheck
}
