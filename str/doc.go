// Package str implements the string storage engine: a mutable,
// null-terminated byte string that avoids heap allocation for content
// below a caller-chosen threshold and transparently falls back to heap
// storage for larger content.
//
// # Representation
//
// Every Str carries a compact header: the active buffer, the logical
// length, and a packed 32-bit word holding capacity (21 bits, max ~2 MiB),
// local-buffer size (10 bits, max 1023) and the ownership flag (1 bit).
// Capacity counts usable character slots including the terminator slot.
// The limits are enforced at construction and reservation time, never
// silently truncated.
//
// A Str is always in exactly one of four storage states:
//
//	singleton  empty, no storage bound (the zero value)
//	local      content lives in a buffer embedded in the instance
//	heap       content lives in an allocator-provided block
//	reference  non-owning view of caller-supplied bytes
//
// Every mutating operation funnels through Reserve/ReserveDiscard, which
// decide the transitions between these states. Clear releases heap storage
// and re-enters local mode when a local buffer exists.
//
// # Variants
//
// Str16 through Str512 embed fixed-size local buffers; NewLocal builds an
// instance with a runtime-chosen local size. NewRef and SetRef bind a Str
// to externally owned memory with zero copying and zero lifetime tracking:
// the engine never writes through such a binding, and keeping the memory
// alive is the caller's contract.
//
// # Copying
//
// Like strings.Builder, a non-zero Str must not be copied by value: the
// header may reference a buffer embedded in the original instance.
// Mutating a copy is a precondition violation reported through the assert
// hook. Use Clone for an independent copy and Swap or Take to transfer
// contents between instances.
//
// # Failure model
//
// The engine returns no errors. Precondition and limit violations go to
// the assert hook (default: panic); formatting failures reset the instance
// to empty and report false; truncation is a designed, non-error outcome.
package str
