// Package strkit provides a small-string-optimized storage engine for byte
// strings, offering an alternative to plain Go strings and byte slices when
// heap traffic matters.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	strkit/          Root package with the Allocator and FormatFunc primitives
//	├── str/         The string engine: header, storage transitions, mutation,
//	│                formatting, search, sized and reference variants
//	├── errors/      Structured error types reported through the assert hook
//	└── cmd/str/     CLI for exercising the engine, with an interactive inspector
//
// # Quick Start
//
// Create a string with a 64-byte inline buffer and mutate it without touching
// the heap:
//
//	s := str.NewStr64()
//	s.SetString("filename")
//	s.AppendString(".h")
//	s.ToUpper()
//	fmt.Println(s.String()) // "FILENAME.H"
//
// Content that outgrows the inline buffer transparently moves to a single
// heap block:
//
//	s.SetString(strings.Repeat("x", 100)) // one allocation
//	s.Clear()                             // back to the inline buffer
//
// # Reference Mode
//
// A Str can wrap externally owned bytes without copying or tracking them:
//
//	r := str.NewRefString("hey!")
//	r.Len()        // 4
//	r.Cap()        // 0
//	r.OwnsBuffer() // false
//
// The referenced memory's validity is entirely the caller's responsibility,
// and the engine never writes through a reference.
//
// # Replaceable Primitives
//
// The engine consumes three platform primitives, all replaceable by the
// embedding application: an Allocator (this package), a FormatFunc (this
// package), and an assert hook (str.SetAssertHandler) invoked on invariant
// violations. The default assert hook panics: the engine prefers crashing
// over silent corruption.
//
// # Thread Safety
//
// Str has value semantics with exclusive ownership and no internal locking.
// Concurrent mutation of one instance requires external synchronization;
// concurrent reads of instances nobody is mutating are safe.
package strkit
