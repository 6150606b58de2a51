package gc

import "github.com/pkg/errors"

// ErrUninitialized is returned by every allocating constructor (NewString,
// NewArray, ...) and by Collect and ClearMemory when called on a Collector
// that has not been constructed through NewCollector.
// spec.md §7 treats this as fatal and resolves it via lazy init; duskgc
// instead makes the zero value explicitly unusable and reports the error,
// since panicking or exiting the process is not an idiomatic Go library
// behavior and the host is in a better position to decide what "fatal"
// means for it.
var ErrUninitialized = errors.New("gc: collector not initialized, use NewCollector")

// ErrOutOfMemory is returned when the underlying allocation a constructor
// performs fails. In Go this can only happen via an explicit simulated
// failure (see Collector.FailNextAlloc, used by tests) or a runtime OOM
// panic the host recovers from and reports through this sentinel — Go's
// allocator does not return nil on failure the way malloc does, but the
// spec's contract (alloc fails fatally, the block is never linked) still
// has to be representable for callers that simulate resource exhaustion.
var ErrOutOfMemory = errors.New("gc: out of memory")

// IsFatal reports whether err is one of the fatal conditions spec.md §7
// defines for the collector. Both are meant to be unrecoverable for the
// runtime instance that hit them; the host decides what to do (abort,
// restart the VM, escalate to its own fatal handler).
func IsFatal(err error) bool {
	return errors.Is(err, ErrUninitialized) || errors.Is(err, ErrOutOfMemory)
}
