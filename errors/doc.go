// Package errors provides standardized error handling patterns for the
// history containers.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// For bounded-history containers the mapping is narrow and deliberate:
//
//   - Invalid: out-of-range queries (ErrIndexOutOfRange), bad construction
//     seeds (ErrBadSeedIndex), malformed snapshots (ErrInvalidSnapshot,
//     ErrSlotCountMismatch)
//   - Fatal: poisoned locks (ErrLockPoisoned) and authentication failures
//     on encrypted state (ErrDecryptFailed) — the protected data can no
//     longer be trusted
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains. The
// containers never retry internally; retry policy belongs to the caller,
// which can use Classify to decide.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if distance >= buf.Capacity() {
//	    return errors.ErrIndexOutOfRange
//	}
//
// Wrap errors with context for debugging:
//
//	if err := codec.Unmarshal(data, &snap); err != nil {
//	    return errors.WrapInvalid(err, "File", "Load", "snapshot decode")
//	}
//
// Check classification:
//
//	if err := buf.Push(v); err != nil {
//	    if errors.IsPoisoned(err) {
//	        // a previous holder crashed mid-mutation; rebuild the buffer
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// The Wrap family of functions applies this pattern while preserving error
// classification through the chain.
package errors
