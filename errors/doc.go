// Package errors provides structured conversion failures.
//
// Every failure carries a Kind from a closed taxonomy plus the three parts
// of the user-facing message contract:
//
//	"<prefix>: <label> <suffix>"
//
// The prefix identifies the failing operation and is omitted when empty;
// the label names the argument or member being converted and defaults to
// "Value" for converter failures. The rendered text is final: consumers
// propagate it unchanged.
//
// Failures are raised synchronously at the point of detection and are
// deterministic functions of the input, so callers fix the input rather
// than retrying.
package errors
