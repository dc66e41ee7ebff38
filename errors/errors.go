package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the conversion failure
type Kind string

const (
	KindTypeMismatch       Kind = "type_mismatch"
	KindRangeViolation     Kind = "range_violation"
	KindDetachedBuffer     Kind = "detached_buffer"
	KindSharedNotAllowed   Kind = "shared_not_allowed"
	KindMissingMember      Kind = "missing_member"
	KindInvalidEnum        Kind = "invalid_enum"
	KindIllegalConstructor Kind = "illegal_constructor"
	KindIllegalInvocation  Kind = "illegal_invocation"
	KindMissingArguments   Kind = "missing_arguments"
)

// Failure is the structured error type used throughout the engine.
//
// Error renders the final user-facing text, "<prefix>: <label> <message>";
// the prefix is omitted when absent, and a failure constructed without a
// label renders its message bare. Consumers propagate the rendered text
// unchanged.
type Failure struct {
	Kind    Kind
	Prefix  string
	Label   string
	Message string
}

// Error implements the error interface
func (f *Failure) Error() string {
	var b strings.Builder

	if f.Prefix != "" {
		b.WriteString(f.Prefix)
		b.WriteString(": ")
	}
	if f.Label != "" {
		b.WriteString(f.Label)
		b.WriteByte(' ')
	}
	b.WriteString(f.Message)

	return b.String()
}

// Is reports whether target matches this failure by kind
func (f *Failure) Is(target error) bool {
	if t, ok := target.(*Failure); ok {
		return f.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err carries a Failure of the given kind anywhere
// in its chain.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if f, ok := err.(*Failure); ok {
			return f.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured failure construction
type Builder struct {
	f Failure
}

// New creates a new failure builder
func New(kind Kind) *Builder {
	return &Builder{f: Failure{Kind: kind}}
}

// Prefix sets the message prefix
func (b *Builder) Prefix(prefix string) *Builder {
	b.f.Prefix = prefix
	return b
}

// Label sets the context label
func (b *Builder) Label(label string) *Builder {
	b.f.Label = label
	return b
}

// Message sets the message suffix
func (b *Builder) Message(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.f.Message = fmt.Sprintf(msg, args...)
	} else {
		b.f.Message = msg
	}
	return b
}

// Build returns the constructed failure
func (b *Builder) Build() *Failure {
	return &b.f
}

// Convenience constructors for common failure patterns

// Conversion creates a converter failure; the label defaults to "Value".
func Conversion(kind Kind, prefix, label, suffix string) *Failure {
	if label == "" {
		label = "Value"
	}
	return &Failure{Kind: kind, Prefix: prefix, Label: label, Message: suffix}
}

// TypeMismatch creates a wrong-shape/kind failure
func TypeMismatch(prefix, label, suffix string) *Failure {
	return Conversion(KindTypeMismatch, prefix, label, suffix)
}

// OutOfRange creates an enforce-range bounds failure
func OutOfRange(prefix, label string, lo, hi int64) *Failure {
	return Conversion(KindRangeViolation, prefix, label,
		fmt.Sprintf("is outside the accepted range of %d to %d, inclusive", lo, hi))
}

// NotFinite creates a non-finite-where-finite-required failure
func NotFinite(prefix, label string) *Failure {
	return Conversion(KindRangeViolation, prefix, label, "is not a finite number")
}

// Detached creates a detached-buffer failure
func Detached(prefix, label string) *Failure {
	return Conversion(KindDetachedBuffer, prefix, label, "is backed by a detached buffer")
}

// Shared creates a shared-buffer-not-allowed failure
func Shared(prefix, label string) *Failure {
	return Conversion(KindSharedNotAllowed, prefix, label, "is backed by a shared buffer, which is not allowed here")
}

// MissingRequired creates a missing required dictionary member failure,
// naming both the dictionary and the member.
func MissingRequired(prefix, label, dict, key string) *Failure {
	return Conversion(KindMissingMember, prefix, label,
		fmt.Sprintf("can not be converted to '%s' because '%s' is required in '%s'", dict, key, dict))
}

// InvalidEnum creates an enum mismatch failure including the offending
// stringified value.
func InvalidEnum(prefix, label, got, enum string) *Failure {
	return Conversion(KindInvalidEnum, prefix, label,
		fmt.Sprintf("is '%s', which is not a valid enum value of type %s", got, enum))
}

// IllegalConstructor creates the failure raised by externally reachable
// constructors of internally manufactured objects.
func IllegalConstructor(prefix string) *Failure {
	return &Failure{Kind: KindIllegalConstructor, Prefix: prefix, Message: "Illegal constructor"}
}

// IllegalInvocation creates the failure raised when a branded-only method
// is invoked with a wrong or foreign receiver.
func IllegalInvocation(prefix string) *Failure {
	return &Failure{Kind: KindIllegalInvocation, Prefix: prefix, Message: "Illegal invocation"}
}

// MissingArguments creates the standardized argument-count failure.
func MissingArguments(prefix string, required, present int) *Failure {
	plural := "s"
	if required == 1 {
		plural = ""
	}
	return &Failure{
		Kind:    KindMissingArguments,
		Prefix:  prefix,
		Message: fmt.Sprintf("%d argument%s required, but only %d present", required, plural, present),
	}
}
