package convert

import (
	"fmt"

	idl "github.com/wippyai/idl-bindings"
)

// Context carries the immutable options and error labeling shared by every
// converter in a call tree. Contexts are plain values; deriving a child
// context never mutates the parent.
type Context struct {
	// Prefix identifies the failing operation in rendered failures.
	Prefix string

	// Label names the argument or member being converted. Empty renders
	// as "Value".
	Label string

	// Realm overrides the realm failures are constructed against and
	// supplies the queue asynchronous continuations run on.
	Realm idl.Realm

	// EnforceRange makes integer converters reject out-of-bounds and
	// non-finite input instead of transforming it.
	EnforceRange bool

	// Clamp makes integer converters saturate out-of-bounds input to the
	// nearest bound before rounding half to even.
	Clamp bool

	// AllowShared permits shared buffers where resources are validated.
	AllowShared bool

	// TreatNullAsEmptyString makes the string converter map null to "".
	TreatNullAsEmptyString bool

	// Async marks the call site as declared asynchronous; see InvokeAsync.
	Async bool
}

// At returns a copy labeled with a different context label.
func (c Context) At(label string) Context {
	c.Label = label
	return c
}

// atIndex derives the per-element label used by sequence conversion.
func (c Context) atIndex(i int) Context {
	label := c.Label
	if label == "" {
		label = "Value"
	}
	return c.At(fmt.Sprintf("%s, index %d", label, i))
}

// atMember derives the label used for a dictionary member, keeping the
// outer label visible.
func (c Context) atMember(key, dict string) Context {
	label := fmt.Sprintf("'%s' of '%s'", key, dict)
	if c.Label != "" {
		label += fmt.Sprintf(" (%s)", c.Label)
	}
	return c.At(label)
}

// queue returns the realm's job queue, or an immediate queue when the
// context has no realm attached.
func (c Context) queue() idl.JobQueue {
	if c.Realm != nil {
		if q := c.Realm.Queue(); q != nil {
			return q
		}
	}
	return immediateQueue{}
}

// immediateQueue runs jobs inline. It stands in for the host queue only
// when a conversion runs outside any realm.
type immediateQueue struct{}

func (immediateQueue) Enqueue(job func()) { job() }
