package convert

import (
	idl "github.com/wippyai/idl-bindings"
	"github.com/wippyai/idl-bindings/value"
)

// PromiseState tracks the lifecycle of a Promise.
type PromiseState uint8

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

func (s PromiseState) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Rejection carries the raw value a thenable rejected with, so callers
// can recover it without losing dynamic typing.
type Rejection struct {
	Reason value.Value
}

func (r Rejection) Error() string {
	s, err := value.ToString(r.Reason)
	if err != nil {
		s = r.Reason.Kind().String()
	}
	return "rejected: " + s
}

// Promise is a single-assignment future. Settling is one-shot: the
// first resolve or reject wins and later calls are ignored. Reaction
// callbacks registered with Then run on the queue the promise was
// created with, never inline from Then itself.
type Promise[T any] struct {
	queue     idl.JobQueue
	state     PromiseState
	result    T
	reason    error
	reactions []reaction[T]
}

type reaction[T any] struct {
	fulfilled func(T)
	rejected  func(error)
}

// NewPromise creates a pending promise bound to the context's queue,
// along with its resolve and reject functions.
func NewPromise[T any](ctx Context) (p *Promise[T], resolve func(T), reject func(error)) {
	p = &Promise[T]{queue: ctx.queue()}
	resolve = func(v T) { p.settle(Fulfilled, v, nil) }
	reject = func(err error) {
		var zero T
		p.settle(Rejected, zero, err)
	}
	return p, resolve, reject
}

// Resolved returns an already-fulfilled promise.
func Resolved[T any](ctx Context, v T) *Promise[T] {
	p, resolve, _ := NewPromise[T](ctx)
	resolve(v)
	return p
}

// Rejected returns an already-rejected promise.
func RejectedPromise[T any](ctx Context, err error) *Promise[T] {
	p, _, reject := NewPromise[T](ctx)
	reject(err)
	return p
}

func (p *Promise[T]) settle(state PromiseState, v T, err error) {
	if p.state != Pending {
		return
	}
	p.state = state
	p.result = v
	p.reason = err
	pending := p.reactions
	p.reactions = nil
	for _, r := range pending {
		p.schedule(r)
	}
}

func (p *Promise[T]) schedule(r reaction[T]) {
	state, result, reason := p.state, p.result, p.reason
	p.queue.Enqueue(func() {
		if state == Fulfilled {
			if r.fulfilled != nil {
				r.fulfilled(result)
			}
			return
		}
		if r.rejected != nil {
			r.rejected(reason)
		}
	})
}

// Then registers reaction callbacks. Either may be nil. Callbacks fire
// on the promise's queue after settlement, including for promises that
// were already settled when Then was called.
func (p *Promise[T]) Then(onFulfilled func(T), onRejected func(error)) {
	r := reaction[T]{fulfilled: onFulfilled, rejected: onRejected}
	if p.state == Pending {
		p.reactions = append(p.reactions, r)
		return
	}
	p.schedule(r)
}

// State reports the current lifecycle state.
func (p *Promise[T]) State() PromiseState {
	return p.state
}

// Result returns the settlement outcome. ok is false while pending.
func (p *Promise[T]) Result() (v T, err error, ok bool) {
	if p.state == Pending {
		ok = false
		return
	}
	return p.result, p.reason, true
}

// PromiseOf lifts a converter over promises. A thenable input settles
// the result when the thenable does, converting the fulfillment value
// at that point; rejection reasons surface as Rejection. Any other
// input is treated as an already-available value whose conversion is
// queued, so conversion failures reject instead of failing the lift.
func PromiseOf[T any](conv Converter[T]) func(value.Value, Context) *Promise[T] {
	return func(v value.Value, ctx Context) *Promise[T] {
		p, resolve, reject := NewPromise[T](ctx)

		deliver := func(res value.Value) {
			out, err := conv(res, ctx)
			if err != nil {
				reject(err)
				return
			}
			resolve(out)
		}

		if v.Kind() == value.KindObject {
			if th, ok := v.Obj().(value.Thenable); ok {
				th.Then(deliver, func(reason value.Value) {
					reject(Rejection{Reason: reason})
				})
				return p
			}
		}

		ctx.queue().Enqueue(func() { deliver(v) })
		return p
	}
}
