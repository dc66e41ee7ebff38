package convert

import (
	"testing"

	idl "github.com/wippyai/idl-bindings"
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

type testRealm struct {
	tasks *idl.TaskQueue
}

func (r *testRealm) Queue() idl.JobQueue {
	return r.tasks
}

func newTestRealm() *testRealm {
	return &testRealm{tasks: idl.NewTaskQueue()}
}

// fakeThenable settles synchronously when asked to.
type fakeThenable struct {
	value.Object
	result value.Value
	reason value.Value
	reject bool
}

func (t *fakeThenable) Then(onFulfilled, onRejected func(value.Value)) {
	if t.reject {
		onRejected(t.reason)
		return
	}
	onFulfilled(t.result)
}

func TestPromiseOfPlainValueIsDeferred(t *testing.T) {
	realm := newTestRealm()
	ctx := Context{Realm: realm}

	p := PromiseOf(Uint8())(value.Number(42), ctx)
	if p.State() != Pending {
		t.Fatal("conversion of a plain value must not run inline")
	}

	realm.tasks.Drain()
	v, err, ok := p.Result()
	if !ok || err != nil || v != 42 {
		t.Fatalf("got %v, %v, %v", v, err, ok)
	}
}

func TestPromiseOfConversionFailureRejects(t *testing.T) {
	realm := newTestRealm()
	ctx := Context{Realm: realm, EnforceRange: true}

	p := PromiseOf(Uint8())(value.Number(300), ctx)
	realm.tasks.Drain()

	_, err, ok := p.Result()
	if !ok {
		t.Fatal("promise still pending")
	}
	if !errors.IsKind(err, errors.KindRangeViolation) {
		t.Errorf("got %v", err)
	}
}

func TestPromiseOfThenable(t *testing.T) {
	realm := newTestRealm()
	ctx := Context{Realm: realm}

	th := &fakeThenable{Object: value.NewDict(), result: value.Number(7)}
	p := PromiseOf(Uint8())(value.ObjectOf(th), ctx)
	realm.tasks.Drain()
	v, err, ok := p.Result()
	if !ok || err != nil || v != 7 {
		t.Fatalf("got %v, %v, %v", v, err, ok)
	}

	rth := &fakeThenable{Object: value.NewDict(), reason: value.String("boom"), reject: true}
	p = PromiseOf(Uint8())(value.ObjectOf(rth), ctx)
	realm.tasks.Drain()
	_, err, ok = p.Result()
	if !ok {
		t.Fatal("promise still pending")
	}
	rej, isRej := err.(Rejection)
	if !isRej || rej.Reason.Str() != "boom" {
		t.Errorf("got %v", err)
	}
}

func TestThenAfterSettlementStillQueues(t *testing.T) {
	realm := newTestRealm()
	ctx := Context{Realm: realm}

	p := Resolved(ctx, 5)
	var got int
	var fired bool
	p.Then(func(v int) {
		got = v
		fired = true
	}, nil)
	if fired {
		t.Fatal("reaction ran inline from Then")
	}
	realm.tasks.Drain()
	if !fired || got != 5 {
		t.Fatalf("got %v fired=%v", got, fired)
	}
}

func TestSettleIsOneShot(t *testing.T) {
	realm := newTestRealm()
	ctx := Context{Realm: realm}

	p, resolve, reject := NewPromise[int](ctx)
	resolve(1)
	reject(errors.IllegalInvocation(""))
	resolve(2)
	realm.tasks.Drain()

	v, err, ok := p.Result()
	if !ok || err != nil || v != 1 {
		t.Fatalf("got %v, %v, %v", v, err, ok)
	}
}

func TestPromiseWithoutRealmRunsImmediately(t *testing.T) {
	p := PromiseOf(Uint8())(value.Number(9), Context{})
	v, err, ok := p.Result()
	if !ok || err != nil || v != 9 {
		t.Fatalf("got %v, %v, %v", v, err, ok)
	}
}
