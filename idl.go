package idl

// JobQueue schedules deferred continuations. It is the engine's
// microtask-equivalent: jobs run strictly in FIFO order when the host
// drains the queue, never concurrently with the enqueueing caller.
type JobQueue interface {
	Enqueue(job func())
}

// Realm represents the host execution context a conversion runs against.
// Boundary adapters use the conversion context's realm override to decide
// which realm's error family a failure is constructed in, and promise
// continuations are scheduled on the realm's queue.
type Realm interface {
	Queue() JobQueue
}

// TaskQueue is a plain FIFO JobQueue drained explicitly by the host.
type TaskQueue struct {
	jobs []func()
}

func NewTaskQueue() *TaskQueue {
	return &TaskQueue{}
}

// Enqueue appends a job to the queue.
func (q *TaskQueue) Enqueue(job func()) {
	q.jobs = append(q.jobs, job)
}

// Len returns the number of pending jobs.
func (q *TaskQueue) Len() int {
	return len(q.jobs)
}

// Drain runs pending jobs until the queue is empty, including jobs
// enqueued while draining. It returns the number of jobs executed.
func (q *TaskQueue) Drain() int {
	n := 0
	for len(q.jobs) > 0 {
		job := q.jobs[0]
		q.jobs = q.jobs[1:]
		job()
		n++
	}
	return n
}
