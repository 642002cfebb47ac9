// Package timer runs delayed and repeating callbacks against a simulation
// clock that the frame driver advances.
//
// Callbacks execute synchronously inside Advance, on the caller's goroutine,
// so they may touch game state without locking. Periods are measured in
// elapsed time rather than frames.
package timer

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled task so it can be cancelled.
// The zero Handle refers to no task and is safe to Stop.
type Handle struct {
	id    uint64
	sched *Scheduler
}

// Stop cancels the task. Returns true if the task was still pending.
func (h Handle) Stop() bool {
	if h.sched == nil {
		return false
	}
	return h.sched.cancel(h.id)
}

// Active reports whether the task is still scheduled.
func (h Handle) Active() bool {
	if h.sched == nil {
		return false
	}
	_, ok := h.sched.tasks[h.id]
	return ok
}

// task is a single scheduled callback.
type task struct {
	id       uint64
	name     string
	deadline time.Duration
	period   time.Duration // 0 for one-shot tasks
	fn       func()
	index    int // heap position
}

// Scheduler orders tasks by deadline, breaking ties by registration order.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	queue  taskQueue
	tasks  map[uint64]*task
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{
		tasks: make(map[uint64]*task),
	}
}

// Now returns the simulation time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// After runs fn once, delay after the current time.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) Handle {
	return s.add(name, delay, 0, fn)
}

// Every runs fn each period, first firing one period from now.
// Non-positive periods are treated as one millisecond.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(name, period, period, fn)
}

// Advance moves the clock forward by dt and runs every task that falls due,
// in deadline order. A repeating task that is due several times within dt
// fires once per elapsed period. Tasks scheduled by callbacks run in the
// same call when their deadline is within the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.deadline > target {
			break
		}
		heap.Pop(&s.queue)

		// Callbacks observe the clock at the task's own deadline.
		s.now = next.deadline

		if next.period > 0 {
			next.deadline += next.period
			heap.Push(&s.queue, next)
		} else {
			delete(s.tasks, next.id)
		}
		next.fn()
	}

	s.now = target
}

// Names returns the names of pending tasks, for diagnostics and tests.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.tasks))
	for _, t := range s.queue {
		names = append(names, t.name)
	}
	return names
}

func (s *Scheduler) add(name string, delay, period time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := &task{
		id:       s.nextID,
		name:     name,
		deadline: s.now + delay,
		period:   period,
		fn:       fn,
	}
	s.tasks[t.id] = t
	heap.Push(&s.queue, t)
	return Handle{id: t.id, sched: s}
}

func (s *Scheduler) cancel(id uint64) bool {
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// taskQueue implements heap.Interface.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].deadline == q[j].deadline {
		return q[i].id < q[j].id
	}
	return q[i].deadline < q[j].deadline
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
