// Package mainloop runs work on the frame loop goroutine. Other goroutines
// (config watcher, signal handlers, engine callbacks) post closures; the
// frame loop runs them at the start of its next frame.
package mainloop

import "github.com/bnema/wui/internal/queue"

// Loop is a task queue drained by a single goroutine.
type Loop struct {
	tasks *queue.Queue[func()]
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{tasks: queue.New[func()]()}
}

// Post schedules fn for the next RunPending. Safe for concurrent use.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.tasks.Push(fn)
}

// RunPending runs the tasks posted so far and returns how many ran. Tasks
// posted while running are left for the next call.
func (l *Loop) RunPending() int {
	tasks := l.tasks.Drain()
	for _, fn := range tasks {
		fn()
	}
	return len(tasks)
}

// Len returns the number of tasks waiting.
func (l *Loop) Len() int {
	return l.tasks.Len()
}
