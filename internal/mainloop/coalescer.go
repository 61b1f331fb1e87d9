package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one run of the latest
// callback. A burst of config reloads while a frame is running applies once.
type Coalescer[K comparable] struct {
	mu      sync.Mutex
	latest  map[K]func()
	post    func(func())
	stopped bool
}

// NewCoalescer creates a coalescer scheduling through post, usually Loop.Post.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer[K]{
		latest: make(map[K]func()),
		post:   post,
	}
}

// Post records fn as the latest task for key and schedules a run unless one
// is already waiting.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !scheduled {
		c.post(func() { c.run(key) })
	}
}

func (c *Coalescer[K]) run(key K) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Stop drops scheduled work and ignores later posts.
func (c *Coalescer[K]) Stop() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
