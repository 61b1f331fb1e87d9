package mainloop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	for i := range 3 {
		l.Post(func() { got = append(got, i) })
	}
	l.Post(nil)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.RunPending())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Zero(t, l.RunPending())
}

func TestLoopDefersTasksPostedWhileRunning(t *testing.T) {
	l := NewLoop()
	ran := 0
	l.Post(func() {
		ran++
		l.Post(func() { ran++ })
	})

	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, l.RunPending())
	assert.Equal(t, 2, ran)
}

func TestLoopPostIsConcurrent(t *testing.T) {
	l := NewLoop()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				l.Post(func() {})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, l.RunPending())
}

func TestCoalescerMergesBurst(t *testing.T) {
	l := NewLoop()
	c := NewCoalescer[string](l.Post)

	value := 0
	for i := 1; i <= 5; i++ {
		c.Post("reload", func() { value = i })
	}

	require.Equal(t, 1, l.Len())
	l.RunPending()
	assert.Equal(t, 5, value)

	c.Post("reload", func() { value = 6 })
	require.Equal(t, 1, l.RunPending())
	assert.Equal(t, 6, value)
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	l := NewLoop()
	c := NewCoalescer[int](l.Post)

	var got []int
	c.Post(1, func() { got = append(got, 1) })
	c.Post(2, func() { got = append(got, 2) })

	assert.Equal(t, 2, l.RunPending())
	assert.ElementsMatch(t, []int{1, 2}, got)
}

func TestCoalescerDropsWorkAfterStop(t *testing.T) {
	l := NewLoop()
	c := NewCoalescer[string](l.Post)

	ran := false
	c.Post("reload", func() { ran = true })
	c.Stop()
	l.RunPending()
	assert.False(t, ran)

	c.Post("reload", func() { ran = true })
	assert.Zero(t, l.Len())
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer[string](nil) })
}
