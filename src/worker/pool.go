package worker

import (
	"runtime"
	"sync"
)

// Pool is a fixed-size worker pool used to fan per-display capture grabs out
// across goroutines. The capture pass as a whole still blocks until every
// submitted task has run; the pool only parallelizes the grabs inside it.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// New creates a worker pool. Size defaults to NumCPU when size<=0.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{tasks: make(chan func(), size)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
}

// Submit enqueues a task, blocking if all workers are busy and the queue is
// full. Must not be called after Close.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops the pool after draining queued tasks.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
