package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines executing band jobs.
//
// Each worker owns a queue; an idle worker steals from the others before
// blocking on its own, which evens out bands whose sources are more
// expensive to sample than their neighbours'.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job and waits for all of them. Jobs are handed out
// round-robin. A closed pool runs them on the calling goroutine.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 {
		return
	}
	if !p.running.Load() {
		for _, job := range jobs {
			job()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		wrapped := func() {
			defer wg.Done()
			job()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Close stops accepting jobs, finishes the queued ones and stops the
// workers. It is safe to call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts jobs.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
