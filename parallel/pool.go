// Package parallel runs independent jobs on a fixed set of workers.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is one unit of work. A failing job does not stop the others.
type Job func() error

type Pool struct {
	wg    sync.WaitGroup
	jobs  chan Job
	close func()

	mu   sync.Mutex
	errs []error

	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// Start launches numWorkers workers, or one per CPU when numWorkers < 1.
// A single worker runs jobs synchronously inside Do.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan Job, numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for job := range pool.jobs {
				pool.run(job)
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.jobs) })
	return pool
}

// Do queues job, blocking while all workers are busy. Do must not be called
// after Wait.
func (p *Pool) Do(job Job) {
	if p.jobs == nil {
		p.run(job)
		return
	}
	p.jobs <- job
}

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.failed.Add(1)
		p.mu.Lock()
		p.errs = append(p.errs, err)
		p.mu.Unlock()
		return
	}
	p.succeeded.Add(1)
}

// Wait stops accepting jobs, waits for the queued ones and returns their
// errors joined.
func (p *Pool) Wait() error {
	p.close()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

// Stats reports how many jobs finished with and without an error so far.
func (p *Pool) Stats() (succeeded, failed uint64) {
	return p.succeeded.Load(), p.failed.Load()
}
