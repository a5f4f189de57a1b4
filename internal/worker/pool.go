// Package worker runs jobs on a bounded set of goroutines and returns their
// results in submission order.
package worker

import (
	"context"
	"sync"

	"github.com/ppiankov/wbmodel/internal/logger"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

type indexedJob struct {
	index int
	job   Job
}

type indexedResult struct {
	index  int
	result Result
}

// Pool manages a pool of workers that execute jobs concurrently
type Pool struct {
	workers       int
	submitted     int
	jobQueue      chan indexedJob
	results       chan indexedResult
	collected     map[int]Result
	collectorDone chan struct{}
	wg            sync.WaitGroup
	ctx           context.Context
	cancelFunc    context.CancelFunc
	closeOnce     sync.Once
}

// NewPool creates a pool bound to ctx. Cancelling ctx stops the workers.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:       workers,
		jobQueue:      make(chan indexedJob, workers*2),
		results:       make(chan indexedResult, workers*2),
		collected:     make(map[int]Result),
		collectorDone: make(chan struct{}),
		ctx:           ctx,
		cancelFunc:    cancel,
	}
}

// Start starts the worker goroutines and the result collector
func (p *Pool) Start() {
	go p.collect()
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// collect drains results as they arrive
func (p *Pool) collect() {
	defer close(p.collectorDone)
	for r := range p.results {
		p.collected[r.index] = r.result
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case j, ok := <-p.jobQueue:
			if !ok {
				return
			}
			logger.Named("worker").Debugw("job started", "worker", id, "job", j.index)
			result := indexedResult{index: j.index, result: j.job.Execute(p.ctx)}
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues job and returns its index in the result slice, or -1 when
// the pool is shut down. Submit must not be called concurrently with Wait.
func (p *Pool) Submit(job Job) int {
	index := p.submitted
	select {
	case <-p.ctx.Done():
		return -1
	case p.jobQueue <- indexedJob{index: index, job: job}:
		p.submitted++
		return index
	}
}

// Wait closes the queue, waits for all jobs and returns their results
// ordered by submission. Slots of jobs dropped by cancellation are nil.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.closeResults()
	<-p.collectorDone

	results := make([]Result, p.submitted)
	for index, result := range p.collected {
		results[index] = result
	}
	return results
}

// Shutdown stops the workers immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
