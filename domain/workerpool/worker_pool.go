package workerpool

import (
	"context"
	"sync"
)

// Job represents the job to be run
type Job[T any] struct {
	Task func() (T, error)

	// resultQueue receives the result of the job. Jobs submitted without one
	// are fire and forget.
	resultQueue chan<- JobResult[T]
}

// JobResult represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

// Worker represents the worker that executes the job
type Worker[T any] struct {
	ID         int
	WorkerPool chan chan Job[T]
	JobChannel chan Job[T]
	QuitChan   chan struct{}
}

func NewWorker[T any](id int, workerPool chan chan Job[T], quitChan chan struct{}) Worker[T] {
	return Worker[T]{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job[T]),
		QuitChan:   quitChan,
	}
}

func (w Worker[T]) Start(wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()
		for {
			// Register the current worker into the worker queue
			select {
			case w.WorkerPool <- w.JobChannel:
			case <-w.QuitChan:
				return
			}

			select {
			case job := <-w.JobChannel:
				result, err := job.Task()
				if job.resultQueue != nil {
					job.resultQueue <- JobResult[T]{Result: result, Err: err}
				}
			case <-w.QuitChan:
				return
			}
		}
	}()
}

// Dispatcher hands jobs to a fixed number of workers.
type Dispatcher[T any] struct {
	WorkerPool chan chan Job[T]
	MaxWorkers int
	JobQueue   chan Job[T]
	Workers    []Worker[T]

	quitChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewDispatcher[T any](maxWorkers int) *Dispatcher[T] {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	return &Dispatcher[T]{
		WorkerPool: make(chan chan Job[T], maxWorkers),
		MaxWorkers: maxWorkers,
		JobQueue:   make(chan Job[T]),
		Workers:    make([]Worker[T], maxWorkers),
		quitChan:   make(chan struct{}),
	}
}

// Run starts the workers and the dispatch loop. It does not block.
func (d *Dispatcher[T]) Run() {
	for i := 0; i < d.MaxWorkers; i++ {
		worker := NewWorker(i+1, d.WorkerPool, d.quitChan)
		d.wg.Add(1)
		worker.Start(&d.wg)

		d.Workers[i] = worker
	}

	go d.dispatch()
}

// Stop signals all workers to quit and waits for running jobs to finish.
// Jobs not yet picked up by a worker are dropped.
func (d *Dispatcher[T]) Stop() {
	d.stopOnce.Do(func() {
		close(d.quitChan)
		d.wg.Wait()
	})
}

// Submit queues a job without waiting for its result.
func (d *Dispatcher[T]) Submit(ctx context.Context, task func() (T, error)) error {
	return d.enqueue(ctx, Job[T]{Task: task})
}

// Execute runs all tasks on the workers and waits for their results. Results
// are not ordered like tasks. If ctx is done before every task is queued,
// only the results of the queued tasks are returned alongside the context error.
// If the dispatcher is stopped, results collected so far are returned with ErrStopped.
func (d *Dispatcher[T]) Execute(ctx context.Context, tasks []func() (T, error)) ([]JobResult[T], error) {
	resultQueue := make(chan JobResult[T], len(tasks))

	var (
		queued int
		err    error
	)
	for _, task := range tasks {
		if err = d.enqueue(ctx, Job[T]{Task: task, resultQueue: resultQueue}); err != nil {
			break
		}
		queued++
	}

	results := make([]JobResult[T], 0, queued)
	for i := 0; i < queued; i++ {
		select {
		case result := <-resultQueue:
			results = append(results, result)
		case <-d.quitChan:
			return results, ErrStopped
		}
	}

	return results, err
}

func (d *Dispatcher[T]) enqueue(ctx context.Context, job Job[T]) error {
	select {
	case d.JobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quitChan:
		return ErrStopped
	}
}

func (d *Dispatcher[T]) dispatch() {
	for {
		select {
		case job := <-d.JobQueue:
			select {
			case jobChannel := <-d.WorkerPool:
				select {
				case jobChannel <- job:
				case <-d.quitChan:
					return
				}
			case <-d.quitChan:
				return
			}
		case <-d.quitChan:
			return
		}
	}
}
