package gridsearch

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Job is one board/strategy pair for RunBatch.
type Job struct {
	Name     string
	Grid     *Grid
	Strategy Strategy
}

// Outcome is the worker's answer for the job at the same index.
type Outcome struct {
	Job    Job
	Result Result
	Err    error
}

type batchTask struct {
	index int
	job   Job
}

// RunBatch searches every job on a pool of WithWorkers goroutines. Each
// search is independent and single-threaded; only whole searches run in
// parallel. Outcomes come back in job order. Per-job failures are reported in
// Outcome.Err; the returned error is only set when ctx ends the batch early.
func RunBatch(contextObject context.Context, jobs []Job, options ...Option) ([]Outcome, error) {
	batchOptions := newOptions(options)
	outcomes := make([]Outcome, len(jobs))

	taskChannel := make(chan batchTask)
	var wg sync.WaitGroup
	for i := 0; i < batchOptions.NumberOfWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChannel {
				result, err := Search(contextObject, task.job.Grid, task.job.Strategy, options...)
				outcomes[task.index] = Outcome{Job: task.job, Result: result, Err: err}
				batchOptions.Logger.WithFields(logrus.Fields{
					"board":    task.job.Name,
					"strategy": task.job.Strategy.String(),
					"found":    result.Found,
				}).Debug("batch job done")
			}
		}()
	}

	var cancelled error
dispatch:
	for i, job := range jobs {
		if err := contextObject.Err(); err != nil {
			cancelled = err
			break
		}
		select {
		case <-contextObject.Done():
			cancelled = contextObject.Err()
			break dispatch
		case taskChannel <- batchTask{index: i, job: job}:
		}
	}
	close(taskChannel)
	wg.Wait()

	if cancelled != nil {
		return outcomes, cancelled
	}
	return outcomes, nil
}
