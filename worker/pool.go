// Package worker runs one-shot jobs on a bounded pool, giving each job its
// own named logging scope so verbosity can differ per worker.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/xid"

	"github.com/shaelmaar/conlog"
)

var (
	// ErrIDInUse is returned when a job name is specified but already used.
	ErrIDInUse = fmt.Errorf("ID already used")
)

// Pool stores the internal job list and provides an interface for job management.
type Pool struct {
	sync.RWMutex

	jobSem chan struct{}
	// jobs is the internal job list used to track jobs that are currently submitted.
	jobs map[string]*Job
	wg   sync.WaitGroup

	logger *conlog.Logger
}

type Options struct {
	WorkerLimit int32
}

// Job describes a single unit of work and its logging verbosity.
type Job struct {
	// Name identifies the job and names its logging scope. Optional; a
	// unique ID is generated when empty.
	Name string

	// Level is the job's log threshold as a severity label. Empty means the
	// scope inherits the logger's process-wide default on first use.
	Level string

	// Run is called with a context carrying the job's logging scope,
	// retrievable via conlog.FromContext. The context is cancelled when the
	// job is cancelled or the pool shuts down.
	Run func(ctx context.Context) error

	// ErrFunc, if set, is invoked on its own goroutine when Run returns an error.
	ErrFunc func(error)

	id     string
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPool will create a new pool instance that runs jobs against the given
// logger. A nil logger falls back to the package default. WorkerLimit bounds
// the number of concurrently running jobs; zero means unbounded.
func NewPool(logger *conlog.Logger, opts Options) *Pool {
	var jobSem chan struct{}

	if opts.WorkerLimit > 0 {
		jobSem = make(chan struct{}, opts.WorkerLimit)
	}

	if logger == nil {
		logger = conlog.Default()
	}

	return &Pool{
		jobSem: jobSem,
		jobs:   make(map[string]*Job),
		logger: logger,
	}
}

// Submit will add a job to the job list and start it. The job's Level is
// validated up front; an unknown label fails with conlog.ErrInvalidLevel
// before anything runs. It returns the job ID, or ErrIDInUse if the chosen
// name is already taken by a live job.
func (p *Pool) Submit(j *Job) (string, error) {
	if j.Run == nil {
		return "", fmt.Errorf("job function cannot be nil")
	}

	if j.Level != "" {
		if _, err := conlog.ParseLevel(j.Level); err != nil {
			return "", err
		}
	}

	id := j.Name
	if id == "" {
		id = xid.New().String()
	}

	// Create Context used to cancel the job's goroutine.
	j.ctx, j.cancel = context.WithCancel(context.Background())
	j.id = id

	p.Lock()
	if _, ok := p.jobs[id]; ok {
		p.Unlock()
		j.cancel()
		return "", ErrIDInUse
	}
	p.jobs[id] = j
	p.Unlock()

	p.wg.Add(1)
	go p.execJob(j)

	return id, nil
}

// Cancel cancels the context of the job with the given ID. The job is removed
// from the list when its goroutine returns, not here.
func (p *Pool) Cancel(id string) {
	p.RLock()
	j, ok := p.jobs[id]
	p.RUnlock()

	if ok {
		j.cancel()
	}
}

// Jobs returns the IDs of jobs that are currently live.
func (p *Pool) Jobs() []string {
	p.RLock()
	defer p.RUnlock()

	ids := make([]string, 0, len(p.jobs))
	for id := range p.jobs {
		ids = append(ids, id)
	}
	return ids
}

// Wait blocks until all submitted jobs have finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop cancels all live jobs and waits for them to finish.
func (p *Pool) Stop() {
	for _, id := range p.Jobs() {
		p.Cancel(id)
	}
	p.Wait()
}

// execJob is the underlying runner, it binds the job's logging scope and
// executes it under the worker limit.
func (p *Pool) execJob(j *Job) {
	defer p.wg.Done()
	defer p.remove(j.id)

	p.lockSem()
	defer p.unlockSem()

	scope := p.logger.Scope(j.id)
	if j.Level != "" {
		if err := scope.Configure(j.Level); err != nil {
			if j.ErrFunc != nil {
				go j.ErrFunc(err)
			}
			return
		}
	}

	if err := j.Run(conlog.NewContext(j.ctx, scope)); err != nil && j.ErrFunc != nil {
		go j.ErrFunc(err)
	}
}

func (p *Pool) remove(id string) {
	p.Lock()
	defer p.Unlock()

	if j, ok := p.jobs[id]; ok {
		j.cancel()
		delete(p.jobs, id)
	}
}

func (p *Pool) lockSem() {
	if p.jobSem != nil {
		p.jobSem <- struct{}{}
	}
}

func (p *Pool) unlockSem() {
	if p.jobSem != nil {
		<-p.jobSem
	}
}
