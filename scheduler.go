package affordance

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// compactThreshold bounds the pending list when callers complete jobs
// through their variables and rarely call Scheduler.Complete.
const compactThreshold = 1024

// SchedulerConfig configures a Scheduler.
type SchedulerConfig struct {
	// Workers caps the number of interpolation jobs computed concurrently.
	// Zero or negative uses runtime.GOMAXPROCS(0).
	Workers int

	// Metrics, when non-nil, receives job counters.
	Metrics *Metrics
}

// Scheduler runs interpolation jobs on a bounded pool of goroutines.
//
// Jobs are fire-and-forget: scheduling never blocks. Results are not applied
// by the workers; they are published by Complete (or by the owning
// variable) on the caller's goroutine, so subscribers never observe a value
// mid-computation. Complete is the per-frame barrier: call it once before
// scheduling the next frame's work.
type Scheduler struct {
	sem     *semaphore.Weighted
	metrics *Metrics

	mu      sync.Mutex
	pending []*job
}

type job struct {
	ctx      context.Context
	done     chan struct{}
	compute  func()
	publish  func()
	aborted  atomic.Bool
	consumed atomic.Bool
}

// NewScheduler creates a Scheduler.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Scheduler{
		sem:     semaphore.NewWeighted(int64(workers)),
		metrics: cfg.Metrics,
	}
}

var (
	defaultSchedulerOnce sync.Once
	defaultScheduler     *Scheduler
)

// DefaultScheduler returns the shared scheduler used by variables created
// without an explicit one.
func DefaultScheduler() *Scheduler {
	defaultSchedulerOnce.Do(func() {
		defaultScheduler = NewScheduler(SchedulerConfig{})
	})
	return defaultScheduler
}

// schedule starts compute on a worker. publish runs later, exactly once, on
// whichever goroutine consumes the job, unless ctx was cancelled first.
func (s *Scheduler) schedule(ctx context.Context, compute, publish func()) *job {
	j := &job{
		ctx:     ctx,
		done:    make(chan struct{}),
		compute: compute,
		publish: publish,
	}

	s.mu.Lock()
	if len(s.pending) >= compactThreshold {
		s.pending = compactJobs(s.pending)
	}
	s.pending = append(s.pending, j)
	s.mu.Unlock()

	s.metrics.jobScheduled()
	go s.run(j)
	return j
}

func (s *Scheduler) run(j *job) {
	defer close(j.done)
	if err := s.sem.Acquire(j.ctx, 1); err != nil {
		j.aborted.Store(true)
		return
	}
	defer s.sem.Release(1)
	if j.ctx.Err() != nil {
		j.aborted.Store(true)
		return
	}
	j.compute()
}

// consume waits for j and publishes its result if nobody has yet.
func (s *Scheduler) consume(j *job) {
	<-j.done
	if !j.consumed.CompareAndSwap(false, true) {
		return
	}
	if j.aborted.Load() || j.ctx.Err() != nil {
		s.metrics.jobCancelled()
		return
	}
	j.publish()
	s.metrics.jobCompleted()
}

// discard waits for j and drops its result.
func (s *Scheduler) discard(j *job) {
	<-j.done
	if j.consumed.CompareAndSwap(false, true) {
		s.metrics.jobCancelled()
	}
}

// Complete waits for every outstanding job and publishes the results in the
// order the jobs were scheduled. Callbacks run on the calling goroutine.
func (s *Scheduler) Complete() {
	s.mu.Lock()
	jobs := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, j := range jobs {
		s.consume(j)
	}
}

// Pending returns the number of scheduled jobs whose results have not been
// consumed yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, j := range s.pending {
		if !j.consumed.Load() {
			n++
		}
	}
	return n
}

func compactJobs(jobs []*job) []*job {
	out := jobs[:0]
	for _, j := range jobs {
		if !j.consumed.Load() {
			out = append(out, j)
		}
	}
	for i := len(out); i < len(jobs); i++ {
		jobs[i] = nil
	}
	return out
}
