package affordance

import "time"

// StageConfig configures a Stage.
type StageConfig struct {
	// Workers caps concurrent interpolation jobs (see SchedulerConfig).
	Workers int
	// Metrics, when non-nil, is shared by the scheduler, providers and
	// one-shot receivers added to the stage.
	Metrics *Metrics
	// Debug logs per-frame stats at debug level.
	Debug bool
}

// Stage runs providers and receivers once per frame.
//
// Update is the frame: it first completes and publishes every interpolation
// job scheduled by the previous frame, then polls providers (state events
// and theme lookups happen synchronously here), then updates receivers,
// which schedules this frame's jobs. Only the blend math runs off the
// calling goroutine.
type Stage struct {
	scheduler *Scheduler
	metrics   *Metrics
	providers []*StateProvider
	receivers []Receiver

	debug bool
	frame uint64
	stats FrameStats
}

// NewStage creates an empty stage with its own scheduler.
func NewStage(cfg StageConfig) *Stage {
	return &Stage{
		scheduler: NewScheduler(SchedulerConfig{Workers: cfg.Workers, Metrics: cfg.Metrics}),
		metrics:   cfg.Metrics,
		debug:     cfg.Debug,
	}
}

// Scheduler returns the stage's scheduler.
func (s *Stage) Scheduler() *Scheduler {
	return s.scheduler
}

// SetDebugMode toggles per-frame stats logging.
func (s *Stage) SetDebugMode(on bool) {
	s.debug = on
}

// AddProvider registers p to be polled every frame.
func (s *Stage) AddProvider(p *StateProvider) {
	if s.metrics != nil {
		p.SetMetrics(s.metrics)
	}
	s.providers = append(s.providers, p)
	if s.debug {
		debugCheckCount("providers", len(s.providers))
	}
}

// AddReceiver registers r and enables it. A receiver that fails to enable
// stays registered but disabled, and the error is returned.
func (s *Stage) AddReceiver(r Receiver) error {
	if rs, ok := r.(interface{ setScheduler(*Scheduler) }); ok {
		rs.setScheduler(s.scheduler)
	}
	if rm, ok := r.(interface{ setMetrics(*Metrics) }); ok {
		rm.setMetrics(s.metrics)
	}
	s.receivers = append(s.receivers, r)
	if s.debug {
		debugCheckCount("receivers", len(s.receivers))
	}
	return r.Enable()
}

// RemoveReceiver disables r and stops updating it.
func (s *Stage) RemoveReceiver(r Receiver) {
	for i, cur := range s.receivers {
		if cur == r {
			r.Disable()
			copy(s.receivers[i:], s.receivers[i+1:])
			s.receivers[len(s.receivers)-1] = nil
			s.receivers = s.receivers[:len(s.receivers)-1]
			return
		}
	}
}

// Update runs one frame. dt is the frame time in seconds.
func (s *Stage) Update(dt float64) {
	s.frame++
	var t0 time.Time
	if s.debug {
		s.stats = FrameStats{Frame: s.frame}
		t0 = time.Now()
	}

	s.scheduler.Complete()

	var t1 time.Time
	if s.debug {
		t1 = time.Now()
		s.stats.CompleteTime = t1.Sub(t0)
	}

	for _, p := range s.providers {
		if p.Poll() && s.debug {
			s.stats.Transitions++
		}
	}

	var t2 time.Time
	if s.debug {
		t2 = time.Now()
		s.stats.PollTime = t2.Sub(t1)
	}

	for _, r := range s.receivers {
		if r.Enabled() {
			r.Update(dt)
		}
	}

	if s.debug {
		s.stats.ScheduleTime = time.Since(t2)
		s.stats.Jobs = s.scheduler.Pending()
		s.debugLog(s.stats)
	}
}

// Flush completes and publishes outstanding jobs without starting a frame.
func (s *Stage) Flush() {
	s.scheduler.Complete()
}

// Close publishes outstanding results and disables every receiver.
func (s *Stage) Close() {
	s.scheduler.Complete()
	for _, r := range s.receivers {
		r.Disable()
	}
}

// Frame returns the number of Update calls so far.
func (s *Stage) Frame() uint64 {
	return s.frame
}
