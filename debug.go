package affordance

import "time"

// FrameStats holds per-frame timing and work counts.
// Only populated when the stage is in debug mode.
type FrameStats struct {
	Frame        uint64
	CompleteTime time.Duration
	PollTime     time.Duration
	ScheduleTime time.Duration
	Transitions  int
	Jobs         int
}

// Stats returns the stats of the last frame run in debug mode.
func (s *Stage) Stats() FrameStats {
	return s.stats
}

// debugLog writes frame stats at debug level.
func (s *Stage) debugLog(stats FrameStats) {
	if !s.debug {
		return
	}
	Log().Debug().
		Uint64("frame", stats.Frame).
		Dur("complete", stats.CompleteTime).
		Dur("poll", stats.PollTime).
		Dur("schedule", stats.ScheduleTime).
		Int("transitions", stats.Transitions).
		Int("jobs", stats.Jobs).
		Msg("frame")
}

// debugMaxCount is the registration count above which a stage warns.
const debugMaxCount = 1000

func debugCheckCount(what string, n int) {
	if n > debugMaxCount {
		Log().Warn().Int(what, n).Int("threshold", debugMaxCount).
			Msgf("stage has more than %d %s", debugMaxCount, what)
	}
}
