package affordance

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the sample rate used for generated clips and the
// speaker.
const DefaultSampleRate = beep.SampleRate(48000)

// Clip is a named, fully buffered sound used as a one-shot payload.
type Clip struct {
	Name   string
	Buffer *beep.Buffer
	// Volume is a gain in powers of two (0 = unchanged, -1 = half).
	Volume float64
}

// Streamer returns a fresh streamer over the whole clip.
func (c *Clip) Streamer() beep.Streamer {
	s := c.Buffer.Streamer(0, c.Buffer.Len())
	if c.Volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: c.Volume}
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return c.Buffer.Format().SampleRate.D(c.Buffer.Len())
}

// ToneClip renders a sine tone of the given frequency and length.
func ToneClip(name string, sr beep.SampleRate, freq float64, d time.Duration) (*Clip, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("affordance: tone clip %q: %w", name, err)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(sr.N(d), tone))
	return &Clip{Name: name, Buffer: buf}, nil
}

// ClipLibrary resolves clip names used by audio theme assets.
type ClipLibrary map[string]*Clip

// Add registers c under its name.
func (l ClipLibrary) Add(c *Clip) {
	l[c.Name] = c
}

// AudioPlayer plays clips through a beep.Mixer. Without StartSpeaker the
// mixer is only fed, which is enough for tests or for mixing into another
// output. It implements OneShotSink[*Clip].
type AudioPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	speaker bool
	muted   atomic.Bool
	played  atomic.Uint64
}

// NewAudioPlayer creates a player with an empty mixer.
func NewAudioPlayer() *AudioPlayer {
	return &AudioPlayer{mixer: &beep.Mixer{}}
}

// StartSpeaker initializes the system speaker and starts playing the mixer.
// On failure the player keeps working silently and the error is returned
// for the caller to log.
func (p *AudioPlayer) StartSpeaker(sr beep.SampleRate, buffer time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.speaker {
		return nil
	}
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return fmt.Errorf("affordance: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.speaker = true
	return nil
}

// Play queues c on the mixer. nil clips and clips without data are ignored.
func (p *AudioPlayer) Play(c *Clip) {
	if c == nil || c.Buffer == nil || p.muted.Load() {
		return
	}
	s := c.Streamer()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.speaker {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	p.played.Add(1)
}

// SetMuted drops subsequent Play calls while muted.
func (p *AudioPlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports the mute state.
func (p *AudioPlayer) Muted() bool {
	return p.muted.Load()
}

// Played returns the number of clips queued so far.
func (p *AudioPlayer) Played() uint64 {
	return p.played.Load()
}

// Active returns the number of streamers still in the mixer.
func (p *AudioPlayer) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Mixer exposes the underlying mixer for custom outputs.
func (p *AudioPlayer) Mixer() beep.Streamer {
	return p.mixer
}

// Close stops every queued clip.
func (p *AudioPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.speaker {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		return
	}
	p.mixer.Clear()
}
