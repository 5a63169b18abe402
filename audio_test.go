package affordance

import (
	"testing"
	"time"
)

func TestToneClip(t *testing.T) {
	c, err := ToneClip("beep", DefaultSampleRate, 440, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("ToneClip: %v", err)
	}
	if c.Name != "beep" {
		t.Errorf("Name = %q", c.Name)
	}
	if got := c.Buffer.Len(); got != DefaultSampleRate.N(100*time.Millisecond) {
		t.Errorf("Len = %d samples", got)
	}
	if d := c.Duration(); d < 99*time.Millisecond || d > 101*time.Millisecond {
		t.Errorf("Duration = %v", d)
	}

	if _, err := ToneClip("bad", DefaultSampleRate, float64(DefaultSampleRate), time.Millisecond); err == nil {
		t.Error("frequency above Nyquist should fail")
	}
}

func TestAudioPlayer(t *testing.T) {
	c, err := ToneClip("beep", DefaultSampleRate, 440, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	c.Volume = -1

	p := NewAudioPlayer()
	p.Play(c)
	p.Play(nil)
	p.Play(&Clip{Name: "empty"})
	if p.Played() != 1 || p.Active() != 1 {
		t.Errorf("Played = %d Active = %d, want 1 and 1", p.Played(), p.Active())
	}

	p.SetMuted(true)
	p.Play(c)
	if !p.Muted() || p.Played() != 1 {
		t.Error("muted player should drop clips")
	}
	p.SetMuted(false)

	// Drain the mixer the way an output device would.
	buf := make([][2]float64, 512)
	for i := 0; i < 10 && p.Active() > 0; i++ {
		p.Mixer().Stream(buf)
	}
	if p.Active() != 0 {
		t.Errorf("Active after draining = %d", p.Active())
	}

	p.Play(c)
	p.Close()
	if p.Active() != 0 {
		t.Errorf("Active after Close = %d", p.Active())
	}
}

func TestClipLibrary(t *testing.T) {
	c, err := ToneClip("click", DefaultSampleRate, 1000, 5*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	lib := ClipLibrary{}
	lib.Add(c)
	if lib["click"] != c {
		t.Error("Add should register by name")
	}
}
