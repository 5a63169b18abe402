package affordance

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptedPointer is a SignalSource fed by injected pointer samples instead
// of a device. Each Flags call consumes one queued sample; with the queue
// empty the pointer holds its last sample. Useful for tests, demos and
// replaying recorded interaction.
type ScriptedPointer struct {
	PointerTracker

	queue  []PointerSample
	last   PointerSample
	tail   PointerSample
	script *PointerScript
}

// NewScriptedPointer creates a scripted pointer over shape, parked at the
// origin with nothing pressed.
func NewScriptedPointer(shape HitShape) *ScriptedPointer {
	return &ScriptedPointer{PointerTracker: PointerTracker{Shape: shape}}
}

func (p *ScriptedPointer) push(s PointerSample) {
	p.queue = append(p.queue, s)
	p.tail = s
}

// InjectMove queues a move to (x, y), keeping the button state.
func (p *ScriptedPointer) InjectMove(x, y float64) {
	s := p.tail
	s.X, s.Y = x, y
	p.push(s)
}

// InjectPress queues a select press at (x, y).
func (p *ScriptedPointer) InjectPress(x, y float64) {
	p.push(PointerSample{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a release at (x, y). Activation is released too.
func (p *ScriptedPointer) InjectRelease(x, y float64) {
	p.push(PointerSample{X: x, Y: y})
}

// InjectActivate queues a frame that holds or releases the activate input
// at the current position.
func (p *ScriptedPointer) InjectActivate(on bool) {
	s := p.tail
	s.Activate = on
	p.push(s)
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *ScriptedPointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). Minimum frames is 2.
func (p *ScriptedPointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(LerpFloat(fromX, toX, t), LerpFloat(fromY, toY, t))
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued samples.
func (p *ScriptedPointer) Pending() int {
	return len(p.queue)
}

// SetScript attaches a script that injects samples as it runs. nil detaches.
func (p *ScriptedPointer) SetScript(s *PointerScript) {
	p.script = s
}

// Flags advances the script, consumes one sample and returns the updated
// flags.
func (p *ScriptedPointer) Flags() InteractionFlags {
	if p.script != nil {
		p.script.step(p)
	}
	if len(p.queue) > 0 {
		p.last = p.queue[0]
		copy(p.queue, p.queue[1:])
		p.queue = p.queue[:len(p.queue)-1]
	}
	if len(p.queue) == 0 {
		p.tail = p.last
	}
	return p.Update(p.last)
}

// --- Scripts ---

// ScriptStep is one action of a pointer script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type scriptDocument struct {
	Shape *HitRect     `yaml:"shape"`
	Steps []ScriptStep `yaml:"steps"`
}

// PointerScript sequences injected pointer input across frames. Actions:
// move, press, release, click, drag, activate, deactivate and wait.
type PointerScript struct {
	// Shape is the hit area declared by the script, or nil.
	Shape *HitRect

	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "click": true,
	"drag": true, "activate": true, "deactivate": true, "wait": true,
}

// LoadPointerScript parses a YAML (or JSON) pointer script.
func LoadPointerScript(data []byte) (*PointerScript, error) {
	var doc scriptDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("affordance: parse pointer script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("affordance: parse pointer script: no steps")
	}
	for i, st := range doc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("affordance: parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &PointerScript{Shape: doc.Shape, steps: doc.Steps}, nil
}

// Done reports whether every step has run and its input has drained.
func (r *PointerScript) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *PointerScript) Len() int {
	return len(r.steps)
}

// step advances the script by one frame.
func (r *PointerScript) step(p *ScriptedPointer) {
	if r.done {
		return
	}
	// Let injected input drain before advancing.
	if len(p.queue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		p.InjectMove(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "activate":
		p.InjectActivate(true)
	case "deactivate":
		p.InjectActivate(false)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
