package affordance

import (
	"fmt"
	"strings"
)

// StateIndex identifies an interaction state. The numeric order is the
// transition priority: when several interaction flags are active at once the
// highest index wins.
type StateIndex uint8

const (
	StateDisabled        StateIndex = iota // control cannot be interacted with
	StateIdle                              // enabled, no interaction
	StateHovered                           // pointer or interactor over the control
	StateHoveredPriority                   // hovered by the highest-priority interactor
	StateSelected                          // pressed / grabbed
	StateActivated                         // activated while selected (modifier of Selected)
	stateCount
)

// StateCount is the number of canonical states.
const StateCount = int(stateCount)

var stateNames = [StateCount]string{
	"disabled",
	"idle",
	"hovered",
	"hovered_priority",
	"selected",
	"activated",
}

// defaultWeights holds the blend amount used when nothing more specific is
// known about how strongly a state is engaged.
var defaultWeights = [StateCount]float64{
	StateDisabled:        1,
	StateIdle:            0,
	StateHovered:         0.5,
	StateHoveredPriority: 0.75,
	StateSelected:        1,
	StateActivated:       1,
}

// Valid reports whether s is one of the canonical states.
func (s StateIndex) Valid() bool {
	return s < stateCount
}

// Validate returns an error wrapping ErrInvalidState when s is out of range.
func (s StateIndex) Validate() error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidState, uint8(s))
	}
	return nil
}

// String returns the snake_case state name.
func (s StateIndex) String() string {
	if !s.Valid() {
		return fmt.Sprintf("StateIndex(%d)", uint8(s))
	}
	return stateNames[s]
}

// StateWeight returns the default weight of s in [0, 1].
func StateWeight(s StateIndex) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return defaultWeights[s], nil
}

// ParseState resolves a state name. Matching ignores case, and underscores,
// dashes and spaces are optional ("HoveredPriority", "hovered-priority").
func ParseState(name string) (StateIndex, error) {
	key := normalizeStateName(name)
	for i, n := range stateNames {
		if normalizeStateName(n) == key {
			return StateIndex(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown state %q", ErrInvalidState, name)
}

func normalizeStateName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// States returns all canonical states in priority order.
func States() []StateIndex {
	out := make([]StateIndex, StateCount)
	for i := range out {
		out[i] = StateIndex(i)
	}
	return out
}
