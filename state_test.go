package affordance

import (
	"errors"
	"testing"
)

func TestStateOrder(t *testing.T) {
	order := []StateIndex{StateDisabled, StateIdle, StateHovered, StateHoveredPriority, StateSelected, StateActivated}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be ordered before %v", order[i-1], order[i])
		}
	}
	if StateCount != len(order) {
		t.Errorf("StateCount = %d, want %d", StateCount, len(order))
	}
}

func TestStateWeight(t *testing.T) {
	tests := []struct {
		state StateIndex
		want  float64
	}{
		{StateDisabled, 1},
		{StateIdle, 0},
		{StateHovered, 0.5},
		{StateHoveredPriority, 0.75},
		{StateSelected, 1},
		{StateActivated, 1},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got, err := StateWeight(tt.state)
			if err != nil {
				t.Fatalf("StateWeight: %v", err)
			}
			if got != tt.want {
				t.Errorf("StateWeight = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := StateWeight(StateIndex(StateCount)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("out of range: err = %v, want ErrInvalidState", err)
	}
}

func TestStateValidate(t *testing.T) {
	for _, s := range States() {
		if err := s.Validate(); err != nil {
			t.Errorf("%v.Validate() = %v", s, err)
		}
	}
	bad := StateIndex(200)
	if bad.Valid() {
		t.Error("200 should not be valid")
	}
	if !errors.Is(bad.Validate(), ErrInvalidState) {
		t.Error("Validate should wrap ErrInvalidState")
	}
	if got := bad.String(); got != "StateIndex(200)" {
		t.Errorf("String = %q", got)
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in   string
		want StateIndex
	}{
		{"idle", StateIdle},
		{"Disabled", StateDisabled},
		{"hovered_priority", StateHoveredPriority},
		{"HoveredPriority", StateHoveredPriority},
		{"hovered-priority", StateHoveredPriority},
		{" SELECTED ", StateSelected},
		{"activated", StateActivated},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseState(tt.in)
			if err != nil {
				t.Fatalf("ParseState: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseState("pressed"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("unknown name: err = %v, want ErrInvalidState", err)
	}
}

func TestStateStringRoundTrip(t *testing.T) {
	for _, s := range States() {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
}
