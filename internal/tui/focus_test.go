package tui

import "testing"

func TestFocusTarget_NextPrev(t *testing.T) {
	tests := []struct {
		name  string
		input FocusTarget
		next  FocusTarget
		prev  FocusTarget
	}{
		{"log", FocusLog, FocusSets, FocusSets},
		{"sets", FocusSets, FocusLog, FocusLog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Next(); got != tt.next {
				t.Errorf("Next() = %v, want %v", got, tt.next)
			}
			if got := tt.input.Prev(); got != tt.prev {
				t.Errorf("Prev() = %v, want %v", got, tt.prev)
			}
		})
	}
}

func TestFocusTarget_String(t *testing.T) {
	tests := []struct {
		input FocusTarget
		want  string
	}{
		{FocusLog, "log"},
		{FocusSets, "sets"},
		{FocusTarget(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.input.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputMode(t *testing.T) {
	if ModeTap.Toggle() != ModeLatch || ModeLatch.Toggle() != ModeTap {
		t.Error("Toggle should alternate between tap and latch")
	}
	tests := []struct {
		input InputMode
		want  string
	}{
		{ModeTap, "TAP"},
		{ModeLatch, "LATCH"},
		{InputMode(7), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.input.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
