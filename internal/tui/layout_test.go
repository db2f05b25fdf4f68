package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tooSmall bool
		logW     int
		setsW    int
		bodyH    int
	}{
		{name: "60x16 minimum", width: 60, height: 16, logW: 36, setsW: 24, bodyH: 14},
		{name: "80x24", width: 80, height: 24, logW: 52, setsW: 28, bodyH: 22},
		{name: "200x50 clamps sets", width: 200, height: 50, logW: 156, setsW: 44, bodyH: 48},
		{name: "too narrow", width: 59, height: 30, tooSmall: true},
		{name: "too short", width: 120, height: 15, tooSmall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall != tt.tooSmall {
				t.Fatalf("TooSmall = %v, want %v", l.TooSmall, tt.tooSmall)
			}
			if tt.tooSmall {
				return
			}
			if l.Log.Width != tt.logW {
				t.Errorf("Log.Width = %d, want %d", l.Log.Width, tt.logW)
			}
			if l.Sets.Width != tt.setsW {
				t.Errorf("Sets.Width = %d, want %d", l.Sets.Width, tt.setsW)
			}
			if l.Log.Height != tt.bodyH || l.Sets.Height != tt.bodyH {
				t.Errorf("body heights = %d/%d, want %d", l.Log.Height, l.Sets.Height, tt.bodyH)
			}
			if l.Sets.X != l.Log.Width {
				t.Errorf("Sets.X = %d, want %d", l.Sets.X, l.Log.Width)
			}
			if l.Footer.Y != tt.height-1 {
				t.Errorf("Footer.Y = %d, want %d", l.Footer.Y, tt.height-1)
			}
		})
	}
}

func TestInnerDims(t *testing.T) {
	w, h := innerDims(Rect{Width: 30, Height: 10})
	if w != 28 || h != 8 {
		t.Errorf("innerDims = %dx%d, want 28x8", w, h)
	}
	w, h = innerDims(Rect{Width: 1, Height: 0})
	if w != 1 || h != 1 {
		t.Errorf("innerDims clamps to 1x1, got %dx%d", w, h)
	}
}
