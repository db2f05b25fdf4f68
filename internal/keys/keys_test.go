package keys

import "testing"

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Ctrl, "Ctrl"},
		{S, "S"},
		{A, "A"},
		{Digit0 + 7, "7"},
		{F1, "F1"},
		{F12, "F12"},
		{Escape, "Esc"},
		{None, "None"},
		{Code(250), "Key(250)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
	}{
		{'s', S},
		{'S', S},
		{'a', A},
		{'z', Z},
		{'0', Digit0},
		{' ', Space},
		{'!', None},
		{'é', None},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := FromRune(tt.r); got != tt.want {
				t.Errorf("FromRune(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFunction(t *testing.T) {
	if got := Function(1); got != F1 {
		t.Errorf("Function(1) = %v, want F1", got)
	}
	if got := Function(12); got != F12 {
		t.Errorf("Function(12) = %v, want F12", got)
	}
	if got := Function(13); got != None {
		t.Errorf("Function(13) = %v, want None", got)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KeyDown, KeyUp} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("keypress"); ok {
		t.Error("ParseKind(keypress) should fail")
	}
}

func TestFormat(t *testing.T) {
	if got := Format([]Code{Ctrl, S}); got != "Ctrl+S" {
		t.Errorf("Format = %q, want Ctrl+S", got)
	}
	if got := Format(nil); got != "(empty)" {
		t.Errorf("Format(nil) = %q", got)
	}
}

func TestEventConstructors(t *testing.T) {
	down := DownEvent(Down)
	if down.Kind != KeyDown || down.Code != Down || down.Time.IsZero() {
		t.Errorf("DownEvent(Down) = %+v", down)
	}
	up := UpEvent(Up)
	if up.Kind != KeyUp || up.Code != Up || up.Time.IsZero() {
		t.Errorf("UpEvent(Up) = %+v", up)
	}
	if Down.String() != "Down" || Up.String() != "Up" {
		t.Errorf("arrow names = %q, %q", Down.String(), Up.String())
	}
}
