package palette

import (
	"image/color"
	"strings"
	"testing"
)

func TestRampEndpoints(t *testing.T) {
	ramp, err := New("#000000", "#ffffff", 11)
	if err != nil {
		t.Fatal(err)
	}
	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := ramp.At(0); got != black {
		t.Errorf("At(0) = %v, want %v", got, black)
	}
	if got := ramp.At(1); got != white {
		t.Errorf("At(1) = %v, want %v", got, white)
	}
}

func TestRampClampsOutOfRange(t *testing.T) {
	ramp, err := New("#ff0000", "#0000ff", 5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ramp.At(-3), ramp.At(0); got != want {
		t.Errorf("At(-3) = %v, want clamped %v", got, want)
	}
	if got, want := ramp.At(2.5), ramp.At(1); got != want {
		t.Errorf("At(2.5) = %v, want clamped %v", got, want)
	}
}

// A black-to-white ramp must brighten monotonically.
func TestRampMonotoneBrightness(t *testing.T) {
	ramp, err := New("black", "white", 101)
	if err != nil {
		t.Fatal(err)
	}
	prev := ramp.At(0)
	for i := 1; i <= 100; i++ {
		got := ramp.At(float64(i) / 100)
		if got.R < prev.R {
			t.Fatalf("entry %d dimmed: %v after %v", i, got, prev)
		}
		prev = got
	}
}

func TestRampInteriorBetweenEndpoints(t *testing.T) {
	ramp, err := New("black", "white", 101)
	if err != nil {
		t.Fatal(err)
	}
	mid := ramp.At(0.5)
	if mid.R == 0 || mid.R == 0xff {
		t.Errorf("At(0.5) = %v, want interior gray", mid)
	}
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("At(0.5) = %v, want neutral gray", mid)
	}
}

func TestRampLen(t *testing.T) {
	ramp, err := New("#000000", "#ffffff", 7)
	if err != nil {
		t.Fatal(err)
	}
	if got := ramp.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		steps   int
		wantErr string
	}{
		{"too few steps", "#000000", "#ffffff", 1, "at least 2 steps"},
		{"bad hex", "#zzz", "#ffffff", 10, "parse"},
		{"unknown name", "notacolor", "#ffffff", 10, "unknown color name"},
		{"bad second endpoint", "#000000", "alsonotacolor", 10, "unknown color name"},
		{"valid hex pair", "#0a3306", "#36ff1f", 101, ""},
		{"valid named pair", "navy", "SpringGreen", 16, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.from, tt.to, tt.steps)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("New() returned error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseColorNamedMatchesHex(t *testing.T) {
	byName, err := ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}
	byHex, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if byName.Hex() != byHex.Hex() {
		t.Errorf("ParseColor(red) = %v, ParseColor(#ff0000) = %v, want equal", byName.Hex(), byHex.Hex())
	}
}
