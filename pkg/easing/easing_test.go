package easing

import (
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
)

// Boundary values for every catalog curve. Most curves land on 0 and 1
// up to float rounding. The elastic in/in-out curves start at the small
// nonzero value their damped sinusoid yields at progress 0.
func TestCurveBoundaries(t *testing.T) {
	const eps = 1e-9
	for _, name := range Names() {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) returned error: %v", name, err)
		}
		want0 := 0.0
		switch name {
		case "in_elastic":
			want0 = -1.0 / 2048
		case "in_out_elastic":
			want0 = math.Sin(math.Pi/18) / 2048
		}
		if got := fn(0); math.Abs(got-want0) > eps {
			t.Errorf("%s(0) = %v, want %v", name, got, want0)
		}
		if got := fn(1); math.Abs(got-1) > eps {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

// The expo curves special-case their endpoints, so those must be exact,
// not merely close.
func TestExpoBoundariesExact(t *testing.T) {
	if got := InExpo(0); got != 0 {
		t.Errorf("InExpo(0) = %v, want exactly 0", got)
	}
	if got := OutExpo(1); got != 1 {
		t.Errorf("OutExpo(1) = %v, want exactly 1", got)
	}
	if got := InOutExpo(0); got != 0 {
		t.Errorf("InOutExpo(0) = %v, want exactly 0", got)
	}
	if got := InOutExpo(1); got != 1 {
		t.Errorf("InOutExpo(1) = %v, want exactly 1", got)
	}
	if got := InElastic(1); got != 1 {
		t.Errorf("InElastic(1) = %v, want exactly 1", got)
	}
	if got := OutElastic(1); got != 1 {
		t.Errorf("OutElastic(1) = %v, want exactly 1", got)
	}
	if got := InOutElastic(1); got != 1 {
		t.Errorf("InOutElastic(1) = %v, want exactly 1", got)
	}
}

func TestLinearIdentity(t *testing.T) {
	for i := 0; i <= 16; i++ {
		p := float64(i) / 16
		if got := Linear(p); got != p {
			t.Errorf("Linear(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		p    float64
		want float64
	}{
		{"InQuad", InQuad, 0.5, 0.25},
		{"OutQuad", OutQuad, 0.5, 0.75},
		{"InCubic", InCubic, 0.5, 0.125},
		{"OutCubic", OutCubic, 0.5, 0.875},
		{"InQuart", InQuart, 0.5, 0.0625},
		{"InQuint", InQuint, 0.5, 0.03125},
		{"InExpo", InExpo, 0.5, 0.03125},
		{"OutExpo", OutExpo, 0.5, 0.96875},
		{"OutSine", OutSine, 0.5, 0.7071067811865476},
		{"InBack", InBack, 0.5, -0.0876975},
		{"OutBack", OutBack, 0.5, 1.0876975},
		{"OutBounce", OutBounce, 0.5, 0.765625},
		{"OutBounce", OutBounce, 0.25, 0.47265625},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

// Every in-out curve crosses the midpoint: f(0.5) = 0.5.
func TestInOutMidpoint(t *testing.T) {
	for _, name := range Names() {
		if !strings.HasPrefix(name, "in_out_") {
			continue
		}
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) returned error: %v", name, err)
		}
		if got := fn(0.5); math.Abs(got-0.5) > 1e-12 {
			t.Errorf("%s(0.5) = %v, want 0.5", name, got)
		}
	}
}

// The polynomial, sine, expo and circ families never reverse direction.
// Elastic, back and bounce oscillate or overshoot, so they are excluded.
func TestMonotonicCurves(t *testing.T) {
	monotonic := []string{
		"linear",
		"in_quad", "out_quad", "in_out_quad",
		"in_cubic", "out_cubic", "in_out_cubic",
		"in_quart", "out_quart", "in_out_quart",
		"in_quint", "out_quint", "in_out_quint",
		"in_sine", "out_sine", "in_out_sine",
		"in_expo", "out_expo", "in_out_expo",
		"in_circ", "out_circ", "in_out_circ",
	}
	for _, name := range monotonic {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) returned error: %v", name, err)
		}
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			p := float64(i) / 100
			got := fn(p)
			if got < prev {
				t.Errorf("%s(%v) = %v, decreased from %v", name, p, got, prev)
				break
			}
			prev = got
		}
	}
}

// The bounce kernel joins four parabolic arcs; each join lands back on a
// known offset.
func TestBounceSegmentJoins(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{1.0 / 2.75, 1.0},
		{1.5 / 2.75, 0.75},
		{2.0 / 2.75, 1.0},
		{2.25 / 2.75, 0.9375},
		{2.5 / 2.75, 1.0},
		{2.625 / 2.75, 0.984375},
	}
	for _, tt := range tests {
		if got := OutBounce(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("OutBounce(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	fn, err := ByName("ease_in_quad")
	if fn != nil {
		t.Error("expected nil Func for unknown curve")
	}
	var unknown *UnknownCurveError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCurveError, got %T", err)
	}
	if unknown.Name != "ease_in_quad" {
		t.Errorf("Name = %q, want %q", unknown.Name, "ease_in_quad")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 31 {
		t.Errorf("len(Names()) = %d, want 31", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, name := range names {
		fn, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) returned error: %v", name, err)
		}
		if fn == nil {
			t.Errorf("ByName(%q) returned nil Func", name)
		}
	}
}
