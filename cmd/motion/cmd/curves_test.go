package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-drift/motion/pkg/easing"
)

func TestProfileWidth(t *testing.T) {
	got := profile(easing.Linear, profileWidth)
	if n := utf8.RuneCountInString(got); n != profileWidth {
		t.Errorf("profile width = %d runes, want %d", n, profileWidth)
	}
}

func TestProfileEndpoints(t *testing.T) {
	got := []rune(profile(easing.Linear, 8))
	if got[0] != '▁' {
		t.Errorf("first glyph = %q, want the lowest block", got[0])
	}
	if got[len(got)-1] != '█' {
		t.Errorf("last glyph = %q, want the full block", got[len(got)-1])
	}
}

func TestProfileMonotoneForLinear(t *testing.T) {
	// The block glyphs are consecutive codepoints, so rune order is
	// fill order.
	got := []rune(profile(easing.Linear, profileWidth))
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("glyph %d (%q) below its predecessor (%q)", i, got[i], got[i-1])
		}
	}
}

func TestProfileClampsOvershoot(t *testing.T) {
	got := profile(easing.OutBack, profileWidth)
	for _, r := range got {
		if r < '▁' || r > '█' {
			t.Fatalf("glyph %q outside the display ramp", r)
		}
	}
}

func TestListCurves(t *testing.T) {
	var buf bytes.Buffer
	if err := listCurves([]string{"linear", "out_quad"}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "linear") || !strings.Contains(out, "out_quad") {
		t.Errorf("output missing curve names:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("output has %d lines, want 2", lines)
	}
}

func TestListCurvesWholeCatalog(t *testing.T) {
	names := easing.Names()
	var buf bytes.Buffer
	if err := listCurves(names, &buf); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != len(names) {
		t.Errorf("output has %d lines, want %d", lines, len(names))
	}
}

func TestListCurvesUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := listCurves([]string{"wobble"}, &buf)
	if err == nil {
		t.Fatal("expected error for unknown curve")
	}
	var unknown *easing.UnknownCurveError
	if !errors.As(err, &unknown) || unknown.Name != "wobble" {
		t.Errorf("error = %v, want UnknownCurveError for wobble", err)
	}
}
