package tween

import (
	"errors"
	"testing"
)

func TestFieldsRead(t *testing.T) {
	x := 7.5
	target := Fields{"x": &x}
	got, err := target.NumericField("x")
	if err != nil {
		t.Fatalf("NumericField(x) returned error: %v", err)
	}
	if got != 7.5 {
		t.Errorf("NumericField(x) = %v, want 7.5", got)
	}
}

func TestFieldsReadUnknown(t *testing.T) {
	target := Fields{}
	_, err := target.NumericField("missing")
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %T", err)
	}
	if fieldErr.Field != "missing" {
		t.Errorf("Field = %q, want %q", fieldErr.Field, "missing")
	}
	want := `no numeric field "missing"`
	if fieldErr.Error() != want {
		t.Errorf("Error() = %q, want %q", fieldErr.Error(), want)
	}
}

func TestFieldsReadNilPointer(t *testing.T) {
	target := Fields{"x": nil}
	if _, err := target.NumericField("x"); err == nil {
		t.Error("expected error for nil pointer entry")
	}
}

func TestFieldsWrite(t *testing.T) {
	x := 0.0
	target := Fields{"x": &x, "nil": nil}
	target.SetNumericField("x", 12.25)
	if x != 12.25 {
		t.Errorf("x = %v, want 12.25", x)
	}
	// Writes to unknown or nil entries are dropped, not panics.
	target.SetNumericField("missing", 1)
	target.SetNumericField("nil", 1)
}

// A struct-backed target works through the same interface.
type rect struct {
	X, Y float64
}

func (r *rect) NumericField(name string) (float64, error) {
	switch name {
	case "x":
		return r.X, nil
	case "y":
		return r.Y, nil
	}
	return 0, &FieldError{Field: name}
}

func (r *rect) SetNumericField(name string, value float64) {
	switch name {
	case "x":
		r.X = value
	case "y":
		r.Y = value
	}
}

func TestCustomTarget(t *testing.T) {
	r := &rect{X: 0, Y: 100}
	ani, err := New(Props{"x": 50, "y": 0}, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if err := ani.Start(r); err != nil {
		t.Fatal(err)
	}
	ani.Update(500)
	if r.X != 25 {
		t.Errorf("X = %v, want 25", r.X)
	}
	if r.Y != 50 {
		t.Errorf("Y = %v, want 50", r.Y)
	}
	ani.Update(500)
	if r.X != 50 || r.Y != 0 {
		t.Errorf("final = (%v, %v), want (50, 0)", r.X, r.Y)
	}
}
