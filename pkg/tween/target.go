package tween

import "fmt"

// Target exposes named numeric attributes for animation.
//
// An [Animation] reads each configured attribute once when it starts and
// writes the blended value on every update. Implementations decide what a
// field name means: struct members, map entries, table columns.
type Target interface {
	// NumericField returns the current value of the named attribute.
	// Unknown names return an error; [FieldError] is the conventional type.
	NumericField(name string) (float64, error)

	// SetNumericField replaces the value of the named attribute.
	SetNumericField(name string, value float64)
}

// FieldError reports an attribute the target does not expose.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("no numeric field %q", e.Field)
}

// Fields adapts a map of attribute pointers into a [Target].
//
//	x, y := 0.0, 0.0
//	target := tween.Fields{"x": &x, "y": &y}
//
// Writes to names the map does not hold are dropped.
type Fields map[string]*float64

// NumericField returns the value behind the named pointer.
func (f Fields) NumericField(name string) (float64, error) {
	ptr, ok := f[name]
	if !ok || ptr == nil {
		return 0, &FieldError{Field: name}
	}
	return *ptr, nil
}

// SetNumericField stores value through the named pointer.
func (f Fields) SetNumericField(name string, value float64) {
	if ptr, ok := f[name]; ok && ptr != nil {
		*ptr = value
	}
}
