package easing

import (
	"fmt"
	"sort"
)

// catalog maps canonical snake_case names to curves. The names match the
// original Clutter/Kivy transition identifiers so declarative definitions
// stay portable.
var catalog = map[string]Func{
	"linear":         Linear,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
}

// UnknownCurveError reports a curve name with no catalog entry.
type UnknownCurveError struct {
	Name string
}

func (e *UnknownCurveError) Error() string {
	return fmt.Sprintf("easing: unknown curve %q", e.Name)
}

// ByName returns the catalog curve registered under name.
// The error is an [UnknownCurveError] when no such curve exists.
func ByName(name string) (Func, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, &UnknownCurveError{Name: name}
	}
	return fn, nil
}

// Names returns every catalog curve name in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
