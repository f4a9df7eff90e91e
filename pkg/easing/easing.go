// Package easing provides the transition curves that shape animation
// progress over time.
//
// # Core Components
//
//   - Catalog curves: named functions like [InQuad], [OutElastic] and
//     [InOutBounce] that transform linear progress in [0, 1] into eased
//     progress. The catalog follows the classic Penner set as ported to
//     Clutter and Kivy, with identical constants and boundary behavior.
//
//   - [ByName]: string lookup for the catalog, using the canonical
//     snake_case names ("linear", "in_quad", ... "in_out_bounce").
//     [Names] lists them.
//
//   - [CubicBezier]: custom curves matching CSS cubic-bezier(), plus the
//     standard presets [Ease], [EaseIn], [EaseOut], [EaseInOut].
//
// Any function with the [Func] signature works as a curve; the catalog is
// a convenience, not a requirement.
//
// # Boundary Behavior
//
// Catalog curves map 0 to 0 and 1 to 1 up to the limits of the underlying
// formulas. The expo curves special-case both endpoints and are exact.
// The sine curves lean on math.Cos, so InSine(1) lands one ulp below 1.
// The elastic and back families deliberately overshoot outside [0, 1] in
// their interiors, and InElastic(0) is the small negative value the damped
// sinusoid yields there (about -1/2048), not 0.
package easing

import "math"

// Func transforms animation progress. The input is linear progress in
// [0, 1]; the output is the fraction used to blend between start and end
// values. Outputs outside [0, 1] are valid and produce overshoot.
type Func func(progress float64) float64

// Linear returns progress unchanged.
func Linear(p float64) float64 {
	return p
}

// InQuad accelerates from rest along a parabola.
func InQuad(p float64) float64 {
	return p * p
}

// OutQuad decelerates to a stop along a parabola.
func OutQuad(p float64) float64 {
	return -1.0 * p * (p - 2.0)
}

// InOutQuad accelerates through the first half and decelerates through
// the second.
func InOutQuad(p float64) float64 {
	q := p * 2
	if q < 1 {
		return 0.5 * q * q
	}
	q -= 1.0
	return -0.5 * (q*(q-2.0) - 1.0)
}

// InCubic accelerates from rest, more sharply than InQuad.
func InCubic(p float64) float64 {
	return p * p * p
}

// OutCubic decelerates to a stop, more sharply than OutQuad.
func OutCubic(p float64) float64 {
	q := p - 1.0
	return q*q*q + 1.0
}

// InOutCubic combines InCubic and OutCubic around the midpoint.
func InOutCubic(p float64) float64 {
	q := p * 2
	if q < 1 {
		return 0.5 * q * q * q
	}
	q -= 2
	return 0.5 * (q*q*q + 2.0)
}

// InQuart accelerates from rest with a fourth-power ramp.
func InQuart(p float64) float64 {
	return p * p * p * p
}

// OutQuart decelerates to a stop with a fourth-power ramp.
func OutQuart(p float64) float64 {
	q := p - 1.0
	return -1.0 * (q*q*q*q - 1.0)
}

// InOutQuart combines InQuart and OutQuart around the midpoint.
func InOutQuart(p float64) float64 {
	q := p * 2
	if q < 1 {
		return 0.5 * q * q * q * q
	}
	q -= 2
	return -0.5 * (q*q*q*q - 2.0)
}

// InQuint accelerates from rest with a fifth-power ramp.
func InQuint(p float64) float64 {
	return p * p * p * p * p
}

// OutQuint decelerates to a stop with a fifth-power ramp.
func OutQuint(p float64) float64 {
	q := p - 1.0
	return q*q*q*q*q + 1.0
}

// InOutQuint combines InQuint and OutQuint around the midpoint.
func InOutQuint(p float64) float64 {
	q := p * 2
	if q < 1 {
		return 0.5 * q * q * q * q * q
	}
	q -= 2.0
	return 0.5 * (q*q*q*q*q + 2.0)
}

// InSine follows a quarter cosine wave, gentler than InQuad.
func InSine(p float64) float64 {
	return -1.0*math.Cos(p*(math.Pi/2.0)) + 1.0
}

// OutSine follows a quarter sine wave, gentler than OutQuad.
func OutSine(p float64) float64 {
	return math.Sin(p * (math.Pi / 2.0))
}

// InOutSine follows a half cosine wave.
func InOutSine(p float64) float64 {
	return -0.5 * (math.Cos(math.Pi*p) - 1.0)
}

// InExpo doubles its pace ten times over, starting near flat.
// Progress 0 is special-cased to return exactly 0.
func InExpo(p float64) float64 {
	if p == 0 {
		return 0.0
	}
	return math.Pow(2, 10*(p-1.0))
}

// OutExpo halves its pace ten times over, ending near flat.
// Progress 1 is special-cased to return exactly 1.
func OutExpo(p float64) float64 {
	if p == 1.0 {
		return 1.0
	}
	return -math.Pow(2, -10*p) + 1.0
}

// InOutExpo combines InExpo and OutExpo around the midpoint, with both
// endpoints special-cased to exact values.
func InOutExpo(p float64) float64 {
	if p == 0 {
		return 0.0
	}
	if p == 1.0 {
		return 1.0
	}
	q := p * 2
	if q < 1 {
		return 0.5 * math.Pow(2, 10*(q-1.0))
	}
	q -= 1.0
	return 0.5 * (-math.Pow(2, -10*q) + 2.0)
}

// InCirc accelerates along a quarter circle arc.
func InCirc(p float64) float64 {
	return -1.0 * (math.Sqrt(1.0-p*p) - 1.0)
}

// OutCirc decelerates along a quarter circle arc.
func OutCirc(p float64) float64 {
	q := p - 1.0
	return math.Sqrt(1.0 - q*q)
}

// InOutCirc combines InCirc and OutCirc around the midpoint.
func InOutCirc(p float64) float64 {
	q := p * 2
	if q < 1 {
		return -0.5 * (math.Sqrt(1.0-q*q) - 1.0)
	}
	q -= 2.0
	return 0.5 * (math.Sqrt(1.0-q*q) + 1.0)
}

// InElastic winds up like a spring before snapping to the target, with an
// exponentially growing oscillation of period 0.3.
func InElastic(p float64) float64 {
	period := 0.3
	s := period / 4.0
	q := p
	if q == 1 {
		return 1.0
	}
	q -= 1.0
	return -(math.Pow(2, 10*q) * math.Sin((q-s)*(2*math.Pi)/period))
}

// OutElastic overshoots the target and rings down like a released spring.
func OutElastic(p float64) float64 {
	period := 0.3
	s := period / 4.0
	q := p
	if q == 1 {
		return 1.0
	}
	return math.Pow(2, -10*q)*math.Sin((q-s)*(2*math.Pi)/period) + 1.0
}

// InOutElastic winds up, crosses the midpoint, then rings down, using a
// period of 0.45.
func InOutElastic(p float64) float64 {
	period := 0.3 * 1.5
	s := period / 4.0
	q := p * 2
	if q == 2 {
		return 1.0
	}
	if q < 1 {
		q -= 1.0
		return -0.5 * (math.Pow(2, 10*q) * math.Sin((q-s)*(2.0*math.Pi)/period))
	}
	q -= 1.0
	return math.Pow(2, -10*q)*math.Sin((q-s)*(2.0*math.Pi)/period)*0.5 + 1.0
}

// InBack pulls slightly backward before accelerating toward the target.
// The overshoot amount is the classic 1.70158, which peaks at 10%.
func InBack(p float64) float64 {
	return p * p * ((1.70158+1.0)*p - 1.70158)
}

// OutBack overshoots the target by up to 10% before settling.
func OutBack(p float64) float64 {
	q := p - 1.0
	return q*q*((1.70158+1)*q+1.70158) + 1.0
}

// InOutBack pulls backward, then overshoots, with the overshoot scaled
// by 1.525 to keep the peaks at 10% of the halved range.
func InOutBack(p float64) float64 {
	q := p * 2.0
	s := 1.70158 * 1.525
	if q < 1 {
		return 0.5 * (q * q * ((s+1.0)*q - s))
	}
	q -= 2.0
	return 0.5 * (q*q*((s+1.0)*q+s) + 2.0)
}

// outBounce is the shared bounce kernel over [0, d]: four parabolic arcs
// of diminishing height joined at 1/2.75, 2/2.75 and 2.5/2.75.
func outBounce(t, d float64) float64 {
	q := t / d
	if q < 1.0/2.75 {
		return 7.5625 * q * q
	}
	if q < 2.0/2.75 {
		q -= 1.5 / 2.75
		return 7.5625*q*q + 0.75
	}
	if q < 2.5/2.75 {
		q -= 2.25 / 2.75
		return 7.5625*q*q + 0.9375
	}
	q -= 2.625 / 2.75
	return 7.5625*q*q + 0.984375
}

func inBounce(t, d float64) float64 {
	return 1.0 - outBounce(d-t, d)
}

// InBounce bounces against the start before releasing toward the target.
func InBounce(p float64) float64 {
	return inBounce(p, 1.0)
}

// OutBounce drops onto the target and bounces to rest, like a ball
// hitting the floor.
func OutBounce(p float64) float64 {
	return outBounce(p, 1.0)
}

// InOutBounce bounces at both ends of the motion.
func InOutBounce(p float64) float64 {
	q := p * 2.0
	if q < 1.0 {
		return inBounce(q, 1.0) * 0.5
	}
	return outBounce(q-1.0, 1.0)*0.5 + 0.5
}
