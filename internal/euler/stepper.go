package euler

// Func evaluates the slope y' at a point.
type Func func(x, y float64) (float64, error)

// Step is one row of the integration table. YP is the slope at (X, Y) and
// DY is YP scaled by the step size. Records are never mutated after they
// are emitted.
type Step struct {
	X  float64
	Y  float64
	YP float64
	DY float64
}

// Run integrates from x0 to xEnd in fixed increments and returns one Step
// per grid point, the first at x0.
//
// The endpoint is inclusive: x is rounded to the run precision after every
// advance and the loop keeps going while the rounded x has not passed
// xEnd, so a final step that rounds to exactly xEnd is included. A
// negative step is valid when xEnd < x0 and yields decreasing x. A step
// of zero, or one pointing away from xEnd, is rejected before the loop
// with ErrNonTerminatingStep.
func Run(f Func, step, x0, y0, xEnd float64, precision int) ([]Step, error) {
	if precision < 0 {
		return nil, ErrNegativePrecision
	}
	step = Round(step, precision)
	if step == 0 {
		return nil, ErrNonTerminatingStep
	}
	span := xEnd - x0
	if (span > 0 && step < 0) || (span < 0 && step > 0) {
		return nil, ErrNonTerminatingStep
	}
	past := func(x float64) bool { return x > xEnd }
	if step < 0 {
		past = func(x float64) bool { return x < xEnd }
	}
	return RunUntil(f, step, x0, y0, precision, func(x, y float64) bool {
		return !past(x)
	})
}

// RunUntil integrates while cont holds for the current (x, y). The caller
// owns termination: cont must eventually return false for the given step.
// Used for bounded-region runs where the stop condition depends on y.
func RunUntil(f Func, step, x0, y0 float64, precision int, cont func(x, y float64) bool) ([]Step, error) {
	if precision < 0 {
		return nil, ErrNegativePrecision
	}
	step = Round(step, precision)
	if step == 0 {
		return nil, ErrNonTerminatingStep
	}

	x := Round(x0, precision)
	y := Round(y0, precision)

	var steps []Step
	for cont(x, y) {
		yp, err := f(x, y)
		if err != nil {
			return nil, err
		}
		yp = Round(yp, precision)
		dy := Round(yp*step, precision)
		steps = append(steps, Step{X: x, Y: y, YP: yp, DY: dy})
		x = Round(x+step, precision)
		y = Round(y+dy, precision)
	}
	return steps, nil
}
