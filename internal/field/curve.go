package field

import "github.com/san-kum/slopefield/internal/euler"

// Curve configures the overlaid Euler approximation. X0/Y0 default to the
// domain's lower corner when left zero-valued via DefaultCurve.
type Curve struct {
	Step float64
	X0   float64
	Y0   float64
}

// DefaultCurve starts the overlay at the domain's lower corner.
func DefaultCurve(d Domain, step float64) Curve {
	return Curve{Step: step, X0: d.XMin, Y0: d.YMin}
}

// Overlay integrates the curve with the same rounded-step arithmetic as a
// table run, but stops as soon as y leaves [YMin, YMax] or x passes XMax,
// rather than at a fixed endpoint. Each surviving point is projected into
// drawing space. Fewer than two points means no polyline: the result is
// empty, including when the initial y already lies outside the range.
func Overlay(f euler.Func, d Domain, c Curve, precision int) ([]Point, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if c.Step <= 0 {
		return nil, ErrInvalidCurveStep
	}
	p, err := NewProjection(d)
	if err != nil {
		return nil, err
	}

	inside := func(x, y float64) bool {
		return x <= d.XMax+edgeEps && y >= d.YMin-edgeEps && y <= d.YMax+edgeEps
	}
	steps, err := euler.RunUntil(f, c.Step, c.X0, c.Y0, precision, inside)
	if err != nil {
		return nil, err
	}
	if len(steps) < 2 {
		return nil, nil
	}

	pts := make([]Point, len(steps))
	for i, s := range steps {
		pts[i] = Point{X: s.X, Y: p.Y(s.Y)}
	}
	return pts, nil
}
