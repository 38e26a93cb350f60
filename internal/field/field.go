// Package field samples a direction field for y' = f(x,y) over a
// rectangular domain and projects it into an aspect-corrected drawing
// space, optionally with an Euler approximation curve overlaid.
package field

import (
	"errors"
	"math"

	"github.com/san-kum/slopefield/internal/euler"
)

// Domain errors, checked before any sampling begins.
var (
	// ErrDegenerateDomain indicates max <= min on an axis; a zero-height
	// y range has no defined scaling.
	ErrDegenerateDomain = errors.New("field: domain must satisfy x_max > x_min and y_max > y_min")

	// ErrInvalidGrid indicates a non-positive grid spacing.
	ErrInvalidGrid = errors.New("field: grid spacing must be positive")

	// ErrInvalidCurveStep indicates a non-positive overlay step size.
	ErrInvalidCurveStep = errors.New("field: curve step must be positive")
)

// edgeEps absorbs float accumulation undershoot at the domain edges so the
// right and top boundary samples are not dropped.
const edgeEps = 1e-12

// segmentLength is the length of every field arrow in drawing units.
const segmentLength = 2.0

// Domain is the logical (x, y) rectangle being sampled.
type Domain struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

func (d Domain) Validate() error {
	if d.XMax <= d.XMin || d.YMax <= d.YMin {
		return ErrDegenerateDomain
	}
	return nil
}

func (d Domain) XRange() float64 { return d.XMax - d.XMin }
func (d Domain) YRange() float64 { return d.YMax - d.YMin }

// Grid is the requested visual spacing of field samples in drawing space,
// independent of the domain extents.
type Grid struct {
	XStep float64
	YStep float64
}

// Segment is a line in drawing-space coordinates: a field arrow, or one
// edge of the overlay polyline.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Point is a drawing-space coordinate on the overlay polyline.
type Point struct {
	X, Y float64
}

// Projection maps the logical domain onto a square of side XRange so
// slope arrows keep a meaningful direction when the two ranges differ by
// orders of magnitude. The x axis is the reference axis and is left
// unscaled; y is stretched by XRange/YRange.
type Projection struct {
	domain Domain
	yScale float64
}

// NewProjection validates the domain and builds its drawing-space map.
func NewProjection(d Domain) (Projection, error) {
	if err := d.Validate(); err != nil {
		return Projection{}, err
	}
	return Projection{domain: d, yScale: d.XRange() / d.YRange()}, nil
}

// YScale is the factor applied to y offsets and to slopes.
func (p Projection) YScale() float64 { return p.yScale }

// Y maps a logical y into drawing space.
func (p Projection) Y(y float64) float64 {
	return p.domain.YMin + (y-p.domain.YMin)*p.yScale
}

// Top is the drawing-space end of the y axis: YMin + XRange, so both axes
// span the same drawn length.
func (p Projection) Top() float64 {
	return p.domain.YMin + p.domain.XRange()
}

// Sample walks the domain on the given grid (x outer, y inner, both edges
// inclusive within a small tolerance) and emits one fixed-length segment
// per grid point, centered at the projected point and oriented along the
// projected slope. Any evaluation failure aborts the whole sample.
//
// The y walk uses YStep/YScale so the requested visual spacing is honored
// in drawing space even though y is stretched.
func Sample(f euler.Func, d Domain, g Grid) ([]Segment, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if g.XStep <= 0 || g.YStep <= 0 {
		return nil, ErrInvalidGrid
	}
	p, err := NewProjection(d)
	if err != nil {
		return nil, err
	}

	ySampleStep := g.YStep / p.yScale
	var segs []Segment
	for x := d.XMin; x <= d.XMax+edgeEps; x += g.XStep {
		for y := d.YMin; y <= d.YMax+edgeEps; y += ySampleStep {
			m, err := f(x, y)
			if err != nil {
				return nil, err
			}
			mScaled := m * p.yScale
			dx := segmentLength / math.Sqrt(1+mScaled*mScaled)
			dy := mScaled * dx
			yc := p.Y(y)
			segs = append(segs, Segment{
				X0: x - dx/2, Y0: yc - dy/2,
				X1: x + dx/2, Y1: yc + dy/2,
			})
		}
	}
	return segs, nil
}
