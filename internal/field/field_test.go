package field

import (
	"errors"
	"math"
	"testing"
)

func flat(v float64) func(x, y float64) (float64, error) {
	return func(x, y float64) (float64, error) { return v, nil }
}

func TestProjection_AspectScaling(t *testing.T) {
	d := Domain{XMin: 0, YMin: 60, XMax: 210, YMax: 95}
	p, err := NewProjection(d)
	if err != nil {
		t.Fatalf("NewProjection failed: %v", err)
	}

	if p.YScale() != 6.0 {
		t.Errorf("YScale = %v, want 6.0", p.YScale())
	}
	if p.Y(60) != 60 {
		t.Errorf("Y(y_min) = %v, want 60", p.Y(60))
	}
	if p.Y(95) != 270 {
		t.Errorf("Y(y_max) = %v, want 270", p.Y(95))
	}
	if p.Top() != 270 {
		t.Errorf("Top = %v, want 270", p.Top())
	}
}

func TestProjection_IdentityWhenSquare(t *testing.T) {
	p, err := NewProjection(Domain{XMin: -1, YMin: -1, XMax: 1, YMax: 1})
	if err != nil {
		t.Fatalf("NewProjection failed: %v", err)
	}
	if p.YScale() != 1 {
		t.Errorf("YScale = %v, want 1", p.YScale())
	}
	if p.Y(0.25) != 0.25 {
		t.Errorf("Y(0.25) = %v, want 0.25", p.Y(0.25))
	}
}

func TestDomain_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		d    Domain
	}{
		{"zero height", Domain{XMin: 0, YMin: 5, XMax: 10, YMax: 5}},
		{"inverted y", Domain{XMin: 0, YMin: 10, XMax: 10, YMax: 5}},
		{"zero width", Domain{XMin: 3, YMin: 0, XMax: 3, YMax: 10}},
		{"inverted x", Domain{XMin: 10, YMin: 0, XMax: 0, YMax: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProjection(tt.d); !errors.Is(err, ErrDegenerateDomain) {
				t.Errorf("NewProjection err = %v, want ErrDegenerateDomain", err)
			}
			if _, err := Sample(flat(0), tt.d, Grid{XStep: 1, YStep: 1}); !errors.Is(err, ErrDegenerateDomain) {
				t.Errorf("Sample err = %v, want ErrDegenerateDomain", err)
			}
		})
	}
}

func TestSample_GridCoverage(t *testing.T) {
	d := Domain{XMin: 0, YMin: 0, XMax: 2, YMax: 2}
	segs, err := Sample(flat(0), d, Grid{XStep: 1, YStep: 1})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	// 3x3 grid, x outer and y inner.
	if len(segs) != 9 {
		t.Fatalf("got %d segments, want 9", len(segs))
	}

	first := segs[0]
	if first.X0 != -1 || first.X1 != 1 || first.Y0 != 0 || first.Y1 != 0 {
		t.Errorf("first segment = %+v, want horizontal length 2 centered at origin", first)
	}
	// Second sample moves along y, not x.
	if segs[1].Y0 != 1 || segs[1].X0 != -1 {
		t.Errorf("second segment = %+v, traversal should be y inner", segs[1])
	}
}

func TestSample_SegmentLength(t *testing.T) {
	d := Domain{XMin: 0, YMin: 0, XMax: 4, YMax: 4}
	f := func(x, y float64) (float64, error) { return x - y, nil }
	segs, err := Sample(f, d, Grid{XStep: 2, YStep: 2})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for i, s := range segs {
		length := math.Hypot(s.X1-s.X0, s.Y1-s.Y0)
		if math.Abs(length-2.0) > 1e-9 {
			t.Errorf("segment %d length = %v, want 2.0", i, length)
		}
	}
}

func TestSample_SlopeScaling(t *testing.T) {
	// y range is half the x range, so slopes double in drawing space.
	d := Domain{XMin: 0, YMin: 0, XMax: 4, YMax: 2}
	segs, err := Sample(flat(1), d, Grid{XStep: 4, YStep: 4})
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	s := segs[0]
	slope := (s.Y1 - s.Y0) / (s.X1 - s.X0)
	if math.Abs(slope-2.0) > 1e-9 {
		t.Errorf("drawn slope = %v, want 2.0 (logical slope 1 times y scale 2)", slope)
	}
}

func TestSample_InvalidGrid(t *testing.T) {
	d := Domain{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
	for _, g := range []Grid{{XStep: 0, YStep: 1}, {XStep: 1, YStep: 0}, {XStep: -1, YStep: 1}} {
		if _, err := Sample(flat(0), d, g); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("Sample(%+v) err = %v, want ErrInvalidGrid", g, err)
		}
	}
}

func TestSample_EvalFailureAbortsAll(t *testing.T) {
	boom := errors.New("cannot evaluate")
	f := func(x, y float64) (float64, error) {
		if x > 0 {
			return 0, boom
		}
		return 0, nil
	}
	segs, err := Sample(f, Domain{XMin: 0, YMin: 0, XMax: 2, YMax: 2}, Grid{XStep: 1, YStep: 1})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want eval error", err)
	}
	if segs != nil {
		t.Errorf("got partial field on failure: %d segments", len(segs))
	}
}
