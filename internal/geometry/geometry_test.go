package geometry_test

import (
	"testing"

	"github.com/cascade-wm/cascade/internal/geometry"
)

func TestRectangleContainsHalfOpen(t *testing.T) {
	r := geometry.NewRectangle(geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 10, Height: 10})

	cases := []struct {
		p    geometry.Point
		want bool
	}{
		{geometry.Point{X: 0, Y: 0}, true},
		{geometry.Point{X: 9, Y: 9}, true},
		{geometry.Point{X: 10, Y: 5}, false},
		{geometry.Point{X: 5, Y: 10}, false},
		{geometry.Point{X: -1, Y: 5}, false},
	}

	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectangleTranslate(t *testing.T) {
	r := geometry.NewRectangle(geometry.Point{X: 10, Y: 10}, geometry.Size{Width: 5, Height: 5})
	moved := r.Translate(geometry.Displacement{DX: -3, DY: 2})

	if moved.TopLeft != (geometry.Point{X: 7, Y: 12}) {
		t.Errorf("unexpected top-left after translate: %+v", moved.TopLeft)
	}
	if moved.Size != r.Size {
		t.Errorf("translate must not affect size, got %+v", moved.Size)
	}
}

func TestSizeWithWidthHeight(t *testing.T) {
	s := geometry.Size{Width: 100, Height: 200}
	if got := s.WithWidth(50); got.Width != 50 || got.Height != 200 {
		t.Errorf("WithWidth: got %+v", got)
	}
	if got := s.WithHeight(50); got.Height != 50 || got.Width != 100 {
		t.Errorf("WithHeight: got %+v", got)
	}
}

func TestPointAddSub(t *testing.T) {
	p := geometry.Point{X: 5, Y: 5}
	d := geometry.Displacement{DX: 2, DY: -1}
	moved := p.Add(d)
	if moved != (geometry.Point{X: 7, Y: 4}) {
		t.Errorf("Add: got %+v", moved)
	}
	if back := moved.Sub(p); back != d {
		t.Errorf("Sub: got %+v, want %+v", back, d)
	}
}

func TestRectangleCenterX(t *testing.T) {
	r := geometry.NewRectangle(geometry.Point{X: 100, Y: 0}, geometry.Size{Width: 40, Height: 10})
	if got := r.CenterX(); got != 120 {
		t.Errorf("CenterX() = %d, want 120", got)
	}
}
