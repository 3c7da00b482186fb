package geometry

import (
	"math"
	"testing"

	"github.com/rayward/go-raytracer/pkg/core"
)

func TestGroupAddChild(t *testing.T) {
	g := NewGroup()
	s := NewSphere()
	g.AddChild(s)

	if len(g.Children()) != 1 || g.Children()[0] != Shape(s) {
		t.Fatal("child was not attached")
	}
	if s.Parent() != Shape(g) {
		t.Error("child's parent is not the group")
	}
}

func TestGroupLocalIntersect(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		g := NewGroup()
		r := mustRay(t, core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
		xs, err := g.LocalIntersect(r)
		if err != nil {
			t.Fatalf("LocalIntersect() error = %v", err)
		}
		if len(xs) != 0 {
			t.Errorf("got %d intersections, want 0", len(xs))
		}
	})

	t.Run("children sorted by t", func(t *testing.T) {
		g := NewGroup()
		s1 := NewSphere()
		s2 := NewSphere()
		s2.SetTransform(core.Identity().Translate(0, 0, -3))
		s3 := NewSphere()
		s3.SetTransform(core.Identity().Translate(5, 0, 0))
		g.AddChild(s1)
		g.AddChild(s2)
		g.AddChild(s3)

		r := mustRay(t, core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs, err := g.LocalIntersect(r)
		if err != nil {
			t.Fatalf("LocalIntersect() error = %v", err)
		}
		if len(xs) != 4 {
			t.Fatalf("got %d intersections, want 4", len(xs))
		}
		wantObjects := []Shape{s2, s2, s1, s1}
		for i, want := range wantObjects {
			if xs[i].Object != want {
				t.Errorf("intersection %d hit the wrong sphere", i)
			}
		}
	})

	t.Run("group transform applies to children", func(t *testing.T) {
		g := NewGroup()
		g.SetTransform(core.Identity().Scale(2, 2, 2))
		s := NewSphere()
		s.SetTransform(core.Identity().Translate(5, 0, 0))
		g.AddChild(s)

		r := mustRay(t, core.NewPoint(10, 0, -10), core.NewVector(0, 0, 1))
		xs := mustIntersect(t, g, r)
		if len(xs) != 2 {
			t.Fatalf("got %d intersections, want 2", len(xs))
		}
		for i := range xs {
			if xs[i].Object != Shape(s) {
				t.Errorf("intersection %d reports a group, not the leaf", i)
			}
		}
	})
}

func TestGroupBoundsCoverChildren(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Identity().Scale(2, 2, 2).Translate(2, 5, -3))

	c := NewCylinder()
	c.Minimum = -2
	c.Maximum = 2
	c.SetTransform(core.Identity().Scale(0.5, 1, 0.5).Translate(-4, -1, 4))

	g := NewGroup()
	g.AddChild(s)
	g.AddChild(c)

	b := g.Bounds()
	if !b.Min.Equals(core.NewPoint(-4.5, -3, -5)) {
		t.Errorf("Min = %v, want (-4.5, -3, -5)", b.Min)
	}
	if !b.Max.Equals(core.NewPoint(4, 7, 4.5)) {
		t.Errorf("Max = %v, want (4, 7, 4.5)", b.Max)
	}
}

func TestGroupBoundsPruneChildren(t *testing.T) {
	// A ray pointed away from the group's box must produce no
	// intersections; the box test rejects it before any child runs.
	g := NewGroup()
	g.AddChild(NewSphere())

	r := mustRay(t, core.NewPoint(0, 5, 0), core.NewVector(1, 0, 0))
	xs, err := g.LocalIntersect(r)
	if err != nil {
		t.Fatalf("LocalIntersect() error = %v", err)
	}
	if len(xs) != 0 {
		t.Errorf("got %d intersections, want 0", len(xs))
	}
}

func TestGroupBoundsWithUnboundedChildren(t *testing.T) {
	// A plane's box is infinite in x and z. The group's cached box must
	// absorb those infinities without turning into NaN, or the box test
	// would reject every ray and hide the bounded siblings too.
	t.Run("plane beside a sphere", func(t *testing.T) {
		g := NewGroup()
		g.AddChild(NewPlane())
		g.AddChild(NewSphere())

		b := g.Bounds()
		if !math.IsInf(b.Min.X, -1) || !math.IsInf(b.Max.X, 1) {
			t.Errorf("x extent = [%v, %v], want infinite", b.Min.X, b.Max.X)
		}
		if !b.Min.Equals(core.NewPoint(math.Inf(-1), -1, math.Inf(-1))) {
			t.Errorf("Min = %v", b.Min)
		}

		r := mustRay(t, core.NewPoint(0, 5, 0), core.NewVector(0, -1, 0))
		xs, err := g.LocalIntersect(r)
		if err != nil {
			t.Fatalf("LocalIntersect() error = %v", err)
		}
		assertTs(t, xs, []float64{4, 5, 6})
	})

	t.Run("untruncated cylinder", func(t *testing.T) {
		g := NewGroup()
		g.AddChild(NewCylinder())

		r := mustRay(t, core.NewPoint(0, 1.5, -5), core.NewVector(0, 0, 1))
		xs, err := g.LocalIntersect(r)
		if err != nil {
			t.Fatalf("LocalIntersect() error = %v", err)
		}
		assertTs(t, xs, []float64{4, 6})
	})

	t.Run("rotated plane", func(t *testing.T) {
		p := NewPlane()
		p.SetTransform(core.Identity().RotateY(math.Pi / 4))
		g := NewGroup()
		g.AddChild(p)

		r := mustRay(t, core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0))
		xs, err := g.LocalIntersect(r)
		if err != nil {
			t.Fatalf("LocalIntersect() error = %v", err)
		}
		assertTs(t, xs, []float64{1})
	})
}

func TestNestedGroupWorldToObject(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.Identity().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Identity().Scale(2, 2, 2))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.Identity().Translate(5, 0, 0))
	g2.AddChild(s)

	p, err := WorldToObject(s, core.NewPoint(-2, 0, -10))
	if err != nil {
		t.Fatalf("WorldToObject() error = %v", err)
	}
	if !p.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("WorldToObject() = %v, want (0, 0, -1)", p)
	}
}

func TestNestedGroupNormalToWorld(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.Identity().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Identity().Scale(1, 2, 3))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.Identity().Translate(5, 0, 0))
	g2.AddChild(s)

	third := math.Sqrt(3) / 3
	n, err := NormalToWorld(s, core.NewVector(third, third, third))
	if err != nil {
		t.Fatalf("NormalToWorld() error = %v", err)
	}
	if !n.Equals(core.NewVector(0.28571, 0.42857, -0.85714)) {
		t.Errorf("NormalToWorld() = %v", n)
	}
}

func TestNestedGroupNormalAt(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.Identity().RotateY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Identity().Scale(1, 2, 3))
	g1.AddChild(g2)

	s := NewSphere()
	s.SetTransform(core.Identity().Translate(5, 0, 0))
	g2.AddChild(s)

	n, err := NormalAt(s, core.NewPoint(1.7321, 1.1547, -5.5774), Intersection{})
	if err != nil {
		t.Fatalf("NormalAt() error = %v", err)
	}
	if !n.Equals(core.NewVector(0.28570, 0.42854, -0.85716)) {
		t.Errorf("NormalAt() = %v", n)
	}
}

func TestGroupMaterialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Material() on a group did not panic")
		}
	}()
	NewGroup().Material()
}
