package geometry

import (
	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/material"
)

// Group is a container shape. Children are expressed in the group's local
// space, so transforming the group transforms everything inside it. The
// group keeps a bounding box of its children so rays that miss the box skip
// the children entirely.
type Group struct {
	object
	children []Shape
	bounds   Bounds
}

// NewGroup builds an empty group.
func NewGroup() *Group {
	return &Group{object: newObject(), bounds: EmptyBounds()}
}

// AddChild attaches a shape to the group and grows the cached bounding box
// to cover it.
func (g *Group) AddChild(s Shape) {
	s.setParent(g)
	g.children = append(g.children, s)
	g.bounds = g.bounds.Merge(ParentSpaceBounds(s))
}

// Children returns the attached shapes in insertion order.
func (g *Group) Children() []Shape {
	return g.children
}

// Bounds returns the cached box covering every child.
func (g *Group) Bounds() Bounds {
	return g.bounds
}

// Material panics: groups have no surface of their own, and an intersection
// always reports the leaf primitive that was actually hit. Reaching here is
// a programming error.
func (g *Group) Material() material.Material {
	panic("geometry: group has no material")
}

// SetMaterial panics for the same reason Material does.
func (g *Group) SetMaterial(material.Material) {
	panic("geometry: group has no material")
}

// LocalIntersect collects the intersections of every child, already sorted
// by t. The bounding box is checked first so rays that miss the group never
// touch the children.
func (g *Group) LocalIntersect(r core.Ray) (Intersections, error) {
	if len(g.children) == 0 || !g.bounds.IntersectedBy(r) {
		return nil, nil
	}

	var xs Intersections
	for _, child := range g.children {
		childXs, err := Intersect(child, r)
		if err != nil {
			return nil, err
		}
		xs = append(xs, childXs...)
	}
	xs.Sort()
	return xs, nil
}

// LocalNormalAt panics: normals are computed on leaf primitives only.
func (g *Group) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: group has no local normal")
}
