package geometry

import (
	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/material"
)

// CSGOperation selects how a CSG shape combines its two operands.
type CSGOperation int

const (
	// UnionOp keeps the surface of either operand outside the other.
	UnionOp CSGOperation = iota
	// IntersectionOp keeps surfaces inside both operands.
	IntersectionOp
	// DifferenceOp keeps the left surface outside the right, and the
	// right surface inside the left.
	DifferenceOp
)

// CSG combines exactly two shapes with a set operation. Operands are fixed
// at construction; there is no way to attach more children afterwards.
type CSG struct {
	object
	operation   CSGOperation
	left, right Shape
}

// NewCSG combines left and right under the given operation and claims both
// as children.
func NewCSG(op CSGOperation, left, right Shape) *CSG {
	c := &CSG{object: newObject(), operation: op, left: left, right: right}
	left.setParent(c)
	right.setParent(c)
	return c
}

// Operation returns the combining operation.
func (c *CSG) Operation() CSGOperation { return c.operation }

// Left returns the left operand.
func (c *CSG) Left() Shape { return c.left }

// Right returns the right operand.
func (c *CSG) Right() Shape { return c.right }

// Material panics: like groups, CSG shapes have no surface of their own.
func (c *CSG) Material() material.Material {
	panic("geometry: csg shape has no material")
}

// SetMaterial panics for the same reason Material does.
func (c *CSG) SetMaterial(material.Material) {
	panic("geometry: csg shape has no material")
}

func (c *CSG) Bounds() Bounds {
	return ParentSpaceBounds(c.left).Merge(ParentSpaceBounds(c.right))
}

// LocalIntersect intersects both operands and keeps only the crossings the
// operation exposes.
func (c *CSG) LocalIntersect(r core.Ray) (Intersections, error) {
	if !c.Bounds().IntersectedBy(r) {
		return nil, nil
	}

	leftXs, err := Intersect(c.left, r)
	if err != nil {
		return nil, err
	}
	rightXs, err := Intersect(c.right, r)
	if err != nil {
		return nil, err
	}

	xs := append(leftXs, rightXs...)
	xs.Sort()
	return c.filter(xs), nil
}

// LocalNormalAt panics: normals are computed on leaf primitives only.
func (c *CSG) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: csg shape has no local normal")
}

// filter walks the sorted intersections tracking which operand the ray is
// currently inside, keeping a crossing only when the operation allows it.
func (c *CSG) filter(xs Intersections) Intersections {
	inLeft := false
	inRight := false

	var out Intersections
	for _, x := range xs {
		leftHit := includes(c.left, x.Object)
		if intersectionAllowed(c.operation, leftHit, inLeft, inRight) {
			out = append(out, x)
		}
		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return out
}

// intersectionAllowed is the truth table deciding whether a crossing on one
// operand is part of the combined surface. leftHit reports which operand was
// crossed; inLeft and inRight report containment just before the crossing.
func intersectionAllowed(op CSGOperation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case UnionOp:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case IntersectionOp:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case DifferenceOp:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return false
	}
}

// includes reports whether shape a is, or transitively contains, shape b.
func includes(a, b Shape) bool {
	switch s := a.(type) {
	case *Group:
		for _, child := range s.children {
			if includes(child, b) {
				return true
			}
		}
		return false
	case *CSG:
		return includes(s.left, b) || includes(s.right, b)
	default:
		return a.ID() == b.ID()
	}
}
