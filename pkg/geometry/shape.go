// Package geometry implements the shape variants the tracer can render:
// five solid primitives, triangles for mesh geometry, plain groups and CSG
// combinations. Shapes intersect rays in their own local space; the
// functions in this file handle the coordinate conversions in and out.
package geometry

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rayward/go-raytracer/pkg/core"
	"github.com/rayward/go-raytracer/pkg/material"
)

// Shape is the capability interface every primitive implements. The variant
// set is closed: implementations live in this package only.
type Shape interface {
	// ID uniquely identifies a shape instance.
	ID() uuid.UUID
	// Transform is the object-to-parent space transform.
	Transform() core.Transform
	SetTransform(t core.Transform)
	// Material describes the surface. Groups carry no material of their
	// own and panic when asked.
	Material() material.Material
	SetMaterial(m material.Material)
	// Parent is the owning group, or nil for a root shape.
	Parent() Shape
	setParent(p Shape)
	// Bounds is the axis-aligned bounding box in the shape's local space.
	// Unbounded primitives use infinite coordinates.
	Bounds() Bounds
	// LocalIntersect intersects a ray already expressed in local space.
	LocalIntersect(r core.Ray) (Intersections, error)
	// LocalNormalAt computes the normal in local space. The intersection
	// carries barycentric coordinates for interpolated-normal primitives.
	LocalNormalAt(point core.Tuple, hit Intersection) core.Tuple
}

// object is the state shared by every shape variant.
type object struct {
	id        uuid.UUID
	transform core.Transform
	material  material.Material
	parent    Shape
}

func newObject() object {
	return object{
		id:        uuid.New(),
		transform: core.Identity(),
		material:  material.New(),
	}
}

func (o *object) ID() uuid.UUID                   { return o.id }
func (o *object) Transform() core.Transform       { return o.transform }
func (o *object) SetTransform(t core.Transform)   { o.transform = t }
func (o *object) Material() material.Material     { return o.material }
func (o *object) SetMaterial(m material.Material) { o.material = m }
func (o *object) Parent() Shape                   { return o.parent }
func (o *object) setParent(p Shape)               { o.parent = p }

// Intersect transforms a ray into the shape's local space and delegates to
// the shape's local intersection routine.
func Intersect(s Shape, r core.Ray) (Intersections, error) {
	inv, err := s.Transform().Inverse()
	if err != nil {
		return nil, fmt.Errorf("intersecting shape %s: %w", s.ID(), err)
	}
	return s.LocalIntersect(inv.ApplyToRay(r))
}

// NormalAt computes the world-space surface normal at a point, converting
// through every enclosing group so nested transforms compose correctly.
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection) (core.Tuple, error) {
	localPoint, err := WorldToObject(s, worldPoint)
	if err != nil {
		return core.Tuple{}, err
	}
	localNormal := s.LocalNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's local space,
// applying the inverse transforms of every ancestor group outermost first.
func WorldToObject(s Shape, point core.Tuple) (core.Tuple, error) {
	if parent := s.Parent(); parent != nil {
		converted, err := WorldToObject(parent, point)
		if err != nil {
			return core.Tuple{}, err
		}
		point = converted
	}
	inv, err := s.Transform().Inverse()
	if err != nil {
		return core.Tuple{}, fmt.Errorf("converting point to object space of shape %s: %w", s.ID(), err)
	}
	return inv.ApplyTo(point), nil
}

// NormalToWorld converts a local-space normal into world space through the
// transpose of each inverse transform, renormalizing at every level.
func NormalToWorld(s Shape, normal core.Tuple) (core.Tuple, error) {
	inv, err := s.Transform().Inverse()
	if err != nil {
		return core.Tuple{}, fmt.Errorf("converting normal to world space of shape %s: %w", s.ID(), err)
	}
	normal = inv.Transpose().ApplyTo(normal).AsVector().Normalize()

	if parent := s.Parent(); parent != nil {
		return NormalToWorld(parent, normal)
	}
	return normal, nil
}

// ParentSpaceBounds returns the shape's bounding box converted into the
// space of its parent by applying the shape's own transform.
func ParentSpaceBounds(s Shape) Bounds {
	return s.Bounds().Transform(s.Transform())
}
