package core

import "errors"

// ErrInvalidRay is returned when a ray is constructed from a non-point
// origin or a non-vector direction.
var ErrInvalidRay = errors.New("ray requires a point origin and a vector direction")

// Ray has a point origin and a vector direction.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay validates and creates a ray. The origin must be a point (w=1) and
// the direction a vector (w=0).
func NewRay(origin, direction Tuple) (Ray, error) {
	if !origin.IsPoint() || !direction.IsVector() {
		return Ray{}, ErrInvalidRay
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at distance t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}
