// Package math provides 3D and 4D vector types with in-place, chainable algebra.
package math

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Vector3 is a 3D vector. Mutating methods update the receiver and return it.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a vector. Non-finite components are stored as 0.
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: finiteOrZero(x), Y: finiteOrZero(y), Z: finiteOrZero(z)}
}

// Set overwrites all components as given. Unlike NewVector3 it does not
// sanitize NaN or infinite values.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Clone returns an independent copy of v.
func (v *Vector3) Clone() *Vector3 {
	return NewVector3(v.X, v.Y, v.Z)
}

// Copy sets v's components from other.
func (v *Vector3) Copy(other *Vector3) *Vector3 {
	v.X, v.Y, v.Z = other.X, other.Y, other.Z
	return v
}

// Negate flips the sign of every component.
func (v *Vector3) Negate() *Vector3 {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
	return v
}

// Add sets v to v + other.
func (v *Vector3) Add(other *Vector3) *Vector3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// Subtract sets v to v - other.
func (v *Vector3) Subtract(other *Vector3) *Vector3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// MultiplyScalar scales v by s.
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Length returns the magnitude.
func (v *Vector3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared magnitude.
func (v *Vector3) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize scales v to unit length. A zero vector is not special-cased and
// ends up with NaN components.
func (v *Vector3) Normalize() *Vector3 {
	return v.MultiplyScalar(1 / v.Length())
}

// Dot returns the dot product.
func (v *Vector3) Dot(other *Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Rescale sets the magnitude of v to newScale. A zero vector is left as is.
func (v *Vector3) Rescale(newScale float64) *Vector3 {
	if v.Length() > 0 {
		v.Normalize().MultiplyScalar(newScale)
	}
	return v
}

// Components implements Point3. A nil vector reads as the origin.
func (v *Vector3) Components() (x, y, z float64) {
	if v == nil {
		return 0, 0, 0
	}
	return v.X, v.Y, v.Z
}

// String implements fmt.Stringer.
func (v *Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// FromTo3 returns the displacement to - from as a new vector.
//
// Both arguments are expected to be non-nil *Vector3 values. Anything else is
// reported on the diagnostic logger and the subtraction is carried out on the
// components anyway.
func FromTo3(from, to Point3) *Vector3 {
	if !isVector3(from) || !isVector3(to) {
		Logger().Error("fromTo requires two vectors: 'from' and 'to'",
			zap.String("from", fmt.Sprintf("%T", from)),
			zap.String("to", fmt.Sprintf("%T", to)),
		)
	}
	fx, fy, fz := components(from)
	tx, ty, tz := components(to)
	return NewVector3(tx, ty, tz).Subtract(&Vector3{X: fx, Y: fy, Z: fz})
}

// Angle3 returns the angle between v1 and v2 in degrees. The result is NaN
// when either vector has zero length.
func Angle3(v1, v2 *Vector3) float64 {
	rad := math.Acos(v1.Dot(v2) / (v1.Length() * v2.Length()))
	return rad * 180 / math.Pi
}

// Project3 returns the projection of v onto the direction of onto.
// Neither argument is modified.
func Project3(v, onto *Vector3) *Vector3 {
	dir := onto.Clone().Normalize()
	return dir.MultiplyScalar(v.Dot(dir))
}

func isVector3(p Point3) bool {
	v, ok := p.(*Vector3)
	return ok && v != nil
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
