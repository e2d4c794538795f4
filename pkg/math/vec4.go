package math

import (
	"errors"
	"fmt"
	"math"
)

// NormalizeEpsilon is the shortest Vector4 that Normalize will rescale.
const NormalizeEpsilon = 1e-8

// ErrNotVector4 is returned by AsVector4 for values of any other type.
var ErrNotVector4 = errors.New("argument must be an instance of Vector4")

// Vector4 is a 4D vector. Mutating methods update the receiver and return it.
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 creates a vector. Non-finite components are stored as 0.
func NewVector4(x, y, z, w float64) *Vector4 {
	return new(Vector4).Set(x, y, z, w)
}

// AsVector4 returns v as a *Vector4, failing for anything that is not a
// Vector4 or a non-nil *Vector4.
func AsVector4(v any) (*Vector4, error) {
	switch vv := v.(type) {
	case *Vector4:
		if vv != nil {
			return vv, nil
		}
	case Vector4:
		return &vv, nil
	}
	return nil, fmt.Errorf("%w, got %T", ErrNotVector4, v)
}

// Set overwrites all components. Non-finite components are stored as 0.
func (v *Vector4) Set(x, y, z, w float64) *Vector4 {
	v.X = finiteOrZero(x)
	v.Y = finiteOrZero(y)
	v.Z = finiteOrZero(z)
	v.W = finiteOrZero(w)
	return v
}

// Clone returns an independent copy of v.
func (v *Vector4) Clone() *Vector4 {
	return NewVector4(v.X, v.Y, v.Z, v.W)
}

// Copy sets v's components from other.
func (v *Vector4) Copy(other *Vector4) *Vector4 {
	v.X, v.Y, v.Z, v.W = other.X, other.Y, other.Z, other.W
	return v
}

// Add sets v to v + other.
func (v *Vector4) Add(other *Vector4) *Vector4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

// Subtract sets v to v - other.
func (v *Vector4) Subtract(other *Vector4) *Vector4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

// Negate flips the sign of every component.
func (v *Vector4) Negate() *Vector4 {
	v.X, v.Y, v.Z, v.W = -v.X, -v.Y, -v.Z, -v.W
	return v
}

// MultiplyScalar scales v by s.
func (v *Vector4) MultiplyScalar(s float64) *Vector4 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
	return v
}

// Length returns the magnitude.
func (v *Vector4) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared magnitude.
func (v *Vector4) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize scales v to unit length. Vectors shorter than NormalizeEpsilon
// are left unchanged.
func (v *Vector4) Normalize() *Vector4 {
	if l := v.Length(); l >= NormalizeEpsilon {
		v.MultiplyScalar(1 / l)
	}
	return v
}

// Dot returns the dot product.
func (v *Vector4) Dot(other *Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// String implements fmt.Stringer.
func (v *Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// FromTo4 returns the displacement to - from as a new vector.
func FromTo4(from, to *Vector4) *Vector4 {
	return to.Clone().Subtract(from)
}

// Project4 returns the projection of v onto the direction of onto.
// Neither argument is modified.
func Project4(v, onto *Vector4) *Vector4 {
	dir := onto.Clone().Normalize()
	return dir.MultiplyScalar(v.Dot(dir))
}
