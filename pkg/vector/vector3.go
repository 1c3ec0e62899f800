package vector

import "math"

// Vector3 represents an immutable 3D vector with exactly three numeric
// components. The named fields are the storage itself; the positional
// rendering order is X=1, Y=2, Z=3.
type Vector3 struct {
	X, Y, Z float64
}

// New creates a new 3D vector from its components
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Broadcast creates a vector with the same value in all three components
func Broadcast(s float64) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar
func (v Vector3) Scale(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Neg returns the additive inverse of the vector
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Abs returns the elementwise absolute value
func (v Vector3) Abs() Vector3 {
	return Vector3{
		X: math.Abs(v.X),
		Y: math.Abs(v.Y),
		Z: math.Abs(v.Z),
	}
}

// Pow raises each component to the corresponding component of the
// exponent vector. Unlike multiplication and division, a vector exponent
// is permitted.
func (v Vector3) Pow(exp Vector3) Vector3 {
	return Vector3{
		X: math.Pow(v.X, exp.X),
		Y: math.Pow(v.Y, exp.Y),
		Z: math.Pow(v.Z, exp.Z),
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction. A zero vector
// normalizes to (NaN, NaN, NaN); callers that care should check
// Length() first.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1.0 / v.Length())
}

// IsZero reports whether all three components are exactly zero
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
