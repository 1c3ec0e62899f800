// Package vecmath provides the stateless utility functions over Vector3
// values: magnitude, normalization, dot and cross products, and the
// angle between two vectors. Every function coerces its arguments
// through vector.From first, so anything coercion accepts (a Vector3, a
// scalar, a sequence, a component map) is a valid argument.
package vecmath

import (
	"math"

	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

// Magnitude returns the Euclidean length of the vector.
func Magnitude(v any) float64 {
	return vector.From(v).Length()
}

// Mag is a shorthand alias for Magnitude.
var Mag = Magnitude

// Unit returns the vector scaled to length one. A zero vector yields
// (NaN, NaN, NaN) by plain float64 division; the zero case is left to
// IEEE semantics rather than guarded.
func Unit(v any) vector.Vector3 {
	return vector.From(v).Normalize()
}

// Abs returns the elementwise absolute value.
func Abs(v any) vector.Vector3 {
	return vector.From(v).Abs()
}

// Dot returns the dot product of two vectors.
func Dot(a, b any) float64 {
	return vector.From(a).Dot(vector.From(b))
}

// ScalarProd is an alias for Dot.
var ScalarProd = Dot

// Cross returns the cross product of two vectors.
func Cross(a, b any) vector.Vector3 {
	return vector.From(a).Cross(vector.From(b))
}

// VectorProd is an alias for Cross.
var VectorProd = Cross

// AngleBetween returns the angle between two vectors in radians.
// Comparatively expensive: it composes a dot product, two magnitudes
// and an arccosine.
func AngleBetween(a, b any) float64 {
	va, vb := vector.From(a), vector.From(b)
	return math.Acos(va.Dot(vb) / (va.Length() * vb.Length()))
}

// ToStr renders any coercible value in the canonical vector format.
func ToStr(v any) string {
	return vector.From(v).String()
}
