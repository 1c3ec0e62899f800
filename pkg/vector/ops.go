package vector

import (
	"fmt"

	"go.uber.org/zap"
)

// logger receives the diagnostic emitted when multiplication or division
// is rejected. It is a no-op unless a caller installs one via SetLogger.
var logger = zap.NewNop()

// SetLogger installs the logger used for operand diagnostics. Passing
// nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// InvalidOperandError reports a multiplication or division attempted
// with two vector-shaped operands and no scalar present.
type InvalidOperandError struct {
	Op    string
	Left  any
	Right any
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operands for %q: %v (%T) and %v (%T); at least one side must be a scalar",
		e.Op, e.Left, e.Left, e.Right, e.Right)
}

// Neg coerces the input and returns its additive inverse.
func Neg(a any) Vector3 {
	return From(a).Neg()
}

// Add coerces both operands and returns their elementwise sum. A bare
// scalar broadcasts before the operation.
func Add(a, b any) Vector3 {
	return From(a).Add(From(b))
}

// Sub coerces both operands and returns their elementwise difference.
func Sub(a, b any) Vector3 {
	return From(a).Sub(From(b))
}

// Pow coerces both operands and raises the first elementwise to the
// second. A vector exponent is permitted here, unlike Mul and Div.
func Pow(a, b any) Vector3 {
	return From(a).Pow(From(b))
}

// Mul multiplies two operands elementwise. At least one operand must be
// a plain scalar; multiplying two vectors is rejected with an
// *InvalidOperandError and a diagnostic, never a panic.
func Mul(a, b any) (Vector3, error) {
	if !IsScalar(a) && !IsScalar(b) {
		return Vector3{}, reject("*", a, b)
	}
	va, vb := From(a), From(b)
	return Vector3{X: va.X * vb.X, Y: va.Y * vb.Y, Z: va.Z * vb.Z}, nil
}

// Div divides two operands elementwise under the same scalar rule as
// Mul. Division by a zero component follows float64 semantics and
// produces ±Inf or NaN.
func Div(a, b any) (Vector3, error) {
	if !IsScalar(a) && !IsScalar(b) {
		return Vector3{}, reject("/", a, b)
	}
	va, vb := From(a), From(b)
	return Vector3{X: va.X / vb.X, Y: va.Y / vb.Y, Z: va.Z / vb.Z}, nil
}

// Concat renders both values as text and joins them directly. A
// Vector3-shaped side uses the canonical rendering; anything else uses
// its ordinary fmt representation.
func Concat(a, b any) string {
	return text(a) + text(b)
}

func text(v any) string {
	if Is(v) {
		return From(v).String()
	}
	return fmt.Sprint(v)
}

func reject(op string, a, b any) error {
	logger.Warn("invalid operand combination",
		zap.String("op", op),
		zap.Any("left", a),
		zap.String("left_type", fmt.Sprintf("%T", a)),
		zap.Any("right", b),
		zap.String("right_type", fmt.Sprintf("%T", b)),
	)
	return &InvalidOperandError{Op: op, Left: a, Right: b}
}
