package vector

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)
	result := v1.Add(v2)

	expected := New(11, 3, -4)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3AddCommutes(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)

	if v1.Add(v2) != v2.Add(v1) {
		t.Errorf("Add not commutative: %v vs %v", v1.Add(v2), v2.Add(v1))
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)
	result := v1.Sub(v2)

	expected := New(-9, 7, 8)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3SubAntiSymmetric(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)

	if v1.Sub(v2) != v2.Sub(v1).Neg() {
		t.Errorf("Sub anti-symmetry failed: %v vs %v", v1.Sub(v2), v2.Sub(v1).Neg())
	}
}

func TestVector3Scale(t *testing.T) {
	v := New(1, 5, 2)
	result := v.Scale(5)

	expected := New(5, 25, 10)
	if result != expected {
		t.Errorf("Scale failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Neg(t *testing.T) {
	v := New(1, -5, 2)
	result := v.Neg()

	expected := New(-1, 5, -2)
	if result != expected {
		t.Errorf("Neg failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Abs(t *testing.T) {
	v := New(10, -2, -6)
	result := v.Abs()

	expected := New(10, 2, 6)
	if result != expected {
		t.Errorf("Abs failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Pow(t *testing.T) {
	v := New(1, 5, 2)
	result := v.Pow(Broadcast(5))

	expected := New(1, 3125, 32)
	if result != expected {
		t.Errorf("Pow failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := New(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3LengthNonNegative(t *testing.T) {
	vectors := []Vector3{
		New(1, 5, 2),
		New(-10, -2, -6),
		New(0, 0, 0),
	}

	for _, v := range vectors {
		if v.Length() < 0 {
			t.Errorf("Length of %v is negative: %v", v, v.Length())
		}
	}

	if !New(0, 0, 0).IsZero() || New(0, 0, 0).Length() != 0 {
		t.Error("zero vector should have zero length")
	}
	if New(0, 1, 0).Length() == 0 {
		t.Error("non-zero vector should have non-zero length")
	}
}

func TestVector3Normalize(t *testing.T) {
	v := New(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	normalized := New(0, 0, 0).Normalize()

	// zero vectors are left to IEEE semantics
	if !math.IsNaN(normalized.X) || !math.IsNaN(normalized.Y) || !math.IsNaN(normalized.Z) {
		t.Errorf("Normalize of zero vector should be NaN components, got %v", normalized)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := New(1, 0, 0)
	v2 := New(0, 1, 0)
	result := v1.Cross(v2)

	expected := New(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3CrossAntiCommutes(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)

	expected := New(-26, 26, -52)
	if v1.Cross(v2) != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, v1.Cross(v2))
	}
	if v1.Cross(v2) != v2.Cross(v1).Neg() {
		t.Errorf("Cross anti-commutativity failed: %v vs %v", v1.Cross(v2), v2.Cross(v1).Neg())
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := New(1, 5, 2)
	v2 := New(10, -2, -6)
	result := v1.Dot(v2)

	expected := -12.0 // 1*10 + 5*(-2) + 2*(-6)
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}

	if v1.Dot(v2) != v2.Dot(v1) {
		t.Errorf("Dot symmetry failed: %v vs %v", v1.Dot(v2), v2.Dot(v1))
	}
}
