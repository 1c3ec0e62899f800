package vector

import "reflect"

// From coerces any accepted input shape into a new Vector3:
//   - nil produces the zero vector
//   - a plain number is broadcast into all three components
//   - a Vector3 (or pointer to one) is copied component by component
//   - a sequence fills X, Y, Z from positions 1-3; missing slots are zero
//   - a map fills components from keys x/y/z or 1/2/3; unrecognized keys
//     are silently ignored
//
// Coercion never fails: anything unrecognized produces the zero vector.
// The result is always a fresh value, so From(From(v)) is equal to
// From(v) but never aliases it.
func From(input any) Vector3 {
	switch v := input.(type) {
	case nil:
		return Vector3{}
	case Vector3:
		return v
	case *Vector3:
		if v == nil {
			return Vector3{}
		}
		return *v
	case [3]float64:
		return Vector3{X: v[0], Y: v[1], Z: v[2]}
	case []float64:
		var out Vector3
		if len(v) > 0 {
			out.X = v[0]
		}
		if len(v) > 1 {
			out.Y = v[1]
		}
		if len(v) > 2 {
			out.Z = v[2]
		}
		return out
	case []any:
		var out Vector3
		if len(v) > 0 {
			out.X, _ = toFloat(v[0])
		}
		if len(v) > 1 {
			out.Y, _ = toFloat(v[1])
		}
		if len(v) > 2 {
			out.Z, _ = toFloat(v[2])
		}
		return out
	case map[string]float64:
		var out Vector3
		for key, val := range v {
			setComponent(&out, key, val)
		}
		return out
	case map[string]any:
		var out Vector3
		for key, val := range v {
			if f, ok := toFloat(val); ok {
				setComponent(&out, key, f)
			}
		}
		return out
	}

	if f, ok := toFloat(input); ok {
		return Broadcast(f)
	}
	return Vector3{}
}

// Is reports whether the input is a well-formed Vector3-shaped value: a
// Vector3 itself, or an aggregate whose every key or position is one of
// the recognized component slots. Scalars and nil are simply "not a
// vector", never an error.
func Is(input any) bool {
	switch v := input.(type) {
	case Vector3:
		return true
	case *Vector3:
		return v != nil
	case [3]float64:
		return true
	case []float64:
		return len(v) <= 3
	case []any:
		if len(v) > 3 {
			return false
		}
		for _, elem := range v {
			if _, ok := toFloat(elem); !ok {
				return false
			}
		}
		return true
	case map[string]float64:
		for key := range v {
			if !componentKey(key) {
				return false
			}
		}
		return true
	case map[string]any:
		for key, val := range v {
			if !componentKey(key) {
				return false
			}
			if _, ok := toFloat(val); !ok {
				return false
			}
		}
		return true
	}
	return false
}

// IsScalar reports whether the input is a plain number. Booleans and
// numeric-looking aggregates do not count.
func IsScalar(input any) bool {
	_, ok := toFloat(input)
	return ok
}

func componentKey(key string) bool {
	switch key {
	case "x", "y", "z", "1", "2", "3":
		return true
	}
	return false
}

func setComponent(v *Vector3, key string, val float64) {
	switch key {
	case "x", "1":
		v.X = val
	case "y", "2":
		v.Y = val
	case "z", "3":
		v.Z = val
	}
}

// toFloat converts any Go numeric to float64. The kind switch keeps the
// accepted set closed: bools, strings and aggregates are rejected.
func toFloat(input any) (float64, bool) {
	switch v := input.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
