package vecfile

import (
	"github.com/HWRM/KarosGraveyard/pkg/vecmath"
	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

// Eval runs every operation in file order. Rejected operations (vector
// times vector, vector divided by vector) produce an error Result and
// the run continues.
func (f *File) Eval() []Result {
	results := make([]Result, 0, len(f.Ops))
	for _, op := range f.Ops {
		results = append(results, f.eval(op))
	}
	return results
}

func (f *File) eval(op Op) Result {
	a := f.Defs[op.A]
	b := f.Defs[op.B]

	switch op.Name {
	case "add":
		return vecResult(op, vector.Add(a, b))
	case "sub":
		return vecResult(op, vector.Sub(a, b))
	case "pow":
		return vecResult(op, vector.Pow(a, b))
	case "neg":
		return vecResult(op, vector.Neg(a))
	case "mul":
		v, err := vector.Mul(a, b)
		if err != nil {
			return Result{Op: op, Kind: KindError, Err: err}
		}
		return vecResult(op, v)
	case "div":
		v, err := vector.Div(a, b)
		if err != nil {
			return Result{Op: op, Kind: KindError, Err: err}
		}
		return vecResult(op, v)
	case "dot":
		return scalarResult(op, vecmath.Dot(a, b))
	case "cross":
		return vecResult(op, vecmath.Cross(a, b))
	case "angle":
		return scalarResult(op, vecmath.AngleBetween(a, b))
	case "mag":
		return scalarResult(op, vecmath.Magnitude(a))
	case "unit":
		return vecResult(op, vecmath.Unit(a))
	case "abs":
		return vecResult(op, vecmath.Abs(a))
	}

	// parseOp only admits known names
	panic("vecfile: unreachable op " + op.Name)
}

func vecResult(op Op, v vector.Vector3) Result {
	return Result{Op: op, Kind: KindVector, Vec: v}
}

func scalarResult(op Op, s float64) Result {
	return Result{Op: op, Kind: KindScalar, Scalar: s}
}
