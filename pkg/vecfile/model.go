package vecfile

import (
	"fmt"

	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

// File is a parsed vector file: a set of named definitions (vectors or
// scalars, kept in their raw shape so scalars stay scalars for the
// multiply/divide rule) and the list of operations to evaluate.
type File struct {
	Defs map[string]any
	Ops  []Op
}

// Op is a single operation. B is empty for unary operations.
type Op struct {
	Name string
	A    string
	B    string
}

func (o Op) String() string {
	if o.B == "" {
		return fmt.Sprintf("%s(%s)", o.Name, o.A)
	}
	return fmt.Sprintf("%s(%s, %s)", o.Name, o.A, o.B)
}

// ResultKind discriminates what an evaluated operation produced.
type ResultKind int

const (
	KindVector ResultKind = iota
	KindScalar
	KindError
)

// Result is the outcome of one operation. A rejected multiplication or
// division is carried here as KindError rather than aborting the run.
type Result struct {
	Op     Op
	Kind   ResultKind
	Vec    vector.Vector3
	Scalar float64
	Err    error
}

func (r Result) String() string {
	switch r.Kind {
	case KindScalar:
		return fmt.Sprintf("%s = %g", r.Op, r.Scalar)
	case KindError:
		return fmt.Sprintf("%s: %v", r.Op, r.Err)
	default:
		return fmt.Sprintf("%s = %s", r.Op, r.Vec)
	}
}

// arity per operation name; also the registry of known operations
var unaryOps = map[string]bool{
	"neg":  true,
	"mag":  true,
	"unit": true,
	"abs":  true,
}

var binaryOps = map[string]bool{
	"add":   true,
	"sub":   true,
	"mul":   true,
	"div":   true,
	"pow":   true,
	"dot":   true,
	"cross": true,
	"angle": true,
}
