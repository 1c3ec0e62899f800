package vecfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HWRM/KarosGraveyard/pkg/vector"
)

// rawFile mirrors the YAML document shape:
//
//	vectors:
//	  v1: [1, 5, 2]
//	  v2: {x: 10, y: -2, z: -6}
//	  n: 5
//	ops:
//	  - {op: add, a: v1, b: v2}
//	  - {op: unit, a: v1}
type rawFile struct {
	Vectors map[string]any `yaml:"vectors"`
	Ops     []rawOp        `yaml:"ops"`
}

type rawOp struct {
	Op string `yaml:"op"`
	A  string `yaml:"a"`
	B  string `yaml:"b"`
}

// Parse reads and validates a vector file
func Parse(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses a vector file from a reader. Definitions must be
// scalars or vector-shaped values; operations must name a known op and
// reference only defined names. Unrecognized keys inside a vector
// definition are ignored by coercion, but a definition that is not
// vector-shaped at all is rejected here.
func ParseReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	f := &File{Defs: make(map[string]any, len(raw.Vectors))}

	for name, def := range raw.Vectors {
		if !vector.IsScalar(def) && !vector.Is(def) {
			return nil, fmt.Errorf("definition %q is neither a scalar nor vector-shaped", name)
		}
		f.Defs[name] = def
	}

	for i, op := range raw.Ops {
		parsed, err := parseOp(op, f.Defs)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i+1, err)
		}
		f.Ops = append(f.Ops, parsed)
	}

	return f, nil
}

func parseOp(raw rawOp, defs map[string]any) (Op, error) {
	op := Op{Name: raw.Op, A: raw.A, B: raw.B}

	unary := unaryOps[op.Name]
	if !unary && !binaryOps[op.Name] {
		return Op{}, fmt.Errorf("unknown operation %q", op.Name)
	}

	if op.A == "" {
		return Op{}, fmt.Errorf("%s: missing operand a", op.Name)
	}
	if _, ok := defs[op.A]; !ok {
		return Op{}, fmt.Errorf("%s: undefined name %q", op.Name, op.A)
	}

	if unary {
		if op.B != "" {
			return Op{}, fmt.Errorf("%s: unexpected operand b", op.Name)
		}
		return op, nil
	}

	if op.B == "" {
		return Op{}, fmt.Errorf("%s: missing operand b", op.Name)
	}
	if _, ok := defs[op.B]; !ok {
		return Op{}, fmt.Errorf("%s: undefined name %q", op.Name, op.B)
	}
	return op, nil
}
