package vector

import (
	"strconv"
	"strings"
)

// String renders the vector in the legacy positional format:
//
//	{ [1]: <x>, [2]: <y>, [3]: <z>, }
//
// The trailing comma-space before the closing brace is part of the
// format and must be preserved for output compatibility.
func (v Vector3) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, c := range [3]float64{v.X, v.Y, v.Z} {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("]: ")
		b.WriteString(formatComponent(c))
		b.WriteString(", ")
	}
	b.WriteByte('}')
	return b.String()
}

// formatComponent renders a component in shortest form, so integral
// values print without a decimal point (1, not 1.000000).
func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
