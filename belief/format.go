package belief

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals String prints per cell.
const DefaultPrecision = 5

// Format renders the belief as a bracketed grid with fixed precision,
// one row per line:
//
//	[[0.01105,0.02464],
//	 [0.00715,0.01017]]
//
// A negative precision falls back to DefaultPrecision.
func (b *Belief) Format(precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(b.data[y*b.width+x], 'f', precision, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// String implements fmt.Stringer using DefaultPrecision.
func (b *Belief) String() string {
	return b.Format(DefaultPrecision)
}
