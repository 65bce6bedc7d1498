package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/histloc/filter"
)

// namedMotions maps the motion keywords accepted in scenario files.
var namedMotions = map[string]filter.Motion{
	"stay":  filter.Stay,
	"right": filter.Right,
	"left":  filter.Left,
	"down":  filter.Down,
	"up":    filter.Up,
}

// motionEntry decodes either a [dy, dx] sequence or a motion keyword.
type motionEntry struct {
	motion filter.Motion
	line   int
	err    error // kept so validation can report it with the others
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *motionEntry) UnmarshalYAML(value *yaml.Node) error {
	m.line = value.Line
	switch value.Kind {
	case yaml.ScalarNode:
		mv, ok := namedMotions[strings.ToLower(value.Value)]
		if !ok {
			m.err = fmt.Errorf("unknown motion %q", value.Value)
			return nil
		}
		m.motion = mv
	case yaml.SequenceNode:
		var pair []int
		if err := value.Decode(&pair); err != nil {
			m.err = fmt.Errorf("motion must be integers: %v", err)
			return nil
		}
		if len(pair) != 2 {
			m.err = fmt.Errorf("motion needs exactly [dy, dx], got %d values", len(pair))
			return nil
		}
		m.motion = filter.Motion{DRow: pair[0], DCol: pair[1]}
	default:
		m.err = fmt.Errorf("motion must be [dy, dx] or a keyword")
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler as a flow [dy, dx] pair.
func (m motionEntry) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{m.motion.DRow, m.motion.DCol} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return n, nil
}
