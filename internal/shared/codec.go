// path: internal/shared/codec.go
package shared

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Species and Move encode as numbers and decode from either a number or a
// name. Context and LearnMethod encode as names.

func (s *Species) UnmarshalJSON(data []byte) error {
	raw, err := scalarJSON(data)
	if err != nil {
		return fmt.Errorf("species: %w", err)
	}
	v, ok := ParseSpecies(raw)
	if !ok {
		return fmt.Errorf("invalid species %q", raw)
	}
	*s = v
	return nil
}

func (s *Species) UnmarshalYAML(value *yaml.Node) error {
	v, ok := ParseSpecies(value.Value)
	if value.Kind != yaml.ScalarNode || !ok {
		return fmt.Errorf("line %d: invalid species %q", value.Line, value.Value)
	}
	*s = v
	return nil
}

func (m *Move) UnmarshalJSON(data []byte) error {
	raw, err := scalarJSON(data)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	v, ok := ParseMove(raw)
	if !ok {
		return fmt.Errorf("invalid move %q", raw)
	}
	*m = v
	return nil
}

func (m *Move) UnmarshalYAML(value *yaml.Node) error {
	v, ok := ParseMove(value.Value)
	if value.Kind != yaml.ScalarNode || !ok {
		return fmt.Errorf("line %d: invalid move %q", value.Line, value.Value)
	}
	*m = v
	return nil
}

func (c Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Context) UnmarshalJSON(data []byte) error {
	raw, err := scalarJSON(data)
	if err != nil {
		return fmt.Errorf("context: %w", err)
	}
	v, ok := parseContextOrNumber(raw)
	if !ok {
		return fmt.Errorf("invalid context %q", raw)
	}
	*c = v
	return nil
}

func (c Context) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *Context) UnmarshalYAML(value *yaml.Node) error {
	v, ok := parseContextOrNumber(value.Value)
	if value.Kind != yaml.ScalarNode || !ok {
		return fmt.Errorf("line %d: invalid context %q", value.Line, value.Value)
	}
	*c = v
	return nil
}

func (m LearnMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *LearnMethod) UnmarshalJSON(data []byte) error {
	raw, err := scalarJSON(data)
	if err != nil {
		return fmt.Errorf("learn method: %w", err)
	}
	v, ok := ParseLearnMethod(raw)
	if !ok {
		return fmt.Errorf("invalid learn method %q", raw)
	}
	*m = v
	return nil
}

func (m LearnMethod) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (m *LearnMethod) UnmarshalYAML(value *yaml.Node) error {
	v, ok := ParseLearnMethod(value.Value)
	if value.Kind != yaml.ScalarNode || !ok {
		return fmt.Errorf("line %d: invalid learn method %q", value.Line, value.Value)
	}
	*m = v
	return nil
}

// scalarJSON unwraps a JSON string or passes a JSON number through as text.
func scalarJSON(data []byte) (string, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func parseContextOrNumber(s string) (Context, bool) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		c := Context(n)
		return c, c.Generation() != 0
	}
	return ParseContext(s)
}

// Text forms let Context key JSON and YAML maps by name.

func (c Context) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Context) UnmarshalText(text []byte) error {
	v, ok := parseContextOrNumber(string(text))
	if !ok {
		return fmt.Errorf("invalid context %q", text)
	}
	*c = v
	return nil
}
