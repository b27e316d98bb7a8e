package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PackageManagers is the package_managers key. It accepts null, a single
// string, or a list of strings in every supported format.
type PackageManagers []string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PackageManagers) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*p = PackageManagers{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("package_managers must be a string or a list of strings")
	}
	*p = many
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PackageManagers) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*p = nil
			return nil
		}
		*p = PackageManagers{node.Value}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*p = many
		return nil
	default:
		return fmt.Errorf("line %d: package_managers must be a string or a list of strings", node.Line)
	}
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *PackageManagers) UnmarshalTOML(v interface{}) error {
	switch val := v.(type) {
	case nil:
		*p = nil
	case string:
		*p = PackageManagers{val}
	case []interface{}:
		many := make(PackageManagers, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("package_managers[%d] must be a string, got %T", i, item)
			}
			many = append(many, s)
		}
		*p = many
	default:
		return fmt.Errorf("package_managers must be a string or a list of strings, got %T", v)
	}
	return nil
}
