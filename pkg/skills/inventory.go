package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kvesta/clawsec/pkg/stringutil"
)

// Skill is an installed skill and the version detected for it.
type Skill struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
}

type Inventory struct {
	Skills []Skill `yaml:"skills" json:"skills"`
}

// LoadInventory reads a YAML inventory, or discovers skills when path is a
// folder. The YAML document is either a mapping with a "skills" list or the
// list itself.
func LoadInventory(path string) (*Inventory, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return Discover(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill inventory: %w", err)
	}

	return ParseInventory(data)
}

func ParseInventory(data []byte) (*Inventory, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse skill inventory: %w", err)
	}

	inv := &Inventory{}
	if len(node.Content) == 0 {
		return inv, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		err := root.Decode(&inv.Skills)
		if err != nil {
			return nil, fmt.Errorf("failed to parse skill inventory: %w", err)
		}
	case yaml.MappingNode:
		err := root.Decode(inv)
		if err != nil {
			return nil, fmt.Errorf("failed to parse skill inventory: %w", err)
		}
	default:
		return nil, errors.New("skill inventory must be a list or a mapping with a skills list")
	}

	kept := inv.Skills[:0]
	for _, s := range inv.Skills {
		s.Name = strings.TrimSpace(s.Name)
		s.Version = strings.TrimSpace(s.Version)
		if s.Name == "" {
			continue
		}
		kept = append(kept, s)
	}
	inv.Skills = kept

	return inv, nil
}

// Names returns the distinct normalized skill names in inventory order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Skills))
	for _, s := range inv.Skills {
		names = append(names, stringutil.NormalizeSkillName(s.Name))
	}
	return stringutil.UniqueStrings(names)
}
