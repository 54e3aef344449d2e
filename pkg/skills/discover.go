package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kvesta/clawsec/internal/log"
)

// manifests are tried in order inside each skill folder.
var manifests = []string{"skill.json", "package.json"}

// Discover builds an inventory from a skills folder, one skill per sub folder.
// The version comes from the first manifest found; folders without one are
// still listed with an empty version so wildcard advisories apply to them.
func Discover(root string) (*Inventory, error) {
	dir, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills folder: %w", err)
	}

	inv := &Inventory{}
	for _, f := range dir {
		if !f.IsDir() || strings.HasPrefix(f.Name(), ".") {
			continue
		}

		path := filepath.Join(root, f.Name())
		skill := Skill{
			Name: f.Name(),
			Path: path,
		}

		for _, manifest := range manifests {
			data, err := os.ReadFile(filepath.Join(path, manifest))
			if err != nil {
				continue
			}
			if !gjson.ValidBytes(data) {
				log.Warnf("skill %s has a malformed %s", f.Name(), manifest)
				continue
			}

			skill.Version = strings.TrimSpace(gjson.GetBytes(data, "version").String())
			if name := strings.TrimSpace(gjson.GetBytes(data, "name").String()); name != "" {
				skill.Name = name
			}
			break
		}

		inv.Skills = append(inv.Skills, skill)
	}

	return inv, nil
}
