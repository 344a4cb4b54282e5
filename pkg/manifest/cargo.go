package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// CargoToml parses Cargo.toml files. It extracts dependencies,
// dev-dependencies, and build-dependencies.
type CargoToml struct{}

func (c *CargoToml) Type() string              { return "Cargo.toml" }
func (c *CargoToml) Supports(name string) bool { return strings.EqualFold(name, "cargo.toml") }

func (c *CargoToml) Parse(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapOpen(path, err)
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}

	root := cargo.Package.Name
	if root == "" {
		root = DefaultRoot
	} else if err := errors.ValidateCratesPackageName(root); err != nil {
		return nil, err
	}

	direct := extractCargoDeps(cargo)
	for _, dep := range direct {
		if err := errors.ValidateCratesPackageName(dep); err != nil {
			return nil, err
		}
	}

	return &Result{Graph: star(root, direct), Type: c.Type(), Root: root}, nil
}

func extractCargoDeps(cargo cargoFile) []string {
	var deps []string
	for name := range cargo.Dependencies {
		deps = append(deps, name)
	}
	for name := range cargo.DevDependencies {
		deps = append(deps, name)
	}
	for name := range cargo.BuildDependencies {
		deps = append(deps, name)
	}
	return deps
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
