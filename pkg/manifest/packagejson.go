package manifest

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// PackageJSON parses package.json files. It extracts dependencies,
// devDependencies, and peerDependencies.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

func (p *PackageJSON) Parse(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapOpen(path, err)
	}

	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}

	root := pkg.Name
	if root == "" {
		root = DefaultRoot
	} else if err := errors.ValidateNpmPackageName(root); err != nil {
		return nil, err
	}

	direct := extractPackageDeps(pkg)
	for _, dep := range direct {
		if err := errors.ValidateNpmPackageName(dep); err != nil {
			return nil, err
		}
	}

	return &Result{Graph: star(root, direct), Type: p.Type(), Root: root}, nil
}

func extractPackageDeps(pkg packageFile) []string {
	var deps []string
	for name := range pkg.Dependencies {
		deps = append(deps, name)
	}
	for name := range pkg.DevDependencies {
		deps = append(deps, name)
	}
	for name := range pkg.PeerDependencies {
		deps = append(deps, name)
	}
	return deps
}

type packageFile struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}
