package manifest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gregorio-gerardi/circuitry/pkg/errors"
)

// GoMod parses go.mod files. It extracts the module path and the direct
// (non-indirect) requirements.
type GoMod struct{}

func (p *GoMod) Type() string              { return "go.mod" }
func (p *GoMod) Supports(name string) bool { return name == "go.mod" }

func (p *GoMod) Parse(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapOpen(path, err)
	}
	defer f.Close()

	moduleName, direct := parseGoModFile(f)

	root := moduleName
	if root == "" {
		root = DefaultRoot
	} else if err := errors.ValidateGoModulePath(root); err != nil {
		return nil, err
	}
	for _, dep := range direct {
		if err := errors.ValidateGoModulePath(dep); err != nil {
			return nil, err
		}
	}

	return &Result{Graph: star(root, direct), Type: p.Type(), Root: root}, nil
}

func parseGoModFile(r io.Reader) (moduleName string, deps []string) {
	seen := make(map[string]bool)
	inRequire := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		// Extract module name
		if strings.HasPrefix(line, "module ") {
			moduleName = strings.TrimSpace(strings.TrimPrefix(line, "module "))
			continue
		}

		// Handle require block
		if strings.HasPrefix(line, "require (") || line == "require(" {
			inRequire = true
			continue
		}
		if inRequire && line == ")" {
			inRequire = false
			continue
		}

		// Single-line require
		if strings.HasPrefix(line, "require ") && !strings.Contains(line, "(") {
			line = strings.TrimPrefix(line, "require ")
		} else if !inRequire {
			continue
		}

		// Parse module path from require line
		if dep := parseRequireLine(line); dep != "" && !seen[dep] {
			seen[dep] = true
			deps = append(deps, dep)
		}
	}

	return moduleName, deps
}

func parseRequireLine(line string) string {
	// Skip indirect dependencies
	if strings.Contains(line, "// indirect") {
		return ""
	}

	// Remove inline comments
	if idx := strings.Index(line, "//"); idx != -1 {
		line = line[:idx]
	}

	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) >= 1 {
		return fields[0]
	}
	return ""
}
