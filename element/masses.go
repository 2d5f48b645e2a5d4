package element

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewRegistryWithMasses builds a Registry with atomic masses from the given
// YAML file taking precedence over the embedded table. The file is a flat
// map of element symbol to mass in g/mol, e.g.
//
//	C: 12.0111
//	Zr: 91.22
//
// Symbols not in the periodic table, and non-positive masses, are rejected.
func NewRegistryWithMasses(filePath string) (*Registry, error) {
	overrides, err := readMasses(filePath)
	if err != nil {
		return nil, err
	}

	r := NewRegistry()
	for sym, mass := range overrides {
		el, ok := r.bySymbol[strings.ToLower(sym)]
		if !ok {
			return nil, fmt.Errorf("atomic mass file %s: unknown element symbol %q", filePath, sym)
		}
		if mass <= 0 {
			return nil, fmt.Errorf("atomic mass file %s: element %s has non-positive mass %v", filePath, sym, mass)
		}

		el.AtomicMass = mass
		r.byNumber[el.Number] = el
		r.byName[strings.ToLower(el.Name)] = el
		r.bySymbol[strings.ToLower(el.Symbol)] = el
		r.ordered[el.Number-1] = el
	}

	return r, nil
}

func readMasses(filePath string) (map[string]float64, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	masses := make(map[string]float64)
	if err := yaml.Unmarshal(data, &masses); err != nil {
		return nil, fmt.Errorf("failed parsing atomic mass file %s: %w", filePath, err)
	}

	return masses, nil
}
