package element

import (
	"fmt"
	"strconv"
	"strings"
)

// Element holds the reference constants for one chemical element.
type Element struct {
	Number     int     `json:"number"`
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	AtomicMass float64 `json:"atomic_mass"` // g/mol
}

// MolarMass is the atomic weight read as mass per mole, in g/mol.
func (e Element) MolarMass() float64 {
	return e.AtomicMass
}

// UnknownElementError is returned when an identifier matches no element by
// atomic number, name, or symbol.
type UnknownElementError struct {
	Identifier string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element %q: no match by atomic number, name, or symbol", e.Identifier)
}

// Registry resolves free-form element identifiers against the periodic
// table. Read-only once built, safe for concurrent use.
type Registry struct {
	byNumber map[int]Element
	byName   map[string]Element
	bySymbol map[string]Element
	ordered  []Element
}

// NewRegistry builds a Registry from the embedded periodic table.
func NewRegistry() *Registry {
	r := &Registry{
		byNumber: make(map[int]Element, len(periodicTable)),
		byName:   make(map[string]Element, len(periodicTable)),
		bySymbol: make(map[string]Element, len(periodicTable)),
		ordered:  make([]Element, len(periodicTable)),
	}
	copy(r.ordered, periodicTable[:])
	for _, el := range r.ordered {
		r.byNumber[el.Number] = el
		r.byName[strings.ToLower(el.Name)] = el
		r.bySymbol[strings.ToLower(el.Symbol)] = el
	}
	return r
}

// Resolve matches an identifier to an element. A positive integer matches by
// atomic number, otherwise the identifier is tried case-insensitively as a
// name and then as a symbol.
func (r *Registry) Resolve(identifier string) (Element, error) {
	id := strings.TrimSpace(identifier)

	if n, err := strconv.Atoi(id); err == nil {
		if el, ok := r.byNumber[n]; ok && n > 0 {
			return el, nil
		}
		return Element{}, &UnknownElementError{Identifier: identifier}
	}

	lower := strings.ToLower(id)
	if el, ok := r.byName[lower]; ok {
		return el, nil
	}
	if el, ok := r.bySymbol[lower]; ok {
		return el, nil
	}

	return Element{}, &UnknownElementError{Identifier: identifier}
}

// All returns every element in atomic number order.
func (r *Registry) All() []Element {
	out := make([]Element, len(r.ordered))
	copy(out, r.ordered)
	return out
}
