package convert

import (
	"fmt"

	"github.com/PhaseLab/ThermoConvert/element"
)

// Rule converts a value from one unit to another by a closed-form scale
// factor, which may depend on the element's reference constants.
type Rule struct {
	Kind QuantityKind
	From string
	To   string

	factor func(el element.Element) float64
}

// Apply converts a value expressed in r.From to r.To for the given element.
func (r Rule) Apply(value float64, el element.Element) float64 {
	return value * r.factor(el)
}

// Invert returns the reverse rule. The inverse is the exact reciprocal of
// the forward factor, so converting there and back always round-trips.
func (r Rule) Invert() Rule {
	forward := r.factor
	return Rule{
		Kind:   r.Kind,
		From:   r.To,
		To:     r.From,
		factor: func(el element.Element) float64 { return 1 / forward(el) },
	}
}

// UnsupportedConversionError is returned when a unit pair matches no catalog
// rule in either direction for the given quantity kind.
type UnsupportedConversionError struct {
	Kind QuantityKind
	From string
	To   string
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported %s conversion %s -> %s", e.Kind, e.From, e.To)
}

// The full catalog. Per-atom/per-mass factors use the atomic mass,
// per-mole/per-mass factors the molar mass.
var catalog = []Rule{
	// Entropy
	{Entropy, UnitJMolK, UnitKBAtom, func(element.Element) float64 {
		return 1 / (boltzmann * avogadro)
	}},
	{Entropy, UnitErgGK, UnitKBAtom, func(el element.Element) float64 {
		return el.AtomicMass * ergJoule / (boltzmann * avogadro)
	}},
	{Entropy, UnitJGK, UnitKBAtom, func(el element.Element) float64 {
		return el.AtomicMass / (boltzmann * avogadro)
	}},
	{Entropy, UnitMbarCCGK, UnitKBAtom, func(el element.Element) float64 {
		return el.AtomicMass * mbarCCJG / (boltzmann * avogadro)
	}},
	{Entropy, UnitJMolK, UnitJGK, func(el element.Element) float64 {
		return 1 / el.MolarMass()
	}},
	{Entropy, UnitJGK, UnitErgGK, func(element.Element) float64 {
		return 1 / ergJoule
	}},
	{Entropy, UnitMbarCCGK, UnitJGK, func(element.Element) float64 {
		return mbarCCJG
	}},

	// Energy
	{Energy, UnitKJMol, UnitMeVAtom, func(element.Element) float64 {
		return 1e6 / (elemCharge * avogadro)
	}},
	{Energy, UnitEVAtom, UnitErgG, func(el element.Element) float64 {
		return elemCharge * avogadro / ergJoule / el.AtomicMass
	}},
	{Energy, UnitJG, UnitEVAtom, func(el element.Element) float64 {
		return el.AtomicMass / (elemCharge * avogadro)
	}},
	{Energy, UnitRyAtom, UnitEVAtom, func(element.Element) float64 {
		return rydbergEV
	}},
	{Energy, UnitRyAtom, UnitErgG, func(el element.Element) float64 {
		return rydbergErg * avogadro / el.AtomicMass
	}},
}

// FindRule looks up the rule converting fromUnit to toUnit within a quantity
// kind. If only the reverse pair is in the catalog the inverted rule is
// returned instead.
func FindRule(kind QuantityKind, fromUnit, toUnit string) (Rule, error) {
	from, to := CanonicalUnit(fromUnit), CanonicalUnit(toUnit)

	for _, r := range catalog {
		if r.Kind != kind {
			continue
		}
		if r.From == from && r.To == to {
			return r, nil
		}
		if r.From == to && r.To == from {
			return r.Invert(), nil
		}
	}

	return Rule{}, &UnsupportedConversionError{Kind: kind, From: fromUnit, To: toUnit}
}

// Rules returns the forward half of the catalog, optionally filtered by kind
// (pass 0 for all).
func Rules(kind QuantityKind) []Rule {
	out := make([]Rule, 0, len(catalog))
	for _, r := range catalog {
		if kind == 0 || r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
