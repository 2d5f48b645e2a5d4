package convert

import "github.com/PhaseLab/ThermoConvert/element"

// Converter resolves elements and applies catalog rules. Stateless after
// construction and safe for concurrent use.
type Converter struct {
	reg *element.Registry
}

func NewConverter(reg *element.Registry) *Converter {
	return &Converter{reg: reg}
}

func (c *Converter) Registry() *element.Registry {
	return c.reg
}

// Convert resolves the element identifier and converts value from fromUnit
// to toUnit. The quantity kind is derived from the unit labels; a pair that
// mixes entropy and energy units is unsupported.
func (c *Converter) Convert(identifier, fromUnit, toUnit string, value float64) (float64, error) {
	el, err := c.reg.Resolve(identifier)
	if err != nil {
		return 0, err
	}
	return c.ConvertElement(el, fromUnit, toUnit, value)
}

// ConvertElement is Convert for an already-resolved element.
func (c *Converter) ConvertElement(el element.Element, fromUnit, toUnit string, value float64) (float64, error) {
	fromKind, okFrom := KindOfUnit(fromUnit)
	toKind, okTo := KindOfUnit(toUnit)
	if !okFrom || !okTo || fromKind != toKind {
		kind := fromKind
		if !okFrom {
			kind = toKind
		}
		return 0, &UnsupportedConversionError{Kind: kind, From: fromUnit, To: toUnit}
	}

	rule, err := FindRule(fromKind, fromUnit, toUnit)
	if err != nil {
		return 0, err
	}

	return rule.Apply(value, el), nil
}

// Factor returns the conversion factor for the unit pair, i.e. the value 1
// expressed in fromUnit converted to toUnit.
func (c *Converter) Factor(identifier, fromUnit, toUnit string) (float64, error) {
	return c.Convert(identifier, fromUnit, toUnit, 1)
}
