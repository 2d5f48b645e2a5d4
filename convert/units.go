package convert

// QuantityKind separates the entropy and energy halves of the catalog. A
// unit label belongs to exactly one kind, so the kind of a conversion can be
// derived from its unit pair.
type QuantityKind int

const (
	Entropy QuantityKind = iota + 1
	Energy
)

func (k QuantityKind) String() string {
	switch k {
	case Entropy:
		return "entropy"
	case Energy:
		return "energy"
	}
	return "unknown"
}

// Supported unit labels. Matching is case-sensitive ("kB/atom" and "J/g" carry
// meaningful case); the single historical exception is "J/mol/k", accepted as
// a spelling of "J/mol/K".
const (
	UnitJMolK    = "J/mol/K"
	UnitErgGK    = "erg/g/K"
	UnitJGK      = "J/g/K"
	UnitMbarCCGK = "Mbar-cc/g/K"
	UnitKBAtom   = "kB/atom"

	UnitKJMol   = "kJ/mol"
	UnitMeVAtom = "meV/atom"
	UnitEVAtom  = "eV/atom"
	UnitErgG    = "erg/g"
	UnitJG      = "J/g"
	UnitRyAtom  = "Ry/atom"
)

var unitKinds = map[string]QuantityKind{
	UnitJMolK:    Entropy,
	UnitErgGK:    Entropy,
	UnitJGK:      Entropy,
	UnitMbarCCGK: Entropy,
	UnitKBAtom:   Entropy,

	UnitKJMol:   Energy,
	UnitMeVAtom: Energy,
	UnitEVAtom:  Energy,
	UnitErgG:    Energy,
	UnitJG:      Energy,
	UnitRyAtom:  Energy,
}

// CanonicalUnit maps accepted spellings onto catalog unit labels.
func CanonicalUnit(unit string) string {
	if unit == "J/mol/k" {
		return UnitJMolK
	}
	return unit
}

// KindOfUnit reports the quantity kind a unit label belongs to.
func KindOfUnit(unit string) (QuantityKind, bool) {
	k, ok := unitKinds[CanonicalUnit(unit)]
	return k, ok
}

// Units returns the supported unit labels keyed to their quantity kind.
func Units() map[string]QuantityKind {
	out := make(map[string]QuantityKind, len(unitKinds))
	for u, k := range unitKinds {
		out[u] = k
	}
	return out
}
