package main

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/element"
)

func testConverter() *convert.Converter {
	return convert.NewConverter(element.NewRegistry())
}

func TestConvertLineFactor(t *testing.T) {
	out, err := convertLine(testConverter(), []string{"Carbon", "erg/g", "eV/atom"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Carbon, erg/g -> eV/atom: ") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "E-11") {
		t.Fatalf("expected scientific notation around 1.2449E-11, got %q", out)
	}
}

func TestConvertLineWithValue(t *testing.T) {
	factor, err := convertLine(testConverter(), []string{"4", "J/g/K", "kB/atom"})
	if err != nil {
		t.Fatal(err)
	}

	doubled, err := convertLine(testConverter(), []string{"4", "J/g/K", "kB/atom", "2"})
	if err != nil {
		t.Fatal(err)
	}

	if factor == doubled {
		t.Fatal("value argument had no effect")
	}
	if !strings.HasPrefix(factor, "Beryllium, ") {
		t.Fatalf("atomic number 4 should resolve to Beryllium, got %q", factor)
	}
}

func TestConvertLineLowercaseKelvin(t *testing.T) {
	upper, err := convertLine(testConverter(), []string{"C", "J/mol/K", "kB/atom"})
	if err != nil {
		t.Fatal(err)
	}
	lower, err := convertLine(testConverter(), []string{"C", "J/mol/k", "kB/atom"})
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Fatalf("%q != %q", upper, lower)
	}
}

func TestConvertLineBadValue(t *testing.T) {
	_, err := convertLine(testConverter(), []string{"C", "erg/g", "eV/atom", "x"})
	if err == nil || !strings.Contains(err.Error(), "invalid value") {
		t.Fatalf("expected invalid value error, got %v", err)
	}
}

func TestConvertLineUnknownElement(t *testing.T) {
	_, err := convertLine(testConverter(), []string{"Unobtainium", "erg/g", "eV/atom"})

	var unknown *element.UnknownElementError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownElementError, got %v", err)
	}
}

func TestConvertLineUnsupportedPair(t *testing.T) {
	_, err := convertLine(testConverter(), []string{"C", "kB/atom", "Ry/atom"})

	var unsupported *convert.UnsupportedConversionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedConversionError, got %v", err)
	}
}

func TestUnitsOfKind(t *testing.T) {
	entropy := unitsOfKind(convert.Entropy)
	if !sort.StringsAreSorted(entropy) {
		t.Fatalf("entropy units not sorted: %v", entropy)
	}
	if len(entropy) != 5 {
		t.Fatalf("%d entropy units, want 5: %v", len(entropy), entropy)
	}

	energy := unitsOfKind(convert.Energy)
	if !sort.StringsAreSorted(energy) {
		t.Fatalf("energy units not sorted: %v", energy)
	}
	if len(energy) != 6 {
		t.Fatalf("%d energy units, want 6: %v", len(energy), energy)
	}
}

func TestSplitRequest(t *testing.T) {
	fields := splitRequest("  Zr   kB/atom  Mbar-cc/g/K ")
	if len(fields) != 3 || fields[0] != "Zr" || fields[2] != "Mbar-cc/g/K" {
		t.Fatalf("unexpected fields %v", fields)
	}

	if len(splitRequest("   ")) != 0 {
		t.Fatal("blank line should produce no fields")
	}
}
