// Package factortable writes the per-element conversion factor tables:
// for every element and a fixed set of unit pairs, the factor that converts
// a value of 1 between the pair.
package factortable

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/element"
)

type column struct {
	from string
	to   string
	verb string // near-unity factors print fixed-point, the rest scientific
}

var entropyColumns = []column{
	{convert.UnitErgGK, convert.UnitKBAtom, "%.6E"},
	{convert.UnitMbarCCGK, convert.UnitKBAtom, "%.6E"},
	{convert.UnitJGK, convert.UnitKBAtom, "%.6f"},
	{convert.UnitJMolK, convert.UnitJGK, "%.6f"},
}

var energyColumns = []column{
	{convert.UnitErgG, convert.UnitEVAtom, "%.6E"},
	{convert.UnitJG, convert.UnitEVAtom, "%.6E"},
	{convert.UnitRyAtom, convert.UnitEVAtom, "%.6f"},
	{convert.UnitRyAtom, convert.UnitErgG, "%.6E"},
}

// WriteAll writes the four factor tables (entropy and energy, forward and
// reverse) into dir.
func WriteAll(dir string, reg *element.Registry) error {
	tables := []struct {
		name    string
		columns []column
		reverse bool
	}{
		{"entropy_conversion_table.txt", entropyColumns, false},
		{"entropy_conversion_table_reverse.txt", entropyColumns, true},
		{"energy_conversion_table.txt", energyColumns, false},
		{"energy_conversion_table_reverse.txt", energyColumns, true},
	}

	for _, tbl := range tables {
		cols := tbl.columns
		if tbl.reverse {
			cols = reversed(cols)
		}
		if err := writeTable(filepath.Join(dir, tbl.name), cols, reg); err != nil {
			return err
		}
	}

	return nil
}

func reversed(cols []column) []column {
	out := make([]column, len(cols))
	for i, c := range cols {
		out[i] = column{from: c.to, to: c.from, verb: c.verb}
	}
	return out
}

func writeTable(filePath string, cols []column, reg *element.Registry) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprint(w, "Starting Unit\t\t")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c.from)
	}
	fmt.Fprint(w, "\nEnding Unit\t\t")
	for _, c := range cols {
		fmt.Fprintf(w, "\t%s", c.to)
	}
	fmt.Fprint(w, "\nElement\t\tAMass\n")

	for _, el := range reg.All() {
		fmt.Fprintf(w, "%d\t\t%.6f", el.Number, el.AtomicMass)
		for _, c := range cols {
			kind, _ := convert.KindOfUnit(c.from)
			rule, err := convert.FindRule(kind, c.from, c.to)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\t"+c.verb, rule.Apply(1, el))
		}
		fmt.Fprint(w, "\n")
	}

	return w.Flush()
}
