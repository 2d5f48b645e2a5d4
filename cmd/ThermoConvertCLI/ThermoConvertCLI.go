package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/element"
	"github.com/PhaseLab/ThermoConvert/factortable"
	"github.com/spf13/cobra"
)

const banner = `------------------------------
Parameter Format:
"Name/Atomic Number/Symbol" "Starting Unit" "Ending Unit" ["Value"]
------------------------------
Current Conversions Supported:

	J/mol/K <-> kB/atom
	erg/g/K (cgs) <-> kB/atom
	J/g/K (SI units) <-> kB/atom
	Mbar-cc/g/K (bdivK) <-> kB/atom
	J/mol/K <-> J/g/K
	J/g/K <-> erg/g/K
	Mbar-cc/g/K <-> J/g/K

	kJ/mol <-> meV/atom
	eV/atom <-> erg/g
	J/g <-> eV/atom
	Ry/atom <-> eV/atom
	Ry/atom <-> erg/g
------------------------------
Examples:
4 J/g/K kB/atom
Carbon erg/g eV/atom
Zr kB/atom Mbar-cc/g/K
------------------------------`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var massesFile string

	cmd := &cobra.Command{
		Use:          "thermoconv [identifier starting-unit ending-unit [value]]",
		Short:        "Convert entropy and energy units for chemical elements",
		Long:         "Converts thermodynamic quantities between unit systems using per-element reference constants.\nWithout arguments it reads one request per line from stdin.\nWithout a value it reports the conversion factor for the unit pair.",
		Args:         cobra.MaximumNArgs(4),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			conv, err := newConverter(massesFile)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				if len(args) < 3 {
					return fmt.Errorf("need identifier, starting unit, and ending unit, got %d argument(s)", len(args))
				}
				line, err := convertLine(conv, args)
				if err != nil {
					return err
				}
				fmt.Println(line)
				return nil
			}

			fmt.Println(banner)
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				fields := splitRequest(scanner.Text())
				if len(fields) == 0 {
					continue
				}
				if len(fields) < 3 {
					fmt.Println("Please state the element, starting unit, and ending unit in this order.")
					continue
				}

				line, err := convertLine(conv, fields)
				if err != nil {
					fmt.Println(err)
					continue
				}
				fmt.Println(line)
			}
			return scanner.Err()
		},
	}

	cmd.PersistentFlags().StringVarP(&massesFile, "masses", "m", "", "YAML file of atomic mass overrides")

	cmd.AddCommand(elementsCmd(&massesFile))
	cmd.AddCommand(unitsCmd())
	cmd.AddCommand(tableCmd(&massesFile))
	return cmd
}

func newConverter(massesFile string) (*convert.Converter, error) {
	reg, err := newRegistry(massesFile)
	if err != nil {
		return nil, err
	}
	return convert.NewConverter(reg), nil
}

func newRegistry(massesFile string) (*element.Registry, error) {
	if massesFile != "" {
		return element.NewRegistryWithMasses(massesFile)
	}
	return element.NewRegistry(), nil
}

func elementsCmd(massesFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the periodic table with the atomic masses in use",
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := newRegistry(*massesFile)
			if err != nil {
				return err
			}

			for _, el := range reg.All() {
				fmt.Printf("%3d  %-3s %-13s %12.6f\n", el.Number, el.Symbol, el.Name, el.AtomicMass)
			}
			return nil
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the supported units by quantity kind",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, kind := range []convert.QuantityKind{convert.Entropy, convert.Energy} {
				fmt.Printf("%s:\n", kind)
				for _, unit := range unitsOfKind(kind) {
					fmt.Printf("\t%s\n", unit)
				}
			}
			return nil
		},
	}
}

func unitsOfKind(kind convert.QuantityKind) []string {
	var units []string
	for unit, k := range convert.Units() {
		if k == kind {
			units = append(units, unit)
		}
	}
	sort.Strings(units)
	return units
}

func tableCmd(massesFile *string) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Write the per-element conversion factor tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			reg, err := newRegistry(*massesFile)
			if err != nil {
				return err
			}
			return factortable.WriteAll(outDir, reg)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write the tables into")
	return cmd
}
