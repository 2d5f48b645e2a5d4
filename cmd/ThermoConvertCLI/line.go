package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PhaseLab/ThermoConvert/convert"
)

// splitRequest breaks a request line into fields.
func splitRequest(line string) []string {
	return strings.Fields(line)
}

// convertLine handles one request: identifier, starting unit, ending unit,
// and an optional value (1 when absent, giving the conversion factor).
func convertLine(conv *convert.Converter, fields []string) (string, error) {
	identifier, fromUnit, toUnit := fields[0], fields[1], fields[2]

	value := 1.0
	if len(fields) > 3 {
		var err error
		value, err = strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return "", fmt.Errorf("invalid value %q", fields[3])
		}
	}

	el, err := conv.Registry().Resolve(identifier)
	if err != nil {
		return "", err
	}

	res, err := conv.ConvertElement(el, fromUnit, toUnit, value)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s, %s -> %s: %.6E", el.Name,
		convert.CanonicalUnit(fromUnit), convert.CanonicalUnit(toUnit), res), nil
}
