/*
Copyright © 2019 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package units

import (
	"math"
	"sort"

	"github.com/ctessum/unit"
	"github.com/ctessum/unit/badunit"
)

// atom is a unit symbol that can appear in a unit string.
type atom struct {
	// scale is the value of one of this unit in SI units.
	scale float64
	dims  unit.Dimensions

	// prefixable specifies whether SI prefixes can be
	// attached to the symbol.
	prefixable bool
}

var (
	coulomb = unit.Dimensions{unit.CurrentDim: 1, unit.TimeDim: 1}
	volt    = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.CurrentDim: -1}
	ohm     = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3, unit.CurrentDim: -2}
	tesla   = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2, unit.CurrentDim: -1}
	weber   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2, unit.CurrentDim: -1}
	newton  = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 1, unit.TimeDim: -2}
	radian  = unit.Dimensions{unit.AngleDim: 1}
)

const (
	lightYear        = 9460730472580800.     // m
	parsec           = 3.0856775814913673e16 // m
	astronomicalUnit = 1.495978707e11        // m
	electronVolt     = 1.602176634e-19       // J
	day              = 86400.                // s
	julianYear       = 365.25 * day          // s
)

// atoms holds the recognized unit symbols.
var atoms = map[string]atom{
	// SI base units. The kilogram is handled as a prefixed gram.
	"m":   {1, unit.Meter, true},
	"g":   {1.e-3, unit.Kilogram, true},
	"s":   {1, unit.Second, true},
	"A":   {1, unit.Dimensions{unit.CurrentDim: 1}, true},
	"K":   {1, unit.Kelvin, true},
	"cd":  {1, unit.Dimensions{unit.LuminousIntensityDim: 1}, true},
	"rad": {1, radian, true},

	// SI derived units.
	"Hz":  {1, unit.Herz, true},
	"N":   {1, newton, true},
	"J":   {1, unit.Joule, true},
	"W":   {1, unit.Watt, true},
	"Pa":  {1, unit.Pascal, true},
	"C":   {1, coulomb, true},
	"V":   {1, volt, true},
	"Ω":   {1, ohm, true},
	"Ohm": {1, ohm, true},
	"T":   {1, tesla, true},
	"Wb":  {1, weber, true},
	"L":   {1.e-3, unit.Meter3, true},
	"l":   {1.e-3, unit.Meter3, true},
	"eV":  {electronVolt, unit.Joule, true},

	// CGS and other units accepted for use with SI.
	"G":        {1.e-4, tesla, true}, // gauss
	"Angstrom": {1.e-10, unit.Meter, false},
	"Å":        {1.e-10, unit.Meter, false},
	"AU":       {astronomicalUnit, unit.Meter, false},
	"au":       {astronomicalUnit, unit.Meter, false},
	"lyr":      {lightYear, unit.Meter, true},
	"pc":       {parsec, unit.Meter, true},
	"min":      {60, unit.Second, false},
	"h":        {3600, unit.Second, false},
	"d":        {day, unit.Second, false},
	"yr":       {julianYear, unit.Second, true},
	"bar":      {1.e5, unit.Pascal, true},
	"atm":      {101325, unit.Pascal, false},
	"deg":      {math.Pi / 180, radian, false},
	"°":        {math.Pi / 180, radian, false},
	"arcmin":   {math.Pi / 180 / 60, radian, false},
	"arcsec":   {math.Pi / 180 / 3600, radian, false},
	"ppm":      {1.e-6, unit.Dimless, false},
	"ppb":      {1.e-9, unit.Dimless, false},
	"%":        {1.e-2, unit.Dimless, false},

	// Imperial units.
	"mi":  {badunit.Mile(1).Value(), unit.Meter, false},
	"ft":  {badunit.Foot(1).Value(), unit.Meter, false},
	"lb":  {badunit.Pound(1).Value(), unit.Kilogram, false},
	"ton": {badunit.Ton(1).Value(), unit.Kilogram, false},
	"mph": {badunit.MilePerHour(1).Value(), unit.MeterPerSecond, false},
	"Btu": {badunit.Btu(1).Value(), unit.Joule, false},
	"hp":  {badunit.HorsePower(1).Value(), unit.Watt, false},
	"gal": {badunit.Gallon(1).Value(), unit.Meter3, false},
}

// prefixes are the SI prefixes.
var prefixes = map[string]float64{
	"Y": 1.e24, "Z": 1.e21, "E": 1.e18, "P": 1.e15, "T": 1.e12,
	"G": 1.e9, "M": 1.e6, "k": 1.e3, "h": 1.e2, "da": 1.e1,
	"d": 1.e-1, "c": 1.e-2, "m": 1.e-3, "µ": 1.e-6, "μ": 1.e-6, "u": 1.e-6,
	"n": 1.e-9, "p": 1.e-12, "f": 1.e-15, "a": 1.e-18, "z": 1.e-21, "y": 1.e-24,
}

// prefixOrder lists the prefixes longest first so that "da" is
// tried before "d".
var prefixOrder []string

func init() {
	for p := range prefixes {
		prefixOrder = append(prefixOrder, p)
	}
	sort.Slice(prefixOrder, func(i, j int) bool {
		if len(prefixOrder[i]) != len(prefixOrder[j]) {
			return len(prefixOrder[i]) > len(prefixOrder[j])
		}
		return prefixOrder[i] < prefixOrder[j]
	})
}

// lookup finds the unit represented by symbol, first as an exact
// match and then as an SI prefix followed by a prefixable unit.
func lookup(symbol string) (*unit.Unit, bool) {
	if a, ok := atoms[symbol]; ok {
		return unit.New(a.scale, a.dims), true
	}
	for _, p := range prefixOrder {
		if len(symbol) <= len(p) || symbol[:len(p)] != p {
			continue
		}
		a, ok := atoms[symbol[len(p):]]
		if !ok || !a.prefixable {
			continue
		}
		return unit.New(prefixes[p]*a.scale, a.dims), true
	}
	return nil, false
}
