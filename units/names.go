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

import "github.com/ctessum/unit"

var (
	meter   = unit.LengthDim
	second  = unit.TimeDim
	kg      = unit.MassDim
	ampere  = unit.CurrentDim
	kelvin  = unit.TemperatureDim
	candela = unit.LuminousIntensityDim
	angle   = unit.AngleDim
)

// physicalTypes lists the names of the physical quantities, keyed by the
// dimensions they correspond to.
var physicalTypes = []struct {
	name string
	dims unit.Dimensions
}{
	{"dimensionless", unit.Dimless},
	{"length", unit.Meter},
	{"time", unit.Second},
	{"mass", unit.Kilogram},
	{"electrical current", unit.Dimensions{ampere: 1}},
	{"temperature", unit.Kelvin},
	{"luminous intensity", unit.Dimensions{candela: 1}},
	{"angle", unit.Dimensions{angle: 1}},
	{"area", unit.Meter2},
	{"volume", unit.Meter3},
	{"speed", unit.MeterPerSecond},
	{"acceleration", unit.MeterPerSecond2},
	{"frequency", unit.Herz},
	{"wavenumber", unit.Dimensions{meter: -1}},
	{"angular frequency", unit.Dimensions{angle: 1, second: -1}},
	{"force", newton},
	{"energy", unit.Joule},
	{"power", unit.Watt},
	{"pressure", unit.Pascal},
	{"mass density", unit.KilogramPerMeter3},
	{"volumetric flow rate", unit.Meter3PerSecond},
	{"electrical charge", coulomb},
	{"electrical potential", volt},
	{"electrical resistance", ohm},
	{"magnetic flux", weber},
	{"magnetic flux density", tesla},
	{"inverse magnetic flux density", unit.Dimensions{kg: -1, second: 2, ampere: 1}},
	{"momentum/impulse", unit.Dimensions{kg: 1, meter: 1, second: -1}},
	{"specific energy", unit.Dimensions{meter: 2, second: -2}},
	{"inverse temperature", unit.Dimensions{kelvin: -1}},
	{"inverse mass", unit.Dimensions{kg: -1}},
	{"inverse energy", unit.Dimensions{kg: -1, meter: -2, second: 2}},
	{"inverse area", unit.Dimensions{meter: -2}},
}

// QuantityName returns the name of the physical quantity measured in unit
// u, e.g. "length" for "km" or "magnetic flux density" for "G". It
// returns "unknown" for dimensions without a common name.
func QuantityName(u Unit) string {
	b := u.base()
	for _, pt := range physicalTypes {
		if b.Dimensions().Matches(pt.dims) {
			return pt.name
		}
	}
	return "unknown"
}
