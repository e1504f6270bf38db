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

import "fmt"

// DimensionalityError is returned when a unit is not physically
// compatible with the unit it is combined with or converted to.
type DimensionalityError struct {
	Unit, Want Unit
}

func (e DimensionalityError) Error() string {
	return fmt.Sprintf("The unit '%s' (%s) is inconsistent with the unit '%s' (%s).",
		e.Unit, QuantityName(e.Unit), e.Want, QuantityName(e.Want))
}

// ParseError is returned when a unit or quantity string is malformed.
type ParseError struct {
	Input string
	Msg   string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("units: parsing %q: %s", e.Input, e.Msg)
}
