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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Array is an ordered set of values sharing one unit.
type Array struct {
	Values []float64
	Unit   Unit
}

// ParseArray parses a list of quantity strings into an Array expressed in the
// unit of the first element. All elements must have compatible units.
func ParseArray(s []string) (Array, error) {
	a := Array{Values: make([]float64, len(s))}
	for i, v := range s {
		q, err := ParseQuantity(v)
		if err != nil {
			return Array{}, err
		}
		if i == 0 {
			a.Unit = q.Unit
		}
		q, err = q.To(a.Unit)
		if err != nil {
			return Array{}, err
		}
		a.Values[i] = q.Value
	}
	return a, nil
}

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a.Values) }

// At returns the i-th element of a.
func (a Array) At(i int) Quantity {
	return Quantity{Value: a.Values[i], Unit: a.Unit}
}

// Strings returns each element of a formatted as a quantity string.
func (a Array) Strings() []string {
	s := make([]string, len(a.Values))
	for i := range a.Values {
		s[i] = a.At(i).String()
	}
	return s
}

// String returns a in the form "[1.0 2.0] m".
func (a Array) String() string {
	s := make([]string, len(a.Values))
	for i, v := range a.Values {
		s[i] = FormatValue(v)
	}
	o := "[" + strings.Join(s, " ") + "]"
	if u := a.Unit.String(); u != "" {
		o += " " + u
	}
	return o
}

// Copy returns a deep copy of a.
func (a Array) Copy() Array {
	o := Array{Values: make([]float64, len(a.Values)), Unit: a.Unit}
	copy(o.Values, a.Values)
	return o
}

// To returns a copy of a converted to unit u.
func (a Array) To(u Unit) (Array, error) {
	f, err := Factor(a.Unit, u)
	if err != nil {
		return Array{}, err
	}
	o := a.Copy()
	o.Unit = u
	if f != 1 {
		floats.Scale(f, o.Values)
	}
	return o, nil
}

// AddQuantity returns a copy of a with q added to every element.
// The result is in the unit of a.
func (a Array) AddQuantity(q Quantity) (Array, error) {
	qc, err := q.To(a.Unit)
	if err != nil {
		return Array{}, err
	}
	o := a.Copy()
	floats.AddConst(qc.Value, o.Values)
	return o, nil
}

// Equal returns whether a and b have the same length and
// represent the same quantities, regardless of unit.
func (a Array) Equal(b Array) bool {
	if !floats.EqualLengths(a.Values, b.Values) {
		return false
	}
	bc, err := b.To(a.Unit)
	if err != nil {
		return false
	}
	for i, v := range a.Values {
		if !equalValues(v, bc.Values[i]) {
			return false
		}
	}
	return true
}

// Monotonic returns 1 if the values of a are strictly increasing, -1 if
// they are strictly decreasing and 0 otherwise. A single value is
// considered increasing.
func (a Array) Monotonic() int {
	inc, dec := true, true
	for i := 1; i < len(a.Values); i++ {
		if a.Values[i] <= a.Values[i-1] {
			inc = false
		}
		if a.Values[i] >= a.Values[i-1] {
			dec = false
		}
	}
	switch {
	case inc:
		return 1
	case dec:
		return -1
	}
	return 0
}
