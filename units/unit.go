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

// Package units provides the physical quantities used to describe
// coordinates: units parsed from strings such as "km * s^-1", scalar
// quantities such as "5.0 G" and quantity arrays. Dimensional analysis is
// carried out with github.com/ctessum/unit.
package units

import (
	"fmt"
	"strings"

	"github.com/ctessum/unit"
)

// term is one symbol of a unit together with its power,
// e.g. the "s^-1" in "m * s^-1".
type term struct {
	symbol string
	power  int
}

// Unit is a physical unit. The zero value is dimensionless.
type Unit struct {
	terms []term

	// si holds the value of one of this unit in SI units,
	// along with the SI dimensions.
	si *unit.Unit
}

// Dimensionless is the unit of pure numbers.
var Dimensionless = Unit{}

// base returns the SI representation of u.
func (u Unit) base() *unit.Unit {
	if u.si == nil {
		return unit.New(1, unit.Dimless)
	}
	return u.si
}

// Scale returns the value of one u in SI units.
func (u Unit) Scale() float64 {
	return u.base().Value()
}

// Dimensions returns the SI dimensions of u.
func (u Unit) Dimensions() unit.Dimensions {
	return u.base().Clone().Dimensions()
}

// String returns u in the form "km * s^-1".
func (u Unit) String() string {
	s := make([]string, len(u.terms))
	for i, t := range u.terms {
		if t.power == 1 {
			s[i] = t.symbol
		} else {
			s[i] = fmt.Sprintf("%s^%d", t.symbol, t.power)
		}
	}
	return strings.Join(s, " * ")
}

// Compatible returns whether a and b have the same
// physical dimensions.
func Compatible(a, b Unit) bool {
	return unit.DimensionsMatch(a.base(), b.base())
}

// Factor returns the number that a value in unit a must be multiplied by to
// express it in unit b.
func Factor(a, b Unit) (float64, error) {
	if !Compatible(a, b) {
		return 0, DimensionalityError{Unit: a, Want: b}
	}
	if a.Scale() == b.Scale() {
		return 1, nil
	}
	return a.Scale() / b.Scale(), nil
}

// Inverse returns 1/u.
func (u Unit) Inverse() Unit {
	o := Unit{terms: make([]term, len(u.terms))}
	for i, t := range u.terms {
		o.terms[i] = term{symbol: t.symbol, power: -t.power}
	}
	o.si = unit.Div(unit.New(1, unit.Dimless), u.base())
	return o
}

// siOrder is the order in which base dimensions appear in SI units.
var siOrder = []unit.Dimension{
	unit.MassDim, unit.LengthDim, unit.TimeDim, unit.CurrentDim,
	unit.TemperatureDim, unit.LuminousIntensityDim, unit.AngleDim,
}

// SI returns the coherent SI unit with the same dimensions as u,
// e.g. "kg * m * s^-2" for "N". Base dimensions are always listed
// in the same order.
func (u Unit) SI() Unit {
	dims := u.Dimensions()
	var si Unit
	for _, d := range siOrder {
		if p := dims[d]; p != 0 {
			si.terms = append(si.terms, term{symbol: d.String(), power: p})
		}
	}
	si.si = unit.New(1, dims)
	return si
}

// IsDimensionless returns whether u has no physical dimensions.
func (u Unit) IsDimensionless() bool {
	return len(u.base().Dimensions()) == 0
}

// mul returns a*b, merging repeated symbols.
func mul(a, b Unit) Unit {
	o := Unit{terms: make([]term, len(a.terms), len(a.terms)+len(b.terms))}
	copy(o.terms, a.terms)
	for _, t := range b.terms {
		merged := false
		for i, ot := range o.terms {
			if ot.symbol == t.symbol {
				o.terms[i].power += t.power
				merged = true
				break
			}
		}
		if !merged {
			o.terms = append(o.terms, t)
		}
	}
	nonzero := o.terms[:0]
	for _, t := range o.terms {
		if t.power != 0 {
			nonzero = append(nonzero, t)
		}
	}
	o.terms = nonzero
	o.si = unit.Mul(a.base(), b.base())
	return o
}

// pow returns u raised to the integer power p.
func pow(u Unit, p int) Unit {
	o := Unit{terms: make([]term, 0, len(u.terms))}
	if p != 0 {
		for _, t := range u.terms {
			o.terms = append(o.terms, term{symbol: t.symbol, power: t.power * p})
		}
	}
	si := unit.New(1, unit.Dimless)
	b := u.base()
	for i := 0; i < p; i++ {
		si.Mul(b)
	}
	for i := 0; i > p; i-- {
		si.Div(b)
	}
	o.si = si
	return o
}

// ParseUnit parses a unit string such as "m/s", "km * s^-1", "J/(kg K)"
// or "1/s". The empty string is dimensionless.
func ParseUnit(s string) (Unit, error) {
	toks, err := tokenize(s)
	if err != nil {
		return Unit{}, err
	}
	if len(toks) == 0 {
		return Dimensionless, nil
	}
	p := &unitParser{in: s, toks: toks}
	u, err := p.expr()
	if err != nil {
		return Unit{}, err
	}
	if p.pos != len(p.toks) {
		return Unit{}, ParseError{Input: s, Msg: fmt.Sprintf("unexpected %q", p.toks[p.pos].text)}
	}
	return u, nil
}

// MustParseUnit is like ParseUnit but panics on error.
func MustParseUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Equal returns whether u and v are the same unit,
// both in scale and in dimensions.
func (u Unit) Equal(v Unit) bool {
	return Compatible(u, v) && u.Scale() == v.Scale()
}
