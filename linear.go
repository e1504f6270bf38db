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

package csdm

import (
	"math"

	"github.com/spatialmodel/csdm/units"
)

// linear is a dimension whose coordinates are evenly spaced.
// Coordinates are derived from the other fields each time they are read.
type linear struct {
	meta
	physical

	n                 int
	increment         units.Quantity
	coordinatesOffset units.Quantity
	complexFFT        bool
	fftOutputOrder    bool
}

func newLinear(p Params) (*linear, error) {
	for _, k := range []string{"increment", "count"} {
		if v, ok := p[k]; !ok || v == nil {
			return nil, MissingKeyError{Type: "linear", Key: k}
		}
	}
	n, err := countParam(p["count"])
	if err != nil {
		return nil, err
	}
	inc, err := quantity("increment", p["increment"])
	if err != nil {
		return nil, err
	}
	if err = checkIncrement(inc); err != nil {
		return nil, err
	}
	l := &linear{
		n:                 n,
		increment:         inc,
		coordinatesOffset: units.New(0, inc.Unit),
		physical:          newPhysical(inc.Unit),
	}
	if l.meta, err = metaParams(p); err != nil {
		return nil, err
	}
	if v, ok := p["coordinates_offset"]; ok && v != nil {
		if l.coordinatesOffset, err = compatibleQuantity("coordinates_offset", v, inc.Unit); err != nil {
			return nil, err
		}
	}
	if err = setPhysical(&l.physical, p, inc.Unit); err != nil {
		return nil, err
	}
	if l.complexFFT, err = boolParam(p, "complex_fft"); err != nil {
		return nil, err
	}
	if l.fftOutputOrder, err = boolParam(p, "fft_output_order"); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *linear) typ() string { return "linear" }
func (l *linear) base() *meta { return &l.meta }
func (l *linear) count() int { return l.n }
func (l *linear) unit() units.Unit { return l.increment.Unit }
func (l *linear) phys() *physical { return &l.physical }

func (l *linear) setCount(n int) error {
	if n < 1 {
		return CountError{Count: n}
	}
	l.n = n
	return nil
}

// indexes returns the index of each coordinate.
func (l *linear) indexes() []int {
	if l.complexFFT && !l.fftOutputOrder {
		return centeredIndexArray(l.n)
	}
	return IndexArray(l.n, l.fftOutputOrder)
}

// coordinates returns index*increment + coordinates_offset,
// in the unit of the increment.
func (l *linear) coordinates() Coordinates {
	return l.array()
}

func (l *linear) array() units.Array {
	a := units.Array{Values: make([]float64, l.n), Unit: l.increment.Unit}
	for i, idx := range l.indexes() {
		a.Values[i] = float64(idx) * l.increment.Value
	}
	// The offset is compatible with the increment by construction.
	o, err := a.AddQuantity(l.coordinatesOffset)
	if err != nil {
		panic(err)
	}
	return o
}

func (l *linear) absoluteCoordinates() units.Array {
	o, err := l.array().AddQuantity(l.originOffset)
	if err != nil {
		panic(err)
	}
	return o
}

// checkIncrement returns an error if q cannot space the coordinates of
// a linear dimension.
func checkIncrement(q units.Quantity) error {
	if q.IsZero() || q.IsNaN() || math.IsInf(q.Value, 0) {
		return ValueError{Attribute: "increment", Msg: "increment must be finite and non-zero"}
	}
	return nil
}

func (l *linear) setIncrement(v interface{}) error {
	q, err := compatibleQuantity("increment", v, l.increment.Unit)
	if err != nil {
		return err
	}
	if err = checkIncrement(q); err != nil {
		return err
	}
	l.increment = q
	return nil
}

func (l *linear) setCoordinatesOffset(v interface{}) error {
	q, err := compatibleQuantity("coordinates_offset", v, l.increment.Unit)
	if err != nil {
		return err
	}
	l.coordinatesOffset = q
	return nil
}

func (l *linear) to(u units.Unit) error {
	inc, err := l.increment.To(u)
	if err != nil {
		return err
	}
	co, err := l.coordinatesOffset.To(u)
	if err != nil {
		return err
	}
	if err = l.physical.to(u); err != nil {
		return err
	}
	l.increment, l.coordinatesOffset = inc, co
	return nil
}

func (l *linear) dict() Dict {
	d := Dict{
		Type:      l.typ(),
		Count:     l.n,
		Increment: l.increment.String(),
	}
	l.meta.fill(&d)
	if !l.coordinatesOffset.IsZero() {
		d.CoordinatesOffset = l.coordinatesOffset.String()
	}
	l.physical.fill(&d, l.unit())
	d.ComplexFFT = l.complexFFT
	d.FFTOutputOrder = l.fftOutputOrder
	return d
}

func (l *linear) copy() subtype {
	o := *l
	o.meta = l.meta.copy()
	o.physical = l.physical.copy()
	return &o
}

func (l *linear) equal(s subtype) bool {
	o, ok := s.(*linear)
	if !ok {
		return false
	}
	return l.n == o.n &&
		l.increment.Equal(o.increment) &&
		l.coordinatesOffset.Equal(o.coordinatesOffset) &&
		l.complexFFT == o.complexFFT &&
		l.fftOutputOrder == o.fftOutputOrder &&
		l.physical.equal(o.physical) &&
		l.meta.equal(o.meta)
}
