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

// Package csdm describes the dimensions of a multi-dimensional scientific
// dataset in the Core Scientific Dataset Model (CSDM). A Dimension is one
// axis of the dataset's coordinate grid. Its coordinates are either evenly
// spaced ("linear"), an explicit strictly ordered list of quantities
// ("monotonic") or a list of string labels ("labeled").
package csdm

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/csdm/units"
)

// Log receives warnings, for example when changing the count of a
// dimension discards coordinates.
var Log logrus.FieldLogger = logrus.StandardLogger()

var inf = math.Inf(1)

const unknownQuantity = "unknown"

// subtype is implemented by the three dimension types.
type subtype interface {
	typ() string
	base() *meta
	count() int
	setCount(n int) error
	coordinates() Coordinates
	dict() Dict
	copy() subtype
	equal(subtype) bool
}

// quantitative is implemented by the linear and monotonic dimension types.
type quantitative interface {
	subtype
	unit() units.Unit
	phys() *physical
	absoluteCoordinates() units.Array
	to(units.Unit) error
}

var (
	_ quantitative = &linear{}
	_ quantitative = &monotonic{}
	_ subtype      = &labeled{}
)

func subtypeName(typ string) string {
	switch typ {
	case "linear":
		return "LinearDimension"
	case "monotonic":
		return "MonotonicDimension"
	case "labeled":
		return "LabeledDimension"
	default:
		return typ
	}
}

// Dimension is one dimension of a CSDM dataset. Its type is fixed
// when it is created.
type Dimension struct {
	sub subtype
}

// New creates a new dimension from the given parameters, which
// must include a "type" key.
func New(p Params) (*Dimension, error) {
	t, ok := p["type"]
	if !ok || t == nil {
		return nil, MissingKeyError{Key: "type"}
	}
	var s subtype
	var err error
	switch t {
	case "linear":
		s, err = newLinear(p)
	case "monotonic":
		s, err = newMonotonic(p)
	case "labeled":
		s, err = newLabeled(p)
	default:
		return nil, InvalidTypeError{Type: t}
	}
	if err != nil {
		return nil, err
	}
	return &Dimension{sub: s}, nil
}

// Type returns "linear", "monotonic" or "labeled".
func (d *Dimension) Type() string { return d.sub.typ() }

// SetType always returns an ImmutableError because the type of a
// dimension cannot be changed.
func (d *Dimension) SetType(string) error {
	return ImmutableError{Type: d.Type(), Attribute: "type"}
}

// Description returns the description of the dimension.
func (d *Dimension) Description() string { return d.sub.base().description }

// SetDescription sets the description of the dimension.
func (d *Dimension) SetDescription(s string) { d.sub.base().description = s }

// Label returns the label of the dimension.
func (d *Dimension) Label() string { return d.sub.base().label }

// SetLabel sets the label of the dimension.
func (d *Dimension) SetLabel(s string) { d.sub.base().label = s }

// Application returns the application metadata of the dimension.
func (d *Dimension) Application() map[string]interface{} {
	return d.sub.base().application
}

// SetApplication sets the application metadata of the dimension.
func (d *Dimension) SetApplication(a map[string]interface{}) {
	d.sub.base().application = a
}

// Count returns the number of points along the dimension.
func (d *Dimension) Count() int { return d.sub.count() }

// SetCount sets the number of points along the dimension. For linear
// dimensions any positive count is valid. For monotonic and labeled
// dimensions a smaller count discards the trailing coordinates, which is
// logged as a warning, and a count larger than the number of
// coordinates is an error.
func (d *Dimension) SetCount(n int) error { return d.sub.setCount(n) }

// Coordinates returns the coordinates along the dimension. For linear
// and monotonic dimensions they are a units.Array; for labeled dimensions
// they are Labels. Coordinates of linear dimensions are computed from the
// current count, increment, coordinates offset and FFT settings.
func (d *Dimension) Coordinates() Coordinates { return d.sub.coordinates() }

// SetCoordinates replaces the coordinates of a monotonic dimension, which
// must be given as quantity strings or a units.Array with the same
// dimensionality as the current coordinates, or of a labeled dimension,
// which must be given as strings. Coordinates of linear dimensions
// cannot be set.
func (d *Dimension) SetCoordinates(v interface{}) error {
	switch s := d.sub.(type) {
	case *monotonic:
		u := s.unit()
		return s.setValues(v, &u)
	case *labeled:
		return s.setLabels(v)
	default:
		return ImmutableError{Type: d.Type(), Attribute: "coordinates"}
	}
}

// AbsoluteCoordinates returns the coordinates plus the origin offset,
// in the unit of the coordinates.
func (d *Dimension) AbsoluteCoordinates() (units.Array, error) {
	q, err := d.quantitative("absolute_coordinates")
	if err != nil {
		return units.Array{}, err
	}
	return q.absoluteCoordinates(), nil
}

// Labels returns the labels of a labeled dimension. The returned slice
// shares storage with d.
func (d *Dimension) Labels() (Labels, error) {
	l, ok := d.sub.(*labeled)
	if !ok {
		return nil, NotApplicableError{Type: d.Type(), Attribute: "labels"}
	}
	return l.labels, nil
}

// SetLabels replaces the labels of a labeled dimension.
// v must be a []string or a []interface{} holding only strings.
func (d *Dimension) SetLabels(v interface{}) error {
	l, ok := d.sub.(*labeled)
	if !ok {
		return NotApplicableError{Type: d.Type(), Attribute: "labels"}
	}
	return l.setLabels(v)
}

func (d *Dimension) linear(attr string) (*linear, error) {
	l, ok := d.sub.(*linear)
	if !ok {
		return nil, NotApplicableError{Type: d.Type(), Attribute: attr}
	}
	return l, nil
}

func (d *Dimension) quantitative(attr string) (quantitative, error) {
	q, ok := d.sub.(quantitative)
	if !ok {
		return nil, NotApplicableError{Type: d.Type(), Attribute: attr}
	}
	return q, nil
}

// Increment returns the spacing between the coordinates of a linear dimension.
func (d *Dimension) Increment() (units.Quantity, error) {
	l, err := d.linear("increment")
	if err != nil {
		return units.Quantity{}, err
	}
	return l.increment, nil
}

// SetIncrement sets the increment of a linear dimension from a quantity
// string, units.Quantity or *units.Quantity. The coordinates take the
// unit of the new increment.
func (d *Dimension) SetIncrement(v interface{}) error {
	l, err := d.linear("increment")
	if err != nil {
		return err
	}
	return l.setIncrement(v)
}

// CoordinatesOffset returns the coordinate at index zero of a linear dimension.
func (d *Dimension) CoordinatesOffset() (units.Quantity, error) {
	l, err := d.linear("coordinates_offset")
	if err != nil {
		return units.Quantity{}, err
	}
	return l.coordinatesOffset, nil
}

// SetCoordinatesOffset sets the coordinates offset of a linear dimension.
func (d *Dimension) SetCoordinatesOffset(v interface{}) error {
	l, err := d.linear("coordinates_offset")
	if err != nil {
		return err
	}
	return l.setCoordinatesOffset(v)
}

// ComplexFFT returns whether the coordinates of a linear dimension are
// ordered as the output of a complex FFT, with the zero index centered.
func (d *Dimension) ComplexFFT() (bool, error) {
	l, err := d.linear("complex_fft")
	if err != nil {
		return false, err
	}
	return l.complexFFT, nil
}

// SetComplexFFT sets whether the zero index of a linear dimension is centered.
func (d *Dimension) SetComplexFFT(v bool) error {
	l, err := d.linear("complex_fft")
	if err != nil {
		return err
	}
	l.complexFFT = v
	return nil
}

// FFTOutputOrder returns whether the coordinates of a linear dimension are
// given in the output order of a discrete Fourier transform.
// See IndexArray.
func (d *Dimension) FFTOutputOrder() (bool, error) {
	l, err := d.linear("fft_output_order")
	if err != nil {
		return false, err
	}
	return l.fftOutputOrder, nil
}

// SetFFTOutputOrder sets the index ordering of a linear dimension.
// It takes precedence over ComplexFFT.
func (d *Dimension) SetFFTOutputOrder(v bool) error {
	l, err := d.linear("fft_output_order")
	if err != nil {
		return err
	}
	l.fftOutputOrder = v
	return nil
}

// OriginOffset returns the origin offset of a linear or monotonic dimension.
func (d *Dimension) OriginOffset() (units.Quantity, error) {
	q, err := d.quantitative("origin_offset")
	if err != nil {
		return units.Quantity{}, err
	}
	return q.phys().originOffset, nil
}

// SetOriginOffset sets the origin offset of a linear or monotonic dimension.
func (d *Dimension) SetOriginOffset(v interface{}) error {
	q, err := d.quantitative("origin_offset")
	if err != nil {
		return err
	}
	o, err := compatibleQuantity("origin_offset", v, q.unit())
	if err != nil {
		return err
	}
	q.phys().originOffset = o
	return nil
}

// Period returns the period of a linear or monotonic dimension.
// It is infinite for non-periodic dimensions.
func (d *Dimension) Period() (units.Quantity, error) {
	q, err := d.quantitative("period")
	if err != nil {
		return units.Quantity{}, err
	}
	return q.phys().period, nil
}

// SetPeriod sets the period of a linear or monotonic dimension.
func (d *Dimension) SetPeriod(v interface{}) error {
	q, err := d.quantitative("period")
	if err != nil {
		return err
	}
	p, err := compatibleQuantity("period", v, q.unit())
	if err != nil {
		return err
	}
	q.phys().period = p
	return nil
}

// QuantityName returns the name of the physical quantity of a linear or
// monotonic dimension, e.g. "length" or "speed".
func (d *Dimension) QuantityName() (string, error) {
	q, err := d.quantitative("quantity_name")
	if err != nil {
		return "", err
	}
	return units.QuantityName(q.unit()), nil
}

// SetQuantityName returns an error. The quantity name is determined by
// the unit of the dimension.
func (d *Dimension) SetQuantityName(string) error {
	if _, err := d.quantitative("quantity_name"); err != nil {
		return err
	}
	return NotImplementedError{Attribute: "quantity_name"}
}

// Reciprocal returns the reciprocal of a linear or monotonic dimension.
// Changes to the returned value are reflected in d.
func (d *Dimension) Reciprocal() (*Reciprocal, error) {
	q, err := d.quantitative("reciprocal")
	if err != nil {
		return nil, err
	}
	return q.phys().reciprocal, nil
}

// To converts the quantities that define a linear or monotonic dimension
// to the given unit, which must have the same dimensionality.
func (d *Dimension) To(unit string) error {
	q, err := d.quantitative("to")
	if err != nil {
		return err
	}
	u, err := units.ParseUnit(unit)
	if err != nil {
		return err
	}
	return q.to(u)
}

// Unit returns the unit of the coordinates of a linear or monotonic dimension.
func (d *Dimension) Unit() (units.Unit, error) {
	q, err := d.quantitative("unit")
	if err != nil {
		return units.Unit{}, err
	}
	return q.unit(), nil
}

// IsQuantitative returns true for linear and monotonic dimensions.
func (d *Dimension) IsQuantitative() bool {
	_, ok := d.sub.(quantitative)
	return ok
}

// AxisLabel returns a label for plotting the dimension, e.g.
// "frequency / (Hz)". The label is used in place of the quantity name
// when it is set.
func (d *Dimension) AxisLabel() string {
	label := d.Label()
	q, ok := d.sub.(quantitative)
	if !ok {
		return label
	}
	if strings.TrimSpace(label) == "" {
		label = units.QuantityName(q.unit())
	}
	u := q.unit()
	if u.IsDimensionless() && u.String() == "" {
		return label
	}
	return fmt.Sprintf("%s / (%s)", label, u)
}

// String returns the type and coordinates of d.
func (d *Dimension) String() string {
	return fmt.Sprintf("%s(%s)", subtypeName(d.Type()), d.Coordinates())
}

// Copy returns a deep copy of d.
func (d *Dimension) Copy() *Dimension {
	return &Dimension{sub: d.sub.copy()}
}

// Equal returns whether v is a *Dimension or Dimension of the same type as
// d whose fields represent the same quantities as d's, regardless of the
// units they are expressed in. Values of other types are never equal to d.
func (d *Dimension) Equal(v interface{}) bool {
	var o *Dimension
	switch t := v.(type) {
	case *Dimension:
		o = t
	case Dimension:
		o = &t
	default:
		return false
	}
	if d == nil || o == nil || d.sub == nil || o.sub == nil {
		return d == o
	}
	return d.sub.equal(o.sub)
}
