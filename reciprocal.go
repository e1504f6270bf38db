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

import "github.com/spatialmodel/csdm/units"

// Reciprocal describes the Fourier-conjugate counterpart of a linear or
// monotonic dimension. Its quantities must have the inverse
// dimensionality of the parent dimension's coordinates.
// It stores metadata only; no coordinates are derived from it.
type Reciprocal struct {
	unit units.Unit

	increment         *units.Quantity
	coordinatesOffset units.Quantity
	originOffset      units.Quantity
	period            units.Quantity

	label       string
	description string
	application map[string]interface{}
}

func newReciprocal(u units.Unit) *Reciprocal {
	return &Reciprocal{
		unit:              u,
		coordinatesOffset: units.New(0, u),
		originOffset:      units.New(0, u),
		period:            units.New(inf, u),
	}
}

// Increment returns the reciprocal increment, if one has been set.
func (r *Reciprocal) Increment() (units.Quantity, bool) {
	if r.increment == nil {
		return units.Quantity{}, false
	}
	return *r.increment, true
}

// SetIncrement sets the reciprocal increment from a quantity string,
// units.Quantity or *units.Quantity.
func (r *Reciprocal) SetIncrement(v interface{}) error {
	q, err := compatibleQuantity("increment", v, r.unit)
	if err != nil {
		return err
	}
	r.increment = &q
	return nil
}

// CoordinatesOffset returns the reciprocal coordinates offset.
func (r *Reciprocal) CoordinatesOffset() units.Quantity { return r.coordinatesOffset }

// SetCoordinatesOffset sets the reciprocal coordinates offset.
func (r *Reciprocal) SetCoordinatesOffset(v interface{}) error {
	return r.set(&r.coordinatesOffset, "coordinates_offset", v)
}

// OriginOffset returns the reciprocal origin offset.
func (r *Reciprocal) OriginOffset() units.Quantity { return r.originOffset }

// SetOriginOffset sets the reciprocal origin offset.
func (r *Reciprocal) SetOriginOffset(v interface{}) error {
	return r.set(&r.originOffset, "origin_offset", v)
}

// Period returns the reciprocal period. It is infinite when the
// reciprocal dimension is not periodic.
func (r *Reciprocal) Period() units.Quantity { return r.period }

// SetPeriod sets the reciprocal period.
func (r *Reciprocal) SetPeriod(v interface{}) error {
	return r.set(&r.period, "period", v)
}

func (r *Reciprocal) set(dst *units.Quantity, attr string, v interface{}) error {
	q, err := compatibleQuantity(attr, v, r.unit)
	if err != nil {
		return err
	}
	*dst = q
	return nil
}

// QuantityName returns the name of the physical quantity of the
// reciprocal dimension, e.g. "wavenumber" for a dimension in meters.
func (r *Reciprocal) QuantityName() string { return units.QuantityName(r.unit) }

// Label returns the reciprocal label.
func (r *Reciprocal) Label() string { return r.label }

// SetLabel sets the reciprocal label.
func (r *Reciprocal) SetLabel(l string) { r.label = l }

// Description returns the reciprocal description.
func (r *Reciprocal) Description() string { return r.description }

// SetDescription sets the reciprocal description.
func (r *Reciprocal) SetDescription(d string) { r.description = d }

// Application returns the reciprocal application metadata.
func (r *Reciprocal) Application() map[string]interface{} { return r.application }

// SetApplication sets the reciprocal application metadata.
func (r *Reciprocal) SetApplication(a map[string]interface{}) { r.application = a }

// merge sets the fields present in p. Unrecognized keys are ignored.
func (r *Reciprocal) merge(p Params) error {
	for _, f := range []struct {
		key string
		set func(interface{}) error
	}{
		{"increment", r.SetIncrement},
		{"coordinates_offset", r.SetCoordinatesOffset},
		{"origin_offset", r.SetOriginOffset},
		{"period", r.SetPeriod},
	} {
		if v, ok := p[f.key]; ok && v != nil {
			if err := f.set(v); err != nil {
				return err
			}
		}
	}
	var err error
	if r.label, err = stringParam(p, "label"); err != nil {
		return err
	}
	if r.description, err = stringParam(p, "description"); err != nil {
		return err
	}
	r.application, err = applicationParam(p)
	return err
}

func (r *Reciprocal) copy() *Reciprocal {
	o := *r
	if r.increment != nil {
		inc := *r.increment
		o.increment = &inc
	}
	o.application = copyApplication(r.application)
	return &o
}

func (r *Reciprocal) equal(o *Reciprocal) bool {
	if (r.increment == nil) != (o.increment == nil) {
		return false
	}
	if r.increment != nil && !r.increment.Equal(*o.increment) {
		return false
	}
	return r.coordinatesOffset.Equal(o.coordinatesOffset) &&
		r.originOffset.Equal(o.originOffset) &&
		r.period.Equal(o.period) &&
		meta{r.description, r.label, r.application}.equal(
			meta{o.description, o.label, o.application})
}

// dict returns the non-default fields of r, or nil if all are default.
func (r *Reciprocal) dict() *ReciprocalDict {
	d := new(ReciprocalDict)
	if r.increment != nil {
		d.Increment = r.increment.String()
	}
	if !r.coordinatesOffset.IsZero() {
		d.CoordinatesOffset = r.coordinatesOffset.String()
	}
	if !r.originOffset.IsZero() {
		d.OriginOffset = r.originOffset.String()
	}
	if n := r.QuantityName(); n != unknownQuantity {
		d.QuantityName = n
	}
	if !r.period.IsInf() {
		d.Period = r.period.String()
	}
	d.Label = r.label
	d.Description = r.description
	d.Application = copyApplication(r.application)
	if d.empty() {
		return nil
	}
	return d
}
