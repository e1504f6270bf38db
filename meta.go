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
	"fmt"
	"reflect"

	"github.com/spatialmodel/csdm/units"
	"github.com/spf13/cast"
)

// Coordinates are the coordinates along a dimension: a units.Array for
// quantitative dimensions or Labels for labeled dimensions.
type Coordinates interface {
	Len() int
	Strings() []string
	String() string
}

// Labels are the coordinates of a labeled dimension.
type Labels []string

// Len returns the number of labels.
func (l Labels) Len() int { return len(l) }

// Strings returns a copy of the labels.
func (l Labels) Strings() []string {
	o := make([]string, len(l))
	copy(o, l)
	return o
}

func (l Labels) String() string { return fmt.Sprint([]string(l)) }

// meta holds the descriptive fields that all dimension types share.
type meta struct {
	description string
	label       string
	application map[string]interface{}
}

func (m meta) copy() meta {
	m.application = copyApplication(m.application)
	return m
}

func (m meta) equal(o meta) bool {
	if m.description != o.description || m.label != o.label {
		return false
	}
	if len(m.application) == 0 && len(o.application) == 0 {
		return true
	}
	return reflect.DeepEqual(m.application, o.application)
}

func (m meta) fill(d *Dict) {
	d.Description = m.description
	d.Label = m.label
	d.Application = copyApplication(m.application)
}

// copyApplication returns a deep copy of application metadata.
func copyApplication(a map[string]interface{}) map[string]interface{} {
	if a == nil {
		return nil
	}
	o := make(map[string]interface{}, len(a))
	for k, v := range a {
		o[k] = copyValue(v)
	}
	return o
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return copyApplication(t)
	case []interface{}:
		o := make([]interface{}, len(t))
		for i, e := range t {
			o[i] = copyValue(e)
		}
		return o
	case []string:
		o := make([]string, len(t))
		copy(o, t)
		return o
	default:
		return v
	}
}

// physical holds the fields shared by linear and monotonic dimensions.
type physical struct {
	originOffset units.Quantity
	period       units.Quantity
	reciprocal   *Reciprocal
}

// newPhysical returns the default offsets and period for coordinates
// in unit u.
func newPhysical(u units.Unit) physical {
	return physical{
		originOffset: units.New(0, u),
		period:       units.New(inf, u),
		reciprocal:   newReciprocal(u.Inverse()),
	}
}

func (p physical) copy() physical {
	p.reciprocal = p.reciprocal.copy()
	return p
}

func (p physical) equal(o physical) bool {
	return p.originOffset.Equal(o.originOffset) &&
		p.period.Equal(o.period) &&
		p.reciprocal.equal(o.reciprocal)
}

func (p *physical) to(u units.Unit) error {
	oo, err := p.originOffset.To(u)
	if err != nil {
		return err
	}
	per, err := p.period.To(u)
	if err != nil {
		return err
	}
	p.originOffset, p.period = oo, per
	return nil
}

func (p physical) fill(d *Dict, u units.Unit) {
	if !p.originOffset.IsZero() {
		d.OriginOffset = p.originOffset.String()
	}
	if n := units.QuantityName(u); n != unknownQuantity {
		d.QuantityName = n
	}
	if !p.period.IsInf() {
		d.Period = p.period.String()
	}
	d.Reciprocal = p.reciprocal.dict()
}

// setPhysical sets the origin offset, period and reciprocal fields
// present in p. u is the unit of the dimension's coordinates.
func setPhysical(ph *physical, p Params, u units.Unit) error {
	var err error
	if v, ok := p["origin_offset"]; ok && v != nil {
		if ph.originOffset, err = compatibleQuantity("origin_offset", v, u); err != nil {
			return err
		}
	}
	if v, ok := p["period"]; ok && v != nil {
		if ph.period, err = compatibleQuantity("period", v, u); err != nil {
			return err
		}
	}
	v, ok := p["reciprocal"]
	if !ok || v == nil {
		return nil
	}
	if r, ok := v.(Params); ok {
		return ph.reciprocal.merge(r)
	}
	rp, err := cast.ToStringMapE(v)
	if err != nil {
		return TypeError{Attribute: "reciprocal", Want: "map", Value: v}
	}
	return ph.reciprocal.merge(Params(rp))
}
