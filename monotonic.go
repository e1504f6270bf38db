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

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/csdm/units"
)

// monotonic is a dimension whose coordinates are an explicit, strictly
// increasing or decreasing list of quantities.
type monotonic struct {
	meta
	physical

	// values are the coordinates as given, kept for serialization.
	values []string
	coords units.Array
}

func newMonotonic(p Params) (*monotonic, error) {
	v, ok := p["coordinates"]
	if !ok || v == nil {
		v, ok = p["values"]
	}
	if !ok || v == nil {
		return nil, MissingKeyError{Type: "monotonic", Key: "coordinates"}
	}
	m := new(monotonic)
	if err := m.setValues(v, nil); err != nil {
		return nil, err
	}
	m.physical = newPhysical(m.coords.Unit)
	var err error
	if m.meta, err = metaParams(p); err != nil {
		return nil, err
	}
	if err = setPhysical(&m.physical, p, m.coords.Unit); err != nil {
		return nil, err
	}
	return m, nil
}

// setValues replaces the coordinates with v, which may be a list of
// quantity strings or a units.Array. If want is not nil, the new
// coordinates must have the same dimensionality as want.
func (m *monotonic) setValues(v interface{}, want *units.Unit) error {
	var values []string
	var coords units.Array
	if a, ok := v.(units.Array); ok {
		coords = a.Copy()
		values = a.Strings()
	} else {
		var err error
		values, err = stringList("coordinates", v,
			"A list of coordinates is required",
			"A list of string coordinates are required")
		if err != nil {
			return err
		}
		if coords, err = units.ParseArray(values); err != nil {
			return err
		}
	}
	if coords.Len() == 0 {
		return ValueError{Attribute: "coordinates", Msg: "at least one coordinate is required"}
	}
	if want != nil && !units.Compatible(coords.Unit, *want) {
		return units.DimensionalityError{Unit: coords.Unit, Want: *want}
	}
	if coords.Monotonic() == 0 {
		return ValueError{Attribute: "coordinates",
			Msg: "coordinates must be strictly increasing or decreasing"}
	}
	m.values, m.coords = values, coords
	return nil
}

func (m *monotonic) typ() string { return "monotonic" }
func (m *monotonic) base() *meta { return &m.meta }
func (m *monotonic) count() int { return m.coords.Len() }
func (m *monotonic) unit() units.Unit { return m.coords.Unit }
func (m *monotonic) phys() *physical { return &m.physical }

func (m *monotonic) setCount(n int) error {
	if err := checkTruncate(m.typ(), m.count(), n); err != nil {
		return err
	}
	m.values = m.values[:n:n]
	m.coords.Values = m.coords.Values[:n:n]
	return nil
}

func (m *monotonic) coordinates() Coordinates { return m.coords.Copy() }

func (m *monotonic) absoluteCoordinates() units.Array {
	o, err := m.coords.AddQuantity(m.originOffset)
	if err != nil {
		panic(err)
	}
	return o
}

func (m *monotonic) to(u units.Unit) error {
	c, err := m.coords.To(u)
	if err != nil {
		return err
	}
	if err = m.physical.to(u); err != nil {
		return err
	}
	m.coords, m.values = c, c.Strings()
	return nil
}

func (m *monotonic) dict() Dict {
	d := Dict{Type: m.typ()}
	d.Coordinates = make([]string, len(m.values))
	copy(d.Coordinates, m.values)
	m.meta.fill(&d)
	m.physical.fill(&d, m.unit())
	return d
}

func (m *monotonic) copy() subtype {
	o := &monotonic{
		meta:     m.meta.copy(),
		physical: m.physical.copy(),
		values:   make([]string, len(m.values)),
		coords:   m.coords.Copy(),
	}
	copy(o.values, m.values)
	return o
}

func (m *monotonic) equal(s subtype) bool {
	o, ok := s.(*monotonic)
	if !ok {
		return false
	}
	return m.coords.Equal(o.coords) &&
		m.physical.equal(o.physical) &&
		m.meta.equal(o.meta)
}

// checkTruncate returns an error if n is not a valid new count for a
// dimension of type typ that currently has have coordinates. It logs a
// warning if coordinates would be discarded.
func checkTruncate(typ string, have, n int) error {
	if n < 1 {
		return CountError{Count: n}
	}
	if n > have {
		return ValueError{Attribute: "count", Msg: fmt.Sprintf(
			"Cannot set the count, %d, more than the number of coordinates, %d, "+
				"for monotonic and labeled dimensions", n, have)}
	}
	if n < have {
		Log.WithFields(logrus.Fields{
			"type":  typ,
			"count": have,
			"new":   n,
		}).Warnf("csdm: the number of coordinates, %d, are truncated to %d", have, n)
	}
	return nil
}
