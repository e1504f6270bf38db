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
	"github.com/spf13/cast"
)

// Params holds the keys of a dimension object, as decoded from JSON or TOML
// or built by hand. Recognized keys are "type", "description", "label",
// "application", "count", "increment", "coordinates_offset",
// "origin_offset", "complex_fft", "fft_output_order", "period",
// "coordinates" (or "values"), "labels" and "reciprocal".
// Other keys are ignored.
type Params map[string]interface{}

func stringParam(p Params, key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", TypeError{Attribute: key, Want: "string", Value: v}
	}
	return s, nil
}

func boolParam(p Params, key string) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, TypeError{Attribute: key, Want: "bool", Value: v}
	}
	return b, nil
}

func applicationParam(p Params) (map[string]interface{}, error) {
	v, ok := p["application"]
	if !ok || v == nil {
		return nil, nil
	}
	if _, isString := v.(string); isString {
		return nil, TypeError{Attribute: "application", Want: "map", Value: v}
	}
	a, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, TypeError{Attribute: "application", Want: "map", Value: v}
	}
	return copyApplication(a), nil
}

func metaParams(p Params) (meta, error) {
	var m meta
	var err error
	if m.description, err = stringParam(p, "description"); err != nil {
		return m, err
	}
	if m.label, err = stringParam(p, "label"); err != nil {
		return m, err
	}
	m.application, err = applicationParam(p)
	return m, err
}

// countParam converts v to a count. Integral floating point values are
// accepted because JSON numbers decode as float64.
func countParam(v interface{}) (int, error) {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) {
			return 0, CountError{Count: v}
		}
		n = int(t)
	default:
		return 0, TypeError{Attribute: "count", Want: "int", Value: v}
	}
	if n < 1 {
		return 0, CountError{Count: v}
	}
	return n, nil
}

// quantity converts a quantity string, units.Quantity or *units.Quantity
// into a units.Quantity.
func quantity(attr string, v interface{}) (units.Quantity, error) {
	switch t := v.(type) {
	case string:
		return units.ParseQuantity(t)
	case units.Quantity:
		return t, nil
	case *units.Quantity:
		if t != nil {
			return *t, nil
		}
	}
	return units.Quantity{}, TypeError{Attribute: attr, Want: "string", Value: v}
}

// compatibleQuantity is like quantity but also requires the result to
// have the same dimensionality as unit u.
func compatibleQuantity(attr string, v interface{}, u units.Unit) (units.Quantity, error) {
	q, err := quantity(attr, v)
	if err != nil {
		return q, err
	}
	if !units.Compatible(q.Unit, u) {
		return units.Quantity{}, units.DimensionalityError{Unit: q.Unit, Want: u}
	}
	return q, nil
}

// stringList converts v into a list of strings. attr is used in the
// returned errors.
func stringList(attr string, v interface{}, notList, notStrings string) ([]string, error) {
	switch t := v.(type) {
	case []string:
		o := make([]string, len(t))
		copy(o, t)
		return o, nil
	case Labels:
		return t.Strings(), nil
	case []interface{}:
		o := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, ValueError{Attribute: attr, Msg: notStrings}
			}
			o[i] = s
		}
		return o, nil
	}
	return nil, ValueError{Attribute: attr, Msg: notList}
}
