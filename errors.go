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

import "fmt"

// MissingKeyError is returned when a key required by the
// dimension type is absent from the construction parameters.
type MissingKeyError struct {
	Type, Key string
}

func (e MissingKeyError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("csdm: missing a required '%s' key from the dimension object", e.Key)
	}
	return fmt.Sprintf("csdm: '%s' key is missing from the %s dimension", e.Key, e.Type)
}

// InvalidTypeError is returned when the dimension type is not one of
// "linear", "monotonic" or "labeled".
type InvalidTypeError struct {
	Type interface{}
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("csdm: '%v' is an invalid value for the dimension type; "+
		"the allowed values are 'monotonic', 'linear' and 'labeled'", e.Type)
}

// CountError is returned when the number of points along
// a dimension is not a positive integer.
type CountError struct {
	Count interface{}
}

func (e CountError) Error() string {
	return fmt.Sprintf("csdm: count must be a positive integer, got %v (%T)", e.Count, e.Count)
}

// TypeError is returned when a value of the wrong type
// is assigned to an attribute.
type TypeError struct {
	Attribute string
	Want      string
	Value     interface{}
}

func (e TypeError) Error() string {
	return fmt.Sprintf("csdm: Expecting an instance of type `%s` for %s, got `%T`", e.Want, e.Attribute, e.Value)
}

// ValueError is returned when a value of the right type is not
// acceptable for an attribute.
type ValueError struct {
	Attribute string
	Msg       string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("csdm: %s: %s", e.Attribute, e.Msg)
}

// NotApplicableError is returned when an attribute is accessed on a
// dimension type that does not have it.
type NotApplicableError struct {
	Type, Attribute string
}

func (e NotApplicableError) Error() string {
	return fmt.Sprintf("csdm: `%s` has no attribute `%s`", subtypeName(e.Type), e.Attribute)
}

// ImmutableError is returned when setting an attribute that is
// derived from other attributes or fixed at construction.
type ImmutableError struct {
	Type, Attribute string
}

func (e ImmutableError) Error() string {
	if e.Attribute == "coordinates" {
		return fmt.Sprintf("csdm: The attribute cannot be modifed for Dimension objects with subtype `%s`. "+
			"Use `count`, `increment` or `coordinates_offset` attributes to update "+
			"the coordinate along a linear dimension", e.Type)
	}
	return fmt.Sprintf("csdm: can't set attribute `%s`", e.Attribute)
}

// NotImplementedError is returned when setting an attribute
// that is not independently settable, such as quantity_name.
type NotImplementedError struct {
	Attribute string
}

func (e NotImplementedError) Error() string {
	return fmt.Sprintf("csdm: This attribute is not yet implemented: %s", e.Attribute)
}
