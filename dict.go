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
	"bytes"
	"encoding/json"
)

// Dict is the serialized form of a Dimension. Fields are listed in the
// order they are written, and fields holding default values are omitted.
type Dict struct {
	Type              string                 `json:"type"`
	Description       string                 `json:"description,omitempty"`
	Count             int                    `json:"count,omitempty"`
	Increment         string                 `json:"increment,omitempty"`
	Coordinates       []string               `json:"coordinates,omitempty"`
	Labels            []string               `json:"labels,omitempty"`
	CoordinatesOffset string                 `json:"coordinates_offset,omitempty"`
	OriginOffset      string                 `json:"origin_offset,omitempty"`
	QuantityName      string                 `json:"quantity_name,omitempty"`
	Period            string                 `json:"period,omitempty"`
	Label             string                 `json:"label,omitempty"`
	Application       map[string]interface{} `json:"application,omitempty"`
	ComplexFFT        bool                   `json:"complex_fft,omitempty"`
	FFTOutputOrder    bool                   `json:"fft_output_order,omitempty"`
	Reciprocal        *ReciprocalDict        `json:"reciprocal,omitempty"`
}

// ReciprocalDict is the serialized form of a Reciprocal.
type ReciprocalDict struct {
	Increment         string                 `json:"increment,omitempty"`
	CoordinatesOffset string                 `json:"coordinates_offset,omitempty"`
	OriginOffset      string                 `json:"origin_offset,omitempty"`
	QuantityName      string                 `json:"quantity_name,omitempty"`
	Period            string                 `json:"period,omitempty"`
	Label             string                 `json:"label,omitempty"`
	Description       string                 `json:"description,omitempty"`
	Application       map[string]interface{} `json:"application,omitempty"`
}

func (r *ReciprocalDict) empty() bool {
	return r.Increment == "" && r.CoordinatesOffset == "" && r.OriginOffset == "" &&
		r.QuantityName == "" && r.Period == "" && r.Label == "" &&
		r.Description == "" && len(r.Application) == 0
}

func (r ReciprocalDict) params() Params {
	p := make(Params)
	setString(p, "increment", r.Increment)
	setString(p, "coordinates_offset", r.CoordinatesOffset)
	setString(p, "origin_offset", r.OriginOffset)
	setString(p, "period", r.Period)
	setString(p, "label", r.Label)
	setString(p, "description", r.Description)
	if r.Application != nil {
		p["application"] = r.Application
	}
	return p
}

func setString(p Params, key, v string) {
	if v != "" {
		p[key] = v
	}
}

// Params returns the construction parameters corresponding to d.
// The quantity names are not included because they are derived
// from the units.
func (d Dict) Params() Params {
	p := Params{"type": d.Type}
	setString(p, "description", d.Description)
	if d.Count != 0 {
		p["count"] = d.Count
	}
	setString(p, "increment", d.Increment)
	if d.Coordinates != nil {
		p["coordinates"] = d.Coordinates
	}
	if d.Labels != nil {
		p["labels"] = d.Labels
	}
	setString(p, "coordinates_offset", d.CoordinatesOffset)
	setString(p, "origin_offset", d.OriginOffset)
	setString(p, "period", d.Period)
	setString(p, "label", d.Label)
	if d.Application != nil {
		p["application"] = d.Application
	}
	if d.ComplexFFT {
		p["complex_fft"] = true
	}
	if d.FFTOutputOrder {
		p["fft_output_order"] = true
	}
	if d.Reciprocal != nil {
		p["reciprocal"] = d.Reciprocal.params()
	}
	return p
}

// FromDict creates a dimension from its serialized form.
func FromDict(d Dict) (*Dimension, error) {
	return New(d.Params())
}

// ToDict returns the serialized form of d.
func (d *Dimension) ToDict() Dict { return d.sub.dict() }

// MarshalJSON implements json.Marshaler.
func (d *Dimension) MarshalJSON() ([]byte, error) {
	return encodeJSON(d.ToDict(), false)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dimension) UnmarshalJSON(b []byte) error {
	var p map[string]interface{}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	n, err := New(Params(p))
	if err != nil {
		return err
	}
	*d = *n
	return nil
}

// DataStructure returns d as indented JSON.
func (d *Dimension) DataStructure() (string, error) {
	b, err := encodeJSON(d.ToDict(), true)
	return string(b), err
}

// encodeJSON encodes v without escaping HTML characters and without
// a trailing newline.
func encodeJSON(v interface{}, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	e := json.NewEncoder(&buf)
	e.SetEscapeHTML(false)
	if indent {
		e.SetIndent("", "  ")
	}
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
