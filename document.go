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
	"encoding/json"
	"io"
)

// Version is the CSDM format version written by NewDocument.
const Version = "1.0"

// Document is a CSDM file holding a set of dimensions. Dependent variables
// are kept as decoded but are otherwise not interpreted.
type Document struct {
	CSDM Body `json:"csdm"`
}

// Body is the contents of a Document.
type Body struct {
	Version            string        `json:"version"`
	Dimensions         []*Dimension  `json:"dimensions"`
	DependentVariables []interface{} `json:"dependent_variables"`
}

// NewDocument returns a document holding the given dimensions and no
// dependent variables.
func NewDocument(dims ...*Dimension) *Document {
	if dims == nil {
		dims = []*Dimension{}
	}
	return &Document{CSDM: Body{
		Version:            Version,
		Dimensions:         dims,
		DependentVariables: []interface{}{},
	}}
}

// ReadDocument reads a JSON-formatted document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := NewDocument()
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DataStructure returns doc as indented JSON.
func (doc *Document) DataStructure() (string, error) {
	b, err := encodeJSON(doc, true)
	return string(b), err
}
