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

// Package hash computes content fingerprints of dimensions.
package hash

import (
	"encoding/gob"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
	"github.com/spatialmodel/csdm"
)

// Hash returns a hash key for the specified object.
func Hash(object interface{}) string {
	h := fnv.New128a()

	e := gob.NewEncoder(h)
	if err := e.Encode(object); err == nil {
		bKey := h.Sum([]byte{})
		return fmt.Sprintf("%x", bKey[0:h.Size()])
	}
	// If there is an error (e.g., the object holds interface
	// values that gob doesn't know about) use spew instead of gob.
	h.Reset()
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	bKey := h.Sum([]byte{})
	return fmt.Sprintf("%x", bKey[0:h.Size()])
}

// Dimension returns a fingerprint of d. Quantitative dimensions are
// converted to coherent SI units first, so dimensions that differ only in
// the units they are expressed in usually share a fingerprint. d is not
// modified.
func Dimension(d *csdm.Dimension) (string, error) {
	c := d.Copy()
	if u, err := c.Unit(); err == nil {
		if err := c.To(u.SI().String()); err != nil {
			return "", fmt.Errorf("hash: converting to SI units: %v", err)
		}
	}
	return Hash(c.ToDict()), nil
}
