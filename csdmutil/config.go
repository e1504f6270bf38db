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

package csdmutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/csdm"
	"github.com/spf13/cast"
)

type format int

const (
	formatJSON format = iota
	formatTOML
)

// formatOf returns the file format implied by the extension of path.
func formatOf(path string) format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return formatTOML
	}
	return formatJSON
}

// ReadDimensions reads the dimensions in the JSON or TOML file at path,
// after expanding any environment variables in path. The file may hold a
// single dimension object or a CSDM document whose "csdm" table holds a
// "dimensions" list. Paths beginning with http://, https://, gs://, s3://
// or file:// are downloaded first.
func ReadDimensions(path string) ([]*csdm.Dimension, error) {
	path = os.ExpandEnv(path)
	b, err := readAll(context.Background(), path)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	switch formatOf(path) {
	case formatTOML:
		_, err = toml.Decode(string(b), &m)
	default:
		err = json.Unmarshal(b, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("csdm: decoding %s: %v", path, err)
	}
	params, err := dimensionParams(m)
	if err != nil {
		return nil, fmt.Errorf("csdm: %s: %v", path, err)
	}
	dims := make([]*csdm.Dimension, len(params))
	for i, p := range params {
		if dims[i], err = csdm.New(p); err != nil {
			return nil, fmt.Errorf("csdm: %s: dimension %d: %v", path, i, err)
		}
	}
	return dims, nil
}

// dimensionParams returns the dimension objects in a decoded file.
func dimensionParams(m map[string]interface{}) ([]csdm.Params, error) {
	doc, ok := m["csdm"]
	if !ok {
		return []csdm.Params{csdm.Params(m)}, nil
	}
	body, err := cast.ToStringMapE(doc)
	if err != nil {
		return nil, fmt.Errorf("the csdm key must hold a table: %v", err)
	}
	var list []interface{}
	switch d := body["dimensions"].(type) {
	case nil:
		return nil, fmt.Errorf("the csdm table has no dimensions")
	case []interface{}:
		list = d
	case []map[string]interface{}:
		for _, v := range d {
			list = append(list, v)
		}
	default:
		return nil, fmt.Errorf("dimensions must be a list, not %T", d)
	}
	o := make([]csdm.Params, len(list))
	for i, v := range list {
		p, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, fmt.Errorf("dimension %d is not a table: %v", i, err)
		}
		o[i] = csdm.Params(p)
	}
	return o, nil
}

// selectDimensions returns the dimension at index, or all
// dimensions if index is negative.
func selectDimensions(dims []*csdm.Dimension, index int) ([]*csdm.Dimension, error) {
	if index < 0 {
		return dims, nil
	}
	if index >= len(dims) {
		return nil, fmt.Errorf("csdm: index %d is out of range; there are %d dimensions", index, len(dims))
	}
	return dims[index : index+1], nil
}

// writeDimensions writes dims to w as a CSDM document.
func writeDimensions(w io.Writer, f format, dims []*csdm.Dimension) error {
	if f == formatJSON {
		s, err := csdm.NewDocument(dims...).DataStructure()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	list := make([]map[string]interface{}, len(dims))
	for i, d := range dims {
		b, err := d.MarshalJSON()
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &list[i]); err != nil {
			return err
		}
	}
	doc := map[string]interface{}{
		"csdm": map[string]interface{}{
			"version":    csdm.Version,
			"dimensions": list,
		},
	}
	return toml.NewEncoder(w).Encode(doc)
}
