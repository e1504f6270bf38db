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
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/csdm"
)

func TestReadDimensions(t *testing.T) {
	j, err := ReadDimensions("testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	tm, err := ReadDimensions("testdata/document.toml")
	if err != nil {
		t.Fatal(err)
	}
	if len(j) != 3 || len(tm) != 3 {
		t.Fatalf("want 3 dimensions, have %d and %d", len(j), len(tm))
	}
	for i, want := range []string{"linear", "monotonic", "labeled"} {
		if j[i].Type() != want || tm[i].Type() != want {
			t.Errorf("dimension %d: want %s, have %s and %s", i, want, j[i].Type(), tm[i].Type())
		}
		if !j[i].Equal(tm[i]) {
			t.Errorf("dimension %d differs between the JSON and TOML files", i)
		}
	}
	r, err := tm[1].Reciprocal()
	if err != nil {
		t.Fatal(err)
	}
	if r.Description() != "k" {
		t.Errorf("reciprocal description: have %q", r.Description())
	}

	single, err := ReadDimensions("testdata/linear.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(single) != 1 || single[0].Count() != 12 {
		t.Errorf("have %v", single)
	}
}

func TestReadDimensionsErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "csdm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	for i, contents := range []string{
		`{"csdm": {"version": "1.0"}}`,
		`{"csdm": {"dimensions": {"type": "linear"}}}`,
		`{"csdm": {"dimensions": ["linear"]}}`,
		`{"csdm": {"dimensions": [{"type": "linear", "count": 2}]}}`,
		`{"type": "monotonic", "coordinates": ["1 m", "1 s"]}`,
		`{"type": "labeled", "labels": [1, 2]}`,
		`not json`,
	} {
		f := filepath.Join(dir, fmt.Sprintf("bad%d.json", i))
		if err := ioutil.WriteFile(f, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ReadDimensions(f); err == nil {
			t.Errorf("%s: want error", contents)
		}
	}
	if _, err := ReadDimensions(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestWriteDimensionsTOML(t *testing.T) {
	dims, err := ReadDimensions("testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeDimensions(&buf, formatTOML, dims); err != nil {
		t.Fatal(err)
	}
	dir, err := ioutil.TempDir("", "csdm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	f := filepath.Join(dir, "out.toml")
	if err := ioutil.WriteFile(f, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	back, err := ReadDimensions(f)
	if err != nil {
		t.Fatalf("%v:\n%s", err, buf.String())
	}
	if len(back) != len(dims) {
		t.Fatalf("want %d dimensions, have %d", len(dims), len(back))
	}
	for i := range dims {
		if !dims[i].Equal(back[i]) {
			t.Errorf("dimension %d changed:\n%s", i, buf.String())
		}
	}
}

func TestSelectDimensions(t *testing.T) {
	d, err := csdm.New(csdm.Params{"type": "labeled", "labels": []string{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	dims := []*csdm.Dimension{d, d.Copy()}
	if s, _ := selectDimensions(dims, -1); len(s) != 2 {
		t.Errorf("want all dimensions, have %d", len(s))
	}
	if s, _ := selectDimensions(dims, 1); len(s) != 1 || s[0] != dims[1] {
		t.Errorf("want the second dimension, have %v", s)
	}
	if _, err := selectDimensions(dims, 2); err == nil {
		t.Error("want out of range error")
	}
}
