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

package hash

import (
	"testing"

	"github.com/spatialmodel/csdm"
)

func TestHash(t *testing.T) {
	a := Hash(struct{ A, B int }{1, 2})
	if a != Hash(struct{ A, B int }{1, 2}) {
		t.Error("hash is not deterministic")
	}
	if a == Hash(struct{ A, B int }{2, 1}) {
		t.Error("different objects have the same hash")
	}
	// Maps of interfaces can't be gob encoded without registration.
	m := map[string]interface{}{"x": map[string]interface{}{"y": 1}}
	if Hash(m) != Hash(map[string]interface{}{"x": map[string]interface{}{"y": 1}}) {
		t.Error("spew hash is not deterministic")
	}
}

func TestDimension(t *testing.T) {
	mustNew := func(p csdm.Params) *csdm.Dimension {
		d, err := csdm.New(p)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	for _, test := range []struct {
		name  string
		a, b  *csdm.Dimension
		equal bool
	}{
		{
			name:  "unit basis",
			a:     mustNew(csdm.Params{"type": "linear", "increment": "1 km", "count": 4, "origin_offset": "5 m"}),
			b:     mustNew(csdm.Params{"type": "linear", "increment": "1000 m", "count": 4, "origin_offset": "500 cm"}),
			equal: true,
		},
		{
			name:  "count",
			a:     mustNew(csdm.Params{"type": "linear", "increment": "1 km", "count": 4}),
			b:     mustNew(csdm.Params{"type": "linear", "increment": "1 km", "count": 5}),
			equal: false,
		},
		{
			name:  "labels",
			a:     mustNew(csdm.Params{"type": "labeled", "labels": []string{"a", "b"}}),
			b:     mustNew(csdm.Params{"type": "labeled", "labels": []string{"a", "b"}}),
			equal: true,
		},
		{
			name: "application",
			a: mustNew(csdm.Params{"type": "labeled", "labels": []string{"a", "b"},
				"application": map[string]interface{}{"k": "v"}}),
			b:     mustNew(csdm.Params{"type": "labeled", "labels": []string{"a", "b"}}),
			equal: false,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			ha, err := Dimension(test.a)
			if err != nil {
				t.Fatal(err)
			}
			hb, err := Dimension(test.b)
			if err != nil {
				t.Fatal(err)
			}
			if (ha == hb) != test.equal {
				t.Errorf("want equal=%v, have %s and %s", test.equal, ha, hb)
			}
		})
	}

	d := mustNew(csdm.Params{"type": "monotonic", "coordinates": []string{"1 km", "2 km"}})
	if _, err := Dimension(d); err != nil {
		t.Fatal(err)
	}
	if have := d.ToDict().Coordinates[0]; have != "1 km" {
		t.Errorf("fingerprinting modified the dimension: %s", have)
	}
}

func TestDimensionDeterministic(t *testing.T) {
	for _, inc := range []string{"5 G", "1 m/kg", "2 T^-1", "10 N"} {
		d, err := csdm.New(csdm.Params{"type": "linear", "increment": inc, "count": 10})
		if err != nil {
			t.Fatal(err)
		}
		want, err := Dimension(d)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 100; i++ {
			have, err := Dimension(d)
			if err != nil {
				t.Fatal(err)
			}
			if have != want {
				t.Fatalf("%s: fingerprint changed from %s to %s", inc, want, have)
			}
		}
	}
}
