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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// run executes the root command with the given arguments after setting the
// command-specific configuration variables to their defaults and then to
// the values in set. It returns the command output.
func run(t *testing.T, set map[string]interface{}, args ...string) (string, error) {
	for _, o := range options {
		if o.name != "config" && o.name != "loglevel" {
			Cfg.Set(o.name, o.defaultVal)
		}
	}
	Cfg.Set("config", "")
	for k, v := range set {
		Cfg.Set(k, v)
	}
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	Root.SetArgs(args)
	err := Root.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	if err != nil {
		t.Fatal(err)
	}
	if want := "csdm v" + Version + " (CSDM format v1.0)\n"; out != want {
		t.Errorf("want %q, have %q", want, out)
	}
}

func TestConfigFile(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	if _, err := run(t, map[string]interface{}{"config": "testdata/config.toml"}, "version"); err != nil {
		t.Fatal(err)
	}
	if logrus.GetLevel() != logrus.WarnLevel {
		t.Errorf("want log level warning, have %v", logrus.GetLevel())
	}
	_, err := run(t, map[string]interface{}{"config": "testdata/missing.toml"}, "version")
	if err == nil || !strings.Contains(err.Error(), "problem reading configuration file") {
		t.Errorf("have error %v", err)
	}
	_, err = run(t, map[string]interface{}{"loglevel": "loud"}, "version")
	if err == nil {
		t.Error("invalid log level should be an error")
	}
	Cfg.Set("loglevel", "info")
}

func TestShow(t *testing.T) {
	out, err := run(t, nil, "show", "testdata/linear.json")
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "csdm": {
    "version": "1.0",
    "dimensions": [
      {
        "type": "linear",
        "count": 12,
        "increment": "20.0 m * s^-1",
        "coordinates_offset": "5.0 m * s^-1",
        "origin_offset": "1.0 km * s^-1",
        "quantity_name": "speed",
        "application": {
          "my_application": {}
        },
        "complex_fft": true,
        "reciprocal": {
          "description": "blah blah"
        }
      }
    ],
    "dependent_variables": []
  }
}
`
	if out != want {
		t.Errorf("want\n%s\nhave\n%s", want, out)
	}

	out, err = run(t, map[string]interface{}{"index": 2}, "show", "testdata/document.toml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"labels": [`) || strings.Contains(out, `"linear"`) {
		t.Errorf("index 2 should select only the labeled dimension:\n%s", out)
	}

	if _, err = run(t, map[string]interface{}{"index": 3}, "show", "testdata/document.toml"); err == nil {
		t.Error("out of range index should be an error")
	}
}

func TestCoords(t *testing.T) {
	for _, test := range []struct {
		name string
		set  map[string]interface{}
		want string
	}{
		{
			name: "linear",
			set:  map[string]interface{}{"index": 0},
			want: "velocity / (m * s^-1)\n5.0 m * s^-1\n15.0 m * s^-1\n25.0 m * s^-1\n35.0 m * s^-1\n",
		},
		{
			name: "absolute",
			set:  map[string]interface{}{"index": 0, "absolute": true},
			want: "velocity / (m * s^-1)\n1005.0 m * s^-1\n1015.0 m * s^-1\n1025.0 m * s^-1\n1035.0 m * s^-1\n",
		},
		{
			name: "monotonic",
			set:  map[string]interface{}{"index": 1},
			want: "length / (m)\n1.0 m\n100.0 m\n1000.0 m\n",
		},
		{
			name: "labeled",
			set:  map[string]interface{}{"index": 2},
			want: "\na\nb\nc\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.set, "coords", "testdata/document.json")
			if err != nil {
				t.Fatal(err)
			}
			if out != test.want {
				t.Errorf("want %q, have %q", test.want, out)
			}
		})
	}
	_, err := run(t, map[string]interface{}{"index": 2, "absolute": true}, "coords", "testdata/document.json")
	if err == nil {
		t.Error("absolute coordinates of a labeled dimension should be an error")
	}
}

func TestConvert(t *testing.T) {
	dir, err := ioutil.TempDir("", "csdm")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	out, err := run(t, map[string]interface{}{"unit": "km/s", "index": 0}, "convert", "testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"increment": "0.01 km * s^-1"`) {
		t.Errorf("converted increment missing:\n%s", out)
	}

	orig, err := ReadDimensions("testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"converted.toml", "converted.json"} {
		output := filepath.Join(dir, name)
		if _, err := run(t, map[string]interface{}{"unit": "km", "index": 1, "output": output},
			"convert", "testdata/document.json"); err != nil {
			t.Fatal(err)
		}
		dims, err := ReadDimensions(output)
		if err != nil {
			t.Fatal(err)
		}
		if len(dims) != 1 {
			t.Fatalf("%s: want 1 dimension, have %d", name, len(dims))
		}
		if !dims[0].Equal(orig[1]) {
			t.Errorf("%s: converted dimension is not equal to the original", name)
		}
		if u, _ := dims[0].Unit(); u.String() != "km" {
			t.Errorf("%s: want unit km, have %s", name, u)
		}
	}

	if _, err := run(t, map[string]interface{}{"unit": "s"}, "convert", "testdata/document.json"); err == nil {
		t.Error("converting to an incompatible unit should be an error")
	}
	if _, err := run(t, nil, "convert", "testdata/document.json"); err == nil {
		t.Error("missing unit should be an error")
	}
}

func TestFingerprint(t *testing.T) {
	a, err := run(t, nil, "fingerprint", "testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	again, err := run(t, nil, "fingerprint", "testdata/document.json")
	if err != nil {
		t.Fatal(err)
	}
	if a != again {
		t.Errorf("fingerprints are not deterministic:\n%s\n%s", a, again)
	}
	lines := strings.Split(strings.TrimSpace(a), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, have %d:\n%s", len(lines), a)
	}
	if !strings.HasPrefix(lines[2], "2\tlabeled\t") {
		t.Errorf("have line %q", lines[2])
	}
	b, err := run(t, map[string]interface{}{"index": 2}, "fingerprint", "testdata/document.toml")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Fields(b)[2] != strings.Fields(lines[2])[2] {
		t.Errorf("labeled fingerprints differ: %q, %q", b, lines[2])
	}
}

func TestEqual(t *testing.T) {
	for _, test := range []struct {
		a, b, want string
	}{
		{"testdata/document.json", "testdata/document.toml", "true\n"},
		{"testdata/document.toml", "testdata/document.json", "true\n"},
		{"testdata/document.json", "testdata/linear.json", "false\n"},
	} {
		out, err := run(t, nil, "equal", test.a, test.b)
		if err != nil {
			t.Fatal(err)
		}
		if out != test.want {
			t.Errorf("%s == %s: want %q, have %q", test.a, test.b, test.want, out)
		}
	}
}
