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

package units

import (
	"math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in, want string
		scale    float64
	}{
		{in: "m", want: "m", scale: 1},
		{in: "m/s", want: "m * s^-1", scale: 1},
		{in: "m * s^-1", want: "m * s^-1", scale: 1},
		{in: "km / s", want: "km * s^-1", scale: 1000},
		{in: "m^5/m^4", want: "m", scale: 1},
		{in: "J/(kg K)", want: "J * kg^-1 * K^-1", scale: 1},
		{in: "1/s", want: "s^-1", scale: 1},
		{in: "/s", want: "s^-1", scale: 1},
		{in: "m**2", want: "m^2", scale: 1},
		{in: "cm^(-1)", want: "cm^-1", scale: 100},
		{in: "m s-1", want: "m * s^-1", scale: 1},
		{in: "km2", want: "km^2", scale: 1.e6},
		{in: "kg m2 s-2", want: "kg * m^2 * s^-2", scale: 1},
		{in: "cm+1", want: "cm", scale: 1.e-2},
		{in: "mT", want: "mT", scale: 1.e-3},
		{in: "G", want: "G", scale: 1.e-4},
		{in: "Gm", want: "Gm", scale: 1.e9},
		{in: "kHz", want: "kHz", scale: 1.e3},
		{in: "µs", want: "µs", scale: 1.e-6},
		{in: "", want: "", scale: 1},
	}
	for _, test := range tests {
		u, err := ParseUnit(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if u.String() != test.want {
			t.Errorf("%q: want %q, have %q", test.in, test.want, u.String())
		}
		if math.Abs(u.Scale()-test.scale) > 1.e-9*test.scale {
			t.Errorf("%q: want scale %g, have %g", test.in, test.scale, u.Scale())
		}
	}
}

func TestParseUnitError(t *testing.T) {
	for _, in := range []string{"furlong", "m^x", "(m", "m)", "m^", "2 m", "m -1", "(m)2"} {
		if _, err := ParseUnit(in); err == nil {
			t.Errorf("%q: expected an error", in)
		} else if _, ok := err.(ParseError); !ok {
			t.Errorf("%q: want ParseError, have %T", in, err)
		}
	}
}

func TestQuantityName(t *testing.T) {
	tests := map[string]string{
		"m":      "length",
		"lyr":    "length",
		"km/s":   "speed",
		"G":      "magnetic flux density",
		"mT":     "magnetic flux density",
		"1/m":    "wavenumber",
		"cm^-1":  "wavenumber",
		"Hz":     "frequency",
		"1/s":    "frequency",
		"":       "dimensionless",
		"ppm":    "dimensionless",
		"m s":    "unknown",
		"kg/m^3": "mass density",
	}
	for in, want := range tests {
		have := QuantityName(MustParseUnit(in))
		if have != want {
			t.Errorf("%q: want %q, have %q", in, want, have)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  string
	}{
		{in: "10 m/s", value: 10, unit: "m * s^-1"},
		{in: "20/2 m / s", value: 10, unit: "m * s^-1"},
		{in: "20.0 m * s^-1", value: 20, unit: "m * s^-1"},
		{in: "(1/0) m^5/m^4", value: math.Inf(1), unit: "m"},
		{in: "1/0 T", value: math.Inf(1), unit: "T"},
		{in: "Infinity m", value: math.Inf(1), unit: "m"},
		{in: "infinity µT", value: math.Inf(1), unit: "µT"},
		{in: "inf m", value: math.Inf(1), unit: "m"},
		{in: "∞ G", value: math.Inf(1), unit: "G"},
		{in: "-inf s", value: math.Inf(-1), unit: "s"},
		{in: "1e5 G", value: 1.e5, unit: "G"},
		{in: "2.5e-3 m", value: 2.5e-3, unit: "m"},
		{in: "1m", value: 1, unit: "m"},
		{in: "10 m s-1", value: 10, unit: "m * s^-1"},
		{in: "1 eV", value: 1, unit: "eV"},
		{in: "-5 m", value: -5, unit: "m"},
		{in: "1", value: 1, unit: ""},
		{in: " 3.1415 m ", value: 3.1415, unit: "m"},
	}
	for _, test := range tests {
		q, err := ParseQuantity(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if q.Value != test.value {
			t.Errorf("%q: want value %g, have %g", test.in, test.value, q.Value)
		}
		if q.Unit.String() != test.unit {
			t.Errorf("%q: want unit %q, have %q", test.in, test.unit, q.Unit.String())
		}
	}
}

func TestParseQuantityError(t *testing.T) {
	for _, in := range []string{"", "m", "abc", "1 furlong", "5 + x m"} {
		if _, err := ParseQuantity(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestQuantityString(t *testing.T) {
	m := MustParseUnit("m")
	tests := []struct {
		q    Quantity
		want string
	}{
		{q: New(20, MustParseUnit("m/s")), want: "20.0 m * s^-1"},
		{q: New(math.Inf(1), m), want: "inf m"},
		{q: New(1.e16, m), want: "1e+16 m"},
		{q: New(3.1415, m), want: "3.1415 m"},
		{q: New(0.25, MustParseUnit("lyr")), want: "0.25 lyr"},
		{q: New(2.5e-5, m), want: "2.5e-05 m"},
		{q: New(1000, m), want: "1000.0 m"},
		{q: New(0, m), want: "0.0 m"},
		{q: New(1, Dimensionless), want: "1.0"},
	}
	for _, test := range tests {
		if have := test.q.String(); have != test.want {
			t.Errorf("want %q, have %q", test.want, have)
		}
	}
}

func TestFormatValueRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1. / 3, 2.36518262e15, 1.e-300, 123456789.123, -7.25e21, 5} {
		q, err := ParseQuantity(FormatValue(v) + " m")
		if err != nil {
			t.Fatal(err)
		}
		if q.Value != v {
			t.Errorf("want %v, have %v", v, q.Value)
		}
	}
}

func TestQuantityTo(t *testing.T) {
	q, err := MustParseQuantity("1 km").To(MustParseUnit("m"))
	if err != nil {
		t.Fatal(err)
	}
	if q.Value != 1000 || q.Unit.String() != "m" {
		t.Errorf("want 1000.0 m, have %v", q)
	}

	q, err = MustParseQuantity("5 G").To(MustParseUnit("T"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q.Value-5.e-4) > 1.e-18 {
		t.Errorf("want 5e-4 T, have %v", q)
	}

	_, err = MustParseQuantity("1 s").To(MustParseUnit("m"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(DimensionalityError); !ok {
		t.Errorf("want DimensionalityError, have %T", err)
	}
	want := "The unit 's' (time) is inconsistent with the unit 'm' (length)."
	if err.Error() != want {
		t.Errorf("want %q, have %q", want, err.Error())
	}
}

func TestQuantityEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{a: "1 m", b: "100 cm", want: true},
		{a: "1 km/s", b: "1000 m/s", want: true},
		{a: "inf m", b: "inf km", want: true},
		{a: "1 m", b: "1 s", want: false},
		{a: "1 m", b: "1.0001 m", want: false},
		{a: "0 m", b: "0 cm", want: true},
	}
	for _, test := range tests {
		have := MustParseQuantity(test.a).Equal(MustParseQuantity(test.b))
		if have != test.want {
			t.Errorf("%s == %s: want %v, have %v", test.a, test.b, test.want, have)
		}
	}
}

func TestQuantityAdd(t *testing.T) {
	q, err := MustParseQuantity("5 m/s").Add(MustParseQuantity("1 km/s"))
	if err != nil {
		t.Fatal(err)
	}
	if q.Value != 1005 || q.Unit.String() != "m * s^-1" {
		t.Errorf("want 1005.0 m * s^-1, have %v", q)
	}
	if _, err := MustParseQuantity("5 m").Add(MustParseQuantity("1 s")); err == nil {
		t.Error("expected an error")
	}
}

func TestUnitInverse(t *testing.T) {
	u := MustParseUnit("m").Inverse()
	if u.String() != "m^-1" {
		t.Errorf("want m^-1, have %s", u)
	}
	if QuantityName(u) != "wavenumber" {
		t.Errorf("want wavenumber, have %s", QuantityName(u))
	}
	if !Compatible(u, MustParseUnit("1/cm")) {
		t.Error("1/m and 1/cm should be compatible")
	}
}

func TestUnitSI(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"km/s", "m * s^-1"},
		{"G", "kg * s^-2 * A^-1"},
		{"1/T", "kg^-1 * s^2 * A"},
		{"m/kg", "kg^-1 * m"},
		{"N", "kg * m * s^-2"},
		{"lyr", "m"},
		{"ppm", ""},
	} {
		u := MustParseUnit(test.in)
		// The order of the terms must not depend on map iteration.
		for i := 0; i < 50; i++ {
			si := u.SI()
			if si.String() != test.want {
				t.Fatalf("%s: want %q, have %q", test.in, test.want, si)
			}
			if si.Scale() != 1 {
				t.Errorf("%s: SI scale %g", test.in, si.Scale())
			}
			if !Compatible(u, si) {
				t.Errorf("%s: %s is not compatible", test.in, si)
			}
		}
		if back := MustParseUnit(test.want); !back.Equal(u.SI()) {
			t.Errorf("%s: %q does not parse to the same unit", test.in, test.want)
		}
	}
}

func TestParseArray(t *testing.T) {
	a, err := ParseArray([]string{"1 m", "100 m", "1 km", "1 Gm", "0.25 lyr"})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 100, 1000, 1.e9, 2.3651826181452e15}
	for i, v := range want {
		if math.Abs(a.Values[i]-v) > 1.e-9*v {
			t.Errorf("%d: want %g, have %g", i, v, a.Values[i])
		}
	}
	if a.Monotonic() != 1 {
		t.Error("array should be increasing")
	}
	if _, err := ParseArray([]string{"1 m", "1 s"}); err == nil {
		t.Error("expected an error")
	} else if _, ok := err.(DimensionalityError); !ok {
		t.Errorf("want DimensionalityError, have %T", err)
	}
}

func TestArrayArithmetic(t *testing.T) {
	a, err := ParseArray([]string{"5 m/s", "15 m/s", "25 m/s"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := a.AddQuantity(MustParseQuantity("1 km/s"))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range []float64{1005, 1015, 1025} {
		if b.Values[i] != v {
			t.Errorf("%d: want %g, have %g", i, v, b.Values[i])
		}
	}
	if a.Values[0] != 5 {
		t.Error("AddQuantity modified its receiver")
	}
	c, err := b.To(MustParseUnit("km/s"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(b) {
		t.Errorf("%v != %v", c, b)
	}
	if a.String() != "[5.0 15.0 25.0] m * s^-1" {
		t.Errorf("have %s", a)
	}
	if (Array{Values: []float64{3, 2, 1}}).Monotonic() != -1 {
		t.Error("array should be decreasing")
	}
	if (Array{Values: []float64{1, 1}}).Monotonic() != 0 {
		t.Error("array should not be monotonic")
	}
}
