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
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats"
)

// Tolerance is the relative tolerance used when comparing
// quantities that are expressed in different units.
const Tolerance = 1.e-12

// Quantity is a scalar value with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// New returns a new quantity.
func New(value float64, u Unit) Quantity {
	return Quantity{Value: value, Unit: u}
}

// ParseQuantity parses a string such as "5 G", "10.0 m * s^-1", "20/2 m/s",
// "inf m" or "1e5". The numeric part may be an arithmetic expression.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	num, rest := splitNumber(s)
	if num == "" {
		return Quantity{}, ParseError{Input: s, Msg: "missing numeric value"}
	}
	v, err := parseNumber(num)
	if err != nil {
		return Quantity{}, ParseError{Input: s, Msg: err.Error()}
	}
	u, err := ParseUnit(rest)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: u}, nil
}

// MustParseQuantity is like ParseQuantity but panics on error.
func MustParseQuantity(s string) Quantity {
	q, err := ParseQuantity(s)
	if err != nil {
		panic(err)
	}
	return q
}

// infinityWords are the spellings of infinity that are accepted in
// quantity strings.
var infinityWords = []string{"infinity", "inf", "∞"}

// splitNumber splits s into its leading numeric expression
// and the remaining unit string.
func splitNumber(s string) (num, rest string) {
	sign := ""
	body := s
	if strings.HasPrefix(body, "-") || strings.HasPrefix(body, "+") {
		sign, body = body[:1], body[1:]
	}
	lower := strings.ToLower(body)
	for _, w := range append(infinityWords, "nan") {
		if !strings.HasPrefix(lower, w) {
			continue
		}
		after := body[len(w):]
		if after == "" || !isSymbolRune([]rune(after)[0]) {
			return sign + body[:len(w)], strings.TrimSpace(after)
		}
	}

	r := []rune(s)
	j := 0
	for ; j < len(r); j++ {
		c := r[j]
		if unicode.IsDigit(c) || strings.ContainsRune(".+-*/() ", c) {
			continue
		}
		if (c == 'e' || c == 'E') && j > 0 && (unicode.IsDigit(r[j-1]) || r[j-1] == '.') &&
			j+1 < len(r) && (unicode.IsDigit(r[j+1]) ||
			((r[j+1] == '-' || r[j+1] == '+') && j+2 < len(r) && unicode.IsDigit(r[j+2]))) {
			continue
		}
		break
	}
	// Operators and opening parentheses at the end of the numeric part
	// belong to the unit, as in "1 /s" or "5 (m/s)".
	for j > 0 && strings.ContainsRune(" */(+-", r[j-1]) {
		j--
	}
	return strings.TrimSpace(string(r[:j])), strings.TrimSpace(string(r[j:]))
}

// parseNumber evaluates a numeric string.
func parseNumber(num string) (float64, error) {
	if v, err := strconv.ParseFloat(num, 64); err == nil {
		return v, nil
	}
	switch strings.TrimPrefix(num, "+") {
	case "∞":
		return math.Inf(1), nil
	case "-∞":
		return math.Inf(-1), nil
	}
	expr, err := govaluate.NewEvaluableExpression(num)
	if err != nil {
		return math.NaN(), err
	}
	if len(expr.Vars()) != 0 {
		return math.NaN(), fmt.Errorf("invalid numeric value %q", num)
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return math.NaN(), err
	}
	v, ok := result.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("numeric value %q evaluates to %v", num, result)
	}
	return v, nil
}

// FormatValue formats v with the shortest representation that parses back
// to the same value, always including a decimal point or exponent,
// e.g. "20.0", "0.25", "1e+16", "inf".
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if a := math.Abs(v); a != 0 && (a < 1.e-4 || a >= 1.e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String returns q in the form "<value> <unit>".
func (q Quantity) String() string {
	u := q.Unit.String()
	if u == "" {
		return FormatValue(q.Value)
	}
	return FormatValue(q.Value) + " " + u
}

// To converts q to unit u.
func (q Quantity) To(u Unit) (Quantity, error) {
	f, err := Factor(q.Unit, u)
	if err != nil {
		return Quantity{}, err
	}
	if f == 1 {
		return Quantity{Value: q.Value, Unit: u}, nil
	}
	return Quantity{Value: q.Value * f, Unit: u}, nil
}

// Add returns q+o in the unit of q.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	oc, err := o.To(q.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value + oc.Value, Unit: q.Unit}, nil
}

// Mul returns q multiplied by the dimensionless factor f.
func (q Quantity) Mul(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// Equal returns whether q and o represent the same physical quantity,
// regardless of the units they are expressed in.
func (q Quantity) Equal(o Quantity) bool {
	oc, err := o.To(q.Unit)
	if err != nil {
		return false
	}
	return equalValues(q.Value, oc.Value)
}

// IsZero returns whether the value of q is zero.
func (q Quantity) IsZero() bool { return q.Value == 0 }

// IsNaN returns whether the value of q is not a number.
func (q Quantity) IsNaN() bool { return math.IsNaN(q.Value) }

// IsInf returns whether q is positive infinity.
func (q Quantity) IsInf() bool { return math.IsInf(q.Value, 1) }

func equalValues(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return floats.EqualWithinAbsOrRel(a, b, 0, Tolerance)
}
