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
	"strconv"
	"unicode"
)

type tokenKind int

const (
	symbolTok tokenKind = iota
	numberTok
	mulTok
	divTok
	powTok
	lparenTok
	rparenTok
)

type token struct {
	kind tokenKind
	text string

	// joined is true if the token directly follows the previous
	// token, with no whitespace between them.
	joined bool
}

// isSymbolRune returns whether r can be part of a unit symbol.
func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '°' || r == '%' || r == '_'
}

// tokenize splits a unit string into tokens. Whitespace separates
// tokens and is otherwise ignored; adjacent symbols are multiplied.
func tokenize(s string) ([]token, error) {
	var toks []token
	joined := false
	add := func(kind tokenKind, text string) {
		toks = append(toks, token{kind: kind, text: text, joined: joined})
		joined = true
	}
	r := []rune(s)
	for i := 0; i < len(r); {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			joined = false
			i++
		case c == '*':
			if i+1 < len(r) && r[i+1] == '*' {
				add(powTok, "**")
				i += 2
			} else {
				add(mulTok, "*")
				i++
			}
		case c == '·':
			add(mulTok, string(c))
			i++
		case c == '/':
			add(divTok, "/")
			i++
		case c == '^':
			add(powTok, "^")
			i++
		case c == '(':
			add(lparenTok, "(")
			i++
		case c == ')':
			add(rparenTok, ")")
			i++
		case unicode.IsDigit(c) || c == '-' || c == '+':
			j := i + 1
			for j < len(r) && unicode.IsDigit(r[j]) {
				j++
			}
			add(numberTok, string(r[i:j]))
			i = j
		case isSymbolRune(c):
			j := i + 1
			for j < len(r) && isSymbolRune(r[j]) {
				j++
			}
			add(symbolTok, string(r[i:j]))
			i = j
		default:
			return nil, ParseError{Input: s, Msg: fmt.Sprintf("invalid character %q", c)}
		}
	}
	return toks, nil
}

// unitParser is a recursive descent parser for the grammar
//
//	expr    = factor { ["*" | "/"] factor }
//	factor  = primary [ ("^" | "**") integer ]
//	        | symbol integer
//
// In the second form of factor the integer must directly follow the
// symbol, as in "s-1" or "m2".
//	primary = symbol | "1" | "(" expr ")"
type unitParser struct {
	in   string
	toks []token
	pos  int
}

func (p *unitParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *unitParser) errorf(format string, args ...interface{}) error {
	return ParseError{Input: p.in, Msg: fmt.Sprintf(format, args...)}
}

func (p *unitParser) expr() (Unit, error) {
	var u Unit
	if t, ok := p.peek(); ok && t.kind == divTok {
		// A leading "/" as in "/s" means "1/s".
		u = Dimensionless
	} else {
		var err error
		if u, err = p.factor(); err != nil {
			return Unit{}, err
		}
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind == rparenTok {
			return u, nil
		}
		switch t.kind {
		case mulTok:
			p.pos++
			f, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			u = mul(u, f)
		case divTok:
			p.pos++
			f, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			u = mul(u, f.Inverse())
		case symbolTok, lparenTok, numberTok:
			f, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			u = mul(u, f)
		default:
			return Unit{}, p.errorf("unexpected %q", t.text)
		}
	}
}

func (p *unitParser) factor() (Unit, error) {
	first, _ := p.peek()
	u, err := p.primary()
	if err != nil {
		return Unit{}, err
	}
	t, ok := p.peek()
	if ok && first.kind == symbolTok && t.kind == numberTok && t.joined {
		p.pos++
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return Unit{}, p.errorf("exponent must be an integer, not %q", t.text)
		}
		return pow(u, n), nil
	}
	if !ok || t.kind != powTok {
		return u, nil
	}
	p.pos++
	n, err := p.exponent()
	if err != nil {
		return Unit{}, err
	}
	return pow(u, n), nil
}

func (p *unitParser) exponent() (int, error) {
	t, ok := p.peek()
	if !ok {
		return 0, p.errorf("missing exponent")
	}
	paren := t.kind == lparenTok
	if paren {
		p.pos++
		if t, ok = p.peek(); !ok {
			return 0, p.errorf("missing exponent")
		}
	}
	if t.kind != numberTok {
		return 0, p.errorf("exponent must be an integer, not %q", t.text)
	}
	p.pos++
	n, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, p.errorf("exponent must be an integer, not %q", t.text)
	}
	if paren {
		if t, ok := p.peek(); !ok || t.kind != rparenTok {
			return 0, p.errorf("missing ')'")
		}
		p.pos++
	}
	return n, nil
}

func (p *unitParser) primary() (Unit, error) {
	t, ok := p.peek()
	if !ok {
		return Unit{}, p.errorf("unexpected end of unit")
	}
	p.pos++
	switch t.kind {
	case symbolTok:
		si, ok := lookup(t.text)
		if !ok {
			return Unit{}, p.errorf("unknown unit %q", t.text)
		}
		return Unit{terms: []term{{symbol: t.text, power: 1}}, si: si}, nil
	case numberTok:
		if t.text != "1" {
			return Unit{}, p.errorf("unexpected number %q", t.text)
		}
		return Dimensionless, nil
	case lparenTok:
		u, err := p.expr()
		if err != nil {
			return Unit{}, err
		}
		if t, ok := p.peek(); !ok || t.kind != rparenTok {
			return Unit{}, p.errorf("missing ')'")
		}
		p.pos++
		return u, nil
	}
	return Unit{}, p.errorf("unexpected %q", t.text)
}
