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

// labeled is a dimension whose coordinates are string labels.
type labeled struct {
	meta
	labels Labels
}

func newLabeled(p Params) (*labeled, error) {
	v, ok := p["labels"]
	if !ok || v == nil {
		return nil, MissingKeyError{Type: "labeled", Key: "labels"}
	}
	l := new(labeled)
	if err := l.setLabels(v); err != nil {
		return nil, err
	}
	var err error
	if l.meta, err = metaParams(p); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *labeled) setLabels(v interface{}) error {
	s, err := stringList("labels", v,
		"A list of labels is required",
		"A list of string labels are required")
	if err != nil {
		return err
	}
	if len(s) == 0 {
		return ValueError{Attribute: "labels", Msg: "A list of labels is required"}
	}
	l.labels = s
	return nil
}

func (l *labeled) typ() string { return "labeled" }
func (l *labeled) base() *meta { return &l.meta }
func (l *labeled) count() int { return len(l.labels) }

func (l *labeled) setCount(n int) error {
	if err := checkTruncate(l.typ(), l.count(), n); err != nil {
		return err
	}
	l.labels = l.labels[:n:n]
	return nil
}

func (l *labeled) coordinates() Coordinates { return Labels(l.labels.Strings()) }

func (l *labeled) dict() Dict {
	d := Dict{Type: l.typ(), Labels: l.labels.Strings()}
	l.meta.fill(&d)
	return d
}

func (l *labeled) copy() subtype {
	return &labeled{meta: l.meta.copy(), labels: l.labels.Strings()}
}

func (l *labeled) equal(s subtype) bool {
	o, ok := s.(*labeled)
	if !ok || len(l.labels) != len(o.labels) {
		return false
	}
	for i, v := range l.labels {
		if o.labels[i] != v {
			return false
		}
	}
	return l.meta.equal(o.meta)
}
