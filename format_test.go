// font-parser - extract style information from font files
// Copyright (C) 2026  The font-parser Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontparser

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000000"},
		{400, "400.000000"},
		{-11.5, "-11.500000"},
		{87.5, "87.500000"},
		{1.0 / 3, "0.333333"},
	}
	for _, c := range cases {
		if got := formatNumber(c.in); got != c.want {
			t.Errorf("formatNumber(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	r := &Result{}
	if got := r.Format(); got != emptyResult {
		t.Errorf("%q != %q", got, emptyResult)
	}
	if got := Format(r); got != emptyResult {
		t.Errorf("%q != %q", got, emptyResult)
	}
}

func TestIndent(t *testing.T) {
	p := NewParser(nil)
	defer p.Close()
	if err := p.Run(goregular.TTF); err != nil {
		t.Fatal(err)
	}
	res := p.Result()

	compact := res.Format()
	indented := res.Indent()
	if strings.Contains(compact, "\n") {
		t.Errorf("compact output contains newlines: %q", compact)
	}
	if !strings.Contains(indented, "\n  \"styles\": [") {
		t.Errorf("unexpected indented output:\n%s", indented)
	}
	squeezed := strings.Join(strings.Fields(indented), "")
	if squeezed != strings.Join(strings.Fields(compact), "") {
		t.Errorf("indented output differs from compact output")
	}
}

func TestNearestEmpty(t *testing.T) {
	if s := Nearest(nil, nil); s != nil {
		t.Errorf("unexpected style %v", s)
	}
	if s := (&Result{}).Nearest(nil); s != nil {
		t.Errorf("unexpected style %v", s)
	}
}
