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

package sfntface

import (
	"testing"

	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// TestCrossCheck compares the values read from the Go fonts with the
// values reported by an independent sfnt reader.
func TestCrossCheck(t *testing.T) {
	fonts := map[string][]byte{
		"goregular":    goregular.TTF,
		"goitalic":     goitalic.TTF,
		"gobolditalic": gobolditalic.TTF,
		"gomono":       gomono.TTF,
	}
	for fname, data := range fonts {
		t.Run(fname, func(t *testing.T) {
			ref, err := sfnt.Parse(data)
			if err != nil {
				t.Fatal(err)
			}
			var buf sfnt.Buffer
			family, err := ref.Name(&buf, sfnt.NameIDFamily)
			if err != nil {
				t.Fatal(err)
			}
			subfamily, err := ref.Name(&buf, sfnt.NameIDSubfamily)
			if err != nil {
				t.Fatal(err)
			}

			faces, err := Open(data)
			if err != nil {
				t.Fatal(err)
			}
			f := faces[0]
			defer f.Close()

			if got := f.LegacyFamilyName(); got != family {
				t.Errorf("family %q != %q", got, family)
			}
			if got := f.LegacyStyleName(); got != subfamily {
				t.Errorf("style %q != %q", got, subfamily)
			}
			angle, _ := f.ItalicAngle()
			if post := ref.PostTable(); post != nil && post.ItalicAngle != angle {
				t.Errorf("italic angle %g != %g", angle, post.ItalicAngle)
			}
		})
	}
}
