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

// Package type1face implements font faces for PostScript Type 1 fonts in
// PFA and PFB format, including Adobe multiple master fonts.
//
// Type 1 fonts have no name records and no OS/2 or post tables.  Family and
// style names are taken from the FontInfo dictionary, which is read by
// running the unencrypted part of the font program through the PostScript
// interpreter from seehuhn.de/go/postscript.
package type1face

import (
	"bytes"
	"errors"

	"seehuhn.de/go/postscript/type1"

	"github.com/smy-10/font-parser/face"
)

// maxMMAxes is the maximal number of axes of a multiple master font.
const maxMMAxes = 4

var (
	errNotType1    = errors.New("type1: not a Type 1 font")
	errCoordCount  = errors.New("type1: wrong number of design coordinates")
	errNoFontNames = errors.New("type1: no font name found")
)

// Face is a Type 1 font.
type Face struct {
	family string
	style  string
	axes   []face.AxisRecord

	coords []int
	closed bool
}

// IsType1 reports whether data looks like a PFA or PFB font file.
func IsType1(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x80 && data[1] == 0x01 ||
		bytes.HasPrefix(data, []byte("%!PS-AdobeFont")) ||
		bytes.HasPrefix(data, []byte("%!FontType1"))
}

// Open reads a Type 1 font.
func Open(data []byte) (*Face, error) {
	if !IsType1(data) {
		return nil, errNotType1
	}
	text, err := clearText(data)
	if err != nil {
		return nil, err
	}
	fd, err := readFontDict(text)
	if err != nil {
		return nil, err
	}

	fi := fontInfo(fd)
	if fi.FontName == "" && fi.FamilyName == "" {
		return nil, errNoFontNames
	}
	f := &Face{
		axes: blendAxes(fd),
	}
	f.family, f.style = faceNames(fi)
	return f, nil
}

// faceNames determines family and style name the same way FreeType does:
// the style is the part of the full name which follows the family name.
func faceNames(fi *type1.FontInfo) (family, style string) {
	family = fi.FamilyName
	if family != "" {
		full := fi.FullName
		if full != "" {
			same := true
			i, j := 0, 0
			for i < len(full) {
				switch {
				case j < len(family) && full[i] == family[j]:
					i++
					j++
				case full[i] == ' ' || full[i] == '-':
					i++
				case j < len(family) && (family[j] == ' ' || family[j] == '-'):
					j++
				default:
					same = false
					if j >= len(family) {
						style = full[i:]
					}
				}
				if !same {
					break
				}
			}
			if same {
				style = "Regular"
			}
		}
	} else {
		family = fi.FontName
	}

	if style == "" {
		style = fi.Weight
	}
	if style == "" {
		style = "Regular"
	}
	return family, style
}

// NumNameRecords implements the [face.Face] interface.
func (f *Face) NumNameRecords() int {
	return 0
}

// NameRecord implements the [face.Face] interface.
func (f *Face) NameRecord(int) (face.NameRecord, bool) {
	return face.NameRecord{}, false
}

// LegacyFamilyName implements the [face.Face] interface.
func (f *Face) LegacyFamilyName() string {
	return f.family
}

// LegacyStyleName implements the [face.Face] interface.
func (f *Face) LegacyStyleName() string {
	return f.style
}

// Kind implements the [face.Face] interface.
func (f *Face) Kind() face.Kind {
	if len(f.axes) > 0 {
		return face.MultipleMaster
	}
	return face.Static
}

// Axes implements the [face.Face] interface.
func (f *Face) Axes() []face.AxisRecord {
	return f.axes
}

// NamedInstances implements the [face.Face] interface.
// Multiple master fonts have no named instances.
func (f *Face) NamedInstances() []face.NamedInstance {
	return nil
}

// WeightClass implements the [face.Face] interface.
func (f *Face) WeightClass() (uint16, bool) {
	return 0, false
}

// WidthClass implements the [face.Face] interface.
func (f *Face) WidthClass() (uint16, bool) {
	return 0, false
}

// ItalicAngle implements the [face.Face] interface.
func (f *Face) ItalicAngle() (float64, bool) {
	return 0, false
}

// SetDesignCoordinates implements the [face.Face] interface.
// The coordinates are rounded to integers.
func (f *Face) SetDesignCoordinates(coords []float64) error {
	mm := make([]int, len(coords))
	for i, x := range coords {
		mm[i] = int(x + 0.5)
	}
	return f.SetMMDesignCoordinates(mm)
}

// SetMMDesignCoordinates implements the [face.Face] interface.
func (f *Face) SetMMDesignCoordinates(coords []int) error {
	if f.closed {
		return face.ErrClosed
	}
	if len(f.axes) == 0 {
		return &face.NotSupportedError{Format: "type1", Feature: "design coordinates for single master fonts"}
	}
	if len(coords) != len(f.axes) {
		return errCoordCount
	}
	f.coords = append(f.coords[:0], coords...)
	return nil
}

// DesignCoordinates returns the coordinates set by the last successful call
// to SetMMDesignCoordinates.
func (f *Face) DesignCoordinates() []int {
	return f.coords
}

// Close implements the [face.Face] interface.
func (f *Face) Close() error {
	f.closed = true
	return nil
}
