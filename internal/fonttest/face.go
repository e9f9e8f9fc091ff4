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

// Package fonttest provides font faces and font files for use in tests.
package fonttest

import (
	"errors"
	"unicode/utf16"

	"github.com/smy-10/font-parser/face"
)

// Face is an in-memory implementation of [face.Face].
type Face struct {
	Records []face.NameRecord

	Family string
	Style  string

	Type      face.Kind
	AxisList  []face.AxisRecord
	Instances []face.NamedInstance

	// OS2 is nil for fonts without an OS/2 table.
	OS2 *OS2

	// Post is nil for fonts without a post table.
	Post *Post

	Coords   []float64
	MMCoords []int

	NumClose int
}

// OS2 holds the fields of an OS/2 table.
type OS2 struct {
	WeightClass uint16
	WidthClass  uint16
	FsSelection uint16
}

// Post holds the fields of a post table.
type Post struct {
	ItalicAngle float64
}

var _ face.Face = (*Face)(nil)

// NumNameRecords implements the [face.Face] interface.
func (f *Face) NumNameRecords() int { return len(f.Records) }

// NameRecord implements the [face.Face] interface.
func (f *Face) NameRecord(i int) (face.NameRecord, bool) {
	if i < 0 || i >= len(f.Records) {
		return face.NameRecord{}, false
	}
	return f.Records[i], true
}

// LegacyFamilyName implements the [face.Face] interface.
func (f *Face) LegacyFamilyName() string { return f.Family }

// LegacyStyleName implements the [face.Face] interface.
func (f *Face) LegacyStyleName() string { return f.Style }

// Kind implements the [face.Face] interface.
func (f *Face) Kind() face.Kind { return f.Type }

// Axes implements the [face.Face] interface.
func (f *Face) Axes() []face.AxisRecord { return f.AxisList }

// NamedInstances implements the [face.Face] interface.
func (f *Face) NamedInstances() []face.NamedInstance { return f.Instances }

// WeightClass implements the [face.Face] interface.
func (f *Face) WeightClass() (uint16, bool) {
	if f.OS2 == nil {
		return 0, false
	}
	return f.OS2.WeightClass, true
}

// WidthClass implements the [face.Face] interface.
func (f *Face) WidthClass() (uint16, bool) {
	if f.OS2 == nil {
		return 0, false
	}
	return f.OS2.WidthClass, true
}

// ItalicAngle implements the [face.Face] interface.
func (f *Face) ItalicAngle() (float64, bool) {
	if f.Post == nil {
		return 0, false
	}
	return f.Post.ItalicAngle, true
}

// SetDesignCoordinates implements the [face.Face] interface.
func (f *Face) SetDesignCoordinates(coords []float64) error {
	if f.Type != face.Variable {
		return &face.NotSupportedError{Format: "test", Feature: "design coordinates"}
	}
	if len(coords) != len(f.AxisList) {
		return errors.New("wrong number of coordinates")
	}
	f.Coords = coords
	return nil
}

// SetMMDesignCoordinates implements the [face.Face] interface.
func (f *Face) SetMMDesignCoordinates(coords []int) error {
	if f.Type != face.MultipleMaster {
		return &face.NotSupportedError{Format: "test", Feature: "multiple master coordinates"}
	}
	f.MMCoords = coords
	return nil
}

// Close implements the [face.Face] interface.
func (f *Face) Close() error {
	f.NumClose++
	return nil
}

// Windows returns a Windows Unicode BMP name record for American English.
func Windows(nameID uint16, s string) face.NameRecord {
	return face.NameRecord{
		PlatformID: 3,
		EncodingID: 1,
		LanguageID: 0x0409,
		NameID:     nameID,
		Value:      utf16Encode(s),
	}
}

// Mac returns a Macintosh Roman name record for English.
// Only ASCII strings are supported.
func Mac(nameID uint16, s string) face.NameRecord {
	return face.NameRecord{
		PlatformID: 1,
		EncodingID: 0,
		LanguageID: 0,
		NameID:     nameID,
		Value:      []byte(s),
	}
}

func utf16Encode(s string) []byte {
	codes := utf16.Encode([]rune(s))
	res := make([]byte, 2*len(codes))
	for i, c := range codes {
		res[2*i] = byte(c >> 8)
		res[2*i+1] = byte(c)
	}
	return res
}
