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

// Package sfntface implements font faces for TrueType and OpenType fonts,
// including font collections, WOFF files and Mac dfont files.
//
// Table directories are validated before any table is read.  Plain sfnt
// files are read with seehuhn.de/go/sfnt, containers are unpacked by
// github.com/go-text/typesetting.  The raw name records and the fvar table
// are decoded here, since neither library exposes them in full.
package sfntface

import (
	"bytes"
	"encoding/binary"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"seehuhn.de/go/sfnt/header"

	"github.com/smy-10/font-parser/face"
)

var (
	tagName = opentype.MustNewTag("name")
	tagOS2  = opentype.MustNewTag("OS/2")
	tagPost = opentype.MustNewTag("post")
	tagFvar = opentype.MustNewTag("fvar")
)

// Bits in OS/2 fsSelection and head macStyle.
const (
	fsItalic = 1 << 0
	fsBold   = 1 << 5

	macBold   = 1 << 0
	macItalic = 1 << 1
)

// Face is a single face of an sfnt font file.
type Face struct {
	names     []face.NameRecord
	family    string
	style     string
	axes      []face.AxisRecord
	instances []face.NamedInstance

	os2 *tables.Os2

	italicAngle float64
	hasPost     bool

	ld   *opentype.Loader
	live *font.Face

	coords   []float64
	warnings []error
	closed   bool
}

// tableFunc returns the contents of a font table.
type tableFunc func(tag opentype.Tag) ([]byte, error)

// Open returns all faces contained in an sfnt font file.
// The file is rejected if a table directory does not fit into the data,
// or if a table lies outside the file.
func Open(data []byte) ([]*Face, error) {
	offsets, relative, err := fontOffsets(data)
	if err != nil {
		return nil, err
	}
	for _, start := range offsets {
		err := checkTables(data, start, relative)
		if err != nil {
			return nil, err
		}
	}

	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var info *header.Info
	switch binary.BigEndian.Uint32(data) {
	case magicTrueType, magicCFF, magicApple:
		info, err = header.Read(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	}

	res := make([]*Face, len(loaders))
	for i, ld := range loaders {
		read := ld.RawTable
		if info != nil {
			r := bytes.NewReader(data)
			read = func(tag opentype.Tag) ([]byte, error) {
				return info.ReadTableBytes(r, tag.String())
			}
		}
		res[i] = newFace(ld, read)
	}
	return res, nil
}

// newFace reads the tables needed for style resolution.  Malformed optional
// tables are treated as missing and recorded in the face's warnings.
func newFace(ld *opentype.Loader, read tableFunc) *Face {
	f := &Face{ld: ld}

	var nameTable tables.Name
	var hasName bool
	if data, err := read(tagName); err == nil {
		f.names, err = decodeNames(data)
		if err != nil {
			f.warnings = append(f.warnings, err)
		}
		nameTable, _, err = tables.ParseName(data)
		hasName = err == nil
	}

	if data, err := read(tagOS2); err == nil {
		os2, _, err := tables.ParseOs2(data)
		if err != nil {
			f.warnings = append(f.warnings, &MalformedError{Table: "OS/2", Err: err})
		} else {
			f.os2 = &os2
		}
	}

	if data, err := read(tagPost); err == nil {
		f.italicAngle, err = readItalicAngle(data)
		if err != nil {
			f.warnings = append(f.warnings, err)
		} else {
			f.hasPost = true
		}
	}

	if data, err := read(tagFvar); err == nil {
		f.axes, f.instances, err = decodeFvar(data)
		if err != nil {
			f.warnings = append(f.warnings, err)
		}
	}

	if hasName {
		f.family = nameTable.Name(tables.NameID(16))
		if f.family == "" {
			f.family = nameTable.Name(tables.NameID(1))
		}
		f.style = nameTable.Name(tables.NameID(17))
		if f.style == "" {
			f.style = nameTable.Name(tables.NameID(2))
		}
	}
	if f.style == "" {
		f.style = f.styleFromFlags(ld)
	}

	return f
}

// styleFromFlags derives a style name from the OS/2 fsSelection field, or
// from the head macStyle field if there is no OS/2 table.
func (f *Face) styleFromFlags(ld *opentype.Loader) string {
	var bold, italic bool
	if f.os2 != nil {
		bold = f.os2.FsSelection&fsBold != 0
		italic = f.os2.FsSelection&fsItalic != 0
	} else if head, _, err := font.LoadHeadTable(ld, nil); err == nil {
		bold = head.MacStyle&macBold != 0
		italic = head.MacStyle&macItalic != 0
	}

	switch {
	case bold && italic:
		return "Bold Italic"
	case bold:
		return "Bold"
	case italic:
		return "Italic"
	default:
		return "Regular"
	}
}

// NumNameRecords implements the [face.Face] interface.
func (f *Face) NumNameRecords() int {
	return len(f.names)
}

// NameRecord implements the [face.Face] interface.
func (f *Face) NameRecord(i int) (face.NameRecord, bool) {
	if i < 0 || i >= len(f.names) {
		return face.NameRecord{}, false
	}
	return f.names[i], true
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
		return face.Variable
	}
	return face.Static
}

// Axes implements the [face.Face] interface.
func (f *Face) Axes() []face.AxisRecord {
	return f.axes
}

// NamedInstances implements the [face.Face] interface.
func (f *Face) NamedInstances() []face.NamedInstance {
	return f.instances
}

// WeightClass implements the [face.Face] interface.
func (f *Face) WeightClass() (uint16, bool) {
	if f.os2 == nil {
		return 0, false
	}
	return f.os2.USWeightClass, true
}

// WidthClass implements the [face.Face] interface.
func (f *Face) WidthClass() (uint16, bool) {
	if f.os2 == nil {
		return 0, false
	}
	return f.os2.USWidthClass, true
}

// ItalicAngle implements the [face.Face] interface.
func (f *Face) ItalicAngle() (float64, bool) {
	return f.italicAngle, f.hasPost
}

// SetDesignCoordinates implements the [face.Face] interface.
// The coordinates are stored in 16.16 fixed point precision.  If the font
// has the tables needed for rendering, the coordinates are also applied to
// a go-text face, see [Face.NormalizedCoordinates].
func (f *Face) SetDesignCoordinates(coords []float64) error {
	if f.closed {
		return face.ErrClosed
	}
	if len(f.axes) == 0 {
		return &face.NotSupportedError{Format: "sfnt", Feature: "design coordinates for static fonts"}
	}
	if len(coords) != len(f.axes) {
		return errCoordCount
	}

	f.coords = make([]float64, len(coords))
	for i, x := range coords {
		f.coords[i] = fixedToFloat(floatToFixed(x))
	}

	if f.live == nil && f.ld != nil {
		ft, err := font.NewFont(f.ld)
		if err != nil {
			// The font cannot be rendered; only the coordinates are kept.
			f.ld = nil
			return nil
		}
		f.live = font.NewFace(ft)
	}
	if f.live != nil {
		vars := make([]font.Variation, len(f.axes))
		for i, a := range f.axes {
			vars[i] = font.Variation{
				Tag:   opentype.NewTag(a.Tag[0], a.Tag[1], a.Tag[2], a.Tag[3]),
				Value: float32(f.coords[i]),
			}
		}
		f.live.SetVariations(vars)
	}
	return nil
}

// SetMMDesignCoordinates implements the [face.Face] interface.
// This always fails, since sfnt fonts are never multiple master fonts.
func (f *Face) SetMMDesignCoordinates([]int) error {
	if f.closed {
		return face.ErrClosed
	}
	return &face.NotSupportedError{Format: "sfnt", Feature: "multiple master coordinates"}
}

// DesignCoordinates returns the coordinates set by the last successful
// call to SetDesignCoordinates, or nil if no coordinates have been set.
func (f *Face) DesignCoordinates() []float64 {
	return f.coords
}

// NormalizedCoordinates returns the normalized variation coordinates of
// the go-text face, in 2.14 fixed point.  The result is nil if no
// coordinates have been set, or if the font cannot be rendered.
func (f *Face) NormalizedCoordinates() []tables.Coord {
	if f.live == nil {
		return nil
	}
	return f.live.Coords()
}

// Warnings returns the problems found while reading the font tables.
func (f *Face) Warnings() []error {
	return f.warnings
}

// Close implements the [face.Face] interface.
func (f *Face) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.names = nil
	f.coords = nil
	f.ld = nil
	f.live = nil
	return nil
}
