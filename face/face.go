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

// Package face defines the interface between the style resolver and the
// font format backends.
//
// A [Face] is a single font program.  A font file can contain several
// faces, for example a TrueType collection.  Backends live in the
// sub-packages sfntface and type1face; the loader package picks the right
// backend for a given file.
package face

// Kind describes the variation model of a face.
type Kind int

// These are the supported variation models.
const (
	// Static faces have no variation axes.
	Static Kind = iota

	// Variable faces carry an OpenType fvar table.
	Variable

	// MultipleMaster faces are Adobe multiple master Type 1 fonts.
	// They have at most four axes and no named instances.
	MultipleMaster
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Variable:
		return "variable"
	case MultipleMaster:
		return "multiple master"
	default:
		return "unknown"
	}
}

// NameRecord is a raw entry of a font's naming table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte
}

// AxisRecord describes a design axis as declared in the font file.
type AxisRecord struct {
	Tag Tag

	// NameID is the name table entry for the axis name, or 0 if the font
	// has no such entry.
	NameID uint16

	// Name is the axis name as given by the font format, if any.  This is
	// used when NameID is 0 or not present in the name table.
	Name string

	Min     float64
	Default float64
	Max     float64
}

// NamedInstance is a predefined point in the design space of a variable
// font.
type NamedInstance struct {
	// SubfamilyNameID is the name table entry for the style name of the
	// instance.
	SubfamilyNameID uint16

	// Coordinates has one entry per axis, in the order of Face.Axes.
	Coordinates []float64
}

// Face is a single font program.
//
// Implementations must allow Close to be called more than once.
// No other methods may be called after Close.
type Face interface {
	// NumNameRecords returns the number of raw name records.
	NumNameRecords() int

	// NameRecord returns the name record with index i.  The second return
	// value is false if the record cannot be read.
	NameRecord(i int) (NameRecord, bool)

	// LegacyFamilyName returns the family name as determined from the
	// font data without consulting the name records directly.
	LegacyFamilyName() string

	// LegacyStyleName returns the style name as determined from the font
	// data without consulting the name records directly.
	LegacyStyleName() string

	Kind() Kind
	Axes() []AxisRecord
	NamedInstances() []NamedInstance

	// WeightClass returns the OS/2 usWeightClass value.  The second return
	// value is false if the font has no OS/2 table.
	WeightClass() (uint16, bool)

	// WidthClass returns the OS/2 usWidthClass value.
	WidthClass() (uint16, bool)

	// ItalicAngle returns the italic angle in degrees, counter-clockwise
	// from the vertical.
	ItalicAngle() (float64, bool)

	// SetDesignCoordinates sets the design coordinates of a variable font.
	// The slice must have one entry per axis.
	SetDesignCoordinates(coords []float64) error

	// SetMMDesignCoordinates sets the design coordinates of a multiple
	// master font.
	SetMMDesignCoordinates(coords []int) error

	Close() error
}
