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

package name

import "github.com/smy-10/font-parser/face"

// Name IDs with a predefined meaning.
const (
	IDCopyright            = 0
	IDFamily               = 1
	IDSubfamily            = 2
	IDUniqueID             = 3
	IDFullName             = 4
	IDVersion              = 5
	IDPostScriptName       = 6
	IDTypographicFamily    = 16
	IDTypographicSubfamily = 17
)

// Table maps name IDs to decoded strings.
type Table map[uint16]string

// Build decodes all name records of f.
//
// If several records share a name ID, the last one wins.  If the font has
// no records for IDFamily or IDSubfamily, the legacy names of the face are
// used instead.
func Build(f face.Face) Table {
	t := make(Table)

	n := f.NumNameRecords()
	for i := 0; i < n; i++ {
		rec, ok := f.NameRecord(i)
		if !ok {
			continue
		}
		t[rec.NameID] = Decode(rec)
	}

	if _, ok := t[IDFamily]; !ok {
		t[IDFamily] = f.LegacyFamilyName()
	}
	if _, ok := t[IDSubfamily]; !ok {
		t[IDSubfamily] = f.LegacyStyleName()
	}
	return t
}

// Get returns the string for the given name ID, or the empty string if the
// ID is not present.
func (t Table) Get(id uint16) string {
	return t[id]
}

// Family returns the typographic family name if present, and the legacy
// family name otherwise.
func (t Table) Family() string {
	if s := t[IDTypographicFamily]; s != "" {
		return s
	}
	return t[IDFamily]
}

// Style returns the typographic subfamily name if present, and the legacy
// subfamily name otherwise.
func (t Table) Style() string {
	if s := t[IDTypographicSubfamily]; s != "" {
		return s
	}
	return t[IDSubfamily]
}
