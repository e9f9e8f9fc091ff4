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

import "errors"

var errCoordCount = errors.New("sfnt: wrong number of design coordinates")

// MalformedError indicates that a table of a font file could not be
// decoded.
type MalformedError struct {
	Table string
	Err   error
}

func (err *MalformedError) Error() string {
	msg := "sfnt: malformed " + err.Table + " table"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}
