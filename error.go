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

import "errors"

var (
	// ErrEmptyInput is returned when a parser is run on empty data.
	ErrEmptyInput = errors.New("fontparser: empty input")

	// ErrNoFaces is returned when a font file contains no usable faces.
	ErrNoFaces = errors.New("fontparser: no font faces found")
)

// LoadError indicates that a font file could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (err *LoadError) Error() string {
	msg := "cannot load " + err.Path
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *LoadError) Unwrap() error {
	return err.Err
}
