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

package face

import "errors"

// ErrClosed is returned when a method is called on a closed face.
var ErrClosed = errors.New("face: closed")

// NotSupportedError indicates that a face cannot perform the requested
// operation.
type NotSupportedError struct {
	Format  string
	Feature string
}

func (err *NotSupportedError) Error() string {
	return err.Format + ": " + err.Feature + " not supported"
}

// IsUnsupported returns true if err is or wraps a NotSupportedError.
func IsUnsupported(err error) bool {
	var e *NotSupportedError
	return errors.As(err, &e)
}
