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
	"bytes"

	"seehuhn.de/go/sfnt/post"
)

// readItalicAngle returns the italic angle from a "post" table, in degrees.
func readItalicAngle(data []byte) (float64, error) {
	info, err := post.Read(bytes.NewReader(data))
	if err != nil {
		return 0, &MalformedError{Table: "post", Err: err}
	}
	return info.ItalicAngle, nil
}

func fixedToFloat(x int32) float64 {
	return float64(x) / 65536
}

// floatToFixed converts x to 16.16 fixed point, truncating towards zero.
func floatToFixed(x float64) int32 {
	return int32(x * 65536)
}
