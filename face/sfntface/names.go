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
	"errors"

	"github.com/smy-10/font-parser/face"
)

var (
	errNameVersion = errors.New("unsupported version")
	errNameHeader  = errors.New("records exceed table")
	errNameStorage = errors.New("invalid storage offset")
)

// decodeNames reads the raw records of a "name" table.
// Records which point outside the string storage are skipped.
func decodeNames(data []byte) ([]face.NameRecord, error) {
	if len(data) < 6 {
		return nil, &MalformedError{Table: "name", Err: errNameHeader}
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version > 1 {
		return nil, &MalformedError{Table: "name", Err: errNameVersion}
	}

	numRec := int(data[2])<<8 + int(data[3])
	storageOffset := int(data[4])<<8 + int(data[5])

	recBase := 6
	endOfHeader := recBase + 12*numRec
	if endOfHeader > len(data) {
		return nil, &MalformedError{Table: "name", Err: errNameHeader}
	}
	if storageOffset > len(data) {
		return nil, &MalformedError{Table: "name", Err: errNameStorage}
	}

	res := make([]face.NameRecord, 0, numRec)
	for i := 0; i < numRec; i++ {
		pos := recBase + i*12
		nameLen := int(data[pos+8])<<8 | int(data[pos+9])
		nameOffset := int(data[pos+10])<<8 | int(data[pos+11])

		start := storageOffset + nameOffset
		if start+nameLen > len(data) {
			continue
		}

		res = append(res, face.NameRecord{
			PlatformID: uint16(data[pos])<<8 | uint16(data[pos+1]),
			EncodingID: uint16(data[pos+2])<<8 | uint16(data[pos+3]),
			LanguageID: uint16(data[pos+4])<<8 | uint16(data[pos+5]),
			NameID:     uint16(data[pos+6])<<8 | uint16(data[pos+7]),
			Value:      data[start : start+nameLen],
		})
	}
	return res, nil
}
