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

// Command libfontparser builds the font parser as a C shared library:
//
//	go build -buildmode=c-shared -o libfontparser.so ./cmd/libfontparser
//
// The strings returned by parseFontData and parseFontFile are allocated
// with malloc and must be released with freeString.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	fontparser "github.com/smy-10/font-parser"
)

//export parseFontData
func parseFontData(data *C.char, length C.int) *C.char {
	var buf []byte
	if data != nil && length > 0 {
		buf = C.GoBytes(unsafe.Pointer(data), length)
	}
	return C.CString(fontparser.ParseBytes(buf))
}

//export parseFontFile
func parseFontFile(path *C.char) *C.char {
	var res string
	if path == nil {
		res = fontparser.ParseBytes(nil)
	} else {
		res = fontparser.ParseFile(C.GoString(path))
	}
	return C.CString(res)
}

//export freeString
func freeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
