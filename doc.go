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

// Package fontparser extracts style information from font files.
//
// For every face in a font file, the package determines the family name
// and the available styles.  A static font has one style; a variable font
// has one style for every named instance.  For each style, weight, width
// and slant are resolved from the variation axes or, if the font has no
// corresponding axis, from the OS/2 and post tables.
//
// The result can be rendered as JSON:
//
//	fmt.Println(fontparser.ParseFile("NotoSans[wdth,wght].ttf"))
//
// which prints a document of the form
//
//	{"families":["Noto Sans"],"styles":[{"styleName":"Thin","familyName":"Noto Sans",
//	"width":"100.000000","weight":"100.000000","slant":"0.000000","axes":[...]}, ...]}
//
// The [Parser] type gives access to the resolved styles, and to the font
// faces behind them.
package fontparser
