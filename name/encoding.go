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

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Platform IDs used in name records.
const (
	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformISO       = 2
	PlatformWindows   = 3
)

// dontCare as an encoding ID matches every encoding of a platform.
const dontCare = 0xFFFF

const (
	macLangEnglish = 0

	// Windows language IDs which sometimes appear in Macintosh records.
	msLangJapanese  = 0x0411
	msLangEnglishUS = 0x0409
)

// sourceEncoding is a text encoding used in name records.
// If Encoding is nil, no decoder is available and the bytes are passed
// through unchanged.
type sourceEncoding struct {
	Name     string
	Encoding encoding.Encoding
}

var (
	utf16BE   = &sourceEncoding{"UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	macRoman  = &sourceEncoding{"MACINTOSH", charmap.Macintosh}
	shiftJIS  = &sourceEncoding{"SJIS", japanese.ShiftJIS}
	windowsJP = &sourceEncoding{"SJIS-WIN", japanese.ShiftJIS}
	gb2312    = &sourceEncoding{"GB2312", simplifiedchinese.GBK}
	big5      = &sourceEncoding{"BIG-5", traditionalchinese.Big5}
	wansung   = &sourceEncoding{"Wansung", korean.EUCKR}
	johab     = &sourceEncoding{"Johab", nil}
	ascii     = &sourceEncoding{"ASCII", mustIANA("US-ASCII")}
	latin1    = &sourceEncoding{"ISO-8859-1", charmap.ISO8859_1}
)

func mustIANA(name string) encoding.Encoding {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		panic("name: no IANA encoding " + name)
	}
	return enc
}

// platformEncodings is searched in order, the first match wins.
var platformEncodings = []struct {
	platformID uint16
	encodingID uint16
	enc        *sourceEncoding
}{
	{PlatformUnicode, dontCare, utf16BE},
	{PlatformMacintosh, 0, macRoman},
	{PlatformMacintosh, 1, shiftJIS},
	{PlatformWindows, 0, utf16BE},
	{PlatformWindows, 1, utf16BE},
	{PlatformWindows, 2, windowsJP},
	{PlatformWindows, 3, gb2312},
	{PlatformWindows, 4, big5},
	{PlatformWindows, 5, wansung},
	{PlatformWindows, 6, johab},
	{PlatformWindows, 10, utf16BE},
	{PlatformISO, 0, ascii},
	{PlatformISO, 1, utf16BE},
	{PlatformISO, 2, latin1},
}

// macRomanFakes lists the Windows language IDs for which Macintosh Roman
// records can be decoded.
var macRomanFakes = []struct {
	languageID uint16
	enc        *sourceEncoding
}{
	{msLangJapanese, windowsJP},
	{msLangEnglishUS, ascii},
}

func lookupEncoding(platformID, encodingID uint16) *sourceEncoding {
	for _, e := range platformEncodings {
		if e.platformID == platformID && (e.encodingID == dontCare || e.encodingID == encodingID) {
			return e.enc
		}
	}
	return nil
}

func lookupMacRomanFake(languageID uint16) *sourceEncoding {
	for _, f := range macRomanFakes {
		if f.languageID == languageID {
			return f.enc
		}
	}
	return nil
}

// looksLikeSJIS reports whether more than a third of the bytes have the
// high bit set.
func looksLikeSJIS(b []byte) bool {
	var nHigh, nLow int
	for _, c := range b {
		if c&0x80 != 0 {
			nHigh++
		} else {
			nLow++
		}
	}
	return nHigh*2 > nLow
}
