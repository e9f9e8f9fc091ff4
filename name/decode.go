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
	"errors"
	"strings"

	"golang.org/x/text/transform"

	"github.com/smy-10/font-parser/face"
)

// bufSize is the size of the output buffer used by the conversion loop.
const bufSize = 256

var errNoProgress = errors.New("name: conversion made no progress")

// Decode converts the value of a name record to UTF-8.
//
// Decode never fails: if the encoding is not known, or if the conversion
// fails, the raw bytes are returned unchanged.
func Decode(rec face.NameRecord) string {
	raw := string(rec.Value)

	src := resolve(rec)
	if src == nil || src.Encoding == nil {
		return raw
	}

	res, err := convert(src.Encoding.NewDecoder(), rec.Value)
	if err != nil || res == "" {
		return raw
	}
	return strings.ReplaceAll(res, "\x00", "")
}

// EncodingName returns the name of the text encoding Decode uses for rec.
// If the bytes are passed through unchanged, the empty string is returned.
func EncodingName(rec face.NameRecord) string {
	src := resolve(rec)
	if src == nil || src.Encoding == nil {
		return ""
	}
	return src.Name
}

func resolve(rec face.NameRecord) *sourceEncoding {
	src := lookupEncoding(rec.PlatformID, rec.EncodingID)
	if src != macRoman {
		return src
	}

	if rec.LanguageID == macLangEnglish && looksLikeSJIS(rec.Value) {
		return shiftJIS
	} else if rec.LanguageID >= 0x100 {
		return lookupMacRomanFake(rec.LanguageID)
	}
	return src
}

// convert runs the transformer over src, using a fixed size output buffer.
func convert(t transform.Transformer, src []byte) (string, error) {
	var buf [bufSize]byte
	var out strings.Builder
	for {
		nDst, nSrc, err := t.Transform(buf[:], src, true)
		out.Write(buf[:nDst])
		src = src[nSrc:]
		switch {
		case err == transform.ErrShortDst:
			if nDst == 0 && nSrc == 0 {
				return "", errNoProgress
			}
		case err != nil:
			return "", err
		default:
			return out.String(), nil
		}
	}
}
