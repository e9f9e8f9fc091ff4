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

package fonttest

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/go-text/typesetting/font/opentype"

	"github.com/smy-10/font-parser/face"
)

// SFNT describes a minimal sfnt font file.  Only the tables needed for style
// resolution are written; the result has no glyphs.
type SFNT struct {
	Names []face.NameRecord

	// OS2 is nil to omit the OS/2 table.
	OS2 *OS2

	// Post is nil to omit the post table.
	Post *Post

	// MacStyle is stored in the head table.
	MacStyle uint16

	Axes      []face.AxisRecord
	Instances []face.NamedInstance

	// Extra holds additional tables, indexed by tag.
	Extra map[string][]byte
}

// Bytes returns the encoded font file.
func (s *SFNT) Bytes() []byte {
	tables := []opentype.Table{
		{Tag: opentype.MustNewTag("head"), Content: encodeHead(s.MacStyle)},
		{Tag: opentype.MustNewTag("name"), Content: EncodeNames(s.Names)},
	}
	if s.OS2 != nil {
		tables = append(tables, opentype.Table{Tag: opentype.MustNewTag("OS/2"), Content: encodeOS2(s.OS2)})
	}
	if s.Post != nil {
		tables = append(tables, opentype.Table{Tag: opentype.MustNewTag("post"), Content: encodePost(s.Post)})
	}
	if len(s.Axes) > 0 {
		tables = append(tables, opentype.Table{Tag: opentype.MustNewTag("fvar"), Content: EncodeFvar(s.Axes, s.Instances)})
	}
	for tag, content := range s.Extra {
		tables = append(tables, opentype.Table{Tag: opentype.MustNewTag(tag), Content: content})
	}
	slices.SortFunc(tables, func(a, b opentype.Table) int {
		switch {
		case a.Tag < b.Tag:
			return -1
		case a.Tag > b.Tag:
			return 1
		}
		return 0
	})
	return opentype.WriteTTF(tables)
}

// Collection returns a TrueType collection containing the given fonts.
func Collection(fonts ...[]byte) []byte {
	headerSize := 12 + 4*len(fonts)
	buf := &bytes.Buffer{}
	buf.WriteString("ttcf")
	binary.Write(buf, binary.BigEndian, uint32(0x00010000))
	binary.Write(buf, binary.BigEndian, uint32(len(fonts)))

	// Table offsets in a collection are relative to the start of the file,
	// so every font is rebased.
	offset := headerSize
	for _, f := range fonts {
		binary.Write(buf, binary.BigEndian, uint32(offset))
		offset += len(f)
	}
	offset = headerSize
	for _, f := range fonts {
		buf.Write(rebase(f, uint32(offset)))
		offset += len(f)
	}
	return buf.Bytes()
}

// Dfont returns a Mac resource fork containing the given fonts as "sfnt"
// resources.
func Dfont(fonts ...[]byte) []byte {
	const dataStart = 0x100
	data := &bytes.Buffer{}
	var offsets []uint32
	for _, f := range fonts {
		offsets = append(offsets, uint32(data.Len()))
		binary.Write(data, binary.BigEndian, uint32(len(f)))
		data.Write(f)
	}

	const typeList = 28
	refList := 2 + 8
	mapLength := typeList + refList + 12*len(fonts)
	mapStart := dataStart + data.Len()

	buf := &bytes.Buffer{}
	hdr := []uint32{dataStart, uint32(mapStart), uint32(data.Len()), uint32(mapLength)}
	binary.Write(buf, binary.BigEndian, hdr)
	buf.Write(make([]byte, dataStart-buf.Len()))
	buf.Write(data.Bytes())

	// resource map
	binary.Write(buf, binary.BigEndian, hdr)
	buf.Write(make([]byte, 8))
	binary.Write(buf, binary.BigEndian, []uint16{typeList, uint16(mapLength)})
	binary.Write(buf, binary.BigEndian, uint16(0)) // one type
	buf.WriteString("sfnt")
	binary.Write(buf, binary.BigEndian, []uint16{uint16(len(fonts) - 1), uint16(refList)})
	for i, offs := range offsets {
		binary.Write(buf, binary.BigEndian, []uint16{uint16(128 + i), 0xFFFF})
		binary.Write(buf, binary.BigEndian, []uint32{offs, 0})
	}
	return buf.Bytes()
}

// rebase adds delta to all table offsets in the directory of an sfnt file.
func rebase(font []byte, delta uint32) []byte {
	res := bytes.Clone(font)
	numTables := int(binary.BigEndian.Uint16(res[4:]))
	for i := 0; i < numTables; i++ {
		pos := 12 + 16*i + 8
		offs := binary.BigEndian.Uint32(res[pos:])
		binary.BigEndian.PutUint32(res[pos:], offs+delta)
	}
	return res
}

// EncodeNames returns a "name" table with the given records, in the given
// order.
func EncodeNames(records []face.NameRecord) []byte {
	numRec := len(records)
	startOfStrings := 6 + numRec*12
	res := make([]byte, startOfStrings)
	binary.BigEndian.PutUint16(res[2:], uint16(numRec))
	binary.BigEndian.PutUint16(res[4:], uint16(startOfStrings))

	var storage []byte
	for i, rec := range records {
		base := 6 + i*12
		binary.BigEndian.PutUint16(res[base:], rec.PlatformID)
		binary.BigEndian.PutUint16(res[base+2:], rec.EncodingID)
		binary.BigEndian.PutUint16(res[base+4:], rec.LanguageID)
		binary.BigEndian.PutUint16(res[base+6:], rec.NameID)
		binary.BigEndian.PutUint16(res[base+8:], uint16(len(rec.Value)))
		binary.BigEndian.PutUint16(res[base+10:], uint16(len(storage)))
		storage = append(storage, rec.Value...)
	}
	return append(res, storage...)
}

// EncodeFvar returns a "fvar" table.
func EncodeFvar(axes []face.AxisRecord, instances []face.NamedInstance) []byte {
	buf := &bytes.Buffer{}
	hdr := []uint16{
		1, 0, // version
		16, // axesArrayOffset
		2,  // reserved
		uint16(len(axes)),
		20,
		uint16(len(instances)),
		uint16(4 + 4*len(axes)),
	}
	binary.Write(buf, binary.BigEndian, hdr)
	for _, a := range axes {
		binary.Write(buf, binary.BigEndian, binary.BigEndian.Uint32(a.Tag[:]))
		binary.Write(buf, binary.BigEndian, []int32{toFixed(a.Min), toFixed(a.Default), toFixed(a.Max)})
		binary.Write(buf, binary.BigEndian, []uint16{0, a.NameID})
	}
	for _, inst := range instances {
		binary.Write(buf, binary.BigEndian, []uint16{inst.SubfamilyNameID, 0})
		for _, x := range inst.Coordinates {
			binary.Write(buf, binary.BigEndian, toFixed(x))
		}
	}
	return buf.Bytes()
}

// EncodeCmap returns a "cmap" table with a single format 0 subtable,
// mapping every character to glyph 0.
func EncodeCmap() []byte {
	res := make([]byte, 12+262)
	binary.BigEndian.PutUint16(res[2:], 1) // numTables
	binary.BigEndian.PutUint16(res[4:], 3) // Windows
	binary.BigEndian.PutUint16(res[6:], 1) // Unicode BMP
	binary.BigEndian.PutUint32(res[8:], 12)
	binary.BigEndian.PutUint16(res[14:], 262)
	return res
}

// EncodeMaxp returns a version 0.5 "maxp" table.
func EncodeMaxp(numGlyphs uint16) []byte {
	res := make([]byte, 6)
	binary.BigEndian.PutUint32(res, 0x00005000)
	binary.BigEndian.PutUint16(res[4:], numGlyphs)
	return res
}

func encodeOS2(info *OS2) []byte {
	res := make([]byte, 78)
	binary.BigEndian.PutUint16(res[4:], info.WeightClass)
	binary.BigEndian.PutUint16(res[6:], info.WidthClass)
	binary.BigEndian.PutUint16(res[62:], info.FsSelection)
	return res
}

type postEnc struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

func encodePost(info *Post) []byte {
	post := &postEnc{
		Version:     0x00030000,
		ItalicAngle: toFixed(info.ItalicAngle),
	}
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, post)
	return buf.Bytes()
}

func encodeHead(macStyle uint16) []byte {
	res := make([]byte, 54)
	binary.BigEndian.PutUint32(res[0:], 0x00010000)
	binary.BigEndian.PutUint32(res[12:], 0x5F0F3CF5)
	binary.BigEndian.PutUint16(res[18:], 1000)
	binary.BigEndian.PutUint16(res[44:], macStyle)
	return res
}

func toFixed(x float64) int32 {
	return int32(x * 65536)
}
