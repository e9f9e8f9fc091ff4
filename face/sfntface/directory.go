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
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic numbers at the start of sfnt font files and containers.
const (
	magicTrueType = 0x00010000
	magicCFF      = 0x4f54544f // "OTTO"
	magicApple    = 0x74727565 // "true"
	magicTTC      = 0x74746366 // "ttcf"
	magicWOFF     = 0x774f4646 // "wOFF"
	magicDfont    = 0x00000100
)

const (
	maxFonts = 2048

	// maxTableSize limits the decompressed size of a single WOFF table.
	maxTableSize = 64 << 20

	// maxZlibRatio is the largest expansion factor zlib can achieve.
	maxZlibRatio = 1032
)

var (
	errTruncated    = errors.New("sfnt: truncated font file")
	errNoTables     = errors.New("sfnt: no tables")
	errNoFonts      = errors.New("sfnt: empty font collection")
	errDfont        = errors.New("sfnt: invalid dfont resource map")
	errTooManyFonts = fmt.Errorf("sfnt: more than %d fonts in file", maxFonts)
)

// directory reads big-endian integers from a font file, failing
// instead of panicking when a read is out of range.
type directory struct {
	data []byte
	err  error
}

func (d *directory) u16(pos uint64) uint16 {
	if d.err != nil {
		return 0
	}
	if pos+2 > uint64(len(d.data)) {
		d.err = errTruncated
		return 0
	}
	return binary.BigEndian.Uint16(d.data[pos:])
}

func (d *directory) u32(pos uint64) uint32 {
	if d.err != nil {
		return 0
	}
	if pos+4 > uint64(len(d.data)) {
		d.err = errTruncated
		return 0
	}
	return binary.BigEndian.Uint32(d.data[pos:])
}

// fontOffsets returns the start of every font in the file.  For Mac dfont
// files, the table offsets inside each font are relative to the font start.
func fontOffsets(data []byte) (offsets []uint32, relative bool, err error) {
	d := &directory{data: data}
	switch d.u32(0) {
	case magicTTC:
		n := d.u32(8)
		if d.err == nil && n == 0 {
			return nil, false, errNoFonts
		}
		if n > maxFonts {
			return nil, false, errTooManyFonts
		}
		offsets = make([]uint32, 0, n)
		for i := range uint64(n) {
			offsets = append(offsets, d.u32(12+4*i))
		}
	case magicDfont:
		offsets = dfontOffsets(d)
		relative = true
	default:
		offsets = []uint32{0}
	}
	if d.err != nil {
		return nil, false, d.err
	}
	return offsets, relative, nil
}

// dfontOffsets locates the "sfnt" resources in a Mac resource fork.
func dfontOffsets(d *directory) []uint32 {
	const (
		mapHeaderSize = 28
		typeSize      = 8
		refSize       = 12
	)
	mapStart := uint64(d.u32(4))
	mapLength := uint64(d.u32(12))
	if d.err == nil && mapLength < mapHeaderSize {
		d.err = errDfont
	}
	tl := int16(d.u16(mapStart + 24))
	if d.err == nil && (tl < mapHeaderSize || uint64(tl)+2 > mapLength) {
		d.err = errDfont
	}
	if d.err != nil {
		return nil
	}
	typeList := uint64(tl)
	numTypes := uint64(d.u16(mapStart+typeList)) + 1

	var numFonts, refList uint64
	for i := range numTypes {
		if d.err != nil {
			return nil
		}
		pos := mapStart + typeList + 2 + typeSize*i
		if d.u32(pos) != 0x73666e74 { // "sfnt"
			continue
		}
		count := int16(d.u16(pos + 4))
		list := int16(d.u16(pos + 6))
		if count < 0 || list < 0 {
			d.err = errDfont
			return nil
		}
		numFonts = uint64(count) + 1
		refList = uint64(list)
	}
	if d.err == nil && numFonts == 0 {
		d.err = errDfont
	}
	if d.err != nil {
		return nil
	}

	offsets := make([]uint32, 0, numFonts)
	for i := range numFonts {
		pos := mapStart + typeList + refList + refSize*i
		// Data offsets are relative to the resource data, and every
		// resource starts with a four byte length.
		offsets = append(offsets, 0xffffff&d.u32(pos+4)+magicDfont+4)
	}
	return offsets
}

// checkTables verifies that the table directory of the font starting at
// start fits into the file, and that every table it lists lies within the
// file.  Compressed WOFF tables must have a plausible decompressed size.
func checkTables(data []byte, start uint32, relative bool) error {
	d := &directory{data: data}
	var base uint64
	if relative {
		base = uint64(start)
	}
	pos := uint64(start)

	isWOFF := d.u32(pos) == magicWOFF
	var numTables, entryStart, entrySize uint64
	if isWOFF {
		numTables = uint64(d.u16(pos + 12))
		entryStart, entrySize = pos+44, 20
	} else {
		numTables = uint64(d.u16(pos + 4))
		entryStart, entrySize = pos+12, 16
	}
	if d.err != nil {
		return d.err
	}
	if numTables == 0 {
		return errNoTables
	}
	if entryStart+numTables*entrySize > uint64(len(data)) {
		return errTruncated
	}

	for i := range numTables {
		e := entryStart + i*entrySize
		tag := string(data[e : e+4])

		var offset, length, origLength uint64
		if isWOFF {
			offset = uint64(d.u32(e + 4))
			length = uint64(d.u32(e + 8))
			origLength = uint64(d.u32(e + 12))
		} else {
			offset = uint64(d.u32(e + 8))
			length = uint64(d.u32(e + 12))
		}
		if base+offset+length > uint64(len(data)) {
			return &MalformedError{
				Table: tag,
				Err:   fmt.Errorf("%d bytes at offset %d exceed file size %d", length, base+offset, len(data)),
			}
		}
		if length != 0 && length < origLength {
			if origLength > maxTableSize || origLength > length*maxZlibRatio {
				return &MalformedError{
					Table: tag,
					Err:   fmt.Errorf("implausible decompressed size %d", origLength),
				}
			}
		}
	}
	return nil
}
