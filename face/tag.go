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

// Tag is a four-byte identifier, used for variation axes.
type Tag [4]byte

// MakeTag converts a string of length 4 bytes to a Tag.
func MakeTag(s string) Tag {
	if len(s) != 4 {
		panic("tag must be 4 bytes")
	}
	return Tag{s[0], s[1], s[2], s[3]}
}

// TagFromUint32 converts the big-endian encoding of a tag to a Tag.
func TagFromUint32(x uint32) Tag {
	return Tag{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)}
}

func (tag Tag) String() string {
	return string(tag[:])
}

// Registered axis tags.
var (
	Weight = MakeTag("wght")
	Width  = MakeTag("wdth")
	Slant  = MakeTag("slnt")
)

// MMTag returns the tag used for axis i of a multiple master font.
// The tags are "VAR0", "VAR1", ...
func MMTag(i int) Tag {
	tag := MakeTag("VAR0")
	tag[3] += byte(i)
	return tag
}
