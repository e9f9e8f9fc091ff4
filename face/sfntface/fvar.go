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
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/smy-10/font-parser/face"
)

const fvarAxisSize = 20

type fvarHeader struct {
	MajorVersion    uint16
	MinorVersion    uint16
	AxesArrayOffset uint16
	Reserved        uint16
	AxisCount       uint16
	AxisSize        uint16
	InstanceCount   uint16
	InstanceSize    uint16
}

type fvarAxis struct {
	Tag     uint32
	Min     int32
	Default int32
	Max     int32
	Flags   uint16
	NameID  uint16
}

// decodeFvar reads the axes and named instances from a "fvar" table.
func decodeFvar(data []byte) ([]face.AxisRecord, []face.NamedInstance, error) {
	r := bytes.NewReader(data)
	hdr := &fvarHeader{}
	err := binary.Read(r, binary.BigEndian, hdr)
	if err != nil {
		return nil, nil, &MalformedError{Table: "fvar", Err: err}
	}
	if hdr.MajorVersion != 1 {
		return nil, nil, &MalformedError{
			Table: "fvar",
			Err:   fmt.Errorf("unsupported version %d.%d", hdr.MajorVersion, hdr.MinorVersion),
		}
	}
	if hdr.AxisSize != fvarAxisSize {
		return nil, nil, &MalformedError{
			Table: "fvar",
			Err:   fmt.Errorf("invalid axis size %d", hdr.AxisSize),
		}
	}
	numAxes := int(hdr.AxisCount)
	instSize := int(hdr.InstanceSize)
	if instSize != 4+4*numAxes && instSize != 6+4*numAxes {
		return nil, nil, &MalformedError{
			Table: "fvar",
			Err:   fmt.Errorf("invalid instance size %d", instSize),
		}
	}
	axesStart := int(hdr.AxesArrayOffset)
	instStart := axesStart + numAxes*fvarAxisSize
	end := instStart + int(hdr.InstanceCount)*instSize
	if axesStart < 16 || end > len(data) {
		return nil, nil, &MalformedError{Table: "fvar", Err: errors.New("arrays exceed table")}
	}

	axes := make([]face.AxisRecord, numAxes)
	seen := make(map[face.Tag]bool, numAxes)
	r.Reset(data[axesStart:instStart])
	for i := range axes {
		a := &fvarAxis{}
		binary.Read(r, binary.BigEndian, a) // length checked above
		tag := face.TagFromUint32(a.Tag)
		if seen[tag] {
			return nil, nil, &MalformedError{
				Table: "fvar",
				Err:   fmt.Errorf("duplicate axis %q", tag),
			}
		}
		seen[tag] = true
		axes[i] = face.AxisRecord{
			Tag:     tag,
			NameID:  a.NameID,
			Min:     fixedToFloat(a.Min),
			Default: fixedToFloat(a.Default),
			Max:     fixedToFloat(a.Max),
		}
	}

	instances := make([]face.NamedInstance, hdr.InstanceCount)
	for i := range instances {
		base := instStart + i*instSize
		coords := make([]float64, numAxes)
		for j := range coords {
			pos := base + 4 + 4*j
			coords[j] = fixedToFloat(int32(binary.BigEndian.Uint32(data[pos:])))
		}
		instances[i] = face.NamedInstance{
			SubfamilyNameID: binary.BigEndian.Uint16(data[base:]),
			Coordinates:     coords,
		}
	}

	return axes, instances, nil
}
