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

package style

import (
	"github.com/smy-10/font-parser/face"
	"github.com/smy-10/font-parser/name"
)

// Axis describes a design axis of a face.  Axis values are immutable.
type Axis struct {
	tag  face.Tag
	name string
	min  float64
	def  float64
	max  float64
}

// Tag returns the four-byte axis tag.
func (a *Axis) Tag() face.Tag { return a.tag }

// Name returns the human readable name of the axis.
func (a *Axis) Name() string { return a.name }

// MinValue returns the smallest allowed coordinate.
func (a *Axis) MinValue() float64 { return a.min }

// DefaultValue returns the default coordinate.
func (a *Axis) DefaultValue() float64 { return a.def }

// MaxValue returns the largest allowed coordinate.
func (a *Axis) MaxValue() float64 { return a.max }

// Catalog is the ordered list of axes of a face.
// A Catalog is shared by all styles of the face.
type Catalog struct {
	axes []*Axis
}

// MakeAxes builds the axis catalog of a face.
//
// The axis name is taken from the name table if the font refers to a name
// record, and from the face otherwise.  If both are empty, the tag is used.
func MakeAxes(f face.Face, names name.Table) *Catalog {
	records := f.Axes()
	c := &Catalog{
		axes: make([]*Axis, len(records)),
	}
	for i, rec := range records {
		label := ""
		if rec.NameID != 0 {
			label = names.Get(rec.NameID)
		}
		if label == "" {
			label = rec.Name
		}
		if label == "" {
			label = rec.Tag.String()
		}
		c.axes[i] = &Axis{
			tag:  rec.Tag,
			name: label,
			min:  rec.Min,
			def:  rec.Default,
			max:  rec.Max,
		}
	}
	return c
}

// Len returns the number of axes.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.axes)
}

// All returns the axes in the order declared by the font.
// The returned slice must not be modified.
func (c *Catalog) All() []*Axis {
	if c == nil {
		return nil
	}
	return c.axes
}

// Find returns the axis with the given tag, or nil if there is no such
// axis.
func (c *Catalog) Find(tag face.Tag) *Axis {
	for _, a := range c.All() {
		if a.tag == tag {
			return a
		}
	}
	return nil
}
