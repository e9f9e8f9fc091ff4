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

// Package style enumerates the styles of a font face and resolves their
// weight, width and slant.
//
// A static face has exactly one style.  A variable font has one style per
// named instance, plus one style for the default coordinates unless a named
// instance already sits at the default.
package style

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/smy-10/font-parser/face"
	"github.com/smy-10/font-parser/name"
)

// Style is one selectable style of a face.
//
// A Style borrows the face and its axis catalog.  It must not be used after
// the face has been closed.
type Style struct {
	face      face.Face
	names     name.Table
	styleName string
	weight    float64
	width     float64
	slant     float64
	axes      *Catalog
	variation Variation
}

func newStyle(f face.Face, names name.Table, styleName string, axes *Catalog, v Variation) *Style {
	return &Style{
		face:      f,
		names:     names,
		styleName: styleName,
		weight:    resolveWeight(f, v),
		width:     resolveWidth(f, v),
		slant:     resolveSlant(f, v),
		axes:      axes,
		variation: v,
	}
}

// GetStyles returns all styles of the face f.
//
// If the family name cannot be determined, no styles are returned.
func GetStyles(f face.Face, names name.Table) []*Style {
	if names.Family() == "" {
		return nil
	}

	axes := MakeAxes(f, names)
	kind := f.Kind()

	var res []*Style
	hasDefaultInstance := false
	if kind == face.Variable {
		records := f.Axes()
		for _, inst := range f.NamedInstances() {
			instName := names.Get(inst.SubfamilyNameID)
			if instName == "" {
				continue
			}
			v := make(Variation, len(records))
			isDefault := true
			for i, axis := range records {
				var x float64
				if i < len(inst.Coordinates) {
					x = inst.Coordinates[i]
				}
				v[axis.Tag] = x
				if x != axis.Default {
					isDefault = false
				}
			}
			if isDefault {
				hasDefaultInstance = true
			}
			res = append(res, newStyle(f, names, instName, axes, v))
		}
	}

	if hasDefaultInstance {
		return res
	}
	styleName := names.Style()
	if styleName == "" {
		return res
	}

	v := make(Variation)
	switch kind {
	case face.MultipleMaster:
		// integer midpoint of the design range
		for i, axis := range f.Axes() {
			if i >= maxMMAxes {
				break
			}
			lo, hi := int32(axis.Min), int32(axis.Max)
			v[face.MMTag(i)] = float64(lo + (hi-lo)/2)
		}
	case face.Variable:
		for _, axis := range f.Axes() {
			v[axis.Tag] = axis.Default
		}
	}
	return append(res, newStyle(f, names, styleName, axes, v))
}

// maxMMAxes is the largest number of axes a multiple master font can have.
const maxMMAxes = 4

// FamilyName returns the family name of the face.
func (s *Style) FamilyName() string {
	return s.names.Family()
}

// StyleName returns the name of the style.
func (s *Style) StyleName() string {
	return s.styleName
}

// Weight returns the weight on the CSS scale, where 400 is normal and 700
// is bold.
func (s *Style) Weight() float64 {
	return s.weight
}

// Width returns the width as a percentage of the normal width.
func (s *Style) Width() float64 {
	return s.width
}

// Slant returns the slant angle in degrees.
func (s *Style) Slant() float64 {
	return s.slant
}

// Axes returns the design axes of the face.
func (s *Style) Axes() []*Axis {
	return s.axes.All()
}

// Catalog returns the axis catalog shared by all styles of the face.
func (s *Style) Catalog() *Catalog {
	return s.axes
}

// Variation returns a copy of the coordinates of the style.
func (s *Style) Variation() Variation {
	return maps.Clone(s.variation)
}

// Names returns the name table of the face.
func (s *Style) Names() name.Table {
	return s.names
}

// Distance returns the squared Euclidean distance between the style and
// the target variation.
//
// Weight, width and slant of the style are compared with the "wght",
// "wdth" and "slnt" entries of target.  All other axes are compared at their
// default value.  Missing entries in target contribute nothing.
func (s *Style) Distance(target Variation) float64 {
	var res float64

	d := s.weight - target.Get(face.Weight, s.weight)
	res += d * d
	d = s.width - target.Get(face.Width, s.width)
	res += d * d
	d = s.slant - target.Get(face.Slant, s.slant)
	res += d * d

	for _, axis := range s.axes.All() {
		switch axis.tag {
		case face.Weight, face.Width, face.Slant:
			continue
		}
		d := axis.def - target.Get(axis.tag, axis.def)
		res += d * d
	}
	return res
}

// Face applies the coordinates in v to the underlying face and returns the
// face.  Every axis is set to its coordinate in v, or to its default if v
// has no entry, clamped to the range of the axis.
//
// Faces without axes are returned unchanged.
func (s *Style) Face(v Variation) (face.Face, error) {
	axes := s.axes.All()
	if len(axes) == 0 {
		return s.face, nil
	}

	var err error
	if s.face.Kind() == face.MultipleMaster {
		coords := make([]int, len(axes))
		for i, axis := range axes {
			x := clamp(v.Get(axis.tag, axis.def), axis.min, axis.max)
			coords[i] = int(x + 0.5)
		}
		err = s.face.SetMMDesignCoordinates(coords)
	} else {
		coords := make([]float64, len(axes))
		for i, axis := range axes {
			coords[i] = clamp(v.Get(axis.tag, axis.def), axis.min, axis.max)
		}
		err = s.face.SetDesignCoordinates(coords)
	}
	if err != nil {
		return nil, fmt.Errorf("style %q: %w", s.styleName, err)
	}
	return s.face, nil
}

// Nearest returns the style with the smallest distance to target.  If
// several styles have the same distance, the first one is returned.
// Nearest returns nil if styles is empty.
func Nearest(styles []*Style, target Variation) *Style {
	var best *Style
	var bestDist float64
	for _, s := range styles {
		d := s.Distance(target)
		if best == nil || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
