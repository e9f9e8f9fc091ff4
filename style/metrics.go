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
	"golang.org/x/exp/constraints"

	"github.com/smy-10/font-parser/face"
)

// Variation maps axis tags to design coordinates.
type Variation map[face.Tag]float64

// Get returns the coordinate for tag, or def if the variation has no
// entry for tag.
func (v Variation) Get(tag face.Tag, def float64) float64 {
	if x, ok := v[tag]; ok {
		return x
	}
	return def
}

// weightClasses maps the OS/2 weight classes 0-9, used by some old fonts,
// to CSS weights.
var weightClasses = [10]float64{100, 100, 160, 240, 320, 400, 550, 700, 800, 900}

// widthClasses maps OS/2 width classes to percentages of the normal width.
var widthClasses = map[uint16]float64{
	1: 50,
	2: 62.5,
	3: 75,
	4: 87.5,
	5: 100,
	6: 112.5,
	7: 125,
	8: 150,
	9: 200,
}

func resolveWeight(f face.Face, v Variation) float64 {
	if x, ok := v[face.Weight]; ok {
		return x
	}
	if class, ok := f.WeightClass(); ok {
		if int(class) < len(weightClasses) {
			return weightClasses[class]
		}
		return clamp(float64(class), 10, 1000)
	}
	return 400
}

func resolveWidth(f face.Face, v Variation) float64 {
	if x, ok := v[face.Width]; ok {
		return x
	}
	if class, ok := f.WidthClass(); ok {
		if x, ok := widthClasses[class]; ok {
			return x
		}
	}
	return 100
}

// resolveSlant returns the slant angle in degrees, from -90 to 90.  Negative
// values lean forward, positive values lean backward.
func resolveSlant(f face.Face, v Variation) float64 {
	if x, ok := v[face.Slant]; ok {
		return clamp(x, -90, 90)
	}
	if angle, ok := f.ItalicAngle(); ok {
		return clamp(angle, -90, 90)
	}
	return 0
}

func clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
