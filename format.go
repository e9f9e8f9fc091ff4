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

package fontparser

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/smy-10/font-parser/style"
)

// Result holds the families and styles found in a font file.
type Result struct {
	Families []string
	Styles   []*style.Style
}

// Nearest returns the style closest to the target variation, or nil if
// there are no styles.
func (r *Result) Nearest(target style.Variation) *style.Style {
	return style.Nearest(r.Styles, target)
}

type jsonResult struct {
	Families []string    `json:"families"`
	Styles   []jsonStyle `json:"styles"`
}

type jsonStyle struct {
	StyleName  string     `json:"styleName"`
	FamilyName string     `json:"familyName"`
	Width      string     `json:"width"`
	Weight     string     `json:"weight"`
	Slant      string     `json:"slant"`
	Axes       []jsonAxis `json:"axes"`
}

type jsonAxis struct {
	Name         string `json:"name"`
	MinValue     string `json:"minValue"`
	MaxValue     string `json:"maxValue"`
	DefaultValue string `json:"defaultValue"`
}

// Format returns the result as a single line of JSON.  Numbers are written
// as strings with six decimal places.
func (r *Result) Format() string {
	out := jsonResult{
		Families: make([]string, 0, len(r.Families)),
		Styles:   make([]jsonStyle, 0, len(r.Styles)),
	}
	out.Families = append(out.Families, r.Families...)
	for _, s := range r.Styles {
		js := jsonStyle{
			StyleName:  s.StyleName(),
			FamilyName: s.FamilyName(),
			Width:      formatNumber(s.Width()),
			Weight:     formatNumber(s.Weight()),
			Slant:      formatNumber(s.Slant()),
			Axes:       make([]jsonAxis, 0, len(s.Axes())),
		}
		for _, a := range s.Axes() {
			js.Axes = append(js.Axes, jsonAxis{
				Name:         a.Name(),
				MinValue:     formatNumber(a.MinValue()),
				MaxValue:     formatNumber(a.MaxValue()),
				DefaultValue: formatNumber(a.DefaultValue()),
			})
		}
		out.Styles = append(out.Styles, js)
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(out)
	if err != nil {
		// only strings and slices are encoded
		panic(err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
}

// Indent returns the result as indented JSON, for human readers.
func (r *Result) Indent() string {
	buf := &bytes.Buffer{}
	err := json.Indent(buf, []byte(r.Format()), "", "  ")
	if err != nil {
		panic(err)
	}
	return buf.String()
}

// Nearest returns the style in styles closest to the target variation.
func Nearest(styles []*style.Style, target style.Variation) *style.Style {
	return style.Nearest(styles, target)
}

// Format returns the JSON description of the given result.
func Format(r *Result) string {
	return r.Format()
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
