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

package type1face

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript"
	"seehuhn.de/go/postscript/type1"

	"github.com/smy-10/font-parser/face"
)

const mmHeader = `%!PS-AdobeFont-1.0: TestMM 001.000
%%CreationDate: Thu Jan  1 00:00:00 1970
11 dict begin
/FontInfo 10 dict dup begin
/FullName (Test MM) readonly def
/FamilyName (Test MM) readonly def
/Weight (All) readonly def
/BlendDesignPositions [[0 0] [1 0] [0 1] [1 1]] def
/BlendDesignMap [[[200 0] [400 0.4] [900 1]] [[50 0] [150 1]]] def
/BlendAxisTypes [/Weight /Width] def
end readonly def
/FontName /TestMM def
currentfile eexec
`

func TestFaceNames(t *testing.T) {
	type testCase struct {
		in                  type1.FontInfo
		wantFamily, wantSty string
	}
	cases := []testCase{
		{type1.FontInfo{FamilyName: "Times", FullName: "Times Bold Italic", Weight: "Bold"}, "Times", "Bold Italic"},
		{type1.FontInfo{FamilyName: "Times", FullName: "Times", Weight: "Roman"}, "Times", "Regular"},
		{type1.FontInfo{FamilyName: "Nimbus Sans", FullName: "NimbusSans-Bold"}, "Nimbus Sans", "Bold"},
		{type1.FontInfo{FamilyName: "Courier", FullName: "Something Else", Weight: "Medium"}, "Courier", "Medium"},
		{type1.FontInfo{FamilyName: "Courier"}, "Courier", "Regular"},
		{type1.FontInfo{FontName: "Symbol"}, "Symbol", "Regular"},
		{type1.FontInfo{FontName: "Symbol", Weight: "Medium"}, "Symbol", "Medium"},
	}
	for i, c := range cases {
		family, style := faceNames(&c.in)
		if family != c.wantFamily || style != c.wantSty {
			t.Errorf("%d: got %q/%q, want %q/%q", i, family, style, c.wantFamily, c.wantSty)
		}
	}
}

func TestMultipleMaster(t *testing.T) {
	f, err := Open([]byte(mmHeader))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if f.Kind() != face.MultipleMaster {
		t.Errorf("kind = %s", f.Kind())
	}
	want := []face.AxisRecord{
		{Tag: face.MakeTag("VAR0"), Name: "Weight", Min: 200, Default: 550, Max: 900},
		{Tag: face.MakeTag("VAR1"), Name: "Width", Min: 50, Default: 100, Max: 150},
	}
	if d := cmp.Diff(want, f.Axes()); d != "" {
		t.Errorf("axes (-want +got):\n%s", d)
	}
	if f.LegacyFamilyName() != "Test MM" {
		t.Errorf("%q != %q", f.LegacyFamilyName(), "Test MM")
	}
	if f.LegacyStyleName() != "Regular" {
		t.Errorf("%q != %q", f.LegacyStyleName(), "Regular")
	}
	if _, ok := f.WeightClass(); ok {
		t.Error("Type 1 font reports a weight class")
	}

	err = f.SetDesignCoordinates([]float64{399.6, 100.2})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{400, 100}, f.DesignCoordinates()); d != "" {
		t.Errorf("coordinates (-want +got):\n%s", d)
	}
	if err := f.SetMMDesignCoordinates([]int{1}); err == nil {
		t.Error("wrong number of coordinates accepted")
	}
}

func TestPFBSegments(t *testing.T) {
	var data []byte
	seg := func(tp byte, body []byte) {
		var hdr [6]byte
		hdr[0] = 0x80
		hdr[1] = tp
		binary.LittleEndian.PutUint32(hdr[2:], uint32(len(body)))
		data = append(data, hdr[:]...)
		data = append(data, body...)
	}
	seg(1, []byte(mmHeader))
	seg(2, []byte{0x01, 0x02, 0x03})
	seg(1, []byte("cleartomark\n"))
	data = append(data, 0x80, 0x03)

	if !IsType1(data) {
		t.Fatal("PFB data not recognised")
	}
	text, err := clearText(data)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.TrimSuffix(mmHeader, "currentfile eexec\n")
	if got := string(text); got != want {
		t.Errorf("clear text %q", got)
	}

	f, err := Open(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Axes()) != 2 {
		t.Errorf("got %d axes, want 2", len(f.Axes()))
	}
}

func TestFontDictOnStack(t *testing.T) {
	font := `%!FontType1-1.0: Plain
12 dict begin
/FontInfo 4 dict dup begin
/FullName (Plain Serif Bold) readonly def
/FamilyName (Plain Serif) readonly def
/Weight (Bold) readonly def
end readonly def
/FontName /PlainSerif-Bold def
/Encoding StandardEncoding def
/FontMatrix [0.001 0 0 0.001 0 0] readonly def
currentdict end
currentfile eexec
`
	f, err := Open([]byte(font))
	if err != nil {
		t.Fatal(err)
	}
	if f.LegacyFamilyName() != "Plain Serif" || f.LegacyStyleName() != "Bold" {
		t.Errorf("got %q/%q", f.LegacyFamilyName(), f.LegacyStyleName())
	}
	if f.Kind() != face.Static {
		t.Errorf("kind = %s", f.Kind())
	}
}

func TestNotType1(t *testing.T) {
	_, err := Open([]byte("\x00\x01\x00\x00"))
	if err == nil {
		t.Error("sfnt data accepted")
	}
}

func TestBlendAxesMalformed(t *testing.T) {
	pair := func(a, b postscript.Object) postscript.Array {
		return postscript.Array{a, b}
	}
	cases := []postscript.Object{
		nil,
		postscript.Integer(3),
		postscript.Array{postscript.Array{
			pair(postscript.String("x"), postscript.Integer(0)),
			pair(postscript.Integer(1), postscript.Integer(1)),
		}},
		postscript.Array{postscript.Array{}},
		postscript.Array{postscript.Array{postscript.Array{postscript.Integer(1)}}},
		postscript.Array{postscript.Integer(7)},
	}
	for i, m := range cases {
		info := postscript.Dict{
			"BlendAxisTypes": postscript.Array{postscript.Name("Weight")},
		}
		if m != nil {
			info["BlendDesignMap"] = m
		}
		got := blendAxes(postscript.Dict{"FontInfo": info})
		if got != nil {
			t.Errorf("%d: got axes %v", i, got)
		}
	}
}

func TestBlendAxesTopLevel(t *testing.T) {
	fd := postscript.Dict{
		"FontInfo":       postscript.Dict{},
		"BlendAxisTypes": postscript.Array{postscript.Name("Weight")},
		"BlendDesignMap": postscript.Array{postscript.Array{
			postscript.Array{postscript.Real(300.5), postscript.Integer(0)},
			postscript.Array{postscript.Integer(700), postscript.Integer(1)},
		}},
	}
	want := []face.AxisRecord{
		{Tag: face.MakeTag("VAR0"), Name: "Weight", Min: 300.5, Default: 500.25, Max: 700},
	}
	if d := cmp.Diff(want, blendAxes(fd)); d != "" {
		t.Errorf("axes (-want +got):\n%s", d)
	}
}

func TestProgramError(t *testing.T) {
	font := `%!FontType1-1.0: Broken
10 dict begin
/FontName /Broken def
/FontInfo 3 dict dup begin
/BlendDesignMap [[[x 0] [1 1]]] def
/BlendAxisTypes [/Weight] def
end def
currentfile eexec
`
	f, err := Open([]byte(font))
	if err != nil {
		t.Fatal(err)
	}
	if f.LegacyFamilyName() != "Broken" {
		t.Errorf("%q != %q", f.LegacyFamilyName(), "Broken")
	}
	if f.Axes() != nil {
		t.Errorf("got axes %v", f.Axes())
	}

	_, err = Open([]byte("%!FontType1-1.0: Empty\n1 2 add\n"))
	if err == nil {
		t.Error("font without font dictionary accepted")
	}
}
