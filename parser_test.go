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
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/smy-10/font-parser/face"
	"github.com/smy-10/font-parser/face/loader"
	"github.com/smy-10/font-parser/internal/fonttest"
	"github.com/smy-10/font-parser/style"
)

const emptyResult = `{"families":[],"styles":[]}`

func TestEmptyInput(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		got := ParseBytes(data)
		if got != emptyResult {
			t.Errorf("%q != %q", got, emptyResult)
		}
	}

	p := NewParser(nil)
	if err := p.Run(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestGarbage(t *testing.T) {
	got := ParseBytes([]byte("this is not a font"))
	if got != emptyResult {
		t.Errorf("%q != %q", got, emptyResult)
	}
}

// oversizedTable returns a font where the directory entry of the fvar table
// claims far more data than the file contains.
func oversizedTable() []byte {
	data := variableFont()
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	for i := range numTables {
		e := 12 + 16*i
		if string(data[e:e+4]) == "fvar" {
			binary.BigEndian.PutUint32(data[e+12:], 0xD7000000)
		}
	}
	return data
}

func TestOversizedTable(t *testing.T) {
	data := oversizedTable()
	if got := ParseBytes(data); got != emptyResult {
		t.Errorf("%q != %q", got, emptyResult)
	}

	p := NewParser(nil)
	defer p.Close()
	if err := p.Run(data); err == nil {
		t.Error("font with oversized table accepted")
	}
}

func TestZeroParser(t *testing.T) {
	var p Parser
	defer p.Close()
	if err := p.Run(goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if p.Family() != "Go" {
		t.Errorf("%q != %q", p.Family(), "Go")
	}
	if faces, _ := p.Faces(); len(faces) != 1 {
		t.Errorf("got %d faces", len(faces))
	}
}

func TestSample(t *testing.T) {
	data := (&fonttest.SFNT{
		Names: []face.NameRecord{
			fonttest.Windows(1, "Sample"),
			fonttest.Windows(2, "Regular"),
		},
		OS2: &fonttest.OS2{WeightClass: 5, WidthClass: 5},
	}).Bytes()

	got := ParseBytes(data)
	want := `{"families":["Sample"],"styles":[{"styleName":"Regular","familyName":"Sample","width":"100.000000","weight":"400.000000","slant":"0.000000","axes":[]}]}`
	if got != want {
		t.Errorf("wrong result\n got %s\nwant %s", got, want)
	}
}

func TestGoFonts(t *testing.T) {
	got := ParseBytes(goregular.TTF)
	want := `{"families":["Go"],"styles":[{"styleName":"Regular","familyName":"Go","width":"100.000000","weight":"400.000000","slant":"0.000000","axes":[]}]}`
	if got != want {
		t.Errorf("wrong result\n got %s\nwant %s", got, want)
	}

	p := NewParser(nil)
	defer p.Close()
	if err := p.Run(gobolditalic.TTF); err != nil {
		t.Fatal(err)
	}
	res := p.Result()
	if len(res.Styles) != 1 {
		t.Fatalf("got %d styles", len(res.Styles))
	}
	s := res.Styles[0]
	if s.StyleName() != "Bold Italic" || s.Weight() != 600 || s.Slant() != -11 {
		t.Errorf("unexpected style %q %g %g", s.StyleName(), s.Weight(), s.Slant())
	}
}

func variableFont() []byte {
	return (&fonttest.SFNT{
		Names: []face.NameRecord{
			fonttest.Windows(1, "Flex"),
			fonttest.Windows(2, "Regular"),
			fonttest.Windows(256, "Weight"),
			fonttest.Windows(257, "Slant"),
			fonttest.Windows(258, "Thin"),
			fonttest.Windows(259, "Black Oblique"),
		},
		OS2: &fonttest.OS2{WeightClass: 400, WidthClass: 5},
		Axes: []face.AxisRecord{
			{Tag: face.Weight, NameID: 256, Min: 100, Default: 400, Max: 900},
			{Tag: face.Slant, NameID: 257, Min: -10, Default: 0, Max: 0},
		},
		Instances: []face.NamedInstance{
			{SubfamilyNameID: 258, Coordinates: []float64{100, 0}},
			{SubfamilyNameID: 259, Coordinates: []float64{900, -10}},
		},
	}).Bytes()
}

func TestVariable(t *testing.T) {
	p := NewParser(nil)
	defer p.Close()
	if err := p.Run(variableFont()); err != nil {
		t.Fatal(err)
	}

	type summary struct {
		Name                 string
		Weight, Width, Slant float64
	}
	var got []summary
	for _, s := range p.Result().Styles {
		got = append(got, summary{s.StyleName(), s.Weight(), s.Width(), s.Slant()})
	}
	want := []summary{
		{"Thin", 100, 100, 0},
		{"Black Oblique", 900, 100, -10},
		{"Regular", 400, 100, 0},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("styles (-want +got):\n%s", d)
	}

	var doc struct {
		Styles []struct {
			Axes []map[string]string `json:"axes"`
		} `json:"styles"`
	}
	if err := json.Unmarshal([]byte(p.Format()), &doc); err != nil {
		t.Fatal(err)
	}
	wantAxes := []map[string]string{
		{"name": "Weight", "minValue": "100.000000", "maxValue": "900.000000", "defaultValue": "400.000000"},
		{"name": "Slant", "minValue": "-10.000000", "maxValue": "0.000000", "defaultValue": "0.000000"},
	}
	for i, s := range doc.Styles {
		if d := cmp.Diff(wantAxes, s.Axes); d != "" {
			t.Errorf("style %d axes (-want +got):\n%s", i, d)
		}
	}

	nearest := p.Result().Nearest(style.Variation{face.Weight: 850})
	if nearest == nil || nearest.StyleName() != "Black Oblique" {
		t.Errorf("unexpected nearest style %v", nearest)
	}

	f, err := nearest.Face(style.Variation{face.Weight: 1000})
	if err != nil {
		t.Fatal(err)
	}
	coords := f.(interface{ DesignCoordinates() []float64 }).DesignCoordinates()
	if d := cmp.Diff([]float64{900, 0}, coords); d != "" {
		t.Errorf("coordinates (-want +got):\n%s", d)
	}
}

func TestCollection(t *testing.T) {
	font := func(family string) []byte {
		return (&fonttest.SFNT{
			Names: []face.NameRecord{
				fonttest.Windows(1, family),
				fonttest.Windows(2, "Regular"),
			},
		}).Bytes()
	}
	data := fonttest.Collection(font("Zeta"), font("Alpha"), font("Zeta"))

	p := NewParser(nil)
	defer p.Close()
	if err := p.Run(data); err != nil {
		t.Fatal(err)
	}
	if p.Family() != "Zeta" {
		t.Errorf("%q != %q", p.Family(), "Zeta")
	}
	res := p.Result()
	if d := cmp.Diff([]string{"Alpha", "Zeta"}, res.Families); d != "" {
		t.Errorf("families (-want +got):\n%s", d)
	}
	if len(res.Styles) != 3 {
		t.Errorf("got %d styles, want 3", len(res.Styles))
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "go.ttf")
	if err := os.WriteFile(fname, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	got := ParseFile(fname)
	if got == emptyResult {
		t.Error("no styles found in file")
	}

	missing := filepath.Join(dir, "missing.ttf")
	if got := ParseFile(missing); got != emptyResult {
		t.Errorf("%q != %q", got, emptyResult)
	}

	p := NewParser(nil)
	err := p.RunFile(missing)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Path != missing {
		t.Errorf("unexpected error %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestClear(t *testing.T) {
	fake := &fonttest.Face{
		Family: "Fake",
		Style:  "Regular",
	}
	l := loader.New()
	l.Register(loader.FontTypeSfnt, loader.IsSfnt, func([]byte) ([]face.Face, error) {
		return []face.Face{fake}, nil
	})

	p := NewParser(&Options{Loader: l})
	if err := p.Run(goregular.TTF); err != nil {
		t.Fatal(err)
	}
	if p.Family() != "Fake" {
		t.Errorf("%q != %q", p.Family(), "Fake")
	}

	// a new run discards the old state, even if it fails
	err := p.Run([]byte("garbage"))
	if !errors.Is(err, loader.ErrUnknownFormat) {
		t.Errorf("unexpected error %v", err)
	}
	if fake.NumClose != 1 {
		t.Errorf("face closed %d times", fake.NumClose)
	}
	if p.Format() != emptyResult || p.Family() != "" {
		t.Errorf("old results kept: %s", p.Format())
	}

	p.Close()
	if fake.NumClose != 1 {
		t.Errorf("face closed %d times", fake.NumClose)
	}
}

func TestNoFaces(t *testing.T) {
	l := loader.New()
	l.Register(loader.FontTypeSfnt, loader.IsSfnt, func([]byte) ([]face.Face, error) {
		return nil, nil
	})
	p := NewParser(&Options{Loader: l})
	if err := p.Run(goregular.TTF); !errors.Is(err, ErrNoFaces) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestEscaping(t *testing.T) {
	data := (&fonttest.SFNT{
		Names: []face.NameRecord{
			fonttest.Windows(1, `Quote "Sans" <&>`),
			fonttest.Windows(2, `Back\slash`),
		},
	}).Bytes()
	got := ParseBytes(data)

	var doc struct {
		Families []string `json:"families"`
		Styles   []struct {
			StyleName string `json:"styleName"`
		} `json:"styles"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid JSON %s: %v", got, err)
	}
	if d := cmp.Diff([]string{`Quote "Sans" <&>`}, doc.Families); d != "" {
		t.Errorf("families (-want +got):\n%s", d)
	}
	if len(doc.Styles) != 1 || doc.Styles[0].StyleName != `Back\slash` {
		t.Errorf("unexpected styles %v", doc.Styles)
	}
}

func FuzzParseBytes(f *testing.F) {
	f.Add(goregular.TTF)
	f.Add(variableFont())
	f.Add(oversizedTable())
	f.Add([]byte("%!PS-AdobeFont-1.0: X\n/FamilyName (X) def\n"))
	f.Fuzz(func(t *testing.T, data []byte) {
		got := ParseBytes(data)
		if !json.Valid([]byte(got)) {
			t.Errorf("invalid JSON: %q", got)
		}
	})
}
