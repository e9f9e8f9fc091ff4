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
	"os"

	"github.com/smy-10/font-parser/face"
	"github.com/smy-10/font-parser/face/loader"
	"github.com/smy-10/font-parser/name"
	"github.com/smy-10/font-parser/style"
)

// Options control the behaviour of a [Parser].
type Options struct {
	// Loader is used to read font files.  If this is nil, [loader.Default]
	// is used.
	Loader *loader.Loader
}

// Parser extracts the styles from font files.
// The zero value is ready to use and reads fonts with [loader.Default].
//
// A Parser owns the faces it has opened.  The styles returned by a parser
// are valid until the next call to Run, RunFile, Clear or Close.
//
// A Parser must not be used concurrently from multiple goroutines.
type Parser struct {
	loader *loader.Loader

	faces    []face.Face
	names    []name.Table
	family   string
	families map[string]struct{}
	styles   []*style.Style
}

// NewParser creates a new parser.  The options can be nil.
func NewParser(opt *Options) *Parser {
	p := &Parser{
		families: make(map[string]struct{}),
	}
	if opt != nil && opt.Loader != nil {
		p.loader = opt.Loader
	} else {
		p.loader = loader.Default()
	}
	return p
}

// Run extracts the styles of all faces in data.
// Previous results are discarded, even if an error is returned.
func (p *Parser) Run(data []byte) error {
	p.Clear()
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if p.loader == nil {
		p.loader = loader.Default()
	}
	if p.families == nil {
		p.families = make(map[string]struct{})
	}

	faces, err := p.loader.Open(data)
	if err != nil {
		return err
	}
	if len(faces) == 0 {
		return ErrNoFaces
	}
	p.faces = faces

	for _, f := range faces {
		t := name.Build(f)
		p.names = append(p.names, t)

		family := t.Family()
		if family == "" {
			continue
		}
		p.families[family] = struct{}{}
		if p.family == "" {
			p.family = family
		}
	}

	for i, f := range faces {
		p.styles = append(p.styles, style.GetStyles(f, p.names[i])...)
	}
	return nil
}

// RunFile extracts the styles of all faces in the named file.
func (p *Parser) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		p.Clear()
		return &LoadError{Path: path, Err: err}
	}
	err = p.Run(data)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// Family returns the family name of the first face with a family name.
func (p *Parser) Family() string {
	return p.family
}

// Result returns the families and styles found by the last run.
func (p *Parser) Result() *Result {
	return &Result{
		Families: sortedKeys(p.families),
		Styles:   p.styles,
	}
}

// Faces returns the faces opened by the last run, together with their name
// tables.
func (p *Parser) Faces() ([]face.Face, []name.Table) {
	return p.faces, p.names
}

// Format returns the result of the last run as JSON.
func (p *Parser) Format() string {
	return p.Result().Format()
}

// Clear closes all faces and discards the results of the last run.
func (p *Parser) Clear() {
	for _, f := range p.faces {
		f.Close()
	}
	p.faces = nil
	p.names = nil
	p.styles = nil
	p.family = ""
	clear(p.families)
}

// Close releases all resources held by the parser.
func (p *Parser) Close() error {
	p.Clear()
	return nil
}

// ParseBytes returns the JSON description of the font in data.
// If data cannot be parsed, the description of an empty result is returned.
func ParseBytes(data []byte) string {
	p := NewParser(nil)
	defer p.Close()
	p.Run(data)
	return p.Format()
}

// ParseFile returns the JSON description of the named font file.
// If the file cannot be read or parsed, the description of an empty result
// is returned.
func ParseFile(path string) string {
	p := NewParser(nil)
	defer p.Close()
	p.RunFile(path)
	return p.Format()
}
