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

// Package loader finds the faces in a font file.
package loader

import (
	"bytes"
	"errors"
	"sync"

	"github.com/smy-10/font-parser/face"
	"github.com/smy-10/font-parser/face/sfntface"
	"github.com/smy-10/font-parser/face/type1face"
)

// FontType is the type of a font file.
type FontType int

// Supported font types.
const (
	FontTypeSfnt FontType = iota + 1
	FontTypeType1
)

func (tp FontType) String() string {
	switch tp {
	case FontTypeSfnt:
		return "sfnt"
	case FontTypeType1:
		return "type1"
	default:
		return "unknown"
	}
}

var (
	// ErrEmpty is returned when Open is called with no data.
	ErrEmpty = errors.New("loader: empty font data")

	// ErrUnknownFormat is returned when no backend recognises a font file.
	ErrUnknownFormat = errors.New("loader: unknown font format")
)

// OpenFunc reads all faces from a font file.
type OpenFunc func(data []byte) ([]face.Face, error)

// DetectFunc reports whether a backend can read the given data.
type DetectFunc func(data []byte) bool

type backend struct {
	fontType FontType
	detect   DetectFunc
	open     OpenFunc
}

// A Loader reads font files using a list of backends.  The first backend
// which recognises the data is used.
//
// It is safe to use a Loader concurrently from multiple goroutines.
type Loader struct {
	sync.RWMutex
	backends []backend
}

// New creates a loader which can read sfnt and Type 1 fonts.
func New() *Loader {
	l := &Loader{}
	l.Register(FontTypeSfnt, IsSfnt, openSfnt)
	l.Register(FontTypeType1, type1face.IsType1, openType1)
	return l
}

// Default returns the loader used by [Open].  It is created on first use.
var Default = sync.OnceValue(New)

// Open reads all faces from data, using the default loader.
func Open(data []byte) ([]face.Face, error) {
	return Default().Open(data)
}

// Register adds a backend.  Backends registered later take precedence
// over earlier ones for the same font type.
func (l *Loader) Register(tp FontType, detect DetectFunc, open OpenFunc) {
	l.Lock()
	defer l.Unlock()
	for i, b := range l.backends {
		if b.fontType == tp {
			l.backends[i] = backend{tp, detect, open}
			return
		}
	}
	l.backends = append(l.backends, backend{tp, detect, open})
}

// Detect returns the type of the font in data, or 0 if no backend
// recognises the data.
func (l *Loader) Detect(data []byte) FontType {
	l.RLock()
	defer l.RUnlock()
	for _, b := range l.backends {
		if b.detect(data) {
			return b.fontType
		}
	}
	return 0
}

// Open reads all faces from data.  The caller must close the faces.
func (l *Loader) Open(data []byte) ([]face.Face, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	l.RLock()
	var open OpenFunc
	for _, b := range l.backends {
		if b.detect(data) {
			open = b.open
			break
		}
	}
	l.RUnlock()

	if open == nil {
		return nil, ErrUnknownFormat
	}
	return open(data)
}

var sfntMagic = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
	[]byte("typ1"),
	[]byte("OTTO"),
	[]byte("ttcf"),
	[]byte("wOFF"),
	{0x00, 0x00, 0x01, 0x00}, // Mac dfont resource data offset
}

// IsSfnt reports whether data starts with the signature of an sfnt font,
// a font collection, a WOFF file or a Mac dfont file.
func IsSfnt(data []byte) bool {
	for _, magic := range sfntMagic {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	return false
}

func openSfnt(data []byte) ([]face.Face, error) {
	faces, err := sfntface.Open(data)
	if err != nil {
		return nil, err
	}
	res := make([]face.Face, len(faces))
	for i, f := range faces {
		res[i] = f
	}
	return res, nil
}

func openType1(data []byte) ([]face.Face, error) {
	f, err := type1face.Open(data)
	if err != nil {
		return nil, err
	}
	return []face.Face{f}, nil
}
