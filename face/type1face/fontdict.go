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
	"bytes"
	"errors"
	"io"

	"seehuhn.de/go/postscript"
	"seehuhn.de/go/postscript/pfb"
	"seehuhn.de/go/postscript/type1"

	"github.com/smy-10/font-parser/face"
)

var errNoFontDict = errors.New("type1: no font dictionary found")

// clearText returns the unencrypted part of a Type 1 font, which holds the
// FontInfo dictionary.  PFB files are converted to PFA first.
func clearText(data []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == 0x80 {
		var err error
		data, err = io.ReadAll(pfb.Decode(bytes.NewReader(data)))
		if err != nil && len(data) == 0 {
			return nil, err
		}
	}
	if idx := bytes.Index(data, []byte("eexec")); idx >= 0 {
		data = data[:idx]
	}
	data = bytes.TrimRight(data, " \t\r\n")
	data = bytes.TrimSuffix(data, []byte("currentfile"))
	return data, nil
}

// readFontDict runs the clear text of a font through a PostScript
// interpreter and returns the font dictionary.
//
// The dictionary is normally still open when the encrypted part starts, so
// it is looked for on the stacks as well as in the font directory.  If the
// program fails after the font dictionary has been created, the partial
// dictionary is returned.
func readFontDict(text []byte) (postscript.Dict, error) {
	intp := postscript.NewInterpreter()
	intp.MaxOps = 1_000_000
	err := intp.Execute(bytes.NewReader(text))

	for _, val := range intp.FontDirectory {
		if fd, ok := val.(postscript.Dict); ok && isFontDict(fd) {
			return fd, nil
		}
	}
	for i := len(intp.Stack) - 1; i >= 0; i-- {
		if fd, ok := intp.Stack[i].(postscript.Dict); ok && isFontDict(fd) {
			return fd, nil
		}
	}
	for i := len(intp.DictStack) - 1; i >= 0; i-- {
		if fd := intp.DictStack[i]; isFontDict(fd) {
			return fd, nil
		}
	}

	if err != nil {
		return nil, err
	}
	return nil, errNoFontDict
}

func isFontDict(d postscript.Dict) bool {
	_, hasInfo := d["FontInfo"].(postscript.Dict)
	_, hasName := d["FontName"].(postscript.Name)
	return hasInfo || hasName
}

// fontInfo extracts the naming entries from a font dictionary.
func fontInfo(fd postscript.Dict) *type1.FontInfo {
	fi := &type1.FontInfo{}
	if name, ok := fd["FontName"].(postscript.Name); ok {
		fi.FontName = string(name)
	}
	info, _ := fd["FontInfo"].(postscript.Dict)
	if s, ok := info["FullName"].(postscript.String); ok {
		fi.FullName = string(s)
	}
	if s, ok := info["FamilyName"].(postscript.String); ok {
		fi.FamilyName = string(s)
	}
	if s, ok := info["Weight"].(postscript.String); ok {
		fi.Weight = string(s)
	}
	return fi
}

// blendAxes reads the axes of a multiple master font from the
// /BlendAxisTypes and /BlendDesignMap entries.  The axis range is given by
// the first and last design value of each map, the default is the middle of
// the range.  Malformed entries give no axes.
func blendAxes(fd postscript.Dict) []face.AxisRecord {
	types, ok := mmEntry(fd, "BlendAxisTypes")
	if !ok {
		return nil
	}
	maps, ok := mmEntry(fd, "BlendDesignMap")
	if !ok {
		return nil
	}

	n := min(len(types), len(maps), maxMMAxes)
	if n == 0 {
		return nil
	}
	axes := make([]face.AxisRecord, n)
	for i := range axes {
		name, ok := types[i].(postscript.Name)
		if !ok {
			return nil
		}
		m, ok := maps[i].(postscript.Array)
		if !ok || len(m) == 0 {
			return nil
		}
		lo, ok1 := designValue(m[0])
		hi, ok2 := designValue(m[len(m)-1])
		if !ok1 || !ok2 {
			return nil
		}
		axes[i] = face.AxisRecord{
			Tag:     face.MMTag(i),
			Name:    string(name),
			Min:     lo,
			Default: (lo + hi) / 2,
			Max:     hi,
		}
	}
	return axes
}

// mmEntry looks up a multiple master array, first in the FontInfo
// dictionary and then in the font dictionary itself.
func mmEntry(fd postscript.Dict, key postscript.Name) (postscript.Array, bool) {
	if info, ok := fd["FontInfo"].(postscript.Dict); ok {
		if a, ok := info[key].(postscript.Array); ok {
			return a, true
		}
	}
	a, ok := fd[key].(postscript.Array)
	return a, ok
}

// designValue returns the design coordinate of a [design normalized] pair.
func designValue(obj postscript.Object) (float64, bool) {
	pair, ok := obj.(postscript.Array)
	if !ok || len(pair) != 2 {
		return 0, false
	}
	switch x := pair[0].(type) {
	case postscript.Integer:
		return float64(x), true
	case postscript.Real:
		return float64(x), true
	default:
		return 0, false
	}
}
