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

package main

import (
	"bytes"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// font-parser - extract style information from font files
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

`

var dryRun = flag.Bool("n", false, "only list the files which would be changed")

// licensify adds the license header to all Go source files below the
// current directory.
func main() {
	flag.Parse()
	log.SetFlags(0)

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if (path != "." && strings.HasPrefix(d.Name(), "_")) || d.Name() == "testdata" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		return update(path)
	})
	if err != nil {
		log.Fatal(err)
	}
}

func update(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(body, []byte(header)) {
		return nil
	}
	if !bytes.HasPrefix(body, []byte("package ")) {
		log.Printf("ATTENTION %s: unexpected file start", path)
		return nil
	}

	log.Printf("updating %s", path)
	if *dryRun {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	return os.WriteFile(path, out, info.Mode().Perm())
}
