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
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	fontparser "github.com/smy-10/font-parser"
	"github.com/smy-10/font-parser/tools/internal/buildinfo"
	"github.com/smy-10/font-parser/tools/internal/profile"
)

var (
	compact    = flag.Bool("compact", false, "write single-line JSON, even on a terminal")
	families   = flag.Bool("families", false, "only list the family names")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

type warner interface {
	Warnings() []error
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "font-styles - list the styles of font files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("font-styles"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  font-styles [options] <font-file>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font-file  TrueType, OpenType, WOFF, collection or Type 1 font files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  font-styles /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf\n")
		fmt.Fprintf(os.Stderr, "  font-styles -families *.otf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if e := stop(); err == nil {
			err = e
		}
	}()

	pretty := !*compact && term.IsTerminal(int(os.Stdout.Fd()))

	p := fontparser.NewParser(nil)
	defer p.Close()

	failed := 0
	for _, fname := range flag.Args() {
		err := p.RunFile(fname)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			failed++
			continue
		}

		faces, _ := p.Faces()
		for i, f := range faces {
			w, ok := f.(warner)
			if !ok {
				continue
			}
			for _, err := range w.Warnings() {
				fmt.Fprintf(os.Stderr, "warning: %s, face %d: %v\n", fname, i, err)
			}
		}

		res := p.Result()
		switch {
		case *families:
			for _, family := range res.Families {
				fmt.Println(family)
			}
		case pretty:
			fmt.Println(res.Indent())
		default:
			fmt.Println(res.Format())
		}
	}

	if failed == flag.NArg() {
		return errors.New("no font files could be read")
	}
	return nil
}
