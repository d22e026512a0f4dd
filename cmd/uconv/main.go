// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command uconv round-trips text between UTFx wire forms, reports BOM
// detection, and enquotes/dequotes literals, exercising bom, utf8,
// utf16, ustring and quoted together.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/thanhtphung/cppware-sub002/bom"
	"github.com/thanhtphung/cppware-sub002/quoted"
	"github.com/thanhtphung/cppware-sub002/ustring"
)

var (
	dashv      bool
	dashh      bool
	dashconfig string
	dashfrom   string
	dashto     string
	dashbom    bool
	dashquote  string
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashconfig, "config", "", "optional YAML config file with defaults")
	flag.StringVar(&dashfrom, "from", "", "source form for convert (default: auto-detect)")
	flag.StringVar(&dashto, "to", "", "destination form for convert (default: config's defaultForm)")
	flag.BoolVar(&dashbom, "bom", false, "write a leading BOM for convert's output")
	flag.StringVar(&dashquote, "q", `"`, "quote character for quote/unquote (\" or ')")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if !dashv {
		return
	}
	log.Printf(f, args...)
}

// entry point for 'uconv convert'
func convert(cfg config, inPath, outPath string) {
	data, err := readAll(inPath)
	if err != nil {
		exitf("reading %s: %s\n", inPath, err)
	}

	defaultChar := uint32('?')
	if len(cfg.DefaultChar) > 0 {
		defaultChar = uint32(cfg.DefaultChar[0])
	}

	v := ustring.Empty()
	var replacements int
	if dashfrom == "" {
		replacements = v.ResetAutoWithChar(data, defaultChar)
		logf("auto-detected source form for %s", inPath)
	} else {
		form, err := parseForm(dashfrom)
		if err != nil {
			exitf("%s\n", err)
		}
		replacements = v.ResetXWithChar(form, data, defaultChar)
	}
	if replacements > 0 {
		logf("%d invalid code point(s) replaced while decoding %s", replacements, inPath)
	}
	if cfg.GrowthFactor != 0 {
		v.AsUTF8Seq().SetGrowth(cfg.GrowthFactor)
	}

	toName := dashto
	if toName == "" {
		toName = cfg.DefaultForm
	}
	toForm, err := parseForm(toName)
	if err != nil {
		exitf("%s\n", err)
	}
	out := v.FormUTFx(toForm, dashbom || cfg.AddBom)
	if err := writeAll(outPath, out); err != nil {
		exitf("writing %s: %s\n", outPath, err)
	}
}

// entry point for 'uconv detect'
func detect(inPath string) {
	data, err := readAll(inPath)
	if err != nil {
		exitf("reading %s: %s\n", inPath, err)
	}
	form := bom.Detect(data)
	fmt.Printf("%s: %s (%d byte BOM)\n", inPath, form, form.ByteSize())
}

// entry point for 'uconv quote'
func quoteCmd() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitf("reading stdin: %s\n", err)
	}
	if len(dashquote) != 1 {
		exitf("quote char must be a single byte, got %q\n", dashquote)
	}
	out := quoted.Enquote(data, dashquote[0], true)
	os.Stdout.Write(out)
}

// entry point for 'uconv unquote'
func unquoteCmd() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitf("reading stdin: %s\n", err)
	}
	out, _ := quoted.Dequote(data, true)
	os.Stdout.Write(out)
}

func readAll(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeAll(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || dashh {
		fmt.Fprintf(os.Stderr, "usage:\n")
		fmt.Fprintf(os.Stderr, "    %s [-from <form>] [-to <form>] [-bom] convert <in> <out>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        convert a file between UTFx wire forms\n")
		fmt.Fprintf(os.Stderr, "    %s detect <file>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        report the BOM form of a file\n")
		fmt.Fprintf(os.Stderr, "    %s [-q <quote>] quote\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        enquote stdin, writing the result to stdout\n")
		fmt.Fprintf(os.Stderr, "    %s unquote\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "        dequote stdin, writing the result to stdout\n")
		fmt.Fprintf(os.Stderr, "flag usage:\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(dashconfig)
	if err != nil {
		exitf("%s\n", err)
	}

	switch args[0] {
	case "convert":
		if len(args) != 3 {
			exitf("usage: convert <in> <out>\n")
		}
		convert(cfg, args[1], args[2])
	case "detect":
		if len(args) != 2 {
			exitf("usage: detect <file>\n")
		}
		detect(args[1])
	case "quote":
		quoteCmd()
	case "unquote":
		unquoteCmd()
	default:
		exitf("unknown subcommand %q\n", args[0])
	}
}
