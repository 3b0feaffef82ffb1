// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qr encodes text as a QR code and writes it as a PNG or PBM image
// or as text.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/unixdj/qrenc"
	"github.com/unixdj/qrenc/coding"
)

var g = struct {
	scale   int            // scale
	border  int            // quiet zone
	rev     bool           // reverse colours
	fn      string         // filename
	cfn     string         // config filename
	lev     qrenc.Level    // QR correction level
	mode    qrenc.Mode     // encoding mode, 0 for automatic
	ver     coding.Version // QR version, 0 for automatic
	format  int            // output file format
	workers int            // mask scoring goroutines
	latin1  bool           // Latin-1 byte mode
	sjis    bool           // Shift JIS input
	upper   bool           // uppercase
	verbose bool           // log encoding details
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		if n <= 0 {
			break
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:n]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults: UTF-8 input, the narrowest encoding
mode and the smallest version that fit the data.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

// formatIndex returns the index of the format name s in formats, or
// -1 if there is none.
func formatIndex(s string) int {
	for i, v := range formats {
		if s == v {
			return i
		}
	}
	return -1
}

var encoders = [...]func(*qrenc.Code, io.Writer) error{
	func(c *qrenc.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qrenc.Code).EncodePBM,
	func(c *qrenc.Code, w io.Writer) error { return c.EncodeText(w, false) },
	func(c *qrenc.Code, w io.Writer) error { return c.EncodeText(w, true) },
}

var modeNames = []string{"auto", "numeric", "alphanumeric", "byte", "kanji"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1',
		"convert byte mode data to Latin-1")
	getopt.Flag(&g.sjis, 'k', "Shift JIS input")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'd', "log mode, version, mask and penalty")
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.cfn, 'c', `YAML file with defaults for `+
		`level, format, scale, margin and workers`, "config")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	mode := getopt.Enum('M', modeNames, "auto",
		"encoding mode, one of: "+strings.Join(modeNames, ", "), "mode")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12}),
		`image pixels per QR module; `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	workers := getopt.Unsigned('j', 0, &getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 0},
		"goroutines scoring masks, 0 for one per CPU", "n")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()

	cfg := defaultConfig()
	if g.cfn != "" {
		var err error
		if cfg, err = loadConfig(g.cfn); err != nil {
			log.Fatalln(err)
		}
	}
	// Flags override the defaults.
	if getopt.IsSet('l') {
		cfg.Level = *lev
	}
	if getopt.IsSet('t') {
		cfg.Format = *ff
	}
	if getopt.IsSet('s') {
		cfg.Scale = int(*scale)
	}
	if getopt.IsSet('m') {
		cfg.Margin = g.border
	}
	if getopt.IsSet('j') {
		cfg.Workers = int(*workers)
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}

	g.lev, _ = coding.ParseLevel(cfg.Level)
	g.scale = cfg.Scale
	g.border = cfg.Margin
	g.workers = cfg.Workers
	g.ver = coding.Version(*ver)
	if *mode != "auto" {
		g.mode, _ = coding.ParseMode(*mode)
	}
	if cfg.Format == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			cfg.Format = "utf8"
		} else {
			cfg.Format = "png"
		}
	}
	i := formatIndex(cfg.Format)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
}

// prepare converts the input s according to the flags and returns
// the text and its encoding mode.
func prepare(s string, mode qrenc.Mode) (string, qrenc.Mode, error) {
	var err error
	if g.sjis {
		if s, err = japanese.ShiftJIS.NewDecoder().String(s); err != nil {
			return "", 0, fmt.Errorf("shift jis input: %w", err)
		}
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	if mode == 0 {
		mode = qrenc.Classify(s)
	}
	if g.latin1 && mode == qrenc.Byte {
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			return "", 0, fmt.Errorf("latin-1 conversion: %w", err)
		}
	}
	return s, mode, nil
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	s, mode, err := prepare(s, g.mode)
	if err != nil {
		log.Fatalln(err)
	}
	o := qrenc.Options{Mode: mode, Version: g.ver, Workers: g.workers}
	c, err := o.Encode(s, g.lev)
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		log.Printf("mode %v, version %v-%v, mask %d, penalty %d %+v",
			c.Mode, c.Version, c.Level, c.Mask, c.Penalty.Total(),
			c.Penalty)
	}
	write(c)
}

func write(c *qrenc.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
