// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Command xpathlex prints the tokens of XPath expressions.
//
// Usage:
//
//	xpathlex [flags] [file ...]
//
// Expressions are read from the files given on the command line, from the -e
// flag or from standard input. Each token is printed on its own line as
//
//	line:column	TYPE	"lexeme"
//
// Lexical errors are reported with an excerpt of the offending line when the
// input can be read again. The exit status is 1 if an error occurred, 2 for
// invalid arguments.
//
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/xpathlex"
	"github.com/db47h/xpathlex/source"
	"github.com/db47h/xpathlex/token"
	"github.com/db47h/xpathlex/xmlchar"
	"github.com/db47h/xpathlex/xpath"
	"golang.org/x/text/encoding"
	"golang.org/x/text/width"
)

type config struct {
	size    int
	cc      xpathlex.CharClass
	g       *xpath.Grammar
	enc     encoding.Encoding
	expr    string
	exprSet bool
	files   []string
	stdout  io.Writer
	stderr  io.Writer
	stdin   io.Reader
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "xpathlex:", err)
		return 2
	}
	cfg.stdin, cfg.stdout, cfg.stderr = stdin, stdout, stderr

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	cfg.stdout = w

	status := 0
	for _, in := range cfg.inputs() {
		if err := cfg.tokenize(in); err != nil {
			w.Flush()
			cfg.report(in, err)
			status = 1
		}
	}
	return status
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("xpathlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		size      = fs.Int("b", 4096, "input buffer `size` in bytes")
		xmlVer    = fs.String("xml", "1.0", "XML `version` for white space rules (1.0 or 1.1)")
		xpathVer  = fs.String("xpath", "1.0", "XPath `version` (1.0, 3.0 or 3.1)")
		nodeTypes = fs.Bool("nodetypes", false, "emit node type tokens for node, text, comment and processing-instruction")
		encLabel  = fs.String("encoding", "", "input `encoding` label (e.g. utf-16le, iso-8859-1)")
		expr      = fs.String("e", "", "tokenize `expression` instead of reading files")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: xpathlex [flags] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{size: *size, expr: *expr, files: fs.Args()}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			cfg.exprSet = true
		}
	})
	if cfg.exprSet && len(cfg.files) > 0 {
		return nil, errors.New("-e and file arguments are mutually exclusive")
	}
	if cfg.size <= 0 {
		return nil, fmt.Errorf("%w: %d", xpathlex.ErrBufferSize, cfg.size)
	}
	if cfg.cc = xmlchar.ByVersion(*xmlVer); cfg.cc == nil {
		return nil, fmt.Errorf("unsupported XML version %q", *xmlVer)
	}
	v, ok := xpath.ParseVersion(*xpathVer)
	if !ok {
		return nil, fmt.Errorf("unsupported XPath version %q", *xpathVer)
	}
	cfg.g = xpath.ByVersion(v)
	if *nodeTypes {
		cfg.g = cfg.g.WithNodeTypes()
	}
	if *encLabel != "" {
		e, err := source.Lookup(*encLabel)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", *encLabel, err)
		}
		cfg.enc = e
	}
	return cfg, nil
}

// input is an expression to tokenize. Either file or expr is set.
//
type input struct {
	file  string
	expr  string
	stdin bool
}

func (cfg *config) inputs() []input {
	switch {
	case cfg.exprSet:
		return []input{{expr: cfg.expr}}
	case len(cfg.files) == 0:
		return []input{{stdin: true}}
	}
	in := make([]input, len(cfg.files))
	for i, f := range cfg.files {
		in[i].file = f
	}
	return in
}

func (cfg *config) open(in input) (xpathlex.Source, error) {
	switch {
	case in.stdin:
		return source.Decode("<stdin>", cfg.stdin, cfg.enc), nil
	case in.file != "":
		f, err := source.Open(in.file)
		if err != nil {
			return nil, err
		}
		if cfg.enc == nil {
			return f, nil
		}
		return source.Decode(f.Name(), f, cfg.enc), nil
	}
	return source.NamedString("<expr>", in.expr), nil
}

func (cfg *config) tokenize(in input) error {
	src, err := cfg.open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	tk, err := cfg.g.NewTokenizer(src, cfg.size, cfg.cc)
	if err != nil {
		return err
	}
	for {
		tok, err := tk.Next()
		if err != nil {
			return err
		}
		p := tok.Pos()
		fmt.Fprintf(cfg.stdout, "%d:%d\t%s\t%q\n", p.Line, p.Column, tok.Type(), tok.Bytes())
		typ := tok.Type()
		tok.Release()
		if typ == token.EOF {
			return nil
		}
	}
}

// report prints err in the form:
//
//	file:line:col: error description
//	|source line where the error occurred
//	|           ^
//
// The excerpt is omitted if the input cannot be read again.
//
func (cfg *config) report(in input, err error) {
	var e *xpathlex.Error
	if !errors.As(err, &e) {
		fmt.Fprintln(cfg.stderr, "xpathlex:", err)
		return
	}
	fmt.Fprintf(cfg.stderr, "%s: error %s\n", e.Pos, e.Msg)
	l, lerr := cfg.line(in, e.Pos)
	if lerr != nil {
		return
	}
	b := e.Pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Fprintf(cfg.stderr, "|%s\n", l)
	fmt.Fprintf(cfg.stderr, "|%s^\n", strings.Repeat(" ", getWidth(l[:b])))
}

// line returns the source line containing pos.
//
func (cfg *config) line(in input, pos xpathlex.Position) ([]byte, error) {
	off := pos.Offset - int64(pos.Column-1)
	switch {
	case in.stdin, cfg.enc != nil:
		// offsets do not map to the raw input
		return nil, errors.New("input cannot be read again")
	case in.file != "":
		f, err := os.Open(pos.Filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return lineAt(f, off)
	}
	return lineAt(strings.NewReader(in.expr), off)
}

// lineAt reads the line starting at offset off in r, without its line
// terminator.
//
func lineAt(r io.ReaderAt, off int64) ([]byte, error) {
	var l []byte
	br := bufio.NewReader(io.NewSectionReader(r, off, 1<<62))
	for {
		buf, pref, err := br.ReadLine()
		if err != nil {
			return nil, err
		}
		l = append(l, buf...)
		if !pref {
			break
		}
	}
	// tabs are displayed as a single space to keep the caret aligned.
	return bytes.ReplaceAll(l, []byte{'\t'}, []byte{' '}), nil
}

// getWidth computes the width in text cells of a given byte slice.
// (supposing rendering with a UTF-8 locale and monospaced font)
//
func getWidth(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// ambiguous runes are one cell wide outside CJK locales.
			w++
		}
	}
	return w
}
