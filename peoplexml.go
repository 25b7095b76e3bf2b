// Package peoplexml converts pipe-delimited person records into an indented
// XML document.
//
// The converter, formatter and records packages hold the implementation;
// this package wires them to readers, writers and files.
package peoplexml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/people-xml/converter"
	"github.com/theoremus-urban-solutions/people-xml/formatter"
)

// Options selects the output format and duplicate handling
type Options struct {
	Format           string
	RejectDuplicates bool
}

// Convert reads records from r and writes the document to w
func Convert(r io.Reader, w io.Writer, opts Options) (*converter.Report, error) {
	doc, err := formatter.NewDocumentWriter(opts.Format, w)
	if err != nil {
		return nil, err
	}
	conv := converter.NewConverter(converter.ConverterOptions{RejectDuplicates: opts.RejectDuplicates})
	return conv.Convert(converter.NewLineSource(r), doc)
}

// Validate runs a full conversion and discards the output
func Validate(r io.Reader, opts Options) (*converter.Report, error) {
	return Convert(r, io.Discard, opts)
}

// ConvertFile converts inPath into outPath; see ConvertToFile
func ConvertFile(inPath, outPath string, opts Options) (*converter.Report, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = in.Close() }()

	return ConvertToFile(in, outPath, opts)
}

// ConvertToFile converts r into outPath, creating the output directory.
// A failed run removes the partial output file.
func ConvertToFile(r io.Reader, outPath string, opts Options) (report *converter.Report, err error) {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(outPath)
			report = nil
		}
	}()

	return Convert(r, out, opts)
}
