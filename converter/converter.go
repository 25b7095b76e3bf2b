package converter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/people-xml/formatter"
)

// Converter drives one full conversion: document header, parsing with
// person flushes, document footer
type Converter struct {
	Opts ConverterOptions
}

// NewConverter creates a new converter instance
func NewConverter(opts ConverterOptions) *Converter {
	return &Converter{Opts: opts}
}

// Convert reads every line of src and writes the document to doc.
// On error the document is left unterminated and the error is returned as
// produced; parse and escape failures are *records.Error values.
func (c *Converter) Convert(src LineSource, doc formatter.DocumentWriter) (*Report, error) {
	if err := doc.Begin(); err != nil {
		return nil, fmt.Errorf("writing document header: %w", err)
	}

	parser := NewParser(doc, c.Opts)
	if err := parser.Parse(src); err != nil {
		return nil, err
	}

	if err := doc.End(); err != nil {
		return nil, fmt.Errorf("writing document footer: %w", err)
	}
	return parser.Report(), nil
}
