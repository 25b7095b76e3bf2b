package formatter

import (
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

// Output formats
const (
	FormatXML       = "xml"
	FormatJSONLines = "jsonl"
)

// DocumentWriter receives completed persons in encounter order between
// Begin and End. End is only called after a successful run.
type DocumentWriter interface {
	Begin() error
	Person(p *records.Person) error
	End() error
}

// NewDocumentWriter returns the writer for format on top of w
func NewDocumentWriter(format string, w io.Writer) (DocumentWriter, error) {
	switch format {
	case "", FormatXML:
		return NewXMLWriter(w), nil
	case FormatJSONLines:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
