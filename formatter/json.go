package formatter

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

// JSONWriter emits one JSON object per person, newline-delimited.
// Text values are held to the same character policy as the XML output.
type JSONWriter struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONWriter creates a JSON-lines writer on top of w
func NewJSONWriter(w io.Writer) *JSONWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &JSONWriter{w: bw, enc: enc}
}

// Begin is a no-op; JSON lines have no document header
func (j *JSONWriter) Begin() error { return nil }

// Person validates and encodes p as a single line
func (j *JSONWriter) Person(p *records.Person) error {
	if err := CheckPerson(p); err != nil {
		return err
	}
	return j.enc.Encode(p)
}

// End flushes buffered output
func (j *JSONWriter) End() error { return j.w.Flush() }

// CheckPerson runs every text value of p through Escape without writing anything
func CheckPerson(p *records.Person) error {
	fs := []field{{tagFirstName, p.FirstName}, {tagLastName, p.LastName}}
	fs = appendNested(fs, p.Address, p.Phone)
	for _, f := range p.Family {
		fs = append(fs, field{tagName, f.Name}, field{tagBorn, f.BirthYear})
		fs = appendNested(fs, f.Address, f.Phone)
	}
	for _, f := range fs {
		if _, err := escapeElement(f.tag, f.value); err != nil {
			return err
		}
	}
	return nil
}

func appendNested(fs []field, a *records.Address, p *records.Phone) []field {
	if a != nil {
		fs = append(fs, field{tagStreet, a.Street}, field{tagCity, a.City}, field{tagZip, a.Zip})
	}
	if p != nil {
		fs = append(fs, field{tagMobile, p.Mobile}, field{tagLandline, p.Landline})
	}
	return fs
}
