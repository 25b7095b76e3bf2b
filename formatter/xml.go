package formatter

import (
	"bufio"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	indentSize     = 2

	// PersonDepth is the nesting depth of <person> under the root
	PersonDepth = 1
)

// Element names. These are fixed and never pass through Escape.
const (
	tagPeople    = "people"
	tagPerson    = "person"
	tagFirstName = "firstName"
	tagLastName  = "lastName"
	tagAddress   = "address"
	tagStreet    = "street"
	tagCity      = "city"
	tagZip       = "zip"
	tagPhone     = "phone"
	tagMobile    = "mobile"
	tagLandline  = "landline"
	tagFamily    = "family"
	tagName      = "name"
	tagBorn      = "born"
)

type field struct {
	tag   string
	value string
}

// XMLWriter streams people records as indented XML, one element per line.
// Write errors from the underlying writer are sticky.
type XMLWriter struct {
	w   *bufio.Writer
	err error
}

// NewXMLWriter creates a writer on top of w. Call End or Flush to drain the buffer.
func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{w: bufio.NewWriter(w)}
}

// Begin writes the XML declaration and opens the root element
func (x *XMLWriter) Begin() error {
	x.writeString(xmlDeclaration + "\n")
	return x.open(tagPeople, 0)
}

// End closes the root element and flushes
func (x *XMLWriter) End() error {
	if err := x.close(tagPeople, 0); err != nil {
		return err
	}
	return x.Flush()
}

// Flush drains buffered output to the underlying writer
func (x *XMLWriter) Flush() error {
	if x.err != nil {
		return x.err
	}
	x.err = x.w.Flush()
	return x.err
}

// Element writes a single leaf element at depth. An empty value renders as
// a self-closing tag; anything else must pass Escape.
func (x *XMLWriter) Element(tag, value string, depth int) error {
	if x.err != nil {
		return x.err
	}
	if value == "" {
		x.indent(depth)
		x.writeString("<" + tag + " />\n")
		return x.err
	}
	text, err := escapeElement(tag, value)
	if err != nil {
		return err
	}
	x.indent(depth)
	x.writeString("<" + tag + ">")
	x.writeString(text)
	x.writeString("</" + tag + ">\n")
	return x.err
}

// Address writes street, city and zip, always all three
func (x *XMLWriter) Address(a *records.Address, depth int) error {
	return x.block(tagAddress, depth,
		field{tagStreet, a.Street},
		field{tagCity, a.City},
		field{tagZip, a.Zip},
	)
}

// Phone writes mobile and landline, always both
func (x *XMLWriter) Phone(p *records.Phone, depth int) error {
	return x.block(tagPhone, depth,
		field{tagMobile, p.Mobile},
		field{tagLandline, p.Landline},
	)
}

// FamilyMember writes one <family> block. Nested address and phone blocks
// are omitted, not self-closed, when absent.
func (x *XMLWriter) FamilyMember(f *records.FamilyMember, depth int) error {
	if err := x.open(tagFamily, depth); err != nil {
		return err
	}
	if err := x.fields(depth+1, field{tagName, f.Name}, field{tagBorn, f.BirthYear}); err != nil {
		return err
	}
	if err := x.nested(f.Address, f.Phone, depth+1); err != nil {
		return err
	}
	return x.close(tagFamily, depth)
}

// Person writes one complete <person> block under the root
func (x *XMLWriter) Person(p *records.Person) error {
	depth := PersonDepth
	if err := x.open(tagPerson, depth); err != nil {
		return err
	}
	if err := x.fields(depth+1, field{tagFirstName, p.FirstName}, field{tagLastName, p.LastName}); err != nil {
		return err
	}
	if err := x.nested(p.Address, p.Phone, depth+1); err != nil {
		return err
	}
	for _, f := range p.Family {
		if err := x.FamilyMember(f, depth+1); err != nil {
			return err
		}
	}
	return x.close(tagPerson, depth)
}

func (x *XMLWriter) nested(a *records.Address, p *records.Phone, depth int) error {
	if a != nil {
		if err := x.Address(a, depth); err != nil {
			return err
		}
	}
	if p != nil {
		if err := x.Phone(p, depth); err != nil {
			return err
		}
	}
	return nil
}

func (x *XMLWriter) block(tag string, depth int, fs ...field) error {
	if err := x.open(tag, depth); err != nil {
		return err
	}
	if err := x.fields(depth+1, fs...); err != nil {
		return err
	}
	return x.close(tag, depth)
}

func (x *XMLWriter) fields(depth int, fs ...field) error {
	for _, f := range fs {
		if err := x.Element(f.tag, f.value, depth); err != nil {
			return err
		}
	}
	return nil
}

func (x *XMLWriter) open(tag string, depth int) error {
	x.indent(depth)
	x.writeString("<" + tag + ">\n")
	return x.err
}

func (x *XMLWriter) close(tag string, depth int) error {
	x.indent(depth)
	x.writeString("</" + tag + ">\n")
	return x.err
}

func (x *XMLWriter) indent(depth int) {
	if depth > 0 {
		x.writeString(strings.Repeat(" ", depth*indentSize))
	}
}

func (x *XMLWriter) writeString(s string) {
	if x.err != nil {
		return
	}
	_, x.err = x.w.WriteString(s)
}
