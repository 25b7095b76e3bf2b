package converter

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

var (
	birthYearPattern = regexp.MustCompile(`^\d{4}$`)
	numberPattern    = regexp.MustCompile(`^[0-9\s-]+$`)
)

// allowedAfter lists the legal successors of each line type
var allowedAfter = map[records.LineType][]records.LineType{
	records.LinePerson:       {records.LinePhone, records.LineAddress, records.LineFamilyMember},
	records.LineFamilyMember: {records.LinePhone, records.LineAddress, records.LinePerson},
	records.LinePhone:        {records.LineAddress, records.LineFamilyMember, records.LinePerson},
	records.LineAddress:      {records.LinePhone, records.LineFamilyMember, records.LinePerson},
}

// PersonWriter receives each completed person exactly once
type PersonWriter interface {
	Person(p *records.Person) error
}

// Parser reassembles persons from typed lines and hands each one to a
// PersonWriter when the next P line arrives or input ends.
//
// A Parser holds the whole parse context and is used by one goroutine.
// Independent runs use independent parsers.
type Parser struct {
	out    PersonWriter
	opts   ConverterOptions
	report *Report

	person *records.Person
	member *records.FamilyMember
	last   records.LineType
	line   int

	// first blank line not yet followed by a record
	blankLine int
	blankText string
}

// NewParser creates a parser flushing completed persons to out
func NewParser(out PersonWriter, opts ConverterOptions) *Parser {
	return &Parser{out: out, opts: opts, report: newReport()}
}

// Report returns counts and warnings gathered so far
func (p *Parser) Report() *Report { return p.report }

// Parse consumes src to the end and flushes the last person.
// It stops at the first error.
func (p *Parser) Parse(src LineSource) error {
	for src.Scan() {
		if err := p.ParseLine(src.Text()); err != nil {
			return err
		}
	}
	if err := src.Err(); err != nil {
		return fmt.Errorf("reading input after line %d: %w", p.line, err)
	}
	return p.Finish()
}

// ParseLine processes the next input line. Content is validated before
// the line-type sequence is checked, and the parse context only changes
// once both pass.
func (p *Parser) ParseLine(raw string) error {
	p.line++
	p.report.Lines++

	// Blank lines are only tolerated at the end of input
	if strings.TrimSpace(raw) == "" {
		if p.blankLine == 0 {
			p.blankLine, p.blankText = p.line, raw
		}
		return nil
	}
	if p.blankLine != 0 {
		return &records.Error{Kind: records.KindUnknownLineType, Line: p.blankLine, Text: p.blankText}
	}

	parts := strings.Split(raw, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	token, fields := parts[0], parts[1:]

	lt, ok := records.ParseLineType(token)
	if !ok {
		return &records.Error{Kind: records.KindUnknownLineType, Line: p.line, Text: raw, Value: token}
	}

	switch lt {
	case records.LinePerson:
		return p.personLine(raw, fields)
	case records.LineFamilyMember:
		return p.familyMemberLine(raw, fields)
	case records.LineAddress:
		return p.addressLine(raw, fields)
	default:
		return p.phoneLine(raw, fields)
	}
}

// Finish flushes the current person, if any
func (p *Parser) Finish() error {
	if p.person == nil {
		return nil
	}
	return p.flush()
}

// P|firstName|lastName
func (p *Parser) personLine(raw string, fields []string) error {
	if len(fields) != 2 {
		return p.fieldCount(records.LinePerson, raw, "2", len(fields))
	}
	if err := p.checkSequence(records.LinePerson, raw); err != nil {
		return err
	}
	if p.person != nil {
		if err := p.flush(); err != nil {
			return err
		}
	}

	p.person = &records.Person{FirstName: fields[0], LastName: fields[1], Line: p.line}
	p.member = nil
	if fields[0] == "" || fields[1] == "" {
		p.report.Warnings.addLine(WarningEmptyName, p.line)
	}
	return nil
}

// F|name|birthYear
func (p *Parser) familyMemberLine(raw string, fields []string) error {
	if err := p.requireParent(records.LineFamilyMember, raw); err != nil {
		return err
	}
	if len(fields) != 2 {
		return p.fieldCount(records.LineFamilyMember, raw, "2", len(fields))
	}
	name, born := fields[0], fields[1]
	if !birthYearPattern.MatchString(born) {
		return &records.Error{Kind: records.KindInvalidBirthYear, Line: p.line, Text: raw, Field: "born", Value: born}
	}
	if err := p.checkSequence(records.LineFamilyMember, raw); err != nil {
		return err
	}

	p.member = &records.FamilyMember{Name: name, BirthYear: born, Line: p.line}
	p.person.Family = append(p.person.Family, p.member)
	p.report.FamilyMembers++
	if name == "" {
		p.report.Warnings.addLine(WarningEmptyName, p.line)
	}
	return nil
}

// A|street|city[|zip]
func (p *Parser) addressLine(raw string, fields []string) error {
	if err := p.requireParent(records.LineAddress, raw); err != nil {
		return err
	}
	if len(fields) != 2 && len(fields) != 3 {
		return p.fieldCount(records.LineAddress, raw, "2 or 3", len(fields))
	}
	addr := &records.Address{Street: fields[0], City: fields[1]}
	if len(fields) == 3 {
		addr.Zip = fields[2]
	}
	if !validNumber(addr.Zip) {
		return &records.Error{Kind: records.KindInvalidZip, Line: p.line, Text: raw, Field: "zip", Value: addr.Zip}
	}
	if err := p.checkSequence(records.LineAddress, raw); err != nil {
		return err
	}

	target := &p.person.Address
	if p.member != nil {
		target = &p.member.Address
	}
	if *target != nil {
		if p.opts.RejectDuplicates {
			return &records.Error{Kind: records.KindDuplicateRecord, Line: p.line, Text: raw, Next: records.LineAddress}
		}
		p.report.Warnings.addLine(WarningAddressOverwritten, p.line)
	} else {
		p.report.Addresses++
	}
	*target = addr
	return nil
}

// T|mobile|landline
func (p *Parser) phoneLine(raw string, fields []string) error {
	if err := p.requireParent(records.LinePhone, raw); err != nil {
		return err
	}
	if len(fields) != 2 {
		return p.fieldCount(records.LinePhone, raw, "2", len(fields))
	}
	phone := &records.Phone{Mobile: fields[0], Landline: fields[1]}
	if !validNumber(phone.Mobile) {
		return &records.Error{Kind: records.KindInvalidPhone, Line: p.line, Text: raw, Field: "mobile", Value: phone.Mobile}
	}
	if !validNumber(phone.Landline) {
		return &records.Error{Kind: records.KindInvalidPhone, Line: p.line, Text: raw, Field: "landline", Value: phone.Landline}
	}
	if err := p.checkSequence(records.LinePhone, raw); err != nil {
		return err
	}

	target := &p.person.Phone
	if p.member != nil {
		target = &p.member.Phone
	}
	if *target != nil {
		if p.opts.RejectDuplicates {
			return &records.Error{Kind: records.KindDuplicateRecord, Line: p.line, Text: raw, Next: records.LinePhone}
		}
		p.report.Warnings.addLine(WarningPhoneOverwritten, p.line)
	} else {
		p.report.Phones++
	}
	*target = phone
	if phone.Mobile == "" && phone.Landline == "" {
		p.report.Warnings.addLine(WarningEmptyPhone, p.line)
	}
	return nil
}

// checkSequence validates lt against the previous line type and records it.
// The first line has no predecessor and is not checked.
func (p *Parser) checkSequence(lt records.LineType, raw string) error {
	if p.last != "" && !slices.Contains(allowedAfter[p.last], lt) {
		return &records.Error{Kind: records.KindIllegalSequence, Line: p.line, Text: raw, Prev: p.last, Next: lt}
	}
	p.last = lt
	return nil
}

func (p *Parser) requireParent(lt records.LineType, raw string) error {
	if p.person == nil {
		return &records.Error{Kind: records.KindMissingParent, Line: p.line, Text: raw, Next: lt}
	}
	return nil
}

func (p *Parser) fieldCount(lt records.LineType, raw, want string, got int) error {
	return &records.Error{Kind: records.KindFieldCountMismatch, Line: p.line, Text: raw, Next: lt, Want: want, Got: got}
}

func (p *Parser) flush() error {
	if err := p.out.Person(p.person); err != nil {
		var rerr *records.Error
		if errors.As(err, &rerr) && rerr.Line == 0 {
			rerr.Line = p.person.Line
		}
		return err
	}
	p.report.Persons++
	p.person = nil
	p.member = nil
	return nil
}

// validNumber accepts empty values and digits, whitespace and hyphens
func validNumber(s string) bool {
	return s == "" || numberPattern.MatchString(s)
}
