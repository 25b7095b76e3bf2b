package records

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a conversion failure. Every kind is fatal for the run.
type ErrorKind string

const (
	KindMissingParent      ErrorKind = "MissingParent"
	KindFieldCountMismatch ErrorKind = "FieldCountMismatch"
	KindInvalidBirthYear   ErrorKind = "InvalidBirthYear"
	KindInvalidZip         ErrorKind = "InvalidZip"
	KindInvalidPhone       ErrorKind = "InvalidPhone"
	KindIllegalSequence    ErrorKind = "IllegalSequence"
	KindUnknownLineType    ErrorKind = "UnknownLineType"
	KindIllegalCharacter   ErrorKind = "IllegalCharacter"
	KindDuplicateRecord    ErrorKind = "DuplicateRecord"
)

// Sentinels for errors.Is matching against a *Error of the same kind.
var (
	ErrMissingParent      = errors.New("record without a parent person")
	ErrFieldCountMismatch = errors.New("wrong number of fields")
	ErrInvalidBirthYear   = errors.New("invalid birth year")
	ErrInvalidZip         = errors.New("invalid zip")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrIllegalSequence    = errors.New("illegal line sequence")
	ErrUnknownLineType    = errors.New("unknown line type")
	ErrIllegalCharacter   = errors.New("illegal characters in XML text")
	ErrDuplicateRecord    = errors.New("duplicate record")
)

var sentinels = map[ErrorKind]error{
	KindMissingParent:      ErrMissingParent,
	KindFieldCountMismatch: ErrFieldCountMismatch,
	KindInvalidBirthYear:   ErrInvalidBirthYear,
	KindInvalidZip:         ErrInvalidZip,
	KindInvalidPhone:       ErrInvalidPhone,
	KindIllegalSequence:    ErrIllegalSequence,
	KindUnknownLineType:    ErrUnknownLineType,
	KindIllegalCharacter:   ErrIllegalCharacter,
	KindDuplicateRecord:    ErrDuplicateRecord,
}

// Error is a conversion failure with enough context to point at the input.
// Parser errors carry Line and Text; escaper errors carry Value and, when
// raised while writing an element, the element name in Field.
type Error struct {
	Kind ErrorKind
	Line int
	Text string

	// Field names the offending field: "mobile", "landline", "zip", "born",
	// or an element name for IllegalCharacter.
	Field string
	Value string

	// Prev and Next are set for IllegalSequence
	Prev LineType
	Next LineType

	// Want and Got are set for FieldCountMismatch
	Want string
	Got  int
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	switch e.Kind {
	case KindMissingParent:
		fmt.Fprintf(&b, "'%s' line without a preceding 'P'", e.Next)
	case KindFieldCountMismatch:
		fmt.Fprintf(&b, "expected %s fields for '%s', got %d", e.Want, e.Next, e.Got)
	case KindInvalidBirthYear:
		fmt.Fprintf(&b, "birth year must be exactly 4 digits, got %q", e.Value)
	case KindInvalidZip:
		fmt.Fprintf(&b, "invalid zip format %q", e.Value)
	case KindInvalidPhone:
		fmt.Fprintf(&b, "invalid %s number format %q", e.Field, e.Value)
	case KindIllegalSequence:
		fmt.Fprintf(&b, "line type '%s' may not follow '%s'", e.Next, e.Prev)
	case KindUnknownLineType:
		fmt.Fprintf(&b, "unknown line type %q", e.Value)
	case KindIllegalCharacter:
		if e.Field != "" {
			fmt.Fprintf(&b, "unaccepted characters in <%s>: %q", e.Field, e.Value)
		} else {
			fmt.Fprintf(&b, "unaccepted characters in XML: %q", e.Value)
		}
		return b.String()
	case KindDuplicateRecord:
		fmt.Fprintf(&b, "duplicate '%s' line for the same record", e.Next)
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Text != "" {
		fmt.Fprintf(&b, ": %q", e.Text)
	}
	return b.String()
}

// Unwrap exposes the sentinel for the error's kind
func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
