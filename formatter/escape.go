package formatter

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

// illegalSymbols are rejected in element text in addition to the XML reserved characters
const illegalSymbols = "&<>\"'#()[]{}$%*^=~`\\|@"

// Escape validates s for use as element text and returns it unchanged.
// Rather than emitting entity references it rejects any reserved or
// blacklisted punctuation, control characters other than TAB, LF and CR,
// C1 controls, the non-characters U+FFFE/U+FFFF and invalid UTF-8.
func Escape(s string) (string, error) {
	if s == "" {
		return s, nil
	}
	if !utf8.ValidString(s) || strings.IndexFunc(s, isIllegalRune) >= 0 {
		return "", &records.Error{Kind: records.KindIllegalCharacter, Value: s}
	}
	return s, nil
}

func escapeElement(tag, s string) (string, error) {
	out, err := Escape(s)
	var rerr *records.Error
	if errors.As(err, &rerr) {
		rerr.Field = tag
	}
	return out, err
}

func isIllegalRune(r rune) bool {
	switch {
	case strings.ContainsRune(illegalSymbols, r):
		return true
	case r <= 0x08, r == 0x0B, r == 0x0C, r >= 0x0E && r <= 0x1F:
		return true
	case r >= 0x7F && r <= 0x9F:
		return true
	case r == 0xFFFE, r == 0xFFFF:
		return true
	}
	return false
}
