package records

// LineType identifies the record kind carried by an input line.
// Type tokens are case-sensitive.
type LineType string

const (
	LinePerson       LineType = "P"
	LineFamilyMember LineType = "F"
	LineAddress      LineType = "A"
	LinePhone        LineType = "T"
)

// ParseLineType maps a type token to its LineType. ok is false for any
// token other than P, F, A or T.
func ParseLineType(token string) (lt LineType, ok bool) {
	switch lt = LineType(token); lt {
	case LinePerson, LineFamilyMember, LineAddress, LinePhone:
		return lt, true
	}
	return "", false
}

// Person is a top-level record opened by a P line
type Person struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Address   *Address        `json:"address,omitempty"`
	Phone     *Phone          `json:"phone,omitempty"`
	Family    []*FamilyMember `json:"family,omitempty"`

	// Line is the 1-based input line that opened the record
	Line int `json:"-"`
}

// FamilyMember belongs to exactly one Person, in input order
type FamilyMember struct {
	Name      string   `json:"name"`
	BirthYear string   `json:"born"`
	Address   *Address `json:"address,omitempty"`
	Phone     *Phone   `json:"phone,omitempty"`

	Line int `json:"-"`
}

// Address is attached by an A line. Zip may be empty.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// Phone is attached by a T line. Either number may be empty.
type Phone struct {
	Mobile   string `json:"mobile"`
	Landline string `json:"landline"`
}
