package converter

// ConverterOptions contains the knobs of a conversion run.
// This struct is data-source agnostic and has no dependencies on config files.
type ConverterOptions struct {
	// RejectDuplicates turns a repeated A or T line for the same person or
	// family member into a DuplicateRecord error. By default the last line wins.
	RejectDuplicates bool
}

// Report summarizes a successful conversion
type Report struct {
	Lines         int
	Persons       int
	FamilyMembers int
	Addresses     int
	Phones        int

	Warnings *WarningAggregator
}

func newReport() *Report {
	return &Report{Warnings: NewWarningAggregator()}
}
