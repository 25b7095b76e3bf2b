package converter

import (
	"fmt"
	"sort"
	"strings"
)

// Warning type constants. Warnings never stop a conversion.
const (
	WarningAddressOverwritten = "address_overwritten"
	WarningPhoneOverwritten   = "phone_overwritten"
	WarningEmptyName          = "empty_name"
	WarningEmptyPhone         = "empty_phone"
)

const maxWarningExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// Warning is the consolidated summary of one warning type
type Warning struct {
	Type     string
	Count    int
	Examples []string
}

// WarningAggregator collects warnings during conversion and reports consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example reference
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, maxWarningExamples),
		}
	}

	info := w.warnings[warningType]
	info.count++

	if len(info.examples) < maxWarningExamples {
		info.examples = append(info.examples, example)
	}
}

// addLine records a warning for a 1-based input line
func (w *WarningAggregator) addLine(warningType string, line int) {
	w.Add(warningType, fmt.Sprintf("line %d", line))
}

// Count returns the number of occurrences recorded for warningType
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Len returns the number of distinct warning types recorded
func (w *WarningAggregator) Len() int { return len(w.warnings) }

// All returns one summary per warning type, sorted by type
func (w *WarningAggregator) All() []Warning {
	out := make([]Warning, 0, len(w.warnings))
	for warningType, info := range w.warnings {
		out = append(out, Warning{
			Type:     warningType,
			Count:    info.count,
			Examples: append([]string(nil), info.examples...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// Message creates a human-readable warning message
func (w Warning) Message() string {
	var description, action string

	switch w.Type {
	case WarningAddressOverwritten:
		description = "repeated address lines for the same record"
		action = "Keeping the last address"
	case WarningPhoneOverwritten:
		description = "repeated phone lines for the same record"
		action = "Keeping the last phone entry"
	case WarningEmptyName:
		description = "persons or family members with an empty name"
		action = "Writing self-closing name elements"
	case WarningEmptyPhone:
		description = "phone lines with neither mobile nor landline"
		action = "Writing a phone block of self-closing elements"
	default:
		description = "unknown issue"
		action = "Continuing conversion"
	}

	return fmt.Sprintf("Input has %s (%d occurrences). %s. Examples: %s",
		description, w.Count, action, strings.Join(w.Examples, ", "))
}
