// Package converter turns a pipe-delimited person record stream into a
// serialized document.
//
// # Input
//
// One record per line, fields separated by '|' and trimmed:
//
//	P|<firstName>|<lastName>
//	F|<name>|<birthYear>
//	A|<street>|<city>[|<zip>]
//	T|<mobile>|<landline>
//
// An F line opens a family member of the current person. A and T lines
// attach to the most recent family member of the current person, or to the
// person itself when no family member is open. A P line closes the previous
// person, which is then written; the last person is written at end of input.
//
// Line types must follow each other in a fixed order:
//
//	P -> T, A, F
//	F -> T, A, P
//	T -> A, F, P
//	A -> T, F, P
//
// # Usage
//
//	src := converter.NewLineSource(in)
//	doc := formatter.NewXMLWriter(out)
//	report, err := converter.NewConverter(converter.ConverterOptions{}).Convert(src, doc)
//
// Every validation failure is fatal and carries the 1-based line number and
// the raw line; see records.Error.
//
// # Thread Safety
//
// Converter and Parser instances are NOT thread-safe. Each run uses its own
// parser; separate runs share nothing and may proceed in parallel.
package converter
