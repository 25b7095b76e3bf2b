// Package records defines the person record data model and the conversion error taxonomy.
//
// The input format describes four record kinds, one per line:
//
//   - P: a person (first name, last name)
//   - F: a family member of the current person (name, birth year)
//   - A: an address for the current person or family member
//   - T: a phone entry for the current person or family member
//
// The types here are plain data aggregates. Parsing lives in the converter
// package and serialization in the formatter package.
package records
