// Package formatter serializes person records.
//
// This package is organized into:
// - escape.go: character policy for element text
// - xml.go: indented XML serialization (the canonical output)
// - json.go: JSON-lines serialization
// - document.go: the DocumentWriter interface and format selection
//
// All XML is written by hand for precise control over indentation and
// self-closing tags; the output must be byte-for-byte stable.
package formatter
