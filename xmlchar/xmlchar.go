// Package xmlchar provides character class predicates as defined by the XML
// specifications.
//
package xmlchar

// Class is a set of byte predicates for a given version of the XML
// specification.
//
type Class interface {
	// IsWhitespace returns true if b matches production S of the XML
	// specification.
	IsWhitespace(b byte) bool
}

type xml10 struct{}

// XML10 implements Class for https://www.w3.org/TR/xml/.
//
var XML10 Class = xml10{}

func (xml10) IsWhitespace(b byte) bool {
	return isSpace(b)
}

func (xml10) String() string { return "XML 1.0" }

type xml11 struct{}

// XML11 implements Class for https://www.w3.org/TR/xml11/.
//
var XML11 Class = xml11{}

// IsWhitespace is identical to XML 1.0: NEL and LSEP are end-of-line
// characters in XML 1.1, not white space.
//
func (xml11) IsWhitespace(b byte) bool {
	return isSpace(b)
}

func (xml11) String() string { return "XML 1.1" }

func isSpace(b byte) bool {
	return b == 0x20 || b == 0x09 || b == 0x0D || b == 0x0A
}

// ByVersion returns the Class for the given XML version string ("1.0" or
// "1.1"), or nil.
//
func ByVersion(v string) Class {
	switch v {
	case "1.0":
		return XML10
	case "1.1":
		return XML11
	}
	return nil
}
