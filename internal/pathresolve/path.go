package pathresolve

import (
	"math"
	"strconv"
	"strings"
)

// Segment is one dot-separated step of a Path.
//
// A segment is either a field lookup (Indexed == false) or a field lookup followed by a
// sequence index, written name[digits].
type Segment struct {
	Name    string
	Index   int
	Indexed bool
}

func (s Segment) String() string {
	if !s.Indexed {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// Path is an ordered list of segments.
type Path []Segment

// ParsePath splits raw on "." and parses every part. It never fails: parts that are not
// a well-formed indexed segment become literal field names, including empty parts
// produced by leading, trailing or doubled dots.
func ParsePath(raw string) Path {
	parts := strings.Split(raw, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		p[i] = parseSegment(part)
	}
	return p
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// parseSegment recognises name[digits]. Any deviation keeps raw as a plain field name.
func parseSegment(raw string) Segment {
	literal := Segment{Name: raw}

	open := strings.IndexByte(raw, '[')
	if open <= 0 || raw[len(raw)-1] != ']' {
		return literal
	}
	name, digits := raw[:open], raw[open+1:len(raw)-1]
	if !isIdentifier(name) || !isDigits(digits) {
		return literal
	}

	idx, err := strconv.Atoi(digits)
	if err != nil {
		// digits only, so the sole failure is overflow; no sequence is that long
		idx = math.MaxInt
	}
	return Segment{Name: name, Index: idx, Indexed: true}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
