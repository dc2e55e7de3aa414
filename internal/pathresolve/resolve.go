// Package pathresolve reads sub-values out of arbitrary Go values using dot-notation
// paths such as "valuationData.Collapsed.rows[2].label".
//
// Records, string-keyed maps and sequences are traversed uniformly. Resolution is a pure
// read: it never mutates its input, keeps no state and is safe for concurrent use.
// Every failure (missing member, nil value, out-of-range index, indexing a non-sequence,
// malformed segment) is reported the same way, as not found.
package pathresolve

import "strings"

// Resolve returns the value addressed by path inside root, and false when nothing is
// there. A nil root and a blank path are both not found.
func Resolve(root any, path string) (any, bool) {
	if root == nil || strings.TrimSpace(path) == "" {
		return nil, false
	}
	v := ParsePath(path).Walk(ValueOf(root))
	if v.IsAbsent() {
		return nil, false
	}
	return v.Interface(), true
}

// Walk applies p to root segment by segment. The result is absent as soon as any step
// lands on an absent value.
func (p Path) Walk(root Value) Value {
	cur := root
	for _, seg := range p {
		if cur.IsAbsent() {
			return Value{}
		}
		cur = cur.lookup(seg.Name)
		if seg.Indexed {
			cur = cur.index(seg.Index)
		}
	}
	return cur
}

// Extract resolves every field against root. The result always contains one entry per
// requested field; unresolved fields map to nil.
func Extract(root any, fields []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, _ := Resolve(root, f)
		out[f] = v
	}
	return out
}
