// Package fields repairs delimited records with missing values and splits
// them into discrete field strings.
package fields

import "strings"

// Delimiter separates fields within a record. Quoting and escaping are not
// recognized; a comma is always a field boundary.
const Delimiter = ","

// DefaultSentinel is the placeholder substituted for fields that carry no
// value.
const DefaultSentinel = "nosuppliedvalue"

// Normalizer rewrites missing fields in a raw record with a sentinel value
// before splitting the record on its delimiter.
type Normalizer struct {
	// Sentinel is the placeholder for missing fields. Empty means
	// DefaultSentinel.
	Sentinel string
}

// Default returns a Normalizer using DefaultSentinel.
func Default() Normalizer {
	return Normalizer{Sentinel: DefaultSentinel}
}

// Normalize converts one raw comma-delimited line into an ordered field
// sequence. Repair happens in three passes over the whole string:
//
//  1. An empty leading field gets the sentinel prefixed before its delimiter.
//  2. Each adjacent delimiter pair (an empty interior field) becomes
//     delimiter+sentinel+delimiter. The pass is non-overlapping, so a run of
//     three or more delimiters is only partially repaired.
//  3. Remaining delimiters become spaces and the string is split on
//     whitespace runs, discarding empty tokens. An empty trailing field is
//     therefore dropped rather than sentineled.
//
// Fields are never dropped (besides the trailing case above) or reordered.
// An empty line yields an empty sequence. A source field whose value equals
// the sentinel is indistinguishable from a repaired one.
func (n Normalizer) Normalize(line string) []string {
	sentinel := n.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	if strings.HasPrefix(line, Delimiter) {
		line = sentinel + line
	}
	line = strings.ReplaceAll(line, Delimiter+Delimiter, Delimiter+sentinel+Delimiter)

	return strings.Fields(strings.ReplaceAll(line, Delimiter, " "))
}
