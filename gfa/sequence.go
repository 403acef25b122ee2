package gfa

import "strings"

// Orientation is the reading direction of a segment within a link or
// path: forward (false, "+") or reverse (true, "-"). Grounded on the
// teacher's strand bool field for primers (true/false reading direction)
// in primers.go, generalized to the two-value orientation enum.
type Orientation bool

// The two orientations.
const (
	Forward Orientation = false
	Reverse Orientation = true
)

// String renders the GFA "+"/"-" form.
func (o Orientation) String() string {
	if o == Reverse {
		return "-"
	}
	return "+"
}

// Other returns the opposite orientation.
func (o Orientation) Other() Orientation {
	return !o
}

// revCompMap is the IUPAC complement table, extended from the teacher's
// four-base map in primers.go (revComp) to the full 15-symbol IUPAC
// alphabet plus "=" and "." per spec.md §9.
var revCompMap = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
	'U': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
	'=': '=', '.': '.',
	'*': '*',
}

// ReverseComplement returns the reverse complement of a sequence.
// The placeholder "*" is returned unchanged.
func ReverseComplement(seq string) string {
	if seq == "*" {
		return seq
	}
	upper := strings.ToUpper(seq)

	out := make([]byte, len(upper))
	for i := 0; i < len(upper); i++ {
		c, ok := revCompMap[upper[i]]
		if !ok {
			c = upper[i]
		}
		out[len(upper)-i-1] = c
	}
	return string(out)
}
