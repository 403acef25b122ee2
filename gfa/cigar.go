package gfa

import (
	"regexp"
	"strconv"
	"strings"
)

// CIGAROp is one length+operation pair of a CIGAR string, e.g. "12M".
type CIGAROp struct {
	Length int
	Op     byte
}

// CIGAR is a parsed alignment description. Placeholder CIGARs (raw == "*")
// have Ops == nil. CIGARs are opaque per spec: validated syntactically only,
// never interpreted beyond the single-M-operation collapse used by merge.
type CIGAR struct {
	raw string
	Ops []CIGAROp
}

var cigarOpRe = regexp.MustCompile(`([0-9]+)([MIDNSHPX=])`)
var cigarRe = regexp.MustCompile(`^(\*|([0-9]+[MIDNSHPX=])+)$`)

// String returns the canonical CIGAR text ("*" for a placeholder).
func (c CIGAR) String() string {
	if c.raw != "" {
		return c.raw
	}
	if len(c.Ops) == 0 {
		return "*"
	}
	var b strings.Builder
	for _, op := range c.Ops {
		b.WriteString(strconv.Itoa(op.Length))
		b.WriteByte(op.Op)
	}
	return b.String()
}

// IsPlaceholder reports whether this CIGAR is "*".
func (c CIGAR) IsPlaceholder() bool {
	return len(c.Ops) == 0
}

// SingleM returns the length and true if this CIGAR is exactly one M
// operation (the only overlap shape merge supports besides "*").
func (c CIGAR) SingleM() (int, bool) {
	if len(c.Ops) != 1 || c.Ops[0].Op != 'M' {
		return 0, false
	}
	return c.Ops[0].Length, true
}

func parseCIGAR(raw string) (CIGAR, error) {
	if !cigarRe.MatchString(raw) {
		return CIGAR{}, formatErrorf("%q is not a valid CIGAR string", raw)
	}
	if raw == "*" {
		return CIGAR{raw: "*"}, nil
	}
	matches := cigarOpRe.FindAllStringSubmatch(raw, -1)
	ops := make([]CIGAROp, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return CIGAR{}, formatErrorf("%q has a non-numeric CIGAR length", raw)
		}
		ops = append(ops, CIGAROp{Length: n, Op: m[2][0]})
	}
	return CIGAR{Ops: ops}, nil
}
