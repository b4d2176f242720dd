package semver

import (
	"strconv"
	"strings"
)

// Comparator is a primitive predicate: an Operator paired with a
// Version to compare candidates against.
//
// empty marks the unit/match-all element produced when parsing a blank
// token (Version is then AnyVersion and Operator is OpEmpty).
type Comparator struct {
	Operator Operator
	Version  Version
	empty    bool
}

// anyComparator is the unit element: it matches every version.
func anyComparator() Comparator {
	return Comparator{Operator: OpEmpty, Version: AnyVersion(), empty: true}
}

// NewComparator parses a single primitive comparator token such as
// ">=1.2.3" or "1.2.3" or "". It does not desugar carets, tildes,
// x-ranges or hyphen ranges — callers normalize those first (see
// parseAlternative in range.go / the rewrite* functions), matching spec.md
// §4.4's construction contract.
func NewComparator(token string, opts Options) (Comparator, error) {
	p := getPatterns()
	re := p.comparator
	if opts.Loose {
		re = p.comparatorLoose
	}

	m := re.FindStringSubmatch(token)
	if m == nil {
		return Comparator{}, newError(KindInvalidComparator, token, nil)
	}

	if m[2] == "" {
		// Either the whole input was blank (the "|^$" branch of the
		// regex), or we matched the operator-only prefix against an
		// empty version body.
		return anyComparator(), nil
	}

	major, minor, patch, pre := m[3], m[4], m[5], m[6]
	majorN, err := parseComponent(major)
	if err != nil {
		return Comparator{}, newError(KindParseInt, token, err)
	}
	minorN, err := parseComponent(minor)
	if err != nil {
		return Comparator{}, newError(KindParseInt, token, err)
	}
	patchN, err := parseComponent(patch)
	if err != nil {
		return Comparator{}, newError(KindParseInt, token, err)
	}

	op := NewOperator(m[1]).normalize()
	return Comparator{
		Operator: op,
		Version:  versionFromParts(majorN, minorN, patchN, pre),
	}, nil
}

// Test reports whether version satisfies this comparator.
func (c Comparator) Test(version Version) bool {
	if c.Version.IsAny() {
		return true
	}
	if c.empty {
		return false
	}

	cmp := version.Compare(c.Version)
	switch c.Operator {
	case OpEmpty, OpEq, OpStrictEq:
		return cmp == 0
	case OpNe, OpStrictNe:
		return cmp != 0
	case OpGt:
		return cmp > 0
	case OpGte:
		return cmp >= 0
	case OpLt:
		return cmp < 0
	case OpLte:
		return cmp <= 0
	default:
		return false
	}
}

// String renders the comparator in "<op><version>" form, e.g. ">=1.2.3"
// or "1.2.3" (OpEmpty has no displayed operator). The unit element
// renders as "*".
func (c Comparator) String() string {
	if c.empty {
		return "*"
	}
	return c.Operator.String() + c.Version.String()
}

// --- Sugar rewrite passes -------------------------------------------
//
// Each pass is copy-on-write: it returns the input string unchanged
// (same underlying bytes, no allocation) when the token doesn't match
// its pattern, and only builds a new string when a rewrite applies.
// This mirrors spec.md §9's "Allocation discipline" note and chains
// naturally: replaceXRanges(replaceTildes(replaceCarets(s))) degrades
// to zero extra allocations on the already-primitive common path.

// replaceCarets desugars a caret range token, e.g. "^1.2.3" ->
// ">=1.2.3 <2.0.0". Tokens that are not a caret range pass through
// unchanged.
func replaceCarets(s string, opts Options) string {
	p := getPatterns()
	re := p.caret
	if opts.Loose {
		re = p.caretLoose
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return rewriteCaret(m[1], m[2], m[3], m[4])
}

func rewriteCaret(M, m, p, pre string) string {
	if isXComponent(M) {
		return ""
	}

	major, _ := strconv.ParseInt(M, 10, 64)

	if isXComponent(m) {
		return gte(M, "0", "0", "") + " " + lt(itoa(major+1), "0", "0", "")
	}

	minor, _ := strconv.ParseInt(m, 10, 64)

	if isXComponent(p) {
		if major == 0 {
			return gte(M, m, "0", "") + " " + lt(M, itoa(minor+1), "0", "")
		}
		return gte(M, m, "0", "") + " " + lt(itoa(major+1), "0", "0", "")
	}

	patch, _ := strconv.ParseInt(p, 10, 64)
	prefixedPre := withPrereleasePrefix(pre)

	if prefixedPre != "" {
		switch {
		case major == 0 && minor == 0:
			return gte(M, m, p, prefixedPre) + " " + lt(M, m, itoa(patch+1), "")
		case major == 0:
			return gte(M, m, p, prefixedPre) + " " + lt(M, itoa(minor+1), "0", "")
		default:
			return gte(M, m, p, prefixedPre) + " " + lt(itoa(major+1), "0", "0", "")
		}
	}

	switch {
	case major == 0 && minor == 0:
		return gte(M, m, p, "") + " " + lt(M, m, itoa(patch+1), "")
	case major == 0:
		return gte(M, m, p, "") + " " + lt(M, itoa(minor+1), "0", "")
	default:
		return gte(M, m, p, "") + " " + lt(itoa(major+1), "0", "0", "")
	}
}

// replaceTildes desugars a tilde (or "~>") range token, e.g. "~1.2.3"
// -> ">=1.2.3 <1.3.0".
func replaceTildes(s string, opts Options) string {
	p := getPatterns()
	re := p.tilde
	if opts.Loose {
		re = p.tildeLoose
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return rewriteTilde(m[1], m[2], m[3], m[4])
}

func rewriteTilde(M, m, p, pre string) string {
	if isXComponent(M) {
		return ""
	}

	major, _ := strconv.ParseInt(M, 10, 64)

	if isXComponent(m) {
		return gte(M, "0", "0", "") + " " + lt(itoa(major+1), "0", "0", "")
	}

	minor, _ := strconv.ParseInt(m, 10, 64)

	if isXComponent(p) {
		return gte(M, m, "0", "") + " " + lt(M, itoa(minor+1), "0", "")
	}

	prefixedPre := withPrereleasePrefix(pre)
	return gte(M, m, p, prefixedPre) + " " + lt(M, itoa(minor+1), "0", "")
}

// replaceXRanges desugars a plain X-range comparator token, e.g.
// ">1.2.x" -> ">=1.3.0", "1.2.x" -> ">=1.2.0 <1.3.0".
func replaceXRanges(s string, opts Options) string {
	p := getPatterns()
	re := p.xrange
	if opts.Loose {
		re = p.xrangeLoose
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	if !isXComponent(m[2]) && !isXComponent(m[3]) && !isXComponent(m[4]) {
		// Fully specified: nothing to desugar, and any prerelease or
		// build suffix stays on the token.
		return s
	}
	return rewriteXRange(m[1], m[2], m[3], m[4])
}

func rewriteXRange(gtlt, M, m, p string) string {
	xM := isXComponent(M)
	xm := xM || isXComponent(m)
	xp := xm || isXComponent(p)
	anyX := xp

	if gtlt == "=" && anyX {
		gtlt = ""
	}

	if xM {
		if gtlt == ">" || gtlt == "<" {
			return "<0.0.0"
		}
		return "*"
	}

	major, _ := strconv.ParseInt(M, 10, 64)
	minor, _ := strconv.ParseInt(m, 10, 64)

	if gtlt != "" && anyX {
		if xm {
			m = "0"
		}
		p = "0"

		switch gtlt {
		case ">":
			gtlt = ">="
			if xm {
				M = itoa(major + 1)
				m = "0"
				p = "0"
			} else {
				m = itoa(minor + 1)
				p = "0"
			}
		case "<=":
			gtlt = "<"
			if xm {
				M = itoa(major + 1)
			} else {
				m = itoa(minor + 1)
			}
		}

		return gtlt + M + "." + m + "." + p
	}

	if xm {
		return gte(M, "0", "0", "") + " " + lt(itoa(major+1), "0", "0", "")
	}
	if xp {
		return gte(M, m, "0", "") + " " + lt(M, itoa(minor+1), "0", "")
	}

	return gtlt + M + "." + m + "." + p
}

// replaceStars strips any remaining "op? *" segment down to the empty
// string; an alternative left with no tokens becomes the match-all unit
// element in parseAlternative. This matches the reference's actual behavior (a bare "*"
// range has no comparator at all, rather than becoming ">=0.0.0").
func replaceStars(s string, _ Options) string {
	p := getPatterns()
	if p.star.MatchString(strings.TrimSpace(s)) {
		return ""
	}
	return s
}

func withPrereleasePrefix(pre string) string {
	if pre == "" {
		return ""
	}
	if strings.HasPrefix(pre, "-") {
		return pre
	}
	return "-" + pre
}

func gte(major, minor, patch, pre string) string {
	return ">=" + major + "." + minor + "." + patch + pre
}

func lt(major, minor, patch, pre string) string {
	return "<" + major + "." + minor + "." + patch + pre
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
