package semver

import (
	"strings"
)

// Range is a disjunction of conjunctions of Comparators: it matches a
// Version if at least one inner slice ("alternative") matches, and an
// alternative matches if every Comparator in it matches. Range also
// carries the Options it was parsed with, since the prerelease gate in
// Test needs IncludePrerelease at match time, not just at parse time.
type Range struct {
	comparators [][]Comparator
	opts        Options
	raw         string
}

// ParseRange parses a node-semver-style range expression: one or more
// "||"-separated alternatives, each a whitespace-separated conjunction
// of primitive comparators, hyphen ranges, caret ranges, tilde ranges
// and X-ranges.
//
// In strict mode (opts.Loose false) a token that fails to normalize
// into a valid comparator is a hard KindInvalidComparator error. In
// loose mode unparseable tokens are silently dropped (node-semver's own
// "loose" behavior). An alternative left with no comparators (a blank
// one, one made only of wildcards such as "*" or "x", or in loose mode
// one whose tokens were all dropped) matches every version.
func ParseRange(input string, opts Options) (Range, error) {
	raw := strings.TrimSpace(input)
	rawParts := getPatterns().rangeOr.Split(raw, -1)

	comparators := make([][]Comparator, 0, len(rawParts))
	for _, part := range rawParts {
		alt, err := parseAlternative(part, opts)
		if err != nil {
			return Range{}, err
		}
		comparators = append(comparators, alt)
	}

	if len(comparators) == 0 {
		return Range{}, newError(KindInvalidRange, input, nil)
	}

	return Range{comparators: comparators, opts: opts, raw: raw}, nil
}

// MustParseRange is ParseRange's panicking variant, for package-level
// range literals where failure indicates a programming error.
func MustParseRange(input string, opts Options) Range {
	r, err := ParseRange(input, opts)
	if err != nil {
		panic(err)
	}
	return r
}

// parseAlternative normalizes one "||"-delimited alternative (a hyphen
// range, or a space-joined run of primitive/caret/tilde/x-range
// tokens) into a conjunction of Comparators.
func parseAlternative(alt string, opts Options) ([]Comparator, error) {
	p := getPatterns()

	alt = strings.TrimSpace(alt)
	if alt == "" {
		return []Comparator{anyComparator()}, nil
	}

	hyphenRe := p.hyphenRange
	if opts.Loose {
		hyphenRe = p.hyphenLoose
	}
	alt = hyphenRe.ReplaceAllStringFunc(alt, func(m string) string {
		sub := hyphenRe.FindStringSubmatch(m)
		return hyphenReplace(sub, opts)
	})

	alt = p.comparatorTrim.ReplaceAllString(alt, "$1$2$3")
	alt = p.tildeTrim.ReplaceAllString(alt, "$1~")
	alt = p.caretTrim.ReplaceAllString(alt, "$1^")
	alt = strings.TrimSpace(alt)
	alt = p.splitSpaces.ReplaceAllString(alt, " ")

	tokens := strings.Split(alt, " ")
	comparators := make([]Comparator, 0, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		normalized := replaceCarets(tok, opts)
		normalized = replaceTildes(normalized, opts)
		normalized = replaceXRanges(normalized, opts)
		normalized = replaceStars(normalized, opts)

		for _, sub := range strings.Fields(normalized) {
			cmp, err := NewComparator(sub, opts)
			if err != nil {
				if opts.Loose {
					continue
				}
				return nil, err
			}
			comparators = append(comparators, cmp)
		}
	}

	if len(comparators) == 0 {
		return []Comparator{anyComparator()}, nil
	}

	return comparators, nil
}

// hyphenReplace rewrites a single "A - B" hyphen range into its
// ">=A <=B"-equivalent comparator pair, filling in wildcard components
// per node-semver's table (a wildcard lower bound drops its clause
// entirely; a wildcard upper bound drops the patch/minor component it
// stands in for and switches the bound to an exclusive "<").
func hyphenReplace(m []string, opts Options) string {
	if m == nil {
		return ""
	}

	fromM, fromm, fromp := m[2], m[3], m[4]
	toM, tom, top, toPre := m[8], m[9], m[10], m[11]

	var from string
	if isXComponent(fromM) {
		from = ""
	} else if isXComponent(fromm) {
		from = ">=" + fromM + ".0.0"
	} else if isXComponent(fromp) {
		from = ">=" + fromM + "." + fromm + ".0"
	} else {
		from = ">=" + fromM + "." + fromm + "." + fromp
	}

	var to string
	switch {
	case isXComponent(toM):
		to = ""
	case isXComponent(tom):
		to = "<" + itoa(mustAtoi(toM)+1) + ".0.0"
	case isXComponent(top):
		to = "<" + toM + "." + itoa(mustAtoi(tom)+1) + ".0"
	case toPre != "":
		to = "<=" + toM + "." + tom + "." + top + "-" + toPre
	default:
		to = "<=" + toM + "." + tom + "." + top
	}

	switch {
	case from != "" && to != "":
		return from + " " + to
	case from != "":
		return from
	case to != "":
		return to
	default:
		return "*"
	}
}

func mustAtoi(s string) int64 {
	n, err := parseComponent(s)
	if err != nil {
		return 0
	}
	return n
}

// Test reports whether version satisfies the range: some alternative
// must match in full, subject to the prerelease gate.
//
// The gate (spec.md §4.5): if version carries a prerelease and
// opts.IncludePrerelease is false, version only satisfies a given
// alternative if some comparator IN THAT SAME ALTERNATIVE shares
// version's exact major.minor.patch triple and itself carries a
// prerelease tag. A comparator in some other alternative doesn't
// count — the gate is scoped to the conjunction being tested, exactly
// like the comparators it's being tested alongside.
func (r Range) Test(version Version) bool {
	if version.IsEmpty() {
		return false
	}

	gated := version.HasPrerelease() && !r.opts.IncludePrerelease

	for _, alt := range r.comparators {
		if !testAlternative(alt, version) {
			continue
		}
		if gated && !alternativeAllowsPrereleaseOf(alt, version) {
			continue
		}
		return true
	}
	return false
}

func testAlternative(alt []Comparator, version Version) bool {
	for _, c := range alt {
		if !c.Test(version) {
			return false
		}
	}
	return true
}

// alternativeAllowsPrereleaseOf implements the gate lookup described on
// Test, scoped to a single alternative.
func alternativeAllowsPrereleaseOf(alt []Comparator, version Version) bool {
	for _, c := range alt {
		if c.empty || c.Version.IsAny() {
			continue
		}
		if !c.Version.HasPrerelease() {
			continue
		}
		if c.Version.Major == version.Major &&
			c.Version.Minor == version.Minor &&
			c.Version.Patch == version.Patch {
			return true
		}
	}
	return false
}

// String renders the range in its normalized "alt1 || alt2 || ..."
// comparator form (not the original input text).
func (r Range) String() string {
	alts := make([]string, len(r.comparators))
	for i, alt := range r.comparators {
		parts := make([]string, len(alt))
		for j, c := range alt {
			parts[j] = c.String()
		}
		alts[i] = strings.Join(parts, " ")
	}
	return strings.Join(alts, " || ")
}
