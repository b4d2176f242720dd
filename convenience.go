package semver

import "strings"

// This file mirrors the free-function comparison API the reference
// crate exposes alongside its builder types (original_source's
// compare_fns.rs), so callers who just want "does A satisfy range B"
// don't have to reach for the Builder machinery.

// Parse parses input as a Version under opts, returning an
// *Error(KindInvalidVersion) if input doesn't match the version
// grammar. Unlike ParseVersion, failure is never silent.
func Parse(input string, opts Options) (Version, error) {
	return parseVersionStrict(input, opts)
}

// Clean extracts and normalizes a version out of input the way npm's
// semver.clean does: it strips a leading "v"/"=" and surrounding
// whitespace, then re-renders through Version.String so that e.g.
// "  =v1.2.3  " becomes "1.2.3". Returns an error if, after stripping,
// no valid version remains.
func Clean(input string, opts Options) (string, error) {
	stripped := getPatterns().cleanVersion.ReplaceAllString(strings.TrimSpace(input), "")
	v, err := Parse(stripped, opts)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Compare returns -1, 0 or 1 comparing a and b, after parsing both
// under opts. Returns an error if either side fails to parse.
func Compare(a, b string, opts Options) (int, error) {
	va, err := Parse(a, opts)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b, opts)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// Cmp applies operator op (as a comparator operator string: ">", "<",
// ">=", "<=", "=", "==", "!=", "!", "===", "!==") between a and b, after
// parsing both under opts. An op string outside that set is a
// KindInvalidComparator error rather than silently treated as
// equality.
func Cmp(a, op, b string, opts Options) (bool, error) {
	if !isComparatorOperatorToken(op) {
		return false, newError(KindInvalidComparator, op, nil)
	}

	cmp, err := Compare(a, b, opts)
	if err != nil {
		return false, err
	}

	switch NewOperator(op).normalize() {
	case OpEmpty:
		return cmp == 0, nil
	case OpNe, OpStrictNe:
		return cmp != 0, nil
	case OpGt:
		return cmp > 0, nil
	case OpGte:
		return cmp >= 0, nil
	case OpLt:
		return cmp < 0, nil
	default:
		return cmp <= 0, nil
	}
}

// isComparatorOperatorToken reports whether op is one of the operator
// spellings NewOperator assigns a non-Empty meaning to, or the
// explicit equality spellings that normalize to Empty. NewOperator
// itself maps every other string to OpEmpty too, so this check has to
// live here rather than be inferred from its return value.
func isComparatorOperatorToken(op string) bool {
	switch op {
	case ">", "<", ">=", "<=", "=", "==", "!=", "!", "===", "!==":
		return true
	default:
		return false
	}
}

// Satisfies reports whether version satisfies rangeExpr, parsing both
// under opts. Returns an error if either fails to parse.
func Satisfies(version, rangeExpr string, opts Options) (bool, error) {
	v, err := Parse(version, opts)
	if err != nil {
		return false, err
	}
	r, err := ParseRange(rangeExpr, opts)
	if err != nil {
		return false, err
	}
	return r.Test(v), nil
}
