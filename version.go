package semver

import (
	"sort"
	"strconv"
	"strings"
)

// Version is a parsed semantic version: major.minor.patch, an optional
// ordered prerelease identifier list, and build metadata (parsed but
// discarded, per spec — it never participates in ordering).
//
// Version is immutable once constructed. The zero Version is a normal
// "0.0.0" with neither the any nor the empty sentinel set; use
// ParseVersion, AnyVersion or EmptyVersion to obtain the sentinel
// forms.
type Version struct {
	Major, Minor, Patch int64
	Prerelease          []string

	any   bool
	empty bool
}

// AnyVersion returns the sentinel Version used by comparators derived
// from a bare "*"/"x" wildcard: it matches anything a Comparator tests
// it against.
func AnyVersion() Version {
	return Version{any: true}
}

// EmptyVersion returns the sentinel Version produced when parsing fails
// or the input was blank. It is distinct from AnyVersion: IsEmpty
// versions do not satisfy comparators.
func EmptyVersion() Version {
	return Version{empty: true}
}

// IsAny reports whether v is the AnyVersion sentinel.
func (v Version) IsAny() bool { return v.any }

// IsEmpty reports whether v is the EmptyVersion sentinel (unparsed or
// unparseable input).
func (v Version) IsEmpty() bool { return v.empty }

// HasPrerelease reports whether v carries one or more prerelease
// identifiers.
func (v Version) HasPrerelease() bool { return len(v.Prerelease) > 0 }

// versionFromParts builds a normal Version from already-parsed
// components. prerelease, if non-empty, is split on "." per spec.md
// §4.2.
func versionFromParts(major, minor, patch int64, prerelease string) Version {
	var pre []string
	if prerelease != "" {
		pre = strings.Split(prerelease, ".")
	}
	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: pre}
}

// ParseVersion parses input as a Version. Unlike most of this package's
// entry points, a string that fails to match the version grammar is not
// an error: it produces EmptyVersion, matching the reference
// implementation's behavior (spec.md §4.2, §7). Callers that want a hard
// error on unparseable input should use Parse instead.
func ParseVersion(input string, opts Options) Version {
	p := getPatterns()
	re := p.version
	if opts.Loose {
		re = p.versionLoose
	}

	trimmed := strings.TrimSpace(input)
	m := re.FindStringSubmatch(trimmed)
	if m == nil {
		return EmptyVersion()
	}

	if m[1] == "" {
		return AnyVersion()
	}

	major, err := parseComponent(m[1])
	if err != nil {
		return EmptyVersion()
	}
	minor, err := parseComponent(m[2])
	if err != nil {
		return EmptyVersion()
	}
	patch, err := parseComponent(m[3])
	if err != nil {
		return EmptyVersion()
	}

	return versionFromParts(major, minor, patch, m[4])
}

func parseComponent(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// String renders v in canonical "major.minor.patch[-prerelease]" form.
// EmptyVersion renders as "".
func (v Version) String() string {
	if v.empty {
		return ""
	}
	var b strings.Builder
	b.WriteString(strconv.FormatInt(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(v.Patch, 10))
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	return b.String()
}

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater
// than other, per SemVer §11 total ordering (build metadata excluded).
func (v Version) Compare(other Version) int {
	if c := compareMain(v, other); c != 0 {
		return c
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

func compareMain(a, b Version) int {
	if d := compareInt64(a.Major, b.Major); d != 0 {
		return d
	}
	if d := compareInt64(a.Minor, b.Minor); d != 0 {
		return d
	}
	return compareInt64(a.Patch, b.Patch)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease implements SemVer §11.4: a version with a
// prerelease is lower precedence than one without; otherwise compare
// identifier by identifier.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return compareIdentifiers(a[i], b[i])
	}

	return compareInt64(int64(len(a)), int64(len(b)))
}

// compareIdentifiers compares a single pair of prerelease identifiers.
// Numeric identifiers compare numerically and always sort below
// alphanumeric ones; two alphanumeric identifiers compare byte-wise
// (ASCII-only, per spec.md §1 non-goals).
func compareIdentifiers(a, b string) int {
	an, aErr := strconv.ParseInt(a, 10, 64)
	bn, bErr := strconv.ParseInt(b, 10, 64)

	switch {
	case aErr == nil && bErr == nil:
		return compareInt64(an, bn)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortVersions sorts versions in place, ascending, using Compare. A
// thin, fully-derivable convenience over Compare — mirrors the
// sortability the reference crate gets for free from deriving Ord
// (original_source/src/version.rs's test_sort).
func SortVersions(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}
