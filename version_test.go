package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionBasic(t *testing.T) {
	tests := []struct {
		in    string
		major int64
		minor int64
		patch int64
		pre   []string
	}{
		{"1.2.3", 1, 2, 3, nil},
		{"v1.2.3", 1, 2, 3, nil},
		{" 1.2.3 ", 1, 2, 3, nil},
		{"1.2.3-beta.1", 1, 2, 3, []string{"beta", "1"}},
		{"1.2.3-0", 1, 2, 3, []string{"0"}},
		{"1.2.3+build", 1, 2, 3, nil},
	}

	for _, tc := range tests {
		v := ParseVersion(tc.in, DefaultOptions)
		require.Falsef(t, v.IsEmpty(), "input %q should parse", tc.in)
		assert.Equal(t, tc.major, v.Major, tc.in)
		assert.Equal(t, tc.minor, v.Minor, tc.in)
		assert.Equal(t, tc.patch, v.Patch, tc.in)
		assert.Equal(t, tc.pre, v.Prerelease, tc.in)
	}
}

func TestParseVersionInvalidIsEmpty(t *testing.T) {
	for _, in := range []string{"not a version", "1.2", "blerg", "false"} {
		v := ParseVersion(in, DefaultOptions)
		assert.True(t, v.IsEmpty(), in)
	}
}

// "*" is range syntax, not a version: it does not match the version
// grammar, so ParseVersion yields the empty sentinel, not AnyVersion.
func TestParseVersionStar(t *testing.T) {
	v := ParseVersion("*", DefaultOptions)
	assert.True(t, v.IsEmpty())
}

func TestVersionString(t *testing.T) {
	v := ParseVersion("1.2.3-beta.1", DefaultOptions)
	assert.Equal(t, "1.2.3-beta.1", v.String())
}

func TestClean(t *testing.T) {
	cases := []struct{ in, out string }{
		{"1.2.3", "1.2.3"},
		{" 1.2.3  ", "1.2.3"},
		{" 1.2.3-4  ", "1.2.3-4"},
		{" 1.2.3-pre  ", "1.2.3-pre"},
		{"  =v1.2.3   ", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"  v1.2.3 ", "1.2.3"},
		{"\t1.2.3", "1.2.3"},
	}

	for _, tc := range cases {
		got, err := Clean(tc.in, DefaultOptions)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, got, tc.in)
	}
}

func TestCleanRejectsRangeExpressions(t *testing.T) {
	for _, in := range []string{">1.2.3", "~1.2.3", "<=1.2.3", "1.2.x"} {
		_, err := Clean(in, DefaultOptions)
		assert.Error(t, err, in)
	}
}

func TestCompareOrdering(t *testing.T) {
	cases := []struct {
		greater, lesser string
		loose           bool
	}{
		{"0.0.0", "0.0.0-foo", false},
		{"0.0.1", "0.0.0", false},
		{"1.0.0", "0.9.9", false},
		{"0.10.0", "0.9.0", false},
		{"0.99.0", "0.10.0", true},
		{"2.0.0", "1.2.3", true},
		{"1.2.3", "1.2.3-asdf", false},
		{"1.2.3-5", "1.2.3-4", false},
		{"1.2.3-a.10", "1.2.3-a.5", false},
		{"1.2.3-a.b", "1.2.3-a.5", false},
		{"1.2.3-a.b", "1.2.3-a", false},
		{"1.2.3-a.b.c.10.d.5", "1.2.3-a.b.c.5.d.100", false},
		{"1.2.3-r2", "1.2.3-r100", false},
		{"1.2.3-r100", "1.2.3-R2", false},
	}

	for _, tc := range cases {
		opts := Options{Loose: tc.loose}
		cmp, err := Compare(tc.greater, tc.lesser, opts)
		require.NoError(t, err, tc.greater)
		assert.Equal(t, 1, cmp, "%s vs %s", tc.greater, tc.lesser)

		eq, err := Compare(tc.greater, tc.greater, opts)
		require.NoError(t, err)
		assert.Equal(t, 0, eq)
	}
}

func TestCompareEquality(t *testing.T) {
	cases := []struct {
		a, b  string
		loose bool
	}{
		{"1.2.3", "v1.2.3", true},
		{"1.2.3", "=1.2.3", true},
		{"1.2.3", " v 1.2.3", true},
		{"1.2.3-0", "v1.2.3-0", true},
		{"1.2.3-beta", " = 1.2.3-beta", true},
		{"1.2.3-beta+build", " = 1.2.3-beta+otherbuild", true},
		{"1.2.3+build", " = 1.2.3+otherbuild", true},
	}

	for _, tc := range cases {
		opts := Options{Loose: tc.loose}
		cmp, err := Compare(tc.a, tc.b, opts)
		require.NoError(t, err, tc.a)
		assert.Equal(t, 0, cmp, "%s vs %s", tc.a, tc.b)

		gte, err := Cmp(tc.a, ">=", tc.b, opts)
		require.NoError(t, err)
		assert.True(t, gte)

		lte, err := Cmp(tc.a, "<=", tc.b, opts)
		require.NoError(t, err)
		assert.True(t, lte)
	}
}

func TestSortVersions(t *testing.T) {
	versions := []Version{
		ParseVersion("1.2.0", DefaultOptions),
		ParseVersion("1.0.0", DefaultOptions),
		ParseVersion("1.1.0-beta", DefaultOptions),
		ParseVersion("1.1.0", DefaultOptions),
	}
	SortVersions(versions)

	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"1.0.0", "1.1.0-beta", "1.1.0", "1.2.0"}, got)
}
