package semver

// Options controls the two parsing modes this package exposes
// throughout: Version, Comparator and Range construction all take an
// Options value.
//
//   - Loose relaxes the grammar the way node-semver's "loose" flag
//     does: leading "v"/"=" and whitespace are tolerated, and numeric
//     identifiers are not required to be free of leading zeros.
//   - IncludePrerelease disables the prerelease gate (spec.md §4.5):
//     normally a prerelease version only satisfies a range if some
//     comparator in that range explicitly names the same
//     major.minor.patch triple with a prerelease tag of its own.
type Options struct {
	Loose             bool
	IncludePrerelease bool
}

// DefaultOptions is the zero value: strict grammar, prerelease gate
// enabled. Exported as a named value since "Options{}" reads poorly at
// call sites.
var DefaultOptions = Options{}

// OptionsBuilder is a small fluent helper over Options. Builder[T] (see
// builder.go) does not use it; it holds an Options value directly.
type OptionsBuilder struct {
	opts Options
}

// NewOptionsBuilder starts from DefaultOptions.
func NewOptionsBuilder() OptionsBuilder {
	return OptionsBuilder{opts: DefaultOptions}
}

func (b OptionsBuilder) Loose(v bool) OptionsBuilder {
	b.opts.Loose = v
	return b
}

func (b OptionsBuilder) IncludePrerelease(v bool) OptionsBuilder {
	b.opts.IncludePrerelease = v
	return b
}

func (b OptionsBuilder) Build() Options {
	return b.opts
}
