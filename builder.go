package semver

// Parser is anything produced from an input string plus Options,
// capable of failing. Version's own construction (ParseVersion) never
// fails — it has its own EmptyVersion sentinel — so it is adapted
// below via parseVersionStrict for use as a Parser[Version].
type Parser[T any] func(input string, opts Options) (T, error)

// Builder accumulates Options fluently before running a Parser. It is
// the generic stand-in for the reference crate's per-type builder:
// rather than one concrete builder per output type, a single
// implementation serves Version, Range, or any future parseable type.
type Builder[T any] struct {
	input  string
	opts   Options
	parser Parser[T]
}

func newBuilder[T any](input string, parser Parser[T]) *Builder[T] {
	return &Builder[T]{input: input, parser: parser}
}

// NewVersionBuilder constructs a Builder that parses input as a
// Version, erroring (rather than returning EmptyVersion) on
// unparseable input.
func NewVersionBuilder(input string) *Builder[Version] {
	return newBuilder(input, parseVersionStrict)
}

// NewRangeBuilder constructs a Builder that parses input as a Range.
func NewRangeBuilder(input string) *Builder[Range] {
	return newBuilder(input, ParseRange)
}

// Loose sets the Loose option and returns b for chaining.
func (b *Builder[T]) Loose(v bool) *Builder[T] {
	b.opts.Loose = v
	return b
}

// IncludePrerelease sets the IncludePrerelease option and returns b for
// chaining.
func (b *Builder[T]) IncludePrerelease(v bool) *Builder[T] {
	b.opts.IncludePrerelease = v
	return b
}

// Parse runs the underlying Parser against the accumulated input and
// Options.
func (b *Builder[T]) Parse() (T, error) {
	return b.parser(b.input, b.opts)
}

func parseVersionStrict(input string, opts Options) (Version, error) {
	v := ParseVersion(input, opts)
	if v.IsEmpty() {
		return Version{}, newError(KindInvalidVersion, input, nil)
	}
	return v, nil
}
