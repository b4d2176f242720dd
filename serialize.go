package semver

import (
	"encoding/json"
)

// Version and Range serialize to/from their canonical string form
// rather than a struct-shaped document: a Range or Version embedded in
// a config file or API payload reads the same as it would in the
// expression language itself. Options serializes as a small object
// with explicit field names.

// MarshalJSON renders v as a JSON string, e.g. "1.2.3-beta.1".
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON parses a JSON string into v using strict Options. An
// empty or unparseable string decodes as EmptyVersion rather than
// erroring, matching ParseVersion's own leniency.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = ParseVersion(s, DefaultOptions)
	return nil
}

// MarshalYAML renders v as its canonical string form.
func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML parses a YAML scalar into v.
func (v *Version) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*v = ParseVersion(s, DefaultOptions)
	return nil
}

// MarshalJSON renders r as its normalized comparator-expression string.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses a JSON string into r using strict Options.
func (r *Range) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRange(s, DefaultOptions)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML renders r as its normalized comparator-expression string.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML parses a YAML scalar into r using strict Options.
func (r *Range) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRange(s, DefaultOptions)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// optionsYAML mirrors Options' fields with explicit lower-camel-case
// names, shared by both the JSON and YAML (un)marshalers so the two
// encodings agree on field naming; kept explicit so Options' encoded
// shape is stable even if internal fields are ever added to it.
type optionsYAML struct {
	Loose             bool `yaml:"loose" json:"loose"`
	IncludePrerelease bool `yaml:"includePrerelease" json:"includePrerelease"`
}

func (o Options) toYAML() optionsYAML {
	return optionsYAML{Loose: o.Loose, IncludePrerelease: o.IncludePrerelease}
}

func (y optionsYAML) toOptions() Options {
	return Options{Loose: y.Loose, IncludePrerelease: y.IncludePrerelease}
}

// MarshalJSON renders o as a small object with explicit field names.
func (o Options) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toYAML())
}

// UnmarshalJSON decodes an object produced by MarshalJSON.
func (o *Options) UnmarshalJSON(data []byte) error {
	var y optionsYAML
	if err := json.Unmarshal(data, &y); err != nil {
		return err
	}
	*o = y.toOptions()
	return nil
}

// MarshalYAML renders o as a small mapping with explicit field names.
func (o Options) MarshalYAML() (interface{}, error) {
	return o.toYAML(), nil
}

// UnmarshalYAML decodes a mapping produced by MarshalYAML.
func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var y optionsYAML
	if err := unmarshal(&y); err != nil {
		return err
	}
	*o = y.toOptions()
	return nil
}
