// Package config loads the YAML profile of the deepval command: default
// switches for the empty, flatten and digits commands. Unset fields keep the
// library defaults.
package config

// Profile is the top-level YAML document.
//
//	empty:
//	  zero_is_empty: true
//	flatten:
//	  return_unique: true
//	  max_depth: 3
//	digits:
//	  failed_output: original
//	  trim: leading
type Profile struct {
	Empty   EmptyProfile   `yaml:"empty"`
	Flatten FlattenProfile `yaml:"flatten"`
	Digits  DigitsProfile  `yaml:"digits"`
}

// EmptyProfile mirrors emptiness.Options; nil means "library default".
type EmptyProfile struct {
	EmptyStringIsEmpty *bool `yaml:"empty_string_is_empty,omitempty"`
	WhitespaceIsEmpty  *bool `yaml:"whitespace_is_empty,omitempty"`
	ZeroIsEmpty        *bool `yaml:"zero_is_empty,omitempty"`
	FalseIsEmpty       *bool `yaml:"false_is_empty,omitempty"`
	TreatMapsAsObjects *bool `yaml:"treat_maps_as_objects,omitempty"`
}

// FlattenProfile mirrors flatten.Options.
type FlattenProfile struct {
	ReturnUnique *bool `yaml:"return_unique,omitempty"`
	DropEmpty    *bool `yaml:"drop_empty,omitempty"`
	MaxDepth     *int  `yaml:"max_depth,omitempty"`
}

// DigitsProfile mirrors digits.Options; modes are spelled as in the CLI flags.
type DigitsProfile struct {
	FailedOutput     string `yaml:"failed_output,omitempty"`
	IncompleteFormat *bool  `yaml:"incomplete_format,omitempty"`
	LastDigitEnds    *bool  `yaml:"last_digit_ends,omitempty"`
	Expand           *bool  `yaml:"expand,omitempty"`
	Trim             string `yaml:"trim,omitempty"`
}
