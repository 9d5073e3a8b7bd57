// Package config provides configuration management for the colls listing
// reformatter.
package config

// Default configuration values for colls.
const (
	// DefaultFormat selects every column in canonical order with
	// single-space separators.
	DefaultFormat = "1234567890*"

	// DefaultMaxPad is the padding threshold above which filename and
	// target padding is reverse-highlighted. Zero disables highlighting.
	DefaultMaxPad = 5

	// DefaultColorMode controls the --color argument passed to ls.
	DefaultColorMode = "auto"

	// DefaultListPath is the listing binary invoked directly, bypassing
	// shell aliases so output stays parseable.
	DefaultListPath = "/bin/ls"
)

// DefaultListFlags are always passed to ls: long format, quoted names,
// almost-all, human sizes, type indicators. The tokenizer depends on the
// line shape these produce.
var DefaultListFlags = []string{"-lQAhF"}
