// Package cli parses command-line arguments for the jv commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNoArguments  = errors.New("no arguments provided")
	ErrNoExpression = errors.New("no JSONPath expression provided")
	ErrYAMLStream   = errors.New("-yaml and -stream cannot be combined")
)

// Config represents the configuration for the jv command.
type Config struct {
	// Expression is the JSONPath selector applied to every document.
	Expression string
	// Files are input paths; empty means stdin.
	Files []string

	YAML    bool    // decode input as YAML instead of JSON
	Stream  bool    // treat input as newline-delimited JSON documents
	Rate    float64 // documents per second in stream mode (0 = unlimited)
	Compact bool    // compact output instead of indented
}

// Usage returns the help text for the jv command.
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: jv [options] <expression> [file...]\n\n")
	b.WriteString("Evaluate a JSONPath expression against JSON documents.\n")
	b.WriteString("Reads from stdin when no files are given.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -yaml          decode input as YAML\n")
	b.WriteString("  -stream        treat input as newline-delimited JSON\n")
	b.WriteString("  -rate <n>      documents per second in stream mode (0 = unlimited)\n")
	b.WriteString("  -compact       compact output instead of indented\n")
	b.WriteString("  -h, -help      show this help\n\n")
	b.WriteString("Exit codes: 0 ok, 1 error, 2 usage, 3 no match\n")
	return b.String()
}

// Parse parses command-line arguments and returns a validated Config,
// or a terminal Result when parsing fails or help is requested.
func Parse(args []string) (*Config, *Result) {
	if len(args) == 0 {
		return nil, Usagef("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		yamlInput = fs.Bool("yaml", false, "decode input as YAML")
		stream    = fs.Bool("stream", false, "treat input as newline-delimited JSON")
		rate      = fs.Float64("rate", 0, "documents per second in stream mode (0 for unlimited)")
		compact   = fs.Bool("compact", false, "compact output instead of indented")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, Success(Usage())
		}
		return nil, Usagef("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return nil, Usagef("Error: %v\n\n%s", ErrNoExpression, Usage())
	}

	cfg := &Config{
		Expression: rest[0],
		Files:      rest[1:],
		YAML:       *yamlInput,
		Stream:     *stream,
		Rate:       *rate,
		Compact:    *compact,
	}

	if err := cfg.Validate(); err != nil {
		return nil, Usagef("Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// Validate checks option combinations.
func (c *Config) Validate() error {
	if c.YAML && c.Stream {
		return ErrYAMLStream
	}
	if !strings.HasPrefix(c.Expression, "$") {
		return fmt.Errorf("expression %q must start with '$'", c.Expression)
	}
	return nil
}
