// Command jv evaluates a JSONPath expression against JSON, NDJSON or
// YAML documents and prints the matches.
package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jv"
	"github.com/jacoelho/jv/internal/cli"
	"github.com/jacoelho/jv/internal/ratelimit"
	"github.com/jacoelho/jv/query"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg, res := cli.Parse(args)
	if res != nil {
		res.Print()
		return res.ExitCode
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	matched, err := process(ctx, cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}
	if !matched {
		return cli.ExitNoMatch
	}
	return cli.ExitOK
}

// process runs the query over every input and reports whether anything
// matched.
func process(ctx context.Context, cfg *cli.Config, out io.Writer) (bool, error) {
	inputs := cfg.Files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	matched := false
	for _, name := range inputs {
		r, closeInput, err := open(name)
		if err != nil {
			return matched, err
		}

		var m bool
		if cfg.Stream {
			m, err = processStream(ctx, cfg, r, out)
		} else {
			m, err = processDocument(cfg, r, out)
		}
		closeInput()
		if err != nil {
			return matched, fmt.Errorf("%s: %w", name, err)
		}
		matched = matched || m
	}
	return matched, nil
}

func open(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func processDocument(cfg *cli.Config, r io.Reader, out io.Writer) (bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}

	var root jv.Value
	if cfg.YAML {
		root, err = decodeYAML(data)
	} else {
		root, err = jv.Parse(data)
	}
	if err != nil {
		return false, err
	}

	return emit(cfg, root, out)
}

func processStream(ctx context.Context, cfg *cli.Config, r io.Reader, out io.Writer) (bool, error) {
	limiter := ratelimit.New(cfg.Rate)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	matched := false
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return matched, err
		}

		root, err := jv.Parse(raw)
		if err != nil {
			return matched, fmt.Errorf("line %d: %w", line, err)
		}
		m, err := emit(cfg, root, out)
		if err != nil {
			return matched, fmt.Errorf("line %d: %w", line, err)
		}
		matched = matched || m
	}
	return matched, scanner.Err()
}

func decodeYAML(data []byte) (jv.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return jv.Value{}, fmt.Errorf("decode YAML: %w", err)
	}
	return jv.FromInterface(raw)
}

func emit(cfg *cli.Config, root jv.Value, out io.Writer) (bool, error) {
	matches, err := query.Select(root, cfg.Expression)
	if err != nil {
		return false, err
	}

	for _, match := range matches {
		var data []byte
		if cfg.Compact {
			data, err = jv.Marshal(match)
		} else {
			data, err = jv.MarshalIndent(match, "", "  ")
		}
		if err != nil {
			return false, err
		}
		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			return false, err
		}
	}
	return len(matches) > 0, nil
}
