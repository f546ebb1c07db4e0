// Package query evaluates RFC 9535 JSONPath expressions against jv
// values. It complements the typed path engine for callers that take
// selector expressions as input rather than building fragment paths in
// code.
package query

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jv"
)

var (
	// ErrInvalidExpression indicates a JSONPath expression that does not compile.
	ErrInvalidExpression = errors.New("query: invalid expression")

	// ErrNoMatch indicates an expression that matched nothing.
	ErrNoMatch = errors.New("query: no match")
)

// Select returns every value matching the expression, in document order
// as reported by the evaluator. The expression must start with '$'.
func Select(root jv.Value, expr string) ([]jv.Value, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expr, err)
	}

	nodes := path.Select(root.Interface())
	out := make([]jv.Value, 0, len(nodes))
	for _, node := range nodes {
		v, err := jv.FromInterface(node)
		if err != nil {
			return nil, fmt.Errorf("query: convert match: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// First returns the first match or ErrNoMatch.
func First(root jv.Value, expr string) (jv.Value, error) {
	matches, err := Select(root, expr)
	if err != nil {
		return jv.Value{}, err
	}
	if len(matches) == 0 {
		return jv.Value{}, ErrNoMatch
	}
	return matches[0], nil
}
