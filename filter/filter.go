// Package filter selects records from API results with expr-lang expressions.
//
// Fields of a JSON object record are top-level variables, so
//
//	reputation > 50 and hasSubstr(address, "@example.com")
//
// matches a users/senders entry. The whole record is also bound to Record,
// which lets non-object values be filtered, e.g. hasPrefix(Record, "a").
//
// Helper names (hasSubstr, hasPrefix, hasSuffix, lower, upper, parseTime,
// daysSince, daysAgo, now) take precedence over record fields of the same
// name; such fields stay reachable as Record.now, Record.lower and so on.
package filter

import (
	"context"
	"fmt"
	"runtime"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/sync/errgroup"
)

// concurrentThreshold is the record count below which Apply stays sequential
const concurrentThreshold = 1000

var defaultCompiler = NewCompiler(WithCache(64))

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Compile compiles expression with the default cached compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate runs the filter against one record
func (f *Filter) Evaluate(record any) (bool, error) {
	result, err := expr.Run(f.program, environment(record, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}
	// Record fields are untyped, so AsBool cannot check every result
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     fmt.Sprintf("expression did not evaluate to a bool (got %T)", result),
		}
	}
	return matched, nil
}

// Match reports whether record matches. Records that fail to evaluate do not match.
func (f *Filter) Match(record any) bool {
	ok, err := f.Evaluate(record)
	return err == nil && ok
}

// Apply returns the matching records in their original order
func (f *Filter) Apply(records []any) []any {
	matches, _ := f.ApplyContext(context.Background(), records)
	return matches
}

// ApplyContext is Apply for large result sets. Above a threshold records are
// evaluated concurrently; the result order is preserved.
func (f *Filter) ApplyContext(ctx context.Context, records []any) ([]any, error) {
	if len(records) < concurrentThreshold {
		matches := make([]any, 0, len(records))
		for _, record := range records {
			if f.Match(record) {
				matches = append(matches, record)
			}
		}
		return matches, nil
	}

	keep := make([]bool, len(records))
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(records) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(records); start += chunk {
		end := min(start+chunk, len(records))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				keep[i] = f.Match(records[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]any, 0, len(records))
	for i, record := range records {
		if keep[i] {
			matches = append(matches, record)
		}
	}
	return matches, nil
}
