package jsonpath

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ParseError reports a malformed JSON document or a malformed JSONPath
// expression. The wrapped parser message includes the offending position.
type ParseError struct {
	What string // "document" or "expression"
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvalError reports a failure while applying a compiled expression to a
// well-formed document.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluation failed: %v", e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// FilterResult is the outcome of a successful filter application.
type FilterResult struct {
	Matches int    `json:"matches"`
	Output  string `json:"output"`
}

// ParseDocument parses a JSON document into its in-memory representation.
func ParseDocument(input string) (any, error) {
	doc, err := oj.ParseString(input)
	if err != nil {
		return nil, &ParseError{What: "document", Err: err}
	}
	return doc, nil
}

// ParseExpression compiles a JSONPath expression. Supported syntax includes
// $, .field, [index], [*], ..field, filter predicates [?(@.f > v)] and
// multi-selection [a,b].
func ParseExpression(expr string) (jp.Expr, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, &ParseError{What: "expression", Err: err}
	}
	return x, nil
}

// Evaluate returns all values matched by the expression, in document order
// (depth-first, left-to-right). An empty result is valid, not an error.
func Evaluate(doc any, x jp.Expr) (results []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = &EvalError{Err: fmt.Errorf("%v", r)}
		}
	}()
	return x.Get(doc), nil
}

// Render formats match results for display. The single/multiple asymmetry is
// a behavioral contract: zero matches render as an empty array, exactly one
// match renders as that value alone (not wrapped), and two or more matches
// render as a JSON array of the values in match order.
func Render(results []any) string {
	switch len(results) {
	case 0:
		return "[]"
	case 1:
		return prettyJSON(results[0])
	default:
		return prettyJSON(results)
	}
}

// prettyJSON renders a value with 2-space indentation. Object keys are
// sorted so output is deterministic.
func prettyJSON(v any) string {
	return oj.JSON(v, &ojg.Options{Indent: 2, Sort: true})
}

// Filter parses the document and expression, evaluates, and renders the
// result. Only a call that returns without error is eligible for history
// recording.
func Filter(input string, expr string) (*FilterResult, error) {
	doc, err := ParseDocument(input)
	if err != nil {
		return nil, err
	}
	x, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}
	results, err := Evaluate(doc, x)
	if err != nil {
		return nil, err
	}
	return &FilterResult{
		Matches: len(results),
		Output:  Render(results),
	}, nil
}
