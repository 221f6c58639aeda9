package llmjson

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAString indicates the model output was empty.
	ErrNotAString = errors.New("model output is not a non-empty string")

	// ErrNoJSONFound indicates no '{' ... '}' span exists in the output.
	ErrNoJSONFound = errors.New("no JSON object found in model output")

	// ErrMalformedJSON indicates the repaired span still failed to parse.
	ErrMalformedJSON = errors.New("malformed JSON in model output")
)

// ExtractionError carries the failure kind together with the raw model output.
type ExtractionError struct {
	Kind error
	Raw  string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind sentinel and the underlying decode error.
func (e *ExtractionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
