package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies report errors
type ErrorKind int

const (
	// KindMissingInput: an expected result file does not exist
	KindMissingInput ErrorKind = iota
	// KindMalformedInput: a result file exists but cannot be decoded or validated
	KindMalformedInput
	// KindOutputWrite: the report directory or a report file cannot be written
	KindOutputWrite
	// KindAggregation: any other failure of the pipeline
	KindAggregation
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingInput:
		return "missing input"
	case KindMalformedInput:
		return "malformed input"
	case KindOutputWrite:
		return "output write"
	default:
		return "aggregation"
	}
}

// ErrTestsFailed is returned by the generate command when at least one test failed.
var ErrTestsFailed = errors.New("tests failed")

// ReportError carries the kind of failure and the file involved
type ReportError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and path
func NewError(kind ErrorKind, path string, err error) *ReportError {
	return &ReportError{Kind: kind, Path: path, Err: err}
}

// IsKind reports whether err is a ReportError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}
