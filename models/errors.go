package models

import "fmt"

// Error codes used in internal error handling.
const (
	ErrCodeFetchFailed = "FETCH_FAILED"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

// AnalyzeError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
//
// Fetch failures (ErrCodeFetchFailed) are recovered into the fallback
// advisory set rather than surfaced as HTTP errors; everything else maps
// to a generic 500.
type AnalyzeError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *AnalyzeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AnalyzeError) Unwrap() error {
	return e.Err
}

// NewAnalyzeError creates a new AnalyzeError.
func NewAnalyzeError(code, message string, err error) *AnalyzeError {
	return &AnalyzeError{Code: code, Message: message, Err: err}
}
