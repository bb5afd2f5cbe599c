package model

import "fmt"

// ValidationReason identifies which rule a request violated.
type ValidationReason string

const (
	ReasonInvalidMediaType ValidationReason = "invalid_media_type"
	ReasonOutOfRange       ValidationReason = "out_of_range"
	ReasonDegenerateSplit  ValidationReason = "degenerate_split"
	ReasonFileTooLarge     ValidationReason = "file_too_large"
	ReasonMissingFile      ValidationReason = "missing_file"
)

// ValidationError is a client-fault error. The HTTP layer maps it to a
// 400 response carrying Message verbatim.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func NewValidationError(reason ValidationReason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProcessingError is a server-fault error raised when decoding,
// re-encoding or archiving fails after validation passed. The HTTP layer
// maps it to a 500 response with the underlying description attached.
type ProcessingError struct {
	Op  string
	Err error
}

func NewProcessingError(op string, err error) *ProcessingError {
	return &ProcessingError{Op: op, Err: err}
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
