package hnpx

import (
	"errors"
	"fmt"
)

// Code classifies every failure the engine can produce. Codes cross the
// operation boundary unchanged; collaborators surface them to their own
// callers without translation.
type Code string

const (
	CodeNodeNotFound     Code = "NODE_NOT_FOUND"
	CodeInvalidHierarchy Code = "INVALID_HIERARCHY"
	CodeMissingAttribute Code = "MISSING_ATTRIBUTE"
	CodeInvalidAttribute Code = "INVALID_ATTRIBUTE"
	CodeDuplicateID      Code = "DUPLICATE_ID"
	CodeIDExhausted      Code = "ID_EXHAUSTED"
	CodeImmutableField   Code = "IMMUTABLE_FIELD"
	CodeInvalidOperation Code = "INVALID_OPERATION"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeMalformedInput   Code = "MALFORMED_INPUT"
	CodeNotHNPX          Code = "NOT_HNPX"
)

// Error is the structured failure returned by every engine operation.
// Findings is populated only for VALIDATION_FAILED, carrying the complete
// list of violations the guard pass collected.
type Error struct {
	Code     Code
	Message  string
	Findings []Finding
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf extracts the failure code from err, or "" when err is not an
// engine error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// FindingsOf extracts the validation findings carried by err, if any.
func FindingsOf(err error) []Finding {
	var e *Error
	if errors.As(err, &e) {
		return e.Findings
	}
	return nil
}

func errNodeNotFound(id string) error {
	return &Error{Code: CodeNodeNotFound, Message: fmt.Sprintf("node with id %q not found", id)}
}

func errInvalidHierarchy(parent, child Kind) error {
	return &Error{Code: CodeInvalidHierarchy, Message: fmt.Sprintf("%s cannot contain %s", parent, child)}
}

func errMissingAttribute(attr string) error {
	return &Error{Code: CodeMissingAttribute, Message: fmt.Sprintf("required attribute missing: %s", attr)}
}

func errInvalidAttribute(attr, value string) error {
	return &Error{Code: CodeInvalidAttribute, Message: fmt.Sprintf("invalid value for %s: %q", attr, value)}
}

func errImmutableField(field string) error {
	return &Error{Code: CodeImmutableField, Message: fmt.Sprintf("cannot modify immutable field: %s", field)}
}

func errInvalidOperation(op, reason string) error {
	return &Error{Code: CodeInvalidOperation, Message: fmt.Sprintf("%s: %s", op, reason)}
}

func errValidationFailed(findings []Finding) error {
	return &Error{
		Code:     CodeValidationFailed,
		Message:  fmt.Sprintf("validation failed with %d finding(s)", len(findings)),
		Findings: findings,
	}
}

func errMalformedInput(reason error) error {
	return &Error{Code: CodeMalformedInput, Message: fmt.Sprintf("invalid XML: %v", reason)}
}

func errNotHNPX(reason string) error {
	return &Error{Code: CodeNotHNPX, Message: fmt.Sprintf("not an HNPX document: %s", reason)}
}
