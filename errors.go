// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonapi

import (
	"errors"
	"fmt"
)

// Static errors for transformer operations.
var (
	ErrNilDocument = errors.New("document is nil")
	ErrMissingID   = errors.New("missing id for update or delete")
	ErrInvalidBody = errors.New("body must be a non-nil map")
	ErrBadLinkage  = errors.New("malformed relationship shape")
)

// ErrorObject is a single error from a document's top-level errors array.
// See: https://jsonapi.org/format/#errors
type ErrorObject struct {
	ID     string         `json:"id,omitempty"`     // Unique identifier for this error
	Status string         `json:"status,omitempty"` // HTTP status code as string
	Code   string         `json:"code,omitempty"`   // Application-specific error code
	Title  string         `json:"title,omitempty"`  // Short, human-readable summary
	Detail string         `json:"detail,omitempty"` // Human-readable explanation
	Source *ErrorSource   `json:"source,omitempty"` // Source of the error
	Meta   map[string]any `json:"meta,omitempty"`   // Non-standard meta-information
}

// ErrorSource points to the part of the request that caused an error.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`   // JSON Pointer to field (e.g., "/data/attributes/email")
	Parameter string `json:"parameter,omitempty"` // Query parameter that caused error
	Header    string `json:"header,omitempty"`    // Header that caused error
}

// String returns the most descriptive short form of the error object.
func (e *ErrorObject) String() string {
	switch {
	case e.Title != "" && e.Detail != "":
		return e.Title + ": " + e.Detail
	case e.Detail != "":
		return e.Detail
	case e.Title != "":
		return e.Title
	default:
		return "unknown error"
	}
}

// ValidationError reports malformed serialiser input: a missing required id
// for update/delete, or a registered relationship whose value does not have
// identifier shape. It is raised immediately and never recovered internally;
// the caller decides what to do.
//
// Use [errors.As] to check for ValidationError:
//
//	var verr *jsonapi.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("Model: %s, Field: %s\n", verr.Model, verr.Field)
//	}
type ValidationError struct {
	Model  string // Model name passed to Serialize
	Field  string // Offending body key, if any
	Reason string // Human-readable reason for failure
	Err    error  // Underlying sentinel error
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("serializing %q: field %q: %s", e.Model, e.Field, e.Reason)
	}

	return fmt.Sprintf("serializing %q: %s", e.Model, e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *ValidationError) Code() string {
	return "validation_error"
}

// DocumentError is returned when a document carries a top-level errors array
// and no primary data. Deserialisation short-circuits with the structured
// error objects rather than attempting partial extraction, and exposes them
// as data so batch-style callers can inspect every object at once.
type DocumentError struct {
	Errors []*ErrorObject
}

// Error returns a formatted error message.
func (e *DocumentError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "document contains errors"
	case 1:
		return "document error: " + e.Errors[0].String()
	default:
		return fmt.Sprintf("document contains %d errors", len(e.Errors))
	}
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (e *DocumentError) Details() any {
	return e.Errors
}

// Code implements rivaas.dev/errors.ErrorCode.
func (e *DocumentError) Code() string {
	return "document_errors"
}

// First returns the first error object, or nil when the array is empty.
func (e *DocumentError) First() *ErrorObject {
	if len(e.Errors) == 0 {
		return nil
	}

	return e.Errors[0]
}

// ResolutionGap records a relationship identifier that had no matching entry
// in the document's included pool. A gap is not fatal: the deserialised graph
// keeps a minimal {id, type} stub in place, and the gap is reported on
// [Result.Gaps] so callers can detect incomplete includes.
type ResolutionGap struct {
	ID   string // Identifier of the unresolved resource
	Type string // Wire type of the unresolved resource
	Path string // Dot-separated relationship path from the primary resource
}

// String returns a short description of the gap.
func (g ResolutionGap) String() string {
	return fmt.Sprintf("%s: %s(%s) not included", g.Path, g.Type, g.ID)
}
