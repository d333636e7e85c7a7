// Copyright 2025 The S2 Geometry Project Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the error taxonomy returned by Build: sentinel
// kinds checked with errors.Is, wrapped with context at each boundary.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a BuildError.
type Kind int

const (
	// EmptyInput marks a Build call given zero sites: there is no hull or
	// cell to construct.
	EmptyInput Kind = iota
	// DegenerateInput marks a case the epsilon model cannot resolve, such
	// as a zero-length seam step from co-circular neighboring sites.
	DegenerateInput
	// InvariantViolation marks a failed structural post-condition
	// (twin.twin != self, next.prev != self, ...); this is a bug.
	InvariantViolation
	// ResourceExhaustion marks a failed allocation, propagated unchanged.
	ResourceExhaustion
)

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case DegenerateInput:
		return "degenerate input"
	case InvariantViolation:
		return "invariant violation"
	case ResourceExhaustion:
		return "resource exhaustion"
	default:
		return "unknown"
	}
}

// Sentinel errors, matched with errors.Is after a BuildError is unwrapped.
var (
	ErrEmptyInput         = errors.New("empty site set")
	ErrDegenerateInput    = errors.New("degenerate input")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrResourceExhaustion = errors.New("resource exhaustion")
)

func sentinelFor(k Kind) error {
	switch k {
	case EmptyInput:
		return ErrEmptyInput
	case DegenerateInput:
		return ErrDegenerateInput
	case InvariantViolation:
		return ErrInvariantViolation
	case ResourceExhaustion:
		return ErrResourceExhaustion
	default:
		return ErrInvariantViolation
	}
}

// BuildError wraps a Kind with contextual detail and an optional cause.
type BuildError struct {
	Kind    Kind
	Detail  string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the sentinel for the error's Kind so callers can use
// errors.Is(err, errs.ErrDegenerateInput) regardless of Detail/Cause.
func (e *BuildError) Unwrap() error { return sentinelFor(e.Kind) }

// New returns a BuildError of the given kind with a formatted detail.
func New(k Kind, format string, args ...any) *BuildError {
	return &BuildError{Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// Wrap returns a BuildError of the given kind carrying cause.
func Wrap(k Kind, cause error, format string, args ...any) *BuildError {
	return &BuildError{Kind: k, Detail: fmt.Sprintf(format, args...), Cause: cause}
}
