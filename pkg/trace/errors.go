// Copyright Ingonyama.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package trace

import "fmt"

// TraceGenerationError signals that the transition function failed while
// producing a given row.  No partial trace is returned alongside it.
type TraceGenerationError struct {
	// Row being generated when the failure occurred.
	Row uint
	// Underlying failure.
	Err error
}

func (e *TraceGenerationError) Error() string {
	return fmt.Sprintf("trace generation failed at row %d: %v", e.Row, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is / errors.As.
func (e *TraceGenerationError) Unwrap() error { return e.Err }

// TypeMismatchError signals that a trace and a circuit disagree on their
// shape or their underlying field, e.g. a trace generated for one circuit
// being checked against another.
type TypeMismatchError struct {
	// What the circuit expects.
	Expected string
	// What the trace provides.
	Got string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s but got %s", e.Expected, e.Got)
}
