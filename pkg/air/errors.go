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
package air

import "fmt"

// MalformedCircuitError signals that a circuit description is structurally
// invalid: a bad dimension, an out-of-range column or public input reference,
// or a row shift outside the evaluation window.  No partially constructed
// schema is ever returned alongside it.
type MalformedCircuitError struct {
	// Handle of the offending constraint, or empty when the defect is in the
	// circuit dimensions themselves.
	Handle string
	// Human-readable description of the defect.
	Reason string
}

func (e *MalformedCircuitError) Error() string {
	if e.Handle == "" {
		return fmt.Sprintf("malformed circuit: %s", e.Reason)
	}
	//
	return fmt.Sprintf("malformed circuit: constraint %q: %s", e.Handle, e.Reason)
}
