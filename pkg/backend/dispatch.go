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
package backend

// Shape describes an operation request for the purposes of dispatch.
type Shape struct {
	// Number of elements in the batch.
	BatchSize uint
	// Whether the operation is data-independent across the batch.
	ParallelSafe bool
}

// Decision determines where an operation executes.
type Decision int

const (
	// ExecHost executes the operation on the CPU.
	ExecHost Decision = iota
	// ExecDevice executes the operation on the configured accelerator.
	ExecDevice
)

func (d Decision) String() string {
	if d == ExecDevice {
		return "device"
	}
	//
	return "host"
}

// Dispatch applies the dispatch policy to an operation request: parallel-safe
// batches meeting the minimum size threshold execute on the configured device;
// everything else (scalar operations, sequential dependencies, small batches)
// executes on the host.  A decision of ExecDevice is an eligibility statement
// only; device availability is checked at execution time, where failure
// degrades to host execution with a diagnostic rather than an error.
func (c *Context[F]) Dispatch(shape Shape) Decision {
	if c.target != Device {
		return ExecHost
	}
	//
	if !shape.ParallelSafe || shape.BatchSize < c.minBatchSize {
		return ExecHost
	}
	//
	return ExecDevice
}
