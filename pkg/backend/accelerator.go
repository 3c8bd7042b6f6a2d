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

import (
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Op identifies a batched field operation for the purposes of dispatch.
type Op uint8

const (
	// OpAdd is element-wise addition of two batches.
	OpAdd Op = iota
	// OpSub is element-wise subtraction of two batches.
	OpSub
	// OpMul is element-wise multiplication of two batches.
	OpMul
	// OpExp raises every element of a batch to a fixed power.
	OpExp
	// OpInverse inverts every element of a batch.
	OpInverse
)

// ParallelSafe reports whether the operation is data-independent across the
// batch.  Batch inversion uses a running accumulation (the Montgomery trick)
// and therefore cannot be vectorised; everything else can.
func (op Op) ParallelSafe() bool {
	return op != OpInverse
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpExp:
		return "exp"
	case OpInverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Accelerator is the capability contract a device implementation must satisfy
// to back an evaluation context.  All calls are synchronous: data is
// materialised on the device, operated on, and copied back before the call
// returns.  Results must be bit-identical to host execution.  Operations not
// reported by Supports are never requested; the dispatch policy falls back to
// host execution for them instead.
type Accelerator[F field.Element[F]] interface {
	// Name identifies the underlying device runtime.
	Name() string
	// Available reports whether the device can currently accept work.
	Available() bool
	// Supports reports whether the device implements the given operation.
	Supports(op Op) bool
	// Add computes element-wise xs + ys.
	Add(xs, ys []F) ([]F, error)
	// Sub computes element-wise xs - ys.
	Sub(xs, ys []F) ([]F, error)
	// Mul computes element-wise xs * ys.
	Mul(xs, ys []F) ([]F, error)
}
