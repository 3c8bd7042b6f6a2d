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
	"fmt"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Add computes element-wise xs + ys through the dispatch policy.
func (c *Context[F]) Add(xs, ys []F) ([]F, error) {
	return c.binary(OpAdd, xs, ys, func(x, y F) F { return x.Add(y) })
}

// Sub computes element-wise xs - ys through the dispatch policy.
func (c *Context[F]) Sub(xs, ys []F) ([]F, error) {
	return c.binary(OpSub, xs, ys, func(x, y F) F { return x.Sub(y) })
}

// Mul computes element-wise xs * ys through the dispatch policy.
func (c *Context[F]) Mul(xs, ys []F) ([]F, error) {
	return c.binary(OpMul, xs, ys, func(x, y F) F { return x.Mul(y) })
}

// Neg computes element-wise -xs.  Negation is a unary reshaping of
// subtraction and always executes on the host.
func (c *Context[F]) Neg(xs []F) []F {
	res := make([]F, len(xs))
	//
	for i := range xs {
		res[i] = xs[i].Neg()
	}
	//
	return res
}

// Exp raises every element to the given power.  The operation is
// parallel-safe, but no device kernel exists for it; when the context targets
// a device the policy surfaces a fallback diagnostic and executes on host.
func (c *Context[F]) Exp(xs []F, n uint64) []F {
	if c.Dispatch(Shape{uint(len(xs)), OpExp.ParallelSafe()}) == ExecDevice {
		c.fallback(OpExp, "operation not implemented on device")
	}
	//
	res := make([]F, len(xs))
	//
	for i := range xs {
		res[i] = field.Pow(xs[i], n)
	}
	//
	return res
}

// Inverse inverts every element of the batch, preserving zeros.  Batch
// inversion carries a sequential dependency (a running product), so the
// policy always keeps it on the host.
func (c *Context[F]) Inverse(xs []F) []F {
	res := make([]F, len(xs))
	copy(res, xs)
	//
	field.BatchInvert(res)
	//
	return res
}

// Scale multiplies every element of the batch by a single scalar.
func (c *Context[F]) Scale(xs []F, k F) ([]F, error) {
	ys := make([]F, len(xs))
	//
	for i := range ys {
		ys[i] = k
	}
	//
	return c.Mul(xs, ys)
}

// binary applies a two-operand operation, routing to the device when the
// dispatch policy allows and degrading to host execution otherwise.
func (c *Context[F]) binary(op Op, xs, ys []F, apply func(F, F) F) ([]F, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("batch length mismatch for %s: %d vs %d", op, len(xs), len(ys))
	}
	//
	if c.Dispatch(Shape{uint(len(xs)), op.ParallelSafe()}) == ExecDevice {
		if res, ok := c.deviceBinary(op, xs, ys); ok {
			return res, nil
		}
	}
	// Host execution
	res := make([]F, len(xs))
	//
	for i := range xs {
		res[i] = apply(xs[i], ys[i])
	}
	//
	return res, nil
}

// deviceBinary attempts device execution, surfacing a fallback diagnostic on
// any failure.  The boolean result indicates whether the device produced a
// result.
func (c *Context[F]) deviceBinary(op Op, xs, ys []F) ([]F, bool) {
	switch {
	case c.accel == nil:
		c.fallback(op, "no accelerator configured")
		return nil, false
	case !c.accel.Available():
		c.fallback(op, "device unavailable")
		return nil, false
	case !c.accel.Supports(op):
		c.fallback(op, "operation not implemented on device")
		return nil, false
	}
	//
	var (
		res []F
		err error
	)
	//
	switch op {
	case OpAdd:
		res, err = c.accel.Add(xs, ys)
	case OpSub:
		res, err = c.accel.Sub(xs, ys)
	case OpMul:
		res, err = c.accel.Mul(xs, ys)
	default:
		err = fmt.Errorf("unsupported device operation %s", op)
	}
	//
	if err != nil {
		c.fallback(op, err.Error())
		return nil, false
	}
	//
	return res, true
}
