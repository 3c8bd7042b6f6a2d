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
	log "github.com/sirupsen/logrus"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Context binds an execution target to a single circuit evaluation.  It is
// immutable once constructed: switching targets requires a fresh context.
// Several contexts may coexist (e.g. concurrent tests), each with its own
// target, since no ambient global state is involved.
type Context[F field.Element[F]] struct {
	target       Target
	minBatchSize uint
	accel        Accelerator[F]
}

// New constructs an evaluation context from zero or more options.
func New[F field.Element[F]](opts ...Option[F]) (*Context[F], error) {
	ctx := &Context[F]{
		target:       Host,
		minBatchSize: DefaultMinBatchSize,
	}
	//
	for _, o := range opts {
		if o != nil {
			if err := o(ctx); err != nil {
				return nil, err
			}
		}
	}
	//
	return ctx, nil
}

// HostContext constructs a context which executes everything on the host.
func HostContext[F field.Element[F]]() *Context[F] {
	ctx, err := New[F]()
	// cannot fail without options
	if err != nil {
		panic(err)
	}
	//
	return ctx
}

// Target returns the execution target configured for this context.
func (c *Context[F]) Target() Target {
	return c.target
}

// Accelerator returns the device implementation attached to this context, or
// nil if none was configured.
func (c *Context[F]) Accelerator() Accelerator[F] {
	return c.accel
}

// fallback surfaces a non-fatal DeviceFallback diagnostic.  Computation
// always proceeds on the host afterwards.
func (c *Context[F]) fallback(op Op, reason string) {
	name := "none"
	if c.accel != nil {
		name = c.accel.Name()
	}
	//
	log.WithFields(log.Fields{
		"op":     op.String(),
		"device": name,
		"reason": reason,
	}).Warn("device fallback: executing on host")
}
