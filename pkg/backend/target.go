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

// Target identifies which compute resource backs batched field operations
// within a given evaluation context.
type Target int

const (
	// Host executes all operations on the CPU.
	Host Target = iota
	// Device routes eligible batched operations to the configured
	// accelerator, falling back to host execution for everything else.
	Device

	maxTarget
)

func (t Target) String() string {
	switch t {
	case Host:
		return "host"
	case Device:
		return "device"
	default:
		return "unknown"
	}
}

// ParseTarget converts a human-readable target name into a Target.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "host":
		return Host, nil
	case "device":
		return Device, nil
	default:
		return Host, fmt.Errorf("unknown execution target %q", name)
	}
}

// DefaultMinBatchSize is the smallest parallel-safe batch considered worth
// shipping to a device.  Below this, transfer overheads dominate and host
// execution wins.
const DefaultMinBatchSize uint = 256

// Option configures an evaluation context.  If no options are set, then
// sensible defaults are used (host execution, default batch threshold).
type Option[F field.Element[F]] func(*Context[F]) error

// WithTarget selects the execution target for the context.
func WithTarget[F field.Element[F]](target Target) Option[F] {
	return func(c *Context[F]) error {
		if target < 0 || target >= maxTarget {
			return fmt.Errorf("invalid execution target %d", target)
		}
		c.target = target
		return nil
	}
}

// WithMinBatchSize overrides the minimum batch size required before a
// parallel-safe operation is dispatched to the device.
func WithMinBatchSize[F field.Element[F]](size uint) Option[F] {
	return func(c *Context[F]) error {
		if size == 0 {
			return fmt.Errorf("invalid minimum batch size %d", size)
		}
		c.minBatchSize = size
		return nil
	}
}

// WithAccelerator attaches a device implementation to the context.  Without
// one, a Device target degrades to host execution on every dispatch.
func WithAccelerator[F field.Element[F]](accel Accelerator[F]) Option[F] {
	return func(c *Context[F]) error {
		c.accel = accel
		return nil
	}
}
