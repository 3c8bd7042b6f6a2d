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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

func TestDispatchHostTarget(t *testing.T) {
	ctx := HostContext[babybear.Element]()
	// host targets never dispatch to a device, whatever the shape
	assert.Equal(t, ExecHost, ctx.Dispatch(Shape{1 << 20, true}))
	assert.Equal(t, ExecHost, ctx.Dispatch(Shape{1, false}))
}

func TestDispatchDeviceTarget(t *testing.T) {
	ctx, err := New(WithTarget[babybear.Element](Device))
	require.NoError(t, err)
	//
	tests := []struct {
		shape    Shape
		expected Decision
	}{
		// large parallel-safe batches are device-eligible
		{Shape{DefaultMinBatchSize, true}, ExecDevice},
		{Shape{1 << 20, true}, ExecDevice},
		// below-threshold batches stay on host
		{Shape{DefaultMinBatchSize - 1, true}, ExecHost},
		{Shape{1, true}, ExecHost},
		// sequential dependencies stay on host regardless of size
		{Shape{1 << 20, false}, ExecHost},
	}
	//
	for _, test := range tests {
		assert.Equal(t, test.expected, ctx.Dispatch(test.shape),
			"shape %+v", test.shape)
	}
}

func TestDispatchThresholdOverride(t *testing.T) {
	ctx, err := New(
		WithTarget[babybear.Element](Device),
		WithMinBatchSize[babybear.Element](8))
	require.NoError(t, err)
	//
	assert.Equal(t, ExecDevice, ctx.Dispatch(Shape{8, true}))
	assert.Equal(t, ExecHost, ctx.Dispatch(Shape{7, true}))
}

func TestParseTarget(t *testing.T) {
	for _, name := range []string{"host", "device"} {
		target, err := ParseTarget(name)
		require.NoError(t, err)
		assert.Equal(t, name, target.String())
	}
	//
	_, err := ParseTarget("quantum")
	assert.Error(t, err)
}

func TestInvalidOptions(t *testing.T) {
	_, err := New(WithMinBatchSize[babybear.Element](0))
	assert.Error(t, err)
}
