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
package prodinv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/trace"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

type bb = babybear.Element

func TestProdInvTrace(t *testing.T) {
	schema, err := NewSchema[bb](8)
	require.NoError(t, err)
	//
	first, err := FirstRow(babybear.New(1))
	require.NoError(t, err)
	//
	tr, err := trace.Generate(schema, first)
	require.NoError(t, err)
	// values count 1..8, so the final product is 8!
	assert.True(t, tr.Get(Value, 7).Equal(babybear.New(8)))
	assert.True(t, tr.Get(Product, 7).Equal(babybear.New(40320)))
	// every inverse actually inverts its value
	for row := uint(0); row < 8; row++ {
		product := tr.Get(Value, row).Mul(tr.Get(Inverse, row))
		assert.True(t, product.IsOne(), "row %d", row)
	}
}

func TestProdInvHolds(t *testing.T) {
	schema, err := NewSchema[bb](16)
	require.NoError(t, err)
	//
	first, err := FirstRow(babybear.New(5))
	require.NoError(t, err)
	//
	tr, err := trace.Generate(schema, first)
	require.NoError(t, err)
	//
	violations, err := trace.CheckConstraints(schema, tr, []bb{babybear.New(5)}, backend.HostContext[bb]())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

// A zero starting value has no inverse, so the first row cannot be built.
func TestProdInvZeroStart(t *testing.T) {
	_, err := FirstRow(babybear.New(0))
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// A sequence which counts through zero must abort generation at the
// offending row, with no partial trace.
func TestProdInvZeroCrossing(t *testing.T) {
	var genErr *trace.TraceGenerationError
	//
	schema, err := NewSchema[bb](8)
	require.NoError(t, err)
	// start three steps below the modulus, so counting wraps to zero
	start := field.Zero[bb]().Sub(babybear.New(3))
	first, err := FirstRow(start)
	require.NoError(t, err)
	//
	tr, err := trace.Generate(schema, first)
	require.ErrorAs(t, err, &genErr)
	require.Nil(t, tr)
	//
	assert.Equal(t, uint(3), genErr.Row)
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// A forged inverse must be caught by the inverse constraint on its row.
func TestProdInvForgedInverse(t *testing.T) {
	schema, err := NewSchema[bb](8)
	require.NoError(t, err)
	//
	first, err := FirstRow(babybear.New(1))
	require.NoError(t, err)
	//
	tr, err := trace.Generate(schema, first)
	require.NoError(t, err)
	tr.Set(Inverse, 3, babybear.New(12345))
	//
	violations, err := trace.CheckConstraints(schema, tr, []bb{babybear.New(1)}, backend.HostContext[bb]())
	require.NoError(t, err)
	//
	require.Len(t, violations, 1)
	assert.Equal(t, "inverse", violations[0].Handle)
	assert.Equal(t, uint(3), violations[0].Row)
}
