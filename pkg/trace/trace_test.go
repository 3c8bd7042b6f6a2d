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

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/backend"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

type bb = babybear.Element

// counterSchema builds a single-column circuit whose trace counts upwards
// from a public starting value.
func counterSchema(t *testing.T, height uint) *air.Schema[bb] {
	t.Helper()
	//
	b := air.NewBuilder[bb](1, height, 1)
	b.WhenFirstRow().AssertEq("boundary", b.Local(0), b.Public(0))
	b.WhenTransition().AssertEq("increment", b.Next(0), air.Sum[bb](b.Local(0), b.Const(1)))
	//
	schema, err := b.Finalise(func(row []bb) ([]bb, error) {
		return []bb{row[0].Add(babybear.New(1))}, nil
	})
	require.NoError(t, err)
	//
	return schema
}

func TestGenerateCounter(t *testing.T) {
	schema := counterSchema(t, 8)
	//
	tr, err := Generate(schema, []bb{babybear.New(3)})
	require.NoError(t, err)
	// dimensions are exactly as declared
	assert.Equal(t, uint(1), tr.Width())
	assert.Equal(t, uint(8), tr.Height())
	//
	for row := uint(0); row < 8; row++ {
		assert.True(t, tr.Get(0, row).Equal(babybear.New(3+uint64(row))), "row %d", row)
	}
}

func TestGenerateFirstRowMismatch(t *testing.T) {
	var (
		schema = counterSchema(t, 8)
		genErr *TraceGenerationError
	)
	//
	tr, err := Generate(schema, []bb{babybear.New(0), babybear.New(0)})
	require.ErrorAs(t, err, &genErr)
	assert.Nil(t, tr)
}

func TestGenerateTransitionFailure(t *testing.T) {
	var (
		sentinel = errors.New("step failed")
		genErr   *TraceGenerationError
	)
	//
	b := air.NewBuilder[bb](1, 8, 0)
	schema, err := b.Finalise(func(row []bb) ([]bb, error) {
		if row[0].Equal(babybear.New(3)) {
			return nil, sentinel
		}
		//
		return []bb{row[0].Add(babybear.New(1))}, nil
	})
	require.NoError(t, err)
	// no partial trace on failure
	tr, err := Generate(schema, []bb{babybear.New(0)})
	require.ErrorAs(t, err, &genErr)
	assert.Nil(t, tr)
	// failure is located and preserved
	assert.Equal(t, uint(4), genErr.Row)
	assert.ErrorIs(t, err, sentinel)
}

func TestCheckGeneratedTraceHolds(t *testing.T) {
	schema := counterSchema(t, 16)
	publics := []bb{babybear.New(7)}
	//
	tr, err := Generate(schema, publics)
	require.NoError(t, err)
	//
	violations, err := CheckConstraints(schema, tr, publics, backend.HostContext[bb]())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckReportsViolations(t *testing.T) {
	schema := counterSchema(t, 8)
	publics := []bb{babybear.New(0)}
	//
	tr, err := Generate(schema, publics)
	require.NoError(t, err)
	// corrupt one cell
	tr.Set(0, 4, babybear.New(100))
	//
	violations, err := CheckConstraints(schema, tr, publics, backend.HostContext[bb]())
	require.NoError(t, err)
	// rows 3 and 4 both relate to the corrupted cell
	require.Len(t, violations, 2)
	assert.Equal(t, "increment", violations[0].Handle)
	assert.Equal(t, uint(3), violations[0].Row)
	assert.Equal(t, uint(4), violations[1].Row)
}

// An unfiltered successor constraint must fail on the last row, because the
// next row wraps around to row zero.
func TestCheckWraparound(t *testing.T) {
	b := air.NewBuilder[bb](1, 8, 0)
	b.AssertEq("increment", b.Next(0), air.Sum[bb](b.Local(0), b.Const(1)))
	//
	schema, err := b.Finalise(func(row []bb) ([]bb, error) {
		return []bb{row[0].Add(babybear.New(1))}, nil
	})
	require.NoError(t, err)
	//
	tr, err := Generate(schema, []bb{babybear.New(0)})
	require.NoError(t, err)
	//
	violations, err := CheckConstraints(schema, tr, nil, backend.HostContext[bb]())
	require.NoError(t, err)
	//
	require.Len(t, violations, 1)
	assert.Equal(t, uint(7), violations[0].Row)
}

func TestCheckTypeMismatch(t *testing.T) {
	var (
		schema   = counterSchema(t, 8)
		mismatch *TypeMismatchError
		ctx      = backend.HostContext[bb]()
	)
	// wrong dimensions
	_, err := CheckConstraints(schema, NewArrayTrace[bb](2, 8), []bb{babybear.New(0)}, ctx)
	require.ErrorAs(t, err, &mismatch)
	_, err = CheckConstraints(schema, NewArrayTrace[bb](1, 16), []bb{babybear.New(0)}, ctx)
	require.ErrorAs(t, err, &mismatch)
	// wrong number of public inputs
	_, err = CheckConstraints(schema, NewArrayTrace[bb](1, 8), nil, ctx)
	require.ErrorAs(t, err, &mismatch)
}

// Checking the same trace on a device-targeted context must agree with the
// host result.
func TestCheckHostDeviceAgreement(t *testing.T) {
	schema := counterSchema(t, 1024)
	publics := []bb{babybear.New(1)}
	//
	tr, err := Generate(schema, publics)
	require.NoError(t, err)
	tr.Set(0, 100, babybear.New(0))
	//
	deviceCtx, err := backend.New(backend.WithTarget[bb](backend.Device))
	require.NoError(t, err)
	//
	hostViolations, err := CheckConstraints(schema, tr, publics, backend.HostContext[bb]())
	require.NoError(t, err)
	deviceViolations, err := CheckConstraints(schema, tr, publics, deviceCtx)
	require.NoError(t, err)
	//
	assert.Equal(t, hostViolations, deviceViolations)
}

func TestRowRoundTrip(t *testing.T) {
	tr := NewArrayTrace[bb](3, 4)
	row := []bb{babybear.New(1), babybear.New(2), babybear.New(3)}
	//
	tr.SetRow(2, row)
	assert.Equal(t, row, tr.Row(2))
}

func TestPrintTrace(t *testing.T) {
	var (
		builder strings.Builder
		tr      = NewArrayTrace[bb](2, 4)
	)
	//
	for row := uint(0); row < 4; row++ {
		tr.Set(0, row, babybear.New(uint64(row)))
		tr.Set(1, row, babybear.New(uint64(row*row)))
	}
	//
	PrintTrace(NewPrinter().LineWidth(0), &builder, tr)
	//
	lines := strings.Split(strings.TrimRight(builder.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#")
	assert.Contains(t, lines[2], "9")
}
