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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(row []bb) ([]bb, error) {
	next := make([]bb, len(row))
	copy(next, row)
	//
	return next, nil
}

func TestSchemaValid(t *testing.T) {
	schema, err := NewSchema(2, 8, 1, identity,
		Constraint[bb]{"c1", Subtract[bb](NewColumnAccess[bb](0, 1), NewColumnAccess[bb](1, 0))})
	require.NoError(t, err)
	//
	assert.Equal(t, uint(2), schema.Width())
	assert.Equal(t, uint(8), schema.Height())
	assert.Equal(t, uint(1), schema.PublicInputs())
	assert.Len(t, schema.Constraints(), 1)
}

func TestSchemaRejectsBadDimensions(t *testing.T) {
	var malformed *MalformedCircuitError
	// zero width
	_, err := NewSchema[bb](0, 8, 0, identity)
	require.ErrorAs(t, err, &malformed)
	// height not a power of two
	_, err = NewSchema[bb](1, 6, 0, identity)
	require.ErrorAs(t, err, &malformed)
	// zero height
	_, err = NewSchema[bb](1, 0, 0, identity)
	require.ErrorAs(t, err, &malformed)
	// missing transition function
	_, err = NewSchema[bb](1, 8, 0, nil)
	require.ErrorAs(t, err, &malformed)
}

func TestSchemaRejectsBadReferences(t *testing.T) {
	var malformed *MalformedCircuitError
	// column out of range
	_, err := NewSchema(2, 8, 0, identity,
		Constraint[bb]{"c1", NewColumnAccess[bb](2, 0)})
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "c1", malformed.Handle)
	// shift outside window
	_, err = NewSchema(2, 8, 0, identity,
		Constraint[bb]{"c2", NewColumnAccess[bb](0, 2)})
	require.ErrorAs(t, err, &malformed)
	// public input out of range
	_, err = NewSchema(2, 8, 1, identity,
		Constraint[bb]{"c3", NewPublic[bb](1)})
	require.ErrorAs(t, err, &malformed)
	// nested within an operator
	_, err = NewSchema(2, 8, 0, identity,
		Constraint[bb]{"c4", Product[bb](NewColumnAccess[bb](0, 0), NewColumnAccess[bb](5, 0))})
	require.ErrorAs(t, err, &malformed)
}

func TestSchemaRejectsBadHandles(t *testing.T) {
	var (
		malformed *MalformedCircuitError
		x         = NewColumnAccess[bb](0, 0)
	)
	// empty handle
	_, err := NewSchema(1, 8, 0, identity, Constraint[bb]{"", x})
	require.ErrorAs(t, err, &malformed)
	// duplicate handle
	_, err = NewSchema(1, 8, 0, identity,
		Constraint[bb]{"dup", x}, Constraint[bb]{"dup", x})
	require.ErrorAs(t, err, &malformed)
}

func TestMaxConstraintDegree(t *testing.T) {
	var (
		x = NewColumnAccess[bb](0, 0)
		y = NewColumnAccess[bb](1, 0)
	)
	//
	schema, err := NewSchema(2, 8, 0, identity,
		Constraint[bb]{"linear", Subtract[bb](x, y)},
		Constraint[bb]{"cubic", Product[bb](x, y, x)})
	require.NoError(t, err)
	//
	assert.Equal(t, uint(3), schema.MaxConstraintDegree())
}

func TestLogQuotientDegree(t *testing.T) {
	var (
		x = NewColumnAccess[bb](0, 0)
		y = NewColumnAccess[bb](1, 0)
	)
	// degree clamps at two: quotient degree 1, log 0
	schema, err := NewSchema(2, 8, 0, identity, Constraint[bb]{"linear", x})
	require.NoError(t, err)
	assert.Equal(t, uint(0), schema.LogQuotientDegree())
	// degree 3: quotient degree 2, log 1
	schema, err = NewSchema(2, 8, 0, identity, Constraint[bb]{"cubic", Product[bb](x, y, x)})
	require.NoError(t, err)
	assert.Equal(t, uint(1), schema.LogQuotientDegree())
	// degree 5: quotient degree 4, log 2
	schema, err = NewSchema(2, 8, 0, identity, Constraint[bb]{"quintic", Power[bb](x, 5)})
	require.NoError(t, err)
	assert.Equal(t, uint(2), schema.LogQuotientDegree())
}
