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

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field/babybear"
)

type bb = babybear.Element

func TestFoldSumOfConstants(t *testing.T) {
	e := Sum[bb](NewConst64[bb](2), NewConst64[bb](3))
	//
	c, ok := e.(Constant[bb])
	assert.True(t, ok)
	assert.True(t, c.Value.Equal(babybear.New(5)))
}

func TestFoldZeroIdentity(t *testing.T) {
	x := NewColumnAccess[bb](0, 0)
	// x + 0 == x
	assert.Equal(t, x, Sum[bb](x, NewConst64[bb](0)))
	// x - 0 == x
	assert.Equal(t, x, Subtract[bb](x, NewConst64[bb](0)))
	// x * 0 == 0
	zero, ok := Product[bb](x, NewConst64[bb](0)).(Constant[bb])
	assert.True(t, ok)
	assert.True(t, zero.Value.IsZero())
}

func TestFoldOneIdentity(t *testing.T) {
	x := NewColumnAccess[bb](0, 0)
	// x * 1 == x
	assert.Equal(t, x, Product[bb](x, NewConst64[bb](1)))
	// x ^ 1 == x
	assert.Equal(t, x, Power[bb](x, 1))
	// x ^ 0 == 1
	one, ok := Power[bb](x, 0).(Constant[bb])
	assert.True(t, ok)
	assert.True(t, one.Value.IsOne())
}

func TestFoldNegation(t *testing.T) {
	e := Negate[bb](NewConst64[bb](1))
	//
	c, ok := e.(Constant[bb])
	assert.True(t, ok)
	assert.True(t, c.Value.Equal(field.One[bb]().Neg()))
}

func TestDegrees(t *testing.T) {
	var (
		x = NewColumnAccess[bb](0, 0)
		y = NewColumnAccess[bb](1, 1)
		k = NewConst64[bb](7)
		p = NewPublic[bb](0)
	)
	//
	assert.Equal(t, uint(1), x.Degree())
	assert.Equal(t, uint(0), k.Degree())
	assert.Equal(t, uint(0), p.Degree())
	// max over addition
	assert.Equal(t, uint(1), Sum[bb](x, y, k).Degree())
	// sum over multiplication
	assert.Equal(t, uint(2), Product[bb](x, y).Degree())
	assert.Equal(t, uint(3), Product[bb](x, y, x).Degree())
	// multiplied by exponent
	assert.Equal(t, uint(4), Power[bb](Product[bb](x, y), 2).Degree())
	// selectors
	assert.Equal(t, uint(1), FirstRow[bb]{}.Degree())
	assert.Equal(t, uint(1), LastRow[bb]{}.Degree())
	assert.Equal(t, uint(0), Transition[bb]{}.Degree())
}

func TestBounds(t *testing.T) {
	var (
		x = NewColumnAccess[bb](0, 0)
		y = NewColumnAccess[bb](1, 1)
	)
	//
	assert.Equal(t, Bounds{0, 0}, x.Bounds())
	assert.Equal(t, Bounds{1, 1}, y.Bounds())
	assert.Equal(t, Bounds{0, 1}, Subtract[bb](y, x).Bounds())
	assert.Equal(t, Bounds{0, 1}, Product[bb](x, Negate[bb](y)).Bounds())
}

func TestExprString(t *testing.T) {
	var (
		x = NewColumnAccess[bb](0, 0)
		y = NewColumnAccess[bb](1, 1)
	)
	//
	assert.Equal(t, "x0", x.String())
	assert.Equal(t, "(shift x1 1)", y.String())
	assert.Equal(t, "(- (shift x1 1) x0)", Subtract[bb](y, x).String())
	assert.Equal(t, "p0", NewPublic[bb](0).String())
}
