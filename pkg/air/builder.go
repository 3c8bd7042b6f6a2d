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
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Builder provides the authoring surface for circuit constraints.  Circuit
// authors phrase constraints as assertions over column and public input
// expressions, optionally filtered to a subset of rows, and finalise the
// result into a validated schema.
type Builder[F field.Element[F]] struct {
	width       uint
	height      uint
	npublics    uint
	constraints []Constraint[F]
}

// NewBuilder constructs an empty builder for a circuit with the given trace
// dimensions and number of public inputs.  Dimensions are validated on
// finalisation, not here.
func NewBuilder[F field.Element[F]](width, height, npublics uint) *Builder[F] {
	return &Builder[F]{width: width, height: height, npublics: npublics}
}

// Local returns an expression reading the given column on the current row.
func (b *Builder[F]) Local(column uint) Expr[F] {
	return ColumnAccess[F]{Column: column, Shift: 0}
}

// Next returns an expression reading the given column on the next row.
func (b *Builder[F]) Next(column uint) Expr[F] {
	return ColumnAccess[F]{Column: column, Shift: 1}
}

// Public returns an expression reading the given public input.
func (b *Builder[F]) Public(index uint) Expr[F] {
	return Public[F]{index}
}

// Const returns a constant expression for a given unsigned integer.
func (b *Builder[F]) Const(value uint64) Expr[F] {
	return NewConst64[F](value)
}

// AssertZero requires a given expression to vanish on every row.
func (b *Builder[F]) AssertZero(handle string, expr Expr[F]) {
	b.constraints = append(b.constraints, Constraint[F]{handle, expr})
}

// AssertEq requires two expressions to agree on every row.
func (b *Builder[F]) AssertEq(handle string, lhs, rhs Expr[F]) {
	b.AssertZero(handle, Subtract[F](lhs, rhs))
}

// AssertOne requires a given expression to equal one on every row.
func (b *Builder[F]) AssertOne(handle string, expr Expr[F]) {
	b.AssertEq(handle, expr, b.Const(1))
}

// AssertBool requires a given expression to be boolean (zero or one) on
// every row, via x * (x - 1) == 0.
func (b *Builder[F]) AssertBool(handle string, expr Expr[F]) {
	b.AssertZero(handle, Product[F](expr, Subtract[F](expr, b.Const(1))))
}

// When returns a filtered view of this builder whose assertions only bind on
// rows where the given condition is non-zero.
func (b *Builder[F]) When(condition Expr[F]) *Filtered[F] {
	return &Filtered[F]{b, condition}
}

// WhenFirstRow returns a filtered view whose assertions only bind on the
// first trace row.
func (b *Builder[F]) WhenFirstRow() *Filtered[F] {
	return b.When(FirstRow[F]{})
}

// WhenLastRow returns a filtered view whose assertions only bind on the last
// trace row.
func (b *Builder[F]) WhenLastRow() *Filtered[F] {
	return b.When(LastRow[F]{})
}

// WhenTransition returns a filtered view whose assertions bind on every row
// except the last.  Constraints relating a row to its successor belong here,
// since the successor of the last row wraps around to row zero.
func (b *Builder[F]) WhenTransition() *Filtered[F] {
	return b.When(Transition[F]{})
}

// Finalise validates the accumulated constraints against the declared
// dimensions and yields an immutable schema around the given transition
// function.
func (b *Builder[F]) Finalise(transition TransitionFunc[F]) (*Schema[F], error) {
	return NewSchema(b.width, b.height, b.npublics, transition, b.constraints...)
}

// ============================================================================
// Filtered Builder
// ============================================================================

// Filtered is a view of a builder which guards every assertion with a row
// filter.  The filter multiplies the asserted expression, so the assertion is
// vacuous wherever the filter vanishes.  Filters compose: nested When calls
// multiply their conditions.
type Filtered[F field.Element[F]] struct {
	parent    *Builder[F]
	condition Expr[F]
}

// AssertZero requires a given expression to vanish on every row selected by
// the filter.
func (b *Filtered[F]) AssertZero(handle string, expr Expr[F]) {
	b.parent.AssertZero(handle, Product[F](b.condition, expr))
}

// AssertEq requires two expressions to agree on every row selected by the
// filter.
func (b *Filtered[F]) AssertEq(handle string, lhs, rhs Expr[F]) {
	b.AssertZero(handle, Subtract[F](lhs, rhs))
}

// AssertOne requires a given expression to equal one on every row selected by
// the filter.
func (b *Filtered[F]) AssertOne(handle string, expr Expr[F]) {
	b.AssertEq(handle, expr, NewConst64[F](1))
}

// AssertBool requires a given expression to be boolean on every row selected
// by the filter.
func (b *Filtered[F]) AssertBool(handle string, expr Expr[F]) {
	b.AssertZero(handle, Product[F](expr, Subtract[F](expr, NewConst64[F](1))))
}

// When narrows the filter further with an additional condition.
func (b *Filtered[F]) When(condition Expr[F]) *Filtered[F] {
	return &Filtered[F]{b.parent, Product[F](b.condition, condition)}
}

// ============================================================================
// Bitwise Helpers
// ============================================================================

// Xor computes the exclusive-or of two boolean expressions, as
// x + y - 2*x*y.  Meaningful only where both operands are boolean.
func Xor[F field.Element[F]](x, y Expr[F]) Expr[F] {
	return Subtract[F](Sum[F](x, y), Product[F](NewConst64[F](2), x, y))
}

// Xor3 computes the exclusive-or of three boolean expressions.
func Xor3[F field.Element[F]](x, y, z Expr[F]) Expr[F] {
	return Xor[F](Xor[F](x, y), z)
}

// AndNot computes (not x) and y over boolean expressions, as (1 - x) * y.
func AndNot[F field.Element[F]](x, y Expr[F]) Expr[F] {
	return Product[F](Subtract[F](NewConst64[F](1), x), y)
}

// PackBitsLE packs boolean expressions, least significant first, into a
// single field expression: sum of bits[i] * 2^i.
func PackBitsLE[F field.Element[F]](bits ...Expr[F]) Expr[F] {
	terms := make([]Expr[F], len(bits))
	//
	for i, bit := range bits {
		terms[i] = Product[F](NewConstant(field.TwoPowN[F](uint(i))), bit)
	}
	//
	return Sum[F](terms...)
}
