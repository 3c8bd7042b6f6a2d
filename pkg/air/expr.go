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
	"fmt"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Expr represents an expression over trace columns in the Algebraic
// Intermediate Representation (AIR).  Every constraint is an expression which
// must vanish (i.e. evaluate to zero) on each applicable trace row.
// Expressions form a tagged-variant tree: column accesses, constants, public
// inputs, row selectors and the algebraic operators over them.  The same tree
// is consumed by two evaluators: the symbolic normaliser (see poly.go) and
// the numeric checker (see eval.go).
type Expr[F field.Element[F]] interface {
	fmt.Stringer
	// Degree returns the multiple of the trace length in this expression's
	// degree.  Trace columns and the first/last row selectors contribute one;
	// constants, public inputs and the transition selector contribute zero.
	Degree() uint
	// Bounds returns the range of row shifts referenced by this expression.
	Bounds() Bounds
}

// Bounds captures the minimum and maximum row shift referenced by an
// expression.  A well-formed constraint stays within the circuit's declared
// evaluation window.
type Bounds struct {
	// Smallest shift (possibly negative).
	Min int
	// Largest shift.
	Max int
}

// Union merges two bounds into their enclosing range.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{min(b.Min, other.Min), max(b.Max, other.Max)}
}

// ============================================================================
// Column Access
// ============================================================================

// ColumnAccess represents reading a given column at a given row shift, where
// shift 0 is the current row and shift 1 the next.
type ColumnAccess[F field.Element[F]] struct {
	// Column index accessed.
	Column uint
	// Row shift relative to the evaluation row.
	Shift int
}

// NewColumnAccess constructs an expression reading the given column on the
// current row.
func NewColumnAccess[F field.Element[F]](column uint, shift int) Expr[F] {
	return ColumnAccess[F]{column, shift}
}

// Degree implementation for the Expr interface.
func (p ColumnAccess[F]) Degree() uint { return 1 }

// Bounds implementation for the Expr interface.
func (p ColumnAccess[F]) Bounds() Bounds { return Bounds{p.Shift, p.Shift} }

func (p ColumnAccess[F]) String() string {
	if p.Shift == 0 {
		return fmt.Sprintf("x%d", p.Column)
	}
	//
	return fmt.Sprintf("(shift x%d %d)", p.Column, p.Shift)
}

// ============================================================================
// Constant
// ============================================================================

// Constant represents a fixed field element within an expression.
type Constant[F field.Element[F]] struct {
	Value F
}

// NewConstant constructs an expression representing a given field element.
func NewConstant[F field.Element[F]](value F) Expr[F] {
	return Constant[F]{value}
}

// NewConst64 constructs an expression representing a given unsigned integer.
func NewConst64[F field.Element[F]](value uint64) Expr[F] {
	return Constant[F]{field.Uint64[F](value)}
}

// Degree implementation for the Expr interface.
func (p Constant[F]) Degree() uint { return 0 }

// Bounds implementation for the Expr interface.
func (p Constant[F]) Bounds() Bounds { return Bounds{} }

func (p Constant[F]) String() string { return p.Value.String() }

// ============================================================================
// Public Input
// ============================================================================

// Public represents one of the circuit's public input values.
type Public[F field.Element[F]] struct {
	Index uint
}

// NewPublic constructs an expression reading the given public input.
func NewPublic[F field.Element[F]](index uint) Expr[F] {
	return Public[F]{index}
}

// Degree implementation for the Expr interface.
func (p Public[F]) Degree() uint { return 0 }

// Bounds implementation for the Expr interface.
func (p Public[F]) Bounds() Bounds { return Bounds{} }

func (p Public[F]) String() string { return fmt.Sprintf("p%d", p.Index) }

// ============================================================================
// Row Selectors
// ============================================================================

// FirstRow is a selector which evaluates to one on the first trace row, and
// zero elsewhere.
type FirstRow[F field.Element[F]] struct{}

// Degree implementation for the Expr interface.
func (p FirstRow[F]) Degree() uint { return 1 }

// Bounds implementation for the Expr interface.
func (p FirstRow[F]) Bounds() Bounds { return Bounds{} }

func (p FirstRow[F]) String() string { return "first" }

// LastRow is a selector which evaluates to one on the last trace row, and
// zero elsewhere.
type LastRow[F field.Element[F]] struct{}

// Degree implementation for the Expr interface.
func (p LastRow[F]) Degree() uint { return 1 }

// Bounds implementation for the Expr interface.
func (p LastRow[F]) Bounds() Bounds { return Bounds{} }

func (p LastRow[F]) String() string { return "last" }

// Transition is a selector which evaluates to one on every trace row except
// the last.
type Transition[F field.Element[F]] struct{}

// Degree implementation for the Expr interface.
func (p Transition[F]) Degree() uint { return 0 }

// Bounds implementation for the Expr interface.
func (p Transition[F]) Bounds() Bounds { return Bounds{} }

func (p Transition[F]) String() string { return "transition" }

// ============================================================================
// Addition
// ============================================================================

// Add represents the sum over one or more expressions.
type Add[F field.Element[F]] struct{ Args []Expr[F] }

// Degree implementation for the Expr interface.
func (p Add[F]) Degree() uint { return maxDegree(p.Args) }

// Bounds implementation for the Expr interface.
func (p Add[F]) Bounds() Bounds { return unionBounds(p.Args) }

func (p Add[F]) String() string { return naryString("+", p.Args) }

// Sum constructs the sum of zero or more expressions, folding constants and
// dropping zeros as it goes.
func Sum[F field.Element[F]](args ...Expr[F]) Expr[F] {
	var (
		nargs    = make([]Expr[F], 0, len(args))
		constant = field.Zero[F]()
	)
	//
	for _, arg := range args {
		if c, ok := arg.(Constant[F]); ok {
			constant = constant.Add(c.Value)
		} else {
			nargs = append(nargs, arg)
		}
	}
	//
	if !constant.IsZero() || len(nargs) == 0 {
		nargs = append(nargs, Constant[F]{constant})
	}
	//
	if len(nargs) == 1 {
		return nargs[0]
	}
	//
	return Add[F]{nargs}
}

// ============================================================================
// Subtraction
// ============================================================================

// Sub represents subtracting one or more expressions from the first.
type Sub[F field.Element[F]] struct{ Args []Expr[F] }

// Degree implementation for the Expr interface.
func (p Sub[F]) Degree() uint { return maxDegree(p.Args) }

// Bounds implementation for the Expr interface.
func (p Sub[F]) Bounds() Bounds { return unionBounds(p.Args) }

func (p Sub[F]) String() string { return naryString("-", p.Args) }

// Subtract constructs the difference of two or more expressions, folding
// constants where possible.
func Subtract[F field.Element[F]](args ...Expr[F]) Expr[F] {
	if len(args) == 0 {
		panic("subtraction of zero expressions")
	} else if len(args) == 1 {
		return args[0]
	}
	// Check for all-constant case
	if c, ok := args[0].(Constant[F]); ok {
		value, folded := c.Value, true
		//
		for _, arg := range args[1:] {
			if ci, ok := arg.(Constant[F]); ok {
				value = value.Sub(ci.Value)
			} else {
				folded = false
				break
			}
		}
		//
		if folded {
			return Constant[F]{value}
		}
	}
	// Drop trailing zeros
	nargs := []Expr[F]{args[0]}
	//
	for _, arg := range args[1:] {
		if c, ok := arg.(Constant[F]); !ok || !c.Value.IsZero() {
			nargs = append(nargs, arg)
		}
	}
	//
	if len(nargs) == 1 {
		return nargs[0]
	}
	//
	return Sub[F]{nargs}
}

// ============================================================================
// Multiplication
// ============================================================================

// Mul represents the product over one or more expressions.
type Mul[F field.Element[F]] struct{ Args []Expr[F] }

// Degree implementation for the Expr interface.  Multiplication sums the
// degrees of its operands.
func (p Mul[F]) Degree() uint {
	degree := uint(0)
	//
	for _, arg := range p.Args {
		degree += arg.Degree()
	}
	//
	return degree
}

// Bounds implementation for the Expr interface.
func (p Mul[F]) Bounds() Bounds { return unionBounds(p.Args) }

func (p Mul[F]) String() string { return naryString("*", p.Args) }

// Product constructs the product of zero or more expressions, folding
// constants, dropping ones and short-circuiting on zero.
func Product[F field.Element[F]](args ...Expr[F]) Expr[F] {
	var (
		nargs    = make([]Expr[F], 0, len(args))
		constant = field.One[F]()
	)
	//
	for _, arg := range args {
		if c, ok := arg.(Constant[F]); ok {
			if c.Value.IsZero() {
				return Constant[F]{field.Zero[F]()}
			}
			//
			constant = constant.Mul(c.Value)
		} else {
			nargs = append(nargs, arg)
		}
	}
	//
	if !constant.IsOne() || len(nargs) == 0 {
		nargs = append(nargs, Constant[F]{constant})
	}
	//
	if len(nargs) == 1 {
		return nargs[0]
	}
	//
	return Mul[F]{nargs}
}

// ============================================================================
// Negation
// ============================================================================

// Neg represents the negation of an expression.
type Neg[F field.Element[F]] struct{ Arg Expr[F] }

// Degree implementation for the Expr interface.
func (p Neg[F]) Degree() uint { return p.Arg.Degree() }

// Bounds implementation for the Expr interface.
func (p Neg[F]) Bounds() Bounds { return p.Arg.Bounds() }

func (p Neg[F]) String() string { return fmt.Sprintf("(neg %s)", p.Arg) }

// Negate constructs the negation of an expression, folding constants.
func Negate[F field.Element[F]](arg Expr[F]) Expr[F] {
	if c, ok := arg.(Constant[F]); ok {
		return Constant[F]{c.Value.Neg()}
	}
	//
	return Neg[F]{arg}
}

// ============================================================================
// Exponentiation
// ============================================================================

// Exp represents raising an expression to a fixed non-negative power.
type Exp[F field.Element[F]] struct {
	Arg Expr[F]
	Pow uint64
}

// Degree implementation for the Expr interface.
func (p Exp[F]) Degree() uint { return p.Arg.Degree() * uint(p.Pow) }

// Bounds implementation for the Expr interface.
func (p Exp[F]) Bounds() Bounds { return p.Arg.Bounds() }

func (p Exp[F]) String() string { return fmt.Sprintf("(^ %s %d)", p.Arg, p.Pow) }

// Power constructs an expression raised to a fixed power, folding constants.
func Power[F field.Element[F]](arg Expr[F], pow uint64) Expr[F] {
	if pow == 0 {
		return Constant[F]{field.One[F]()}
	} else if pow == 1 {
		return arg
	}
	//
	if c, ok := arg.(Constant[F]); ok {
		return Constant[F]{field.Pow(c.Value, pow)}
	}
	//
	return Exp[F]{arg, pow}
}

// ============================================================================
// Helpers
// ============================================================================

func maxDegree[F field.Element[F]](args []Expr[F]) uint {
	degree := uint(0)
	//
	for _, arg := range args {
		degree = max(degree, arg.Degree())
	}
	//
	return degree
}

func unionBounds[F field.Element[F]](args []Expr[F]) Bounds {
	var bounds Bounds
	//
	for _, arg := range args {
		bounds = bounds.Union(arg.Bounds())
	}
	//
	return bounds
}

func naryString[F field.Element[F]](op string, args []Expr[F]) string {
	str := "(" + op
	//
	for _, arg := range args {
		str += " " + arg.String()
	}
	//
	return str + ")"
}
