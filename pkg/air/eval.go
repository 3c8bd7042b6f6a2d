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

// Rows provides read access to trace cells during numeric evaluation.  This
// decouples expression evaluation from any particular trace representation.
type Rows[F field.Element[F]] interface {
	// Get returns the value held in a given column on a given row.
	Get(column uint, row uint) F
	// Height returns the number of rows.
	Height() uint
}

// EvalAt numerically evaluates an expression on a given row of a trace.  Row
// shifts wrap around: the "next row" of the last row is row zero.  Selectors
// take their concrete value for the given row, so the result is the exact
// field element the constraint polynomial evaluates to there.
func EvalAt[F field.Element[F]](expr Expr[F], row uint, rows Rows[F], publics []F) F {
	switch e := expr.(type) {
	case ColumnAccess[F]:
		r := (int(row) + e.Shift) % int(rows.Height())
		return rows.Get(e.Column, uint(r))
	case Constant[F]:
		return e.Value
	case Public[F]:
		return publics[e.Index]
	case FirstRow[F]:
		return boolToField[F](row == 0)
	case LastRow[F]:
		return boolToField[F](row == rows.Height()-1)
	case Transition[F]:
		return boolToField[F](row != rows.Height()-1)
	case Add[F]:
		val := field.Zero[F]()
		//
		for _, arg := range e.Args {
			val = val.Add(EvalAt(arg, row, rows, publics))
		}
		//
		return val
	case Sub[F]:
		val := EvalAt(e.Args[0], row, rows, publics)
		//
		for _, arg := range e.Args[1:] {
			val = val.Sub(EvalAt(arg, row, rows, publics))
		}
		//
		return val
	case Mul[F]:
		val := field.One[F]()
		//
		for _, arg := range e.Args {
			val = val.Mul(EvalAt(arg, row, rows, publics))
		}
		//
		return val
	case Neg[F]:
		return EvalAt(e.Arg, row, rows, publics).Neg()
	case Exp[F]:
		return field.Pow(EvalAt(e.Arg, row, rows, publics), e.Pow)
	default:
		panic(fmt.Sprintf("unknown expression %s", expr))
	}
}

func boolToField[F field.Element[F]](flag bool) F {
	if flag {
		return field.One[F]()
	}
	//
	return field.Zero[F]()
}
