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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ingonyama-zk/air-icicle/pkg/air"
	"github.com/ingonyama-zk/air-icicle/pkg/util"
	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Generate produces a complete execution trace for a given circuit by folding
// its transition function row by row, starting from the given first row.  The
// resulting trace has exactly the circuit's declared dimensions.  On failure
// no partial trace is returned.
func Generate[F field.Element[F]](schema *air.Schema[F], first []F) (*ArrayTrace[F], error) {
	stats := util.NewPerfStats()
	defer stats.Log("trace generation")
	//
	if uint(len(first)) != schema.Width() {
		return nil, &TraceGenerationError{0,
			fmt.Errorf("first row has %d values but circuit has %d columns", len(first), schema.Width())}
	}
	//
	var (
		tr         = NewArrayTrace[F](schema.Width(), schema.Height())
		transition = schema.Transition()
		row        = first
	)
	//
	tr.SetRow(0, first)
	//
	for i := uint(1); i < schema.Height(); i++ {
		next, err := transition(row)
		//
		if err != nil {
			return nil, &TraceGenerationError{i, err}
		} else if uint(len(next)) != schema.Width() {
			return nil, &TraceGenerationError{i,
				fmt.Errorf("transition produced %d values but circuit has %d columns", len(next), schema.Width())}
		}
		//
		tr.SetRow(i, next)
		row = next
	}
	//
	log.WithFields(log.Fields{
		"width":  tr.Width(),
		"height": tr.Height(),
	}).Debug("trace generated")
	//
	return tr, nil
}
