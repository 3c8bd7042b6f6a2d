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
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ingonyama-zk/air-icicle/pkg/util/field"
)

// Printer encapsulates various configuration options useful for printing out
// traces in a human-readable form.  Each trace column becomes one line, with
// trace rows running left to right.
type Printer struct {
	// First row to print
	startRow uint
	// Last row to print (exclusive)
	endRow uint
	// Determine maximum width of any single cell
	maxCellWidth uint
	// Maximum line width, or zero for unbounded
	lineWidth uint
}

// NewPrinter constructs a default printer.  When standard output is a
// terminal, lines are clipped to its width.
func NewPrinter() *Printer {
	lineWidth := uint(0)
	//
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		lineWidth = uint(width)
	}
	//
	return &Printer{0, math.MaxUint, 16, lineWidth}
}

// Start configures the starting row for this printer.
func (p *Printer) Start(start uint) *Printer {
	p.startRow = start
	return p
}

// End configures the ending row (exclusive) for this printer.
func (p *Printer) End(end uint) *Printer {
	p.endRow = end
	return p
}

// MaxCellWidth configures the widest cell to print before truncating.
func (p *Printer) MaxCellWidth(width uint) *Printer {
	p.maxCellWidth = width
	return p
}

// LineWidth configures the maximum line width, with zero meaning unbounded.
func (p *Printer) LineWidth(width uint) *Printer {
	p.lineWidth = width
	return p
}

// PrintTrace writes a given trace using a given printer configuration, one
// line per trace column.
func PrintTrace[F field.Element[F]](p *Printer, w io.Writer, tr *ArrayTrace[F]) {
	var (
		start = p.startRow
		end   = min(p.endRow, tr.Height())
		cells = make([][]string, tr.Width()+1)
	)
	// header row of row indices
	cells[0] = []string{"#"}
	for row := start; row < end; row++ {
		cells[0] = append(cells[0], fmt.Sprintf("%d", row))
	}
	// one line per column
	for col := uint(0); col < tr.Width(); col++ {
		line := []string{tr.Column(col).Name()}
		//
		for row := start; row < end; row++ {
			line = append(line, p.clip(tr.Get(col, row).String()))
		}
		//
		cells[col+1] = line
	}
	//
	widths := columnWidths(cells)
	//
	for _, line := range cells {
		var builder strings.Builder
		//
		for i, cell := range line {
			builder.WriteString(fmt.Sprintf(" %*s", widths[i], cell))
		}
		//
		str := builder.String()
		//
		if p.lineWidth != 0 && uint(len(str)) > p.lineWidth {
			str = str[:p.lineWidth]
		}
		//
		fmt.Fprintln(w, str)
	}
}

func (p *Printer) clip(str string) string {
	if uint(len(str)) > p.maxCellWidth {
		return str[:p.maxCellWidth-2] + ".."
	}
	//
	return str
}

func columnWidths(cells [][]string) []int {
	widths := make([]int, len(cells[0]))
	//
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], len(cell))
		}
	}
	//
	return widths
}
