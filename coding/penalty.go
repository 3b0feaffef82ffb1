// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty is the evaluation of a masked symbol, split by rule.
// The mask with the lowest Total is chosen.
type Penalty struct {
	Runs    int // runs of 5 or more same-colour modules in a line
	Boxes   int // 2×2 blocks of same-colour modules
	Finders int // finder-like 1:1:3:1:1 patterns with 4 light modules on one side
	Balance int // deviation of the dark module ratio from 50%
}

// Total returns the sum of the penalties.
func (p Penalty) Total() int {
	return p.Runs + p.Boxes + p.Finders + p.Balance
}

const (
	minRun    = 5  // Runs: minimum run length
	runPDelta = -2 // Runs: add to run length
	boxPP     = 3  // Boxes: points per box
	findPP    = 40 // Finders: points per pattern
	balPP     = 10 // Balance: points for every 5% off 50%

	findLen = 11            // finder pattern window
	findB   = 0b0000_1011101 // light modules before
	findA   = 0b1011101_0000 // light modules after
)

// Evaluate returns the penalty of m.  Reserved modules are scored as
// they stand, light until the format information is written.
//
//   - Runs: for non-overlapping runs of n modules, n>=5 -> n-2
//   - Boxes: for possibly overlapping 2x2 boxes -> 3
//   - Finders: for 1011101 with 0000 on either side -> 40; modules
//     past the edge are the quiet zone and count as light
//   - Balance: for dark modules making k% -> 10*floor(abs(k-50)/5)
func Evaluate(m *Matrix) Penalty {
	var p Penalty
	siz := m.Size
	mod := m.Modules
	for i := 0; i < siz; i++ {
		p.line(mod, i*siz, 1, siz) // row i
		p.line(mod, i, siz, siz)   // column i
	}

	dark := 0
	for y := 0; y < siz; y++ {
		row := mod[y*siz : (y+1)*siz]
		for x, v := range row {
			dark += int(v & Dark)
			if x == 0 || y == 0 {
				continue
			}
			c := v & Dark
			if mod[(y-1)*siz+x]&Dark == c && mod[(y-1)*siz+x-1]&Dark == c &&
				row[x-1]&Dark == c {
				p.Boxes += boxPP
			}
		}
	}

	total := siz * siz
	p.Balance = abs(dark*20-total*10) / total * balPP
	return p
}

// line adds Runs and Finders penalties for the n modules of mod
// starting at start and step apart.
func (p *Penalty) line(mod []Module, start, step, n int) {
	run := 0
	var last Module
	var pat uint16 // last findLen modules, 1 for dark; starts in the quiet zone
	for k, i := 0, start; k < n; k, i = k+1, i+step {
		c := mod[i] & Dark
		if k != 0 && c == last {
			run++
		} else {
			if run >= minRun {
				p.Runs += run + runPDelta
			}
			run, last = 1, c
		}
		pat = (pat<<1 | uint16(c)) & (1<<findLen - 1)
		if pat == findA || pat == findB {
			p.Finders += findPP
		}
	}
	if run >= minRun {
		p.Runs += run + runPDelta
	}
	// quiet zone after the line
	for k := 0; k < 4; k++ {
		pat <<= 1
		if pat&(1<<findLen-1) == findA {
			p.Finders += findPP
		}
	}
}
