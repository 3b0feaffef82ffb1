// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumMasks is the number of mask patterns.
const NumMasks = 8

// masked reports whether mask pattern mask flips the module at row i,
// column j.  The patterns, drawn with blocks for modules left as is:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
func masked(mask, i, j int) bool {
	switch mask {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return ((i+j)%2+i*j%3)%2 == 0
	}
	panic("qr: invalid mask")
}

// ApplyMask inverts the data modules of m selected by the mask
// pattern and marks them Masked.  Function and reserved modules are
// left alone.
func (m *Matrix) ApplyMask(mask int) {
	siz := m.Size
	mod := m.Modules
	for i := 0; i < siz; i++ {
		row := mod[i*siz : (i+1)*siz]
		for j, v := range row {
			if v.IsData() && masked(mask, i, j) {
				row[j] = v ^ Dark | Masked
			}
		}
	}
}

// SelectMask scores the eight mask patterns on copies of m using up
// to workers goroutines, applies the pattern with the lowest total
// penalty to m and returns it with the scores.  Ties go to the lowest
// pattern number, so the result does not depend on workers.  If
// workers <= 0, runtime.GOMAXPROCS(0) is used.
//
// m is read concurrently and must not be modified until SelectMask
// returns.
func SelectMask(m *Matrix, workers int) (int, [NumMasks]Penalty) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var scores [NumMasks]Penalty
	var g errgroup.Group
	g.SetLimit(workers)
	for mask := range scores {
		mask := mask
		g.Go(func() error {
			c := m.Clone()
			c.ApplyMask(mask)
			scores[mask] = Evaluate(c)
			return nil
		})
	}
	g.Wait()
	best := bestMask(&scores)
	m.ApplyMask(best)
	return best, scores
}

// bestMask returns the index of the strictly lowest total penalty,
// preferring the lowest index among equals.
func bestMask(scores *[NumMasks]Penalty) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Total() < scores[best].Total() {
			best = i
		}
	}
	return best
}
