// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"
)

// A Plan describes how to construct a QR code of a specific version:
// the function patterns, the reserved format and version information
// areas and the order of data module placement.
//
// A Plan is shared and must not be modified.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	Map   *Matrix // function and reserved modules; data modules are light
	order []int32 // data module indices in placement order
}

// Pre-allocated Plans.  A Plan is created the first time a version
// is used.  Each plan is a module map plus the placement order, from
// 1.3 KB for version 1 to 150 KB for version 40.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code with the given version.
// If it doesn't exist, it is created.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidParameter, v)
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// DataModules returns the number of data modules, which equals
// 8*v.Words()+v.Remainder().
func (p *Plan) DataModules() int { return len(p.order) }

// NewMatrix returns a copy of the plan's module map for filling in.
func (p *Plan) NewMatrix() *Matrix { return p.Map.Clone() }

// Place writes bits from s to the data modules of m in zigzag scan
// order.  Modules left after s is exhausted stay light.
func (p *Plan) Place(s BitStream, m *Matrix) {
	if m.Size != p.Size {
		panic("qr: matrix size mismatch")
	}
	mod := m.Modules
	for _, i := range p.order {
		if s.Next() != 0 {
			mod[i] |= Dark
		}
	}
}

func fn(dark bool) Module {
	if dark {
		return Function | Dark
	}
	return Function
}

// vplan creates a Plan for the given version.  The function patterns
// are drawn in order: finders with separators, alignment boxes, timing
// strips, reserved areas and the dark module.  Each step only writes
// modules no earlier step has assigned.
func vplan(v Version) *Plan {
	siz := v.Size()
	m := NewMatrix(siz)
	p := &Plan{Version: v, Size: siz, Map: m}

	// Position boxes and separators.
	finderBox(m, 0, 0)
	finderBox(m, siz-7, 0)
	finderBox(m, 0, siz-7)

	// Alignment boxes, except those overlapping position boxes.
	align := v.Alignment()
	for _, y := range align {
		for _, x := range align {
			if m.At(x, y)&Function == 0 {
				alignBox(m, x, y)
			}
		}
	}

	// Timing strips between the position boxes.
	for i := 8; i < siz-8; i++ {
		if m.At(i, 6) == 0 {
			m.Set(i, 6, fn(i&1 == 0))
		}
		if m.At(6, i) == 0 {
			m.Set(6, i, fn(i&1 == 0))
		}
	}

	// Format and version information.
	for i := 0; i < formatLen; i++ {
		x1, y1, x2, y2 := formatPos(siz, i)
		m.Set(x1, y1, Reserved)
		m.Set(x2, y2, Reserved)
	}
	if v >= 7 {
		for i := 0; i < versionLen; i++ {
			x, y := versionPos(siz, i)
			m.Set(x, y, Reserved)
			m.Set(y, x, Reserved)
		}
	}

	// One lonely black pixel.
	m.Set(8, siz-8, Function|Dark)

	p.order = zigzag(m)
	if len(p.order) != v.Words()*8+v.Remainder() {
		panic("qr: internal error")
	}
	return p
}

// finderBox draws a position box with its separator at upper left
// x, y.  The separator is clipped to the matrix.
func finderBox(m *Matrix, x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.Size || yy < 0 || yy >= m.Size {
				continue
			}
			d := max(abs(dx-3), abs(dy-3)) // ring, 0 at the centre
			m.Set(xx, yy, fn(d != 2 && d != 4))
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func alignBox(m *Matrix, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.Set(x+dx, y+dy, fn(max(abs(dx), abs(dy)) != 1))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// zigzag returns the indices of the data modules of m in placement
// order: two-module-wide columns from right to left, alternately
// upwards and downwards, right module first, skipping the vertical
// timing strip.
func zigzag(m *Matrix) []int32 {
	siz := m.Size
	order := make([]int32, 0, siz*siz)
	up := true
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for n := 0; n < siz; n++ {
			y := n
			if up {
				y = siz - 1 - n
			}
			for _, xx := range [2]int{x, x - 1} {
				if i := y*siz + xx; m.Modules[i].IsData() {
					order = append(order, int32(i))
				}
			}
		}
		up = !up
	}
	return order
}
