// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is one cell of the symbol grid, a set of flags.
//
// A module is a function module if Function is set, a reserved
// format or version information module if Reserved is set, and a data
// module otherwise.  Masked marks data modules flipped by the mask.
type Module byte

const (
	Dark     Module = 1 << iota // dark module
	Function                    // finder, separator, alignment, timing or dark module
	Reserved                    // format or version information
	Masked                      // data module inverted by the mask
)

// IsDark reports whether m is dark.
func (m Module) IsDark() bool { return m&Dark != 0 }

// IsData reports whether m is a data module.
func (m Module) IsData() bool { return m&(Function|Reserved) == 0 }

// A Matrix is a square grid of modules stored in row-major order.
type Matrix struct {
	Size    int      // number of modules on a side
	Modules []Module // Modules[y*Size+x] is the module at column x, row y
}

// NewMatrix returns an all-light matrix of data modules.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, Modules: make([]Module, size*size)}
}

// At returns the module at column x, row y.
func (m *Matrix) At(x, y int) Module { return m.Modules[y*m.Size+x] }

// Set sets the module at column x, row y.
func (m *Matrix) Set(x, y int, v Module) { m.Modules[y*m.Size+x] = v }

// Black reports whether the module at column x, row y is dark.
// Outside the grid Black returns false.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.Modules[y*m.Size+x]&Dark != 0
}

// setDark sets or clears Dark on the module at column x, row y,
// keeping its other flags.
func (m *Matrix) setDark(x, y int, dark bool) {
	i := y*m.Size + x
	if dark {
		m.Modules[i] |= Dark
	} else {
		m.Modules[i] &^= Dark
	}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		Size:    m.Size,
		Modules: append([]Module(nil), m.Modules...),
	}
}

// CountData returns the number of data modules in m.
func (m *Matrix) CountData() int {
	n := 0
	for _, v := range m.Modules {
		if v.IsData() {
			n++
		}
	}
	return n
}

// String returns m drawn with one character per module:
// '#' and '.' for function modules, 'R' and 'r' for reserved
// modules, 'X' and '_' for data modules, dark and light respectively.
func (m *Matrix) String() string {
	b := make([]byte, 0, (m.Size+1)*m.Size)
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			v := m.At(x, y)
			var c byte
			switch {
			case v&Function != 0 && v.IsDark():
				c = '#'
			case v&Function != 0:
				c = '.'
			case v&Reserved != 0 && v.IsDark():
				c = 'R'
			case v&Reserved != 0:
				c = 'r'
			case v.IsDark():
				c = 'X'
			default:
				c = '_'
			}
			b = append(b, c)
		}
		b = append(b, '\n')
	}
	return string(b)
}
