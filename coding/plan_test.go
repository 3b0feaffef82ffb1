// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plan1 = `#######.r____.#######
#.....#.r____.#.....#
#.###.#.r____.#.###.#
#.###.#.r____.#.###.#
#.###.#.r____.#.###.#
#.....#.r____.#.....#
#######.#.#.#.#######
........r____........
rrrrrr#rr____rrrrrrrr
______.______________
______#______________
______.______________
______#______________
........#____________
#######.r____________
#.....#.r____________
#.###.#.r____________
#.###.#.r____________
#.###.#.r____________
#.....#.r____________
#######.r____________
`

func TestPlan1(t *testing.T) {
	p, err := NewPlan(1)
	require.NoError(t, err)
	assert.Equal(t, plan1, p.Map.String())
	assert.Equal(t, 21, p.Size)
	assert.Equal(t, 208, p.DataModules())
}

func TestPlan7(t *testing.T) {
	p, err := NewPlan(7)
	require.NoError(t, err)
	m := p.Map
	require.Equal(t, 45, m.Size)
	require.Equal(t, 1568, p.DataModules())
	for i := 0; i < versionLen; i++ {
		x, y := i/3, 34+i%3
		assert.Equal(t, Reserved, m.At(x, y), "(%d,%d)", x, y)
		assert.Equal(t, Reserved, m.At(y, x), "(%d,%d)", y, x)
	}
	for _, c := range [][2]int{
		{6, 22}, {22, 6}, {22, 22}, {22, 38}, {38, 22}, {38, 38},
	} {
		x, y := c[0], c[1]
		assert.Equal(t, Function|Dark, m.At(x, y), "centre (%d,%d)", x, y)
		assert.Equal(t, Function, m.At(x+1, y), "ring (%d,%d)", x+1, y)
		assert.Equal(t, Function, m.At(x-1, y-1), "ring (%d,%d)", x-1, y-1)
		assert.Equal(t, Function|Dark, m.At(x-2, y+2), "edge (%d,%d)", x-2, y+2)
	}
	// The timing strip runs through the alignment boxes on row 6.
	assert.Equal(t, Function|Dark, m.At(20, 6))
	assert.Equal(t, Function, m.At(21, 6))
	assert.Equal(t, Function|Dark, m.At(8, 45-8))
}

func TestPlanAll(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		p, err := NewPlan(v)
		require.NoError(t, err)
		require.Equal(t, v.Words()*8+v.Remainder(), p.DataModules(),
			"version %d", v)
		require.Equal(t, p.DataModules(), p.Map.CountData())
		q, err := NewPlan(v)
		require.NoError(t, err)
		require.Same(t, p, q)
	}
	assert.Equal(t, vplan(12).Map, vplan(12).Map)
}

func TestPlanInvalid(t *testing.T) {
	for _, v := range []Version{0, -1, 41} {
		_, err := NewPlan(v)
		require.True(t, errors.Is(err, ErrInvalidParameter), "version %d", v)
	}
}

func TestPlace(t *testing.T) {
	p, err := NewPlan(1)
	require.NoError(t, err)

	m := p.NewMatrix()
	p.Place(NewBitStream([]byte{0x80}), m)
	assert.True(t, m.Black(20, 20))
	assert.False(t, m.Black(19, 20))
	// The shared map is unchanged.
	assert.False(t, p.Map.Black(20, 20))

	m = p.NewMatrix()
	p.Place(NewBitStream([]byte{0x40}), m)
	assert.False(t, m.Black(20, 20))
	assert.True(t, m.Black(19, 20))

	// All ones darken every data module and nothing else.
	m = p.NewMatrix()
	ones := make([]byte, 26)
	for i := range ones {
		ones[i] = 0xff
	}
	p.Place(NewBitStream(ones), m)
	for i, v := range m.Modules {
		if v.IsData() {
			require.True(t, v.IsDark(), "module %d", i)
		} else {
			require.Equal(t, p.Map.Modules[i], v, "module %d", i)
		}
	}
	assert.Panics(t, func() { p.Place(NewBitStream(nil), NewMatrix(25)) })
}

func TestPlaceOrder(t *testing.T) {
	p, err := NewPlan(1)
	require.NoError(t, err)
	// Upward in columns 20-19, downward in 18-17, skipping the
	// reserved format area at the top.
	first := []int{
		20*21 + 20, 20*21 + 19, 19*21 + 20, 19*21 + 19,
	}
	for i, want := range first {
		assert.Equal(t, int32(want), p.order[i])
	}
	// After columns 20-19 rows 20-9 going up, 18-17 starts at row 9.
	assert.Equal(t, int32(9*21+18), p.order[24])
	// The last module is in column 0 near the bottom.
	assert.Equal(t, int32(12*21+0), p.order[len(p.order)-1])
}
