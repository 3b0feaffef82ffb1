// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	c := tiny()
	assert.Equal(t, " ▄ ▄ \n ▄█▄ \n     \n", c.String())
	c.Reverse = true
	assert.Equal(t, "█▀█▀█\n█▀ ▀█\n▀▀▀▀▀\n", c.String())
	c.Reverse = false
	c.Border = 0
	assert.Equal(t, "▀▄▀\n▀▀▀\n", c.String())
}

func TestEncodeText(t *testing.T) {
	c := tiny()
	var b bytes.Buffer
	require.NoError(t, c.EncodeText(&b, true))
	assert.Equal(t, ""+
		"          \n"+
		"  ##  ##  \n"+
		"    ##    \n"+
		"  ######  \n"+
		"          \n", b.String())

	b.Reset()
	require.NoError(t, c.EncodeText(&b, false))
	assert.Equal(t, c.String(), b.String())

	c.Border = -1
	assert.True(t, errors.Is(c.EncodeText(&b, true), ErrInvalidParameter))
}

func TestStringSize(t *testing.T) {
	c, err := Encode("HELLO WORLD", M)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	// 21 modules and 4 on each side, two rows per line
	require.Len(t, lines, 15)
	for _, l := range lines {
		require.Equal(t, 29, len([]rune(l)))
	}
	// quiet zone, then the top of the finder patterns
	assert.Equal(t, strings.Repeat(" ", 29), lines[0])
	assert.Equal(t, "    █▀▀▀▀▀█", lines[2][:len("    █▀▀▀▀▀█")])
}
