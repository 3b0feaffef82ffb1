// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classifyTests = []struct {
	text string
	mode Mode
}{
	{"", Numeric},
	{"0123456789", Numeric},
	{"HELLO WORLD", Alphanumeric},
	{"$%*+-./:", Alphanumeric},
	{"A1", Alphanumeric},
	{"1A", Alphanumeric},
	{"hello", Byte},
	{"HELLO!", Byte},
	{"点茗", Kanji},
	{"あいう", Kanji},
	{"点a", Byte},
	{"点1", Byte},
	{"1点", Byte},
	{"ｱ", Byte},
	{"\xff", Byte},
	{"€", Byte},
}

func TestClassify(t *testing.T) {
	for _, tt := range classifyTests {
		mode := Classify(tt.text)
		assert.Equal(t, tt.mode, mode, "%q", tt.text)
		// The chosen mode represents every character.
		for _, r := range tt.text {
			require.True(t, mode.Accepts(r), "%q: %q", tt.text, r)
		}
	}
}
