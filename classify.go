// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import "github.com/unixdj/qrenc/coding"

// Bit fields of modes.
const (
	numModes   = 1<<Numeric | 1<<Alphanumeric | 1<<Byte
	alphaModes = 1<<Alphanumeric | 1<<Byte
	kanjiModes = 1<<Kanji | 1<<Byte
	byteModes  = 1 << Byte
	allModes   = numModes | kanjiModes
)

// preference lists the modes from the narrowest character set to the
// widest.  Kanji is preferred over Byte when the text is all kanji.
var preference = [...]Mode{Numeric, Alphanumeric, Kanji, Byte}

// Classify returns the narrowest mode that can encode all of text.
// Byte mode accepts anything and is the fallback.  Empty text is
// Numeric.
func Classify(text string) Mode {
	m := allModes
	for _, r := range text {
		switch {
		case coding.Numeric.Accepts(r):
			m &= numModes
		case coding.Alphanumeric.Accepts(r):
			m &= alphaModes
		case coding.IsKanji(r):
			m &= kanjiModes
		default:
			m &= byteModes
		}
		if m == byteModes {
			break
		}
	}
	for _, mode := range preference {
		if m>>mode&1 != 0 {
			return mode
		}
	}
	return Byte
}
