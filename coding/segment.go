// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// A Mode is a QR segment encoding mode.  The zero Mode is not a valid
// encoding mode.
type Mode int

// Encoding modes, from the narrowest character set to the widest.
const (
	Numeric      Mode = 1 + iota // digits 0-9
	Alphanumeric                 // 0-9, A-Z, SPACE and $%*+-./:
	Byte                         // any data
	Kanji                        // Shift JIS double-byte characters
)

// Modes lists the encoding modes in order of preference.
var Modes = [...]Mode{Numeric, Alphanumeric, Byte, Kanji}

// A modeEncoder implements a QR segment encoding.
//
// The encoder calls a non-nil encode3, encode2 and encode1
// repeatedly as long as 3, 2 and 1 source bytes are available, in
// descending order.  If all are nil, each byte is encoded as 8 bits.
type modeEncoder struct {
	name      string
	indicator uint32          // 4 bit mode indicator
	payload   func(n int) int // encoded length of n characters
	accepts   func(rune) bool // nil accepts any rune
	encode3   func([3]byte) (uint32, int)
	encode2   func([2]byte) (uint32, int)
	encode1   func(byte) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric values indexed by the low 6 bits of the character.
// Used after validation.
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

func isDigit(r rune) bool { return uint32(r-'0') < 10 }

func isAlphanumeric(r rune) bool {
	return alphamask>>(uint32(r)-' ')&1 != 0
}

var modes = [...]modeEncoder{
	Numeric: {
		name:      "numeric",
		indicator: 1,
		payload: func(n int) int {
			return n/3*10 + [3]int{0, 4, 7}[n%3]
		},
		accepts: isDigit,
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
	},
	Alphanumeric: {
		name:      "alphanumeric",
		indicator: 2,
		payload:   func(n int) int { return n/2*11 + n%2*6 },
		accepts:   isAlphanumeric,
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
	},
	Byte: {
		name:      "byte",
		indicator: 4,
		payload:   func(n int) int { return n * 8 },
	},
	Kanji: {
		name:      "kanji",
		indicator: 8,
		payload:   func(n int) int { return n * 13 },
		accepts:   IsKanji,
		encode2: func(b [2]byte) (uint32, int) {
			v := uint32(b[0])<<8 | uint32(b[1])
			if v < 0xe040 {
				v -= 0x8140
			} else {
				v -= 0xc140
			}
			return v>>8*0xc0 + v&0xff, 13
		},
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode.IsValid() {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// IsValid reports whether mode is one of the four encoding modes.
func (mode Mode) IsValid() bool { return Numeric <= mode && mode <= Kanji }

// ParseMode returns the mode named by s, as returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, mode := range Modes {
		if modes[mode].name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: mode %q", ErrInvalidParameter, s)
}

// Indicator returns the 4 bit mode indicator.
func (mode Mode) Indicator() uint32 { return modes[mode].indicator }

// CountLength returns the length of the character count field at
// the given version size class.
func (mode Mode) CountLength(class int) int { return countLength[mode][class] }

// PayloadBits returns the encoded length in bits of n characters,
// excluding the header.  For Byte mode n counts bytes.
func (mode Mode) PayloadBits(n int) int { return modes[mode].payload(n) }

// Length returns the encoded length in bits of n characters at the
// given version size class, including the header.
func (mode Mode) Length(n, class int) int {
	return 4 + mode.CountLength(class) + mode.PayloadBits(n)
}

// Accepts reports whether r is encodable in mode.
func (mode Mode) Accepts(r rune) bool {
	m := getMode(mode)
	return m != nil && (m.accepts == nil || m.accepts(r))
}

// ShiftJIS returns the Shift JIS code of r and whether it is a
// double-byte character.
func ShiftJIS(r rune) (uint16, bool) {
	if r < utf8.RuneSelf || !utf8.ValidRune(r) {
		return 0, false
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	s, err := japanese.ShiftJIS.NewEncoder().Bytes(buf[:n])
	if err != nil || len(s) != 2 {
		return 0, false
	}
	return uint16(s[0])<<8 | uint16(s[1]), true
}

// IsKanji reports whether the rune r belongs to the QR Kanji subset
// of Shift JIS, the double-byte codes 0x8140 to 0x9ffc and 0xe040
// to 0xebbf.
func IsKanji(r rune) bool {
	c, ok := ShiftJIS(r)
	return ok && (0x8140 <= c && c <= 0x9ffc || 0xe040 <= c && c <= 0xebbf)
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode, UTF-8 unless Mode is Byte
	Mode Mode   // encoding mode
}

// CharacterError reports a character that the segment mode cannot
// encode.
type CharacterError struct {
	Mode   Mode // encoding mode
	Rune   rune // offending character
	Offset int  // byte offset of the character in the text
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("qr: non-%s character %q at offset %d",
		e.Mode, e.Rune, e.Offset)
}

func (e *CharacterError) Unwrap() error { return ErrUnsupportedCharacter }

// Validate returns a *CharacterError for the first character in
// seg that its mode cannot encode.
func (seg Segment) Validate() error {
	m := getMode(seg.Mode)
	if m == nil {
		return fmt.Errorf("%w: mode %d", ErrInvalidParameter, seg.Mode)
	}
	if m.accepts == nil {
		return nil
	}
	for i, r := range seg.Text {
		if !m.accepts(r) {
			return &CharacterError{seg.Mode, r, i}
		}
	}
	return nil
}

// Count returns the value of the character count field: the length
// of the text in bytes for Byte mode and in characters otherwise.
func (seg Segment) Count() int {
	if seg.Mode == Byte {
		return len(seg.Text)
	}
	return utf8.RuneCountInString(seg.Text)
}

// EncodedLength returns the encoded length in bits of seg in the
// given version size class, including the header.  The segment is
// not validated.
func (seg Segment) EncodedLength(class int) int {
	return seg.Mode.Length(seg.Count(), class)
}

// kanjiBytes returns the Shift JIS encoding of the validated
// Kanji text s.
func kanjiBytes(s string) string {
	t, err := japanese.ShiftJIS.NewEncoder().String(s)
	if err != nil || len(t) != 2*utf8.RuneCountInString(s) {
		panic("qr: kanji mode internal error")
	}
	return t
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if err := seg.Validate(); err != nil {
		return err
	}
	m := &modes[seg.Mode]
	n := seg.Count()
	nc := seg.Mode.CountLength(class)
	if n >= 1<<nc {
		return fmt.Errorf("%w: %d %s characters", ErrCapacityExceeded,
			n, seg.Mode)
	}
	// write header
	b.Write(m.indicator, 4)
	b.Write(uint32(n), nc)
	// encode the string
	s := seg.Text
	if seg.Mode == Kanji {
		s = kanjiBytes(s)
	}
	enc3, enc2, enc1 := m.encode3, m.encode2, m.encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return nil
	}
	if enc3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if enc2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(enc2([2]byte{s[0], s[1]}))
		}
	}
	if enc1 != nil {
		for ; len(s) >= 1; s = s[1:] {
			b.Write(enc1(s[0]))
		}
	}
	if s != "" {
		panic("qr: " + m.name + " mode internal error")
	}
	return nil
}
