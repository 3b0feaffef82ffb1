// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Symbol is an encoded QR code.
type Symbol struct {
	Version Version           // QR code version
	Level   Level             // error correction level
	Mask    int               // mask pattern applied
	Scores  [NumMasks]Penalty // penalties of all mask patterns
	Matrix  *Matrix           // modules
}

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	l Level
	b *Bits

	// Workers limits the number of goroutines scoring masks.
	// If Workers <= 0, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidParameter, level)
	}
	p, err := NewPlan(version)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, l: level, b: NewBits(version)}, nil
}

// Write adds text to e.
func (e *Encoder) Write(text ...Segment) error {
	class := e.p.Version.SizeClass()
	for _, t := range text {
		if err := t.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) Reset() { e.b.Reset() }

// Codewords pads the data written to e and returns the data and
// check codewords in symbol order.
func (e *Encoder) Codewords() ([]byte, error) {
	v, l := e.p.Version, e.l
	if n, nb := e.b.Len(), v.DataBits(l); n > nb {
		return nil, fmt.Errorf("%w: cannot encode %d bits into %d-bit code",
			ErrCapacityExceeded, n, nb)
	}
	e.b.Pad(v, l)
	return Interleave(v, l, e.b.Bytes()), nil
}

// Code returns a QR code containing data written to e.
func (e *Encoder) Code() (*Symbol, error) {
	words, err := e.Codewords()
	if err != nil {
		return nil, err
	}
	m := e.p.NewMatrix()
	e.p.Place(NewBitStream(words), m)

	// Apply masks to the matrix, choose the one with the
	// smallest penalty, then fill in the reserved areas.
	mask, scores := SelectMask(m, e.Workers)
	m.WriteFormat(e.l, mask)
	m.WriteVersion(e.p.Version)
	return &Symbol{
		Version: e.p.Version,
		Level:   e.l,
		Mask:    mask,
		Scores:  scores,
		Matrix:  m,
	}, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(text ...Segment) (*Symbol, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code()
}

// Encode encodes text using an Encoder with the given version and level.
func Encode(version Version, level Level, text ...Segment) (*Symbol, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(text...)
}
