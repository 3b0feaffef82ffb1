// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrenc

import (
	"fmt"

	"github.com/unixdj/qrenc/coding"
)

var sizeClass = [3]struct {
	min, max coding.Version
}{
	{1, 9}, {10, 26}, {27, 40},
}

// ResolveVersion returns the smallest QR version that holds n
// characters encoded in mode at the given level.  For Byte mode n
// counts bytes.
func ResolveVersion(mode Mode, level Level, n int) (coding.Version, error) {
	if !mode.IsValid() || !level.IsValid() || n < 0 {
		return 0, fmt.Errorf("%w: mode %d, level %d, length %d",
			ErrInvalidParameter, mode, level, n)
	}
	// The character count field grows with the size class, hence
	// the weight is computed per class.
	for class, sc := range sizeClass {
		weight := mode.Length(n, class)
		if n >= 1<<mode.CountLength(class) ||
			sc.max.DataBits(level) < weight {
			continue
		}
		// Find version in the size class.
		v, hi := sc.min, sc.max
		for v < hi {
			if mid := (v + hi) / 2; mid.DataBits(level) < weight {
				v = mid + 1
			} else {
				hi = mid
			}
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: %d %s characters at level %s",
		ErrCapacityExceeded, n, mode, level)
}
