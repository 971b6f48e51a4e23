// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/bits"

// distance stores the number of king steps required
// to reach from one square to another on an empty board.
var distance [SquareArraySize][SquareArraySize]int32

// max returns maximum of a and b.
func max(a, b int32) int32 {
	if a >= b {
		return a
	}
	return b
}

// min returns minimum of a and b.
func min(a, b int32) int32 {
	if a <= b {
		return a
	}
	return b
}

// popcnt returns the number of set bits in bb.
func popcnt(bb uint64) int {
	return bits.OnesCount64(bb)
}

// logN returns the index of the single set bit in bb.
// Result is undefined if bb has zero or more than one bit set.
func logN(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

func init() {
	for i := SquareMinValue; i <= SquareMaxValue; i++ {
		for j := SquareMinValue; j <= SquareMaxValue; j++ {
			f, r := int32(i.File()-j.File()), int32(i.Rank()-j.Rank())
			f, r = max(f, -f), max(r, -r) // absolute value
			distance[i][j] = max(f, r)
		}
	}
}
