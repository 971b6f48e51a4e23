// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// GetPV reconstructs the principal variation by walking the global
// transposition table starting from pos: at each step it takes the
// entry's best move, checks it is still pseudo-legal in the current
// position (a stale or hash-collided entry can name a move the
// current position can't make), plays it and recurses.
//
// It stops on a missing entry, a stale one whose move doesn't apply,
// or a revisited hash (a cycle) rather than trusting the table
// forever; search correctness never depends on the PV being complete,
// only the reported line does.
func GetPV(pos *Position) []Move {
	seen := make(map[uint64]bool)
	var moves []Move

	for {
		zobrist := pos.Zobrist()
		if seen[zobrist] {
			break
		}
		seen[zobrist] = true

		entry := GlobalHashTable.get(pos)
		if entry.kind == noEntry || entry.move == NullMove || !pos.IsPseudoLegal(entry.move) {
			break
		}

		moves = append(moves, entry.move)
		pos.DoMove(entry.move)
	}

	for range moves {
		pos.UndoMove()
	}
	return moves
}
