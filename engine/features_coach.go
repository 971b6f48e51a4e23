// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build coach

package engine

const (
	// Figure.
	fNoFigure string = "NoFigure"
	fPawn     string = "Pawn"
	fKnight   string = "Knight"
	fBishop   string = "Bishop"
	fRook     string = "Rook"
	fQueen    string = "Queen"
	fKing     string = "King"

	// Mobility.
	fKnightAttack string = "KnightAttack"
	fBishopAttack string = "BishopAttack"
	fRookAttack   string = "RookAttack"
	fQueenAttack  string = "QueenAttack"
	fKingAttack   string = "KingAttack"
)
