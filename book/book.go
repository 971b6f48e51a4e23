// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package book implements a tiny built-in opening book.
//
// The book is a fixed list of FEN positions reached after a handful of
// well known opening moves, used by selfplay to diversify games without
// plugging in a Polyglot book.
package book

import (
	"math/rand"

	"github.com/kestrel-chess/kestrel/engine"
)

// FENs lists the positions making up the book, one per opening line.
// Each entry is reachable from the start position by a short, sound
// sequence of moves; see testFENs in engine/test_data.go for the style
// these were collected in.
var FENs = []string{
	// Start position.
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	// 1. e4 e5
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	// 1. e4 c5 (Sicilian)
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	// 1. e4 e6 (French)
	"rnbqkbnr/pppp1ppp/4p3/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	// 1. e4 c6 (Caro-Kann)
	"rnbqkbnr/pp1ppppp/2p5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	// 1. d4 d5
	"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 2",
	// 1. d4 Nf6 (Indian)
	"rnbqkb1r/pppppppp/5n2/8/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 2 2",
	// 1. c4 (English)
	"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq - 0 1",
	// 1. Nf3 (Reti)
	"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
}

// Random returns a random position from the book, parsed from FEN.
// It always succeeds since every entry in FENs is a valid FEN.
func Random(r *rand.Rand) (*engine.Position, error) {
	fen := FENs[r.Intn(len(FENs))]
	return engine.PositionFromFEN(fen)
}
