// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strings"

	"github.com/kestrel-chess/kestrel/engine"
)

var figureLetter = map[engine.Figure]string{
	engine.Knight: "N",
	engine.Bishop: "B",
	engine.Rook:   "R",
	engine.Queen:  "Q",
	engine.King:   "K",
}

// FormatSAN converts move, played from pos, to standard algebraic
// notation: piece letter (none for pawns), disambiguation when more
// than one like piece can reach the same square, capture marker,
// destination square, promotion suffix, and a trailing "+"/"#" for
// check/checkmate. pos must be the position move is played from, before
// move is applied.
func FormatSAN(pos *engine.Position, move engine.Move) string {
	if move.IsCastle() {
		if move.To().File() > move.From().File() {
			return checkSuffix(pos, move, "O-O")
		}
		return checkSuffix(pos, move, "O-O-O")
	}

	var sb strings.Builder
	figure := move.Piece().Figure()
	if figure != engine.Pawn {
		sb.WriteString(figureLetter[figure])
		sb.WriteString(disambiguation(pos, move))
	} else if move.Capture() != engine.NoPiece || move.MoveType() == engine.Enpassant {
		sb.WriteString(move.From().String()[:1])
	}

	if move.Capture() != engine.NoPiece || move.MoveType() == engine.Enpassant {
		sb.WriteString("x")
	}
	sb.WriteString(move.To().String())

	if promo := move.Promotion(); promo != engine.NoPiece {
		sb.WriteString("=")
		sb.WriteString(figureLetter[promo.Figure()])
	}

	return checkSuffix(pos, move, sb.String())
}

// disambiguation returns the minimal file/rank/square prefix needed to
// tell move.From() apart from other same-figure moves to the same
// destination, following SAN's file-then-rank-then-both rule.
func disambiguation(pos *engine.Position, move engine.Move) string {
	figure := move.Piece().Figure()
	us := pos.SideToMove

	var others []engine.Move
	var legal []engine.Move
	pos.LegalGenerateMoves(engine.All, &legal)
	for _, other := range legal {
		if other == move {
			continue
		}
		if other.To() != move.To() {
			continue
		}
		if other.Piece().Figure() != figure || other.Us() != us {
			continue
		}
		others = append(others, other)
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, other := range others {
		if other.From().File() == move.From().File() {
			sameFile = true
		}
		if other.From().Rank() == move.From().Rank() {
			sameRank = true
		}
	}

	from := move.From().String()
	switch {
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	default:
		return from
	}
}

// checkSuffix appends "+" or "#" to san if playing move leaves the
// opponent in check or checkmate.
func checkSuffix(pos *engine.Position, move engine.Move, san string) string {
	pos.DoMove(move)
	defer pos.UndoMove()

	them := pos.SideToMove
	if !pos.IsChecked(them) {
		return san
	}

	var replies []engine.Move
	pos.LegalGenerateMoves(engine.All, &replies)
	if len(replies) == 0 {
		return san + "#"
	}
	return san + "+"
}

// Game is a parsed sequence of moves played from a starting position,
// with an optional result, the minimum needed to write a PGN movetext.
type Game struct {
	Position *engine.Position // starting position
	Moves    []engine.Move
	Result   string // "1-0", "0-1", "1/2-1/2" or "*" if ongoing
	Tags     map[string]string
}

// FormatPGN renders g as PGN text: the seven-tag roster (defaults filled
// in for missing tags) followed by the movetext in SAN.
func (g *Game) FormatPGN() string {
	tags := map[string]string{
		"Event":  "?",
		"Site":   "?",
		"Date":   "????.??.??",
		"Round":  "?",
		"White":  "?",
		"Black":  "?",
		"Result": g.Result,
	}
	for k, v := range g.Tags {
		tags[k] = v
	}
	if tags["Result"] == "" {
		tags["Result"] = "*"
	}

	var sb strings.Builder
	for _, key := range []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"} {
		fmt.Fprintf(&sb, "[%s %q]\n", key, tags[key])
	}
	sb.WriteString("\n")

	pos := g.Position
	fullMove := pos.FullMoveNumber
	whiteToMove := pos.SideToMove == engine.White
	for i, move := range g.Moves {
		if whiteToMove {
			fmt.Fprintf(&sb, "%d. ", fullMove)
		} else if i == 0 {
			fmt.Fprintf(&sb, "%d... ", fullMove)
		}

		sb.WriteString(FormatSAN(pos, move))
		sb.WriteString(" ")

		pos.DoMove(move)
		if !whiteToMove {
			fullMove++
		}
		whiteToMove = !whiteToMove
	}
	for i := len(g.Moves) - 1; i >= 0; i-- {
		pos.UndoMove()
	}

	sb.WriteString(tags["Result"])
	return sb.String()
}
