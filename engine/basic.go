// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate stringer -type Figure
//go:generate stringer -type Color
//go:generate stringer -type Piece
//go:generate stringer -type MoveType

package engine

import (
	"fmt"
	"strings"
)

var (
	errorInvalidSquare = fmt.Errorf("invalid square")

	figureToSymbol = map[Figure]string{
		Knight: "N",
		Bishop: "B",
		Rook:   "R",
		Queen:  "Q",
		King:   "K",
	}
)

// Square identifies the location on the board.
type Square uint8

const (
	SquareA1 Square = 8 * iota
	SquareA2
	SquareA3
	SquareA4
	SquareA5
	SquareA6
	SquareA7
	SquareA8
)

const (
	SquareB1 = SquareA1 + 1
	SquareB2 = SquareA2 + 1
	SquareB3 = SquareA3 + 1
	SquareB4 = SquareA4 + 1
	SquareB5 = SquareA5 + 1
	SquareB6 = SquareA6 + 1
	SquareB7 = SquareA7 + 1
	SquareB8 = SquareA8 + 1

	SquareC1 = SquareA1 + 2
	SquareC2 = SquareA2 + 2
	SquareC3 = SquareA3 + 2
	SquareC4 = SquareA4 + 2
	SquareC5 = SquareA5 + 2
	SquareC6 = SquareA6 + 2
	SquareC7 = SquareA7 + 2
	SquareC8 = SquareA8 + 2

	SquareD1 = SquareA1 + 3
	SquareD2 = SquareA2 + 3
	SquareD3 = SquareA3 + 3
	SquareD4 = SquareA4 + 3
	SquareD5 = SquareA5 + 3
	SquareD6 = SquareA6 + 3
	SquareD7 = SquareA7 + 3
	SquareD8 = SquareA8 + 3

	SquareE1 = SquareA1 + 4
	SquareE2 = SquareA2 + 4
	SquareE3 = SquareA3 + 4
	SquareE4 = SquareA4 + 4
	SquareE5 = SquareA5 + 4
	SquareE6 = SquareA6 + 4
	SquareE7 = SquareA7 + 4
	SquareE8 = SquareA8 + 4

	SquareF1 = SquareA1 + 5
	SquareF2 = SquareA2 + 5
	SquareF3 = SquareA3 + 5
	SquareF4 = SquareA4 + 5
	SquareF5 = SquareA5 + 5
	SquareF6 = SquareA6 + 5
	SquareF7 = SquareA7 + 5
	SquareF8 = SquareA8 + 5

	SquareG1 = SquareA1 + 6
	SquareG2 = SquareA2 + 6
	SquareG3 = SquareA3 + 6
	SquareG4 = SquareA4 + 6
	SquareG5 = SquareA5 + 6
	SquareG6 = SquareA6 + 6
	SquareG7 = SquareA7 + 6
	SquareG8 = SquareA8 + 6

	SquareH1 = SquareA1 + 7
	SquareH2 = SquareA2 + 7
	SquareH3 = SquareA3 + 7
	SquareH4 = SquareA4 + 7
	SquareH5 = SquareA5 + 7
	SquareH6 = SquareA6 + 7
	SquareH7 = SquareA7 + 7
	SquareH8 = SquareA8 + 7
)

const (
	SquareArraySize = 64
	SquareMinValue  = SquareA1
	SquareMaxValue  = Square(SquareArraySize - 1)

	BbEmpty Bitboard = 0
	BbFull  Bitboard = 0xffffffffffffffff
)

// RankFile returns a square with rank r and file f.
// r and f should be between 0 and 7.
func RankFile(r, f int) Square {
	return Square(r*8 + f)
}

// SquareFromString parses a square from a string.
// The string has standard chess format [a-h][1-8].
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, errorInvalidSquare
	}

	f, r := -1, -1
	if 'a' <= s[0] && s[0] <= 'h' {
		f = int(s[0] - 'a')
	}
	if 'A' <= s[0] && s[0] <= 'H' {
		f = int(s[0] - 'A')
	}
	if '1' <= s[1] && s[1] <= '8' {
		r = int(s[1] - '1')
	}
	if f == -1 || r == -1 {
		return SquareA1, errorInvalidSquare
	}

	return RankFile(r, f), nil
}

// Bitboard returns a bitboard that has sq set.
func (sq Square) Bitboard() Bitboard {
	return 1 << uint(sq)
}

// Relative returns the square shifted dr ranks and df files.
// Result is undefined if it falls off the board.
func (sq Square) Relative(dr, df int) Square {
	return sq + Square(dr*8+df)
}

// Rank returns a number from 0 to 7 representing the rank of the square.
func (sq Square) Rank() int {
	return int(sq / 8)
}

// File returns a number from 0 to 7 representing the file of the square.
func (sq Square) File() int {
	return int(sq % 8)
}

func (sq Square) String() string {
	return string([]byte{
		uint8(sq.File() + 'a'),
		uint8(sq.Rank() + '1'),
	})
}

// Figure represents a piece without a color.
type Figure uint

const (
	NoFigure Figure = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	FigureArraySize = int(iota)
	FigureMinValue  = Pawn
	FigureMaxValue  = King
)

// Color represents a side.
type Color uint

const (
	NoColor Color = iota
	White
	Black

	ColorArraySize = int(iota)
	ColorMinValue  = White
	ColorMaxValue  = Black
)

var (
	colorWeight  = [ColorArraySize]int32{0, 1, -1}
	kingHomeRank = [ColorArraySize]int{0, 0, 7}
)

// Opposite returns the reversed color.
// Result is undefined if c is not White or Black.
func (c Color) Opposite() Color {
	return White + Black - c
}

// Other is an alias of Opposite, matching the move generator's call sites.
func (c Color) Other() Color {
	return c.Opposite()
}

// KingHomeRank return king's rank on starting position.
// Result is undefined if c is not White or Black.
func (c Color) KingHomeRank() int {
	return kingHomeRank[c]
}

// Piece is a figure owned by one side, packed as fig<<2|color.
type Piece uint8

const (
	NoPiece Piece = 0

	PieceArraySize = int(King<<2) + int(ColorArraySize)
	PieceMinValue  = Piece(0)
	PieceMaxValue  = Piece(PieceArraySize - 1)
)

// ColorFigure returns a piece with col and fig.
func ColorFigure(col Color, fig Figure) Piece {
	return Piece(fig<<2) + Piece(col)
}

var (
	WhitePawn   = ColorFigure(White, Pawn)
	BlackPawn   = ColorFigure(Black, Pawn)
	WhiteKnight = ColorFigure(White, Knight)
	BlackKnight = ColorFigure(Black, Knight)
	WhiteBishop = ColorFigure(White, Bishop)
	BlackBishop = ColorFigure(Black, Bishop)
	WhiteRook   = ColorFigure(White, Rook)
	BlackRook   = ColorFigure(Black, Rook)
	WhiteQueen  = ColorFigure(White, Queen)
	BlackQueen  = ColorFigure(Black, Queen)
	WhiteKing   = ColorFigure(White, King)
	BlackKing   = ColorFigure(Black, King)
)

// Color returns piece's color.
func (pi Piece) Color() Color {
	return Color(pi & 3)
}

// Figure returns piece's figure.
func (pi Piece) Figure() Figure {
	return Figure(pi >> 2)
}

// An 8x8 bitboard.
type Bitboard uint64

// RankBb returns a bitboard with all bits on rank set.
func RankBb(rank int) Bitboard {
	rank1 := Bitboard(0x00000000000000ff)
	return rank1 << uint(8*rank)
}

// FileBb returns a bitboard with all bits on file set.
func FileBb(file int) Bitboard {
	fileA := Bitboard(0x0101010101010101)
	return fileA << uint(file)
}

// AsSquare returns the occupied square if the bitboard has a single piece.
// If the board has more then one piece the result is undefined.
func (bb Bitboard) AsSquare() Square {
	return Square(logN(uint64(bb)))
}

// LSB picks a square in the board.
// Returns empty board for empty board.
func (bb Bitboard) LSB() Bitboard {
	return bb & (-bb)
}

// Popcnt counts number of squares set in bb.
func (bb Bitboard) Popcnt() int {
	return popcnt(uint64(bb))
}

// Count is an alias of Popcnt, matching the evaluator's call sites.
func (bb Bitboard) Count() int32 {
	return int32(bb.Popcnt())
}

// CountMax2 returns min(bb.Popcnt(), 2), used for the king attack
// strength where only the presence of one vs. several squares matters.
func (bb Bitboard) CountMax2() int32 {
	if bb == 0 {
		return 0
	}
	if bb&(bb-1) == 0 {
		return 1
	}
	return 2
}

// Has returns true if sq is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&sq.Bitboard() != 0
}

// Pop pops a set square from the bitboard.
func (bb *Bitboard) Pop() Square {
	sq := (*bb).LSB()
	*bb -= sq
	return sq.AsSquare()
}

// Move type.
type MoveType uint8

const (
	NoMove MoveType = iota
	Normal
	Promotion
	Castling
	Enpassant
)

// Move stores a position-dependent move.
//
// target is the piece that ends up on the To square: for a normal move
// this is the piece that moved, for a promotion it is the promoted piece.
// Fields are unexported so Move stays a small, comparable value that can
// be used as a map key and compared with == against NullMove.
type Move struct {
	moveType         MoveType
	from, to         Square
	capture, target  Piece
}

// MakeMove builds a move. target is the piece left on the To square,
// i.e. the promoted piece for a Promotion move, otherwise the moved piece.
func MakeMove(mt MoveType, from, to Square, capture, target Piece) Move {
	return Move{moveType: mt, from: from, to: to, capture: capture, target: target}
}

// NullMove is the zero-value Move, used as a sentinel for "no move".
var NullMove = Move{}

// From returns the source square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// MoveType returns the move's type.
func (m Move) MoveType() MoveType { return m.moveType }

// Capture returns the piece captured by this move, NoPiece if none.
func (m Move) Capture() Piece { return m.capture }

// Target returns the piece that ends up on To: the promoted piece for
// promotions, otherwise the piece that moved.
func (m Move) Target() Piece { return m.target }

// Piece returns the piece that moved, before any promotion is applied.
func (m Move) Piece() Piece {
	if m.moveType != Promotion {
		return m.target
	}
	return ColorFigure(m.target.Color(), Pawn)
}

// Promotion returns the promoted-to piece, or NoPiece if this isn't a
// promotion.
func (m Move) Promotion() Piece {
	if m.moveType != Promotion {
		return NoPiece
	}
	return m.target
}

// Us returns the side making the move.
func (m Move) Us() Color {
	return m.target.Color()
}

// CaptureSquare returns the captured piece's square.
// If no piece is captured, the result is undefined.
func (m Move) CaptureSquare() Square {
	if m.moveType == Enpassant {
		return RankFile(m.from.Rank(), m.to.File())
	}
	return m.to
}

// IsViolent returns true if the move can change the position's score
// significantly: a capture or a promotion.
func (m Move) IsViolent() bool {
	return m.capture != NoPiece || m.moveType == Promotion
}

// IsQuiet is the opposite of IsViolent.
func (m Move) IsQuiet() bool {
	return !m.IsViolent()
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.moveType == Castling
}

// UCI converts a move to UCI long algebraic notation.
func (m Move) UCI() string {
	s := m.from.String() + m.to.String()
	if m.moveType == Promotion {
		s += strings.ToLower(figureToSymbol[m.target.Figure()])
	}
	return s
}

func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	return m.UCI()
}

// Castle rights mask.
type Castle uint8

const (
	// White can castle on King side.
	WhiteOO Castle = 1 << iota
	// White can castle on Queen side.
	WhiteOOO
	// Black can castle on King side.
	BlackOO
	// Black can castle on Queen side.
	BlackOOO

	NoCastle  Castle = 0
	AnyCastle Castle = WhiteOO | WhiteOOO | BlackOO | BlackOOO

	CastleArraySize = int(AnyCastle + 1)
	CastleMinValue  = NoCastle
	CastleMaxValue  = AnyCastle
)

var castleToSymbol = map[Castle]byte{
	WhiteOO:  'K',
	WhiteOOO: 'Q',
	BlackOO:  'k',
	BlackOOO: 'q',
}

func (c Castle) String() string {
	if c == 0 {
		return "-"
	}

	var r []byte
	for c > 0 {
		k := c & (-c)
		r = append(r, castleToSymbol[k])
		c -= k
	}
	return string(r)
}

// CastlingRook returns the rook piece and its start/end squares for a
// castling move that lands the king on kingEnd.
func CastlingRook(kingEnd Square) (Piece, Square, Square) {
	piece := Piece(Rook<<2) + 1 + Piece(kingEnd>>5)
	rookStart := kingEnd&^3 | (kingEnd & 4 >> 1) | (kingEnd & 4 >> 2)
	rookEnd := kingEnd ^ (kingEnd & 4 >> 1) | 1
	return piece, rookStart, rookEnd
}
