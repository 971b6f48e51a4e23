// moves.go deals with move parsing.

package engine

import (
	"fmt"
)

var (
	errorWrongLength       = fmt.Errorf("SAN string is too short")
	errorUnknownFigure     = fmt.Errorf("unknown figure symbol")
	errorBadDisambiguation = fmt.Errorf("bad disambiguation")
	errorBadPromotion      = fmt.Errorf("only pawns on the last rank can be promoted")
	errorNoSuchMove        = fmt.Errorf("no such move")

	symbolToFigure = map[rune]Figure{
		'N': Knight,
		'B': Bishop,
		'R': Rook,
		'Q': Queen,
		'K': King,
	}
)

// SANToMove converts a move in standard algebraic notation to a Move.
// SAN stand for standard algebraic notation and
// its description can be found in FIDE handbook.
//
// The set of strings accepted is a slightly different.
//   x (capture) presence or correctness is ignored.
//   + (check) and # (checkmate) is ignored.
//   e.p. (enpassant) is ignored
func (pos *Position) SANToMove(s string) (Move, error) {
	us := pos.SideToMove
	piece := NoPiece
	moveType := Normal
	var from, to Square
	var capture, target Piece
	r, f := -1, -1

	// s[b:e] is the part that still needs to be parsed.
	b, e := 0, len(s)
	if b == e {
		return NullMove, errorWrongLength
	}
	// Skip + (check) and # (checkmate) at the end.
	for e > b && (s[e-1] == '#' || s[e-1] == '+') {
		e--
	}

	if s[b:e] == "o-o" || s[b:e] == "O-O" { // king side castling
		moveType = Castling
		if us == White {
			from, to, target = SquareE1, SquareG1, WhiteKing
		} else {
			from, to, target = SquareE8, SquareG8, BlackKing
		}
		piece = target
	} else if s[b:e] == "o-o-o" || s[b:e] == "O-O-O" { // queen side castling
		moveType = Castling
		if us == White {
			from, to, target = SquareE1, SquareC1, WhiteKing
		} else {
			from, to, target = SquareE8, SquareC8, BlackKing
		}
		piece = target
	} else { // all other moves
		// Get the piece.
		if ('a' <= s[b] && s[b] <= 'h') || s[b] == 'x' {
			piece = ColorFigure(us, Pawn)
		} else {
			fig, ok := symbolToFigure[rune(s[b])]
			if !ok {
				return NullMove, errorUnknownFigure
			}
			piece = ColorFigure(us, fig)
			b++
		}
		target = piece

		// Skip e.p. when enpassant.
		if e-4 > b && s[e-4:e] == "e.p." {
			e -= 4
		}

		// Check pawn promotion.
		if e-1 < b {
			return NullMove, errorWrongLength
		}
		if !('1' <= s[e-1] && s[e-1] <= '8') {
			// Not a rank, but a promotion.
			if piece.Figure() != Pawn {
				return NullMove, errorBadPromotion
			}
			fig, ok := symbolToFigure[rune(s[e-1])]
			if !ok {
				return NullMove, errorUnknownFigure
			}
			moveType = Promotion
			target = ColorFigure(us, fig)
			e--
			if e-1 >= b && s[e-1] == '=' {
				// Sometimes = is inserted before promotion figure.
				e--
			}
		}

		// Handle destination square.
		if e-2 < b {
			return NullMove, errorWrongLength
		}
		var err error
		to, err = SquareFromString(s[e-2 : e])
		if err != nil {
			return NullMove, err
		}
		if to != SquareA1 && to == pos.EnpassantSquare() {
			moveType = Enpassant
			capture = ColorFigure(us.Opposite(), Pawn)
		} else {
			capture = pos.Get(to)
		}
		e -= 2

		// Ignore 'x' (capture) or '-' (no capture) if present.
		if e-1 >= b && (s[e-1] == 'x' || s[e-1] == '-') {
			e--
		}

		// Parse disambiguation.
		if e-b > 2 {
			return NullMove, errorBadDisambiguation
		}
		for ; b < e; b++ {
			switch {
			case 'a' <= s[b] && s[b] <= 'h':
				f = int(s[b] - 'a')
			case '1' <= s[b] && s[b] <= '8':
				r = int(s[b] - '1')
			default:
				return NullMove, errorBadDisambiguation
			}
		}
	}

	// Loop through all moves and find out one that matches.
	var moves []Move
	pos.GenerateFigureMoves(piece.Figure(), All, &moves)
	for _, pm := range moves {
		if moveType != Castling {
			if pm.MoveType() != moveType || pm.Capture() != capture {
				continue
			}
			if pm.To() != to || pm.Target() != target {
				continue
			}
			if r != -1 && pm.From().Rank() != r {
				continue
			}
			if f != -1 && pm.From().File() != f {
				continue
			}
		} else {
			if pm.MoveType() != Castling || pm.From() != from || pm.To() != to {
				continue
			}
		}
		return pm, nil
	}
	return NullMove, errorNoSuchMove
}

// MoveToUCI converts a move to UCI format.
// The protocol specification at http://wbec-ridderkerk.nl/html/UCIProtocol.html
// incorrectly states that this is the long algebraic notation (LAN).
func (pos *Position) MoveToUCI(move Move) string {
	return move.UCI()
}

// UCIToMove parses a move given in UCI format.
// s can be "a2a4" or "h7h8q" for pawn promotion.
func (pos *Position) UCIToMove(s string) (Move, error) {
	if len(s) < 4 {
		return NullMove, errorWrongLength
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return NullMove, err
	}

	moveType := Normal
	pi := pos.Get(from)
	capture := pos.Get(to)
	target := pi

	if pi.Figure() == Pawn && pos.EnpassantSquare() != SquareA1 && to == pos.EnpassantSquare() {
		moveType = Enpassant
		capture = ColorFigure(pos.SideToMove.Opposite(), Pawn)
	}
	if pi == WhiteKing && from == SquareE1 && (to == SquareC1 || to == SquareG1) {
		moveType = Castling
	}
	if pi == BlackKing && from == SquareE8 && (to == SquareC8 || to == SquareG8) {
		moveType = Castling
	}
	if pi.Figure() == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
		moveType = Promotion
		fig, ok := symbolToFigure[rune(s[4]-'a'+'A')]
		if !ok {
			fig = Queen
		}
		target = ColorFigure(pos.SideToMove, fig)
	}

	return MakeMove(moveType, from, to, capture, target), nil
}
