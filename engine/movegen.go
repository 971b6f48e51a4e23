// movegen.go turns the pseudo-legal generators in position.go into a fully
// legal move generator: moves that leave our own king in check are
// filtered out before they ever reach search, using the Checkers and
// Pinned bitboards that DoMove and UndoMove recompute after every move.

package engine

// LegalGenerateMoves appends to moves every legal move of kind available
// in pos. Unlike GenerateMoves, none of the returned moves leave the
// mover's own king in check.
func (pos *Position) LegalGenerateMoves(kind int, moves *[]Move) {
	us := pos.SideToMove
	kingSq := pos.ByPiece(us, King).AsSquare()

	var pseudo []Move
	switch pos.Checkers.Popcnt() {
	case 0:
		pos.GenerateMoves(kind, &pseudo)
	case 1:
		// Single check: only king moves, captures of the checker, or
		// blocks along the line between king and checker are legal.
		checkerSq := pos.Checkers.AsSquare()
		blockMask := BetweenMask[kingSq][checkerSq] | pos.Checkers
		pos.genKingMovesNear(kind, &pseudo)
		pos.genKingCastles(kind, &pseudo)

		var nonKing []Move
		pos.genPawnAttackMoves(kind, &nonKing)
		pos.genPawnAdvanceMoves(kind, &nonKing)
		pos.genPawnDoubleAdvanceMoves(kind, &nonKing)
		pos.genPawnPromotions(kind, &nonKing)
		pos.genKnightMoves(kind, &nonKing)
		pos.genBishopMoves(Bishop, kind, &nonKing)
		pos.genBishopMoves(Queen, kind, &nonKing)
		pos.genRookMoves(Rook, kind, &nonKing)
		pos.genRookMoves(Queen, kind, &nonKing)
		for _, m := range nonKing {
			if m.CaptureSquare().Bitboard()&blockMask != 0 || m.To().Bitboard()&blockMask != 0 {
				pseudo = append(pseudo, m)
			}
		}
	default:
		// Double check: only the king can move.
		pos.genKingMovesNear(kind, &pseudo)
	}

	for _, m := range pseudo {
		if pos.isLegal(m, kingSq) {
			*moves = append(*moves, m)
		}
	}
}

// isLegal filters a pseudo-legal move for king safety: castling legality
// (already checked by genKingCastles), the moving king itself walking
// into an attacked square, a pinned piece moving off its pin ray, and the
// horizontal en passant discovered-check edge case.
func (pos *Position) isLegal(m Move, kingSq Square) bool {
	us := pos.SideToMove
	them := us.Opposite()

	if m.Piece().Figure() == King {
		if m.MoveType() == Castling {
			return true // legality already verified while generating
		}
		occ := (pos.ByColor[White] | pos.ByColor[Black]) &^ kingSq.Bitboard() | m.To().Bitboard()
		return !pos.isAttackedWithOccupancy(m.To(), them, occ)
	}

	if pos.Pinned[us]&m.From().Bitboard() != 0 {
		if RayMask[kingSq][m.From()]&m.To().Bitboard() == 0 {
			return false
		}
	}

	if m.MoveType() == Enpassant {
		return !pos.enpassantRevealsCheck(m, kingSq, them)
	}

	return true
}

// enpassantRevealsCheck handles the rare case where capturing en passant
// removes two pawns from the same rank as the king, exposing it to a
// horizontal rook or queen attack that was blocked by both pawns.
func (pos *Position) enpassantRevealsCheck(m Move, kingSq Square, them Color) bool {
	all := pos.ByColor[White] | pos.ByColor[Black]
	occ := all &^ m.From().Bitboard() &^ m.CaptureSquare().Bitboard() | m.To().Bitboard()
	attackers := (pos.ByFigure[Rook] | pos.ByFigure[Queen]) & pos.ByColor[them]
	return rookMagic[kingSq].Attack(occ)&attackers != 0
}

// isAttackedWithOccupancy reports whether sq is attacked by them, using
// occ instead of the position's own occupancy (used to evaluate where the
// king may step, ignoring the king's own departure square).
func (pos *Position) isAttackedWithOccupancy(sq Square, them Color, occ Bitboard) bool {
	enemy := pos.ByColor[them]
	sqBb := sq.Bitboard()
	if enemy&pos.ByFigure[Pawn]&Backward(them, West(sqBb)|East(sqBb)) != 0 {
		// An enemy pawn attacks sq from one rank behind sq, as seen
		// from them, on an adjacent file.
		return true
	}
	if enemy&bbKnightAttack[sq]&pos.ByFigure[Knight] != 0 {
		return true
	}
	if enemy&bbKingAttack[sq]&pos.ByFigure[King] != 0 {
		return true
	}
	if enemy&(pos.ByFigure[Bishop]|pos.ByFigure[Queen])&bishopMagic[sq].Attack(occ) != 0 {
		return true
	}
	if enemy&(pos.ByFigure[Rook]|pos.ByFigure[Queen])&rookMagic[sq].Attack(occ) != 0 {
		return true
	}
	return false
}

// IsPseudoLegal returns whether m could be a move generated from pos,
// without running full move generation. Used to validate hash and killer
// moves cheaply before playing them.
func (pos *Position) IsPseudoLegal(m Move) bool {
	if m == NullMove {
		return false
	}
	us := pos.SideToMove
	pi := pos.Get(m.From())
	if pi == NoPiece || pi.Color() != us {
		return false
	}
	if pi.Figure() != m.Piece().Figure() {
		return false
	}
	target := pos.Get(m.To())
	if m.MoveType() != Enpassant && target != m.Capture() {
		return false
	}
	if target != NoPiece && target.Color() == us {
		return false
	}
	return true
}
