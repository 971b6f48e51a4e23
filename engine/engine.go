// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements board, move generation and position searching.
//
// The package can be used as a general library for chess tool writing and
// provides the core functionality for the kestrel chess engine.
//
// Position (basic.go, position.go) uses:
//
//   * Bitboards for representation - https://chessprogramming.wikispaces.com/Bitboards
//   * Magic bitboards for sliding move generation - https://chessprogramming.wikispaces.com/Magic+Bitboards
//
// Search (engine.go) features implemented are:
//
//   * Aspiration window - https://chessprogramming.wikispaces.com/Aspiration+Windows
//   * Check extension - https://chessprogramming.wikispaces.com/Check+Extensions
//   * Fail soft - https://chessprogramming.wikispaces.com/Fail-Soft
//   * History heuristic - https://chessprogramming.wikispaces.com/History+Heuristic
//   * Killer move heuristic - https://chessprogramming.wikispaces.com/Killer+Heuristic
//   * Late move reduction (LMR) - https://chessprogramming.wikispaces.com/Late+Move+Reductions
//   * Negamax framework - http://chessprogramming.wikispaces.com/Alpha-Beta#Implementation-Negamax%20Framework
//   * Null move pruning (NMP) - https://chessprogramming.wikispaces.com/Null+Move+Pruning
//   * Quiescence search - https://chessprogramming.wikispaces.com/Quiescence+Search.
//   * Zobrist hashing - https://chessprogramming.wikispaces.com/Zobrist+Hashing
//
// Move ordering (move_ordering.go) consists of:
//
//   * Hash move heuristic
//   * Captures sorted by MVVLVA - https://chessprogramming.wikispaces.com/MVV-LVA
//   * Killer moves - https://chessprogramming.wikispaces.com/Killer+Move
//
// Evaluation (material.go) blends middlegame/endgame weights using each
// side's opponent's remaining attacking power, see weights.go.
package engine

import "math"

const (
	checkDepthExtension int32 = 1 // how much to extend search in case of checks
	checkpointStep            = 10000

	// abortScore is the sentinel a node returns when the stop flag or
	// deadline fired. It sits far outside any real evaluation or mate
	// score, so callers can recognize it and propagate it unnegated,
	// unlike every other returned value.
	abortScore int32 = 1 << 30
)

// Options keeps engine's options.
type Options struct {
	AnalyseMode   bool // true to display info strings
	MultiPV       int  // number of principal variations to search, 0 or 1 for a single line
	HandicapLevel int  // 0 for full strength, higher values cap search depth to play weaker

	// DisableNullMove turns off null-move pruning. Used by selfplay for
	// A/B testing search changes; zero value keeps pruning on.
	DisableNullMove bool
	// LateMoveReductionFactor scales the late move reduction; zero
	// value means the default factor of 1.
	LateMoveReductionFactor float64
}

// Stats stores statistics about the search.
type Stats struct {
	CacheHit  uint64 // number of times the position was found transposition table
	CacheMiss uint64 // number of times the position was not found in the transposition table
	Nodes     uint64 // number of nodes searched
	Depth     int32  // depth search
	SelDepth  int32  // maximum depth reached on PV (doesn't include the hash moves)
}

// CacheHitRatio returns the ratio of transposition table hits over total number of lookups.
func (s *Stats) CacheHitRatio() float32 {
	return float32(s.CacheHit) / float32(s.CacheHit+s.CacheMiss)
}

// Logger logs search progress.
type Logger interface {
	// BeginSearch signals a new search is started.
	BeginSearch()
	// EndSearch signals end of search.
	EndSearch()
	// PrintPV logs one principal variation after iterative deepening
	// completed one depth. multiPV is the 1-based rank of this line
	// among the requested Options.MultiPV lines.
	PrintPV(stats Stats, multiPV int, score int32, pv []Move)
}

// NulLogger is a logger that does nothing.
type NulLogger struct {
}

func (nl *NulLogger) BeginSearch() {
}

func (nl *NulLogger) EndSearch() {
}

func (nl *NulLogger) PrintPV(stats Stats, multiPV int, score int32, pv []Move) {
}

// historyTable counts, per side, piece and destination square, how
// much a quiet move has earned its keep by causing beta cutoffs. Read
// with get, scaled by 0.02, as part of move ordering; written only
// on a cutoff in searchTree, where the cutoff move is rewarded and
// the quiet moves tried and rejected before it are penalized.
type historyTable [ColorArraySize][FigureArraySize][SquareArraySize]float64

func (ht *historyTable) get(us Color, fig Figure, to Square) float64 {
	return ht[us][fig][to]
}

func (ht *historyTable) add(us Color, fig Figure, to Square, delta float64) {
	ht[us][fig][to] += delta
}

// Engine implements the logic to search for the best move for a position.
type Engine struct {
	Options  Options   // engine options
	Log      Logger    // logger
	Stats    Stats     // search statistics
	Position *Position // current Position

	rootPly     int           // position's ply at the start of the search
	stack       stack         // stack of moves
	history     *historyTable // keeps history of moves
	depthHashes [256]uint64   // zobrist hash seen at each ply of this search

	timeControl *TimeControl
	stopped     bool
	checkpoint  uint64
	excluded    []Move // root moves excluded from search, used to implement MultiPV
	rootMoves   []Move // if non-empty, restricts the root to these moves (UCI searchmoves)
}

// NewEngine creates a new engine to search for pos.
// If pos is nil then the start position is used.
func NewEngine(pos *Position, log Logger, options Options) *Engine {
	if log == nil {
		log = &NulLogger{}
	}
	history := new(historyTable)
	eng := &Engine{
		Options: options,
		Log:     log,
		history: history,
		stack:   stack{history: history, counter: new([1 << 11]Move)},
	}
	eng.SetPosition(pos)
	return eng
}

// SetPosition sets current position.
// If pos is nil, the starting position is set.
func (eng *Engine) SetPosition(pos *Position) {
	if pos != nil {
		eng.Position = pos
	} else {
		eng.Position, _ = PositionFromFEN(FENStartPos)
	}
}

// DoMove executes a move.
func (eng *Engine) DoMove(move Move) {
	eng.Position.DoMove(move)
}

// UndoMove undoes the last move.
func (eng *Engine) UndoMove() {
	eng.Position.UndoMove()
}

// Score evaluates current position from current player's POV.
func (eng *Engine) Score() int32 {
	score := Evaluate(eng.Position)
	score *= colorWeight[eng.Position.Us()]
	return score
}

// decay subtracts sign(v) from any |v| at least KnownWinScore, so a
// mate score shrinks by one for every ply it is carried up the tree,
// turning "mate in N from here" into "mate in N+1" from the parent.
func decay(v int32) int32 {
	if v >= KnownWinScore {
		return v - 1
	}
	if v <= KnownLossScore {
		return v + 1
	}
	return v
}

// endPosition determines whether the current position is an end game.
// Returns score and a bool if the game has ended.
func (eng *Engine) endPosition() (int32, bool) {
	pos := eng.Position // shortcut
	// Trivial cases when kings are missing.
	if pos.ByPiece(White, King) == 0 && pos.ByPiece(Black, King) == 0 {
		return 0, true
	}
	if pos.ByPiece(White, King) == 0 {
		return colorWeight[pos.Us()] * (MatedScore + eng.ply()), true
	}
	if pos.ByPiece(Black, King) == 0 {
		return colorWeight[pos.Us()] * (MateScore - eng.ply()), true
	}
	// Neither side cannot mate.
	if pos.InsufficientMaterial() {
		return 0, true
	}
	// Fifty full moves without a capture or a pawn move.
	if pos.FiftyMoveRule() {
		return 0, true
	}
	// Repetition against the real game history (predates this search's
	// own depthHashes lookback, see searchTree's step 2).
	if r := pos.ThreeFoldRepetition(); eng.ply() > 0 && r >= 2 || r >= 3 {
		return 0, true
	}
	return 0, false
}

// retrieveHash gets from GlobalHashTable the current position.
func (eng *Engine) retrieveHash() hashEntry {
	entry := GlobalHashTable.get(eng.Position)

	if entry.kind == noEntry {
		eng.Stats.CacheMiss++
		return hashEntry{}
	}
	if entry.move != NullMove && !eng.Position.IsPseudoLegal(entry.move) {
		eng.Stats.CacheMiss++
		return hashEntry{}
	}

	// Return mate score relative to root.
	// The score was adjusted relative to position before the hash table was updated.
	if entry.score < KnownLossScore {
		if entry.kind == exact {
			entry.score += int16(eng.ply())
		}
	} else if entry.score > KnownWinScore {
		if entry.kind == exact {
			entry.score -= int16(eng.ply())
		}
	}

	eng.Stats.CacheHit++
	return entry
}

// updateHash updates GlobalHashTable with the current position.
func (eng *Engine) updateHash(α, β, depth, score int32, move Move) {
	kind := exact
	if score <= α {
		kind = failedLow
	} else if score >= β {
		kind = failedHigh
	}

	// Save the mate score relative to the current position.
	// When retrieving from hash the score will be adjusted relative to root.
	if score < KnownLossScore {
		if kind == exact {
			score -= eng.ply()
		} else if kind == failedLow {
			score = KnownLossScore
		} else {
			return
		}
	} else if score > KnownWinScore {
		if kind == exact {
			score += eng.ply()
		} else if kind == failedHigh {
			score = KnownWinScore
		} else {
			return
		}
	}

	GlobalHashTable.put(eng.Position, hashEntry{
		kind:  kind,
		score: int16(score),
		depth: int8(depth),
		move:  move,
	})
}

// searchChild runs searchTree for a child node, negating the result
// for the parent's point of view unless the child aborted — the
// abort sentinel is never negated, only ever propagated as-is.
func (eng *Engine) searchChild(α, β, depth int32) int32 {
	v := eng.searchTree(α, β, depth)
	if v == abortScore {
		return abortScore
	}
	return -v
}

// searchQuiescence evaluates the position after solving all captures.
//
// This is a very limited search which considers only violent moves.
// Checks are not considered. In fact it assumes that the move
// ordering will always put the king capture first.
func (eng *Engine) searchQuiescence(α, β int32) int32 {
	eng.Stats.Nodes++
	if score, done := eng.endPosition(); done {
		return score
	}

	// Stand pat.
	static := eng.Score()
	if static >= β {
		return static
	}

	pos := eng.Position
	us := pos.Us()
	localα := max(α, static)

	eng.stack.GenerateMoves(Violent, NullMove)
	for move := eng.stack.PopMove(); move != NullMove; move = eng.stack.PopMove() {
		eng.DoMove(move)
		if eng.Position.IsChecked(us) {
			eng.UndoMove()
			continue
		}
		score := -eng.searchQuiescence(-β, -localα)
		eng.UndoMove()

		if score >= β {
			return score
		}
		if score > localα {
			localα = score
		}
	}

	return localα
}

// ply returns the ply from the beginning of the search.
func (eng *Engine) ply() int32 {
	return int32(eng.Position.Ply - eng.rootPly)
}

// isExcludedRootMove returns true if move was already reported as a
// previous MultiPV line and should be skipped at the root.
func (eng *Engine) isExcludedRootMove(move Move) bool {
	for _, m := range eng.excluded {
		if m == move {
			return true
		}
	}
	return false
}

// isAllowedRootMove returns true if move can be searched at the root,
// honoring a UCI searchmoves restriction, if any.
func (eng *Engine) isAllowedRootMove(move Move) bool {
	if len(eng.rootMoves) == 0 {
		return true
	}
	for _, m := range eng.rootMoves {
		if m == move {
			return true
		}
	}
	return false
}

// quietTry records a quiet move attempted at some index in the
// current node's ordered move list, so that a later beta cutoff can
// penalize the ones that came before it.
type quietTry struct {
	move Move
	idx  int32
}

// searchTree implements the recursive alpha-beta search.
//
// searchTree fails soft, i.e. the score returned can be outside the bounds.
//
// α, β represent lower and upper bounds.
// depth is the search depth (decreasing)
//
// Returns the score of the current position up to depth (modulo reductions/extensions),
// or abortScore if the search was cut short by the clock, in which case the
// returned value carries no information and must not be stored or trusted.
// The returned score is from current player's POV.
//
// Invariants:
//   If score <= α then the search failed low and the score is an upper bound.
//   else if score >= β then the search failed high and the score is a lower bound.
//   else score is exact.
func (eng *Engine) searchTree(α, β, depth int32) int32 {
	ply := eng.ply()
	pvNode := α+1 < β
	pos := eng.Position
	us, them := pos.Us(), pos.Them()

	eng.Stats.Nodes++
	if depth >= 3 {
		if !eng.stopped && eng.Stats.Nodes >= eng.checkpoint {
			eng.checkpoint = eng.Stats.Nodes + checkpointStep
			if eng.timeControl.Stopped() {
				eng.stopped = true
			}
		}
		if eng.stopped {
			return abortScore
		}
	}
	if pvNode && ply > eng.Stats.SelDepth {
		eng.Stats.SelDepth = ply
	}

	// Repetition against this search's own line: a position seen two,
	// four, six, eight or ten plies back (same side to move) is a draw.
	hash := pos.Zobrist()
	for _, back := range [...]int32{2, 4, 6, 8, 10} {
		p := ply - back
		if p < 0 {
			break
		}
		if int(p) < len(eng.depthHashes) && eng.depthHashes[p] == hash {
			return 0
		}
	}
	if int(ply) < len(eng.depthHashes) {
		eng.depthHashes[ply] = hash
	}

	// Verify that this is not already an endgame.
	if score, done := eng.endPosition(); done {
		if ply != 0 || score != 0 {
			// At root we ignore draws because some GUIs don't properly detect
			// theoretical draws. E.g. cutechess doesn't detect that kings and
			// bishops when all bishops are on the same color. If the position
			// is a theoretical draw, keep searching for a move.
			return score
		}
	}

	if depth <= 0 {
		score := eng.searchQuiescence(α, β)
		eng.updateHash(α, β, depth, score, NullMove)
		return score
	}

	// Check the transposition table. Skipped at the root: the root
	// move always has to be re-verified, never just returned.
	var entry hashEntry
	if ply > 0 {
		entry = eng.retrieveHash()
	}
	hashMove := entry.move
	if entry.kind != noEntry && depth <= int32(entry.depth) {
		score := int32(entry.score)
		if entry.kind == exact {
			return score
		}
		if entry.kind == failedLow && score <= α {
			return score
		}
		if entry.kind == failedHigh && score >= β {
			return score
		}
	}

	sideIsChecked := pos.IsChecked(us)

	// Null-move pruning: if, after passing the move, the opponent
	// still cannot refute our position within the window, our actual
	// move can only be better, so skip searching it properly.
	if !eng.Options.DisableNullMove &&
		depth >= 1 && ply >= 2 &&
		!sideIsChecked &&
		pos.MinorsAndMajors(us) != 0 {
		if eng.Score() >= β {
			eng.DoMove(NullMove)
			reduction := depth / 2
			v := eng.searchChild(-β, -β+1, depth-1-reduction)
			eng.UndoMove()
			if v == abortScore {
				return abortScore
			}
			if v >= β {
				return v
			}
		}
	}

	bestMove, bestScore := NullMove, int32(-InfinityScore)
	dropped := false // true if some root move was not searched
	localα := α

	var quiets []quietTry
	i := int32(0)

	eng.stack.GenerateMoves(All, hashMove)
	for move := eng.stack.PopMove(); move != NullMove; move = eng.stack.PopMove() {
		if ply == 0 && (eng.isExcludedRootMove(move) || !eng.isAllowedRootMove(move)) {
			dropped = true
			continue
		}
		i++

		eng.DoMove(move)
		if pos.IsChecked(us) {
			eng.UndoMove()
			continue
		}

		// Extend the search when our move gives check, unless we can
		// just take the undefended piece that gave it.
		givesCheck := pos.IsChecked(them)
		newDepth := depth
		if givesCheck {
			if pos.GetAttacker(move.To(), them) == NoFigure ||
				pos.GetAttacker(move.To(), us) != NoFigure {
				newDepth += checkDepthExtension
			}
		}

		reduction := int32(0)
		if !givesCheck {
			factor := eng.Options.LateMoveReductionFactor
			if factor <= 0 {
				factor = 1
			}
			raw := 1 + (float64(i)*0.1+float64(depth)*0.2)*factor
			reduction = int32(math.Round(raw))
			if reduction < 0 {
				reduction = 0
			}
			if reduction > newDepth {
				reduction = newDepth
			}
		}

		v := eng.searchChild(-β, -localα, newDepth-reduction)
		if v == abortScore {
			eng.UndoMove()
			return abortScore
		}
		nextEval := decay(v)

		if reduction > 1 && nextEval > localα {
			v = eng.searchChild(-β, -localα, newDepth-1)
			if v == abortScore {
				eng.UndoMove()
				return abortScore
			}
			nextEval = decay(v)
		}

		eng.UndoMove()

		if move.IsQuiet() {
			quiets = append(quiets, quietTry{move, i})
		}

		if nextEval > bestScore {
			bestMove, bestScore = move, nextEval
		}
		if nextEval > localα {
			localα = nextEval
		}
		if bestScore >= β {
			eng.stack.SaveKiller(move)
			if move.IsQuiet() && ply > 0 {
				invPly := 1 / float64(ply)
				eng.history.add(us, move.Piece().Figure(), move.To(), invPly)
				for _, q := range quiets {
					if q.idx < i {
						eng.history.add(us, q.move.Piece().Figure(), q.move.To(), -invPly/float64(i))
					}
				}
			}
			eng.updateHash(α, β, depth, bestScore, move)
			return bestScore
		}
	}

	if !dropped {
		// If no move was found then the game is over.
		if bestMove == NullMove {
			if sideIsChecked {
				bestScore = MatedScore + ply
			} else {
				bestScore = 0
			}
		}
		eng.updateHash(α, β, depth, bestScore, bestMove)
	}

	return bestScore
}

// search starts the search up to depth depth.
//
// Forms an aspiration window around estimated (the previous
// iteration's score) when depth >= 4, using a ±0.15 pawn window
// around a prior guess or a ±0.5 pawn window around a fresh static
// eval; a result landing outside the window is re-searched exactly
// once with the full [-MATE, +MATE] window.
func (eng *Engine) search(depth, estimated int32) int32 {
	α, β := int32(-InfinityScore), int32(InfinityScore)
	if depth >= 4 {
		γ := estimated
		δ := int32(15) // ~0.15 of a pawn, in centipawns
		if γ == 0 {
			γ = eng.Score()
			δ = 50 // ~0.5 of a pawn
		}
		α, β = max(γ-δ, -InfinityScore), min(γ+δ, InfinityScore)
	}

	score := eng.searchTree(α, β, depth)
	if score == abortScore {
		eng.stopped = true
		return estimated
	}
	if score <= α || score >= β {
		// Single retry with the full window.
		score = eng.searchTree(-InfinityScore, InfinityScore, depth)
		if score == abortScore {
			eng.stopped = true
			return estimated
		}
	}
	return score
}

// Play evaluates current position.
//
// Returns the search statistics and the best principal variation found,
// that is
//	pv[0] is the best move found and
//	pv[1] is the pondering move.
//
// If Options.MultiPV is greater than 1, up to that many distinct lines
// are searched at every depth and reported via Log.PrintPV, ranked best
// first; the returned pv is always the single best line.
//
// If no move was found because the game has finished
// then an empty pv is returned.
//
// Time control, tc, should already be started.
func (eng *Engine) Play(tc *TimeControl) (Stats, []Move) {
	eng.Log.BeginSearch()
	eng.Stats = Stats{Depth: -1}

	eng.rootPly = eng.Position.Ply
	eng.timeControl = tc
	eng.stopped = false
	eng.checkpoint = checkpointStep
	eng.stack.Reset(eng.Position)

	multiPV := eng.Options.MultiPV
	if multiPV < 1 {
		multiPV = 1
	}

	maxDepth := int32(64)
	if eng.Options.HandicapLevel > 0 {
		if capped := maxDepth - 3*int32(eng.Options.HandicapLevel); capped < 1 {
			maxDepth = 1
		} else {
			maxDepth = capped
		}
	}

	var moves []Move
	var bestMoveHistory []Move
	score := int32(0)
	for depth := int32(0); depth < maxDepth; depth++ {
		if !tc.NextDepth(int(depth)) {
			// Stop if tc control says we are done.
			// Search at least one depth, otherwise a move cannot be returned.
			break
		}

		eng.Stats.Depth = depth
		eng.excluded = eng.excluded[:0]
		bestOfDepth := score

		for line := 1; line <= multiPV; line++ {
			lineScore := eng.search(depth, score)
			if eng.stopped {
				break
			}

			pv := GetPV(eng.Position)
			if line == 1 {
				bestOfDepth = lineScore
				moves = pv
			}
			eng.Log.PrintPV(eng.Stats, line, lineScore, pv)

			if len(pv) == 0 {
				// No more lines available at this depth.
				break
			}
			eng.excluded = append(eng.excluded, pv[0])
		}

		if eng.stopped {
			break
		}
		score = bestOfDepth
		if len(moves) > 0 {
			bestMoveHistory = append(bestMoveHistory, moves[0])
		}
		if tc.ShouldExitEarly(bestMoveHistory) {
			break
		}
	}

	eng.Log.EndSearch()
	return eng.Stats, moves
}

// PlayMoves is like Play, but restricts the search at the root to
// rootMoves, mirroring UCI's "go searchmoves" command. An empty
// rootMoves searches all legal moves.
func (eng *Engine) PlayMoves(tc *TimeControl, rootMoves []Move) (Stats, []Move) {
	eng.rootMoves = rootMoves
	stats, moves := eng.Play(tc)
	eng.rootMoves = nil
	return stats, moves
}
