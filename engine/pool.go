// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pool.go implements a Lazy SMP worker pool: several goroutines running
// Engine.Play concurrently against the same position, sharing one
// GlobalHashTable. Workers other than the leader search quietly; the
// leader's PV is the one reported back to the caller.
package engine

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool runs a Lazy SMP search: Size workers each run their own
// iterative-deepening loop against a shared position and transposition
// table, racing to finish; the leader (worker 0) is the one whose PV
// and Stats are reported.
//
// Workers help each other only indirectly, through GlobalHashTable:
// there is no move-splitting or shared search tree, which is what
// makes the scheme "lazy".
type Pool struct {
	Size    int     // number of worker goroutines, at least 1
	Options Options // options applied to every worker
	Log     Logger  // leader's logger; workers other than the leader use NulLogger

	nodes uint64 // accumulated node count across all workers, atomic
}

// NewPool creates a pool of size workers. size is clamped to at least 1.
func NewPool(size int, log Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{Size: size, Log: log}
}

// Play searches pos with tc using every worker in the pool and returns the
// leader's statistics and principal variation. tc should already be
// started; Play stops every worker once tc signals the search is done.
func (p *Pool) Play(pos *Position, tc *TimeControl) (Stats, []Move) {
	if p.Size <= 1 {
		eng := NewEngine(pos, p.Log, p.Options)
		return eng.Play(tc)
	}

	var group errgroup.Group
	var leaderStats Stats
	var leaderMoves []Move

	for i := 0; i < p.Size; i++ {
		i := i
		group.Go(func() error {
			log := Logger(&NulLogger{})
			if i == 0 {
				log = p.Log
			}

			eng := NewEngine(pos.Clone(), log, p.Options)
			stats, moves := eng.Play(tc)
			atomic.AddUint64(&p.nodes, stats.Nodes)

			if i == 0 {
				leaderStats, leaderMoves = stats, moves
				// The leader finished its own budget; tell every
				// helper to stop racing on a search whose result
				// is already decided.
				tc.Stop()
			}
			return nil
		})
	}

	group.Wait()
	leaderStats.Nodes = atomic.LoadUint64(&p.nodes)
	return leaderStats, leaderMoves
}

// Clone returns an independent copy of pos: same board, but with its
// own move-history state so that DoMove/UndoMove on the clone never
// affects pos. Used to give every Pool worker its own position to
// mutate concurrently.
func (pos *Position) Clone() *Position {
	cp := *pos
	cp.states = append([]state(nil), pos.states...)
	cp.curr = &cp.states[len(cp.states)-1]
	return &cp
}
