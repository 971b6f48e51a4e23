// Copyright 2014-2016 The Kestrel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selfplay runs games between two engine configurations and
// reports, with a statistical confidence, whether the candidate
// configuration is an improvement over the baseline.
package selfplay

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kestrel-chess/kestrel/book"
	"github.com/kestrel-chess/kestrel/engine"
)

// Config describes an A/B test between a candidate and a baseline set of
// engine options, loaded from a TOML file by LoadConfig.
type Config struct {
	Games     int     `toml:"games"`     // number of games to play, split evenly between colors
	Depth     int     `toml:"depth"`     // fixed search depth per move
	Seed      int64   `toml:"seed"`      // RNG seed for opening selection
	Baseline  Options `toml:"baseline"`  // options for the baseline engine
	Candidate Options `toml:"candidate"` // options for the candidate engine
}

// Options mirrors the subset of engine.Options that selfplay tunes.
type Options struct {
	DisableNullMove         bool    `toml:"disable_null_move"`
	LateMoveReductionFactor float64 `toml:"late_move_reduction_factor"`
	HandicapLevel           int     `toml:"handicap_level"`
}

func (o Options) toEngineOptions() engine.Options {
	return engine.Options{
		DisableNullMove:         o.DisableNullMove,
		LateMoveReductionFactor: o.LateMoveReductionFactor,
		HandicapLevel:           o.HandicapLevel,
	}
}

// Result tallies outcomes from the candidate's point of view.
type Result struct {
	Wins, Losses, Draws int
}

// Confidence estimates, via a Beta(wins+draws/2+1, losses+draws/2+1)
// posterior over the win rate, the probability that the candidate is
// stronger than the baseline (win rate above 0.5). Each draw counts as
// half a win and half a loss rather than being discarded, so a long
// run of draws still pulls the estimate toward even strength instead
// of being invisible to it.
func (r Result) Confidence() float64 {
	if r.Wins+r.Losses+r.Draws == 0 {
		return 0.5
	}
	half := float64(r.Draws) / 2
	beta := distuv.Beta{Alpha: float64(r.Wins) + half + 1, Beta: float64(r.Losses) + half + 1}
	return 1 - beta.CDF(0.5)
}

// Run plays cfg.Games games of cfg.Depth fixed-depth search, alternating
// which side the candidate plays, starting from random book positions,
// and returns the aggregate Result.
func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		return Result{}, errors.New("selfplay: Games must be positive")
	}
	if cfg.Depth <= 0 {
		return Result{}, errors.New("selfplay: Depth must be positive")
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	var result Result

	for i := 0; i < cfg.Games; i++ {
		candidateIsWhite := i%2 == 0
		outcome, err := playGame(r, cfg, candidateIsWhite)
		if err != nil {
			return result, err
		}
		switch outcome {
		case outcomeCandidateWin:
			result.Wins++
		case outcomeBaselineWin:
			result.Losses++
		case outcomeDraw:
			result.Draws++
		}
	}

	return result, nil
}

type outcome int

const (
	outcomeDraw outcome = iota
	outcomeCandidateWin
	outcomeBaselineWin
)

// playGame plays a single game to checkmate, stalemate, or a move limit,
// returning the outcome relative to the candidate engine.
func playGame(r *rand.Rand, cfg Config, candidateIsWhite bool) (outcome, error) {
	pos, err := book.Random(r)
	if err != nil {
		return outcomeDraw, err
	}

	candidateOptions := cfg.Candidate.toEngineOptions()
	baselineOptions := cfg.Baseline.toEngineOptions()

	eng := engine.NewEngine(pos, nil, candidateOptions)

	const maxPlies = 200
	for ply := 0; ply < maxPlies; ply++ {
		sideIsCandidate := (pos.SideToMove == engine.White) == candidateIsWhite
		if sideIsCandidate {
			eng.Options = candidateOptions
		} else {
			eng.Options = baselineOptions
		}

		tc := engine.NewFixedDepthTimeControl(pos, cfg.Depth)
		tc.Start(false)
		_, pv := eng.Play(tc)
		if len(pv) == 0 {
			// No legal move: checkmate or stalemate.
			if pos.IsChecked(pos.SideToMove) {
				return colorOutcome(pos.SideToMove.Opposite(), candidateIsWhite), nil
			}
			return outcomeDraw, nil
		}

		eng.DoMove(pv[0])
	}

	return outcomeDraw, nil
}

// colorOutcome reports the outcome of winner having won, from the
// candidate's perspective.
func colorOutcome(winner engine.Color, candidateIsWhite bool) outcome {
	winnerIsCandidate := (winner == engine.White) == candidateIsWhite
	if winnerIsCandidate {
		return outcomeCandidateWin
	}
	return outcomeBaselineWin
}
