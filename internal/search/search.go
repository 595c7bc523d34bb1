/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"sync/atomic"
	"time"

	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/eval"
	"github.com/jcbzqy/kaissa/internal/logging"
	"github.com/jcbzqy/kaissa/internal/movegen"
)

var log = logging.GetSearchLog()

// DefaultDepth is the ply budget FindBestMove uses when Limits.Depth is
// not positive.
const DefaultDepth = 5

// Search owns one transposition table and one killer-move table. A
// Search is cloned (Clone) before being handed to a worker goroutine so
// that two overlapping searches never share mutable state.
type Search struct {
	TT      *TranspositionTable
	Killers *Killers

	// Nodes and TTHits are counted with atomic adds and reported, via
	// atomic.LoadUint64, in FindBestMove's closing search-log line.
	Nodes  uint64
	TTHits uint64
}

// NewSearch returns a Search with a fresh, empty TT and killer table.
func NewSearch() *Search {
	return &Search{TT: NewTranspositionTable(), Killers: NewKillers()}
}

// Clone returns a Search with its own copies of the TT and killer table,
// so a worker can run concurrently with whatever the facade does next
// with the original.
func (s *Search) Clone() *Search {
	return &Search{TT: s.TT.Clone(), Killers: s.Killers.Clone()}
}

// Limits bounds a single FindBestMove call: Depth is the ply budget,
// MoveTime is an optional wall-clock budget checked only between root
// moves, so a search may overshoot by at most one root subtree.
type Limits struct {
	Depth    int
	MoveTime time.Duration // zero means unbounded
}

// Result is what FindBestMove hands back to the engine facade.
type Result struct {
	Move  chess.Move
	Value eval.Value
}

// FindBestMove runs the root iteration of the negamax search: it
// generates the legal moves for b, walks them left to right raising
// alpha as it goes, and stops early - returning whatever root move is
// currently best - if stop reports true or the time budget has elapsed.
// stop and the time budget are consulted only between root moves, never
// inside AlphaBeta's recursion, which keeps the hot loop free of clock
// reads and flag checks.
func (s *Search) FindBestMove(b *chess.Board, limits Limits, stop *atomic.Bool) Result {
	start := time.Now()
	moves := movegen.LegalMoves(b)
	if len(moves) == 0 {
		return Result{Move: chess.NoMove}
	}

	depth := limits.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}

	best := moves[0]
	bestScore := Mate - 1
	alpha, beta := Mate-1, -(Mate - 1)

	for i, m := range moves {
		if stop.Load() {
			log.Debugf("search stopped after %d of %d root moves", i, len(moves))
			break
		}
		if limits.MoveTime > 0 && time.Since(start) >= limits.MoveTime {
			log.Debugf("search time budget of %s elapsed after %d of %d root moves", limits.MoveTime, i, len(moves))
			break
		}

		undo := b.CaptureUndo(m)
		b.MakeMove(m)
		score := -s.AlphaBeta(b, depth-1, -beta, -alpha)
		b.UnmakeMove(m, undo)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	log.Infof("depth %d nodes %d tthits %d best %s score %.2f", depth, atomic.LoadUint64(&s.Nodes), atomic.LoadUint64(&s.TTHits), best.UCI(), float64(bestScore))
	return Result{Move: best, Value: bestScore}
}
