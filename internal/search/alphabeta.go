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

// Package search implements negamax alpha-beta with a transposition
// table and killer-move ordering. There is no quiescence search,
// iterative deepening, or history heuristic - a single fixed-depth
// call bounded by an external stop flag and an optional wall-clock
// budget.
package search

import (
	"sync/atomic"

	"github.com/jcbzqy/kaissa/internal/assert"
	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/eval"
	"github.com/jcbzqy/kaissa/internal/movegen"
)

// Mate is the flat score reported for a checkmated position. There is no
// per-ply mate-distance adjustment, so mates at different depths are not
// ordered against each other.
const Mate eval.Value = -999_999

// AlphaBeta searches b to the given remaining depth (in plies) and
// returns the negamax score from the perspective of the side to move.
// depth == 0 is the base case: return the static evaluation, negated for
// black so the result is always "value for the side to move".
func (s *Search) AlphaBeta(b *chess.Board, depth int, alpha, beta eval.Value) eval.Value {
	atomic.AddUint64(&s.Nodes, 1)

	if depth == 0 {
		return sideToMoveEval(b)
	}

	key := b.Hash()
	originalAlpha := alpha

	if entry, ok := s.TT.Probe(key); ok && entry.Depth >= depth {
		atomic.AddUint64(&s.TTHits, 1)
		switch entry.Kind {
		case Exact:
			return entry.Value
		case LowerBound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case UpperBound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	moves := movegen.LegalMoves(b)
	orderByKillers(moves, s.Killers.Moves(depth))

	if len(moves) == 0 {
		if movegen.IsKingInCheck(b, b.WhiteToMove) {
			return Mate
		}
		return 0
	}

	var bestMove chess.Move
	bestScore := Mate - 1 // guaranteed worse than any real score, including Mate
	for _, m := range moves {
		undo := b.CaptureUndo(m)
		b.MakeMove(m)
		score := -s.AlphaBeta(b, depth-1, -beta, -alpha)
		b.UnmakeMove(m, undo)

		if assert.DEBUG {
			assert.Assert(undo.Hash == b.Hash(), "unmake did not restore the zobrist key")
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			if m.IsQuiet() {
				s.Killers.Add(depth, m)
			}
			break
		}
	}

	var kind NodeKind
	switch {
	case bestScore <= originalAlpha:
		kind = UpperBound
	case bestScore >= beta:
		kind = LowerBound
	default:
		kind = Exact
	}
	s.TT.Store(Entry{Key: key, Depth: depth, Value: bestScore, Kind: kind, Best: bestMove})

	return bestScore
}

// sideToMoveEval evaluates b from white's perspective and negates the
// result for black, so that the negamax recursion always sees "value for
// the side to move".
func sideToMoveEval(b *chess.Board) eval.Value {
	v := eval.Evaluate(b)
	if b.WhiteToMove {
		return v
	}
	return -v
}

// orderByKillers moves any move in killers to the front of moves,
// preserving relative order among the killers themselves and among the
// remaining moves.
func orderByKillers(moves []chess.Move, killers []chess.Move) {
	if len(killers) == 0 {
		return
	}
	ordered := make([]chess.Move, 0, len(moves))
	used := make(map[int]bool, len(killers))
	for _, k := range killers {
		for i, m := range moves {
			if !used[i] && m == k {
				ordered = append(ordered, m)
				used[i] = true
				break
			}
		}
	}
	for i, m := range moves {
		if !used[i] {
			ordered = append(ordered, m)
		}
	}
	copy(moves, ordered)
}
