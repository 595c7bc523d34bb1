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

package search_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcbzqy/kaissa/internal/fen"
	"github.com/jcbzqy/kaissa/internal/search"
)

func findBestMove(t *testing.T, posFEN string, depth int) string {
	t.Helper()
	b, err := fen.Parse(posFEN)
	require.NoError(t, err)
	s := search.NewSearch()
	var stop atomic.Bool
	result := s.FindBestMove(b, search.Limits{Depth: depth}, &stop)
	return result.Move.UCI()
}

// End-to-end scenarios: each position has a single clearly best move
// the search must find within the given depth.

func TestFindBestMoveWhiteMateInOne(t *testing.T) {
	assert.Equal(t, "h1h8", findBestMove(t, "4k3/8/4K3/8/8/8/8/7R w - - 0 1", 2))
}

func TestFindBestMoveBlackMateInOne(t *testing.T) {
	assert.Equal(t, "h8h1", findBestMove(t, "7r/8/8/8/8/4k3/8/4K3 b - - 0 1", 2))
}

func TestFindBestMoveHangingQueen(t *testing.T) {
	assert.Equal(t, "f3g5", findBestMove(t, "rnb1kbnr/pppp1ppp/8/4p1q1/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 1", 2))
}

func TestFindBestMoveKnightFork(t *testing.T) {
	assert.Equal(t, "e3f5", findBestMove(t, "8/4k3/7q/8/8/4N3/4K3/4R3 w - - 0 1", 4))
}

func TestFindBestMoveOpeningHangingBishop(t *testing.T) {
	assert.Equal(t, "c6b5", findBestMove(t, "rnb1kbnr/ppqppppp/2p5/1B6/3PP3/2P5/PP3PPP/RNBQK1NR b KQkq - 0 1", 3))
}

func TestFindBestMoveQueenSacSmotheredMate(t *testing.T) {
	assert.Equal(t, "f7g8", findBestMove(t, "r6k/1p1b1Qbp/1n2B1pN/p7/Pq6/8/1P4PP/R6K w - - 1 27", 4))
}

func TestFindBestMoveReturnsLegalMove(t *testing.T) {
	b := fen.StartPos()
	s := search.NewSearch()
	var stop atomic.Bool
	result := s.FindBestMove(b, search.Limits{Depth: 1}, &stop)
	assert.NotEqual(t, "0000", result.Move.UCI())
}

func TestFindBestMoveNoLegalMovesReturnsNoMove(t *testing.T) {
	// White king boxed in and stalemated by a lone black king and queen
	// giving no legal response is awkward to construct minimally; instead
	// verify the documented contract directly against a position with a
	// forced stalemate.
	b, err := fen.Parse("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	s := search.NewSearch()
	var stop atomic.Bool
	result := s.FindBestMove(b, search.Limits{Depth: 1}, &stop)
	assert.Equal(t, "0000", result.Move.UCI())
}

func TestStopFlagHaltsRootIteration(t *testing.T) {
	b := fen.StartPos()
	s := search.NewSearch()
	var stop atomic.Bool
	stop.Store(true)
	result := s.FindBestMove(b, search.Limits{Depth: 5}, &stop)
	// With the flag already set, the root loop stops before descending
	// into any move, so the first generated move is returned unexamined.
	assert.NotEqual(t, "0000", result.Move.UCI())
}
