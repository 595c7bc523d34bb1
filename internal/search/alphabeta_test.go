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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/eval"
	"github.com/jcbzqy/kaissa/internal/fen"
	"github.com/jcbzqy/kaissa/internal/search"
)

func TestAlphaBetaDepthZeroEqualsEvaluate(t *testing.T) {
	b := fen.StartPos()
	s := search.NewSearch()
	got := s.AlphaBeta(b, 0, -1_000_000, 1_000_000)
	want := eval.Evaluate(b)
	assert.Equal(t, want, got)
}

func TestAlphaBetaScoreWithinBounds(t *testing.T) {
	b := fen.StartPos()
	s := search.NewSearch()
	got := s.AlphaBeta(b, 2, -1_000_000, 1_000_000)
	assert.True(t, got >= -1_000_000 && got <= 1_000_000)
}

func TestAlphaBetaRecognizesCheckmate(t *testing.T) {
	// One ply after the mating move "h8h1" is played it is white's turn
	// with no legal moves and white's king in check, i.e. checkmate from
	// white's side.
	b, err := fen.Parse("7r/8/8/8/8/4k3/8/4K3 b - - 0 1")
	require.NoError(t, err)
	require.NoError(t, fen.PlayMoves(b, []string{"h8h1"}))

	s := search.NewSearch()
	got := s.AlphaBeta(b, 1, -1_000_000, 1_000_000)
	assert.Equal(t, search.Mate, got)
}

func TestAlphaBetaStalemateIsZero(t *testing.T) {
	b, err := fen.Parse("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	s := search.NewSearch()
	got := s.AlphaBeta(b, 1, -1_000_000, 1_000_000)
	assert.Equal(t, eval.Value(0), got)
}

func move(uciFrom, uciTo string) chess.Move {
	from, _ := chess.SquareFromString(uciFrom)
	to, _ := chess.SquareFromString(uciTo)
	return chess.Move{From: from, To: to}
}

func TestKillersEmptyByDefault(t *testing.T) {
	k := search.NewKillers()
	assert.Empty(t, k.Moves(3))
}

func TestKillerAddShiftsAndSkipsDuplicates(t *testing.T) {
	k := search.NewKillers()
	a := move("e2", "e4")
	b := move("d2", "d4")
	c := move("g1", "f3")

	k.Add(3, a)
	assert.Equal(t, []chess.Move{a}, k.Moves(3))

	k.Add(3, b)
	assert.Equal(t, []chess.Move{b, a}, k.Moves(3))

	// Re-adding an already-stored killer is a no-op, not a shift.
	k.Add(3, b)
	assert.Equal(t, []chess.Move{b, a}, k.Moves(3))

	k.Add(3, c)
	assert.Equal(t, []chess.Move{c, b}, k.Moves(3))
}

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := search.NewTranspositionTable()
	_, ok := tt.Probe(42)
	assert.False(t, ok)

	tt.Store(search.Entry{Key: 42, Depth: 3, Value: 1.5, Kind: search.Exact, Best: move("e2", "e4")})
	e, ok := tt.Probe(42)
	require.True(t, ok)
	assert.Equal(t, eval.Value(1.5), e.Value)
	assert.Equal(t, search.Exact, e.Kind)

	tt.Clear()
	_, ok = tt.Probe(42)
	assert.False(t, ok)
}
