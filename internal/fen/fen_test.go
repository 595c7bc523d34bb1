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

package fen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/fen"
)

func TestParseStartPos(t *testing.T) {
	b, err := fen.Parse(fen.StartFEN)
	require.NoError(t, err)
	assert.True(t, b.WhiteToMove)
	assert.True(t, b.CastleWK && b.CastleWQ && b.CastleBK && b.CastleBQ)
	assert.Equal(t, chess.NoSquare, b.EnPassant)
	assert.Equal(t, chess.WhiteRook, b.Squares[chess.MakeSquare(7, 0)])
	assert.Equal(t, chess.BlackKing, b.Squares[chess.MakeSquare(0, 4)])
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	_, err := fen.Parse("8/8/8/8/8/8/8/8 w KQkq - 0")
	require.Error(t, err)
	var pe *fen.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "fields", pe.Kind)
}

func TestParseRejectsWrongRankCount(t *testing.T) {
	_, err := fen.Parse("8/8/8/8/8/8/8 w KQkq - 0 1")
	require.Error(t, err)
	var pe *fen.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "ranks", pe.Kind)
}

func TestParseRejectsUnknownPieceLetter(t *testing.T) {
	_, err := fen.Parse("8/8/8/8/8/8/8/7x w KQkq - 0 1")
	require.Error(t, err)
	var pe *fen.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "piece", pe.Kind)
}

func TestPlayMovesAppliesCoordinateNotation(t *testing.T) {
	b := fen.StartPos()
	require.NoError(t, fen.PlayMoves(b, []string{"e2e4", "e7e5", "g1f3"}))
	assert.False(t, b.WhiteToMove)
	assert.Equal(t, chess.WhiteKnight, b.Squares[chess.MakeSquare(5, 5)]) // f3
	assert.Equal(t, chess.Empty, b.Squares[chess.MakeSquare(7, 6)])      // g1 vacated
}

func TestPlayMovesRejectsIllegalMove(t *testing.T) {
	b := fen.StartPos()
	err := fen.PlayMoves(b, []string{"e2e5"})
	require.Error(t, err)
	var pe *fen.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "illegal-move", pe.Kind)
}

func TestPlayMovesHandlesPromotion(t *testing.T) {
	b, err := fen.Parse("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	require.NoError(t, fen.PlayMoves(b, []string{"e7e8q"}))
	assert.Equal(t, chess.WhiteQueen, b.Squares[chess.MakeSquare(0, 4)])
}
