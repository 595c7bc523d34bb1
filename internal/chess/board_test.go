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

package chess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcbzqy/kaissa/internal/chess"
)

func TestSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a1", "h1", "a8", "h8", "e4", "d5"} {
		sq, ok := chess.SquareFromString(s)
		require.True(t, ok)
		assert.Equal(t, s, sq.String())
	}
}

func TestHashDependsOnlyOnFields(t *testing.T) {
	b1 := chess.NewBoard()
	b1.Squares[chess.MakeSquare(7, 4)] = chess.WhiteKing
	b1.Squares[chess.MakeSquare(0, 4)] = chess.BlackKing

	b2 := b1.Clone()
	assert.Equal(t, b1.Hash(), b2.Hash())

	b2.WhiteToMove = !b2.WhiteToMove
	assert.NotEqual(t, b1.Hash(), b2.Hash())
}

func TestMakeUnmakeRestoresHash(t *testing.T) {
	b := chess.NewBoard()
	b.Squares[chess.MakeSquare(6, 4)] = chess.WhitePawn // e2
	b.Squares[chess.MakeSquare(7, 4)] = chess.WhiteKing
	b.Squares[chess.MakeSquare(0, 4)] = chess.BlackKing

	from, _ := chess.SquareFromString("e2")
	to, _ := chess.SquareFromString("e4")
	m := chess.Move{From: from, To: to}

	before := *b
	beforeHash := b.Hash()

	undo := b.CaptureUndo(m)
	b.MakeMove(m)
	assert.NotEqual(t, beforeHash, b.Hash())

	b.UnmakeMove(m, undo)
	assert.Equal(t, before, *b)
	assert.Equal(t, beforeHash, b.Hash())
}
