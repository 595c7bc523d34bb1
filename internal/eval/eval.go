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

// Package eval holds the engine's static evaluation function: a
// stateless Evaluate over a position, deliberately limited to material
// scoring. No piece-square tables, mobility, or pawn structure terms.
package eval

import "github.com/jcbzqy/kaissa/internal/chess"

// Value is a centi-pawn-free material score, white's perspective.
type Value float64

// pieceValue indexes directly by chess.Piece ordinal.
var pieceValue = [chess.PieceCount]Value{
	chess.WhitePawn:   1.0,
	chess.WhiteKnight: 3.2,
	chess.WhiteBishop: 3.3,
	chess.WhiteRook:   5.0,
	chess.WhiteQueen:  9.0,
	chess.WhiteKing:   1000.0,
	chess.BlackPawn:   1.0,
	chess.BlackKnight: 3.2,
	chess.BlackBishop: 3.3,
	chess.BlackRook:   5.0,
	chess.BlackQueen:  9.0,
	chess.BlackKing:   1000.0,
}

// Evaluate returns the material balance from white's perspective: the
// sum of white piece values minus the sum of black piece values. Search
// negates this when it is black to move so that the negamax recursion
// always sees "value for the side to move".
func Evaluate(b *chess.Board) Value {
	// Count white-minus-black per piece kind first, so that equal material
	// cancels exactly instead of leaving float rounding residue.
	var surplus [chess.PieceCount]int
	for sq := 0; sq < 64; sq++ {
		p := b.Squares[sq]
		switch {
		case p.IsWhite():
			surplus[p]++
		case p.IsBlack():
			surplus[p-chess.BlackPawn+chess.WhitePawn]--
		}
	}
	var score Value
	for p := chess.WhitePawn; p <= chess.WhiteKing; p++ {
		score += Value(surplus[p]) * pieceValue[p]
	}
	return score
}
