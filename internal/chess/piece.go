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

// Package chess holds the mutable board representation, move and undo
// records, and the Zobrist-backed position hash the rest of the engine is
// built on.
package chess

// Piece is a tagged value over the 13 piece variants. Ordinals are stable
// and index directly into the Zobrist and evaluation tables.
type Piece int8

// Piece variants, ordinals 0..12.
const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceCount
)

var pieceLetters = [PieceCount]byte{
	Empty:       '.',
	WhitePawn:   'P',
	WhiteKnight: 'N',
	WhiteBishop: 'B',
	WhiteRook:   'R',
	WhiteQueen:  'Q',
	WhiteKing:   'K',
	BlackPawn:   'p',
	BlackKnight: 'n',
	BlackBishop: 'b',
	BlackRook:   'r',
	BlackQueen:  'q',
	BlackKing:   'k',
}

// String returns the FEN-style letter for the piece, "." for Empty.
func (p Piece) String() string {
	if p < Empty || p >= PieceCount {
		return "?"
	}
	return string(pieceLetters[p])
}

// IsWhite reports whether p is one of the six white piece variants.
func (p Piece) IsWhite() bool {
	return p >= WhitePawn && p <= WhiteKing
}

// IsBlack reports whether p is one of the six black piece variants.
func (p Piece) IsBlack() bool {
	return p >= BlackPawn && p <= BlackKing
}

// IsColor reports whether p belongs to the given side.
func (p Piece) IsColor(white bool) bool {
	if white {
		return p.IsWhite()
	}
	return p.IsBlack()
}

// PieceFromLetter maps a FEN piece letter to its Piece value. ok is false
// for an unrecognized letter.
func PieceFromLetter(c byte) (p Piece, ok bool) {
	for i := Piece(1); i < PieceCount; i++ {
		if pieceLetters[i] == c {
			return i, true
		}
	}
	return Empty, false
}
