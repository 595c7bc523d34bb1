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

package chess

// Square is a linear board index 0..63. Index 0 is the top-left square
// (rank 8, file a); index 63 is bottom-right (rank 1, file h).
type Square int

// NoSquare is the sentinel used for "no en-passant target".
const NoSquare Square = -1

// Row returns 0..7, 0 being the top rank (rank 8).
func (s Square) Row() int { return int(s) / 8 }

// Col returns 0..7, 0 being file a.
func (s Square) Col() int { return int(s) % 8 }

// OnBoard reports whether s is within 0..63.
func (s Square) OnBoard() bool { return s >= 0 && s < 64 }

// Rank returns the algebraic rank, 1..8.
func (s Square) Rank() int { return 8 - s.Row() }

// File returns the algebraic file, 0..7 (a..h).
func (s Square) File() int { return s.Col() }

var fileLetters = "abcdefgh"

// String renders algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string(fileLetters[s.File()]) + string(rune('0'+s.Rank()))
}

// SquareFromString parses algebraic notation, e.g. "e4", into a Square.
func SquareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	row := 7 - rank
	return Square(row*8 + file), true
}

// MakeSquare builds a Square from 0-based row/col.
func MakeSquare(row, col int) Square { return Square(row*8 + col) }
