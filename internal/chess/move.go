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

// Move is a value record describing a single move. Two moves are equal
// iff all six fields match.
type Move struct {
	From        Square
	To          Square
	Promoted    Piece // Empty means no promotion
	Captured    Piece // piece present on To before the move (opposing pawn for en passant)
	IsEnPassant bool
	IsCastle    bool
}

// NoMove is the zero-value Move used to report "no legal move".
var NoMove = Move{}

// IsCapture reports whether the move removes an enemy piece from the
// board, either by landing on it or via en passant.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsQuiet reports whether the move is neither a capture nor a promotion -
// the class of move eligible to be stored as a killer.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && m.Promoted == Empty
}

var promoLetters = map[Piece]byte{
	WhiteQueen: 'q', WhiteRook: 'r', WhiteBishop: 'b', WhiteKnight: 'n',
	BlackQueen: 'q', BlackRook: 'r', BlackBishop: 'b', BlackKnight: 'n',
}

// UCI renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
// The zero Move renders as "0000", the protocol's "no move" token.
func (m Move) UCI() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promoted != Empty {
		s += string(promoLetters[m.Promoted])
	}
	return s
}

// Undo is the snapshot captured before MakeMove, sufficient to reverse
// it exactly. Owned by the caller on the stack for the lifetime of the
// nested search call.
type Undo struct {
	Move           Move
	MovedPiece     Piece
	WhiteToMove    bool
	CastleWK       bool
	CastleWQ       bool
	CastleBK       bool
	CastleBQ       bool
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
}
