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

// home-square constants for rook castling-rights bookkeeping.
const (
	a1 Square = 56
	h1 Square = 63
	a8 Square = 0
	h8 Square = 7
)

// MakeMove applies m to b in place, in the order the state transitions
// must happen (destination cleared before the rook relocates for
// castling, the moving or promoted piece placed before castling rights,
// en-passant target, halfmove clock and side to move are updated; the
// castling rights are derived from the move's squares and the moved
// piece, not from the board). MakeMove is total over moves
// produced by the move generator on this exact position; calling it with
// a move from a different position is a programmer error and is not
// detected.
func (b *Board) MakeMove(m Move) {
	movingPiece := b.Squares[m.From]

	b.Squares[m.From] = Empty

	switch {
	case m.IsEnPassant:
		// The captured pawn sits one rank behind the destination square:
		// behind a white pawn's advance is the higher row index (m.To+8),
		// behind a black pawn's advance is the lower one (m.To-8).
		capSq := m.To + 8
		if !b.WhiteToMove {
			capSq = m.To - 8
		}
		b.Squares[capSq] = Empty
	case m.Captured != Empty:
		b.Squares[m.To] = Empty
	}

	if m.IsCastle {
		switch m.To {
		case Square(62): // white king-side, king g1
			b.Squares[Square(61)] = WhiteRook
			b.Squares[h1] = Empty
		case Square(58): // white queen-side, king c1
			b.Squares[Square(59)] = WhiteRook
			b.Squares[a1] = Empty
		case Square(6): // black king-side, king g8
			b.Squares[Square(5)] = BlackRook
			b.Squares[h8] = Empty
		case Square(2): // black queen-side, king c8
			b.Squares[Square(3)] = BlackRook
			b.Squares[a8] = Empty
		}
	}

	if m.Promoted != Empty {
		b.Squares[m.To] = m.Promoted
	} else {
		b.Squares[m.To] = movingPiece
	}

	b.updateCastlingRights(m, movingPiece)

	if movingPiece == WhitePawn && m.From-m.To == 16 {
		b.EnPassant = m.From - 8
	} else if movingPiece == BlackPawn && m.To-m.From == 16 {
		b.EnPassant = m.From + 8
	} else {
		b.EnPassant = NoSquare
	}

	if movingPiece == WhitePawn || movingPiece == BlackPawn || m.Captured != Empty {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	b.WhiteToMove = !b.WhiteToMove
	if b.WhiteToMove {
		b.FullmoveNumber++
	}
}

func (b *Board) updateCastlingRights(m Move, movingPiece Piece) {
	if movingPiece == WhiteKing {
		b.CastleWK, b.CastleWQ = false, false
	}
	if movingPiece == BlackKing {
		b.CastleBK, b.CastleBQ = false, false
	}
	switch m.From {
	case a1:
		b.CastleWQ = false
	case h1:
		b.CastleWK = false
	case a8:
		b.CastleBQ = false
	case h8:
		b.CastleBK = false
	}
	switch m.To {
	case a1:
		b.CastleWQ = false
	case h1:
		b.CastleWK = false
	case a8:
		b.CastleBQ = false
	case h8:
		b.CastleBK = false
	}
}

// UnmakeMove restores b to exactly the state captured in undo. undo must
// be the Undo produced immediately before the matching MakeMove(m) call
// on this board, with no other mutation in between.
func (b *Board) UnmakeMove(m Move, undo Undo) {
	b.WhiteToMove = undo.WhiteToMove
	b.CastleWK = undo.CastleWK
	b.CastleWQ = undo.CastleWQ
	b.CastleBK = undo.CastleBK
	b.CastleBQ = undo.CastleBQ
	b.EnPassant = undo.EnPassant
	b.HalfmoveClock = undo.HalfmoveClock
	b.FullmoveNumber = undo.FullmoveNumber

	b.Squares[m.To] = Empty

	if m.IsCastle {
		switch m.To {
		case Square(62):
			b.Squares[h1] = WhiteRook
			b.Squares[Square(61)] = Empty
		case Square(58):
			b.Squares[a1] = WhiteRook
			b.Squares[Square(59)] = Empty
		case Square(6):
			b.Squares[h8] = BlackRook
			b.Squares[Square(5)] = Empty
		case Square(2):
			b.Squares[a8] = BlackRook
			b.Squares[Square(3)] = Empty
		}
	}

	b.Squares[m.From] = undo.MovedPiece

	switch {
	case m.IsEnPassant:
		capSq := m.To + 8
		if !undo.MovedPiece.IsWhite() {
			capSq = m.To - 8
		}
		b.Squares[capSq] = m.Captured
	case m.Captured != Empty:
		b.Squares[m.To] = m.Captured
	}
}

// CaptureUndo snapshots the fields MakeMove is about to change, for the
// caller to hold on the stack and pass to UnmakeMove afterwards.
func (b *Board) CaptureUndo(m Move) Undo {
	return Undo{
		Move:           m,
		MovedPiece:     b.Squares[m.From],
		WhiteToMove:    b.WhiteToMove,
		CastleWK:       b.CastleWK,
		CastleWQ:       b.CastleWQ,
		CastleBK:       b.CastleBK,
		CastleBQ:       b.CastleBQ,
		EnPassant:      b.EnPassant,
		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
		Hash:           b.Hash(),
	}
}
