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

import (
	"strings"

	"github.com/jcbzqy/kaissa/internal/zobrist"
)

// Board is the mutable position: piece placement, side to move, castling
// rights, en-passant target, and the two move counters. A single Board is
// owned by the engine facade and mutated in place by SetPosition and by
// MakeMove/UnmakeMove during search; search itself operates on a Clone so
// that the owner's board is never touched mid-search.
type Board struct {
	Squares        [64]Piece
	WhiteToMove    bool
	CastleWK       bool
	CastleWQ       bool
	CastleBK       bool
	CastleBQ       bool
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
}

// NewBoard returns an empty board (all squares Empty, white to move, no
// castling rights, no en-passant target). Callers almost always want
// fen.StartPos() or fen.Parse() instead.
func NewBoard() *Board {
	return &Board{EnPassant: NoSquare, WhiteToMove: true, FullmoveNumber: 1}
}

// Clone returns a deep copy. Search descends on clones so the facade's
// board is never mutated by a running search.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// KingSquare returns the square of the king belonging to the given side.
// Returns NoSquare if no such king is on the board (only tolerated
// transiently in synthetic test positions per the board invariants).
func (b *Board) KingSquare(white bool) Square {
	king := BlackKing
	if white {
		king = WhiteKing
	}
	for sq := 0; sq < 64; sq++ {
		if b.Squares[sq] == king {
			return Square(sq)
		}
	}
	return NoSquare
}

// Hash computes the Zobrist key for the current position on demand by
// XORing every non-empty piece-square key, every active castling key,
// the en-passant key if the target square is on the board, and the
// side-to-move key. Depends only on the Board fields above and the
// static zobrist tables, so two boards equal on those fields always
// produce identical keys.
func (b *Board) Hash() uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.Squares[sq]; p != Empty {
			h ^= zobrist.Piece[p][sq]
		}
	}
	if b.CastleWK {
		h ^= zobrist.Castling[0]
	}
	if b.CastleWQ {
		h ^= zobrist.Castling[1]
	}
	if b.CastleBK {
		h ^= zobrist.Castling[2]
	}
	if b.CastleBQ {
		h ^= zobrist.Castling[3]
	}
	if b.EnPassant.OnBoard() {
		h ^= zobrist.EnPassant[b.EnPassant]
	}
	if b.WhiteToMove {
		h ^= zobrist.WhiteToMove
	}
	return h
}

// String renders the board as an 8-rank ASCII diagram.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sb.WriteString(b.Squares[MakeSquare(row, col)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	if b.WhiteToMove {
		sb.WriteString("white to move\n")
	} else {
		sb.WriteString("black to move\n")
	}
	return sb.String()
}
