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

package movegen

import "github.com/jcbzqy/kaissa/internal/chess"

var promotionPieces = map[bool][4]chess.Piece{
	true:  {chess.WhiteQueen, chess.WhiteRook, chess.WhiteBishop, chess.WhiteKnight},
	false: {chess.BlackQueen, chess.BlackRook, chess.BlackBishop, chess.BlackKnight},
}

// PseudoLegalMoves returns every move obeying piece movement rules for
// the side to move, without checking whether it leaves that side's king
// in check.
func PseudoLegalMoves(b *chess.Board) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	white := b.WhiteToMove
	for sq := 0; sq < 64; sq++ {
		p := b.Squares[sq]
		if p == chess.Empty || !p.IsColor(white) {
			continue
		}
		from := chess.Square(sq)
		switch {
		case p == chess.WhitePawn || p == chess.BlackPawn:
			genPawnMoves(b, from, white, &moves)
		case p == chess.WhiteKnight || p == chess.BlackKnight:
			genOffsetMoves(b, from, knightOffsets[:], true, &moves)
		case p == chess.WhiteBishop || p == chess.BlackBishop:
			genSliderMoves(b, from, bishopDirs[:], &moves)
		case p == chess.WhiteRook || p == chess.BlackRook:
			genSliderMoves(b, from, rookDirs[:], &moves)
		case p == chess.WhiteQueen || p == chess.BlackQueen:
			genSliderMoves(b, from, bishopDirs[:], &moves)
			genSliderMoves(b, from, rookDirs[:], &moves)
		case p == chess.WhiteKing || p == chess.BlackKing:
			genOffsetMoves(b, from, kingOffsets[:], false, &moves)
			genCastleMoves(b, from, white, &moves)
		}
	}
	return moves
}

func genOffsetMoves(b *chess.Board, from chess.Square, offsets []int, knight bool, moves *[]chess.Move) {
	white := b.Squares[from].IsWhite()
	for _, off := range offsets {
		to := chess.Square(int(from) + off)
		if !to.OnBoard() {
			continue
		}
		dc := to.Col() - from.Col()
		dr := to.Row() - from.Row()
		if knight {
			if abs(dc)+abs(dr) != 3 || abs(dc) > 2 || abs(dr) > 2 {
				continue
			}
		} else if abs(dc) > 1 {
			continue
		}
		target := b.Squares[to]
		if target != chess.Empty && target.IsColor(white) {
			continue
		}
		*moves = append(*moves, chess.Move{From: from, To: to, Captured: target})
	}
}

func genSliderMoves(b *chess.Board, from chess.Square, dirs []int, moves *[]chess.Move) {
	white := b.Squares[from].IsWhite()
	for _, d := range dirs {
		cur := from
		for {
			next := chess.Square(int(cur) + d)
			if !next.OnBoard() || !sameRay(cur, next, d) {
				break
			}
			cur = next
			target := b.Squares[cur]
			if target == chess.Empty {
				*moves = append(*moves, chess.Move{From: from, To: cur})
				continue
			}
			if !target.IsColor(white) {
				*moves = append(*moves, chess.Move{From: from, To: cur, Captured: target})
			}
			break
		}
	}
}

func genPawnMoves(b *chess.Board, from chess.Square, white bool, moves *[]chess.Move) {
	forward := 8
	startRow := 1
	promoRow := 7
	if white {
		forward = -8
		startRow = 6
		promoRow = 0
	}

	addPawnMove := func(to chess.Square, captured chess.Piece, enPassant bool) {
		if to.Row() == promoRow {
			for _, promo := range promotionPieces[white] {
				*moves = append(*moves, chess.Move{From: from, To: to, Promoted: promo, Captured: captured, IsEnPassant: enPassant})
			}
			return
		}
		*moves = append(*moves, chess.Move{From: from, To: to, Captured: captured, IsEnPassant: enPassant})
	}

	// single push
	one := chess.Square(int(from) + forward)
	if one.OnBoard() && b.Squares[one] == chess.Empty {
		addPawnMove(one, chess.Empty, false)
		// double push
		if from.Row() == startRow {
			two := chess.Square(int(from) + 2*forward)
			if b.Squares[two] == chess.Empty {
				addPawnMove(two, chess.Empty, false)
			}
		}
	}

	// captures, including en passant
	for _, d := range [2]int{forward - 1, forward + 1} {
		to := chess.Square(int(from) + d)
		if !to.OnBoard() || abs(to.Col()-from.Col()) != 1 {
			continue
		}
		if to == b.EnPassant {
			addPawnMove(to, oppPawn(white), true)
			continue
		}
		target := b.Squares[to]
		if target != chess.Empty && !target.IsColor(white) {
			addPawnMove(to, target, false)
		}
	}
}

func oppPawn(white bool) chess.Piece {
	if white {
		return chess.BlackPawn
	}
	return chess.WhitePawn
}

func genCastleMoves(b *chess.Board, from chess.Square, white bool, moves *[]chess.Move) {
	empty := func(sq chess.Square) bool { return b.Squares[sq] == chess.Empty }
	safe := func(sq chess.Square) bool { return !IsSquareAttacked(b, sq, !white) }

	if white {
		if b.CastleWK && empty(61) && empty(62) && safe(60) && safe(61) && safe(62) {
			*moves = append(*moves, chess.Move{From: from, To: 62, IsCastle: true})
		}
		if b.CastleWQ && empty(59) && empty(58) && empty(57) && safe(60) && safe(59) && safe(58) {
			*moves = append(*moves, chess.Move{From: from, To: 58, IsCastle: true})
		}
		return
	}
	if b.CastleBK && empty(5) && empty(6) && safe(4) && safe(5) && safe(6) {
		*moves = append(*moves, chess.Move{From: from, To: 6, IsCastle: true})
	}
	if b.CastleBQ && empty(3) && empty(2) && empty(1) && safe(4) && safe(3) && safe(2) {
		*moves = append(*moves, chess.Move{From: from, To: 2, IsCastle: true})
	}
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the
// mover's king in check: each candidate is made on a cloned board, the
// mover's king safety is tested, and the candidate is kept iff the king
// is not in check.
func LegalMoves(b *chess.Board) []chess.Move {
	pseudo := PseudoLegalMoves(b)
	legal := make([]chess.Move, 0, len(pseudo))
	white := b.WhiteToMove
	for _, m := range pseudo {
		clone := b.Clone()
		clone.MakeMove(m)
		if !IsKingInCheck(clone, white) {
			legal = append(legal, m)
		}
	}
	return legal
}
