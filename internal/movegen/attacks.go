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

// Package movegen produces legal moves for a chess.Board and answers
// square-attack queries used both by legality filtering and by search
// for check detection. The generator is stateless: pseudo-legal and
// legal entry points plus attack queries, all working directly over the
// linear 0..63 array board.
package movegen

import "github.com/jcbzqy/kaissa/internal/chess"

var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
var bishopDirs = [4]int{-9, -7, 7, 9}
var rookDirs = [4]int{-8, -1, 1, 8}

// colDelta returns the column displacement of stepping by off from sq,
// used to reject knight/king offsets that wrap around a rank edge.
func colDelta(sq chess.Square, off int) int {
	to := chess.Square(int(sq) + off)
	if !to.OnBoard() {
		return 8 // out of range, never a legal displacement
	}
	return to.Col() - sq.Col()
}

// IsSquareAttacked reports whether square sq is attacked by the side
// byWhite. Checked in the order: pawns, knights, king, diagonal sliders,
// straight sliders.
func IsSquareAttacked(b *chess.Board, sq chess.Square, byWhite bool) bool {
	// Pawn attacks: a white pawn at sq+9/sq+7 attacks sq (its forward is
	// -8); a black pawn at sq-9/sq-7 attacks sq (its forward is +8).
	if byWhite {
		for _, d := range [2]int{9, 7} {
			if cd := colDelta(sq, d); cd == -1 || cd == 1 {
				from := chess.Square(int(sq) + d)
				if from.OnBoard() && b.Squares[from] == chess.WhitePawn {
					return true
				}
			}
		}
	} else {
		for _, d := range [2]int{9, 7} {
			if cd := colDelta(sq, -d); cd == -1 || cd == 1 {
				from := chess.Square(int(sq) - d)
				if from.OnBoard() && b.Squares[from] == chess.BlackPawn {
					return true
				}
			}
		}
	}

	knight := chess.WhiteKnight
	king := chess.WhiteKing
	bishopLike := []chess.Piece{chess.WhiteBishop, chess.WhiteQueen}
	rookLike := []chess.Piece{chess.WhiteRook, chess.WhiteQueen}
	if !byWhite {
		knight, king = chess.BlackKnight, chess.BlackKing
		bishopLike = []chess.Piece{chess.BlackBishop, chess.BlackQueen}
		rookLike = []chess.Piece{chess.BlackRook, chess.BlackQueen}
	}

	for _, off := range knightOffsets {
		to := chess.Square(int(sq) + off)
		if !to.OnBoard() {
			continue
		}
		dc := to.Col() - sq.Col()
		dr := to.Row() - sq.Row()
		if abs(dc)+abs(dr) == 3 && abs(dc) <= 2 && abs(dr) <= 2 {
			if b.Squares[to] == knight {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		to := chess.Square(int(sq) + off)
		if !to.OnBoard() || abs(to.Col()-sq.Col()) > 1 {
			continue
		}
		if b.Squares[to] == king {
			return true
		}
	}

	if raySliderAttacks(b, sq, bishopDirs, bishopLike) {
		return true
	}
	if raySliderAttacks(b, sq, rookDirs, rookLike) {
		return true
	}
	return false
}

func raySliderAttacks(b *chess.Board, sq chess.Square, dirs [4]int, attackers []chess.Piece) bool {
	for _, d := range dirs {
		cur := sq
		for {
			next := chess.Square(int(cur) + d)
			if !next.OnBoard() || !sameRay(cur, next, d) {
				break
			}
			cur = next
			p := b.Squares[cur]
			if p == chess.Empty {
				continue
			}
			for _, a := range attackers {
				if p == a {
					return true
				}
			}
			break
		}
	}
	return false
}

// sameRay reports whether stepping from 'from' to 'to' by delta d stayed
// on the geometric ray it was meant to (rejects wrap-around at the board
// edges for ±1/±7/±8/±9 steps).
func sameRay(from, to chess.Square, d int) bool {
	switch d {
	case 1, -1:
		return to.Row() == from.Row()
	case 8, -8:
		return to.Col() == from.Col()
	case 7, -7, 9, -9:
		return abs(to.Row()-from.Row()) == 1 && abs(to.Col()-from.Col()) == 1
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsKingInCheck reports whether the king of the given side currently
// stands on an attacked square.
func IsKingInCheck(b *chess.Board, white bool) bool {
	k := b.KingSquare(white)
	if !k.OnBoard() {
		return false
	}
	return IsSquareAttacked(b, k, !white)
}
