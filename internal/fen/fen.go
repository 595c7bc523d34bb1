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

// Package fen parses a textual position descriptor into a chess.Board
// and replays coordinate-notation moves against it. Each move in the
// list is matched against the unique legal move sharing its
// (from, to, promotion) triple, which is always unique because
// distinct promotion pieces are distinct moves.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/movegen"
)

// StartFEN is the canonical initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseError reports a malformed FEN descriptor, distinguishing the kind
// of problem so a controller adapter can surface a useful message.
type ParseError struct {
	Kind   string // "fields", "ranks", "piece", "side", "en-passant", "int", "move", "illegal-move"
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: %s: %s", e.Kind, e.Detail)
}

// StartPos returns a fresh Board set up in the initial arrangement.
func StartPos() *chess.Board {
	b, err := Parse(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; a parse failure here is a
		// programmer error in this package, not a runtime condition.
		panic(err)
	}
	return b
}

// Parse decodes a 6-field FEN string into a Board.
func Parse(s string) (*chess.Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, &ParseError{"fields", fmt.Sprintf("want 6 space-separated fields, got %d", len(fields))}
	}

	b := chess.NewBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &ParseError{"ranks", fmt.Sprintf("want 8 ranks, got %d", len(ranks))}
	}
	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p, ok := chess.PieceFromLetter(byte(c))
			if !ok {
				return nil, &ParseError{"piece", fmt.Sprintf("unknown piece character %q", c)}
			}
			if col >= 8 {
				return nil, &ParseError{"ranks", fmt.Sprintf("rank %d overflows 8 files", row+1)}
			}
			b.Squares[chess.MakeSquare(row, col)] = p
			col++
		}
	}

	switch fields[1] {
	case "w":
		b.WhiteToMove = true
	case "b":
		b.WhiteToMove = false
	default:
		return nil, &ParseError{"side", fmt.Sprintf("unknown side to move %q", fields[1])}
	}

	castling := fields[2]
	b.CastleWK = strings.Contains(castling, "K")
	b.CastleWQ = strings.Contains(castling, "Q")
	b.CastleBK = strings.Contains(castling, "k")
	b.CastleBQ = strings.Contains(castling, "q")

	if fields[3] == "-" {
		b.EnPassant = chess.NoSquare
	} else {
		sq, ok := chess.SquareFromString(fields[3])
		if !ok {
			return nil, &ParseError{"en-passant", fmt.Sprintf("bad square %q", fields[3])}
		}
		b.EnPassant = sq
	}

	hm, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &ParseError{"int", fmt.Sprintf("bad halfmove clock %q", fields[4])}
	}
	b.HalfmoveClock = hm

	fm, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, &ParseError{"int", fmt.Sprintf("bad fullmove number %q", fields[5])}
	}
	b.FullmoveNumber = fm

	return b, nil
}

// PlayMoves replays coordinate-notation moves (e.g. "e2e4", "e7e8q")
// against b in place, generating legal moves from the current position
// at each step and selecting the unique move matching the
// from/to/promotion tuple. Returns an error naming the first illegal or
// malformed move and leaves the board in an unspecified state - errors
// abort the load.
func PlayMoves(b *chess.Board, moves []string) error {
	for _, mv := range moves {
		m, err := matchMove(b, mv)
		if err != nil {
			return err
		}
		b.MakeMove(m)
	}
	return nil
}

func matchMove(b *chess.Board, mv string) (chess.Move, error) {
	if len(mv) < 4 || len(mv) > 5 {
		return chess.Move{}, &ParseError{"move", fmt.Sprintf("malformed move %q", mv)}
	}
	from, ok := chess.SquareFromString(mv[0:2])
	if !ok {
		return chess.Move{}, &ParseError{"move", fmt.Sprintf("bad from-square in %q", mv)}
	}
	to, ok := chess.SquareFromString(mv[2:4])
	if !ok {
		return chess.Move{}, &ParseError{"move", fmt.Sprintf("bad to-square in %q", mv)}
	}
	promoted := chess.Empty
	if len(mv) == 5 {
		white := b.WhiteToMove
		switch mv[4] {
		case 'q':
			promoted = pick(white, chess.WhiteQueen, chess.BlackQueen)
		case 'r':
			promoted = pick(white, chess.WhiteRook, chess.BlackRook)
		case 'b':
			promoted = pick(white, chess.WhiteBishop, chess.BlackBishop)
		case 'n':
			promoted = pick(white, chess.WhiteKnight, chess.BlackKnight)
		default:
			return chess.Move{}, &ParseError{"move", fmt.Sprintf("bad promotion piece in %q", mv)}
		}
	}

	for _, legal := range movegen.LegalMoves(b) {
		if legal.From == from && legal.To == to && legal.Promoted == promoted {
			return legal, nil
		}
	}
	return chess.Move{}, &ParseError{"illegal-move", fmt.Sprintf("%q is not legal in the current position", mv)}
}

func pick(white bool, w, blk chess.Piece) chess.Piece {
	if white {
		return w
	}
	return blk
}
