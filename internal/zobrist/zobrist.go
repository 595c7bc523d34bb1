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

// Package zobrist holds the process-wide Zobrist hashing tables used to
// compute a Board's position key. Tables are generated once at package
// init time from a seeded source and are never mutated afterwards, so
// they are safe to read concurrently from the controller thread and any
// number of search workers.
package zobrist

import "math/rand"

// seed is fixed so that two processes started from the same position
// always agree on its hash - convenient for TT-sharing test fixtures,
// though nothing in this engine persists a TT across processes today.
const seed = 0x5A6F627269737421

// Piece holds one 64-bit key per (piece ordinal, square) pair. Index 0
// (Piece Empty) is allocated but never consulted.
var Piece [13][64]uint64

// Castling holds one key per castling-right bit, in the order
// {white kingside, white queenside, black kingside, black queenside}.
var Castling [4]uint64

// EnPassant holds one key per possible en-passant target square.
var EnPassant [64]uint64

// WhiteToMove is XORed into the key whenever it is white's turn.
var WhiteToMove uint64

func init() {
	r := rand.New(rand.NewSource(seed))
	for p := 0; p < 13; p++ {
		for sq := 0; sq < 64; sq++ {
			Piece[p][sq] = r.Uint64()
		}
	}
	for i := range Castling {
		Castling[i] = r.Uint64()
	}
	for sq := range EnPassant {
		EnPassant[sq] = r.Uint64()
	}
	WhiteToMove = r.Uint64()
}
