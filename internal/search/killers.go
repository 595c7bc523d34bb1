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

package search

import "github.com/jcbzqy/kaissa/internal/chess"

// MaxDepth bounds the killer-move table; a root search deeper than this
// many plies is not supported (the default depth is 5, and the UCI
// command grammar rarely asks for more than a few dozen).
const MaxDepth = 64

// Killers holds, for each ply 0..MaxDepth-1, up to two quiet moves that
// recently caused a beta cutoff at that ply.
type Killers struct {
	slots [MaxDepth][2]chess.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers {
	return &Killers{}
}

// Moves returns the (up to two) killer moves stored at ply, most recent
// first, skipping empty slots.
func (k *Killers) Moves(ply int) []chess.Move {
	if ply < 0 || ply >= MaxDepth {
		return nil
	}
	s := k.slots[ply]
	out := make([]chess.Move, 0, 2)
	if s[0] != chess.NoMove {
		out = append(out, s[0])
	}
	if s[1] != chess.NoMove {
		out = append(out, s[1])
	}
	return out
}

// Add records m as a killer at ply, unless it is already stored there.
// The existing primary slot shifts down to secondary.
func (k *Killers) Add(ply int, m chess.Move) {
	if ply < 0 || ply >= MaxDepth {
		return
	}
	s := &k.slots[ply]
	if s[0] == m || s[1] == m {
		return
	}
	s[1] = s[0]
	s[0] = m
}

// Clone returns an independent copy, used when a worker inherits a
// cloned Search.
func (k *Killers) Clone() *Killers {
	cp := *k
	return &cp
}
