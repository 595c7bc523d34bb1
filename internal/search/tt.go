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

import (
	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/eval"
)

// NodeKind classifies how an Entry's Value bounds the true score.
type NodeKind int8

const (
	// Exact means Value is the true minimax value.
	Exact NodeKind = iota
	// LowerBound means the true value is at least Value (a beta cutoff
	// occurred; the search never proved an upper bound).
	LowerBound
	// UpperBound means the true value is at most Value (every move
	// failed low against alpha).
	UpperBound
)

// Entry is a transposition table record.
type Entry struct {
	Key   uint64
	Depth int
	Value eval.Value
	Kind  NodeKind
	Best  chess.Move
}

// TranspositionTable maps Zobrist keys to search results. Unbounded -
// it grows for the life of the search and is cleared only on request;
// collisions are ignored, the most recent store always wins.
// Owned by a single Search instance and never shared across goroutines,
// so no internal locking is required - each `go` call clones a fresh
// Search (and with it a fresh TT) for its worker.
type TranspositionTable struct {
	entries map[uint64]Entry
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]Entry)}
}

// Probe returns the entry stored for key, if any.
func (t *TranspositionTable) Probe(key uint64) (Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Store records e, overwriting any existing entry for e.Key.
func (t *TranspositionTable) Store(e Entry) {
	t.entries[e.Key] = e
}

// Clear empties the table. Not called automatically anywhere in this
// engine; in particular `ucinewgame` does not flush it.
func (t *TranspositionTable) Clear() {
	t.entries = make(map[uint64]Entry)
}

// Len reports the number of stored entries.
func (t *TranspositionTable) Len() int {
	return len(t.entries)
}

// Clone returns a table holding the same entries, used when a worker
// inherits an in-progress table from a cloned Search. A shallow map copy
// is sufficient since Entry is a value type.
func (t *TranspositionTable) Clone() *TranspositionTable {
	cp := make(map[uint64]Entry, len(t.entries))
	for k, v := range t.entries {
		cp[k] = v
	}
	return &TranspositionTable{entries: cp}
}
