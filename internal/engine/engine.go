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

// Package engine provides the facade the UCI adapter drives: one owned
// Board, one Search, and at most one background search worker at a
// time. The worker always operates on clones of the board and search
// state, so the facade's own state can never be corrupted mid-search.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jcbzqy/kaissa/internal/chess"
	"github.com/jcbzqy/kaissa/internal/fen"
	"github.com/jcbzqy/kaissa/internal/logging"
	"github.com/jcbzqy/kaissa/internal/search"
)

var log = logging.GetLog()

// Params carries the position half of a UCI `position` command: either
// the start position or a FEN, plus the coordinate moves to replay on
// top of it.
type Params struct {
	FEN   string // empty means startpos
	Moves []string
}

// GoParams carries the subset of a UCI `go` command's tokens that affect
// the search. The full token grammar is parsed by internal/uci; only
// the depth and movetime values reach this facade.
type GoParams struct {
	Depth    int
	MoveTime time.Duration
}

// Engine owns a Board and a Search and runs at most one search worker at
// a time.
type Engine struct {
	board  *chess.Board
	srch   *search.Search
	out    io.Writer

	running *semaphore.Weighted
	stop    atomic.Bool
	wg      sync.WaitGroup

	mu       sync.Mutex
	bestMove chess.Move
}

// New returns an Engine at the standard starting position, writing
// `bestmove` lines to out (os.Stdout if out is nil).
func New(out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		board:   fen.StartPos(),
		srch:    search.NewSearch(),
		out:     out,
		running: semaphore.NewWeighted(1),
	}
}

// SetPosition installs a new position: startpos or a FEN, followed by
// the given coordinate moves. Must only be called while no search is
// running - the UCI adapter serializes `position` and `go`/`stop` on a
// single controller thread, so this is never called concurrently with
// itself or with Go in practice, but SetPosition itself does not block
// on a running search.
func (e *Engine) SetPosition(p Params) error {
	var b *chess.Board
	if p.FEN == "" {
		b = fen.StartPos()
	} else {
		parsed, err := fen.Parse(p.FEN)
		if err != nil {
			return err
		}
		b = parsed
	}
	if err := fen.PlayMoves(b, p.Moves); err != nil {
		return err
	}
	e.board = b
	return nil
}

// Go stops any search already running, clones the board and search
// state, and spawns a worker that searches the clone and reports the
// result. The worker's inputs are cloned before the goroutine starts,
// so the worker mutating them can never corrupt the facade's own board
// or TT.
func (e *Engine) Go(p GoParams) {
	e.Stop()

	e.stop.Store(false)
	boardClone := e.board.Clone()
	searchClone := e.srch.Clone()
	limits := search.Limits{Depth: p.Depth, MoveTime: p.MoveTime}

	e.wg.Add(1)
	go e.run(boardClone, searchClone, limits)
}

func (e *Engine) run(b *chess.Board, s *search.Search, limits search.Limits) {
	defer e.wg.Done()
	_ = e.running.Acquire(context.Background(), 1)
	defer e.running.Release(1)

	result := s.FindBestMove(b, limits, &e.stop)

	e.mu.Lock()
	e.bestMove = result.Move
	e.mu.Unlock()

	fmt.Fprintf(e.out, "bestmove %s\n", result.Move.UCI())
	log.Debugf("search finished, bestmove %s", result.Move.UCI())
}

// Stop requests cancellation of any running search and waits for the
// worker to finish emitting its result, so that once Stop returns the
// caller may freely mutate the Board again. A stopped search returns the
// best move found so far at the root, not mid-subtree.
func (e *Engine) Stop() {
	e.stop.Store(true)
	e.wg.Wait()
}

// IsSearching reports whether a worker is currently running.
func (e *Engine) IsSearching() bool {
	if !e.running.TryAcquire(1) {
		return true
	}
	e.running.Release(1)
	return false
}

// GetBestMove reads the shared best-move slot; intended for in-process
// tests rather than the UCI protocol itself, which instead reads the
// "bestmove" line written to out.
func (e *Engine) GetBestMove() chess.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bestMove
}

// Board exposes the owned board for read-only inspection (e.g. the
// controller's textual board rendering).
func (e *Engine) Board() *chess.Board {
	return e.board
}

// ClearTT empties the transposition table. Exposed for a controller
// that wants `ucinewgame` to flush cached search results; the UCI
// adapter does not call it automatically.
func (e *Engine) ClearTT() {
	e.srch.TT.Clear()
}
