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

package uci_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcbzqy/kaissa/internal/uci"
)

func newHandler(out *bytes.Buffer) *uci.Handler {
	return uci.New(strings.NewReader(""), out, "")
}

func TestUciCommandIdentifiesEngine(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("uci")
	s := out.String()
	assert.Contains(t, s, "id name kaissa")
	assert.Contains(t, s, "id author")
	assert.Contains(t, s, "uciok")
}

func TestIsReady(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("isready")
	assert.Contains(t, out.String(), "readyok")
}

func TestQuitReturnsTrue(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	assert.False(t, h.Handle("isready"))
	assert.True(t, h.Handle("quit"))
}

func TestUnknownCommandIsReportedNotFatal(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	assert.False(t, h.Handle("xyzzy"))
	assert.Contains(t, out.String(), "unknown command: xyzzy")
}

// lockedBuffer is a bytes.Buffer that may be read while the search
// worker is still writing to it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

func TestPositionGoStopEmitsBestmove(t *testing.T) {
	var out lockedBuffer
	h := uci.New(strings.NewReader(""), &out, "")

	h.Handle("position fen 4k3/8/4K3/8/8/8/8/7R w - - 0 1")
	h.Handle("go depth 2")
	// "stop" cancels the search as well as joining it, so wait for the
	// worker's own bestmove line before sending it.
	assert.Eventually(t, func() bool { return strings.Contains(out.String(), "bestmove ") }, 10*time.Second, time.Millisecond)
	h.Handle("stop") // joins the worker before returning

	assert.Contains(t, out.String(), "bestmove h1h8")
}

func TestPositionStartposMovesThenGo(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("position startpos moves e2e4 e7e5")
	h.Handle("go depth 1")
	h.Handle("stop")

	assert.Contains(t, out.String(), "bestmove ")
}

func TestMalformedPositionIsReported(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("position fen garbage")
	assert.Contains(t, out.String(), "info string malformed fen")
}

func TestGoToleratesUnusedTokens(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("go wtime 300000 btime 300000 winc 0 binc 0 movestogo 40 depth 1")
	h.Handle("stop")

	assert.Contains(t, out.String(), "bestmove ")
}

func TestPerftCommand(t *testing.T) {
	var out bytes.Buffer
	h := newHandler(&out)

	h.Handle("perft 2")
	assert.Contains(t, out.String(), "perft depth 2 nodes 400")
}
