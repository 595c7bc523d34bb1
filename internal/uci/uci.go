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

// Package uci is the line-oriented controller protocol adapter: a
// scanner/writer pair with one handler method per command token. The
// full `go` token grammar is parsed even though only `depth` and
// `movetime` reach the search core.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jcbzqy/kaissa/internal/config"
	"github.com/jcbzqy/kaissa/internal/engine"
	"github.com/jcbzqy/kaissa/internal/fen"
	"github.com/jcbzqy/kaissa/internal/logging"
	"github.com/jcbzqy/kaissa/internal/movegen"
)

const (
	name   = "kaissa"
	author = "kaissa contributors"
)

// Handler reads UCI commands from in and writes responses to out. Create
// one with New(); Loop() drives it until "quit".
type Handler struct {
	in   *bufio.Scanner
	out  io.Writer
	eng  *engine.Engine
	ulog interface {
		Infof(string, ...interface{})
	}
}

// New returns a Handler reading from r and writing to w, with a fresh
// Engine underneath. logPath additionally tees the UCI protocol log to a
// file; pass "" to log to stdout only.
func New(r io.Reader, w io.Writer, logPath string) *Handler {
	ulog := logging.GetUciLog(logPath)
	return &Handler{
		in:   bufio.NewScanner(r),
		out:  w,
		eng:  engine.New(w),
		ulog: ulog,
	}
}

// Loop reads commands until EOF or "quit".
func (h *Handler) Loop() {
	for h.in.Scan() {
		if h.Handle(h.in.Text()) {
			return
		}
	}
}

// Handle processes a single command line; returns true if it was "quit".
func (h *Handler) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.ulog.Infof("<< %s", line)
	tokens := strings.Fields(line)

	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.send("id name " + name)
		h.send("id author " + author)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		// The transposition table is deliberately not cleared here.
		h.send("info string ucinewgame acknowledged")
	case "debug", "register", "ponderhit":
		h.send(fmt.Sprintf("info string %s acknowledged", tokens[0]))
	case "setoption":
		h.send("info string setoption acknowledged")
	case "position":
		h.position(tokens[1:])
	case "go":
		h.goCmd(tokens[1:])
	case "stop":
		h.eng.Stop()
	case "perft":
		h.perft(tokens[1:])
	default:
		h.send(fmt.Sprintf("info string unknown command: %s", tokens[0]))
	}
	return false
}

func (h *Handler) send(s string) {
	fmt.Fprintln(h.out, s)
	h.ulog.Infof(">> %s", s)
}

func (h *Handler) position(tokens []string) {
	if len(tokens) == 0 {
		return
	}
	var p engine.Params
	i := 0
	switch tokens[0] {
	case "startpos":
		i = 1
	case "fen":
		if len(tokens) < 7 {
			h.send("info string malformed fen in position command")
			return
		}
		p.FEN = strings.Join(tokens[1:7], " ")
		i = 7
	default:
		h.send("info string malformed position command")
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		p.Moves = tokens[i+1:]
	}
	if err := h.eng.SetPosition(p); err != nil {
		h.send("info string " + err.Error())
	}
}

func (h *Handler) goCmd(tokens []string) {
	gp := engine.GoParams{Depth: config.Settings.Search.Depth}
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				if n, err := strconv.Atoi(tokens[i+1]); err == nil {
					gp.Depth = n
				}
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				if ms, err := strconv.Atoi(tokens[i+1]); err == nil {
					gp.MoveTime = time.Duration(ms) * time.Millisecond
				}
				i++
			}
		case "wtime", "btime", "winc", "binc", "movestogo", "nodes", "mate":
			// Parsed for wire-format completeness; the core search
			// only consults depth and movetime.
			i++
		case "infinite":
			// No dedicated infinite mode: an absent depth/movetime pair
			// already means "use the default depth", which is this
			// engine's closest analogue.
		}
	}
	h.eng.Go(gp)
}

func (h *Handler) perft(tokens []string) {
	if len(tokens) == 0 {
		h.send("info string perft requires a depth argument")
		return
	}
	depth, err := strconv.Atoi(tokens[0])
	if err != nil {
		h.send("info string bad perft depth: " + tokens[0])
		return
	}
	b := h.eng.Board()
	if len(tokens) > 1 && tokens[1] == "fen" {
		parsed, err := fen.Parse(strings.Join(tokens[2:], " "))
		if err != nil {
			h.send("info string " + err.Error())
			return
		}
		b = parsed
	}
	nodes := movegen.Perft(b, depth)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d", depth, nodes))
}
