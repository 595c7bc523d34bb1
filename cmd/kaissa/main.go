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

// Command kaissa is the top-level glue: command-line flags, config and
// logging bootstrap, and the UCI loop on stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jcbzqy/kaissa/internal/config"
	"github.com/jcbzqy/kaissa/internal/fen"
	"github.com/jcbzqy/kaissa/internal/logging"
	"github.com/jcbzqy/kaissa/internal/movegen"
	"github.com/jcbzqy/kaissa/internal/uci"
)

const version = "1.0.0"

// out prints perft node counts with thousands separators.
var out = message.NewPrinter(language.German)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level (critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level (critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path to write the UCI protocol log to (stdout only if empty)")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on the start position (or -fen) and exit")
	perftFen := flag.String("fen", fen.StartFEN, "fen to use with -perft")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof while running")
	flag.Parse()

	if *versionFlag {
		fmt.Println("kaissa " + version)
		return
	}

	config.Setup(*configFile)
	if *logLvl != "" {
		if lvl, ok := config.LogLevels[*logLvl]; ok {
			config.LogLevel = lvl
		}
	}
	if *searchLogLvl != "" {
		if lvl, ok := config.LogLevels[*searchLogLvl]; ok {
			config.SearchLogLevel = lvl
		}
	}
	log := logging.GetLog()
	// The search logger was first configured at package init, before the
	// levels above were applied; configure it again so they take effect.
	logging.GetSearchLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		b, err := fen.Parse(*perftFen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		nodes := movegen.Perft(b, *perftDepth)
		out.Printf("perft(%d) = %d\n", *perftDepth, nodes)
		return
	}

	log.Infof("kaissa %s starting", version)
	handler := uci.New(os.Stdin, os.Stdout, *logPath)
	handler.Loop()
}
