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

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each file to one line.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/jcbzqy/kaissa/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard Logger, preconfigured with an os.Stdout
// backend and the shared time/package/level/message format.
func GetLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns a Logger dedicated to search-internal messages
// (root-iteration summaries, stop/time-budget notices), configured from
// config.SearchLogLevel so it can be silenced independently of the
// standard log.
func GetSearchLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUciLog returns a Logger dedicated to UCI protocol traffic, teed to
// stdout and, if it can be opened, to logPath. The UCI channel is the
// engine's only externally observable behavior, so it is always logged
// in full regardless of the standard log level.
func GetUciLog(logPath string) *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	backend1 := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), uciFormat)
	stdoutBackend := logging.AddModuleLevel(backend1)
	stdoutBackend.SetLevel(logging.DEBUG, "")

	if logPath == "" {
		uciLog.SetBackend(stdoutBackend)
		return uciLog
	}

	var err error
	uciLogFile, err = os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("uci log file could not be created:", err)
		uciLog.SetBackend(stdoutBackend)
		return uciLog
	}
	backend2 := logging.NewBackendFormatter(logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix), uciFormat)
	fileBackend := logging.AddModuleLevel(backend2)
	fileBackend.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(stdoutBackend, fileBackend))
	return uciLog
}
