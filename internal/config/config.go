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

// Package config holds process-wide configuration: a package-level
// Settings struct decoded from a TOML file via
// github.com/BurntSushi/toml, with log levels resolved from a
// name->int map of level names.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel and SearchLogLevel are read by internal/logging when
// constructing the standard and search loggers.
var (
	LogLevel       = LogLevels["info"]
	SearchLogLevel = LogLevels["info"]

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps the log-level names accepted in config.toml and on the
// command line to go-logging's numeric levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

type searchConfiguration struct {
	// Depth is the default ply budget used by the UCI `go` command when
	// it carries no `depth` token.
	Depth int
	// TTSizeHint is advisory only; the transposition table is an
	// unbounded map today, so the hint exists purely so config.toml can
	// document an intended ceiling for a future fixed-size/evicting
	// table.
	TTSizeHint int
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Search.Depth = 5
	Settings.Search.TTSizeHint = 64
}

// Setup reads configPath (defaulting to "./config.toml" if empty) and
// applies its contents over the defaults set above. Idempotent: a second
// call is a no-op. A missing or malformed config file is reported and
// otherwise ignored - configuration is best-effort, never required.
func Setup(configPath string) {
	if initialized {
		return
	}
	if configPath == "" {
		configPath = "./config.toml"
	}
	if _, err := toml.DecodeFile(configPath, &Settings); err != nil {
		fmt.Println(err)
	}

	if Settings.Log.LogLvl != "" {
		if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
			LogLevel = lvl
		}
	}
	if Settings.Log.SearchLogLvl != "" {
		if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
			SearchLogLevel = lvl
		}
	}
	if Settings.Search.Depth <= 0 {
		Settings.Search.Depth = 5
	}

	initialized = true
}
