// Copyright 2024 The uplc-go Authors
// This file is part of the uplc-go library.
//
// The uplc-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The uplc-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the uplc-go library. If not, see <http://www.gnu.org/licenses/>.

// Package log provides the leveled, structured logger used across the
// evaluator. It never participates in evaluation semantics: nothing it
// does may influence consumed budget or the final term.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
)

// Level controls log verbosity, ordered from least to most severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCrit
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "CRIT"}

func (l Level) String() string {
	if int(l) < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

var levelColor = [...]*color.Color{
	color.New(color.FgHiBlack),
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgRed),
	color.New(color.FgMagenta, color.Bold),
}

// Logger emits leveled, key/value structured records.
type Logger interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
	New(ctx ...interface{}) Logger
}

type logger struct {
	ctx []interface{}
}

var (
	root    atomic.Value
	mu      sync.Mutex
	out     io.Writer = colorable.NewColorableStdout()
	minLvl  atomic.Int32
	started = time.Now()
)

func init() {
	root.Store(&logger{})
	minLvl.Store(int32(LevelInfo))
}

// SetOutput redirects all log output (used by tests and cmd/uplc-run).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetLevel sets the minimum level that is actually written.
func SetLevel(l Level) {
	minLvl.Store(int32(l))
}

// Root returns the package-level logger.
func Root() Logger {
	return root.Load().(*logger)
}

// New returns a child of the root logger carrying the given key/value pairs.
func New(ctx ...interface{}) Logger {
	return Root().New(ctx...)
}

func (l *logger) New(ctx ...interface{}) Logger {
	child := make([]interface{}, 0, len(l.ctx)+len(ctx))
	child = append(child, l.ctx...)
	child = append(child, ctx...)
	return &logger{ctx: child}
}

func (l *logger) write(lvl Level, msg string, ctx []interface{}) {
	if Level(minLvl.Load()) > lvl {
		return
	}
	mu.Lock()
	defer mu.Unlock()

	c := levelColor[lvl]
	fmt.Fprintf(out, "%s[%s] %s", c.Sprint(lvl.String()), time.Since(started).Round(time.Microsecond), msg)
	all := make([]interface{}, 0, len(l.ctx)+len(ctx))
	all = append(all, l.ctx...)
	all = append(all, ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		fmt.Fprintf(out, " %v=%v", all[i], all[i+1])
	}
	fmt.Fprintln(out)
}

// callSite records the immediate caller, used only when crashing on Crit.
func callSite() stack.CallStack {
	return stack.Trace().TrimBelow(stack.Caller(2))
}

func (l *logger) Trace(msg string, ctx ...interface{}) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LevelError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(LevelCrit, msg, ctx)
	fmt.Fprintln(os.Stderr, callSite())
	os.Exit(1)
}

func Trace(msg string, ctx ...interface{}) { Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { Root().Error(msg, ctx...) }
