// Package debug carries the zerolog hooks shared by every logger in the server.
package debug

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// ModulePath is trimmed from the package part of callers.
const ModulePath = "github.com/oloveluck/snake-lsp/"

const defaultTimeFormat = "2006-01-02T15:04:05.0000Z"

// skipFrames reads zerolog's unexported per-event frame skip so callers stay
// accurate for helpers that use CallerSkipFrame.
func skipFrames(e *zerolog.Event) int {
	v := reflect.ValueOf(e).Elem()
	field := v.FieldByName("skipFrame")
	if field.IsValid() {
		return int(field.Int())
	}
	return 0
}

type TimeHook struct {
	Format string
}

func (t TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := t.Format
	if format == "" {
		format = defaultTimeFormat
	}
	e.Str("time", time.Now().UTC().Format(format))
}

type CallerHook struct {
	WithColor bool
}

func (c CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(skipFrames(e) + 3)
	if !ok {
		return
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return
	}
	pkg, _ := SplitFuncName(fn.Name())
	e.Str("caller", FormatCaller(pkg, file, line, c.WithColor))
}

// SplitFuncName splits a runtime function name into its package and the
// function or method within it.
func SplitFuncName(name string) (pkg, function string) {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	firstDot := strings.IndexByte(name[lastSlash:], '.') + lastSlash
	if firstDot < lastSlash {
		return name, ""
	}

	pkg = name[:firstDot]
	function = name[firstDot+1:]
	if strings.Contains(pkg, ".(") {
		parts := strings.SplitN(pkg, ".(", 2)
		pkg = parts[0]
		function = "(" + parts[1] + "." + function
	}
	return strings.TrimPrefix(pkg, ModulePath), function
}

func FormatCaller(pkg, path string, line int, colorize bool) string {
	file := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		file = path[i+1:]
	}
	if colorize {
		sep := color.New(color.Faint).Sprint(":")
		return fmt.Sprintf("%s%s%s%s%s", pkg, sep,
			color.New(color.Bold).Sprint(file), sep,
			color.New(color.FgHiRed, color.Bold).Sprintf("%d", line))
	}
	return fmt.Sprintf("%s:%s:%d", pkg, file, line)
}

type LoggerOptions struct {
	Level zerolog.Level
	// Console renders human readable lines instead of JSON.
	Console bool
	// Color enables colored callers and console output.
	Color bool
}

// NewLogger builds a logger writing to w with the time and caller hooks.
func NewLogger(w io.Writer, opts LoggerOptions) zerolog.Logger {
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: !opts.Color, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).
		Level(opts.Level).
		Hook(TimeHook{}).
		Hook(CallerHook{WithColor: opts.Color && opts.Console})
}
