// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/yap/pkg/integration"
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Structured output goes to stderr so the
// console writer (stdout for the CLI) carries only user-facing output.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	yapText := color.New(color.Bold, color.FgCyan).Sprint("yap")
	fmt.Fprintf(l.console, "\n%s %s\n\n", yapText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Payload prints the transformed text. This is the command's primary
// output, so it goes to the console unstyled.
func (l *Logger) Payload(payload string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, payload)
	l.zlog.Info().Int("chars", len(payload)).Msg("payload printed")
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📢 UserLogger provides user-friendly feedback via pterm printers
type UserLogger struct {
	log zerolog.Logger
}

// 🎯 NewUserLogger creates a new user logger bound to the given logger
func NewUserLogger(zlog zerolog.Logger) *UserLogger {
	return &UserLogger{log: zlog}
}

// 📬 LogSendResult logs the outcome of an integration send
func (u *UserLogger) LogSendResult(res integration.Result) {
	if res.Success {
		msg := fmt.Sprintf("Sent (%s)", res.ID)
		if res.Info != "" {
			msg += fmt.Sprintf(" (%s)", res.Info)
		}
		pterm.Success.WithPrefix(pterm.Prefix{Text: "📤"}).Println(msg)
		u.log.Info().Str("id", res.ID).Str("info", res.Info).Msg("send succeeded")
	} else {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "📪"}).Println("Send failed: " + res.Error)
		u.log.Error().Str("error", res.Error).Msg("send failed")
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}
