// Package logger provides process-wide logging for the benefits portal.
//
// Messages are written through zap. The package keeps a small printf-style
// API so call sites stay terse; structured fields go through L().
// When verbose mode is enabled via the --verbose flag the level drops to
// debug and section headers are printed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu        sync.RWMutex
	verbose   bool
	output    io.Writer = os.Stderr
	format              = FormatConsole
	baseLevel           = zapcore.InfoLevel
	level               = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base                = build(output, format)
)

func build(w io.Writer, f string) *zap.Logger {
	var enc zapcore.Encoder
	if f == FormatJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}

// Init configures the level (debug, info, warn, error) and format (console, json).
func Init(levelName, formatName string) error {
	lvl, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	if formatName != FormatConsole && formatName != FormatJSON {
		return fmt.Errorf("unsupported log format %q", formatName)
	}

	mu.Lock()
	defer mu.Unlock()
	baseLevel = lvl
	format = formatName
	if !verbose {
		level.SetLevel(lvl)
	}
	base = build(output, format)
	return nil
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(baseLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	base = build(output, format)
}

// L returns the underlying zap logger for structured logging.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}

// Debug logs a message at debug level. Visible in verbose mode.
func Debug(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	if !IsVerbose() {
		return
	}
	L().Debug(fmt.Sprintf("=== %s ===", name))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	L().Sugar().Infof(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	L().Sugar().Warnf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	L().Sugar().Errorf(format, args...)
}
