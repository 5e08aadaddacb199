// Package logwriter sets up where dinephil logs go and the logger writing
// there. Standard output belongs to the table display, so logs only go to a
// file or a writer given explicitly.
//
package logwriter // "github.com/nickng/dinephil/logwriter"

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer is a log sink and its configurations.
type Writer struct {
	io.Writer

	LogFile       string
	Level         zapcore.Level
	EnableLogging bool
	EnableColour  bool
	Cleanup       func()
}

// NewFile creates a sink writing to logfile.
func NewFile(logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		Level:         zapcore.DebugLevel,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a sink writing to w.
func New(w io.Writer, enableLogging, enableColour bool) *Writer {
	return &Writer{
		Writer:        w,
		Level:         zapcore.DebugLevel,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create opens the sink. Colour output is turned off when disabled but never
// forced on for a non-terminal.
func (w *Writer) Create() error {
	if !w.EnableColour {
		color.NoColor = true
	}
	if !w.EnableLogging {
		w.Writer = ioutil.Discard
		w.Cleanup = func() {}
		return nil
	}
	if w.Writer != nil {
		w.Cleanup = func() {}
		return nil
	}
	if w.LogFile == "" {
		w.Writer = ioutil.Discard
		w.Cleanup = func() {}
		return nil
	}
	f, err := os.Create(w.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	bufWriter := bufio.NewWriter(f)
	w.Writer = bufWriter
	w.Cleanup = func() {
		if err := bufWriter.Flush(); err != nil {
			log.Printf("flush: %s", err)
		}
		if err := f.Close(); err != nil {
			log.Printf("close: %s", err)
		}
	}
	return nil
}

// Logger returns a logger writing to the sink. Create must be called first.
func (w *Writer) Logger() *zap.Logger {
	if !w.EnableLogging || w.Writer == ioutil.Discard {
		return zap.NewNop()
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w.Writer)),
		w.Level,
	)
	return zap.New(core)
}
