package logwriter

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

func TestLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true, true)
	if err := w.Create(); err != nil {
		t.Fatal(err)
	}
	defer w.Cleanup()
	l := w.Logger()
	l.Debug("fork picked up", zap.Int("fork", 3))
	l.Sync()
	if !strings.Contains(buf.String(), "fork picked up") {
		t.Errorf("Expecting log entry in writer, got %q", buf.String())
	}
}

func TestNoLogging(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false, true)
	if err := w.Create(); err != nil {
		t.Fatal(err)
	}
	w.Logger().Info("dinner started")
	if buf.Len() != 0 {
		t.Errorf("Expecting nothing logged but got %q", buf.String())
	}
	if w.Writer != ioutil.Discard {
		t.Error("Expecting writer to discard")
	}
}

func TestNoLogFileDiscards(t *testing.T) {
	w := NewFile("", true, true)
	if err := w.Create(); err != nil {
		t.Fatal(err)
	}
	defer w.Cleanup()
	if w.Writer != ioutil.Discard {
		t.Error("Expecting logs discarded without a log file")
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dinephil.log")
	w := NewFile(path, true, true)
	if err := w.Create(); err != nil {
		t.Fatal(err)
	}
	w.Logger().Info("dinner finished")
	w.Cleanup()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "dinner finished") {
		t.Errorf("Expecting log file to contain entry, got %q", string(b))
	}
}

func TestNoColour(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	color.NoColor = false
	w := New(&bytes.Buffer{}, false, false)
	if err := w.Create(); err != nil {
		t.Fatal(err)
	}
	if !color.NoColor {
		t.Error("Expecting colour disabled")
	}
}
