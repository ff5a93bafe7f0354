package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withSink(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetSink(os.Stdout)
		SetLevel(Notice)
	})
	return &buf
}

func TestLogger_Format(t *testing.T) {
	buf := withSink(t, Notice)

	New("raytracer").Noticef("rendered %d bands", 4)

	out := buf.String()
	assert.Contains(t, out, "[raytracer]")
	assert.Contains(t, out, "[NOTICE]")
	assert.Contains(t, out, "rendered 4 bands")
}

func TestSetLevel(t *testing.T) {
	buf := withSink(t, Warning)
	logger := New("levels")

	logger.Info("hidden")
	logger.Notice("also hidden")
	logger.Warning("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	SetLevel(Debug)
	logger.Debug("debug line")
	assert.Contains(t, buf.String(), "debug line")
}

func TestSetSink_KeepsLevel(t *testing.T) {
	withSink(t, Error)

	var buf bytes.Buffer
	SetSink(&buf)
	New("sink").Warning("dropped")
	assert.Empty(t, buf.String())
}

func TestPrinter(t *testing.T) {
	buf := withSink(t, Info)

	Printer{Logger: New("printer"), Level: Info}.Printf("%d ms %s", 12, "render")
	assert.Contains(t, buf.String(), "[INFO]")
	assert.Contains(t, buf.String(), "12 ms render")

	buf.Reset()
	Printer{Logger: New("printer"), Level: Debug}.Printf("too chatty")
	assert.Empty(t, buf.String())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "notice", Notice.String())
	assert.Equal(t, "level(42)", Level(42).String())
}
