package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("search completed", Field{Key: "route", Value: "JFK->LHR"}, Field{Key: "results", Value: 12})

	output := buf.String()
	assert.Contains(t, output, "search completed")
	assert.Contains(t, output, `"route":"JFK->LHR"`)
	assert.Contains(t, output, `"results":12`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("cache lookup")

	assert.Contains(t, buf.String(), "cache lookup")
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("cache lookup")

	assert.Empty(t, buf.String())
}

func TestZeroLogger_ProductionDoesNotSilenceOtherLoggers(t *testing.T) {
	prodBuf := &bytes.Buffer{}
	devBuf := &bytes.Buffer{}
	_ = NewWithWriter("production", prodBuf)
	dev := NewWithWriter("development", devBuf)

	dev.Debug("still visible")

	assert.Contains(t, devBuf.String(), "still visible")
}

func TestZeroLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("upstream failed", Err(errors.New("connection refused")))

	output := buf.String()
	assert.Contains(t, output, `"level":"error"`)
	assert.Contains(t, output, `"err":"connection refused"`)
}

func TestZeroLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "session_id", Value: "abc"})

	log.Warn("search superseded")

	output := buf.String()
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"session_id":"abc"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("ignored", Field{Key: "k", Value: "v"})
	})
}
