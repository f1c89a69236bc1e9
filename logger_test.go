/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcsaturninus/termite/constants/sgr"
)

func Test_LoggerNotify(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptionWriter(&buf))
	assert.NoError(t, err)

	logger.Notify("ready", sgr.Green)
	assert.Equal(t, "[2K[32mready[0m[0K\n", buf.String())
}

func Test_LoggerLevels(t *testing.T) {
	tests := map[string]struct {
		log      func(l *Logger)
		expected string
	}{
		"info":  {log: func(l *Logger) { l.Infof("n=%d", 1) }, expected: "[97mn=1[0m"},
		"warn":  {log: func(l *Logger) { l.Warn("careful") }, expected: "[93mcareful[0m"},
		"error": {log: func(l *Logger) { l.Error("broken") }, expected: "[91mbroken[0m"},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(LoggerOptionWriter(&buf))
			assert.NoError(tt, err)

			test.log(logger)
			assert.Contains(tt, buf.String(), test.expected)
		})
	}
}

func Test_LoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptionWriter(&buf))
	assert.NoError(t, err)

	logger.Debug("hidden")
	logger.Trace("hidden")
	assert.Empty(t, buf.String())

	logger, err = NewLogger(LoggerOptionWriter(&buf), LoggerOptionDebug())
	assert.NoError(t, err)

	logger.Debug("shown")
	logger.Tracef("shown %s", "too")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "shown too")
}

func Test_LoggerHistory(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerOptionWriter(&buf))
	assert.NoError(t, err)

	logger.Info("first")
	logger.Warn("second")

	messages := logger.History()
	assert.Len(t, messages, 2)
	assert.Contains(t, messages[0], "first")
	assert.Contains(t, messages[1], "second")
}
