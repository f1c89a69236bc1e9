/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vcsaturninus/termite/constants/screen"
	"github.com/vcsaturninus/termite/constants/sgr"
)

const historyLimit = 1000

type LoggerOption func(l *Logger) error

// Logger prints colorized single-line messages alongside an indicator's
// output, keeping a bounded history of everything written.
type Logger struct {
	writer  io.Writer
	history *history
	sync    sync.Mutex
	debug   bool
}

// ****** Construction ********************************************************

func NewLogger(options ...LoggerOption) (*Logger, error) {
	logger := &Logger{
		writer:  os.Stderr,
		history: &history{},
	}
	for _, option := range options {
		if err := option(logger); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

// ****** Log functions *******************************************************

// Notify writes text styled with the given attributes, clearing the rest
// of the line so indicator leftovers never trail the message.
func (l *Logger) Notify(text string, attributes ...sgr.Attribute) {
	l.sync.Lock()
	defer l.sync.Unlock()

	decorated, err := Decorate(text, attributes...)
	if err != nil {
		return
	}
	str := fmt.Sprintf("%s%s%s", screen.ClearLine, decorated, screen.ClearToEnd)
	l.history.add(str)
	fmt.Fprintln(l.writer, str)
}

func (l *Logger) Tracef(text string, a ...interface{}) {
	l.Trace(fmt.Sprintf(text, a...))
}
func (l *Logger) Trace(text string) {
	if l.debug {
		l.Notify(text, sgr.Faint)
	}
}
func (l *Logger) Debugf(text string, a ...interface{}) {
	l.Debug(fmt.Sprintf(text, a...))
}
func (l *Logger) Debug(text string) {
	if l.debug {
		l.Notify(text, sgr.White)
	}
}
func (l *Logger) Infof(text string, a ...interface{}) {
	l.Info(fmt.Sprintf(text, a...))
}
func (l *Logger) Info(text string) {
	l.Notify(text, sgr.BrightWhite)
}
func (l *Logger) Warnf(text string, a ...interface{}) {
	l.Warn(fmt.Sprintf(text, a...))
}
func (l *Logger) Warn(text string) {
	l.Notify(text, sgr.BrightYellow)
}
func (l *Logger) Errorf(text string, a ...interface{}) {
	l.Error(fmt.Sprintf(text, a...))
}
func (l *Logger) Error(text string) {
	l.Notify(text, sgr.BrightRed)
}

// History returns a copy of the retained log lines, oldest first.
func (l *Logger) History() []string {
	return l.history.snapshot()
}

// ****** Options *************************************************************

func LoggerOptionWriter(w io.Writer) LoggerOption {
	return func(l *Logger) error {
		l.writer = w
		return nil
	}
}
func LoggerOptionDebug() LoggerOption {
	return func(l *Logger) error {
		l.debug = true
		return nil
	}
}

// ****** History *************************************************************

type history struct {
	sync     sync.Mutex
	messages []string
}

func (h *history) add(message string) {
	h.sync.Lock()
	defer h.sync.Unlock()

	h.messages = append(h.messages, message)
	if len(h.messages) > historyLimit {
		h.messages = h.messages[1:]
	}
}

func (h *history) snapshot() []string {
	h.sync.Lock()
	defer h.sync.Unlock()

	return append([]string{}, h.messages...)
}
