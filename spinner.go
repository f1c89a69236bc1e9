/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"time"

	"github.com/vcsaturninus/termite/constants/sgr"
)

// Spinner is an indefinite indicator cycling a single symbol through an
// ordered sequence. The symbol is always rendered bold, on top of any
// configured attributes.
type Spinner struct {
	*settings
	index int
}

// ****** Construction ********************************************************

func NewSpinner(options ...IndicatorOption) (*Spinner, error) {
	s, err := newSettings(options...)
	if err != nil {
		return nil, err
	}
	if s.symbols == nil {
		s.symbols = []string{"|", "/", "-", `\`}
	}
	return &Spinner{settings: s}, nil
}

// ****** Indicator functions *************************************************

// Advance rotates to the next symbol, wrapping past the end of the
// sequence.
func (s *Spinner) Advance() {
	s.index = (s.index + 1) % len(s.symbols)
}

// Symbol returns the symbol currently shown.
func (s *Spinner) Symbol() string {
	return s.symbols[s.index]
}

func (s *Spinner) Report(message string) error {
	line, err := s.render(message)
	if err != nil {
		return err
	}
	return s.report(line)
}

func (s *Spinner) Finish(message string, wait time.Duration) error {
	line, err := s.render(message)
	if err != nil {
		return err
	}
	return s.finish(line, wait)
}

func (s *Spinner) render(message string) (string, error) {
	symbol, err := s.decorate(s.Symbol(), sgr.Bold)
	if err != nil {
		return "", err
	}
	return symbol + " " + message, nil
}
