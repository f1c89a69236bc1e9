/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vcsaturninus/termite/constants/ctrl"
	"github.com/vcsaturninus/termite/constants/screen"
	"github.com/vcsaturninus/termite/constants/sgr"
	"golang.org/x/term"
)

var (
	ErrIndicatorInvalidTotal = fmt.Errorf("indicator error - total steps must be positive")
	ErrIndicatorInvalidWidth = fmt.Errorf("indicator error - width must be positive")
	ErrIndicatorNoSymbols    = fmt.Errorf("indicator error - empty symbol list")
	ErrIndicatorNoMarker     = fmt.Errorf("indicator error - empty marker")
)

// eraseAbove moves the cursor to the start of the previous line and clears
// it, so the next write lands where the stale report was.
const eraseAbove = ctrl.CSI + "1F" + screen.ClearLine

// Indicator is the contract every progress indicator satisfies. Drive it
// from a single loop: Advance then Report each iteration, Finish once at
// the end. Two indicators sharing one sink garble each other's cursor
// movement; that usage is unsupported.
type Indicator interface {
	// Advance moves internal progress forward by one unit. Definite
	// indicators saturate at completion; indefinite ones wrap.
	Advance()

	// Report renders the current state plus message as a single line,
	// then erases it so the next report overwrites in place.
	Report(message string) error

	// Finish renders a final report and, after an optional wait during
	// which it stays visible, cleans the line up.
	Finish(message string, wait time.Duration) error
}

type IndicatorOption func(s *settings) error

// settings is the render configuration shared by every indicator variant.
// Each variant reads the subset it cares about.
type settings struct {
	writer      io.Writer
	plain       bool
	sleep       func(time.Duration)
	attributes  []sgr.Attribute
	width       int
	leftMarker  string
	rightMarker string
	filler      string
	void        string
	symbols     []string
}

func newSettings(options ...IndicatorOption) (*settings, error) {
	s := &settings{
		writer:      os.Stdout,
		plain:       !term.IsTerminal(int(os.Stdout.Fd())),
		sleep:       time.Sleep,
		width:       30,
		leftMarker:  "[",
		rightMarker: "]",
		filler:      "#",
		void:        " ",
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// report writes one rendered line and immediately erases it. In between,
// the line is what the user sees; the erase positions the cursor so the
// next report overwrites rather than scrolls.
func (s *settings) report(line string) error {
	if _, err := fmt.Fprintln(s.writer, line); err != nil {
		return err
	}
	if s.plain {
		return nil
	}
	_, err := fmt.Fprint(s.writer, eraseAbove)
	return err
}

// finish is report with the erase deferred by wait, leaving the final
// state on screen for that long.
func (s *settings) finish(line string, wait time.Duration) error {
	if _, err := fmt.Fprintln(s.writer, line); err != nil {
		return err
	}
	if wait > 0 {
		s.sleep(wait)
	}
	if s.plain {
		return nil
	}
	_, err := fmt.Fprint(s.writer, eraseAbove)
	return err
}

// decorate renders text with the configured attributes, plus any extras
// the variant forces (the spinner always bolds its symbol).
func (s *settings) decorate(text string, extra ...sgr.Attribute) (string, error) {
	return Decorate(text, append(extra, s.attributes...)...)
}

// ****** Options *************************************************************

// IndicatorOptionWriter redirects output away from stdout. A non-terminal
// file suppresses the erase discipline so piped output stays readable;
// other writer types are assumed escape-capable.
func IndicatorOptionWriter(w io.Writer) IndicatorOption {
	return func(s *settings) error {
		s.writer = w
		if f, ok := w.(*os.File); ok {
			s.plain = !term.IsTerminal(int(f.Fd()))
		} else {
			s.plain = false
		}
		return nil
	}
}

// IndicatorOptionPlain forces plain mode: lines are printed and left to
// scroll, with no cursor movement.
func IndicatorOptionPlain() IndicatorOption {
	return func(s *settings) error {
		s.plain = true
		return nil
	}
}

// IndicatorOptionAttributes sets the SGR attributes applied to the
// decorated portion of each report.
func IndicatorOptionAttributes(attributes ...sgr.Attribute) IndicatorOption {
	return func(s *settings) error {
		s.attributes = append([]sgr.Attribute{}, attributes...)
		return nil
	}
}

// IndicatorOptionWidth sets the bar width in units for the bar-shaped
// variants.
func IndicatorOptionWidth(width int) IndicatorOption {
	return func(s *settings) error {
		if width <= 0 {
			return ErrIndicatorInvalidWidth
		}
		s.width = width
		return nil
	}
}

// IndicatorOptionMarkers sets the bar's bounding markers.
func IndicatorOptionMarkers(left, right string) IndicatorOption {
	return func(s *settings) error {
		if left == "" || right == "" {
			return ErrIndicatorNoMarker
		}
		s.leftMarker = left
		s.rightMarker = right
		return nil
	}
}

// IndicatorOptionSymbols sets the ordered symbol sequence cycled by the
// spinner and cyclic loader. The list is copied; instances never share it.
func IndicatorOptionSymbols(symbols ...string) IndicatorOption {
	return func(s *settings) error {
		if len(symbols) == 0 {
			return ErrIndicatorNoSymbols
		}
		s.symbols = append([]string{}, symbols...)
		return nil
	}
}

// IndicatorOptionFiller sets the symbol drawn for completed bar units.
func IndicatorOptionFiller(filler string) IndicatorOption {
	return func(s *settings) error {
		if filler == "" {
			return ErrIndicatorNoSymbols
		}
		s.filler = filler
		return nil
	}
}

// IndicatorOptionVoid sets the symbol drawn for unfilled bar units.
func IndicatorOptionVoid(void string) IndicatorOption {
	return func(s *settings) error {
		if void == "" {
			return ErrIndicatorNoSymbols
		}
		s.void = void
		return nil
	}
}

// IndicatorOptionSleepFunc replaces the blocking sleep used by Finish.
func IndicatorOptionSleepFunc(sleep func(time.Duration)) IndicatorOption {
	return func(s *settings) error {
		s.sleep = sleep
		return nil
	}
}
