/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"strings"
	"time"
)

// Ouroboros is an indefinite indicator that fills the bar like Bar does,
// then empties it again by swapping the roles of the filler and void
// glyphs, oscillating with period two.
type Ouroboros struct {
	*settings
	units int
}

// ****** Construction ********************************************************

func NewOuroboros(width int, options ...IndicatorOption) (*Ouroboros, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndicatorInvalidWidth, width)
	}
	s, err := newSettings(options...)
	if err != nil {
		return nil, err
	}
	s.width = width
	return &Ouroboros{settings: s}, nil
}

// ****** Indicator functions *************************************************

// Advance grows the fill by one unit; a full bar first swaps filler and
// void and starts over, so the previous fill appears to drain away.
func (o *Ouroboros) Advance() {
	if o.units == o.width {
		o.filler, o.void = o.void, o.filler
		o.units = 0
	}
	o.units++
}

// Units returns the number of bar units drawn with the current filler.
func (o *Ouroboros) Units() int {
	return o.units
}

func (o *Ouroboros) Report(message string) error {
	return o.report(o.render(message))
}

func (o *Ouroboros) Finish(message string, wait time.Duration) error {
	return o.finish(o.render(message), wait)
}

func (o *Ouroboros) render(message string) string {
	return o.leftMarker +
		strings.Repeat(o.filler, o.units) +
		strings.Repeat(o.void, o.width-o.units) +
		o.rightMarker + " " + message
}
