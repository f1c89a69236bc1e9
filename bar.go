/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"strings"
	"time"
)

// Bar is a definite indicator drawing completion as a fixed-width bar of
// filler symbols. Step granularity is converted down to the coarser unit
// granularity of the bar; units only ever grow.
type Bar struct {
	*settings
	total     int
	completed int
	units     int
}

// ****** Construction ********************************************************

func NewBar(total int, options ...IndicatorOption) (*Bar, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndicatorInvalidTotal, total)
	}
	s, err := newSettings(options...)
	if err != nil {
		return nil, err
	}
	return &Bar{settings: s, total: total}, nil
}

// ****** Indicator functions *************************************************

// Advance counts one more completed step and pulls the unit count up to
// match whenever the step ratio has caught up with the unit ratio.
func (b *Bar) Advance() {
	if b.completed == b.total {
		return
	}
	b.completed++
	if b.completed*b.width >= b.units*b.total {
		b.units = b.completed * b.width / b.total
	}
}

// Units returns the number of filled bar units.
func (b *Bar) Units() int {
	return b.units
}

func (b *Bar) Report(message string) error {
	return b.report(b.render(message))
}

func (b *Bar) Finish(message string, wait time.Duration) error {
	return b.finish(b.render(message), wait)
}

func (b *Bar) render(message string) string {
	return b.leftMarker +
		strings.Repeat(b.filler, b.units) +
		strings.Repeat(b.void, b.width-b.units) +
		b.rightMarker + " " + message
}
