/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"strings"
	"time"
)

// Cyclic is an indefinite indicator sweeping a single symbol across the
// bar, left to right, wrapping back to the first cell after the last. When
// several symbols are configured the sweep cycles through them cell by
// cell.
type Cyclic struct {
	*settings
	units  int
	symbol string
}

// ****** Construction ********************************************************

func NewCyclic(width int, options ...IndicatorOption) (*Cyclic, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndicatorInvalidWidth, width)
	}
	s, err := newSettings(options...)
	if err != nil {
		return nil, err
	}
	s.width = width
	if s.symbols == nil {
		s.symbols = []string{"#"}
	}
	return &Cyclic{settings: s, symbol: s.symbols[0]}, nil
}

// ****** Indicator functions *************************************************

// Advance moves the symbol one cell to the right, wrapping from the last
// cell back to the first, never through zero.
func (c *Cyclic) Advance() {
	if c.units == c.width {
		c.units = 0
	}
	c.units++
	c.symbol = c.symbols[c.units%len(c.symbols)]
}

// Units returns the cell the symbol currently occupies, 0 before the
// first advance.
func (c *Cyclic) Units() int {
	return c.units
}

func (c *Cyclic) Report(message string) error {
	line, err := c.render(message)
	if err != nil {
		return err
	}
	return c.report(line)
}

func (c *Cyclic) Finish(message string, wait time.Duration) error {
	line, err := c.render(message)
	if err != nil {
		return err
	}
	return c.finish(line, wait)
}

func (c *Cyclic) render(message string) (string, error) {
	if c.units == 0 {
		return c.leftMarker + strings.Repeat(c.void, c.width) + c.rightMarker + " " + message, nil
	}
	symbol, err := c.decorate(c.symbol)
	if err != nil {
		return "", err
	}
	return c.leftMarker +
		strings.Repeat(c.void, c.units-1) +
		symbol +
		strings.Repeat(c.void, c.width-c.units) +
		c.rightMarker + " " + message, nil
}
