/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"time"
)

// Percentage is a definite indicator reporting completion as a whole
// percentage of a fixed number of steps.
type Percentage struct {
	*settings
	total     int
	completed int
}

// ****** Construction ********************************************************

func NewPercentage(total int, options ...IndicatorOption) (*Percentage, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndicatorInvalidTotal, total)
	}
	s, err := newSettings(options...)
	if err != nil {
		return nil, err
	}
	return &Percentage{settings: s, total: total}, nil
}

// ****** Indicator functions *************************************************

// Advance counts one more completed step, saturating at the total.
func (p *Percentage) Advance() {
	if p.completed == p.total {
		return
	}
	p.completed++
}

// Percent returns the completion percentage, floored to a whole number.
func (p *Percentage) Percent() int {
	return p.completed * 100 / p.total
}

func (p *Percentage) Report(message string) error {
	line, err := p.render(message)
	if err != nil {
		return err
	}
	return p.report(line)
}

func (p *Percentage) Finish(message string, wait time.Duration) error {
	line, err := p.render(message)
	if err != nil {
		return err
	}
	return p.finish(line, wait)
}

func (p *Percentage) render(message string) (string, error) {
	figure, err := p.decorate(fmt.Sprintf("%d%%", p.Percent()))
	if err != nil {
		return "", err
	}
	return figure + " " + message, nil
}
