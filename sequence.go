/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vcsaturninus/termite/constants/ctrl"
	"github.com/vcsaturninus/termite/constants/cursor"
	"github.com/vcsaturninus/termite/constants/sgr"
)

var (
	ErrSequenceNoDirection  = fmt.Errorf("sequence error - direction not specified")
	ErrSequenceNoText       = fmt.Errorf("sequence error - text not specified")
	ErrSequenceNoAttributes = fmt.Errorf("sequence error - empty attribute list")
)

// Move builds a cursor-movement sequence. The first count is the number of
// rows or columns to move and defaults to 1. cursor.Position takes a second
// count, the column, also defaulting to 1; every other direction ignores it.
func Move(direction cursor.Direction, counts ...int) (string, error) {
	if direction == "" {
		return "", ErrSequenceNoDirection
	}
	n, m := 1, 1
	if len(counts) > 0 {
		n = counts[0]
	}
	if len(counts) > 1 {
		m = counts[1]
	}
	if direction == cursor.Position {
		return fmt.Sprintf("%s%d;%d%s", ctrl.CSI, n, m, direction), nil
	}
	return fmt.Sprintf("%s%d%s", ctrl.CSI, n, direction), nil
}

// Decorate wraps text in an SGR sequence for the given attributes, followed
// by a reset. With no attributes the text is returned untouched.
func Decorate(text string, attributes ...sgr.Attribute) (string, error) {
	if text == "" {
		return "", ErrSequenceNoText
	}
	if len(attributes) == 0 {
		return text, nil
	}
	prefix, err := sequence(attributes)
	if err != nil {
		return "", err
	}
	return prefix + text + ctrl.CSI + "0m", nil
}

// sequence joins attribute codes into a single CSI..m prefix. Callers must
// not pass an empty list; Decorate screens that case out beforehand.
func sequence(attributes []sgr.Attribute) (string, error) {
	if len(attributes) == 0 {
		return "", ErrSequenceNoAttributes
	}
	codes := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		codes = append(codes, strconv.Itoa(int(attribute)))
	}
	return ctrl.CSI + strings.Join(codes, ";") + "m", nil
}
