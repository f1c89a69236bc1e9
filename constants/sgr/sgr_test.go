/*
 * Copyright (C) 2025 by vcsaturninus
 */

package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Background(t *testing.T) {
	assert.Equal(t, Attribute(40), Background(Black))
	assert.Equal(t, Attribute(47), Background(White))
	assert.Equal(t, Attribute(100), Background(BrightBlack))
	assert.Equal(t, Attribute(107), Background(BrightWhite))
}

func Test_Parse(t *testing.T) {
	tests := map[string]struct {
		name     string
		expected Attribute
		err      error
	}{
		"style":            {name: "bold", expected: Bold},
		"color":            {name: "bright-cyan", expected: BrightCyan},
		"background":       {name: "bg-red", expected: Background(Red)},
		"unknown":          {name: "chartreuse", err: ErrUnknownAttribute},
		"background style": {name: "bg-bold", err: ErrUnknownAttribute},
		"empty":            {name: "", err: ErrUnknownAttribute},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			actual, err := Parse(test.name)
			if test.err != nil {
				assert.ErrorIs(tt, err, test.err)
			} else {
				assert.NoError(tt, err)
				assert.Equal(tt, test.expected, actual)
			}
		})
	}
}
