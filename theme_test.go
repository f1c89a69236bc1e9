/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTheme(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_LoadTheme(t *testing.T) {
	tests := map[string]struct {
		contents string
		expected *Theme
		err      error
	}{
		"missing file": {
			contents: "",
			err:      ErrThemeUnreadable,
		},
		"invalid yaml": {
			contents: "attributes: [unclosed",
			err:      ErrThemeUnmarshal,
		},
		"full theme": {
			contents: "attributes: [bold, bright-green]\n" +
				"left_marker: \"|\"\n" +
				"right_marker: \"|\"\n" +
				"filler: \"=\"\n" +
				"void: \"-\"\n" +
				"symbols: [\"*\", \"+\"]\n",
			expected: &Theme{
				Attributes:  []string{"bold", "bright-green"},
				LeftMarker:  "|",
				RightMarker: "|",
				Filler:      "=",
				Void:        "-",
				Symbols:     []string{"*", "+"},
			},
		},
	}
	for name, test := range tests {
		t.Run(name, func(tt *testing.T) {
			var path string
			if test.contents == "" {
				path = filepath.Join(tt.TempDir(), "absent.yaml")
			} else {
				path = writeTheme(tt, test.contents)
			}
			theme, err := LoadTheme(path)
			if test.err != nil {
				assert.ErrorIs(tt, err, test.err)
			} else {
				assert.NoError(tt, err)
				assert.Equal(tt, test.expected, theme)
			}
		})
	}
}

func Test_ThemeOptions(t *testing.T) {
	theme := &Theme{
		Attributes:  []string{"bold"},
		LeftMarker:  "(",
		RightMarker: ")",
		Filler:      "*",
		Void:        ".",
	}
	options, err := theme.Options()
	assert.NoError(t, err)

	var buf bytes.Buffer
	bar, err := NewBar(2, append(options,
		IndicatorOptionWriter(&buf),
		IndicatorOptionWidth(4))...)
	assert.NoError(t, err)

	bar.Advance()
	assert.NoError(t, bar.Report("themed"))
	assert.Equal(t, "(**..) themed\n"+erase, buf.String())
}

func Test_ThemeOptionsUnknownAttribute(t *testing.T) {
	theme := &Theme{Attributes: []string{"bold", "no-such-color"}}
	_, err := theme.Options()
	assert.ErrorIs(t, err, ErrThemeUnknownName)
}

func Test_ThemeOptionsEmpty(t *testing.T) {
	options, err := (&Theme{}).Options()
	assert.NoError(t, err)
	assert.Empty(t, options)
}

func Test_DefaultThemePath(t *testing.T) {
	t.Setenv("TERMITE_THEME", "/tmp/custom-theme.yaml")
	path, err := DefaultThemePath()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/custom-theme.yaml", path)

	t.Setenv("TERMITE_THEME", "")
	path, err = DefaultThemePath()
	assert.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".config", "termite", "theme.yaml"))
}

func Test_WatchThemeNilNotify(t *testing.T) {
	err := WatchTheme(nil, "theme.yaml", nil)
	assert.ErrorIs(t, err, ErrThemeNilNotify)
}
