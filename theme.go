/*
 * Copyright (C) 2025 by vcsaturninus
 */

package termite

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/vcsaturninus/termite/constants/sgr"
	"gopkg.in/yaml.v3"
)

const (
	themeEnvVar      = "TERMITE_THEME"
	defaultThemeFile = ".config/termite/theme.yaml"
)

var (
	ErrThemeUnreadable   = fmt.Errorf("theme error - unable to read theme file")
	ErrThemeUnmarshal    = fmt.Errorf("theme error - invalid theme file")
	ErrThemeUnknownName  = fmt.Errorf("theme error - unknown attribute name")
	ErrThemeNilNotify    = fmt.Errorf("theme error - notify function not specified")
	ErrThemeWatchFailure = fmt.Errorf("theme error - unable to watch theme file")
)

type ThemeNotifyFunc func(theme *Theme, err error)

// Theme is the render configuration for indicators, loadable from a YAML
// file. Zero-valued fields leave the indicator's own defaults in place.
type Theme struct {
	Attributes  []string `json:"attributes" yaml:"attributes"`
	LeftMarker  string   `json:"left_marker" yaml:"left_marker"`
	RightMarker string   `json:"right_marker" yaml:"right_marker"`
	Filler      string   `json:"filler" yaml:"filler"`
	Void        string   `json:"void" yaml:"void"`
	Symbols     []string `json:"symbols" yaml:"symbols"`
}

// ****** Construction ********************************************************

// DefaultThemePath resolves the theme file location: the TERMITE_THEME
// environment variable when set, otherwise .config/termite/theme.yaml in
// the current user's home directory.
func DefaultThemePath() (string, error) {
	if path := os.Getenv(themeEnvVar); path != "" {
		return path, nil
	}
	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(currentUser.HomeDir, defaultThemeFile), nil
}

func LoadTheme(path string) (*Theme, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThemeUnreadable, err)
	}
	theme := &Theme{}
	if err = yaml.Unmarshal(bs, theme); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrThemeUnmarshal, err)
	}
	return theme, nil
}

// ****** Theme functions *****************************************************

// Options converts the theme into the option list any indicator factory
// accepts. Attribute names are resolved through the catalog; an unknown
// name fails the whole conversion.
func (t *Theme) Options() ([]IndicatorOption, error) {
	var options []IndicatorOption
	if len(t.Attributes) > 0 {
		attributes := make([]sgr.Attribute, 0, len(t.Attributes))
		for _, name := range t.Attributes {
			attribute, err := sgr.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrThemeUnknownName, name)
			}
			attributes = append(attributes, attribute)
		}
		options = append(options, IndicatorOptionAttributes(attributes...))
	}
	if t.LeftMarker != "" && t.RightMarker != "" {
		options = append(options, IndicatorOptionMarkers(t.LeftMarker, t.RightMarker))
	}
	if t.Filler != "" {
		options = append(options, IndicatorOptionFiller(t.Filler))
	}
	if t.Void != "" {
		options = append(options, IndicatorOptionVoid(t.Void))
	}
	if len(t.Symbols) > 0 {
		options = append(options, IndicatorOptionSymbols(t.Symbols...))
	}
	return options, nil
}

// ****** Watching ************************************************************

// WatchTheme reloads the theme whenever the file is rewritten, passing the
// result to notify. The watch stops when ctx is cancelled.
func WatchTheme(ctx context.Context, path string, notify ThemeNotifyFunc) error {
	if notify == nil {
		return ErrThemeNilNotify
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrThemeWatchFailure, err)
	}
	// Watch the directory; editors replace rather than rewrite the file.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("%w: %v", ErrThemeWatchFailure, err)
	}
	go watchTheme(ctx, watcher, path, notify)
	return nil
}

func watchTheme(ctx context.Context, watcher *fsnotify.Watcher, path string, notify ThemeNotifyFunc) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				notify(LoadTheme(path))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			notify(nil, fmt.Errorf("%w: %v", ErrThemeWatchFailure, err))
		case <-ctx.Done():
			_ = watcher.Close()
			return
		}
	}
}
