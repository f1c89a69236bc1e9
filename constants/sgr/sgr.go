/*
 * Copyright (C) 2025 by vcsaturninus
 */

// Package sgr defines the Select Graphic Rendition parameter codes used to
// style terminal text. Codes are combined semicolon-separated inside a
// single CSI..m sequence; each code is orthogonal, so ordering carries no
// meaning beyond last-one-wins for conflicting colors.
package sgr

import "fmt"

var (
	ErrUnknownAttribute = fmt.Errorf("sgr error - unknown attribute name")
)

// Attribute is a single SGR parameter code.
type Attribute int

const (
	Reset     Attribute = 0
	Bold      Attribute = 1
	Faint     Attribute = 2
	Underline Attribute = 4
	SlowBlink Attribute = 5
	Invert    Attribute = 7
	Strike    Attribute = 9

	NormalIntensity Attribute = 22 // neither bold nor faint
	UnderlineOff    Attribute = 24
	BlinkOff        Attribute = 25
	InvertOff       Attribute = 27
	StrikeOff       Attribute = 29
)

// 4-bit foreground colors.
const (
	Black   Attribute = 30
	Red     Attribute = 31
	Green   Attribute = 32
	Yellow  Attribute = 33
	Blue    Attribute = 34
	Magenta Attribute = 35
	Cyan    Attribute = 36
	White   Attribute = 37

	BrightBlack   Attribute = 90
	BrightRed     Attribute = 91
	BrightGreen   Attribute = 92
	BrightYellow  Attribute = 93
	BrightBlue    Attribute = 94
	BrightMagenta Attribute = 95
	BrightCyan    Attribute = 96
	BrightWhite   Attribute = 97
)

// Background derives the background code for a foreground color. Background
// codes are never defined independently; any new color gets its background
// counterpart through this rule.
func Background(foreground Attribute) Attribute {
	return foreground + 10
}

var names = map[string]Attribute{
	"reset":          Reset,
	"bold":           Bold,
	"faint":          Faint,
	"underline":      Underline,
	"slow-blink":     SlowBlink,
	"invert":         Invert,
	"strike":         Strike,
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// Parse resolves a lowercase attribute or color name, as used in theme
// files, to its code. A "bg-" prefix selects the background counterpart of
// a color.
func Parse(name string) (Attribute, error) {
	if len(name) > 3 && name[:3] == "bg-" {
		attr, ok := names[name[3:]]
		if !ok || attr < Black {
			return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		return Background(attr), nil
	}
	attr, ok := names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return attr, nil
}
