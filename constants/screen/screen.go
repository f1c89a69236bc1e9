/*
 * Copyright (C) 2025 by vcsaturninus
 */

package screen

import "github.com/vcsaturninus/termite/constants/ctrl"

// Pre-built composite sequences for erasing screen and line regions.
const (
	ClearDown   = ctrl.CSI + "0J" // clears from cursor until end of screen
	ClearUp     = ctrl.CSI + "1J" // clears from cursor to beginning of screen
	ClearScreen = ctrl.CSI + "2J" // clears entire screen

	ClearToEnd   = ctrl.CSI + "0K" // clears from cursor to end of line
	ClearToStart = ctrl.CSI + "1K" // clears from cursor to start of line
	ClearLine    = ctrl.CSI + "2K" // clears entire line
)
