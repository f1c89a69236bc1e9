/*
 * Copyright (C) 2025 by vcsaturninus
 */

package cursor

import "github.com/vcsaturninus/termite/constants/ctrl"

// Direction is the single-letter suffix that closes a CSI cursor-movement
// sequence.
type Direction string

const (
	Up         Direction = "A" // n rows up
	Down       Direction = "B" // n rows down
	Forward    Direction = "C" // n columns right
	Back       Direction = "D" // n columns left
	NextLine   Direction = "E" // start of line, n rows down
	PrevLine   Direction = "F" // start of line, n rows up
	ScrollUp   Direction = "S" // scroll page up n lines
	ScrollDown Direction = "T" // scroll page down n lines

	// Position addresses the cursor absolutely as row;column, 1-indexed.
	Position Direction = "H"
)

// Show / Hide cursor
const (
	Show = ctrl.CSI + "?25h"
	Hide = ctrl.CSI + "?25l"
)
