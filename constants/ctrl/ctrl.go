/*
 * Copyright (C) 2025 by vcsaturninus
 */

package ctrl

// C0 control bytes, usable standalone or as escape-sequence building blocks.
const (
	Bell           = "\a"
	Backspace      = "\b"
	Tab            = "\t"
	LineFeed       = "\n"
	VerticalTab    = "\v"
	FormFeed       = "\f"
	CarriageReturn = "\r"
	Escape         = ""
	Delete         = ""

	// CSI is the Control Sequence Introducer; most terminal control
	// sequences start with it.
	CSI = Escape + "["
)
