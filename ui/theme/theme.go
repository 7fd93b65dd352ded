package theme

// Centralized styling for the presentation window. The stimulus surface must
// sit on a neutral dark surround so nothing in the chrome competes with the
// checkerboard luminance.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	// ColorSurround matches the stimulus background gray (RGB 100,100,100) so
	// window padding does not form a visible border around the frames.
	ColorSurround = "#646464"
	ColorText     = "#d8dee9"
	ColorAccent   = "#10b981"
)

// style names configured by InitStyles.
const (
	StyleStateLabel = "state.TLabel"
	StyleMutedLabel = "muted.TLabel"
)

// InitStyles activates the base theme and configures the semantic styles.
// Call once after Tk is initialized, before building views.
func InitStyles() {
	_ = ActivateTheme("azure dark")
	App.Configure(Background(ColorSurround))

	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(ColorAccent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
	StyleConfigure(StyleMutedLabel,
		Foreground(ColorText),
		Background(ColorSurround),
		Padding("2p 1p"),
	)
}
