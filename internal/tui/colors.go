package tui

// Chrome colors for the demo frame. Widgets inside the frame take their
// colors from the theme store instead.
const (
	ColorBorder       = "#3A3F55" // Grey-blue
	ColorTitle        = "#A78BFA" // Hover, highlights, current step
	ColorLabel        = "#6D7383" // Disabled/muted text
	ColorHelpText     = "240"     // Dark grey for help text
	ColorStatusOn     = "#22C55E" // attached
	ColorStatusOff    = "#EF4444" // detached
	ColorStatusFooter = "#B1B8C7"
)
