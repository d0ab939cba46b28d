package core

// Color is the role of a screen cell. Front-ends map roles to real colors,
// so a terminal theme or the window palette can change without touching
// game code.
type Color uint8

// Cell roles.
const (
	ColorDefault  Color = iota // terminal default, used for open field
	ColorText                  // plain values and messages
	ColorLabel                 // HUD labels and hints
	ColorBorder                // field frame
	ColorCaptured              // captured area
	ColorBall
	ColorStrip   // growing capture line
	ColorCursor  // next capture start and facing
	ColorLevel   // level number
	ColorScore   // score value
	ColorLives   // remaining lives
	ColorBar     // progress bar below the goal
	ColorBarGoal // progress bar once the goal is reached
	ColorGoal    // goal marker on the progress bar
	ColorWarning // low time, game over, configuration errors
	ColorSuccess // level complete
	ColorNotice  // pause banner and status messages
)

// NumColors is the number of defined roles.
const NumColors = int(ColorNotice) + 1
