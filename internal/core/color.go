package core

// Color is the role a screen cell plays on the board. The front end decides
// how each role looks in a terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorWallLost // static walls once the board is unsolvable
	ColorWallWon  // static walls after the last level
	ColorTrail
	ColorGoal
	ColorRocket
	ColorRocketSpent // rocket with no turns left
	ColorHUD
	ColorNotice
)
