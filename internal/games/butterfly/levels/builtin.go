package levels

// ClassicID is the ID of the built-in pack.
const ClassicID = "classic"

// Classic returns the built-in pack of four levels.
func Classic() Pack {
	return Pack{
		ID:     ClassicID,
		Name:   "Classic",
		Source: "builtin",
		Levels: []Level{
			{ID: "01", Name: "Crossroads", Rows: classic01},
			{ID: "02", Name: "Pillars", Rows: classic02},
			{ID: "03", Name: "Cage", Rows: classic03},
			{ID: "04", Name: "Butterfly", Rows: classic04},
		},
	}
}

// YouWonRows is loaded after the last level of a pack. It keeps one goal so
// the board stays playable.
var YouWonRows = []string{
	"                     T",
	"     W W  WWW  W W    ",
	"     W W  W W  W W    ",
	"     WWW  W W  W W    ",
	"      W   W W  W W    ",
	"      W   WWW  WWW    ",
	"                      ",
	"                      ",
	"    W   W WWW W   W   ",
	"    W   W W W WW  W   ",
	"    W   W W W W W W   ",
	"    W W W W W W  WW   ",
	"     W W  WWW W   W   ",
	"                      ",
}

// GameOverRows replaces the board once a level can no longer be solved.
var GameOverRows = []string{
	"                     ",
	"  WWW  WWW W   W WWW ",
	"  W    W W WW WW W   ",
	"  W WW WWW W W W WWW ",
	"  W  W W W W   W W   ",
	"  WWWW W W W   W WWW ",
	"                     ",
	"   WWW W  W WWW WWW  ",
	"   W W W  W W   W W  ",
	"   W W W  W WWW WWW  ",
	"   W W W  W W   WW   ",
	"   WWW  WW  WWW W W  ",
	"                     ",
	"                     ",
}

var classic01 = []string{
	"WWWWWWWWWWW WWWWWWWWWT",
	"WWWWWWWWWW   WWWWWWWW ",
	"WWWWWWWWW             ",
	"WWWWWWWWWW   WWWWWWWW ",
	"WWWWWWWWWWW WWWWWWWWW ",
	"WWWWWWWWWWW WWWWWWWW  ",
	"                      ",
	"  WWWWWWWWW WWWWWWWWWW",
	" WWWWWWWWWW WWWWWWWWWW",
	" WWWWWWWWW  WWWWWWWWWW",
	"            WWWWWWWWWW",
	" WWWWWWWWW  WWWWWWWWWW",
	" WWWWWWWWWW WWWWWWWWWW",
	"SWWWWWWWWWWWWWWWWWWWWW",
}

var classic02 = []string{
	"          WWWW       T",
	"   WWWW   WWWW        ",
	"   WWWW   WWWW        ",
	"   WWWW   WWWW        ",
	"   WWWW   WWWW        ",
	"   WWWW   WWWW   WWWWW",
	"   WWWW   WWWW   WWWWW",
	"   WWWW   WWWW   WWWWW",
	"   WWWW   WWWW   WWWWW",
	"   WWWW   WWWW   WWWWW",
	"   WWWW          WWWWW",
	"   WWWW          WWWWW",
	"   WWWW          WWWWW",
	"s WWWWW          WWWWW",
}

var classic03 = []string{
	"                      ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWW W WWWWWWWW ",
	"                      ",
	" WWWWWWWWW T WWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	" WWWWWWWWWW WWWWWWWWW ",
	"S                     ",
}

var classic04 = []string{
	"          WW          ",
	"          WW          ",
	"         WTTW         ",
	"         W  W         ",
	"W    W   W  W   W    W",
	" TW  W  W    W  W  WT ",
	" W W W W  WW  W W W W ",
	" W  WW W W  W W WW  W ",
	"  W  WW  W  W  WW  W  ",
	"   W W    WW    W W   ",
	"    WW          WW    ",
	"     WWWWW  WWWWW     ",
	"        WW  WW        ",
	"S                     ",
}
