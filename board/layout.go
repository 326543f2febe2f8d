package board

const (
	// CrosswordGameLayout is the name of the standard 15x15 layout.
	CrosswordGameLayout = "CrosswordGame"
)

var (
	// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
	// of wingos and blonks.
	CrosswordGameBoard []string
)

func init() {
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   *   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
}

// LayoutByName returns the layout description for a known layout name.
func LayoutByName(name string) ([]string, bool) {
	switch name {
	case CrosswordGameLayout, "":
		return CrosswordGameBoard, true
	}
	return nil, false
}
