package constant

// Digit Sheet Metrics (pixels, one pixel is half a terminal cell)
const (
	// CharWidth and CharHeight are the glyph cell of basicfont.Face7x13
	CharWidth  = 7
	CharHeight = 13

	// CharAscent is the baseline offset inside a glyph cell
	CharAscent = 11

	// CharsCount is the number of glyph cells in "HH:MM:SS"
	CharsCount = 8

	TextWidth  = CharWidth * CharsCount
	TextHeight = CharHeight

	// ColonIndex is the sheet column holding ':' after the ten digits
	ColonIndex = 10

	// SheetGlyphs is the number of glyph columns in the digit sheet
	SheetGlyphs = 11
)

// Penger Walker
const (
	// PengerStepsPerSecond is the walk cadence, one full screen crossing per minute
	PengerStepsPerSecond = 3

	// PengerScale divides the sheet frame size into the drawn size
	PengerScale = 1

	// PengerFrames is the number of walk frames in the penger sheet
	PengerFrames = 2
)

// Colors (RGB)
var (
	MainColor       = [3]int{220, 220, 220}
	PauseColor      = [3]int{220, 120, 120}
	BackgroundColor = [3]int{24, 24, 24}
	HintColor       = [3]int{110, 110, 110}
)

// TitleSuffix is appended to the HH:MM:SS terminal title
const TitleSuffix = " - timer"
