package constants

// Scene Look
const (
	// Title is drawn centered near the top edge
	Title = "SOLAR SYSTEM SIMULATOR"

	// TitleGlyphWidth is the assumed world width per title character for centering
	TitleGlyphWidth = 20.5

	// TitleTopMargin is the distance of the title baseline below the top edge
	TitleTopMargin = 40.0

	// LabelOffset shifts planet names right and up from the planet center
	LabelOffset = 5.0

	// OrbitRingGray is the gray level of orbit rings
	OrbitRingGray = 0.3

	// StarPointSize and AsteroidPointSize are point sizes in world pixels
	StarPointSize     = 2.0
	AsteroidPointSize = 3.0
)

// Terminal Projection
const (
	// CellAspectRatio is the height/width ratio of a terminal cell
	CellAspectRatio = 2.1
)
