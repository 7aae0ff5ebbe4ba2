package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}

	// UI palette.
	LinkBlue     = Color{0.2, 0.45, 0.9, 1}
	SubtextGray  = Color{0.55, 0.57, 0.6, 1}
	FrameGray    = Color{0.7, 0.7, 0.72, 1}
	RowParentBg  = Color{0.93, 0.93, 0.95, 1}
	RowChildBg   = Color{0.97, 0.97, 0.98, 1}
	ButtonGray   = Color{0.85, 0.85, 0.87, 1}
	ButtonSunken = Color{0.68, 0.68, 0.72, 1}

	// Environment tags.
	EnvDevGreen  = Color{0.25, 0.6, 0.3, 1}
	EnvUatYellow = Color{0.75, 0.65, 0.15, 1}
	EnvStgOrange = Color{0.85, 0.5, 0.15, 1}
	EnvProdRed   = Color{0.8, 0.2, 0.2, 1}
)
