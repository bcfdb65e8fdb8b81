package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black playfield
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // White player
	RgbShot       = tcell.NewRGBColor(255, 255, 255) // White player shots
	RgbBoss       = tcell.NewRGBColor(255, 255, 0)   // Yellow boss
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Yellow boss bullets

	RgbLoadingText = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbTitleText   = tcell.NewRGBColor(0, 0, 255)     // Blue title, pause and result text
	RgbHitText     = tcell.NewRGBColor(255, 0, 0)     // Red hit notice

	RgbStatusBg   = tcell.NewRGBColor(40, 40, 40)    // Dark gray status bar
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbStatusHP   = tcell.NewRGBColor(255, 80, 80)   // Red hit points
	RgbStatusBoss = tcell.NewRGBColor(255, 255, 0)   // Yellow boss health
)

// Glyphs
const (
	GlyphPlayer = '@'
	GlyphShot   = '|'
	GlyphBoss   = '#'
	GlyphBullet = 'o'
)
