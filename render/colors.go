package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White
	RgbNet        = tcell.NewRGBColor(80, 80, 100)   // Dim slate
	RgbPaddleAI   = tcell.NewRGBColor(255, 100, 100) // Soft red
	RgbPaddleUser = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbStatusBar  = tcell.NewRGBColor(40, 42, 58)    // Slightly lifted background
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbFlag       = tcell.NewRGBColor(255, 165, 0)   // Orange for PAUSED/MUTED
	RgbWin        = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbLose       = tcell.NewRGBColor(255, 80, 80)   // Normal red
)

// Ball heat endpoints, blended in Lab space as the rally speeds up
var (
	ballCold = colorful.Color{R: 1, G: 1, B: 1}
	ballHot  = colorful.Color{R: 1, G: 0.35, B: 0.1}
)

// BallColor returns the ball color for heat in [0, 1]
func BallColor(heat float64) tcell.Color {
	heat = min(max(heat, 0), 1)
	r, g, b := ballCold.BlendLab(ballHot, heat).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
