package rocket

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Visual characters for rendering
const (
	RocketChar = '█'
	NoseChar   = '▶'
	PipeChar   = '█'
	CapTop     = '▄'
	CapBottom  = '▀'
	GroundChar = '═'
)

// Draw maps a world onto dst. It keeps no state: world units are scaled so
// the playfield fills every row but the last, which holds the ground line.
func Draw(dst *core.Screen, w World, p Params) {
	dst.Clear()

	cols := dst.Width()
	rows := dst.Height() - 1
	if cols <= 0 || rows <= 0 {
		return
	}
	sx := float64(cols) / p.ScreenWidth
	sy := float64(rows) / p.ScreenHeight

	dst.DrawHLine(0, rows, cols, GroundChar, core.ColorGray)

	for _, o := range w.Obstacles {
		drawObstacle(dst, o, p, sx, sy, rows)
	}

	x0, x1 := span(w.Body.X, w.Body.X+p.BodySize, sx)
	y0, y1 := span(w.Body.Y, w.Body.Y+p.BodySize, sy)
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), RocketChar, core.ColorRed)
	dst.SetColor(x1-1, y0, NoseChar, core.ColorOrange)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", w.Score), core.ColorYellow)
}

func drawObstacle(dst *core.Screen, o Obstacle, p Params, sx, sy float64, rows int) {
	x0, x1 := span(o.X, o.X+p.ObstacleWidth, sx)
	w := x1 - x0

	topEnd := cell(o.GapTop, sy)
	if topEnd > 0 {
		dst.DrawRect(core.NewRect(x0, 0, w, topEnd), PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, topEnd-1, w, CapTop, core.ColorBrightGreen)
	}

	bottomStart := cell(o.GapTop+p.GapSize, sy)
	if bottomStart < rows {
		dst.DrawRect(core.NewRect(x0, bottomStart, w, rows-bottomStart), PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, bottomStart, w, CapBottom, core.ColorBrightGreen)
	}
}

// span converts the world interval [a, b) to cells, never narrower than one.
func span(a, b, scale float64) (int, int) {
	start := cell(a, scale)
	end := int(math.Ceil(b * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

func cell(v, scale float64) int {
	return int(math.Floor(v * scale))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
