package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
)

const (
	paddleGlyph = '█'
	ballGlyph   = '●'
	netGlyph    = '│'

	// Ball heat saturates at this multiple of the serve speed
	heatSpan = 2.0

	instructions = "↑↓ move  SPACE restart  P pause  M mute  Q quit"
	restartHint  = "Press SPACE to restart."
	tooSmallText = "Terminal too small"
)

// Screen is the subset of tcell.Screen the renderer draws on
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// HUD carries frame data that lives outside the match state
type HUD struct {
	Paused  bool
	Muted   bool
	Elapsed time.Duration
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen Screen
	cfg    *config.Config
	layout Layout
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen Screen, cfg *config.Config) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, cfg: cfg}
}

// Layout returns the layout used by the last frame
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame draws one complete frame from a state snapshot
// The screen size is re-read every frame so resizes take effect on the next draw
func (r *TerminalRenderer) RenderFrame(s engine.MatchState, hud HUD) {
	cols, rows := r.screen.Size()
	r.layout = NewLayout(cols, rows, r.cfg)
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)

	r.fill(base)

	if !r.layout.Fits() {
		r.drawCentered(rows/2, tooSmallText, base)
		r.screen.Show()
		return
	}

	r.drawScore(s, base)
	r.drawNet(base)

	if s.Running {
		r.drawPaddle(r.layout.Column(r.cfg.AIPaddleX()+r.cfg.Paddle.Width/2), s.AIY, base.Foreground(RgbPaddleAI))
		r.drawPaddle(r.layout.Column(r.cfg.HumanPaddleX()+r.cfg.Paddle.Width/2), s.HumanY, base.Foreground(RgbPaddleUser))
		r.drawBall(s, base)
		if hud.Paused {
			r.drawCentered(r.layout.CourtTop+r.layout.CourtRows/2, " PAUSED ", base.Foreground(RgbFlag).Bold(true))
		}
	} else {
		r.drawGameOver(s, base)
	}

	r.drawStatusBar(s, hud)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.layout.Rows; y++ {
		for x := 0; x < r.layout.Cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawScore(s engine.MatchState, base tcell.Style) {
	text := fmt.Sprintf("AI  %d - %d  PLAYER", s.ScoreAI, s.ScoreHuman)
	r.drawCentered(0, text, base.Foreground(RgbScore).Bold(true))
}

func (r *TerminalRenderer) drawNet(base tcell.Style) {
	col := r.layout.Cols / 2
	style := base.Foreground(RgbNet)
	for i := 0; i < r.layout.CourtRows; i += 2 {
		r.screen.SetContent(col, r.layout.CourtTop+i, netGlyph, nil, style)
	}
}

// drawPaddle fills the rows covered by a paddle centred at y
func (r *TerminalRenderer) drawPaddle(col int, y float64, style tcell.Style) {
	half := r.cfg.Paddle.Height / 2
	top := r.layout.Row(y + half)
	bottom := r.layout.Row(y - half)
	for row := top; row <= bottom; row++ {
		r.screen.SetContent(col, row, paddleGlyph, nil, style)
	}
}

func (r *TerminalRenderer) drawBall(s engine.MatchState, base tcell.Style) {
	speed := s.BallSpeed()
	serve := r.cfg.Ball.BaseSpeed
	heat := (speed - serve) / (serve * heatSpan)
	style := base.Foreground(BallColor(heat))
	r.screen.SetContent(r.layout.Column(s.BallX), r.layout.Row(s.BallY), ballGlyph, nil, style)
}

// drawGameOver shows the result over an empty court
func (r *TerminalRenderer) drawGameOver(s engine.MatchState, base tcell.Style) {
	mid := r.layout.CourtTop + r.layout.CourtRows/2
	text, color := GameOverText(s)
	r.drawCentered(mid-1, text, base.Foreground(color).Bold(true))
	r.drawCentered(mid+1, restartHint, base)
}

// GameOverText returns the result line and its color for a finished match
func GameOverText(s engine.MatchState) (string, tcell.Color) {
	winner := s.Winner
	if winner == engine.SideNone {
		winner = engine.SideAI
		if s.ScoreHuman > s.ScoreAI {
			winner = engine.SideHuman
		}
	}
	if winner == engine.SideHuman {
		return fmt.Sprintf("PLAYER WINS! (Score: %d-%d)", s.ScoreHuman, s.ScoreAI), RgbWin
	}
	return fmt.Sprintf("AI WINS! (Score: %d-%d)", s.ScoreAI, s.ScoreHuman), RgbLose
}

// drawStatusBar renders instructions on the left and live flags on the right
// Instructions are dropped first when the row is too narrow
func (r *TerminalRenderer) drawStatusBar(s engine.MatchState, hud HUD) {
	y := r.layout.Rows - 1
	style := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < r.layout.Cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	right := StatusText(s, hud)
	rightX := r.layout.Cols - runewidth.StringWidth(right) - 1
	if runewidth.StringWidth(instructions)+2 < rightX {
		r.drawText(1, y, instructions, style)
	}

	x := max(rightX, 0)
	if hud.Paused || hud.Muted {
		flagStyle := style.Foreground(RgbFlag).Bold(true)
		if hud.Paused {
			x = r.drawText(x, y, "[PAUSED] ", flagStyle)
		}
		if hud.Muted {
			x = r.drawText(x, y, "[MUTED] ", flagStyle)
		}
	}
	r.drawText(x, y, statusMetrics(s, hud), style)
}

// StatusText returns the right-hand status segment
func StatusText(s engine.MatchState, hud HUD) string {
	var flags string
	if hud.Paused {
		flags += "[PAUSED] "
	}
	if hud.Muted {
		flags += "[MUTED] "
	}
	return flags + statusMetrics(s, hud)
}

func statusMetrics(s engine.MatchState, hud HUD) string {
	secs := int(hud.Elapsed / time.Second)
	return fmt.Sprintf("speed %.1f  %02d:%02d", s.BallSpeed(), secs/60, secs%60)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := max((r.layout.Cols-runewidth.StringWidth(text))/2, 0)
	r.drawText(x, y, text, style)
}

// drawText writes text from x, clipping at the right edge, and returns the next free column
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+w > r.layout.Cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
