// Package window runs Jezzball in a desktop window with ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-jezzball/internal/audio"
	"github.com/vovakirdan/tui-jezzball/internal/config"
	"github.com/vovakirdan/tui-jezzball/internal/core"
	"github.com/vovakirdan/tui-jezzball/internal/games/jezzball"
	"github.com/vovakirdan/tui-jezzball/internal/jezz"
	"github.com/vovakirdan/tui-jezzball/internal/storage"
)

// Options configures the window front-end.
type Options struct {
	Scale    float64
	TickRate int
	Seed     int64
	Timed    bool
	Store    *storage.Store
	Player   string
	Logger   *log.Logger
	Sound    bool
	Watcher  *config.Watcher
}

var (
	colorBackground = color.RGBA{R: 12, G: 14, B: 24, A: 255}
	colorCaptured   = color.RGBA{R: 40, G: 70, B: 140, A: 255}
	colorOpen       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorBorder     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorBall       = color.RGBA{R: 235, G: 60, B: 50, A: 255}
	colorStrip      = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	colorCursor     = color.RGBA{R: 90, G: 230, B: 230, A: 255}
	colorText       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorBar        = color.RGBA{R: 60, G: 180, B: 90, A: 255}
	colorGoal       = color.RGBA{R: 250, G: 210, B: 60, A: 255}
)

// Window implements ebiten.Game around a jezzball.Game.
type Window struct {
	game    *jezzball.Game
	opts    Options
	logger  *log.Logger
	face    text.Face
	layout  layout
	runtime core.RuntimeConfig

	lastCursor core.Point
	scoreSaved bool
	status     string
	statusTTL  int
}

// New creates a window for a new game. The field size comes from the
// loaded config.
func New(opts Options) (*Window, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg, err := jezzball.LoadConfig()
	if err != nil {
		return nil, err
	}

	g := jezzball.New()
	if opts.Timed {
		g = jezzball.NewTimed()
	}
	runtime := jezzball.FieldRuntime(cfg.Field.Width, cfg.Field.Height, opts.TickRate, opts.Seed)
	g.Reset(runtime)
	if err := g.ConfigError(); err != nil {
		return nil, err
	}

	w := &Window{
		game:   g,
		opts:   opts,
		logger: logger.With("game", g.ID(), "frontend", "window"),
		face:   text.NewGoXFace(basicfont.Face7x13),
		layout: layout{
			field:  g.View().Field,
			origin: g.FieldOrigin(),
			scale:  opts.Scale,
		},
		runtime:    runtime,
		lastCursor: core.Point{X: -1, Y: -1},
	}
	return w, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := New(opts)
	if err != nil {
		return err
	}

	width, height := w.layout.size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetTPS(opts.TickRate)

	w.logger.Info("window opened", "width", width, "height", height)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	w.pollReload()

	in := w.input()
	if in.Has(core.ActionRestart) && w.game.State().GameOver {
		w.runtime.Seed = time.Now().UnixNano()
		w.game.Reset(w.runtime)
		w.scoreSaved = false
		w.logger.Info("game restarted", "seed", w.runtime.Seed)
		return nil
	}

	res := w.game.Step(in)

	for _, e := range res.Events {
		w.logger.Debug(e.Kind.String(), "level", e.Level, "lives", e.Lives, "area", e.Area)
	}
	if w.opts.Sound {
		audio.PlayEvents(res.Events)
	}
	if res.State.GameOver && !w.scoreSaved {
		w.saveScore(res.State)
		w.scoreSaved = true
	}
	if w.statusTTL > 0 {
		w.statusTTL--
	}
	return nil
}

// input reads mouse and keyboard into an InputFrame.
func (w *Window) input() core.InputFrame {
	in := core.NewInputFrame()

	cell, inside := w.layout.pixelToCell(ebiten.CursorPosition())
	if inside && cell != w.lastCursor {
		in.SetPointer(cell.X, cell.Y)
		w.lastCursor = cell
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inside {
		in.SetPress(cell.X, cell.Y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		in.Set(core.ActionRotate)
	}

	keys := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeySpace, core.ActionCapture},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyR, core.ActionRestart},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Set(k.action)
		}
	}
	return in
}

func (w *Window) pollReload() {
	if w.opts.Watcher == nil {
		return
	}
	select {
	case u, ok := <-w.opts.Watcher.Updates:
		if !ok {
			w.opts.Watcher = nil
			return
		}
		if u.Err == nil {
			u.Err = w.game.ApplyConfig(u.Config)
		}
		if u.Err != nil {
			w.logger.Warn("config reload failed", "path", u.Path, "err", u.Err)
			w.setStatus("config error")
			return
		}
		w.logger.Info("config reloaded", "path", u.Path)
		w.setStatus("config reloaded, applies next level")
	default:
	}
}

func (w *Window) saveScore(state core.GameState) {
	if w.opts.Store == nil || state.Score <= 0 {
		return
	}
	if _, err := w.opts.Store.SaveScore(w.game.ID(), w.opts.Player, state.Score, state.Level); err != nil {
		w.logger.Error("cannot save score", "err", err)
	}
}

func (w *Window) setStatus(s string) {
	w.status = s
	w.statusTTL = 3 * w.opts.TickRate
}

// Draw renders the field and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := w.game.View()
	s := float32(w.layout.scale)

	fx, fy := w.layout.unitToPixel(0, 0)
	fw, fh := float32(v.Field.W)*s, float32(v.Field.H)*s
	vector.FillRect(screen, fx, fy, fw, fh, colorCaptured, false)
	for _, r := range v.Regions {
		x, y := w.layout.unitToPixel(float64(r.X), float64(r.Y))
		vector.FillRect(screen, x, y, float32(r.W)*s, float32(r.H)*s, colorOpen, false)
	}
	vector.StrokeRect(screen, fx-1, fy-1, fw+2, fh+2, 2, colorBorder, false)

	if v.Growing {
		x, y := w.layout.unitToPixel(v.Strip.X, v.Strip.Y)
		vector.FillRect(screen, x, y, float32(v.Strip.W)*s, float32(v.Strip.H)*s, colorStrip, false)
	}

	for _, b := range v.Balls {
		cx, cy := w.layout.unitToPixel(b.X+b.W/2, b.Y+b.H/2)
		vector.FillCircle(screen, cx, cy, float32(b.W/2)*s, colorBall, true)
	}

	if v.Phase == jezz.PhasePlaying && !v.Growing {
		w.drawCursor(screen, v)
	}
	w.drawHUD(screen, v)
}

// drawCursor draws a short bar in the direction the next line will grow.
func (w *Window) drawCursor(screen *ebiten.Image, v jezz.View) {
	cx, cy := w.layout.unitToPixel(float64(v.Cursor.X), float64(v.Cursor.Y))
	const arm = 10
	if v.Facing == jezz.FacingVertical {
		vector.StrokeLine(screen, cx, cy-arm, cx, cy+arm, 2, colorCursor, false)
		return
	}
	vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, 2, colorCursor, false)
}

func (w *Window) drawHUD(screen *ebiten.Image, v jezz.View) {
	state := w.game.State()
	clock := w.game.Clock()
	lives := fmt.Sprintf("%d", v.Lives)
	if w.game.Config().Gameplay.Cheat {
		lives = "inf"
	}
	line := fmt.Sprintf("Level %d   Balls %d   Score %d   Time %02d:%02d   Lives %s",
		v.Level, len(v.Balls), state.Score, clock/60, clock%60, lives)
	w.drawText(screen, line, margin, 4)

	// Progress bar with goal marker.
	width, _ := w.layout.size()
	barW := float32(width - 2*margin)
	barY := float32(22)
	vector.FillRect(screen, margin, barY, barW, 8, colorOpen, false)
	vector.FillRect(screen, margin, barY, barW*float32(v.Progress), 8, colorBar, false)
	gx := margin + barW*float32(v.Goal)
	vector.StrokeLine(screen, gx, barY-2, gx, barY+10, 2, colorGoal, false)

	var overlay string
	switch {
	case v.Phase == jezz.PhaseGameOver:
		overlay = fmt.Sprintf("GAME OVER  score %d  (R restart, Esc quit)", state.Score)
	case v.Phase == jezz.PhaseLevelComplete:
		overlay = fmt.Sprintf("LEVEL %d COMPLETE  next in %d", v.Level, w.game.NextLevelIn())
	case state.Paused:
		overlay = "PAUSED"
	case w.statusTTL > 0:
		overlay = w.status
	}
	if overlay != "" {
		_, height := w.layout.size()
		w.drawText(screen, overlay, margin+4, height/2)
	}
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, w.face, op)
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.size()
}
