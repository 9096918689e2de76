package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Rows used by the HUD and help lines around the playfield.
const chromeRows = 2

// Nominal pixel size of one terminal cell, used to size compact canvases.
const (
	cellPxW = 10
	cellPxH = 20
)

// Options configures the terminal shell.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     *config.Config
	Levels     *level.Pack
	LevelsPath string // reloaded from disk when Watch is set
	Watch      bool
	Level      int
	Difficulty config.Difficulty
	Muted      bool
	Sound      game.Sounds
	Logger     *log.Logger
}

type reloadMsg struct{ path string }

type watchErrMsg struct{ err error }

// Model is the Bubble Tea model that plays a level session.
type Model struct {
	opts    Options
	session *game.Session
	queue   *game.FrameQueue
	surface *ScreenSurface
	watcher *level.Watcher
	logger  *log.Logger

	keys   GameKeyMap
	mapper *KeyMapper
	help   help.Model
	holds  *holdTracker
	theme  Theme

	width    int
	height   int
	notice   string
	err      error
	quitting bool
}

// NewModel builds the session for the requested level without starting it.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	opts.Runtime = cfg
	if opts.Config == nil {
		def := config.Default()
		opts.Config = &def
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pxW, pxH := canvasFor(opts.Config.World, cfg)
	surface := NewScreenSurface(pxW, pxH, cfg.ScreenW, cfg.ScreenH-chromeRows)
	queue := game.NewFrameQueue()

	session, err := game.NewSession(game.SessionOptions{
		Surface:    surface,
		Scheduler:  queue,
		Levels:     opts.Levels,
		Config:     opts.Config,
		Sound:      opts.Sound,
		Logger:     logger,
		Difficulty: opts.Difficulty,
		Level:      opts.Level,
		Compact:    cfg.Compact,
	})
	if err != nil {
		return Model{}, err
	}
	session.SetMuted(opts.Muted)

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		opts:    opts,
		session: session,
		queue:   queue,
		surface: surface,
		logger:  logger,
		keys:    DefaultGameKeyMap(),
		mapper:  NewKeyMapper(),
		help:    h,
		holds:   newHoldTracker(HoldWindow),
		theme:   DefaultTheme(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}, nil
}

// canvasFor returns the pixel size of the canvas for a terminal area.
func canvasFor(world config.WorldConfig, cfg core.RuntimeConfig) (int, int) {
	w, h := world.Size()
	return core.CanvasSize(w, h, cfg.Compact, cfg.ScreenW*cellPxW, (cfg.ScreenH-chromeRows)*cellPxH)
}

// Session returns the session being played.
func (m Model) Session() *game.Session {
	return m.session
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the level and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start(time.Now())
	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		handleMouse(m.session.Game(), msg, m.width)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		return m.handleReload(msg)

	case watchErrMsg:
		m.logger.Warn("level watcher error", "err", msg.err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Mute):
		m.session.SetMuted(!m.session.Muted())
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.canRestart() {
			return m, nil
		}
		return m.restart(now)
	}

	if k := m.mapper.MapKey(msg); k != core.KeyNone {
		m.holds.press(m.session.Game(), k, now)
	}
	return m, nil
}

func (m Model) canRestart() bool {
	switch m.session.Phase() {
	case game.PhaseDepleted, game.PhaseTerminal:
		return true
	}
	return false
}

// restart replays the current level, or the first one once all levels are
// complete. Compact canvases are resized to the current terminal first.
func (m Model) restart(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.reset()
	if m.opts.Runtime.Compact {
		m.surface.SetPixelSize(canvasFor(m.opts.Config.World, m.opts.Runtime))
	}
	if err := m.session.Restart(now); err != nil {
		m.err = fmt.Errorf("tui: cannot restart level: %w", err)
		return m, tea.Quit
	}
	m.notice = ""
	return m, nil
}

// handleResize processes window resize events. The canvas keeps its size;
// only the cell area it is drawn into changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.surface.Resize(msg.Width, msg.Height-chromeRows)
	return m, nil
}

// handleTick releases expired keys and runs the frames requested since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.release(m.session.Game(), now)
	m.queue.RunPending(now)
	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	pack, err := level.Load(m.opts.LevelsPath)
	if err != nil {
		m.logger.Warn("cannot reload levels", "path", msg.path, "err", err)
		m.notice = "level reload failed"
	} else {
		m.session.SetLevels(pack)
		m.logger.Info("levels reloaded", "path", msg.path, "count", pack.Count())
		m.notice = fmt.Sprintf("reloaded %d levels", pack.Count())
	}
	return m, waitForReload(m.watcher)
}

// waitForReload waits for the next change reported by the watcher.
func waitForReload(w *level.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return reloadMsg{path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHUD())
	b.WriteString("\n")

	rows := core.Max(m.height-chromeRows, 1)
	if overlay := m.renderOverlay(); overlay != "" {
		b.WriteString(lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, overlay))
	} else {
		b.WriteString(RenderScreen(m.surface.Screen()))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHUD() string {
	t := m.theme
	sep := t.HUDSeparator.Render(" │ ")
	parts := []string{
		t.HUDTitle.Render("PLATFORMER"),
		t.HUDValue.Render(fmt.Sprintf("Score %d", m.session.Score())),
		t.HUDValue.Render(fmt.Sprintf("Total %d", m.session.TotalScore())),
		t.HUDValue.Render(fmt.Sprintf("Lives %d", m.session.Lives())),
		t.HUDValue.Render(fmt.Sprintf("Level %d/%d", m.session.Level(), m.session.LevelCount())),
		t.HUDValue.Render(m.session.Difficulty().String()),
	}
	if m.session.Muted() {
		parts = append(parts, t.HUDMuted.Render("muted"))
	}
	if m.notice != "" {
		parts = append(parts, t.HUDSeparator.Render(m.notice))
	}
	return strings.Join(parts, sep)
}

// renderOverlay returns the box shown over the playfield once play stops.
func (m Model) renderOverlay() string {
	t := m.theme
	var title, text string
	switch m.session.Phase() {
	case game.PhaseDepleted:
		title = "GAME OVER"
		text = fmt.Sprintf("Score %d. Press r to restart.", m.session.TotalScore())
	case game.PhaseTerminal:
		title = "ALL LEVELS COMPLETE"
		text = fmt.Sprintf("Total score %d. Press r to play again.", m.session.TotalScore())
	default:
		return ""
	}
	return t.OverlayBox.Render(t.OverlayTitle.Render(title) + "\n\n" + t.OverlayText.Render(text))
}

// TerminalSize returns the size of the controlling terminal, or the default
// screen size when stdout is not a terminal.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		return def.ScreenW, def.ScreenH
	}
	return w, h
}

// watchDir returns the directory to watch for a levels path.
func watchDir(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

// Run plays a session in the terminal until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.session.Stop()

	if opts.Watch && opts.LevelsPath != "" {
		w, err := level.NewWatcher(watchDir(opts.LevelsPath))
		if err != nil {
			return err
		}
		defer w.Close()
		model.watcher = w
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
