package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

// View identifies which screen the app is showing.
type View int

const (
	ViewMenu View = iota
	ViewPlaying
	ViewHighScores
	ViewGameOver
)

func (v View) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewPlaying:
		return "playing"
	case ViewHighScores:
		return "highScores"
	case ViewGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

var gameOverItems = []string{"Play Again", "Main Menu"}

// AppOptions configures an AppModel.
type AppOptions struct {
	// Store persists scores and run history. It may be nil.
	Store *storage.Store
	// Params are the run constants.
	Params rocket.Params
	// Config carries screen size, tick rate and seed. A zero seed picks a
	// fresh time-based seed for every run.
	Config core.RuntimeConfig
	// Logger receives run and storage events. Nil discards them.
	Logger *log.Logger
	// StartPlaying skips the menu and begins a run immediately.
	StartPlaying bool
}

// AppModel is the top-level Bubble Tea model: menu, run, high scores and
// game over, with the score recorded once at the end of every run.
type AppModel struct {
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedSeed  bool
	game       *rocket.Game
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	view       View
	menu       MenuModel
	scores     ScoreboardModel
	overCursor int
	lastResult *rocket.RunResult
	lastRank   int
	tickGen    int
	quitting   bool
}

// NewAppModel creates the app. It fails only if the params are invalid.
func NewAppModel(opts AppOptions) (AppModel, error) {
	game, err := rocket.NewGame(opts.Params)
	if err != nil {
		return AppModel{}, err
	}

	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := AppModel{
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		fixedSeed:  cfg.Seed != 0,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		view:       ViewMenu,
		menu:       NewMenuModel(cfg.ScreenW, cfg.ScreenH),
		scores:     NewScoreboardModel(opts.Store, cfg.ScreenW, cfg.ScreenH),
	}
	m.refreshBest()
	if opts.StartPlaying {
		m.beginRun()
	}
	return m, nil
}

// Init starts the tick loop when the app opens straight into a run.
func (m AppModel) Init() tea.Cmd {
	if m.view == ViewPlaying {
		return tickCmd(m.config.TickRate, m.tickGen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		switch m.view {
		case ViewMenu:
			return m.updateMenu(msg)
		case ViewPlaying:
			return m.updatePlaying(msg)
		case ViewHighScores:
			return m.updateHighScores(msg)
		case ViewGameOver:
			return m.updateGameOver(msg)
		}

	case TickMsg:
		if m.view != ViewPlaying || msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleResize updates screen size. The run keeps going: the renderer scales
// world units to whatever the terminal offers.
func (m AppModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.menu.SetSize(msg.Width, msg.Height)
	m.scores, _ = m.scores.Update(msg)
	return m, nil
}

func (m AppModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice MenuChoice
	m.menu, choice = m.menu.Update(msg)

	switch choice {
	case MenuStart:
		return m, m.beginRun()

	case MenuHighScores:
		m.scores.Reload()
		m.view = ViewHighScores

	case MenuResetScores:
		m.resetScores()

	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m AppModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving mid-run is only offered while paused; the run is abandoned
	// without a score.
	if m.inputFrame.Has(core.ActionBack) && m.game.State().Paused {
		m.logger.Debug("run abandoned", "score", m.game.State().Score)
		m.toMenu()
	}

	return m, nil
}

func (m AppModel) updateHighScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.overCursor > 0 {
			m.overCursor--
		}

	case MenuActionDown:
		if m.overCursor < len(gameOverItems)-1 {
			m.overCursor++
		}

	case MenuActionSelect:
		if m.overCursor == 0 {
			return m, m.beginRun()
		}
		m.toMenu()

	case MenuActionBack:
		m.toMenu()

	default:
		if msg.String() == "r" {
			return m, m.beginRun()
		}
	}

	return m, nil
}

// handleTick advances the run by one frame and stops the loop when it ends.
func (m AppModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.Ended {
		m.finishRun()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// beginRun resets the game and starts a new tick loop generation.
func (m *AppModel) beginRun() tea.Cmd {
	cfg := m.config
	if !m.fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	m.game.Reset(cfg)
	m.inputFrame.Clear()
	m.lastResult = nil
	m.lastRank = 0
	m.overCursor = 0
	m.view = ViewPlaying
	m.tickGen++
	m.logger.Debug("run started", "seed", cfg.Seed)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// finishRun records the ended run. It runs exactly once per run because
// Step reports Ended only on the terminal tick.
func (m *AppModel) finishRun() {
	res := m.game.Result()
	m.lastResult = res
	m.view = ViewGameOver

	if m.store == nil {
		m.logger.Info("run finished", "score", res.FinalScore, "reason", res.Reason, "ticks", res.Ticks)
		return
	}

	rank, err := m.store.SaveScore(res.FinalScore)
	if err != nil {
		m.logger.Error("cannot save high score", "error", err)
	}
	m.lastRank = rank

	runID, err := m.store.RecordRun(res.FinalScore, res.Reason.String(), res.Ticks)
	if err != nil {
		m.logger.Error("cannot record run", "error", err)
	}

	m.logger.Info("run finished",
		"run", runID,
		"score", res.FinalScore,
		"reason", res.Reason,
		"ticks", res.Ticks,
		"rank", rank,
	)
}

func (m *AppModel) resetScores() {
	if m.store == nil {
		m.menu.SetNotice("No score storage available.")
		return
	}
	if err := m.store.ClearScores(); err != nil {
		m.logger.Error("cannot clear high scores", "error", err)
		m.menu.SetNotice("Could not clear high scores.")
		return
	}
	m.logger.Info("high scores cleared")
	m.refreshBest()
	m.menu.SetNotice("High scores cleared!")
}

func (m *AppModel) toMenu() {
	m.inputFrame.Clear()
	m.view = ViewMenu
	m.refreshBest()
}

func (m *AppModel) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("cannot read high score", "error", err)
		return
	}
	m.menu.SetBest(best)
}

// saveScreenshot saves the current frame to ~/.arcade/screenshots.
func (m *AppModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case ViewPlaying:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	case ViewHighScores:
		return m.scores.View()
	case ViewGameOver:
		return m.gameOverView()
	default:
		return m.menu.View()
	}
}

func (m AppModel) gameOverView() string {
	var b strings.Builder
	width := m.config.ScreenW

	score, reason := 0, ""
	if m.lastResult != nil {
		score = m.lastResult.FinalScore
		reason = m.lastResult.Reason.String()
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render("Game Over!"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Score: %d", score), width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(reason), width))
	b.WriteString("\n")
	if m.lastRank == 1 {
		b.WriteString(centerText(noticeStyle.Render("New high score!"), width))
	} else if m.lastRank > 1 {
		b.WriteString(centerText(noticeStyle.Render(fmt.Sprintf("Rank #%d", m.lastRank)), width))
	}
	b.WriteString("\n\n")

	for i, item := range gameOverItems {
		line := "  " + item + "  "
		if i == m.overCursor {
			line = selectedStyle.Render("> " + item + "  ")
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	return b.String()
}

// CurrentView returns the screen the app is showing.
func (m AppModel) CurrentView() View {
	return m.view
}

// LastResult returns the outcome of the most recent run, if any.
func (m AppModel) LastResult() *rocket.RunResult {
	return m.lastResult
}

// Run starts an interactive session on the local terminal.
func Run(opts AppOptions) error {
	model, err := NewAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
