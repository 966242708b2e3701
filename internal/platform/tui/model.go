package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/aimtrainer/internal/core"
	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

// Minimum terminal size the field is drawn at.
const (
	minScreenW = 40
	minScreenH = 10
)

// trainerView is the screen currently shown by the trainer.
type trainerView int

const (
	viewField trainerView = iota
	viewSettings
	viewResults
)

// TrainerOptions configures a trainer run.
type TrainerOptions struct {
	Settings trainer.Settings
	Config   core.RuntimeConfig
	Lang     *i18n.Store
	Logger   *log.Logger
}

// Outcome reports how a trainer run finished.
type Outcome struct {
	Settings   trainer.Settings  // settings in effect when the trainer closed
	Results    []trainer.Results // every completed session, oldest first
	BackToMenu bool
	Quit       bool
}

// TrainerModel is the Bubble Tea model for the aim trainer.
type TrainerModel struct {
	session     *trainer.Session
	mailbox     *trainer.Mailbox
	unsubscribe func()

	lang   *i18n.Store
	logger *log.Logger
	config core.RuntimeConfig
	screen *core.Screen

	keys      TrainerKeyMap
	keyMapper *KeyMapper
	help      help.Model

	view    trainerView
	panel   settingsPanel
	results resultsView
	history []trainer.Results
	notice  string

	quitting   bool
	backToMenu bool
}

// NewTrainerModel creates a trainer with an idle session sized to the terminal.
func NewTrainerModel(opts TrainerOptions) TrainerModel {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session := trainer.New(trainer.Options{
		Settings: opts.Settings,
		Width:    cfg.FieldWidth(),
		Height:   cfg.FieldHeight(),
		Seed:     cfg.Seed,
		Logger:   logger,
	})
	mailbox := trainer.NewMailbox(0)
	keys := DefaultTrainerKeyMap()

	return TrainerModel{
		session:     session,
		mailbox:     mailbox,
		unsubscribe: session.Subscribe(mailbox.Send),
		lang:        opts.Lang,
		logger:      logger,
		config:      cfg,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH-core.HelpRows),
		keys:        keys,
		keyMapper:   NewKeyMapper(keys),
		help:        help.New(),
	}
}

// Init starts listening for session events.
func (m TrainerModel) Init() tea.Cmd {
	return m.waitForEvent()
}

// waitForEvent returns a command that waits for the next session event.
func (m TrainerModel) waitForEvent() tea.Cmd {
	mailbox := m.mailbox
	return func() tea.Msg {
		evt, ok := mailbox.Receive()
		if !ok {
			return nil
		}
		return evt
	}
}

// Update handles messages and updates the model state.
func (m TrainerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case frameTickMsg:
		if m.session.OnFrame(msg.Token) {
			return m, frameCmd(m.config.TickRate, msg.Token)
		}
		return m, nil

	case secondTickMsg:
		if m.session.OnSecond(msg.Token) {
			return m, secondCmd(msg.Token)
		}
		return m, nil

	case trainer.SessionEndedEvent:
		m.history = append(m.history, msg.Results)
		m.results = newResultsView(msg.Results, m.lang, m.config.ScreenW, m.config.ScreenH)
		m.view = viewResults
		m.notice = ""
		return m, m.waitForEvent()

	case trainer.PhaseChangedEvent:
		m.logger.Debug("phase changed", "from", msg.From, "to", msg.To)
		return m, m.waitForEvent()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m TrainerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.close()
		return m, tea.Quit
	case core.ActionLanguage:
		lang := m.lang.Next()
		m.logger.Debug("language changed", "lang", lang)
		if m.view == viewResults {
			// Table rows hold rendered text.
			m.results.resize(m.config.ScreenW, m.config.ScreenH)
		}
		return m, nil
	}

	switch m.view {
	case viewSettings:
		return m.handleSettingsAction(action)
	case viewResults:
		return m.handleResultsKey(msg, action)
	default:
		return m.handleFieldAction(action)
	}
}

func (m TrainerModel) handleFieldAction(action core.Action) (tea.Model, tea.Cmd) {
	before := m.session.FrameToken()
	m.notice = ""

	switch action {
	case core.ActionPause:
		m.session.PauseToggle()
	case core.ActionReset:
		m.session.ResetSession()
	case core.ActionConfirm:
		if m.session.Phase() == trainer.PhaseIdle {
			m.session.StartSession() //nolint:errcheck // idle always starts
		}
	case core.ActionSettings:
		m.openSettings()
	case core.ActionBack:
		m.backToMenu = true
		m.close()
		return m, tea.Quit
	}

	return m, m.loops(before)
}

func (m TrainerModel) handleSettingsAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.panel.up()
	case core.ActionDown:
		m.panel.down()
	case core.ActionLeft:
		m.panel.adjust(-1)
	case core.ActionRight:
		m.panel.adjust(1)
	case core.ActionConfirm:
		if err := m.session.ApplySettings(m.panel.draft); err != nil {
			m.notice = m.lang.T("training.settingsLocked")
			m.logger.Warn("settings rejected", "err", err)
		}
		m.view = viewField
	case core.ActionBack, core.ActionSettings:
		m.view = viewField
		if m.session.Phase() == trainer.PhaseEnded {
			m.view = viewResults
		}
	}
	return m, nil
}

func (m TrainerModel) handleResultsKey(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionConfirm, core.ActionReset:
		m.session.ResetSession()
		m.view = viewField
		return m, nil
	case core.ActionSettings:
		m.openSettings()
		return m, nil
	case core.ActionBack:
		m.backToMenu = true
		m.close()
		return m, tea.Quit
	}

	// Arrow keys scroll the recommendations
	var cmd tea.Cmd
	m.results, cmd = m.results.update(msg)
	return m, cmd
}

// openSettings shows the settings panel when no session is live.
func (m *TrainerModel) openSettings() {
	switch m.session.Phase() {
	case trainer.PhaseRunning, trainer.PhasePaused:
		m.notice = m.lang.T("training.settingsLocked")
	default:
		m.panel = newSettingsPanel(m.session.Settings())
		m.view = viewSettings
	}
}

// handleMouse forwards left clicks on the field to the session.
func (m TrainerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != viewField || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cell, ok := m.config.CellBox(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	// The whole cell counts, matching the cells targetRect draws.
	before := m.session.FrameToken()
	outcome := m.session.HandleAreaClick(cell)
	m.logger.Debug("click", "col", msg.X, "row", msg.Y, "outcome", outcome)
	if outcome == trainer.ClickStarted {
		m.notice = ""
	}
	return m, m.loops(before)
}

// loops schedules the frame and countdown loops when an operation started
// a new run. Existing runs keep their own ticks going.
func (m TrainerModel) loops(before trainer.Token) tea.Cmd {
	if m.session.Phase() != trainer.PhaseRunning || m.session.FrameToken() == before {
		return nil
	}
	return tea.Batch(
		frameCmd(m.config.TickRate, m.session.FrameToken()),
		secondCmd(m.session.SecondToken()),
	)
}

// handleResize processes window resize events.
func (m TrainerModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-core.HelpRows)
	m.session.Resize(m.config.FieldWidth(), m.config.FieldHeight())
	m.help.Width = msg.Width
	if m.view == viewResults {
		m.results.resize(msg.Width, msg.Height)
	}
	return m, nil
}

// close detaches the model from the session. Safe to call more than once.
func (m *TrainerModel) close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.mailbox.Close()
}

// View renders the current state to a string for display.
func (m TrainerModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSettings:
		return m.panel.view(m.lang, m.config.ScreenW) + "\n\n" + m.help.View(m.keys)
	case viewResults:
		return m.results.view(m.lang, m.config.ScreenW)
	}

	if m.config.ScreenW < minScreenW || m.config.ScreenH < minScreenH {
		return m.lang.Format("training.tooSmall", map[string]string{
			"width":  fmt.Sprint(m.config.ScreenW),
			"height": fmt.Sprint(m.config.ScreenH),
		})
	}

	m.renderField()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// renderField draws the HUD, targets and overlays into the screen buffer.
func (m TrainerModel) renderField() {
	snap := m.session.Snapshot()
	s := m.screen
	s.Clear()

	hud := fmt.Sprintf("%s %s  %s %d  %s %d  %s %.0f%%",
		m.lang.T("training.time"), formatDuration(snap.Remaining),
		m.lang.T("training.hits"), snap.Hits,
		m.lang.T("training.misses"), snap.Misses,
		m.lang.T("training.accuracy"), snap.Accuracy)
	rtl := m.lang.Direction() == i18n.RTL
	m.drawAligned(0, hud, core.ColorBrightWhite, rtl)
	if m.notice != "" {
		m.drawAligned(0, m.notice, core.ColorYellow, !rtl)
	}

	for _, t := range snap.Targets {
		s.FillRect(targetRect(t.Box(), m.config), '█', t.Color)
	}

	switch snap.Phase {
	case trainer.PhaseIdle:
		m.drawBanner(m.lang.T("training.clickToStart"), core.ColorCyan)
	case trainer.PhasePaused:
		m.drawBanner(m.lang.T("training.paused"), core.ColorYellow)
	}
}

// drawBanner draws a boxed message in the middle of the field, over targets.
func (m TrainerModel) drawBanner(text string, c core.Color) {
	s := m.screen
	w := runewidth.StringWidth(text) + 4
	mid := core.HUDRows + m.config.FieldRows()/2
	r := core.NewRect((s.Width()-w)/2, mid-1, w, 3)

	s.FillRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, c)
	s.DrawTextCentered(mid, text, c)
}

// drawAligned writes text on row y against the left edge, or the right
// edge when right is set.
func (m TrainerModel) drawAligned(y int, text string, c core.Color, right bool) {
	x := 0
	if right {
		x = max(m.screen.Width()-runewidth.StringWidth(text), 0)
	}
	m.screen.DrawText(x, y, text, c)
}

// Session returns the session driven by the model.
func (m TrainerModel) Session() *trainer.Session {
	return m.session
}

// Outcome returns how the run finished.
func (m TrainerModel) Outcome() Outcome {
	return Outcome{
		Settings:   m.session.Settings(),
		Results:    m.history,
		BackToMenu: m.backToMenu,
		Quit:       m.quitting,
	}
}

// RunTrainer starts the Bubble Tea program for one trainer run.
func RunTrainer(opts TrainerOptions) (Outcome, error) {
	if opts.Lang == nil {
		return Outcome{}, errors.New("tui: trainer needs a language store")
	}
	model := NewTrainerModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report clicks with cell coordinates
	)

	final, err := p.Run()
	if err != nil {
		model.close()
		return Outcome{}, err
	}
	tm, ok := final.(TrainerModel)
	if !ok {
		model.close()
		return Outcome{}, errors.New("tui: unexpected final model")
	}
	tm.close()
	return tm.Outcome(), nil
}
