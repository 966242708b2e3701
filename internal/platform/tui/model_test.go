package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aimtrainer/internal/core"
	"github.com/vovakirdan/aimtrainer/internal/i18n"
	"github.com/vovakirdan/aimtrainer/internal/trainer"
)

func newTestLang(t *testing.T) *i18n.Store {
	t.Helper()
	lang, err := i18n.NewStore(i18n.English)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return lang
}

func newTestModel(t *testing.T, settings trainer.Settings) TrainerModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewTrainerModel(TrainerOptions{
		Settings: settings,
		Config:   cfg,
		Lang:     newTestLang(t),
	})
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func update(t *testing.T, m TrainerModel, msg tea.Msg) (TrainerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(TrainerModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected TrainerModel", next)
	}
	return tm, cmd
}

func TestNewTrainerModelSizesScreen(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
	w, h := m.session.FieldSize()
	if w != 640 || h != 352 {
		t.Errorf("FieldSize() = %vx%v, expected 640x352", w, h)
	}
}

func TestFirstClickStartsSession(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, cmd := update(t, m, leftClick(10, 5))
	if m.session.Phase() != trainer.PhaseRunning {
		t.Errorf("Phase() = %v, expected running", m.session.Phase())
	}
	if cmd == nil {
		t.Error("starting a session should schedule the frame and countdown loops")
	}
	if m.session.Hits() != 0 || m.session.Misses() != 0 {
		t.Errorf("starting click should not count, got %d hits %d misses", m.session.Hits(), m.session.Misses())
	}

	// A click while running does not schedule a second set of loops
	_, cmd = update(t, m, leftClick(10, 5))
	if cmd != nil {
		t.Error("click during a running session should not schedule loops")
	}
}

func TestEveryDrawnCellHits(t *testing.T) {
	m := newTestModel(t, trainer.Settings{
		TargetSize:  trainer.MinTargetSize,
		TargetSpeed: trainer.MinTargetSpeed,
		TargetCount: 1,
		Duration:    trainer.MaxDuration,
	})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Each hit respawns the target, so click a different drawn cell each time.
	for i := range 12 {
		r := targetRect(m.session.Targets()[0].Box(), m.config)
		cells := r.W * r.H
		col := r.X + (i%cells)%r.W
		row := r.Y + (i%cells)/r.W

		m, _ = update(t, m, leftClick(col, row))
		if m.session.Hits() != i+1 || m.session.Misses() != 0 {
			t.Fatalf("click %d on drawn cell (%d, %d) of %+v: hits/misses = %d/%d, expected %d/0",
				i, col, row, r, m.session.Hits(), m.session.Misses(), i+1)
		}
	}
}

func TestClickOutsideFieldIgnored(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	// Row 0 is the HUD, row 23 the help line
	for _, row := range []int{0, 23} {
		m, _ = update(t, m, leftClick(10, row))
		if m.session.Phase() != trainer.PhaseIdle {
			t.Errorf("click on row %d should be ignored, phase = %v", row, m.session.Phase())
		}
	}
}

func TestRightClickIgnored(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	msg := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	m, _ = update(t, m, msg)
	if m.session.Phase() != trainer.PhaseIdle {
		t.Errorf("right click should be ignored, phase = %v", m.session.Phase())
	}
}

func TestStaleTicksStopLoops(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	frameTok := m.session.FrameToken()
	secondTok := m.session.SecondToken()

	_, cmd := update(t, m, frameTickMsg{Token: frameTok})
	if cmd == nil {
		t.Error("live frame tick should reschedule")
	}

	m, _ = update(t, m, runeKey('p'))
	if m.session.Phase() != trainer.PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", m.session.Phase())
	}

	if _, cmd := update(t, m, frameTickMsg{Token: frameTok}); cmd != nil {
		t.Error("frame tick from a stopped loop should not reschedule")
	}
	if _, cmd := update(t, m, secondTickMsg{Token: secondTok}); cmd != nil {
		t.Error("second tick from a stopped loop should not reschedule")
	}
	if m.session.Remaining() != 60 {
		t.Errorf("stale second tick changed Remaining() to %d", m.session.Remaining())
	}

	// Resuming starts new loops
	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil {
		t.Error("resuming should schedule new loops")
	}
	if m.session.FrameToken() == frameTok {
		t.Error("resuming should issue a new frame token")
	}
}

func TestCountdownEndsInResults(t *testing.T) {
	settings := trainer.DefaultSettings()
	settings.Duration = trainer.MinDuration
	m := newTestModel(t, settings)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, leftClick(0, 22)) // likely a miss

	tok := m.session.SecondToken()
	for i := 0; i < trainer.MinDuration; i++ {
		m, _ = update(t, m, secondTickMsg{Token: tok})
	}
	if m.session.Phase() != trainer.PhaseEnded {
		t.Fatalf("Phase() = %v, expected ended", m.session.Phase())
	}

	// Drain events the way waitForEvent would
	var ended *trainer.SessionEndedEvent
	for ended == nil {
		evt, ok := m.mailbox.TryReceive()
		if !ok {
			t.Fatal("no SessionEndedEvent queued")
		}
		if e, ok := evt.(trainer.SessionEndedEvent); ok {
			ended = &e
		}
	}

	m, cmd := update(t, m, *ended)
	if m.view != viewResults {
		t.Errorf("view = %v, expected results", m.view)
	}
	if cmd == nil {
		t.Error("model should keep waiting for events after a session ends")
	}
	if got := len(m.Outcome().Results); got != 1 {
		t.Errorf("Outcome().Results has %d entries, expected 1", got)
	}
	if m.results.results.SessionDurationSeconds != trainer.MinDuration {
		t.Errorf("SessionDurationSeconds = %d, expected %d", m.results.results.SessionDurationSeconds, trainer.MinDuration)
	}

	// Try again returns to an idle field
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewField || m.session.Phase() != trainer.PhaseIdle {
		t.Errorf("try again gave view %v phase %v, expected field and idle", m.view, m.session.Phase())
	}
}

func TestSettingsLockedWhileRunning(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('s'))
	if m.view != viewField {
		t.Errorf("settings should not open while running, view = %v", m.view)
	}
	if m.notice == "" {
		t.Error("expected a notice explaining why settings are locked")
	}
}

func TestSettingsApplyResets(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, _ = update(t, m, runeKey('s'))
	if m.view != viewSettings {
		t.Fatalf("view = %v, expected settings", m.view)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight}) // duration +10
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != viewField {
		t.Errorf("view = %v, expected field after apply", m.view)
	}
	want := trainer.DefaultSettings().Duration + durationStep
	if got := m.session.Settings().Duration; got != want {
		t.Errorf("Duration = %d, expected %d", got, want)
	}
	if m.session.Remaining() != want {
		t.Errorf("Remaining() = %d, expected %d", m.session.Remaining(), want)
	}
}

func TestSettingsCancelKeepsValues(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, _ = update(t, m, runeKey('s'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.view != viewField {
		t.Errorf("view = %v, expected field", m.view)
	}
	if m.session.Settings() != trainer.DefaultSettings() {
		t.Errorf("cancel should keep settings, got %+v", m.session.Settings())
	}
}

func TestQuitClosesMailbox(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if !m.Outcome().Quit {
		t.Error("Outcome().Quit = false, expected true")
	}
	select {
	case <-m.mailbox.Done():
	default:
		t.Error("mailbox should be closed after quit")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, expected empty", m.View())
	}
}

func TestBackReturnsToMenu(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.Outcome().BackToMenu {
		t.Error("esc on the field should exit to the menu")
	}
	if m.Outcome().Quit {
		t.Error("back should not report quit")
	}
}

func TestResizeKeepsFieldInSync(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	w, h := m.session.FieldSize()
	if w != 800 || h != 448 {
		t.Errorf("FieldSize() = %vx%v, expected 800x448", w, h)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})

	if got, want := m.View(), "Terminal too small (20x5)"; got != want {
		t.Errorf("View() = %q, expected %q", got, want)
	}
}

func TestLanguageKeyCyclesStore(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	m, _ = update(t, m, runeKey('g'))
	if m.lang.Language() != i18n.Arabic {
		t.Errorf("Language() = %v, expected ar", m.lang.Language())
	}
}

func TestResultsFollowLanguage(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})
	r := trainer.Results{Accuracy: 40, AverageReactionTimeMs: 600, ClicksPerMinute: 20, SessionDurationSeconds: 20}
	m.results = newResultsView(r, m.lang, m.config.ScreenW, m.config.ScreenH)
	m.view = viewResults

	out := m.View()
	for _, want := range []string{"Your accuracy is very low", "Advice", "CRITICAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("English View() missing %q", want)
		}
	}

	m, _ = update(t, m, runeKey('g'))
	out = m.View()
	for _, want := range []string{"دقتك منخفضة جداً", "النصيحة", "حرج", "ركّز على الدقة بدلاً من السرعة"} {
		if !strings.Contains(out, want) {
			t.Errorf("Arabic View() missing %q", want)
		}
	}
	if strings.Contains(out, "Your accuracy is very low") {
		t.Error("Arabic View() still shows English advice")
	}
}

func TestViewFieldShowsHUDAndBanner(t *testing.T) {
	m := newTestModel(t, trainer.Settings{})

	out := m.View()
	for _, want := range []string{"Time 1:00", "Hits 0", "Misses 0", "Click anywhere to start", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if strings.Contains(m.View(), "Click anywhere to start") {
		t.Error("running session should not show the start banner")
	}
	m, _ = update(t, m, runeKey('p'))
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused session should show the pause banner")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{60, "1:00"},
		{125, "2:05"},
		{-3, "0:00"},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.seconds); got != tc.expected {
			t.Errorf("formatDuration(%d) = %q, expected %q", tc.seconds, got, tc.expected)
		}
	}
}
