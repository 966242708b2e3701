// Package trainer implements the aim training session: the phase state
// machine, the bouncing target field and end-of-session scoring.
//
// A Session is not safe for concurrent use. The platform drives it from a
// single goroutine and schedules its frame and second loops by token.
package trainer

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/aimtrainer/internal/core"
)

// Misuse errors returned by session-mutating operations.
var (
	ErrSessionActive = errors.New("trainer: session is running or paused")
	ErrSessionEnded  = errors.New("trainer: session has ended, reset first")
)

// ClickOutcome describes what a click did to the session.
type ClickOutcome int

const (
	ClickIgnored ClickOutcome = iota // paused, ended or not on a live target
	ClickStarted                     // first click of an idle session
	ClickHit
	ClickMiss
)

// String returns the outcome name.
func (o ClickOutcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickStarted:
		return "started"
	case ClickHit:
		return "hit"
	case ClickMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Options configures a new Session.
type Options struct {
	Settings Settings
	Width    float64 // field width in pixels
	Height   float64 // field height in pixels
	Seed     int64
	Clock    Clock
	Logger   *log.Logger
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase     Phase
	Remaining int
	Hits      int
	Misses    int
	Accuracy  float64
	Settings  Settings
	Targets   []Target
}

type subscription struct {
	id int
	fn Listener
}

// Session owns the session state, its settings and the target field.
type Session struct {
	settings Settings
	field    *Field
	clock    Clock
	logger   *log.Logger

	phase     Phase
	remaining int
	hits      int
	misses    int
	samples   []int
	lastSpawn time.Time

	frames  Task
	seconds Task

	results    Results
	hasResults bool

	listeners []subscription
	nextSub   int
}

// New creates an idle session with targets already placed.
// Zero settings fall back to DefaultSettings; other values are clamped.
func New(opts Options) *Session {
	settings := opts.Settings
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		settings: settings.Clamp(),
		field:    NewField(opts.Seed),
		clock:    clock,
		logger:   logger,
		phase:    PhaseIdle,
	}
	s.field.Initialize(opts.Width, opts.Height, 0, 0, 0)
	s.clearCounters()
	s.initTargets()
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Settings returns the active settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int {
	return s.remaining
}

// Hits returns the number of successful target clicks.
func (s *Session) Hits() int {
	return s.hits
}

// Misses returns the number of clicks on empty field.
func (s *Session) Misses() int {
	return s.misses
}

// ReactionSamples returns a copy of the recorded reaction times in milliseconds.
func (s *Session) ReactionSamples() []int {
	out := make([]int, len(s.samples))
	copy(out, s.samples)
	return out
}

// Targets returns a copy of the current targets.
func (s *Session) Targets() []Target {
	return s.field.Targets()
}

// FieldSize returns the field dimensions in pixels.
func (s *Session) FieldSize() (width, height float64) {
	return s.field.Size()
}

// Results returns the results of the last ended session.
// The second value is false unless the phase is ended.
func (s *Session) Results() (Results, bool) {
	return s.results, s.hasResults
}

// Snapshot returns the state needed to draw a frame.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:     s.phase,
		Remaining: s.remaining,
		Hits:      s.hits,
		Misses:    s.misses,
		Accuracy:  Accuracy(s.hits, s.misses),
		Settings:  s.settings,
		Targets:   s.field.Targets(),
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners are called synchronously in registration order.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextSub++
	id := s.nextSub
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit(evt Event) {
	for _, sub := range s.listeners {
		sub.fn(evt)
	}
}

func (s *Session) setPhase(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	s.logger.Debug("phase changed", "from", from, "to", to)
	s.emit(PhaseChangedEvent{From: from, To: to})
}

func (s *Session) clearCounters() {
	s.remaining = s.settings.Duration
	s.hits = 0
	s.misses = 0
	s.samples = nil
	s.results = Results{}
	s.hasResults = false
}

func (s *Session) initTargets() {
	w, h := s.field.Size()
	s.field.Initialize(w, h, s.settings.TargetCount, s.settings.TargetSize, s.settings.TargetSpeed)
	s.lastSpawn = s.clock.Now()
}

func (s *Session) startTasks() {
	s.frames.Start()
	s.seconds.Start()
}

func (s *Session) stopTasks() {
	s.frames.Stop()
	s.seconds.Stop()
}

// StartSession begins a session from idle.
// It fails with ErrSessionActive while running or paused and with
// ErrSessionEnded once ended.
func (s *Session) StartSession() error {
	switch s.phase {
	case PhaseRunning, PhasePaused:
		return ErrSessionActive
	case PhaseEnded:
		return ErrSessionEnded
	}

	s.clearCounters()
	s.initTargets()
	s.startTasks()
	s.setPhase(PhaseRunning)
	return nil
}

// HandleTargetClick registers a click on the target with the given id.
// The first click of an idle session only starts it.
func (s *Session) HandleTargetClick(id int) ClickOutcome {
	switch s.phase {
	case PhaseIdle:
		s.StartSession() //nolint:errcheck // idle always starts
		return ClickStarted
	case PhaseRunning:
	default:
		return ClickIgnored
	}

	if _, ok := s.field.Target(id); !ok {
		return ClickIgnored
	}
	now := s.clock.Now()
	s.samples = append(s.samples, int(now.Sub(s.lastSpawn).Milliseconds()))
	s.hits++
	s.field.Respawn(id)
	s.lastSpawn = now
	return ClickHit
}

// HandleFieldClick registers a click that landed on no target.
// The first click of an idle session only starts it.
func (s *Session) HandleFieldClick() ClickOutcome {
	switch s.phase {
	case PhaseIdle:
		s.StartSession() //nolint:errcheck // idle always starts
		return ClickStarted
	case PhaseRunning:
		s.misses++
		return ClickMiss
	default:
		return ClickIgnored
	}
}

// HandleClick hit-tests a field pixel and dispatches to HandleTargetClick
// or HandleFieldClick.
func (s *Session) HandleClick(x, y float64) ClickOutcome {
	if id, ok := s.field.HitTest(x, y); ok {
		return s.HandleTargetClick(id)
	}
	return s.HandleFieldClick()
}

// HandleAreaClick hit-tests a field area, such as a clicked terminal cell,
// against the targets and dispatches like HandleClick.
func (s *Session) HandleAreaClick(area core.Box) ClickOutcome {
	if id, ok := s.field.HitTestArea(area); ok {
		return s.HandleTargetClick(id)
	}
	return s.HandleFieldClick()
}

// PauseToggle flips between running and paused. It does nothing otherwise.
func (s *Session) PauseToggle() {
	switch s.phase {
	case PhaseRunning:
		s.stopTasks()
		s.setPhase(PhasePaused)
	case PhasePaused:
		s.startTasks()
		s.setPhase(PhaseRunning)
	}
}

// ResetSession returns to idle with counters cleared and targets re-placed.
// No results are emitted.
func (s *Session) ResetSession() {
	s.stopTasks()
	s.clearCounters()
	s.initTargets()
	s.setPhase(PhaseIdle)
}

// ApplySettings replaces the settings and resets the session.
// Values are clamped into range. It is rejected while running or paused.
func (s *Session) ApplySettings(settings Settings) error {
	if s.phase == PhaseRunning || s.phase == PhasePaused {
		return ErrSessionActive
	}
	s.settings = settings.Clamp()
	s.logger.Debug("settings applied",
		"size", s.settings.TargetSize,
		"speed", s.settings.TargetSpeed,
		"count", s.settings.TargetCount,
		"duration", s.settings.Duration)
	s.ResetSession()
	return nil
}

// TickSecond decrements the countdown while running and ends the session
// when it reaches zero.
func (s *Session) TickSecond() {
	if s.phase != PhaseRunning {
		return
	}
	s.remaining = max(s.remaining-1, 0)
	if s.remaining == 0 {
		s.endSession()
	}
}

// Advance moves the targets by one frame while running.
func (s *Session) Advance() {
	if s.phase != PhaseRunning {
		return
	}
	s.field.Advance()
}

// FrameToken returns the token of the current frame loop.
func (s *Session) FrameToken() Token {
	return s.frames.Token()
}

// SecondToken returns the token of the current countdown loop.
func (s *Session) SecondToken() Token {
	return s.seconds.Token()
}

// OnFrame runs one frame if tok belongs to the live frame loop.
// It reports whether the loop should be scheduled again with the same token.
func (s *Session) OnFrame(tok Token) bool {
	if !s.frames.Accept(tok) {
		return false
	}
	s.Advance()
	return s.frames.Accept(tok)
}

// OnSecond runs one countdown tick if tok belongs to the live countdown loop.
// It reports whether the loop should be scheduled again with the same token.
func (s *Session) OnSecond(tok Token) bool {
	if !s.seconds.Accept(tok) {
		return false
	}
	s.TickSecond()
	return s.seconds.Accept(tok)
}

// Resize changes the field dimensions. An idle field is re-placed across the
// new area; otherwise targets keep their positions, clamped into bounds.
func (s *Session) Resize(width, height float64) {
	if s.phase == PhaseIdle {
		s.field.Initialize(width, height, s.settings.TargetCount, s.settings.TargetSize, s.settings.TargetSpeed)
		return
	}
	s.field.Resize(width, height)
}

func (s *Session) endSession() {
	s.stopTasks()
	s.setPhase(PhaseEnded)

	results := Score(Tally{
		Hits:            s.hits,
		Misses:          s.misses,
		ReactionSamples: s.samples,
		Duration:        s.settings.Duration,
		Remaining:       s.remaining,
	})
	results.SessionID = uuid.NewString()
	s.results = results
	s.hasResults = true

	s.logger.Info("session ended",
		"id", results.SessionID,
		"hits", results.Hits,
		"misses", results.Misses,
		"accuracy", results.Accuracy)
	s.emit(SessionEndedEvent{Results: results})
}
