package trainer

import "sync"

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a Session.
type Event interface {
	isEvent()
}

// PhaseChangedEvent is emitted on every phase transition.
type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

func (PhaseChangedEvent) isEvent() {}

// SessionEndedEvent carries the final results when the countdown reaches zero.
type SessionEndedEvent struct {
	Results Results
}

func (SessionEndedEvent) isEvent() {}

// Listener receives session events synchronously on the mutating goroutine.
type Listener func(Event)

// Mailbox buffers events for a consumer running elsewhere, such as a
// Bubble Tea command blocked in Receive. Its Send method is a Listener.
//
// When full, the oldest event is dropped, except that a SessionEndedEvent
// is never evicted by later events.
type Mailbox struct {
	mu     sync.Mutex
	queue  []Event
	size   int
	notify chan struct{}

	done     chan struct{}
	doneOnce sync.Once
}

// NewMailbox creates a mailbox holding up to size events.
func NewMailbox(size int) *Mailbox {
	if size < 1 {
		size = 16
	}
	return &Mailbox{
		queue:  make([]Event, 0, size),
		size:   size,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Send queues an event without blocking.
func (m *Mailbox) Send(evt Event) {
	select {
	case <-m.done:
		return
	default:
	}

	m.mu.Lock()
	if len(m.queue) >= m.size {
		m.evictLocked()
	}
	m.queue = append(m.queue, evt)
	m.mu.Unlock()

	// Wake a waiting receiver
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// evictLocked drops the oldest event that may be dropped.
func (m *Mailbox) evictLocked() {
	victim := 0
	for i, evt := range m.queue {
		if _, ended := evt.(SessionEndedEvent); !ended {
			victim = i
			break
		}
	}
	m.queue = append(m.queue[:victim], m.queue[victim+1:]...)
}

// TryReceive returns the oldest queued event without blocking.
func (m *Mailbox) TryReceive() (Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil, false
	}
	evt := m.queue[0]
	m.queue = m.queue[1:]
	return evt, true
}

// Receive blocks until an event is queued or the mailbox is closed.
// It returns false once closed.
func (m *Mailbox) Receive() (Event, bool) {
	for {
		select {
		case <-m.done:
			return nil, false
		default:
		}
		if evt, ok := m.TryReceive(); ok {
			return evt, true
		}
		select {
		case <-m.notify:
		case <-m.done:
			return nil, false
		}
	}
}

// Len returns the number of queued events.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// Done returns a channel that closes when the mailbox is closed.
func (m *Mailbox) Done() <-chan struct{} {
	return m.done
}

// Close stops accepting events. Safe to call multiple times.
func (m *Mailbox) Close() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}
