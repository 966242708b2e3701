package trainer

// Token identifies one run of a scheduled task. Callbacks carry the token
// they were scheduled with and are ignored once it goes stale.
type Token uint64

// Task is a cancellable recurring callback. It does not own a timer; the
// platform schedules ticks and hands back the token it was given.
type Task struct {
	gen     Token
	running bool
}

// Start invalidates any previous run and returns the token for the new one.
func (t *Task) Start() Token {
	t.gen++
	t.running = true
	return t.gen
}

// Stop invalidates the current run.
func (t *Task) Stop() {
	t.gen++
	t.running = false
}

// Accept reports whether a callback carrying tok belongs to the live run.
func (t *Task) Accept(tok Token) bool {
	return t.running && tok == t.gen
}

// Token returns the token of the current run.
func (t *Task) Token() Token {
	return t.gen
}

// Running reports whether the task has a live run.
func (t *Task) Running() bool {
	return t.running
}
