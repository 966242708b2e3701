package trainer

import "testing"

func TestTaskTokens(t *testing.T) {
	var task Task

	if task.Running() {
		t.Error("zero Task should not be running")
	}
	if task.Accept(0) {
		t.Error("zero Task should reject every token")
	}

	first := task.Start()
	if !task.Accept(first) {
		t.Error("Accept should take the token returned by Start")
	}

	second := task.Start()
	if second == first {
		t.Fatal("Start should issue a fresh token")
	}
	if task.Accept(first) {
		t.Error("restarting should invalidate the previous token")
	}
	if !task.Accept(second) || task.Token() != second {
		t.Error("current token should be accepted")
	}

	task.Stop()
	if task.Running() || task.Accept(second) {
		t.Error("Stop should invalidate the current token")
	}

	third := task.Start()
	if third == second || !task.Accept(third) {
		t.Error("restart after Stop should issue a new live token")
	}
}
