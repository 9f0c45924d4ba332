package textdiff

import (
	"errors"
	"testing"
	"time"
)

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("comparison did not settle")
	}
}

func TestSession_StateTransitions(t *testing.T) {
	s := NewSession(Options{})
	if got := s.State(); got != StateIdle {
		t.Fatalf("new session state = %v, want Idle", got)
	}

	s.SetOriginal(Input{Name: "a.txt", Content: "a"})
	if got := s.State(); got != StateIdle {
		t.Errorf("state after one input = %v, want Idle", got)
	}

	s.SetModified(Input{Name: "b.txt", Content: "b"})
	if got := s.State(); got != StateReady {
		t.Errorf("state after both inputs = %v, want Ready", got)
	}

	done, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	waitDone(t, done)

	if got := s.State(); got != StateDone {
		t.Errorf("state after completion = %v, want Done", got)
	}
	r := s.Result()
	if r == nil {
		t.Fatal("Result() = nil after Done")
	}
	if !HasDifferences(r) {
		t.Errorf("expected differences between %q and %q", "a", "b")
	}
}

func TestSession_MissingInput(t *testing.T) {
	s := NewSession(Options{})
	if _, err := s.Compare(); !errors.Is(err, ErrMissingInput) {
		t.Errorf("Compare() on idle session = %v, want ErrMissingInput", err)
	}

	s.SetOriginal(Input{Content: "a"})
	if _, err := s.Compare(); !errors.Is(err, ErrMissingInput) {
		t.Errorf("Compare() with one input = %v, want ErrMissingInput", err)
	}
}

func TestSession_Error(t *testing.T) {
	s := NewSession(Options{Limits: Limits{MaxBytes: 4}})
	s.SetOriginal(Input{Content: "this input is far too large"})
	s.SetModified(Input{Content: "ok"})

	done, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	waitDone(t, done)

	if got := s.State(); got != StateError {
		t.Errorf("state = %v, want Error", got)
	}
	if !errors.Is(s.Err(), ErrInputTooLarge) {
		t.Errorf("Err() = %v, want ErrInputTooLarge", s.Err())
	}
	if s.Result() != nil {
		t.Errorf("Result() = %v, want nil", s.Result())
	}
}

func TestSession_InputChangeSupersedesComputation(t *testing.T) {
	s := NewSession(Options{})
	s.SetOriginal(Input{Content: "a"})
	s.SetModified(Input{Content: "b"})

	done, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	// Supersede before the computation can install its result. Whether
	// the goroutine has finished or not, the session must not end up
	// reporting the stale pair.
	s.SetModified(Input{Content: "c"})
	waitDone(t, done)

	if got := s.State(); got != StateReady {
		t.Errorf("state = %v, want Ready (stale result discarded)", got)
	}

	done, err = s.Compare()
	if err != nil {
		t.Fatalf("second Compare() error: %v", err)
	}
	waitDone(t, done)
	if got := s.State(); got != StateDone {
		t.Errorf("state = %v, want Done", got)
	}
	r := s.Result()
	if r == nil || len(r.Lines) == 0 {
		t.Fatal("no result after second comparison")
	}
	var sawC bool
	for _, ln := range r.Lines {
		if ln.Content == "c" && ln.Type == Added {
			sawC = true
		}
	}
	if !sawC {
		t.Errorf("result does not reflect the updated input: %v", r.Lines)
	}
}

func TestSession_LastGoodResultSurvivesError(t *testing.T) {
	s := NewSession(Options{Limits: Limits{MaxBytes: 4}})
	s.SetOriginal(Input{Content: "ab"})
	s.SetModified(Input{Content: "cd"})

	done, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	waitDone(t, done)
	good := s.Result()
	if good == nil {
		t.Fatal("no result on small inputs")
	}

	s.SetModified(Input{Content: "this one exceeds the byte limit"})
	done, err = s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	waitDone(t, done)

	if got := s.State(); got != StateError {
		t.Errorf("state = %v, want Error", got)
	}
	if s.Result() != good {
		t.Errorf("earlier result was discarded on error")
	}
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(Options{})
	s.SetOriginal(Input{Content: "a"})
	s.SetModified(Input{Content: "b"})
	done, err := s.Compare()
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	waitDone(t, done)

	s.Reset()
	if got := s.State(); got != StateIdle {
		t.Errorf("state after Reset = %v, want Idle", got)
	}
	if s.Result() != nil {
		t.Errorf("Result() after Reset = %v, want nil", s.Result())
	}
	if s.Err() != nil {
		t.Errorf("Err() after Reset = %v, want nil", s.Err())
	}
	if _, err := s.Compare(); !errors.Is(err, ErrMissingInput) {
		t.Errorf("Compare() after Reset = %v, want ErrMissingInput", err)
	}
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		st   SessionState
		want string
	}{
		{StateIdle, "Idle"},
		{StateReady, "Ready"},
		{StateComputing, "Computing"},
		{StateDone, "Done"},
		{StateError, "Error"},
		{SessionState(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.st.String(); got != tt.want {
			t.Errorf("SessionState(%d).String() = %q, want %q", tt.st, got, tt.want)
		}
	}
}
