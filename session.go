package textdiff

import (
	"fmt"
	"sync"
	"time"
)

// SessionState identifies where a comparison session is in its
// lifecycle.
type SessionState int

const (
	// StateIdle means at least one input is missing.
	StateIdle SessionState = iota
	// StateReady means both inputs are present and a comparison can
	// start.
	StateReady
	// StateComputing means a comparison is in flight.
	StateComputing
	// StateDone means the latest comparison finished and its Result is
	// available.
	StateDone
	// StateError means the latest comparison failed. A Result from an
	// earlier comparison, if any, remains available.
	StateError
)

// String returns a string representation of the SessionState.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReady:
		return "Ready"
	case StateComputing:
		return "Computing"
	case StateDone:
		return "Done"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Input is one text document supplied by a collaborator such as a file
// picker or an editor buffer. Size and LastModified are informational
// and do not affect comparison.
type Input struct {
	Name         string
	Content      string
	Size         int64
	LastModified time.Time
}

// Session coordinates comparisons for a UI-style caller. It is an
// explicit state machine: inputs arrive via SetOriginal/SetModified,
// comparisons start only via Compare, and completion moves the session
// to Done or Error. At most one computation is authoritative at a time:
// every input change or Compare call bumps a generation counter, and a
// finishing computation installs its result only if its generation is
// still current. A superseded computation is discarded without touching
// the session, so the last good Result stays visible.
//
// Session methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	opts     Options
	state    SessionState
	original *Input
	modified *Input
	gen      uint64
	result   *Result
	err      error
}

// NewSession creates an idle session that compares with the given
// options.
func NewSession(opts Options) *Session {
	return &Session{opts: opts, state: StateIdle}
}

// SetOriginal supplies the original document. Any in-flight comparison
// is superseded.
func (s *Session) SetOriginal(in Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.original = &in
	s.inputsChanged()
}

// SetModified supplies the modified document. Any in-flight comparison
// is superseded.
func (s *Session) SetModified(in Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modified = &in
	s.inputsChanged()
}

// inputsChanged is called with the lock held after an input update.
func (s *Session) inputsChanged() {
	s.gen++
	if s.original != nil && s.modified != nil {
		s.state = StateReady
	} else {
		s.state = StateIdle
	}
}

// Compare starts an asynchronous comparison of the current inputs and
// returns a channel that closes when that particular request settles,
// whether its result was installed or discarded as stale. It returns
// ErrMissingInput if either input has not been supplied.
func (s *Session) Compare() (<-chan struct{}, error) {
	s.mu.Lock()
	if s.original == nil || s.modified == nil {
		s.mu.Unlock()
		return nil, ErrMissingInput
	}
	s.gen++
	gen := s.gen
	original := s.original.Content
	modified := s.modified.Content
	opts := s.opts
	s.state = StateComputing
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err := compareRecovering(original, modified, opts)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer request or input change superseded this one.
			return
		}
		if err != nil {
			s.err = err
			s.state = StateError
			return
		}
		s.result = res
		s.err = nil
		s.state = StateDone
	}()
	return done, nil
}

// compareRecovering converts an unexpected panic during comparison into
// ErrComputationFailed so a UI caller can report it and retry.
func compareRecovering(original, modified string, opts Options) (res *Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrComputationFailed, p)
		}
	}()
	return Compare(original, modified, opts)
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the most recent successfully installed result, or nil.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the error from the latest comparison, or nil.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Reset clears inputs, result, and error, superseding anything in
// flight, and returns the session to Idle.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.original = nil
	s.modified = nil
	s.result = nil
	s.err = nil
	s.state = StateIdle
}
