package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
)

// Phase is the session's position in its lifecycle. Transitions follow
// Loading → Presenting → Answered → Presenting … → Complete, with Error
// terminal from Loading. Calls that are invalid for the current phase are
// ignored rather than surfaced.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePresenting
	PhaseAnswered
	PhaseComplete
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseAnswered:
		return "answered"
	case PhaseComplete:
		return "complete"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Summary joins the store's aggregate statistics with the session's own
// question count. The two totals legitimately differ when the session ran
// on a sample of the bank; displays must use SessionTotal.
type Summary struct {
	progress.Statistics
	SessionTotal int
}

// Session drives a single pass through a (possibly sampled) question
// sequence: one pending answer at a time, persistence delegated to the
// progress store after every answer and index advance.
type Session struct {
	// ID identifies this session; every answer recorded through it is
	// stamped with the id.
	ID string

	store     *progress.Store
	questions []bank.Question
	current   int
	selected  string
	phase     Phase
	err       error
}

// New creates a Session in the Loading phase.
func New(store *progress.Store) *Session {
	return &Session{
		ID:    uuid.New().String(),
		store: store,
		phase: PhaseLoading,
	}
}

// Start obtains the question set from source, optionally samples it, and
// restores the current index from the progress store. Only valid in the
// Loading phase. An empty or failed fetch moves the session to Error.
func (s *Session) Start(ctx context.Context, source bank.Source, sampleSize int) error {
	if s.phase != PhaseLoading {
		return nil
	}

	questions, err := source.FetchAll(ctx)
	if err != nil {
		s.phase = PhaseError
		s.err = err
		return err
	}
	if len(questions) == 0 {
		s.phase = PhaseError
		s.err = bank.ErrEmptyBank
		return s.err
	}

	s.questions = bank.Sample(questions, sampleSize)
	s.current = s.store.CurrentIndex()

	if s.current >= len(s.questions) {
		s.phase = PhaseComplete
		return nil
	}
	s.phase = PhasePresenting
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Err returns the load failure when the session is in the Error phase.
func (s *Session) Err() error { return s.err }

// Len returns the session's question count (after any sampling).
func (s *Session) Len() int { return len(s.questions) }

// Index returns the current position within the question sequence.
func (s *Session) Index() int { return s.current }

// CurrentQuestion returns the question at the current index. An
// out-of-range index reports false, which callers treat as completion.
func (s *Session) CurrentQuestion() (bank.Question, bool) {
	if s.current < 0 || s.current >= len(s.questions) {
		return bank.Question{}, false
	}
	return s.questions[s.current], true
}

// SelectedKey returns the option chosen for the current question, valid
// once the session is in the Answered phase.
func (s *Session) SelectedKey() string { return s.selected }

// SelectAnswer scores the chosen option against the current question and
// records it through the progress store. Only the first selection per
// question counts; further calls are idempotent no-ops. Returns whether
// the answer was correct and whether it was accepted.
func (s *Session) SelectAnswer(key string) (correct bool, accepted bool) {
	if s.phase != PhasePresenting {
		return false, false
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		s.phase = PhaseComplete
		return false, false
	}

	correct = key == q.CorrectAnswer
	s.store.RecordAnswer(q.ID, key, correct, s.ID)
	s.selected = key
	s.phase = PhaseAnswered
	return correct, true
}

// Advance moves to the next question, persisting the new index. Only valid
// in the Answered phase; the index never decreases.
func (s *Session) Advance() {
	if s.phase != PhaseAnswered {
		return
	}
	s.current++
	s.store.SetCurrentIndex(s.current)
	s.selected = ""

	if s.current >= len(s.questions) {
		s.phase = PhaseComplete
		return
	}
	s.phase = PhasePresenting
}

// Summary reports the completion statistics. Only valid in the Complete
// phase.
func (s *Session) Summary() (Summary, error) {
	if s.phase != PhaseComplete {
		return Summary{}, fmt.Errorf("summary requested in phase %s", s.phase)
	}
	return Summary{
		Statistics:   s.store.Statistics(),
		SessionTotal: len(s.questions),
	}, nil
}
