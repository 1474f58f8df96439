package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
)

type stubSource struct {
	qs  []bank.Question
	err error
}

func (s stubSource) FetchAll(context.Context) ([]bank.Question, error) {
	return s.qs, s.err
}

func threeQuestions() []bank.Question {
	return []bank.Question{
		{ID: "q1", Question: "one", Options: map[string]string{"A": "x", "B": "y"}, CorrectAnswer: "A"},
		{ID: "q2", Question: "two", Options: map[string]string{"A": "x", "B": "y"}, CorrectAnswer: "B"},
		{ID: "q3", Question: "three", Options: map[string]string{"A": "x", "B": "y"}, CorrectAnswer: "A"},
	}
}

func newSession(t *testing.T, qs []bank.Question) (*Session, *progress.Store) {
	t.Helper()
	store := progress.NewStore(progress.NewMemoryKV(), progress.DefaultStorageKey, len(qs))
	s := New(store)
	if s.Phase() != PhaseLoading {
		t.Fatalf("new session should be loading, got %s", s.Phase())
	}
	if err := s.Start(context.Background(), stubSource{qs: qs}, 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s, store
}

func TestStart_EmptySourceIsError(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryKV(), progress.DefaultStorageKey, 0)
	s := New(store)

	err := s.Start(context.Background(), stubSource{qs: nil}, 0)
	if !errors.Is(err, bank.ErrEmptyBank) {
		t.Fatalf("expected ErrEmptyBank, got %v", err)
	}
	if s.Phase() != PhaseError {
		t.Fatalf("expected error phase, got %s", s.Phase())
	}
	if s.Err() == nil {
		t.Fatal("Err should report the failure")
	}
}

func TestStart_FetchFailureIsError(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryKV(), progress.DefaultStorageKey, 0)
	s := New(store)

	boom := errors.New("disk on fire")
	err := s.Start(context.Background(), stubSource{err: boom}, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if s.Phase() != PhaseError {
		t.Fatalf("expected error phase, got %s", s.Phase())
	}
}

func TestStart_SecondCallIgnored(t *testing.T) {
	s, _ := newSession(t, threeQuestions())

	if err := s.Start(context.Background(), stubSource{err: errors.New("nope")}, 0); err != nil {
		t.Fatalf("restart should be a no-op, got %v", err)
	}
	if s.Phase() != PhasePresenting {
		t.Fatalf("phase changed on restart: %s", s.Phase())
	}
}

func TestSession_FullRun(t *testing.T) {
	s, store := newSession(t, threeQuestions())

	// q1: correct.
	q, ok := s.CurrentQuestion()
	if !ok || q.ID != "q1" {
		t.Fatalf("expected q1, got %+v ok=%v", q, ok)
	}
	correct, accepted := s.SelectAnswer("A")
	if !accepted || !correct {
		t.Fatalf("expected accepted correct answer, got correct=%v accepted=%v", correct, accepted)
	}
	if s.Phase() != PhaseAnswered {
		t.Fatalf("expected answered, got %s", s.Phase())
	}
	s.Advance()

	// q2: wrong.
	correct, accepted = s.SelectAnswer("A")
	if !accepted || correct {
		t.Fatalf("expected accepted wrong answer, got correct=%v accepted=%v", correct, accepted)
	}
	s.Advance()

	// q3: correct.
	if correct, _ = s.SelectAnswer("A"); !correct {
		t.Fatal("expected q3 correct")
	}
	s.Advance()

	if s.Phase() != PhaseComplete {
		t.Fatalf("expected complete, got %s", s.Phase())
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.SessionTotal != 3 || sum.CompletedCount != 3 || sum.CorrectCount != 2 || sum.IncorrectCount != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if sum.AccuracyPercent != 67 {
		t.Fatalf("expected 67%%, got %d", sum.AccuracyPercent)
	}
	if got := store.MistakeIDs(); len(got) != 1 || got[0] != "q2" {
		t.Fatalf("expected mistake q2, got %v", got)
	}
}

func TestSelectAnswer_Idempotent(t *testing.T) {
	s, store := newSession(t, threeQuestions())

	s.SelectAnswer("B") // wrong
	if _, accepted := s.SelectAnswer("A"); accepted {
		t.Fatal("second selection must be rejected")
	}

	if selected, _ := store.SelectedAnswer("q1"); selected != "B" {
		t.Fatalf("first selection must stand, got %q", selected)
	}
	if st := store.Statistics(); st.CompletedCount != 1 {
		t.Fatalf("expected one recorded answer, got %d", st.CompletedCount)
	}
}

func TestSelectAnswer_RecordsSessionID(t *testing.T) {
	s, store := newSession(t, threeQuestions())
	if s.ID == "" {
		t.Fatal("session must have an id")
	}

	s.SelectAnswer("A")

	rec, ok := store.Answer("q1")
	if !ok {
		t.Fatal("expected a recorded answer for q1")
	}
	if rec.SessionID != s.ID {
		t.Fatalf("answer stamped with %q, session id is %q", rec.SessionID, s.ID)
	}
}

func TestAdvance_OnlyAfterAnswer(t *testing.T) {
	s, store := newSession(t, threeQuestions())

	s.Advance()
	if s.Index() != 0 || s.Phase() != PhasePresenting {
		t.Fatalf("advance before answering must be ignored, index=%d phase=%s", s.Index(), s.Phase())
	}

	s.SelectAnswer("A")
	s.Advance()
	if s.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Index())
	}
	if store.CurrentIndex() != 1 {
		t.Fatalf("index must be persisted, got %d", store.CurrentIndex())
	}
}

func TestStart_RestoresPersistedIndex(t *testing.T) {
	kv := progress.NewMemoryKV()
	qs := threeQuestions()

	store := progress.NewStore(kv, progress.DefaultStorageKey, len(qs))
	store.SetCurrentIndex(2)

	s := New(store)
	if err := s.Start(context.Background(), stubSource{qs: qs}, 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	q, ok := s.CurrentQuestion()
	if !ok || q.ID != "q3" {
		t.Fatalf("expected resume at q3, got %+v ok=%v", q, ok)
	}
}

func TestStart_IndexPastEndIsComplete(t *testing.T) {
	kv := progress.NewMemoryKV()
	qs := threeQuestions()

	store := progress.NewStore(kv, progress.DefaultStorageKey, len(qs))
	store.SetCurrentIndex(3)

	s := New(store)
	if err := s.Start(context.Background(), stubSource{qs: qs}, 0); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Phase() != PhaseComplete {
		t.Fatalf("expected complete, got %s", s.Phase())
	}
	if _, err := s.Summary(); err != nil {
		t.Fatalf("summary after resumed completion: %v", err)
	}
}

func TestStart_SampledSessionTotal(t *testing.T) {
	qs := make([]bank.Question, 10)
	for i := range qs {
		qs[i] = bank.Question{
			ID:            bank.QuestionID(string(rune('a' + i))),
			Question:      "q",
			Options:       map[string]string{"A": "x", "B": "y"},
			CorrectAnswer: "A",
		}
	}

	store := progress.NewStore(progress.NewMemoryKV(), progress.DefaultStorageKey, len(qs))
	s := New(store)
	if err := s.Start(context.Background(), stubSource{qs: qs}, 4); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 sampled questions, got %d", s.Len())
	}

	for s.Phase() == PhasePresenting {
		s.SelectAnswer("A")
		s.Advance()
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.SessionTotal != 4 {
		t.Fatalf("summary must report the session size, got %d", sum.SessionTotal)
	}
}

func TestSummary_BeforeCompleteFails(t *testing.T) {
	s, _ := newSession(t, threeQuestions())
	if _, err := s.Summary(); err == nil {
		t.Fatal("summary before completion must fail")
	}
}
