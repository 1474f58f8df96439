package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/yaya9689/examtrainer/internal/bank"
)

// DefaultStorageKey is the kv key the store persists under when the caller
// has no reason to pick another.
const DefaultStorageKey = "examtrainer.progress"

// AnswerRecord is the persisted outcome of answering one question. A later
// answer for the same question overwrites the earlier record. SessionID
// names the quiz or review session that produced the record.
type AnswerRecord struct {
	Selected  string    `json:"selected"`
	Correct   bool      `json:"correct"`
	SessionID string    `json:"sessionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// State is the single persisted aggregate: position, answer history, and
// the mistake set (stored explicitly for fast lookup, kept consistent with
// the answers map on every write).
type State struct {
	CurrentQuestionIndex int                              `json:"currentQuestionIndex"`
	Answers              map[bank.QuestionID]AnswerRecord `json:"answers"`
	Mistakes             []bank.QuestionID                `json:"mistakes"`
	StartedAt            time.Time                        `json:"startedAt"`
}

// Statistics is the aggregate view derived from the answer history.
type Statistics struct {
	TotalBankSize   int
	CompletedCount  int
	CorrectCount    int
	IncorrectCount  int
	AccuracyPercent int
}

// Store owns one persisted State under a fixed kv key. Every operation is
// best-effort: storage failures are logged and swallowed, never propagated.
type Store struct {
	kv       KV
	key      string
	bankSize int
}

// NewStore creates a Store bound to the given kv key, loading existing
// state or persisting a fresh default when none (or corrupt data) is found.
// bankSize is the size of the full question bank, reported in Statistics.
func NewStore(kv KV, key string, bankSize int) *Store {
	s := &Store{kv: kv, key: key, bankSize: bankSize}
	if _, ok := s.load(); !ok {
		s.Reset()
	}
	return s
}

// load reads and deserializes the persisted state. Any read or parse
// failure behaves as "no prior progress".
func (s *Store) load() (*State, bool) {
	raw, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			fmt.Fprintln(os.Stderr, "load progress:", err)
		}
		return nil, false
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		fmt.Fprintln(os.Stderr, "parse progress:", err)
		return nil, false
	}
	if st.Answers == nil {
		st.Answers = make(map[bank.QuestionID]AnswerRecord)
	}
	return &st, true
}

// Save serializes and writes the state, reporting success.
func (s *Store) Save(st *State) bool {
	raw, err := json.Marshal(st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode progress:", err)
		return false
	}
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		fmt.Fprintln(os.Stderr, "save progress:", err)
		return false
	}
	return true
}

// CurrentIndex returns the persisted question index, or 0 without state.
func (s *Store) CurrentIndex() int {
	st, ok := s.load()
	if !ok {
		return 0
	}
	return st.CurrentQuestionIndex
}

// SetCurrentIndex updates and persists the question index. No-op when no
// state exists.
func (s *Store) SetCurrentIndex(i int) {
	st, ok := s.load()
	if !ok {
		return
	}
	st.CurrentQuestionIndex = i
	s.Save(st)
}

// RecordAnswer upserts the answer record for id and reconciles the mistake
// set: an incorrect answer adds the id, a correct answer removes it if a
// previous attempt had put it there. Single read-modify-write.
func (s *Store) RecordAnswer(id bank.QuestionID, selected string, correct bool, sessionID string) {
	st, ok := s.load()
	if !ok {
		return
	}

	st.Answers[id] = AnswerRecord{
		Selected:  selected,
		Correct:   correct,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}

	idx := -1
	for i, m := range st.Mistakes {
		if m == id {
			idx = i
			break
		}
	}
	switch {
	case !correct && idx < 0:
		st.Mistakes = append(st.Mistakes, id)
	case correct && idx >= 0:
		st.Mistakes = append(st.Mistakes[:idx], st.Mistakes[idx+1:]...)
	}

	s.Save(st)
}

// MistakeIDs returns the ids currently answered incorrectly, in the order
// the mistakes were first made.
func (s *Store) MistakeIDs() []bank.QuestionID {
	st, ok := s.load()
	if !ok {
		return nil
	}
	return st.Mistakes
}

// IsAnswered reports whether id has a recorded answer.
func (s *Store) IsAnswered(id bank.QuestionID) bool {
	st, ok := s.load()
	if !ok {
		return false
	}
	_, answered := st.Answers[id]
	return answered
}

// Answer returns the full recorded answer for id, if any.
func (s *Store) Answer(id bank.QuestionID) (AnswerRecord, bool) {
	st, ok := s.load()
	if !ok {
		return AnswerRecord{}, false
	}
	rec, answered := st.Answers[id]
	return rec, answered
}

// SelectedAnswer returns the recorded option key for id, if any.
func (s *Store) SelectedAnswer(id bank.QuestionID) (string, bool) {
	rec, answered := s.Answer(id)
	if !answered {
		return "", false
	}
	return rec.Selected, true
}

// Statistics derives the aggregate counters from the answer history.
// TotalBankSize describes the full configured bank; callers reporting a
// sampled session must use the session's own question count instead.
func (s *Store) Statistics() Statistics {
	stats := Statistics{TotalBankSize: s.bankSize}
	st, ok := s.load()
	if !ok {
		return stats
	}

	for _, rec := range st.Answers {
		stats.CompletedCount++
		if rec.Correct {
			stats.CorrectCount++
		} else {
			stats.IncorrectCount++
		}
	}
	if stats.CompletedCount > 0 {
		stats.AccuracyPercent = int(math.Round(
			100 * float64(stats.CorrectCount) / float64(stats.CompletedCount)))
	}
	return stats
}

// Reset discards all history and persists a fresh default state.
func (s *Store) Reset() *State {
	st := &State{
		Answers:   make(map[bank.QuestionID]AnswerRecord),
		StartedAt: time.Now(),
	}
	s.Save(st)
	return st
}

// Available probes the backend with a trivial write and delete. When it
// reports false the application keeps working in memory only.
func (s *Store) Available() bool {
	const probe = "examtrainer.storage-probe"
	if err := s.kv.Set(probe, "ok"); err != nil {
		return false
	}
	if err := s.kv.Delete(probe); err != nil {
		return false
	}
	return true
}
