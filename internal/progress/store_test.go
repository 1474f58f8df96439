package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaya9689/examtrainer/internal/bank"
)

func newTestStore(t *testing.T, bankSize int) (*Store, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return NewStore(kv, DefaultStorageKey, bankSize), kv
}

func TestNewStore_InitializesFreshState(t *testing.T) {
	s, kv := newTestStore(t, 10)

	require.Equal(t, 0, s.CurrentIndex())
	require.Empty(t, s.MistakeIDs())

	_, err := kv.Get(DefaultStorageKey)
	require.NoError(t, err, "fresh state should be persisted immediately")
}

func TestNewStore_CorruptStateResets(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(DefaultStorageKey, "{not json"))

	s := NewStore(kv, DefaultStorageKey, 5)
	require.Equal(t, 0, s.CurrentIndex())

	raw, err := kv.Get(DefaultStorageKey)
	require.NoError(t, err)
	require.Contains(t, raw, "answers", "corrupt value should be replaced with a valid state")
}

func TestRecordAnswer_OverwritesPreviousRecord(t *testing.T) {
	s, _ := newTestStore(t, 3)

	s.RecordAnswer("q1", "A", false, "sess-1")
	s.RecordAnswer("q1", "B", true, "sess-1")

	selected, ok := s.SelectedAnswer("q1")
	require.True(t, ok)
	require.Equal(t, "B", selected)

	st := s.Statistics()
	require.Equal(t, 1, st.CompletedCount, "re-answering must not double-count")
	require.Equal(t, 1, st.CorrectCount)
}

func TestRecordAnswer_MistakeReconciliation(t *testing.T) {
	s, _ := newTestStore(t, 3)

	s.RecordAnswer("q1", "A", false, "sess-1")
	s.RecordAnswer("q2", "B", false, "sess-1")
	require.Equal(t, []bank.QuestionID{"q1", "q2"}, s.MistakeIDs())

	// A wrong answer repeated does not duplicate the entry.
	s.RecordAnswer("q1", "C", false, "sess-1")
	require.Equal(t, []bank.QuestionID{"q1", "q2"}, s.MistakeIDs())

	// Answering correctly removes the id.
	s.RecordAnswer("q1", "B", true, "sess-1")
	require.Equal(t, []bank.QuestionID{"q2"}, s.MistakeIDs())

	// A correct first answer never enters the set.
	s.RecordAnswer("q3", "A", true, "sess-1")
	require.Equal(t, []bank.QuestionID{"q2"}, s.MistakeIDs())

	// And wrong again re-adds it, at the end.
	s.RecordAnswer("q1", "A", false, "sess-1")
	require.Equal(t, []bank.QuestionID{"q2", "q1"}, s.MistakeIDs())
}

func TestRecordAnswer_CorrectionRestoresPerfectAccuracy(t *testing.T) {
	s, _ := newTestStore(t, 3)

	s.RecordAnswer("1", "A", true, "sess-1")
	s.RecordAnswer("2", "A", false, "sess-1")
	require.Equal(t, []bank.QuestionID{"2"}, s.MistakeIDs())

	s.RecordAnswer("2", "B", true, "sess-1")
	require.Empty(t, s.MistakeIDs())

	s.RecordAnswer("3", "C", true, "sess-1")

	st := s.Statistics()
	require.Equal(t, 3, st.CompletedCount)
	require.Equal(t, 3, st.CorrectCount)
	require.Equal(t, 100, st.AccuracyPercent)
}

func TestRecordAnswer_LeadingZeroIDSurvivesReload(t *testing.T) {
	kv := NewMemoryKV()

	s1 := NewStore(kv, DefaultStorageKey, 10)
	s1.RecordAnswer("007", "A", false, "sess-1")

	// A fresh store over the same backend must see the identical id in
	// both the answers map and the mistake list; serializing the id back
	// to a number would silently split "007" into "7".
	s2 := NewStore(kv, DefaultStorageKey, 10)
	require.Equal(t, []bank.QuestionID{"007"}, s2.MistakeIDs())
	require.True(t, s2.IsAnswered("007"))

	selected, ok := s2.SelectedAnswer("007")
	require.True(t, ok)
	require.Equal(t, "A", selected)

	for _, id := range s2.MistakeIDs() {
		rec, answered := s2.Answer(id)
		require.True(t, answered, "mistake id %s has no answer record", id)
		require.False(t, rec.Correct)
	}
}

func TestRecordAnswer_StampsSessionID(t *testing.T) {
	s, _ := newTestStore(t, 3)

	s.RecordAnswer("q1", "A", false, "sess-1")
	rec, ok := s.Answer("q1")
	require.True(t, ok)
	require.Equal(t, "sess-1", rec.SessionID)

	// A re-answer from another session overwrites the stamp.
	s.RecordAnswer("q1", "B", true, "sess-2")
	rec, _ = s.Answer("q1")
	require.Equal(t, "sess-2", rec.SessionID)
}

func TestStatistics_AccuracyRounding(t *testing.T) {
	s, _ := newTestStore(t, 100)

	st := s.Statistics()
	require.Equal(t, 0, st.AccuracyPercent, "no answers means 0, not NaN")

	s.RecordAnswer("q1", "A", true, "sess-1")
	s.RecordAnswer("q2", "A", true, "sess-1")
	s.RecordAnswer("q3", "A", false, "sess-1")

	st = s.Statistics()
	require.Equal(t, 3, st.CompletedCount)
	require.Equal(t, 2, st.CorrectCount)
	require.Equal(t, 1, st.IncorrectCount)
	require.Equal(t, 67, st.AccuracyPercent, "2/3 rounds to 67")
	require.Equal(t, 100, st.TotalBankSize, "bank size comes from construction, not answers")
}

func TestSetCurrentIndex_PersistsAcrossStores(t *testing.T) {
	kv := NewMemoryKV()

	s1 := NewStore(kv, DefaultStorageKey, 10)
	s1.SetCurrentIndex(4)
	s1.RecordAnswer("q1", "A", false, "sess-1")

	s2 := NewStore(kv, DefaultStorageKey, 10)
	require.Equal(t, 4, s2.CurrentIndex())
	require.Equal(t, []bank.QuestionID{"q1"}, s2.MistakeIDs())
	require.True(t, s2.IsAnswered("q1"))
}

func TestReset_DiscardsEverything(t *testing.T) {
	s, _ := newTestStore(t, 10)
	s.RecordAnswer("q1", "A", false, "sess-1")
	s.SetCurrentIndex(7)

	s.Reset()

	require.Equal(t, 0, s.CurrentIndex())
	require.Empty(t, s.MistakeIDs())
	require.False(t, s.IsAnswered("q1"))
	require.Equal(t, 0, s.Statistics().CompletedCount)
}

// failingKV accepts nothing: every operation errors. Unlike UnavailableKV
// its Get also fails, exercising the load path.
type failingKV struct{}

var errBackend = errors.New("backend down")

func (failingKV) Get(string) (string, error) { return "", errBackend }
func (failingKV) Set(string, string) error   { return errBackend }
func (failingKV) Delete(string) error        { return errBackend }

func TestStore_FailingBackendIsSwallowed(t *testing.T) {
	s := NewStore(failingKV{}, DefaultStorageKey, 10)

	// None of these may panic or error; they degrade to empty reads.
	s.RecordAnswer("q1", "A", false, "sess-1")
	s.SetCurrentIndex(3)

	require.Equal(t, 0, s.CurrentIndex())
	require.Empty(t, s.MistakeIDs())
	require.False(t, s.IsAnswered("q1"))
	require.Equal(t, 0, s.Statistics().CompletedCount)
	require.Equal(t, 10, s.Statistics().TotalBankSize)
	require.False(t, s.Available())
}

func TestStore_UnavailableKV(t *testing.T) {
	s := NewStore(UnavailableKV{}, DefaultStorageKey, 5)

	require.False(t, s.Available())
	s.RecordAnswer("q1", "A", true, "sess-1")
	require.False(t, s.IsAnswered("q1"), "nothing persists in degraded mode")
}

func TestStore_AvailableWithWorkingBackend(t *testing.T) {
	s, kv := newTestStore(t, 5)
	require.True(t, s.Available())

	// The probe key must not linger.
	_, err := kv.Get("examtrainer.storage-probe")
	require.ErrorIs(t, err, ErrNotFound)
}
