package bank

import (
	"encoding/json"
	"fmt"
	"sort"
)

// QuestionID is the stable identifier of a question. Bank files may encode
// it as a JSON number or a string; both normalize to the string form, which
// is what the progress store keys answers by. The normalized string is also
// the only serialized form: re-encoding as a number would let ids like
// "007" drift apart between the answers map and the mistake list.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = QuestionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("question id must be a string or number, got %s", data)
	}
	*id = QuestionID(n.String())
	return nil
}

// Question is one multiple-choice question as supplied by a bank file.
type Question struct {
	ID            QuestionID        `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
}

// OptionKeys returns the option keys in display order. Options decode into
// a map, so the file's declaration order is gone by the time we see them;
// lexicographic order stands in for it, which is exact for the conventional
// A-D labeling. Banks with numeric keys past "9" or mixed-case labels would
// need an ordered option slice instead.
func (q Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks the structural invariants of a single question.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if q.Question == "" {
		return fmt.Errorf("question %s has no text", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s has %d options, need at least 2", q.ID, len(q.Options))
	}
	if _, ok := q.Options[q.CorrectAnswer]; !ok {
		return fmt.Errorf("question %s: correct answer %q is not an option key", q.ID, q.CorrectAnswer)
	}
	return nil
}
