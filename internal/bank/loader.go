package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrEmptyBank is returned when no file yielded any questions.
var ErrEmptyBank = errors.New("no questions available")

// Source supplies the full ordered question set for a session.
type Source interface {
	FetchAll(ctx context.Context) ([]Question, error)
}

// Loader reads and concatenates question-bank JSON files from a directory.
// A file that cannot be read, parsed, or validated is skipped with a
// warning; only an empty combined result is a failure.
type Loader struct {
	dir  string
	warn io.Writer
}

// NewLoader creates a Loader for the given data directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, warn: os.Stderr}
}

// SetWarnWriter redirects skip warnings (used by tests).
func (l *Loader) SetWarnWriter(w io.Writer) { l.warn = w }

// Files returns the bank file paths in load order (sorted by name).
func (l *Loader) Files() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir %s: %w", l.dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(l.dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FetchAll implements Source. It loads every bank file, concatenates the
// results in file order, and enforces id uniqueness across the combined set.
func (l *Loader) FetchAll(ctx context.Context) ([]Question, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var combined []Question
	seen := make(map[QuestionID]string)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		qs, err := LoadFile(path)
		if err != nil {
			fmt.Fprintf(l.warn, "skipping %s: %v\n", filepath.Base(path), err)
			continue
		}

		for _, q := range qs {
			if prev, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("duplicate question id %s in %s (first seen in %s)",
					q.ID, filepath.Base(path), prev)
			}
			seen[q.ID] = filepath.Base(path)
		}
		combined = append(combined, qs...)
	}

	if len(combined) == 0 {
		return nil, ErrEmptyBank
	}
	return combined, nil
}

// LoadFile reads a single bank file. Both supported shapes are accepted:
// a bare question array, or a wrapper object whose "questions" field holds
// the array.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeBank(data)
}

func decodeBank(data []byte) ([]Question, error) {
	list, err := unwrap(data)
	if err != nil {
		return nil, err
	}

	// Schema check on the parsed value, then decode into the typed form.
	var parsed any
	if err := json.Unmarshal(list, &parsed); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if err := validateQuestionList(parsed); err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(list, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	for _, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	return qs, nil
}

// unwrap normalizes the two accepted file shapes into the raw array form.
func unwrap(data []byte) (json.RawMessage, error) {
	trimmed := strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if strings.HasPrefix(trimmed, "[") {
		return json.RawMessage(data), nil
	}

	var wrapper struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	if wrapper.Questions == nil {
		return nil, errors.New("bank file is neither a question array nor a {questions: [...]} wrapper")
	}
	return wrapper.Questions, nil
}
