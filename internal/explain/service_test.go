package explain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yaya9689/examtrainer/internal/bank"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Retry = RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		Multiplier:  2.0,
	}
	cfg.Timeout = time.Second
	return cfg
}

func sampleQuestion() bank.Question {
	return bank.Question{
		ID:            "q1",
		Question:      "Which layer does TCP live on?",
		Options:       map[string]string{"A": "Network", "B": "Transport", "C": "Session"},
		CorrectAnswer: "B",
	}
}

func TestMistake_Success(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "  TCP is a transport protocol.\n"})
	svc := NewService(mock, testConfig())

	got, err := svc.Mistake(context.Background(), sampleQuestion(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "TCP is a transport protocol." {
		t.Fatalf("expected trimmed content, got %q", got)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestMistake_RetriesThenSucceeds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("rate limited")},
		MockResponse{Content: "ok"},
	)
	svc := NewService(mock, testConfig())

	got, err := svc.Mistake(context.Background(), sampleQuestion(), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("unexpected content: %q", got)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestMistake_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: errors.New("down")},
		MockResponse{Err: errors.New("down")},
		MockResponse{Err: errors.New("down")},
	)
	svc := NewService(mock, testConfig())

	_, err := svc.Mistake(context.Background(), sampleQuestion(), "A")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestMistake_PromptContents(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	svc := NewService(mock, testConfig())

	if _, err := svc.Mistake(context.Background(), sampleQuestion(), "A"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.System == "" {
		t.Fatal("system prompt must be set")
	}
	for _, want := range []string{
		"Which layer does TCP live on?",
		"B) Transport",
		"Correct answer: B",
		"Learner chose: A",
	} {
		if !strings.Contains(req.Prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, req.Prompt)
		}
	}
}

func TestConfigFromEnv_KeyPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "generic")
	t.Setenv("EXAMTRAINER_OPENAI_API_KEY", "specific")

	cfg := ConfigFromEnv()
	if cfg.APIKey != "specific" {
		t.Fatalf("dedicated key must win, got %q", cfg.APIKey)
	}
	if !cfg.Enabled() {
		t.Fatal("config with key must be enabled")
	}
}

func TestConfigFromEnv_Disabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("EXAMTRAINER_OPENAI_API_KEY", "")

	if ConfigFromEnv().Enabled() {
		t.Fatal("config without key must be disabled")
	}
}
