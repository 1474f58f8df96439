package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yaya9689/examtrainer/internal/bank"
)

const systemPrompt = "You are a study coach for a multiple-choice exam. " +
	"Explain in 2-4 short sentences why the correct answer is right and " +
	"why the chosen answer is wrong. Answer in the language the question " +
	"is written in."

// Service produces explanations for answered-wrong questions.
type Service struct {
	provider Provider
	retry    RetryConfig
	timeout  time.Duration
}

// NewService creates a Service using the given provider and config.
func NewService(provider Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		retry:    cfg.Retry,
		timeout:  cfg.Timeout,
	}
}

// Mistake explains why selected is wrong for q. Transient provider
// failures are retried with exponential backoff.
func (s *Service) Mistake(ctx context.Context, q bank.Question, selected string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req := Request{
		System:    systemPrompt,
		Prompt:    buildPrompt(q, selected),
		MaxTokens: 300,
	}

	var lastErr error
	wait := s.retry.InitialWait
	attempts := s.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
			wait = time.Duration(float64(wait) * s.retry.Multiplier)
		}

		resp, err := s.provider.Generate(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		return strings.TrimSpace(resp.Content), nil
	}

	return "", fmt.Errorf("explain after %d attempts: %w", attempts, lastErr)
}

// buildPrompt renders the question, its options, and the two answers.
func buildPrompt(q bank.Question, selected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	for _, key := range q.OptionKeys() {
		fmt.Fprintf(&b, "%s) %s\n", key, q.Options[key])
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswer)
	fmt.Fprintf(&b, "Learner chose: %s\n", selected)
	return b.String()
}
