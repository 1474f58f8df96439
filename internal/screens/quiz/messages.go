package quiz

import (
	"github.com/yaya9689/examtrainer/internal/quiz"
)

// sessionReadyMsg is sent when the question bank has been fetched and the
// session is started (or has failed to start).
type sessionReadyMsg struct {
	Session *quiz.Session
	Err     error
}
