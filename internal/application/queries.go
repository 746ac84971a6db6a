package application

import (
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

type PreferenceStatus struct {
	Guidance     string
	Pending      []domain.FeedbackEntry
	PendingCount int
	UpdatedAt    time.Time
}

type SessionResult struct {
	SessionID  domain.SessionID
	Meeting    domain.MeetingContext
	Draft      domain.TaskDraft
	Outcome    domain.Outcome
	Iterations int
	Rejections int
	Malformed  int
	Feedback   []domain.FeedbackEntry
	// Preferences is the state persisted at DONE.
	Preferences domain.PreferenceState
	Summarized  bool
	// SummaryErr is set when compaction was attempted and failed; the session itself still succeeded.
	SummaryErr error
}
