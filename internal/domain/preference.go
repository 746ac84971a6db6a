package domain

import "time"

type FeedbackEntry struct {
	Comment   string
	MeetingID MeetingID
	CreatedAt time.Time
}

// PreferenceState is the persisted pair of not-yet-summarized feedback and distilled guidance.
type PreferenceState struct {
	Pending   []FeedbackEntry
	Guidance  string
	UpdatedAt time.Time
}

func (s PreferenceState) NeedsSummary(threshold int) bool {
	return threshold > 0 && len(s.Pending) >= threshold
}

// WithPending returns a copy with entries appended; the receiver's slice is not shared.
func (s PreferenceState) WithPending(entries []FeedbackEntry, now time.Time) PreferenceState {
	pending := make([]FeedbackEntry, 0, len(s.Pending)+len(entries))
	pending = append(pending, s.Pending...)
	pending = append(pending, entries...)

	return PreferenceState{
		Pending:   pending,
		Guidance:  s.Guidance,
		UpdatedAt: now,
	}
}

func (s PreferenceState) Compacted(guidance string, now time.Time) PreferenceState {
	return PreferenceState{
		Pending:   []FeedbackEntry{},
		Guidance:  guidance,
		UpdatedAt: now,
	}
}
