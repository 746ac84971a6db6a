package domain

import "time"

type MeetingID string

type AttachmentSummary struct {
	Title   string
	Summary string
}

// MeetingContext is assembled outside the core and treated as read-only.
type MeetingContext struct {
	ID          MeetingID
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
	Attachments []AttachmentSummary
}

func (m MeetingContext) Duration() time.Duration {
	if m.Start.IsZero() || m.End.IsZero() || m.End.Before(m.Start) {
		return 0
	}

	return m.End.Sub(m.Start)
}
