package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const meetingsFixture = `version = 1

[[meetings]]
id = "mtg-1"
title = "Quarterly review"
description = "Review Q1 results with finance."
start = "2026-03-03T09:00:00Z"
end = "2026-03-03T10:30:00Z"
attendees = ["ana@example.com", " ", "ben@example.com"]

[[meetings.attachments]]
title = "Q1 deck"
summary = "Revenue up 12%, churn flat."

[[meetings]]
title = "Vendor sync"
start = "2026-03-04T14:00:00+01:00"
`

func writeMeetings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meetings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMeetingRepositoryList(t *testing.T) {
	t.Parallel()

	repo, err := NewMeetingRepository(writeMeetings(t, meetingsFixture))
	require.NoError(t, err)
	repo.newID = func() string { return "generated-id" }

	meetings, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 2)

	assert.Equal(t, domain.MeetingContext{
		ID:          "mtg-1",
		Title:       "Quarterly review",
		Description: "Review Q1 results with finance.",
		Start:       time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 3, 3, 10, 30, 0, 0, time.UTC),
		Attendees:   []string{"ana@example.com", "ben@example.com"},
		Attachments: []domain.AttachmentSummary{{Title: "Q1 deck", Summary: "Revenue up 12%, churn flat."}},
	}, meetings[0])
	assert.Equal(t, 90*time.Minute, meetings[0].Duration())

	assert.Equal(t, domain.MeetingID("generated-id"), meetings[1].ID)
	assert.Equal(t, time.Date(2026, 3, 4, 13, 0, 0, 0, time.UTC), meetings[1].Start)
	assert.True(t, meetings[1].End.IsZero())
	assert.Empty(t, meetings[1].Attachments)
}

func TestMeetingRepositoryGetByID(t *testing.T) {
	t.Parallel()

	repo, err := NewMeetingRepository(writeMeetings(t, meetingsFixture))
	require.NoError(t, err)

	meeting, err := repo.GetByID(context.Background(), "mtg-1")
	require.NoError(t, err)
	assert.Equal(t, "Quarterly review", meeting.Title)

	_, err = repo.GetByID(context.Background(), "mtg-404")
	require.ErrorIs(t, err, domain.ErrMeetingNotFound)
}

func TestMeetingRepositoryErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "malformed", content: "meetings = [", wantMsg: "decode meetings file"},
		{name: "future version", content: "version = 2\n", wantMsg: "unsupported meetings schema version"},
		{
			name:    "bad timestamp",
			content: strings.Join([]string{"[[meetings]]", "id = \"a\"", "start = \"tomorrow\""}, "\n"),
			wantMsg: "decode meeting 0: start",
		},
		{
			name:    "duplicate id",
			content: strings.Join([]string{"[[meetings]]", "id = \"a\"", "[[meetings]]", "id = \"a\""}, "\n"),
			wantMsg: "duplicate meeting id",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, err := NewMeetingRepository(writeMeetings(t, tt.content))
			require.NoError(t, err)

			_, err = repo.List(context.Background())
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestMeetingRepositoryMissingFile(t *testing.T) {
	t.Parallel()

	repo, err := NewMeetingRepository(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	_, err = repo.List(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewMeetingRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewMeetingRepository("  ")
	require.Error(t, err)
}
