package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() (domain.MeetingContext, domain.TaskDraft) {
	meeting := domain.MeetingContext{ID: "mtg-1", Title: "Quarterly review"}
	draft := domain.TaskDraft{
		Tasks: []domain.Task{
			{Title: "Read deck", DurationMinutes: 15, Note: "Focus on churn."},
			{Title: "Draft questions", DurationMinutes: 20},
		},
	}
	return meeting, draft
}

func TestWriterDeliversTextBody(t *testing.T) {
	var out bytes.Buffer
	meeting, draft := sampleDraft()

	require.NoError(t, NewWriter(&out, FormatText).Deliver(context.Background(), meeting, draft))

	assert.Equal(t, strings.Join([]string{
		"Title: Quarterly review",
		"",
		"Tasks:",
		"- Task: Read deck",
		"  Duration: 15 minutes",
		"  Note: Focus on churn.",
		"",
		"- Task: Draft questions",
		"  Duration: 20 minutes",
		"  Note: ",
		"",
		"",
	}, "\n"), out.String())
}

func TestWriterDeliversJSONLines(t *testing.T) {
	var out bytes.Buffer
	meeting, draft := sampleDraft()
	draft.Title = "Q1 review prep"
	writer := NewWriter(&out, FormatJSON)

	require.NoError(t, writer.Deliver(context.Background(), meeting, draft))
	require.NoError(t, writer.Deliver(context.Background(), meeting, domain.TaskDraft{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first taskListJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "mtg-1", first.MeetingID)
	assert.Equal(t, "Q1 review prep", first.Title)
	require.Len(t, first.Tasks, 2)
	assert.Equal(t, taskJSON{Task: "Read deck", TaskDuration: 15, Note: "Focus on churn."}, first.Tasks[0])

	assert.Contains(t, lines[1], `"tasks":[]`)
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	got, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestWriterCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	meeting, draft := sampleDraft()
	err := NewWriter(&bytes.Buffer{}, FormatText).Deliver(ctx, meeting, draft)
	require.ErrorIs(t, err, context.Canceled)
}
