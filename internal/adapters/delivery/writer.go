// Package delivery writes finalized task lists to an io.Writer.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported delivery format %q", raw)
	}
}

// Writer emits one task list per Deliver call. JSON output is one object per line.
type Writer struct {
	out    io.Writer
	format Format
	mu     sync.Mutex
}

var _ ports.Delivery = (*Writer)(nil)

func NewWriter(out io.Writer, format Format) *Writer {
	if format == "" {
		format = FormatText
	}
	return &Writer{out: out, format: format}
}

type taskListJSON struct {
	MeetingID string     `json:"meeting_id"`
	Title     string     `json:"title"`
	Tasks     []taskJSON `json:"tasks"`
}

type taskJSON struct {
	Task         string `json:"task"`
	TaskDuration int    `json:"task_duration"`
	Note         string `json:"note"`
}

func (w *Writer) Deliver(ctx context.Context, meeting domain.MeetingContext, draft domain.TaskDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.format {
	case FormatJSON:
		return w.deliverJSON(meeting, draft)
	case FormatText:
		if _, err := io.WriteString(w.out, TextBody(meeting, draft)); err != nil {
			return fmt.Errorf("write task list: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported delivery format %q", w.format)
	}
}

func (w *Writer) deliverJSON(meeting domain.MeetingContext, draft domain.TaskDraft) error {
	payload := taskListJSON{
		MeetingID: string(meeting.ID),
		Title:     listTitle(meeting, draft),
		Tasks:     make([]taskJSON, 0, len(draft.Tasks)),
	}
	for _, task := range draft.Tasks {
		payload.Tasks = append(payload.Tasks, taskJSON{
			Task:         task.Title,
			TaskDuration: task.DurationMinutes,
			Note:         task.Note,
		})
	}

	if err := json.NewEncoder(w.out).Encode(payload); err != nil {
		return fmt.Errorf("encode task list: %w", err)
	}
	return nil
}

// TextBody is the plain-text task list used for mail-style delivery.
func TextBody(meeting domain.MeetingContext, draft domain.TaskDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\n\nTasks:\n", listTitle(meeting, draft))
	for _, task := range draft.Tasks {
		fmt.Fprintf(&b, "- Task: %s\n", task.Title)
		fmt.Fprintf(&b, "  Duration: %d minutes\n", task.DurationMinutes)
		fmt.Fprintf(&b, "  Note: %s\n\n", task.Note)
	}

	return b.String()
}

func listTitle(meeting domain.MeetingContext, draft domain.TaskDraft) string {
	if title := strings.TrimSpace(draft.Title); title != "" {
		return title
	}
	return meeting.Title
}
