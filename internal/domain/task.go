package domain

import (
	"fmt"
	"strings"
)

type Task struct {
	Title           string
	DurationMinutes int
	Note            string
}

// Description flattens a task into the single line shown to the model and the user.
func (t Task) Description() string {
	parts := []string{strings.TrimSpace(t.Title)}
	if t.DurationMinutes > 0 {
		parts = append(parts, fmt.Sprintf("(%d min)", t.DurationMinutes))
	}
	if note := strings.TrimSpace(t.Note); note != "" {
		parts = append(parts, "- "+note)
	}

	return strings.Join(parts, " ")
}

type Prompt struct {
	System string
	User   string
}

// TaskDraft is one generated candidate. A later draft supersedes it; drafts are never edited.
type TaskDraft struct {
	Title     string
	Tasks     []Task
	Iteration int
	Prompt    Prompt
}

func (d TaskDraft) Descriptions() []string {
	out := make([]string, 0, len(d.Tasks))
	for _, task := range d.Tasks {
		out = append(out, task.Description())
	}

	return out
}

func (d TaskDraft) Empty() bool {
	return len(d.Tasks) == 0
}
