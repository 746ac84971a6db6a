package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/application"
	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 20

type DraftOptions struct {
	ShowIteration bool
	Iteration     int
	MaxIterations int
}

type PreferencesOptions struct {
	Now       time.Time
	Threshold int
	StorePath string
}

func Draft(meeting domain.MeetingContext, draft domain.TaskDraft, opts DraftOptions) (string, error) {
	return run(func(s styles) string {
		return renderDraft(meeting, draft, opts, s)
	})
}

func Preferences(status application.PreferenceStatus, opts PreferencesOptions) (string, error) {
	return run(func(s styles) string {
		return renderPreferences(status, opts, s)
	})
}

func renderDraft(meeting domain.MeetingContext, draft domain.TaskDraft, opts DraftOptions, s styles) string {
	lines := []string{
		s.title.Render(draftTitle(meeting, draft)),
		s.header.Render(meetingLine(meeting)),
	}
	if opts.ShowIteration {
		lines = append(lines, s.header.Render(IterationLabel(opts.Iteration, opts.MaxIterations)))
	}

	if draft.Empty() {
		lines = append(lines, s.section.Render(s.empty.Render("No tasks were generated.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	tasks := make([]string, 0, len(draft.Tasks)*2)
	total := 0
	for i, task := range draft.Tasks {
		tasks = append(tasks, taskLine(i+1, task, s))
		if note := strings.TrimSpace(task.Note); note != "" {
			tasks = append(tasks, s.note.Render(note))
		}
		total += task.DurationMinutes
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, tasks...)))
	lines = append(lines, s.section.Render(s.header.Render(totalLine(total, len(draft.Tasks)))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// IterationLabel numbers drafts from 1; a zero budget still shows one draft.
func IterationLabel(iteration, maxIterations int) string {
	return fmt.Sprintf("Iteration %d/%d", iteration+1, max(maxIterations, 1))
}

func draftTitle(meeting domain.MeetingContext, draft domain.TaskDraft) string {
	if title := strings.TrimSpace(draft.Title); title != "" {
		return "Preparation: " + title
	}
	if title := strings.TrimSpace(meeting.Title); title != "" {
		return "Preparation: " + title
	}
	return "Preparation tasks"
}

func meetingLine(meeting domain.MeetingContext) string {
	parts := []string{fmt.Sprintf("meeting: %s", meeting.ID)}
	if window := formatWindow(meeting.Start, meeting.End); window != "" {
		parts = append(parts, window)
	}

	attendees := len(meeting.Attendees)
	suffix := "attendees"
	if attendees == 1 {
		suffix = "attendee"
	}
	parts = append(parts, fmt.Sprintf("%d %s", attendees, suffix))

	return strings.Join(parts, " · ")
}

func formatWindow(start, end time.Time) string {
	switch {
	case start.IsZero():
		return ""
	case end.IsZero() || end.Before(start):
		return start.Format("2006-01-02 15:04 MST")
	case sameDay(start, end):
		return fmt.Sprintf("%s-%s", start.Format("2006-01-02 15:04"), end.Format("15:04 MST"))
	default:
		return fmt.Sprintf("%s - %s", start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04 MST"))
	}
}

func taskLine(position int, task domain.Task, s styles) string {
	line := s.task.Render(fmt.Sprintf("%d. %s", position, task.Title))
	if task.DurationMinutes > 0 {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, " ", s.duration.Render(fmt.Sprintf("(%d min)", task.DurationMinutes)))
	}
	return line
}

func totalLine(minutes, tasks int) string {
	suffix := "tasks"
	if tasks == 1 {
		suffix = "task"
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", tasks, suffix)
	}
	return fmt.Sprintf("total: %s across %d %s", formatMinutes(minutes), tasks, suffix)
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

func renderPreferences(status application.PreferenceStatus, opts PreferencesOptions, s styles) string {
	lines := []string{s.title.Render("Preference Store")}
	if opts.StorePath != "" {
		lines = append(lines, s.header.Render("store: "+opts.StorePath))
	}
	lines = append(lines, s.header.Render(formatUpdated(status.UpdatedAt, opts.Now)))

	guidance := []string{s.detail.Render("guidance:")}
	if strings.TrimSpace(status.Guidance) == "" {
		guidance = append(guidance, s.guidance.Render(s.empty.Render("No guidance yet.")))
	} else {
		guidance = append(guidance, s.guidance.Render(status.Guidance))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, guidance...)))

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, pendingLines(status, opts, s)...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pendingLines(status application.PreferenceStatus, opts PreferencesOptions, s styles) []string {
	header := s.detail.Render(fmt.Sprintf("pending feedback: %d", status.PendingCount))
	if opts.Threshold > 0 {
		header = lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.detail.Render(fmt.Sprintf("pending feedback: %d/%d", status.PendingCount, opts.Threshold)),
			" ",
			renderProgressBar(status.PendingCount, opts.Threshold, progressBarWidth, s),
		)
		if status.PendingCount >= opts.Threshold {
			header += " " + s.warning.Render("[summarize due]")
		}
	}

	lines := []string{header}
	if len(status.Pending) == 0 {
		return append(lines, s.empty.Render("No pending feedback."))
	}

	for _, entry := range status.Pending {
		lines = append(lines, s.guidance.Render(feedbackLine(entry, opts.Now)))
	}

	return lines
}

func feedbackLine(entry domain.FeedbackEntry, now time.Time) string {
	comment := strings.TrimSpace(entry.Comment)
	if comment == "" {
		comment = "(rejected without comment)"
	}

	var meta []string
	if entry.MeetingID != "" {
		meta = append(meta, string(entry.MeetingID))
	}
	if !entry.CreatedAt.IsZero() {
		meta = append(meta, formatTimestamp(entry.CreatedAt, now))
	}
	if len(meta) == 0 {
		return "- " + comment
	}

	return fmt.Sprintf("- %s (%s)", comment, strings.Join(meta, ", "))
}

func renderProgressBar(value, limit, width int, s styles) string {
	if width <= 0 || limit <= 0 {
		return ""
	}

	fraction := math.Min(float64(value)/float64(limit), 1)
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func formatUpdated(updatedAt, now time.Time) string {
	if updatedAt.IsZero() {
		return "updated: never"
	}
	if now.IsZero() {
		return "updated: " + updatedAt.Format(time.RFC3339)
	}
	return "updated " + formatAgo(updatedAt, now)
}

func formatAgo(at, now time.Time) string {
	elapsed := now.Sub(at)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return plural(int(elapsed.Hours()/24), "day") + " ago"
	}
}

func formatTimestamp(at, now time.Time) string {
	if !now.IsZero() && sameDay(at, now) {
		return at.Format("15:04")
	}
	return at.Format("15:04 on 02 Jan")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func sameDay(a, b time.Time) bool {
	yearA, monthA, dayA := a.Date()
	yearB, monthB, dayB := b.In(a.Location()).Date()
	return yearA == yearB && monthA == monthB && dayA == dayB
}
