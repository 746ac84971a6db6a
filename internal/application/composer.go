package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

const generationSystemPrompt = `Review the meeting details and create clear, actionable tasks that help the recipient prepare before the meeting starts.
Focus on tasks such as reviewing documents, understanding the agenda, or identifying key discussion points.
Ensure each task is directly related to the meeting content and easy to follow.`

const summarySystemPrompt = "You are a helpful assistant that summarizes user feedback for improving task generation."

const outputFormatInstructions = `Respond with a single JSON object and nothing else, using this shape:
{"title": "<event title>", "tasks": [{"task": "<what to do>", "task_duration": <minutes as integer>, "note": "<points to keep in mind>"}]}`

// Composer builds prompts. It holds no state, so identical inputs always yield identical prompts.
type Composer struct{}

func NewComposer() Composer {
	return Composer{}
}

func (Composer) Compose(meeting domain.MeetingContext, prior *domain.TaskDraft, comment *string, guidance string) domain.Prompt {
	var b strings.Builder

	b.WriteString("## Event Details\n")
	fmt.Fprintf(&b, "Event Summary: %s\n", meeting.Title)
	fmt.Fprintf(&b, "Description: %s\n", meeting.Description)
	fmt.Fprintf(&b, "Time Window: %s\n", formatWindow(meeting.Start, meeting.End))
	fmt.Fprintf(&b, "Meeting Duration (hours): %s\n", formatHours(meeting.Duration()))
	fmt.Fprintf(&b, "Number of Participants: %d\n", len(meeting.Attendees))
	fmt.Fprintf(&b, "Attendees: %s\n", strings.Join(meeting.Attendees, ", "))

	b.WriteString("\n## Summaries of Attachments\n")
	for i, attachment := range meeting.Attachments {
		title := strings.TrimSpace(attachment.Title)
		if title == "" {
			title = fmt.Sprintf("Attachment %d", i+1)
		}
		fmt.Fprintf(&b, "### %s\n%s\n", title, attachment.Summary)
	}

	b.WriteString("\n## Instructions\n")
	b.WriteString("Based on the above event details, propose:\n")
	b.WriteString("- Tasks that should be completed before the event starts\n")
	b.WriteString("- The duration required for each task\n")
	b.WriteString("- Points to keep in mind for each task\n")

	if guidance != "" {
		b.WriteString("\n## User Preferences\n")
		b.WriteString("Honor these preferences learned from the user's earlier feedback:\n")
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	if prior != nil && comment != nil {
		b.WriteString("\n## Previous Task List\n")
		for i, description := range prior.Descriptions() {
			fmt.Fprintf(&b, "%d. %s\n", i+1, description)
		}
		b.WriteString("\n## User Feedback\n")
		b.WriteString(*comment)
		b.WriteString("\n\nRevise the previous task list to address the feedback. Keep the tasks the feedback does not object to instead of starting over.\n")
	}

	b.WriteString("\n## Output Format\n")
	b.WriteString(outputFormatInstructions)
	b.WriteString("\n")

	return domain.Prompt{System: generationSystemPrompt, User: b.String()}
}

func (Composer) ComposeSummary(entries []domain.FeedbackEntry, priorGuidance string) domain.Prompt {
	var b strings.Builder

	if priorGuidance != "" {
		b.WriteString("## Current Guidance\n")
		b.WriteString(priorGuidance)
		b.WriteString("\n\n")
	}

	b.WriteString("## New Feedback\n")
	b.WriteString("You have received the following user feedback to improve task generation:\n")
	for _, entry := range entries {
		comment := strings.TrimSpace(entry.Comment)
		if comment == "" {
			comment = "(rejected without comment)"
		}
		fmt.Fprintf(&b, "- %s\n", comment)
	}

	b.WriteString("\nProvide a concise summary of the feedback to incorporate into the task generation instructions.")
	if priorGuidance != "" {
		b.WriteString(" Merge it with the current guidance so no earlier preference is lost.")
	}
	b.WriteString(" Reply with the guidance text only.\n")

	return domain.Prompt{System: summarySystemPrompt, User: b.String()}
}

func formatWindow(start, end time.Time) string {
	switch {
	case start.IsZero() && end.IsZero():
		return ""
	case end.IsZero():
		return start.Format(time.RFC3339)
	case start.IsZero():
		return "until " + end.Format(time.RFC3339)
	default:
		return start.Format(time.RFC3339) + " - " + end.Format(time.RFC3339)
	}
}

func formatHours(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	return strconv.FormatFloat(math.Round(d.Hours()*100)/100, 'f', -1, 64)
}
