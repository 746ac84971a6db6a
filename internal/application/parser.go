package application

import (
	"bufio"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")
	listItemPattern    = regexp.MustCompile(`^\s*(?:[-*+•]|\d+[.)])\s+(.+?)\s*$`)
	durationPattern    = regexp.MustCompile(`\((\d+)\s*(?:min|mins|minutes)\)`)
)

type taskListPayload struct {
	Title string        `json:"title"`
	Tasks []taskPayload `json:"tasks"`
}

type taskPayload struct {
	Task         string          `json:"task"`
	TaskDuration json.RawMessage `json:"task_duration"`
	Note         string          `json:"note"`
}

// ParseTaskDraft extracts an ordered task list from free-form model output.
// It prefers the JSON object requested by the prompt and falls back to Markdown list items.
// The returned bool is false when nothing recognizable was found.
func ParseTaskDraft(raw string) (string, []domain.Task, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil, false
	}

	if title, tasks, ok := parseJSONTaskList(trimmed); ok {
		return title, tasks, true
	}

	tasks := parseListItems(trimmed)
	return "", tasks, len(tasks) > 0
}

func parseJSONTaskList(text string) (string, []domain.Task, bool) {
	candidates := make([]string, 0, 2)
	for _, match := range fencedBlockPattern.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, strings.TrimSpace(match[1]))
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	for _, candidate := range candidates {
		var payload taskListPayload
		if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
			continue
		}

		tasks := make([]domain.Task, 0, len(payload.Tasks))
		for _, item := range payload.Tasks {
			title := strings.TrimSpace(item.Task)
			if title == "" {
				continue
			}
			tasks = append(tasks, domain.Task{
				Title:           title,
				DurationMinutes: parseMinutes(item.TaskDuration),
				Note:            strings.TrimSpace(item.Note),
			})
		}
		if len(tasks) > 0 {
			return strings.TrimSpace(payload.Title), tasks, true
		}
	}

	return "", nil, false
}

// parseMinutes accepts 30, 30.0 and "30 minutes".
func parseMinutes(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		if number < 0 {
			return 0
		}
		return int(number)
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes < 0 {
		return 0
	}

	return minutes
}

func parseListItems(text string) []domain.Task {
	var tasks []domain.Task

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		match := listItemPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		item := strings.Trim(match[1], "*_` ")
		if item == "" {
			continue
		}

		task := domain.Task{Title: item}
		if duration := durationPattern.FindStringSubmatchIndex(item); duration != nil {
			minutes, _ := strconv.Atoi(item[duration[2]:duration[3]])
			task.DurationMinutes = minutes
			task.Title = strings.TrimSpace(item[:duration[0]])
			task.Note = strings.TrimSpace(strings.TrimLeft(item[duration[1]:], " -:"))
		}
		if task.Title == "" {
			continue
		}

		tasks = append(tasks, task)
	}

	return tasks
}
