package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
)

var errTimeout = errors.New("context deadline exceeded")

type modelReply struct {
	text string
	err  error
}

// scriptedModel answers generation and summary prompts from separate queues.
type scriptedModel struct {
	mu             sync.Mutex
	generation     []modelReply
	summary        []modelReply
	generationSeen []domain.Prompt
	summarySeen    []domain.Prompt
	opts           []ports.CompletionOptions
}

func (m *scriptedModel) Complete(_ context.Context, prompt domain.Prompt, opts ports.CompletionOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.opts = append(m.opts, opts)

	if prompt.System == summarySystemPrompt {
		m.summarySeen = append(m.summarySeen, prompt)
		if len(m.summary) == 0 {
			return "", fmt.Errorf("unexpected summary call %d", len(m.summarySeen))
		}
		reply := m.summary[0]
		m.summary = m.summary[1:]
		return reply.text, reply.err
	}

	m.generationSeen = append(m.generationSeen, prompt)
	if len(m.generation) == 0 {
		return "", fmt.Errorf("unexpected generation call %d", len(m.generationSeen))
	}
	reply := m.generation[0]
	m.generation = m.generation[1:]
	return reply.text, reply.err
}

// scriptedPresenter replays responses and records what it was shown.
type scriptedPresenter struct {
	responses []domain.Response
	shown     []ports.Presentation
}

func (p *scriptedPresenter) Present(_ context.Context, presentation ports.Presentation) (domain.Response, error) {
	p.shown = append(p.shown, presentation)
	if len(p.responses) == 0 {
		return domain.Response{}, fmt.Errorf("unexpected presentation %d", len(p.shown))
	}

	response := p.responses[0]
	p.responses = p.responses[1:]
	return response, nil
}

type memoryStore struct {
	state   domain.PreferenceState
	loadErr error
	saveErr error
	saves   []domain.PreferenceState
}

func (s *memoryStore) Load(context.Context) (domain.PreferenceState, error) {
	if s.loadErr != nil {
		return domain.PreferenceState{}, s.loadErr
	}
	return s.state, nil
}

func (s *memoryStore) Save(_ context.Context, state domain.PreferenceState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, state)
	s.state = state
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func draftJSON(titles ...string) string {
	tasks := ""
	for i, title := range titles {
		if i > 0 {
			tasks += ","
		}
		tasks += fmt.Sprintf(`{"task": %q, "task_duration": 15, "note": ""}`, title)
	}
	return fmt.Sprintf(`{"title": "Quarterly review", "tasks": [%s]}`, tasks)
}

func ok(text string) modelReply {
	return modelReply{text: text}
}

func failed(err error) modelReply {
	return modelReply{err: err}
}

func testMeeting() domain.MeetingContext {
	return domain.MeetingContext{
		ID:          "mtg-1",
		Title:       "Quarterly review",
		Description: "Review Q1 results with finance.",
		Start:       testNow.Add(24 * time.Hour),
		End:         testNow.Add(25*time.Hour + 30*time.Minute),
		Attendees:   []string{"ana@example.com", "ben@example.com"},
		Attachments: []domain.AttachmentSummary{
			{Title: "Q1 deck", Summary: "Revenue up 12%, churn flat."},
		},
	}
}
