package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMaxIterations    = 3
	DefaultSummaryThreshold = 2
)

var ErrUnsupportedVerdict = errors.New("unsupported presenter verdict")

type LoopOptions struct {
	MaxIterations    int
	SummaryThreshold int
}

// Observer sees a copy of the session after every state transition.
type Observer func(session domain.LoopSession)

type LoopController struct {
	store      ports.PreferenceStore
	composer   Composer
	generator  *TaskGenerator
	summarizer *FeedbackSummarizer
	presenter  ports.Presenter
	clock      ports.Clock
	opts       LoopOptions
	logger     *zap.Logger
	observer   Observer
	newID      func() domain.SessionID

	// mu keeps sessions sequential: each one reads and later rewrites the shared preference state.
	mu sync.Mutex
}

type LoopControllerOption func(*LoopController)

func WithObserver(observer Observer) LoopControllerOption {
	return func(c *LoopController) {
		c.observer = observer
	}
}

func WithLogger(logger *zap.Logger) LoopControllerOption {
	return func(c *LoopController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithSessionIDs(newID func() domain.SessionID) LoopControllerOption {
	return func(c *LoopController) {
		if newID != nil {
			c.newID = newID
		}
	}
}

func NewLoopController(
	store ports.PreferenceStore,
	generator *TaskGenerator,
	summarizer *FeedbackSummarizer,
	presenter ports.Presenter,
	clock ports.Clock,
	opts LoopOptions,
	options ...LoopControllerOption,
) *LoopController {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.MaxIterations < 0 {
		opts.MaxIterations = 0
	}
	if opts.SummaryThreshold < 1 {
		opts.SummaryThreshold = DefaultSummaryThreshold
	}

	c := &LoopController{
		store:      store,
		composer:   NewComposer(),
		generator:  generator,
		summarizer: summarizer,
		presenter:  presenter,
		clock:      clock,
		opts:       opts,
		logger:     zap.NewNop(),
		newID: func() domain.SessionID {
			return domain.SessionID(uuid.NewString())
		},
	}
	for _, option := range options {
		option(c)
	}

	return c
}

// Run drives one meeting through generate, present and feedback until the draft is
// accepted or the iteration budget is spent.
//
// A malformed generation consumes one unit of the budget and is retried from the same
// inputs without recording feedback. If no valid draft was produced before the budget
// runs out, Run returns ErrGenerationMalformed. ErrGenerationUnavailable aborts the
// session at once. In both error cases nothing is persisted.
//
// When persisting feedback fails, Run returns the final draft together with the error.
func (c *LoopController) Run(ctx context.Context, meeting domain.MeetingContext) (SessionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := LoadPreferences(ctx, c.store)
	if err != nil {
		return SessionResult{}, err
	}

	session := domain.LoopSession{
		ID:        c.newID(),
		MeetingID: meeting.ID,
	}
	logger := c.logger.With(
		zap.String("session_id", string(session.ID)),
		zap.String("meeting_id", string(meeting.ID)),
	)
	c.transition(logger, &session, domain.SessionStateStart)

	var (
		prior    *domain.TaskDraft
		comment  *string
		hasDraft bool
	)

	for !session.Terminal {
		prompt := c.composer.Compose(meeting, prior, comment, state.Guidance)

		draft, err := c.generator.Generate(ctx, prompt, session.Iteration)
		if err != nil {
			if !errors.Is(err, domain.ErrGenerationMalformed) {
				if len(session.Feedback) > 0 {
					logger.Warn("session aborted, discarding collected feedback", zap.Int("entries", len(session.Feedback)))
				}
				return SessionResult{}, fmt.Errorf("generate task draft: %w", err)
			}

			session.Malformed++
			session.Iteration++
			if session.Iteration < c.opts.MaxIterations {
				c.transition(logger, &session, domain.SessionStateRegenerate)
				continue
			}
			if !hasDraft {
				return SessionResult{}, fmt.Errorf("generate task draft after %d attempts: %w", session.Malformed, err)
			}

			session.Outcome = domain.OutcomeExhausted
			session.Terminal = true
			break
		}

		hasDraft = true
		session.Draft = draft
		c.transition(logger, &session, domain.SessionStateGenerated)

		c.transition(logger, &session, domain.SessionStatePresented)
		response, err := c.presenter.Present(ctx, ports.Presentation{
			Meeting:       meeting,
			Draft:         draft,
			Iteration:     session.Iteration,
			MaxIterations: c.opts.MaxIterations,
		})
		if err != nil {
			return SessionResult{}, fmt.Errorf("present task draft: %w", err)
		}

		switch response.Verdict {
		case domain.VerdictAccept:
			session.Outcome = domain.OutcomeAccepted
			session.Terminal = true
			c.transition(logger, &session, domain.SessionStateAccepted)
		case domain.VerdictReject:
			session.Feedback = append(session.Feedback, domain.FeedbackEntry{
				Comment:   response.Comment,
				MeetingID: meeting.ID,
				CreatedAt: c.clock.Now(),
			})
			session.Rejected++
			session.Iteration++
			c.transition(logger, &session, domain.SessionStateRejected)

			if session.Iteration < c.opts.MaxIterations {
				rejected := draft
				feedback := response.Comment
				prior, comment = &rejected, &feedback
				c.transition(logger, &session, domain.SessionStateRegenerate)
				continue
			}

			logger.Info("iteration budget exhausted, keeping last draft", zap.Int("max_iterations", c.opts.MaxIterations))
			session.Outcome = domain.OutcomeExhausted
			session.Terminal = true
		default:
			return SessionResult{}, fmt.Errorf("%w: %q", ErrUnsupportedVerdict, response.Verdict)
		}
	}

	return c.finish(ctx, logger, &session, meeting, state)
}

func (c *LoopController) finish(ctx context.Context, logger *zap.Logger, session *domain.LoopSession, meeting domain.MeetingContext, state domain.PreferenceState) (SessionResult, error) {
	c.transition(logger, session, domain.SessionStateDone)

	result := SessionResult{
		SessionID:   session.ID,
		Meeting:     meeting,
		Draft:       session.Draft,
		Outcome:     session.Outcome,
		Iterations:  session.Iteration,
		Rejections:  session.Rejected,
		Malformed:   session.Malformed,
		Feedback:    session.Feedback,
		Preferences: state,
	}

	if len(session.Feedback) > 0 {
		state = state.WithPending(session.Feedback, c.clock.Now())
		if err := c.store.Save(ctx, state); err != nil {
			return result, fmt.Errorf("save session feedback: %w", err)
		}
		result.Preferences = state
	}

	if !state.NeedsSummary(c.opts.SummaryThreshold) {
		return result, nil
	}

	guidance, err := c.summarizer.Summarize(ctx, state.Pending, state.Guidance)
	if err != nil {
		logger.Warn("feedback summarization failed, keeping entries pending",
			zap.Int("pending", len(state.Pending)),
			zap.Error(err),
		)
		result.SummaryErr = err
		return result, nil
	}

	compacted := state.Compacted(guidance, c.clock.Now())
	if err := c.store.Save(ctx, compacted); err != nil {
		return result, fmt.Errorf("save summarized preferences: %w", err)
	}

	logger.Info("preference guidance updated", zap.Int("summarized_entries", len(state.Pending)))
	result.Preferences = compacted
	result.Summarized = true

	return result, nil
}

func (c *LoopController) transition(logger *zap.Logger, session *domain.LoopSession, next domain.SessionState) {
	session.State = next
	logger.Debug("session transition",
		zap.String("state", string(next)),
		zap.Int("iteration", session.Iteration),
	)

	if c.observer != nil {
		snapshot := *session
		snapshot.Feedback = append([]domain.FeedbackEntry(nil), session.Feedback...)
		c.observer(snapshot)
	}
}
