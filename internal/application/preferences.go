package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"go.uber.org/zap"
)

var ErrNothingToSummarize = errors.New("no pending feedback to summarize")

// LoadPreferences only falls back to an empty state when the store has never existed.
func LoadPreferences(ctx context.Context, store ports.PreferenceStore) (domain.PreferenceState, error) {
	state, err := store.Load(ctx)
	if err == nil {
		return state, nil
	}

	var missing *domain.StoreMissingError
	if errors.As(err, &missing) && missing.FirstRun {
		return domain.PreferenceState{}, nil
	}

	return domain.PreferenceState{}, fmt.Errorf("load preferences: %w", err)
}

type PreferenceService struct {
	store      ports.PreferenceStore
	summarizer *FeedbackSummarizer
	clock      ports.Clock
	logger     *zap.Logger
}

func NewPreferenceService(store ports.PreferenceStore, summarizer *FeedbackSummarizer, clock ports.Clock, logger *zap.Logger) *PreferenceService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PreferenceService{store: store, summarizer: summarizer, clock: clock, logger: logger}
}

func (s *PreferenceService) Get(ctx context.Context) (PreferenceStatus, error) {
	state, err := LoadPreferences(ctx, s.store)
	if err != nil {
		return PreferenceStatus{}, err
	}

	return statusFromState(state), nil
}

// Init creates an empty store. It refuses to touch a store that already loads.
func (s *PreferenceService) Init(ctx context.Context) (bool, error) {
	_, err := s.store.Load(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrStoreMissing) {
		return false, fmt.Errorf("load preferences: %w", err)
	}

	if err := s.store.Save(ctx, domain.PreferenceState{Pending: []domain.FeedbackEntry{}, UpdatedAt: s.clock.Now()}); err != nil {
		return false, fmt.Errorf("save preferences: %w", err)
	}

	return true, nil
}

func (s *PreferenceService) Reset(ctx context.Context) error {
	if err := s.store.Save(ctx, domain.PreferenceState{Pending: []domain.FeedbackEntry{}, UpdatedAt: s.clock.Now()}); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	s.logger.Info("preferences reset")
	return nil
}

// SummarizeNow compacts pending feedback regardless of the threshold.
func (s *PreferenceService) SummarizeNow(ctx context.Context) (PreferenceStatus, error) {
	state, err := LoadPreferences(ctx, s.store)
	if err != nil {
		return PreferenceStatus{}, err
	}
	if len(state.Pending) == 0 {
		return statusFromState(state), ErrNothingToSummarize
	}

	guidance, err := s.summarizer.Summarize(ctx, state.Pending, state.Guidance)
	if err != nil {
		return statusFromState(state), fmt.Errorf("summarize pending feedback: %w", err)
	}

	compacted := state.Compacted(guidance, s.clock.Now())
	if err := s.store.Save(ctx, compacted); err != nil {
		return statusFromState(state), fmt.Errorf("save preferences: %w", err)
	}

	return statusFromState(compacted), nil
}

func statusFromState(state domain.PreferenceState) PreferenceStatus {
	pending := make([]domain.FeedbackEntry, len(state.Pending))
	copy(pending, state.Pending)

	return PreferenceStatus{
		Guidance:     state.Guidance,
		Pending:      pending,
		PendingCount: len(pending),
		UpdatedAt:    state.UpdatedAt,
	}
}
