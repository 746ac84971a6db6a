package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/meeting-prep-assistant/internal/application"
	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type runnerFunc func(ctx context.Context, meeting domain.MeetingContext) (application.SessionResult, error)

func (f runnerFunc) Run(ctx context.Context, meeting domain.MeetingContext) (application.SessionResult, error) {
	return f(ctx, meeting)
}

func draftFor(meeting domain.MeetingContext) domain.TaskDraft {
	return domain.TaskDraft{Tasks: []domain.Task{{Title: "Prepare " + meeting.Title, DurationMinutes: 10}}}
}

func TestPrepareMeetingsDeliversEachOutcome(t *testing.T) {
	meetings := []domain.MeetingContext{{ID: "mtg-1", Title: "A"}, {ID: "mtg-2", Title: "B"}}
	sink := mocks.NewMockDelivery(t)
	for _, meeting := range meetings {
		sink.EXPECT().Deliver(mock.Anything, meeting, draftFor(meeting)).Return(nil).Once()
	}

	var progress bytes.Buffer
	runner := runnerFunc(func(_ context.Context, meeting domain.MeetingContext) (application.SessionResult, error) {
		return application.SessionResult{Outcome: domain.OutcomeAccepted, Draft: draftFor(meeting)}, nil
	})

	require.NoError(t, prepareMeetings(context.Background(), runner, meetings, sink, &progress, zap.NewNop()))
	assert.Equal(t, "mtg-1: accepted, 0 rejected\nmtg-2: accepted, 0 rejected\n", progress.String())
}

func TestPrepareMeetingsStopsAtFirstFailure(t *testing.T) {
	meetings := []domain.MeetingContext{{ID: "mtg-1"}, {ID: "mtg-2"}}
	sink := mocks.NewMockDelivery(t)

	calls := 0
	runner := runnerFunc(func(context.Context, domain.MeetingContext) (application.SessionResult, error) {
		calls++
		return application.SessionResult{}, domain.ErrGenerationUnavailable
	})

	err := prepareMeetings(context.Background(), runner, meetings, sink, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, domain.ErrGenerationUnavailable)
	assert.Contains(t, err.Error(), "prepare meeting mtg-1")
	assert.Equal(t, 1, calls)
}

func TestPrepareMeetingsDeliversDraftWhenSaveFails(t *testing.T) {
	meeting := domain.MeetingContext{ID: "mtg-1", Title: "A"}
	saveErr := errors.New("disk full")
	sink := mocks.NewMockDelivery(t)
	sink.EXPECT().Deliver(mock.Anything, meeting, draftFor(meeting)).Return(nil).Once()

	runner := runnerFunc(func(context.Context, domain.MeetingContext) (application.SessionResult, error) {
		return application.SessionResult{Outcome: domain.OutcomeExhausted, Draft: draftFor(meeting)}, saveErr
	})

	err := prepareMeetings(context.Background(), runner, []domain.MeetingContext{meeting}, sink, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, saveErr)
}

func TestPrepareMeetingsReportsDeliveryFailure(t *testing.T) {
	meeting := domain.MeetingContext{ID: "mtg-1"}
	deliverErr := errors.New("broken pipe")
	sink := mocks.NewMockDelivery(t)
	sink.EXPECT().Deliver(mock.Anything, meeting, mock.Anything).Return(deliverErr).Once()

	runner := runnerFunc(func(context.Context, domain.MeetingContext) (application.SessionResult, error) {
		return application.SessionResult{Outcome: domain.OutcomeAccepted}, nil
	})

	err := prepareMeetings(context.Background(), runner, []domain.MeetingContext{meeting}, sink, &bytes.Buffer{}, zap.NewNop())
	require.ErrorIs(t, err, deliverErr)
	assert.Contains(t, err.Error(), "deliver tasks for mtg-1")
}

func TestLoadMeetings(t *testing.T) {
	all := []domain.MeetingContext{{ID: "mtg-1"}, {ID: "mtg-2"}}

	t.Run("all meetings without an id", func(t *testing.T) {
		source := mocks.NewMockMeetingSource(t)
		source.EXPECT().List(mock.Anything).Return(all, nil).Once()

		got, err := loadMeetings(context.Background(), source, "")
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("single meeting by id", func(t *testing.T) {
		source := mocks.NewMockMeetingSource(t)
		source.EXPECT().GetByID(mock.Anything, domain.MeetingID("mtg-2")).Return(all[1], nil).Once()

		got, err := loadMeetings(context.Background(), source, "mtg-2")
		require.NoError(t, err)
		assert.Equal(t, all[1:], got)
	})

	t.Run("unknown id", func(t *testing.T) {
		source := mocks.NewMockMeetingSource(t)
		source.EXPECT().GetByID(mock.Anything, domain.MeetingID("nope")).Return(domain.MeetingContext{}, domain.ErrMeetingNotFound).Once()

		_, err := loadMeetings(context.Background(), source, "nope")
		require.ErrorIs(t, err, domain.ErrMeetingNotFound)
	})
}
