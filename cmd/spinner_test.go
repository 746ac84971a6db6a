package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/bnema/meeting-prep-assistant/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpinningModelReturnsReply(t *testing.T) {
	prompt := domain.Prompt{User: "plan"}
	opts := ports.CompletionOptions{Temperature: 0.2}
	next := mocks.NewMockLanguageModel(t)
	next.EXPECT().Complete(mock.Anything, prompt, opts).Return(`{"tasks": []}`, nil).Once()

	var output bytes.Buffer
	got, err := spinningModel{next: next, output: &output, label: modelSpinnerLabel}.Complete(context.Background(), prompt, opts)
	require.NoError(t, err)
	assert.Equal(t, `{"tasks": []}`, got)
}

func TestSpinningModelReturnsModelError(t *testing.T) {
	callErr := errors.New("connection refused")
	next := mocks.NewMockLanguageModel(t)
	next.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("", callErr).Once()

	_, err := spinningModel{next: next, output: &bytes.Buffer{}, label: modelSpinnerLabel}.Complete(context.Background(), domain.Prompt{}, ports.CompletionOptions{})
	require.ErrorIs(t, err, callErr)
}

func TestModelSpinnerViewClearsWhenDone(t *testing.T) {
	model := newModelSpinnerModel("Waiting...", nil)
	assert.Contains(t, model.View(), "Waiting...")

	updated, cmd := model.Update(modelCallDoneMsg{reply: `{"tasks": []}`})
	require.NotNil(t, cmd)
	assert.Empty(t, updated.View())
	assert.Equal(t, `{"tasks": []}`, updated.(modelSpinnerModel).reply)
}

func TestSpinningModelCanceledMidCallReturnsContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	next := mocks.NewMockLanguageModel(t)
	next.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.Prompt, _ ports.CompletionOptions) (string, error) {
			close(started)
			<-ctx.Done()
			return "", ctx.Err()
		}).Once()

	go func() {
		<-started
		cancel()
	}()

	got, err := spinningModel{next: next, output: &bytes.Buffer{}, label: modelSpinnerLabel}.Complete(ctx, domain.Prompt{}, ports.CompletionOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}
