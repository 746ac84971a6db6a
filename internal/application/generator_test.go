package application

import (
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

func TestTaskGeneratorParsesDraft(t *testing.T) {
	model := mocks.NewMockLanguageModel(t)
	generator := NewTaskGenerator(model, GeneratorOptions{Temperature: 0.1, MaxTokens: 512}, nil)
	prompt := domain.Prompt{System: "sys", User: "user"}

	model.EXPECT().
		Complete(mock.Anything, prompt, ports.CompletionOptions{Temperature: 0.1, MaxTokens: 512}).
		Return(draftJSON("Read deck", "Draft questions"), nil).
		Once()

	draft, err := generator.Generate(context.Background(), prompt, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, draft.Iteration)
	assert.Equal(t, prompt, draft.Prompt)
	assert.Equal(t, "Quarterly review", draft.Title)
	assert.Equal(t, []string{"Read deck (15 min)", "Draft questions (15 min)"}, draft.Descriptions())
}

func TestTaskGeneratorTransportFailureIsUnavailable(t *testing.T) {
	model := mocks.NewMockLanguageModel(t)
	generator := NewTaskGenerator(model, GeneratorOptions{}, nil)

	model.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("", errTimeout).Once()

	_, err := generator.Generate(context.Background(), domain.Prompt{}, 0)
	require.ErrorIs(t, err, domain.ErrGenerationUnavailable)
	require.ErrorIs(t, err, errTimeout)
	assert.False(t, errors.Is(err, domain.ErrGenerationMalformed))
}

func TestTaskGeneratorNoTasksIsMalformed(t *testing.T) {
	model := mocks.NewMockLanguageModel(t)
	generator := NewTaskGenerator(model, GeneratorOptions{}, nil)

	model.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return("Sorry, I have no suggestions.", nil).Once()

	_, err := generator.Generate(context.Background(), domain.Prompt{}, 0)
	require.ErrorIs(t, err, domain.ErrGenerationMalformed)
	assert.False(t, errors.Is(err, domain.ErrGenerationUnavailable))
}
