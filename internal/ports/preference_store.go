package ports

import (
	"context"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

type PreferenceStore interface {
	Load(ctx context.Context) (domain.PreferenceState, error)
	Save(ctx context.Context, state domain.PreferenceState) error
}
