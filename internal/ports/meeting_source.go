package ports

import (
	"context"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

type MeetingSource interface {
	GetByID(ctx context.Context, id domain.MeetingID) (domain.MeetingContext, error)
	List(ctx context.Context) ([]domain.MeetingContext, error)
}
