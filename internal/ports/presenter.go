package ports

import (
	"context"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
)

type Presentation struct {
	Meeting       domain.MeetingContext
	Draft         domain.TaskDraft
	Iteration     int
	MaxIterations int
}

type Presenter interface {
	Present(ctx context.Context, presentation Presentation) (domain.Response, error)
}

type Delivery interface {
	Deliver(ctx context.Context, meeting domain.MeetingContext, draft domain.TaskDraft) error
}
