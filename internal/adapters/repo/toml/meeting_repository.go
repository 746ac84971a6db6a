package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

// MeetingRepository reads assembled meeting contexts from a TOML file.
// Meetings without an id get a random one on every read.
type MeetingRepository struct {
	path  string
	mu    *sync.RWMutex
	newID func() string
}

var _ ports.MeetingSource = (*MeetingRepository)(nil)

func NewMeetingRepository(path string) (*MeetingRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("meetings path is empty")
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &MeetingRepository{path: path, mu: lockForPath(path), newID: uuid.NewString}, nil
}

func (r *MeetingRepository) GetByID(ctx context.Context, id domain.MeetingID) (domain.MeetingContext, error) {
	meetings, err := r.List(ctx)
	if err != nil {
		return domain.MeetingContext{}, err
	}

	for _, meeting := range meetings {
		if meeting.ID == id {
			return meeting, nil
		}
	}

	return domain.MeetingContext{}, fmt.Errorf("%w: %s", domain.ErrMeetingNotFound, id)
}

func (r *MeetingRepository) List(ctx context.Context) ([]domain.MeetingContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	meetings := make([]domain.MeetingContext, 0, len(file.Meetings))
	seen := make(map[domain.MeetingID]struct{}, len(file.Meetings))
	for i, entry := range file.Meetings {
		meeting, err := r.fromMeetingSchema(entry)
		if err != nil {
			return nil, fmt.Errorf("decode meeting %d: %w", i, err)
		}
		if _, ok := seen[meeting.ID]; ok {
			return nil, fmt.Errorf("duplicate meeting id %q", meeting.ID)
		}
		seen[meeting.ID] = struct{}{}

		meetings = append(meetings, meeting)
	}

	return meetings, nil
}

func (r *MeetingRepository) readSchema() (meetingsFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return meetingsFileSchema{}, fmt.Errorf("read meetings file: %w", err)
	}

	var file meetingsFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return meetingsFileSchema{}, fmt.Errorf("decode meetings file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return meetingsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *MeetingRepository) fromMeetingSchema(schema meetingSchema) (domain.MeetingContext, error) {
	start, err := parseTime(schema.Start)
	if err != nil {
		return domain.MeetingContext{}, fmt.Errorf("start: %w", err)
	}
	end, err := parseTime(schema.End)
	if err != nil {
		return domain.MeetingContext{}, fmt.Errorf("end: %w", err)
	}

	id := strings.TrimSpace(schema.ID)
	if id == "" {
		id = r.newID()
	}

	attendees := make([]string, 0, len(schema.Attendees))
	for _, attendee := range schema.Attendees {
		if attendee = strings.TrimSpace(attendee); attendee != "" {
			attendees = append(attendees, attendee)
		}
	}

	attachments := make([]domain.AttachmentSummary, 0, len(schema.Attachments))
	for _, attachment := range schema.Attachments {
		attachments = append(attachments, domain.AttachmentSummary{
			Title:   attachment.Title,
			Summary: attachment.Summary,
		})
	}

	return domain.MeetingContext{
		ID:          domain.MeetingID(id),
		Title:       schema.Title,
		Description: schema.Description,
		Start:       start,
		End:         end,
		Attendees:   attendees,
		Attachments: attachments,
	}, nil
}
