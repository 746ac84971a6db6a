package toml

import "fmt"

const currentSchemaVersion = 1

type preferencesFileSchema struct {
	Version   int              `toml:"version"`
	Guidance  string           `toml:"guidance"`
	UpdatedAt string           `toml:"updated_at,omitempty"`
	Pending   []feedbackSchema `toml:"pending"`
}

// validateVersion rejects a missing version key; every saved file carries one.
func (s preferencesFileSchema) validateVersion() error {
	if s.Version == 0 {
		return fmt.Errorf("preferences schema version is missing")
	}
	if s.Version < 0 || s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported preferences schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type feedbackSchema struct {
	Comment   string `toml:"comment"`
	MeetingID string `toml:"meeting_id,omitempty"`
	CreatedAt string `toml:"created_at,omitempty"`
}

const currentMeetingsSchemaVersion = 1

type meetingsFileSchema struct {
	Version  int             `toml:"version"`
	Meetings []meetingSchema `toml:"meetings"`
}

func (s *meetingsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentMeetingsSchemaVersion
	}
}

func (s meetingsFileSchema) validateVersion() error {
	if s.Version < 0 || s.Version > currentMeetingsSchemaVersion {
		return fmt.Errorf("unsupported meetings schema version %d (current %d)", s.Version, currentMeetingsSchemaVersion)
	}

	return nil
}

type meetingSchema struct {
	ID          string             `toml:"id"`
	Title       string             `toml:"title"`
	Description string             `toml:"description"`
	Start       string             `toml:"start"`
	End         string             `toml:"end"`
	Attendees   []string           `toml:"attendees"`
	Attachments []attachmentSchema `toml:"attachments"`
}

type attachmentSchema struct {
	Title   string `toml:"title"`
	Summary string `toml:"summary"`
}
