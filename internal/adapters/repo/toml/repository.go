package toml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StorePathKey     = "store.path"
	storeFileMode    = 0o600
	storeDirMode     = 0o700
	storeStateDir    = ".local/state/mpa"
	storeFileName    = "preferences.toml"
	tempFilePattern  = ".preferences-*.toml.tmp"
	timestampLayout  = time.RFC3339Nano
	homeDirShorthand = "~"
)

// PreferenceRepository persists the preference state as a single versioned TOML file.
//
// Load(Save(s)) equals s up to two normalizations: timestamps come back in UTC
// (same instant, compare with time.Equal) and a nil Pending comes back as an empty slice.
type PreferenceRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PreferenceStore = (*PreferenceRepository)(nil)

func NewPreferenceRepository(cfg *viper.Viper) (*PreferenceRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(StorePathKey)
	if path == "" {
		defaultPath, err := DefaultStorePath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &PreferenceRepository{path: path, mu: lockForPath(path)}, nil
}

func DefaultStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, storeStateDir, storeFileName), nil
}

func (r *PreferenceRepository) Path() string {
	return r.path
}

func (r *PreferenceRepository) Load(ctx context.Context) (domain.PreferenceState, error) {
	if err := ctx.Err(); err != nil {
		return domain.PreferenceState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.PreferenceState{}, err
	}

	state, err := fromSchema(file)
	if err != nil {
		return domain.PreferenceState{}, fmt.Errorf("%w: %s: %w", domain.ErrStoreCorrupt, r.path, err)
	}

	return state, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, state domain.PreferenceState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, toSchema(state))
}

func (r *PreferenceRepository) readSchema() (preferencesFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return preferencesFileSchema{}, &domain.StoreMissingError{Path: r.path, FirstRun: !dirExists(filepath.Dir(r.path))}
		}
		return preferencesFileSchema{}, fmt.Errorf("read preferences file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return preferencesFileSchema{}, fmt.Errorf("%w: %s: preferences file is empty", domain.ErrStoreCorrupt, r.path)
	}

	var file preferencesFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return preferencesFileSchema{}, fmt.Errorf("%w: decode preferences file: %w", domain.ErrStoreCorrupt, err)
	}
	if err := file.validateVersion(); err != nil {
		return preferencesFileSchema{}, fmt.Errorf("%w: %s: %w", domain.ErrStoreCorrupt, r.path, err)
	}

	return file, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func normalizePath(path string) (string, error) {
	if path == homeDirShorthand || strings.HasPrefix(path, homeDirShorthand+string(filepath.Separator)) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, homeDirShorthand))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeTOMLFile(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode preferences file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp preferences file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp preferences file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp preferences file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("sync temp preferences file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp preferences file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace preferences file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(state domain.PreferenceState) preferencesFileSchema {
	pending := make([]feedbackSchema, 0, len(state.Pending))
	for _, entry := range state.Pending {
		pending = append(pending, feedbackSchema{
			Comment:   entry.Comment,
			MeetingID: string(entry.MeetingID),
			CreatedAt: formatTime(entry.CreatedAt),
		})
	}

	return preferencesFileSchema{
		Version:   currentSchemaVersion,
		Guidance:  state.Guidance,
		UpdatedAt: formatTime(state.UpdatedAt),
		Pending:   pending,
	}
}

func fromSchema(file preferencesFileSchema) (domain.PreferenceState, error) {
	updatedAt, err := parseTime(file.UpdatedAt)
	if err != nil {
		return domain.PreferenceState{}, fmt.Errorf("updated_at: %w", err)
	}

	pending := make([]domain.FeedbackEntry, 0, len(file.Pending))
	for i, entry := range file.Pending {
		createdAt, err := parseTime(entry.CreatedAt)
		if err != nil {
			return domain.PreferenceState{}, fmt.Errorf("pending entry %d created_at: %w", i, err)
		}

		pending = append(pending, domain.FeedbackEntry{
			Comment:   entry.Comment,
			MeetingID: domain.MeetingID(entry.MeetingID),
			CreatedAt: createdAt,
		})
	}

	return domain.PreferenceState{
		Pending:   pending,
		Guidance:  file.Guidance,
		UpdatedAt: updatedAt,
	}, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.UTC(), nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(timestampLayout)
}
