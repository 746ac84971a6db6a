package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/adapters/render"
	"github.com/bnema/meeting-prep-assistant/internal/application"
	"github.com/spf13/cobra"
)

type preferencesJSON struct {
	StorePath    string         `json:"store_path"`
	Guidance     string         `json:"guidance"`
	Pending      []feedbackJSON `json:"pending"`
	PendingCount int            `json:"pending_count"`
	Threshold    int            `json:"summary_threshold"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

type feedbackJSON struct {
	Comment   string     `json:"comment"`
	MeetingID string     `json:"meeting_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func newPrefsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and manage the preference store",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsInitCmd(app),
		newPrefsResetCmd(app),
		newPrefsSummarizeCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show guidance and pending feedback",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.preferences.Get(cmd.Context())
			if err != nil {
				return err
			}

			return writePreferencesOutput(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newPrefsInitCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty preference store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := app.preferences.Init(cmd.Context())
			if err != nil {
				return err
			}

			if !created {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "preference store already exists at %s\n", app.store.Path())
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "initialized preference store at %s\n", app.store.Path())
			return err
		},
	}
}

func newPrefsResetCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard guidance and pending feedback",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset discards all learned preferences; pass --yes to confirm")
			}
			if err := app.preferences.Reset(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "preference store reset at %s\n", app.store.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}

func newPrefsSummarizeCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Fold pending feedback into guidance now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.preferences.SummarizeNow(cmd.Context())
			if errors.Is(err, application.ErrNothingToSummarize) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "nothing to summarize")
				return err
			}
			if err != nil {
				return err
			}

			return writePreferencesOutput(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writePreferencesOutput(cmd *cobra.Command, app *app, status application.PreferenceStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toPreferencesJSON(app, status))
	}

	rendered, err := render.Preferences(status, render.PreferencesOptions{
		Now:       app.now(),
		Threshold: app.cfg.Loop.SummaryThreshold,
		StorePath: app.store.Path(),
	})
	if err != nil {
		return fmt.Errorf("render preferences: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toPreferencesJSON(app *app, status application.PreferenceStatus) preferencesJSON {
	out := preferencesJSON{
		StorePath:    app.store.Path(),
		Guidance:     status.Guidance,
		Pending:      make([]feedbackJSON, 0, len(status.Pending)),
		PendingCount: status.PendingCount,
		Threshold:    app.cfg.Loop.SummaryThreshold,
		UpdatedAt:    optionalTime(status.UpdatedAt),
	}
	for _, entry := range status.Pending {
		out.Pending = append(out.Pending, feedbackJSON{
			Comment:   entry.Comment,
			MeetingID: string(entry.MeetingID),
			CreatedAt: optionalTime(entry.CreatedAt),
		})
	}

	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
