package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/meeting-prep-assistant/internal/adapters/console"
	"github.com/bnema/meeting-prep-assistant/internal/adapters/delivery"
	tomlrepo "github.com/bnema/meeting-prep-assistant/internal/adapters/repo/toml"
	"github.com/bnema/meeting-prep-assistant/internal/application"
	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOptions struct {
	contextFile string
	meetingID   string
	asJSON      bool
	outFile     string
	noSpinner   bool
}

func newRunCmd(app *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate preparation tasks for the meetings in a context file",
		Long:  "run drafts preparation tasks for each meeting in the context file, asks whether you are satisfied, regenerates with your feedback until you accept or the iteration budget is spent, and writes the final task list to stdout or --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSessions(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.contextFile, "context", "", "Meeting context file (TOML)")
	cmd.Flags().StringVar(&opts.meetingID, "meeting", "", "Only prepare the meeting with this ID")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Write task lists as JSON lines")
	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write task lists to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "Do not show a spinner while the model is working")
	_ = cmd.MarkFlagRequired("context")

	return cmd
}

type sessionRunner interface {
	Run(ctx context.Context, meeting domain.MeetingContext) (application.SessionResult, error)
}

func runSessions(cmd *cobra.Command, app *app, opts runOptions) error {
	ctx := cmd.Context()

	source, err := tomlrepo.NewMeetingRepository(opts.contextFile)
	if err != nil {
		return fmt.Errorf("wire meeting source: %w", err)
	}
	meetings, err := loadMeetings(ctx, source, domain.MeetingID(opts.meetingID))
	if err != nil {
		return err
	}
	if len(meetings) == 0 {
		return fmt.Errorf("no meetings in %s", opts.contextFile)
	}

	format := delivery.FormatText
	if opts.asJSON {
		format = delivery.FormatJSON
	}

	var out io.Writer = cmd.OutOrStdout()
	if opts.outFile != "" {
		file, err := os.OpenFile(opts.outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	var model ports.LanguageModel = app.model
	if !opts.noSpinner {
		model = spinningModel{next: app.model, output: cmd.ErrOrStderr(), label: modelSpinnerLabel}
	}

	controller := application.NewLoopController(
		app.store,
		app.newGenerator(model),
		app.newSummarizer(model),
		console.NewPresenter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		ports.SystemClock{},
		application.LoopOptions{
			MaxIterations:    app.cfg.Loop.MaxIterations,
			SummaryThreshold: app.cfg.Loop.SummaryThreshold,
		},
		application.WithLogger(app.logger),
	)

	return prepareMeetings(ctx, controller, meetings, delivery.NewWriter(out, format), cmd.ErrOrStderr(), app.logger)
}

// prepareMeetings runs one session per meeting in order and stops at the first failure.
// A session that reached an outcome is delivered even when persisting its feedback failed.
func prepareMeetings(ctx context.Context, runner sessionRunner, meetings []domain.MeetingContext, sink ports.Delivery, progress io.Writer, logger *zap.Logger) error {
	for _, meeting := range meetings {
		result, runErr := runner.Run(ctx, meeting)
		if result.Outcome != "" {
			if err := sink.Deliver(ctx, meeting, result.Draft); err != nil {
				return errors.Join(runErr, fmt.Errorf("deliver tasks for %s: %w", meeting.ID, err))
			}
			logger.Info("task list delivered",
				zap.String("meeting_id", string(meeting.ID)),
				zap.String("outcome", string(result.Outcome)),
				zap.Int("iterations", result.Iterations),
				zap.Bool("summarized", result.Summarized),
			)
		}
		if runErr != nil {
			return fmt.Errorf("prepare meeting %s: %w", meeting.ID, runErr)
		}

		if _, err := fmt.Fprintf(progress, "%s: %s, %d rejected\n", meeting.ID, result.Outcome, result.Rejections); err != nil {
			return err
		}
	}

	return nil
}

func loadMeetings(ctx context.Context, source ports.MeetingSource, meetingID domain.MeetingID) ([]domain.MeetingContext, error) {
	if meetingID == "" {
		return source.List(ctx)
	}

	meeting, err := source.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	return []domain.MeetingContext{meeting}, nil
}
