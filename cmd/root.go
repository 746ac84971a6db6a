package cmd

import (
	"github.com/bnema/meeting-prep-assistant/internal/config"
	"github.com/bnema/meeting-prep-assistant/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configFile string
	settings := viper.New()
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "mpa",
		Short:         "Meeting Prep Assistant (mpa): generate preparation tasks for meetings",
		Long:          "mpa (Meeting Prep Assistant) asks a language model for preparation tasks, lets you accept or reject each draft with feedback, and keeps a summarized preference history that shapes the next drafts.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, settings, configFile)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.logger != nil {
				_ = logging.Sync(app.logger)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default ~/.config/mpa/config.toml)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	_ = settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPrefsCmd(app),
		newAuthCmd(app),
	)

	return rootCmd
}
