package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the model API key",
	}

	cmd.AddCommand(newAuthSetKeyCmd(app), newAuthRemoveKeyCmd(app))

	return cmd
}

func newAuthSetKeyCmd(app *app) *cobra.Command {
	var secretKey string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Store the model API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := secretKeyOrDefault(app, secretKey)
			if err := app.secretStore.Put(cmd.Context(), key, secretValue); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored api key at %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (default model.api_key_ref)")
	cmd.Flags().StringVar(&secretValue, "secret-value", "", "Secret value")
	_ = cmd.MarkFlagRequired("secret-value")

	return cmd
}

func newAuthRemoveKeyCmd(app *app) *cobra.Command {
	var secretKey string

	cmd := &cobra.Command{
		Use:   "remove-key",
		Short: "Remove the stored model API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := secretKeyOrDefault(app, secretKey)
			if err := app.secretStore.Delete(cmd.Context(), key); err != nil {
				return fmt.Errorf("remove api key: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed api key at %s\n", key)
			return err
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (default model.api_key_ref)")

	return cmd
}

func secretKeyOrDefault(app *app, key string) string {
	if key != "" {
		return key
	}
	return app.cfg.Model.APIKeyRef
}
