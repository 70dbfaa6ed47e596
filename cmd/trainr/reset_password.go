package main

import (
	"os"

	"github.com/alexpadev/trainR/internal/cli"
	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/spf13/cobra"
)

var (
	resetEmail  string
	resetPrompt bool
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Replace a user's password",
	Long: `Replace the password of the account registered with --email.

By default a random temporary password is generated and printed. With
--prompt the new password is read from the terminal without echo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer closeDatabase(database, logger)

		// Password changes never issue tokens, so the signing key is irrelevant here.
		auth := services.NewAuthService(db.NewUserRepository(database), services.NewTokenService(nil, 0))
		return cli.RunResetPassword(cmd.Context(), auth, cli.ResetPasswordOptions{
			Email:  resetEmail,
			Prompt: resetPrompt,
			Stdin:  os.Stdin,
			Output: cmd.OutOrStdout(),
		})
	},
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "email of the account to reset")
	resetPasswordCmd.Flags().BoolVar(&resetPrompt, "prompt", false, "read the new password from the terminal")
	_ = resetPasswordCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(resetPasswordCmd)
}
