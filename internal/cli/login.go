package cli

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"finassist/internal/auth"
	"finassist/internal/config"
)

// newLoginCmd creates the login command group for the hosted auth backend.
func newLoginCmd(cfg *config.Config) *cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthClient(cfg)
			if err != nil {
				return err
			}

			email, password, err := promptCredentials()
			if err != nil {
				return err
			}

			session, err := client.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Signed in as %s\n", session.User.Email)
			return nil
		},
	}

	loginCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAuthClient(cfg)
			if err != nil {
				return err
			}

			var email string
			if err := survey.AskOne(&survey.Input{Message: "Email:"}, &email); err != nil {
				return err
			}
			if err := client.ResetPassword(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println("Check your inbox for the reset link.")
			return nil
		},
	})

	return loginCmd
}

func newAuthClient(cfg *config.Config) (*auth.Client, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_ANON_KEY must be configured")
	}
	return auth.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, auth.WithClientTimeout(cfg.HTTPTimeout)), nil
}

func promptCredentials() (string, string, error) {
	var email string
	if err := survey.AskOne(&survey.Input{Message: "Email:"}, &email); err != nil {
		return "", "", err
	}
	var password string
	if err := survey.AskOne(&survey.Password{Message: "Password:"}, &password); err != nil {
		return "", "", err
	}
	return email, password, nil
}
