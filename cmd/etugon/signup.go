package main

import (
	"fmt"

	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/cli"
	"github.com/edulog/etugon/internal/form"
	"github.com/spf13/cobra"
)

func signupCmd() *cobra.Command {
	var f form.Signup

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an eTugon account",
		Long: `Create an account for reporting issues in your barangay.

Every field is required. Barangays are checked against the municipality's
list when one is known.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSignup(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.Username, "username", "", "display name")
	cmd.Flags().StringVar(&f.Email, "email", "", "account email")
	cmd.Flags().StringVar(&f.Password, "password", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&f.ConfirmPassword, "confirm-password", "", "repeat the password")
	cmd.Flags().StringVar(&f.HouseNumber, "house-number", "", "house number")
	cmd.Flags().StringVar(&f.Municipality, "municipality", "San Fernando", "municipality")
	cmd.Flags().StringVar(&f.Barangay, "barangay", "", "barangay")

	return cmd
}

func runSignup(cmd *cobra.Command, f form.Signup) error {
	if err := f.Validate(); err != nil {
		return formError(err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client, err := newClient(settings)
	if err != nil {
		return err
	}

	user, err := client.Signup(cmd.Context(), f.Request())
	if err != nil {
		return api.UserError(err, "Registration unsuccessful")
	}

	msg := "Account created successfully!"
	if user.ID != 0 {
		msg = fmt.Sprintf("%s Your user id is %d.", msg, user.ID)
	}
	return printLine(cmd.OutOrStdout(), cli.FormatSuccess(msg))
}
