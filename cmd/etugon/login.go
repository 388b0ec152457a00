package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/cli"
	"github.com/edulog/etugon/internal/config"
	"github.com/edulog/etugon/internal/form"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type loginOptions struct {
	email    string
	password string
	save     bool
}

func loginCmd() *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to eTugon",
		Long: `Sign in with your email and password.

Missing values are asked for interactively. With --save the returned user id
is written to the config file so later commands know which reports are yours.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogin(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "account password")
	cmd.Flags().BoolVar(&opts.save, "save", true, "store the user id in the config file")

	return cmd
}

func runLogin(cmd *cobra.Command, opts loginOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	reader := cli.NewNonBlockingReader(cmd.InOrStdin())

	var err error
	if opts.email == "" {
		if opts.email, err = reader.Ask(ctx, out, "Email", ""); err != nil {
			return err
		}
	}
	if opts.password == "" {
		if opts.password, err = reader.Ask(ctx, out, "Password", ""); err != nil {
			return err
		}
	}

	f := form.Login{Email: opts.email, Password: opts.password}
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

	resp, err := client.Login(ctx, f.Request())
	if err != nil {
		return api.UserError(err, "Login failed")
	}
	slog.Debug("Logged in", "user_id", resp.User.ID)

	name := resp.User.Username
	if name == "" {
		name = resp.User.Email
	}
	if err := printLine(out, cli.FormatSuccess(fmt.Sprintf("Login successful! Welcome, %s.", name))); err != nil {
		return err
	}

	if !opts.save || resp.User.ID == 0 {
		return nil
	}
	path := configPath()
	if err := config.SaveUserID(viper.GetViper(), path, resp.User.ID); err != nil {
		return fmt.Errorf("failed to save user id: %w", err)
	}
	return printLine(out, cli.FormatInfo(fmt.Sprintf("Saved user id %d to %s", resp.User.ID, path)))
}

func printLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
