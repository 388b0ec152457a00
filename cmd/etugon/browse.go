package main

import (
	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/tui"
	"github.com/edulog/etugon/internal/tui/themes"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	var (
		useSample bool
		uidFlag   int
		policy    string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse reports in an interactive terminal UI",
		Long: `Open the report browser.

Switch between "My Reports" and "Public Reports" with Tab, press s for the
Sort & Filter menu, u to upvote a public report, Enter for details and c to
mark an in-progress report as completed. Upvotes last for this session only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parsePolicy(policy)
			if err != nil {
				return err
			}
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			svc, err := reportBackend(useSample, settings)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(),
				tui.WithReports(svc),
				tui.WithUserID(userID(uidFlag, useSample, settings)),
				tui.WithVotes(ledger.New()),
				tui.WithPolicy(p),
				tui.WithTheme(themes.GetTheme(settings.UI.Theme)),
			)
		},
	}

	cmd.Flags().BoolVar(&useSample, "sample", false, "use the built-in sample reports instead of the backend")
	cmd.Flags().IntVar(&uidFlag, "user-id", 0, "user id to act as (default: user.id from config)")
	cmd.Flags().StringVar(&policy, "policy", "all", "which steps completing closes: all or current-and-final")

	return cmd
}
