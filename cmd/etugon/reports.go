package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/edulog/etugon/internal/api"
	"github.com/edulog/etugon/internal/cli"
	"github.com/edulog/etugon/internal/common"
	"github.com/edulog/etugon/internal/form"
	"github.com/edulog/etugon/internal/listing"
	"github.com/edulog/etugon/internal/model"
	"github.com/edulog/etugon/internal/photos"
	"github.com/edulog/etugon/internal/progress"
	"github.com/edulog/etugon/internal/service"
	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "List, view, submit and complete reports",
	}

	cmd.PersistentFlags().Bool("sample", false, "use the built-in sample reports instead of the backend")
	cmd.PersistentFlags().Int("user-id", 0, "user id to act as (default: user.id from config)")

	cmd.AddCommand(reportsListCmd())
	cmd.AddCommand(reportsShowCmd())
	cmd.AddCommand(reportsSubmitCmd())
	cmd.AddCommand(reportsCompleteCmd())

	return cmd
}

// backendFlags reads the --sample and --user-id flags shared by report commands.
func backendFlags(cmd *cobra.Command) (useSample bool, uid int) {
	useSample, _ = cmd.Flags().GetBool("sample")
	uid, _ = cmd.Flags().GetInt("user-id")
	return useSample, uid
}

type listOptions struct {
	status string
	sort   string
	order  string
	mine   bool
	public bool
}

func reportsListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports",
		Long: `List reports with an optional progress filter and sort.

--sort picks the active key (date, name, upvotes or progress) and --order its
direction (newest/oldest, a-z/z-a, most/least). Sorting by progress keeps the
backend order. --mine and --public select one half of the list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportsList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.status, "status", "", "only show reports with this status (Pending, In Progress, Completed)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(listing.KeyDate), "sort key: date, name, upvotes or progress")
	cmd.Flags().StringVar(&opts.order, "order", "", "sort direction for the chosen key")
	cmd.Flags().BoolVar(&opts.mine, "mine", false, "only show your reports")
	cmd.Flags().BoolVar(&opts.public, "public", false, "only show other people's reports")
	cmd.MarkFlagsMutuallyExclusive("mine", "public")

	return cmd
}

// listSelection builds the filter and sort from command-line values.
func listSelection(status, sortKey, order string) (listing.Selection, error) {
	sel := listing.DefaultSelection()
	if status != "" {
		st, err := model.ParseStatus(status)
		if err != nil {
			return sel, common.NewUserError(fmt.Sprintf("Unknown status %q", status), err)
		}
		sel.StatusFilter = st
	}

	key, err := listing.ParseSortKey(sortKey)
	if err != nil {
		return sel, common.NewUserError(err.Error(), err)
	}
	if order != "" {
		if err := sel.SetOrder(key, order); err != nil {
			return sel, common.NewUserError(err.Error(), err)
		}
	}
	sel.ActiveKey = key
	return sel, nil
}

func runReportsList(cmd *cobra.Command, opts listOptions) error {
	sel, err := listSelection(opts.status, opts.sort, opts.order)
	if err != nil {
		return err
	}

	useSample, uidFlag := backendFlags(cmd)
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	uid := userID(uidFlag, useSample, settings)
	if (opts.mine || opts.public) && uid == 0 {
		return common.NewUserError("No user id configured. Run 'etugon login' or pass --user-id.", common.ErrMissingConfig)
	}

	svc, err := reportBackend(useSample, settings)
	if err != nil {
		return err
	}
	reports, err := svc.ListReports(cmd.Context())
	if err != nil {
		return api.UserError(err, "Failed to load reports")
	}

	mine, public := listing.Partition(reports, uid)
	switch {
	case opts.mine:
		reports = mine
	case opts.public:
		reports = public
	}

	return cli.WriteReportTable(cmd.OutOrStdout(), listing.Apply(reports, sel, nil), nil)
}

func reportsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a report and its progress timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  runReportsShow,
	}
}

func runReportsShow(cmd *cobra.Command, args []string) error {
	id, err := parseReportID(args[0])
	if err != nil {
		return err
	}

	useSample, _ := backendFlags(cmd)
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	svc, err := reportBackend(useSample, settings)
	if err != nil {
		return err
	}

	r, err := findReport(cmd.Context(), svc, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printLine(out, cli.RenderReportCard(*r, r.Upvotes)); err != nil {
		return err
	}
	return printLine(out, cli.RenderTimeline(r.Timeline))
}

type submitOptions struct {
	form form.Report
}

func reportsSubmitCmd() *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new report",
		Long: `Submit a report about an issue in your barangay.

Local photo files are uploaded to object storage when photos.endpoint is
configured; URLs are sent as given. Up to 4 photos are accepted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportsSubmit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.form.Title, "title", "", "short title of the issue")
	cmd.Flags().StringVar(&opts.form.Description, "description", "", "what is wrong")
	cmd.Flags().StringVar(&opts.form.Category, "category", "", "category, e.g. \"Traffic & Infrastructure\"")
	cmd.Flags().StringVar(&opts.form.Location, "location", "", "where the issue is")
	cmd.Flags().StringArrayVar(&opts.form.Images, "photo", nil, "photo file or URL (repeatable)")
	cmd.Flags().BoolVar(&opts.form.IsAnonymous, "anonymous", false, "hide your name on the report")

	return cmd
}

func runReportsSubmit(cmd *cobra.Command, opts submitOptions) error {
	ctx := cmd.Context()
	if err := opts.form.Validate(); err != nil {
		return formError(err)
	}

	useSample, uidFlag := backendFlags(cmd)
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	svc, err := reportBackend(useSample, settings)
	if err != nil {
		return err
	}

	uploader, err := photos.New(settings.Photos, photos.WithProgress(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("failed to set up photo upload: %w", err)
	}

	interrupt := cli.NewInterruptHandler(cmd.ErrOrStderr(),
		"Report submission cancelled.",
		"Nothing was posted. Run the command again to retry.")
	interrupt.Watch(ctx)
	defer interrupt.Stop()

	report, err := submitReport(ctx, svc, uploader, opts.form, userID(uidFlag, useSample, settings))
	if err != nil {
		if interrupt.WasInterrupted() {
			return ctx.Err()
		}
		return api.UserError(err, "Failed to submit report")
	}

	out := cmd.OutOrStdout()
	if err := printLine(out, cli.FormatSuccess(fmt.Sprintf("Report #%d submitted!", report.ID))); err != nil {
		return err
	}
	return printLine(out, cli.RenderReportCard(*report, report.Upvotes))
}

// submitReport uploads the form's photos and posts the report.
func submitReport(ctx context.Context, svc service.ReportService, uploader service.PhotoUploader, f form.Report, uid int) (*model.Report, error) {
	urls, err := uploader.Upload(ctx, f.Images)
	if err != nil {
		return nil, err
	}
	req, err := f.Request(uid, urls)
	if err != nil {
		return nil, err
	}
	return svc.SubmitReport(ctx, req)
}

func reportsCompleteCmd() *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an in-progress report as completed",
		Long: `Mark an in-progress report as completed.

The backend is updated first; the timeline only changes once it accepts the
new status. --policy all completes every remaining step, current-and-final
only the current and the last step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportsComplete(cmd, args, policy)
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "all", "which steps to complete: all or current-and-final")

	return cmd
}

func parsePolicy(s string) (progress.Policy, error) {
	switch s {
	case "all", "":
		return progress.PolicyCompleteAll, nil
	case "current-and-final":
		return progress.PolicyCurrentAndFinal, nil
	default:
		return 0, common.NewUserError(fmt.Sprintf("Unknown policy %q (want all or current-and-final)", s), common.ErrInvalidInput)
	}
}

func runReportsComplete(cmd *cobra.Command, args []string, policyName string) error {
	id, err := parseReportID(args[0])
	if err != nil {
		return err
	}
	policy, err := parsePolicy(policyName)
	if err != nil {
		return err
	}

	useSample, _ := backendFlags(cmd)
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	svc, err := reportBackend(useSample, settings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	r, err := findReport(ctx, svc, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tracker := progress.New(*r, nil, progress.WithSyncer(svc), progress.WithPolicy(policy))
	tracker.OnChange(func(s progress.Snapshot) {
		if err := printLine(out, cli.RenderTimeline(s.Steps)); err != nil {
			common.LogError(err, "Failed to print timeline", common.Fields{"report_id": s.ReportID})
		}
	})

	switch err := tracker.MarkComplete(ctx); {
	case err == nil:
		return printLine(out, cli.FormatSuccess(fmt.Sprintf("Report #%d has been marked as completed.", id)))
	case errors.Is(err, progress.ErrAlreadyCompleted):
		return common.NewUserError("This report is already completed.", err)
	case errors.Is(err, progress.ErrNotInProgress):
		return common.NewUserError("Only reports in progress can be marked as completed.", err)
	default:
		return api.UserError(err, "Failed to update report. Please try again.")
	}
}

// reportFinder is implemented by backends that can fetch a single report.
type reportFinder interface {
	FindReport(ctx context.Context, reportID int) (*model.Report, error)
}

func findReport(ctx context.Context, svc service.ReportService, id int) (*model.Report, error) {
	if f, ok := svc.(reportFinder); ok {
		r, err := f.FindReport(ctx, id)
		if err != nil {
			return nil, reportLookupError(id, err)
		}
		return r, nil
	}

	reports, err := svc.ListReports(ctx)
	if err != nil {
		return nil, reportLookupError(id, err)
	}
	for _, r := range reports {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, reportLookupError(id, common.ErrNotFound)
}

func reportLookupError(id int, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("Report #%d not found", id), err)
	}
	return api.UserError(err, "Failed to load report")
}

func parseReportID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, common.NewUserError(fmt.Sprintf("Invalid report id %q", s), common.ErrInvalidInput)
	}
	return id, nil
}
