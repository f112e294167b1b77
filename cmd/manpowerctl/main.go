package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go-manpower/internal/app"
	"go-manpower/internal/config"
	"go-manpower/internal/employee"
	"go-manpower/internal/manpower"
	"go-manpower/internal/shared/apperror"
	"go-manpower/internal/shared/bulk"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds what every subcommand needs.
type cli struct {
	container *app.Container
	logger    *zap.Logger
	ctx       context.Context
}

var (
	companyID string
	actorID   string
	verbose   bool
	ctl       *cli
)

func main() {
	if err := newRootCmd(initCLI).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand. open runs before any of them and
// provides the services they call.
func newRootCmd(open func() (*cli, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manpowerctl",
		Short: "Manpower scheduling admin tool",
		Long:  `Administrative commands for manpower requests: rank candidates, generate recurring requests, reset employee statuses.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := open()
			if err != nil {
				return err
			}
			ctl = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if ctl == nil {
				return
			}
			if ctl.container != nil {
				ctl.container.Close()
			}
			_ = ctl.logger.Sync()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&companyID, "company", "c", "", "Company ID")
	rootCmd.PersistentFlags().StringVar(&actorID, "actor", "manpowerctl", "Actor recorded on writes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(rankCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(resetStatusesCmd())
	return rootCmd
}

func initCLI() (*cli, error) {
	_ = godotenv.Load()

	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	apperror.Init()

	container, err := app.Open(config.FromEnv(), false, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open application: %w", err)
	}
	return &cli{container: container, logger: logger, ctx: context.Background()}, nil
}

// explain prints the client view of err so apperror codes reach the operator.
func explain(err error) error {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Code == apperror.CodeInternalError {
		return err
	}
	if httpErr.Details != nil {
		return fmt.Errorf("%s: %s (%v)", httpErr.Code, httpErr.Message, httpErr.Details)
	}
	return fmt.Errorf("%s: %s", httpErr.Code, httpErr.Message)
}

func requireCompany(cmd *cobra.Command, args []string) error {
	if companyID == "" {
		return fmt.Errorf("--company is required for %s", cmd.Name())
	}
	return nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(ctl.ctx, ctl.container.GormDB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rank <request_id>",
		PreRunE: requireCompany,
		Short:   "Show ranked candidates for a manpower request",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := ctl.container.Services.Manpower.Candidates(ctl.ctx, companyID, args[0])
			if err != nil {
				return explain(err)
			}
			printCandidates(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

func printCandidates(out io.Writer, resp manpower.CandidatesResponse) {
	fmt.Fprintf(out, "\n%s  %s / %s / %s  status=%s  remaining=%d\n\n",
		resp.Request.Number, resp.Request.SubSectionName, resp.Request.ShiftName, resp.Request.Date,
		resp.Request.Status, resp.Fulfillment.Remaining)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNIK\tNAME\tGENDER\tPRIORITY\tWORKLOAD\tASSESSMENT\tTOTAL")
	for i, c := range resp.Candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, c.NIK, c.FullName, c.Gender, c.PriorityWeight, c.WorkloadScore, c.AssessmentScore, c.TotalScore)
	}
	_ = w.Flush()

	if len(resp.Excluded) > 0 {
		fmt.Fprintf(out, "\nExcluded (%d):\n", len(resp.Excluded))
		for _, e := range resp.Excluded {
			fmt.Fprintf(out, "  %s  %s\n", e.EmployeeID, e.Reason)
		}
	}
	fmt.Fprintln(out)
}

func generateCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "generate",
		PreRunE: requireCompany,
		Short:   "Create manpower requests from recurring needs over a date range",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := ctl.container.Services.Manpower.Generate(ctl.ctx, companyID, actorID, manpower.GenerateRequest{From: from, To: to})
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			for _, item := range report.Items {
				switch item.Status {
				case manpower.GeneratedCreated:
					fmt.Fprintf(out, "  + %s  %s\n", item.Date, item.Number)
				case manpower.GeneratedSkipped:
					fmt.Fprintf(out, "  = %s  already requested\n", item.Date)
				default:
					fmt.Fprintf(out, "  ! %s  %s: %s\n", item.Date, item.Code, item.Message)
				}
			}
			fmt.Fprintf(out, "\ncreated=%d skipped=%d failed=%d\n", report.Created, report.Skipped, report.Failed)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Last date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func resetStatusesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reset-statuses [employee_id...]",
		PreRunE: requireCompany,
		Short:   "Reset work and leave status; no ids resets every employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := ctl.container.Services.Employee.BulkResetStatuses(ctl.ctx, companyID, actorID,
				employee.BulkResetStatusesRequest{EmployeeIDs: args})
			if err != nil {
				return explain(err)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printReport(out io.Writer, report bulk.Report) {
	for _, item := range report.Items {
		if item.Status == bulk.ItemStatusFailed {
			fmt.Fprintf(out, "  ! %s  %s: %s\n", item.ID, item.Code, item.Message)
		}
	}
	fmt.Fprintf(out, "total=%d succeeded=%d failed=%d\n", report.Total, report.Succeeded, report.Failed)
}
