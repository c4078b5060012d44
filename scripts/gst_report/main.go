package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/gst-server/internal/auth"
	server_config "github.com/carson-networks/gst-server/internal/config"
	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/service"
	"github.com/carson-networks/gst-server/internal/storage"
)

// gst_report prints the GST return of one user as a table. Without --from
// and --to it reports the user's current filing period.
func main() {
	app := &cli.App{
		Name:  "gst_report",
		Usage: "print the GST return figures of a user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "user UUID",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "first day, YYYY-MM-DD",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "last day, YYYY-MM-DD",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("gst_report")
	}
}

func run(c *cli.Context) error {
	userID, err := uuid.FromString(c.String("user"))
	if err != nil {
		return cli.Exit("invalid --user: "+err.Error(), 2)
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}

	store := storage.NewStorage(env)
	defer store.DB.Close()

	ctx := auth.WithUser(c.Context, userID, "")
	periods := service.NewPeriodService(store, nil)

	var r period.Range
	switch {
	case c.String("from") != "" && c.String("to") != "":
		from, err := period.ParseDay(c.String("from"))
		if err != nil {
			return cli.Exit("invalid --from: "+err.Error(), 2)
		}
		to, err := period.ParseDay(c.String("to"))
		if err != nil {
			return cli.Exit("invalid --to: "+err.Error(), 2)
		}
		r = period.Range{Start: from, End: to}
	case c.String("from") != "" || c.String("to") != "":
		return cli.Exit("--from and --to must be given together", 2)
	default:
		current, err := periods.CurrentPeriod(ctx, time.Time{})
		if err != nil {
			return err
		}
		r = current.Range
	}

	report, err := periods.GSTReturn(ctx, r)
	if err != nil {
		return err
	}

	renderReport(os.Stdout, report)
	return nil
}

func renderReport(w io.Writer, report *service.GSTReturn) {
	fmt.Fprintf(w, "GST return %s\n\n", report.Range.Label())

	rows := tablewriter.NewWriter(w)
	rows.SetHeader([]string{"Date", "Type", "Category", "Description", "Amount", "GST claimable"})
	for _, t := range report.Transactions {
		rows.Append([]string{
			t.Date.Format(period.DateLayout),
			string(t.Type),
			t.Category,
			t.Description,
			t.Amount.StringFixed(2),
			t.GSTClaimable.StringFixed(2),
		})
	}
	rows.Render()

	fmt.Fprintln(w)
	totals := tablewriter.NewWriter(w)
	totals.SetHeader([]string{"Figure", "Amount"})
	totals.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	totals.AppendBulk(summaryRows(report.Summary))
	totals.Render()
}

func summaryRows(summary gst.Summary) [][]string {
	return [][]string{
		{"Total sales incl. GST", summary.TotalSalesInclGST.StringFixed(2)},
		{"Total spending incl. GST", summary.TotalSpendingInclGST.StringFixed(2)},
		{"GST on sales", summary.GSTOnSales.StringFixed(2)},
		{"GST to claim", summary.GSTToClaim.StringFixed(2)},
		{"Net GST", summary.NetGST.StringFixed(2)},
	}
}
