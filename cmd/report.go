package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/mandrill/mandrill"
)

// reportCmd summarizes the account
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show an account summary",
	Long: `Fetch account information, senders, tags and sending domains concurrently
and print a summary. With --output json the raw results are printed.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

type accountReport struct {
	Info    mandrill.Struct `json:"info"`
	Senders mandrill.Array  `json:"senders"`
	Tags    mandrill.Array  `json:"tags"`
	Domains mandrill.Array  `json:"domains"`
}

func runReport(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := fetchReport(cmd, client)
	if err != nil {
		return err
	}

	if outputFmt == "json" {
		return printResult(cmd.OutOrStdout(), report)
	}
	printReport(cmd.OutOrStdout(), report)
	return nil
}

// fetchReport issues the report calls concurrently on one client. The client
// serializes them on its session; the first failure cancels the rest.
func fetchReport(cmd *cobra.Command, client *mandrill.Client) (*accountReport, error) {
	var report accountReport
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() (err error) {
		report.Info, err = client.Users.Info(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.Senders, err = client.Users.Senders(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.Tags, err = client.Tags.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		report.Domains, err = client.Senders.Domains(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}

func printReport(w io.Writer, r *accountReport) {
	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintf(w, "Account:    %v\n", r.Info["username"])
	fmt.Fprintf(w, "Reputation: %v\n", r.Info["reputation"])
	fmt.Fprintf(w, "Hourly quota: %v, backlog: %v\n", r.Info["hourly_quota"], r.Info["backlog"])
	fmt.Fprintln(w, strings.Repeat("━", 60))

	if stats, ok := r.Info["stats"].(map[string]any); ok {
		fmt.Fprintf(w, "%-14s %10s %10s %10s %10s\n", "PERIOD", "SENT", "BOUNCES", "OPENS", "CLICKS")
		for _, period := range []string{"today", "last_7_days", "last_30_days", "all_time"} {
			s, _ := stats[period].(map[string]any)
			if s == nil {
				continue
			}
			fmt.Fprintf(w, "%-14s %10v %10v %10v %10v\n", period, s["sent"], s["hard_bounces"], s["opens"], s["clicks"])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Senders (%d):\n", len(r.Senders))
	for _, item := range r.Senders {
		if s, ok := item.(map[string]any); ok {
			fmt.Fprintf(w, "  • %v (sent %v)\n", s["address"], s["sent"])
		}
	}

	fmt.Fprintf(w, "\nTags (%d):\n", len(r.Tags))
	for _, item := range r.Tags {
		if t, ok := item.(map[string]any); ok {
			fmt.Fprintf(w, "  • %v (sent %v, reputation %v)\n", t["tag"], t["sent"], t["reputation"])
		}
	}

	fmt.Fprintf(w, "\nSending domains (%d):\n", len(r.Domains))
	for _, item := range r.Domains {
		if d, ok := item.(map[string]any); ok {
			fmt.Fprintf(w, "  • %v (valid signing: %v)\n", d["domain"], d["valid_signing"])
		}
	}
}
