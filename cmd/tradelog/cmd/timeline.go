package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/timeline"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the chronological equity timeline",
	Long: `Rebuild the equity timeline from the journal: every trade and balance
adjustment in (date, insertion) order with running balance and percent
return, followed by aggregate statistics.

Examples:
  tradelog timeline
  tradelog timeline --export equity.csv`,
	RunE: runTimeline,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the equity timeline grouped by calendar day",
	Args:  cobra.NoArgs,
	RunE:  runCalendar,
}

var timelineExport string

func init() {
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(calendarCmd)

	timelineCmd.Flags().StringVarP(&timelineExport, "export", "e", "", "write the timeline to a CSV file")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	entries := timeline.Build(records)
	if timelineExport != "" {
		if err := timeline.ExportCSV(timelineExport, entries); err != nil {
			return fmt.Errorf("export timeline: %w", err)
		}
		fmt.Printf("✓ Exported %d entries to %s\n", len(entries), timelineExport)
		return nil
	}

	fmt.Printf("%-12s %-28s %10s %12s %8s\n", "DATE", "ID", "PROFIT", "BALANCE", "RETURN")
	for _, e := range entries {
		marker := ""
		if e.IsAdjustment {
			marker = "  (adjustment)"
		}
		fmt.Printf("%-12s %-28s %10.2f %12.2f %7.2f%%%s\n",
			e.Date, e.ID, e.Profit, e.RunningBalance, e.PercentReturn, marker)
	}

	s := timeline.Compute(records)
	fmt.Printf("\nTrades: %d  Wins: %d  Losses: %d  Win rate: %.1f%%\n",
		s.Trades, s.Wins, s.Losses, s.WinRate)
	fmt.Printf("Net P/L: %.2f  Avg discipline: %.1f\n", s.NetProfit, s.AvgScore)
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	records, err := loadRecords()
	if err != nil {
		return err
	}

	days := timeline.ByDay(timeline.Build(records))
	fmt.Printf("%-12s %10s %10s %12s %7s\n", "DATE", "PROFIT", "DEPOSITS", "BALANCE", "TRADES")
	for _, d := range days {
		fmt.Printf("%-12s %10.2f %10.2f %12.2f %7d\n",
			d.Date, d.Profit, d.Deposits, d.Balance, d.Trades)
	}
	return nil
}

func loadRecords() ([]journal.Trade, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	records, err := j.List()
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	return records, nil
}
