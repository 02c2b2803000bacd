package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
)

var adjustCmd = &cobra.Command{
	Use:   "adjust",
	Short: "Record a deposit or withdrawal",
	Long: `Record a balance adjustment. Positive amounts are deposits, negative
amounts are withdrawals. Adjustments move the running balance but stay
out of win/loss statistics.

Examples:
  tradelog adjust --amount 1000 --date 2024-01-02 --notes "initial funding"
  tradelog adjust --amount -250`,
	RunE: runAdjust,
}

var (
	adjustAmount float64
	adjustDate   string
	adjustNotes  string
)

func init() {
	rootCmd.AddCommand(adjustCmd)

	adjustCmd.Flags().Float64VarP(&adjustAmount, "amount", "a", 0, "signed amount (required)")
	adjustCmd.Flags().StringVar(&adjustDate, "date", "", "date YYYY-MM-DD (default today)")
	adjustCmd.Flags().StringVar(&adjustNotes, "notes", "", "free-form notes")
	adjustCmd.MarkFlagRequired("amount")
}

func runAdjust(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date := adjustDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	id, err := j.RecordAdjustment(date, adjustAmount, adjustNotes)
	if err != nil {
		return fmt.Errorf("record adjustment: %w", err)
	}

	fmt.Printf("✓ Recorded adjustment %s  %+.2f on %s\n", id, adjustAmount, date)
	return nil
}
