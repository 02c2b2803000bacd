package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/discipline"
	"github.com/rustyeddy/tradelog/journal"
)

var rescoreCmd = &cobra.Command{
	Use:   "rescore",
	Short: "Recompute discipline scores for every trade",
	Long: `Re-run compliance and discipline scoring over the whole journal.

Scores are never recomputed implicitly; run this after changing the
account's risk plan so stored scores match the current policy. The
reference balance for each trade is the running balance held before it,
replayed in timeline order.`,
	Args: cobra.NoArgs,
	RunE: runRescore,
}

func init() {
	rootCmd.AddCommand(rescoreCmd)
}

func runRescore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	// List returns timeline order, so the balance replay below sees
	// each trade's pre-trade balance.
	records, err := j.List()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	scorer := discipline.NewScorer(catalog)
	profile := cfg.Account.Profile()
	balance := cfg.Account.StartBalance

	updated := 0
	for _, t := range records {
		if t.IsAdjustment {
			balance += t.Profit
			continue
		}

		c := scorer.Evaluate(t, profile, balance)
		t.RiskRespected = c.RiskOK
		t.IsOffPlan = !c.RROK
		t.DisciplineScore, t.Breakdown = scorer.Score(t, profile, balance)

		if _, err := j.Record(t); err != nil {
			return fmt.Errorf("update trade %s: %w", t.ID, err)
		}
		updated++
		balance += t.Profit
	}

	fmt.Printf("✓ Rescored %d trades\n", updated)
	return nil
}
