package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/discipline"
	"github.com/rustyeddy/tradelog/extract"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/ocr"
	"github.com/rustyeddy/tradelog/pnl"
	"github.com/rustyeddy/tradelog/timeline"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a trade to the journal",
	Long: `Add a trade: extract fields from recognized ticket text (or take them
from flags), reconstruct the realized P/L, score discipline against the
account plan, and persist the result.

Examples:
  tradelog add --from-text ticket.txt --tags breakout,london --screenshot
  tradelog add --pair EURUSD --direction BUY --lot 0.5 \
      --entry 1.0850 --exit 1.0920 --sl 1.0800 --tp 1.0950 --date 2024-03-01`,
	RunE: runAdd,
}

var (
	addFromText   string
	addPair       string
	addDirection  string
	addLot        float64
	addEntry      float64
	addExit       float64
	addSL         float64
	addTP         float64
	addProfit     float64
	addFees       float64
	addDate       string
	addTime       string
	addTags       string
	addNotes      string
	addScreenshot bool
	addSLMoved    bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addFromText, "from-text", "", "recognized ticket text file to extract fields from")
	addCmd.Flags().StringVar(&addPair, "pair", "", "instrument code (e.g. EURUSD)")
	addCmd.Flags().StringVar(&addDirection, "direction", "", "BUY or SELL")
	addCmd.Flags().Float64Var(&addLot, "lot", 0, "lot size")
	addCmd.Flags().Float64Var(&addEntry, "entry", 0, "entry price")
	addCmd.Flags().Float64Var(&addExit, "exit", 0, "exit price")
	addCmd.Flags().Float64Var(&addSL, "sl", 0, "stop-loss price")
	addCmd.Flags().Float64Var(&addTP, "tp", 0, "take-profit price")
	addCmd.Flags().Float64Var(&addProfit, "profit", 0, "literal profit, skips reconstruction")
	addCmd.Flags().Float64Var(&addFees, "fees", 0, "commission and swap, absolute")
	addCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD")
	addCmd.Flags().StringVar(&addTime, "time", "", "trade time HH:MM")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().BoolVar(&addScreenshot, "screenshot", false, "visual evidence was captured")
	addCmd.Flags().BoolVar(&addSLMoved, "sl-moved", false, "the stop was moved during the trade")
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	draft, err := addDraft(cmd, catalog)
	if err != nil {
		return err
	}

	rec := pnl.New(catalog, market.StaticRates(cfg.Rates))
	t, conv, err := rec.Reconstruct(cmd.Context(), draft, cfg.Account.Currency)
	if err != nil {
		return fmt.Errorf("reconstruct profit: %w", err)
	}
	if conv.Degraded {
		fmt.Printf("warning: no %s/%s rate, profit left in %s\n", conv.To, conv.From, conv.From)
	}

	if addTags != "" {
		t.Tags = strings.Split(addTags, ",")
	}
	t.Notes = addNotes
	t.HasScreenshot = addScreenshot
	t.SLMoved = addSLMoved

	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	existing, err := j.List()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	refBalance := cfg.Account.StartBalance
	if entries := timeline.Build(existing); len(entries) > 0 {
		refBalance += entries[len(entries)-1].RunningBalance
	}

	scorer := discipline.NewScorer(catalog)
	c := scorer.Evaluate(t, cfg.Account.Profile(), refBalance)
	t.RiskRespected = c.RiskOK
	t.IsOffPlan = !c.RROK
	t.DisciplineScore, t.Breakdown = scorer.Score(t, cfg.Account.Profile(), refBalance)

	id, err := j.Record(t)
	if err != nil {
		return fmt.Errorf("record trade: %w", err)
	}

	fmt.Printf("✓ Recorded %s %s %s %.2f lots  P/L %.2f %s\n",
		id, t.Pair, t.Direction, t.Lot, t.Profit, t.Currency)
	fmt.Printf("  Discipline %d/100  (risk %d, plan %d, sl %d, time %d, doc %d)\n",
		t.DisciplineScore, t.Breakdown.Risk, t.Breakdown.Plan,
		t.Breakdown.SL, t.Breakdown.Time, t.Breakdown.Doc)
	return nil
}

// addDraft builds the extraction draft either from recognized ticket
// text or from the manual-entry flags.
func addDraft(cmd *cobra.Command, catalog *market.Catalog) (extract.Draft, error) {
	if addFromText != "" {
		raw, err := ocr.File(addFromText).Recognize(cmd.Context(), nil)
		if err != nil {
			return extract.Draft{}, err
		}
		d := extract.New(catalog).Extract(raw)
		if d.Pair == "" {
			return extract.Draft{}, fmt.Errorf("data unreadable: no trade summary line found")
		}
		return d, nil
	}

	if addPair == "" || addDirection == "" || addLot == 0 {
		return extract.Draft{}, fmt.Errorf("either --from-text or --pair/--direction/--lot are required")
	}

	d := extract.Draft{
		Pair:      strings.ToUpper(addPair),
		Direction: extract.Direction(strings.ToUpper(addDirection)),
		Lot:       addLot,
		Fees:      addFees,
		Date:      addDate,
		Time:      addTime,
	}
	setIfFlagged(cmd, "entry", &d.Entry, addEntry)
	setIfFlagged(cmd, "exit", &d.Exit, addExit)
	setIfFlagged(cmd, "sl", &d.StopLoss, addSL)
	setIfFlagged(cmd, "tp", &d.TakeProfit, addTP)
	setIfFlagged(cmd, "profit", &d.Profit, addProfit)
	return d, nil
}

func setIfFlagged(cmd *cobra.Command, name string, dst **float64, v float64) {
	if cmd.Flags().Changed(name) {
		*dst = &v
	}
}
