package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/extract"
	"github.com/rustyeddy/tradelog/ocr"
)

var extractCmd = &cobra.Command{
	Use:   "extract <textfile>",
	Short: "Parse recognized ticket text into trade fields",
	Long: `Parse a block of recognized screenshot text into structured trade
fields without touching the journal.

The input is the text an OCR step produced from an execution ticket.
Unreadable text is reported as such; no partial trade is created.

Example:
  tradelog extract ticket.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	raw, err := ocr.File(args[0]).Recognize(cmd.Context(), nil)
	if err != nil {
		return err
	}

	d := extract.New(catalog).Extract(raw)
	if d.Pair == "" {
		return fmt.Errorf("data unreadable: no trade summary line found")
	}

	printDraft(d)
	return nil
}

func printDraft(d extract.Draft) {
	fmt.Printf("Pair:       %s\n", d.Pair)
	fmt.Printf("Direction:  %s\n", d.Direction)
	fmt.Printf("Lot:        %g\n", d.Lot)
	printOpt("Entry", d.Entry)
	printOpt("Exit", d.Exit)
	printOpt("Stop loss", d.StopLoss)
	printOpt("Take profit", d.TakeProfit)
	printOpt("Profit", d.Profit)
	if d.Fees != 0 {
		fmt.Printf("Fees:       %.2f\n", d.Fees)
	}
	if d.Date != "" {
		fmt.Printf("Date:       %s", d.Date)
		if d.Time != "" {
			fmt.Printf(" %s", d.Time)
		}
		fmt.Println()
	}
}

func printOpt(label string, v *float64) {
	if v != nil {
		fmt.Printf("%-11s %g\n", label+":", *v)
	}
}
