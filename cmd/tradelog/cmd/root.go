package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/market"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A personal trading journal with ticket extraction and discipline scoring",
	Long: `Tradelog keeps a personal trading journal in SQLite and grades every
trade against your account's risk plan.

It provides tools for:
  - Extracting trade fields from recognized screenshot text
  - Reconstructing realized P/L across instruments and currencies
  - Scoring trade discipline on a 0-100 rubric
  - Building the chronological equity timeline and calendar views

Complete documentation is available at https://github.com/rustyeddy/tradelog`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath string
	dbPath  string
	verbose bool
)

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (built-in defaults when omitted)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "journal database path (overrides the config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(func() {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	})
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*market.Catalog, error) {
	if cfg.InstrumentsFile == "" {
		return market.DefaultCatalog(), nil
	}
	return market.LoadCatalog(cfg.InstrumentsFile)
}
