package market

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Class buckets instruments by how a price move converts into money.
type Class string

const (
	Forex  Class = "forex"
	Metal  Class = "metal"
	Index  Class = "index"
	Crypto Class = "crypto"
)

// Catalog is the instrument lookup data the engine runs on. It is
// configuration, not code: DefaultCatalog covers the usual symbols and
// a YAML file of the same shape can extend or replace it, so new
// instruments never require touching extraction or P/L logic.
type Catalog struct {
	// ContractSizes maps an instrument class to its units-per-lot
	// multiplier.
	ContractSizes map[Class]float64 `yaml:"contract_sizes"`

	// Classes maps known symbol codes to their class.
	Classes map[string]Class `yaml:"classes"`

	// QuoteOverrides maps symbols whose code is not six letters long to
	// their quote currency (e.g. US30 -> USD).
	QuoteOverrides map[string]string `yaml:"quote_overrides"`
}

// DefaultCatalog returns the compiled-in instrument tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		ContractSizes: map[Class]float64{
			Forex:  100_000,
			Metal:  100,
			Index:  1,
			Crypto: 1,
		},
		Classes: map[string]Class{
			"EURUSD": Forex, "GBPUSD": Forex, "USDJPY": Forex,
			"USDCHF": Forex, "USDCAD": Forex, "AUDUSD": Forex,
			"NZDUSD": Forex, "EURGBP": Forex, "EURJPY": Forex,
			"GBPJPY": Forex, "AUDJPY": Forex, "EURCHF": Forex,
			"XAUUSD": Metal, "XAGUSD": Metal,
			"US30": Index, "US100": Index, "US500": Index,
			"NAS100": Index, "SPX500": Index, "GER40": Index,
			"UK100": Index,
			"BTCUSD": Crypto, "ETHUSD": Crypto,
		},
		QuoteOverrides: map[string]string{
			"US30":   "USD",
			"US100":  "USD",
			"US500":  "USD",
			"NAS100": "USD",
			"SPX500": "USD",
			"GER40":  "EUR",
			"UK100":  "GBP",
		},
	}
}

// LoadCatalog reads instrument tables from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// SaveToFile writes the catalog as YAML.
func (c *Catalog) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}

// Validate checks that every known symbol maps to a class with a
// contract size.
func (c *Catalog) Validate() error {
	if len(c.ContractSizes) == 0 {
		return fmt.Errorf("contract_sizes is required")
	}
	if len(c.Classes) == 0 {
		return fmt.Errorf("classes is required")
	}
	for sym, cls := range c.Classes {
		if _, ok := c.ContractSizes[cls]; !ok {
			return fmt.Errorf("symbol %s: no contract size for class %q", sym, cls)
		}
	}
	for sym := range c.QuoteOverrides {
		if _, ok := c.Classes[sym]; !ok {
			return fmt.Errorf("quote override for unknown symbol %s", sym)
		}
	}
	return nil
}

// Known reports whether the symbol is in the catalog.
func (c *Catalog) Known(symbol string) bool {
	_, ok := c.Classes[strings.ToUpper(symbol)]
	return ok
}

var sixLetter = regexp.MustCompile(`^[A-Z]{6}$`)

// ClassOf returns the instrument class for a symbol. Unknown symbols
// that look like a currency pair are treated as forex; anything else
// falls back to Index (contract size 1, the no-op multiplier).
func (c *Catalog) ClassOf(symbol string) Class {
	sym := strings.ToUpper(symbol)
	if cls, ok := c.Classes[sym]; ok {
		return cls
	}
	if sixLetter.MatchString(sym) {
		return Forex
	}
	return Index
}

// ContractSize returns the units-per-lot multiplier for a symbol.
func (c *Catalog) ContractSize(symbol string) float64 {
	return c.ContractSizes[c.ClassOf(symbol)]
}

// QuoteCurrency derives the currency a symbol's price differences are
// denominated in: the last three letters of a six-letter pair code, a
// configured override for odd-length codes, or the account currency
// when neither applies.
func (c *Catalog) QuoteCurrency(symbol, accountCurrency string) string {
	sym := strings.ToUpper(symbol)
	if sixLetter.MatchString(sym) {
		return sym[3:]
	}
	if q, ok := c.QuoteOverrides[sym]; ok {
		return q
	}
	return accountCurrency
}
