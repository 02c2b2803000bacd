package market

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogClasses(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	require.NoError(t, c.Validate())

	assert.Equal(t, Forex, c.ClassOf("EURUSD"))
	assert.Equal(t, Metal, c.ClassOf("XAUUSD"))
	assert.Equal(t, Index, c.ClassOf("US30"))
	assert.Equal(t, Crypto, c.ClassOf("BTCUSD"))
}

func TestClassOfUnknownSymbols(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	assert.Equal(t, Forex, c.ClassOf("NOKSEK"), "unknown six-letter codes look like currency pairs")
	assert.Equal(t, Index, c.ClassOf("WTI"), "anything else falls back to the no-op multiplier")
}

func TestContractSizes(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()
	assert.Equal(t, 100_000.0, c.ContractSize("EURUSD"))
	assert.Equal(t, 100.0, c.ContractSize("XAUUSD"))
	assert.Equal(t, 1.0, c.ContractSize("NAS100"))
	assert.Equal(t, 1.0, c.ContractSize("ETHUSD"))
}

func TestQuoteCurrency(t *testing.T) {
	t.Parallel()

	c := DefaultCatalog()

	tests := []struct {
		symbol  string
		account string
		want    string
	}{
		{"EURUSD", "USD", "USD"},
		{"USDJPY", "USD", "JPY"},
		{"eurjpy", "USD", "JPY"},
		{"GER40", "USD", "EUR"},
		{"US30", "EUR", "USD"},
		{"WTI", "USD", "USD"}, // no override, defaults to account currency
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, c.QuoteCurrency(tc.symbol, tc.account), tc.symbol)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "instruments.yaml")
	require.NoError(t, DefaultCatalog().SaveToFile(path))

	loaded, err := LoadCatalog(path)
	require.NoError(t, err)

	ref := DefaultCatalog()
	for sym := range ref.Classes {
		assert.Equal(t, ref.ClassOf(sym), loaded.ClassOf(sym), sym)
		assert.Equal(t, ref.ContractSize(sym), loaded.ContractSize(sym), sym)
		assert.Equal(t, ref.QuoteCurrency(sym, "USD"), loaded.QuoteCurrency(sym, "USD"), sym)
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	c := &Catalog{
		ContractSizes: map[Class]float64{Forex: 100_000},
		Classes:       map[string]Class{"XAUUSD": Metal},
	}
	assert.Error(t, c.Validate(), "class without a contract size")

	c = &Catalog{
		ContractSizes: map[Class]float64{Forex: 100_000},
		Classes:       map[string]Class{"EURUSD": Forex},
		QuoteOverrides: map[string]string{
			"US30": "USD",
		},
	}
	assert.Error(t, c.Validate(), "override for a symbol the catalog does not list")
}

func TestStaticRates(t *testing.T) {
	t.Parallel()

	rates := StaticRates{"USD/JPY": 150.0}

	r, err := rates.GetRate(context.Background(), "USD", "JPY")
	require.NoError(t, err)
	assert.Equal(t, 150.0, r)

	_, err = rates.GetRate(context.Background(), "USD", "CHF")
	assert.ErrorIs(t, err, ErrRateUnavailable)
}
