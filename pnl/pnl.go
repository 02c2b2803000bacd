package pnl

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/tradelog/extract"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
)

// ErrMissingPriceData means the draft carries neither a literal profit
// nor the entry/exit/lot/pair/direction needed to reconstruct one.
var ErrMissingPriceData = errors.New("missing price data")

// Conversion reports how the quote-currency profit was brought into the
// account currency, so callers can surface degraded precision instead
// of it silently disappearing into the number.
type Conversion struct {
	From    string
	To      string
	Rate    float64
	Applied bool

	// Degraded means the rate lookup failed and the profit was left in
	// the quote currency. The trade still gets a finite value; only the
	// denomination is off.
	Degraded bool
}

// Reconstructor turns extracted drafts into trade records with a
// resolved profit.
type Reconstructor struct {
	catalog *market.Catalog
	rates   market.RateSource
	log     zerolog.Logger
}

func New(catalog *market.Catalog, rates market.RateSource) *Reconstructor {
	return &Reconstructor{
		catalog: catalog,
		rates:   rates,
		log:     log.With().Str("component", "pnl").Logger(),
	}
}

// Reconstruct resolves the realized profit of a draft in the account
// currency and nets out fees.
//
// A draft with a literal ticket profit uses it verbatim; otherwise the
// profit is rebuilt from price distance, lot and contract size, then
// converted out of the quote currency when it differs from the account
// currency. An unavailable rate degrades precision instead of failing:
// the returned Conversion says so and the currency is left as quoted.
func (r *Reconstructor) Reconstruct(ctx context.Context, d extract.Draft, accountCurrency string) (journal.Trade, Conversion, error) {
	t := fromDraft(d)

	if d.Profit != nil {
		t.Profit = *d.Profit - math.Abs(d.Fees)
		t.Currency = accountCurrency
		return t, Conversion{From: accountCurrency, To: accountCurrency}, nil
	}

	if d.Pair == "" || d.Direction == "" || d.Lot == 0 || d.Entry == nil || d.Exit == nil {
		return journal.Trade{}, Conversion{}, ErrMissingPriceData
	}

	dist := *d.Exit - *d.Entry
	if d.Direction == extract.Sell {
		dist = *d.Entry - *d.Exit
	}
	gross := dist * d.Lot * r.catalog.ContractSize(d.Pair)

	quote := r.catalog.QuoteCurrency(d.Pair, accountCurrency)
	conv := Conversion{From: quote, To: accountCurrency}
	t.Currency = accountCurrency

	if quote != accountCurrency {
		switch {
		case strings.HasPrefix(strings.ToUpper(d.Pair), accountCurrency) && *d.Exit != 0:
			// Pair is account-per-quote (e.g. USDJPY for a USD
			// account): the exit price itself is the rate. A zero
			// exit cannot divide and falls through to the rate source.
			gross /= *d.Exit
			conv.Rate = *d.Exit
			conv.Applied = true
		default:
			rate, err := r.rates.GetRate(ctx, accountCurrency, quote)
			if err != nil || rate == 0 {
				conv.Degraded = true
				t.Currency = quote
				r.log.Warn().
					Str("pair", d.Pair).
					Str("quote", quote).
					Str("account", accountCurrency).
					Msg("rate unavailable, profit left unconverted")
			} else {
				gross /= rate
				conv.Rate = rate
				conv.Applied = true
			}
		}
	}

	t.Profit = gross - math.Abs(d.Fees)
	return t, conv, nil
}

func fromDraft(d extract.Draft) journal.Trade {
	t := journal.Trade{
		Pair:      d.Pair,
		Direction: string(d.Direction),
		Lot:       d.Lot,
		Fees:      d.Fees,
		Date:      d.Date,
		Time:      d.Time,
	}
	if d.Entry != nil {
		t.Entry = *d.Entry
	}
	if d.Exit != nil {
		t.Exit = *d.Exit
	}
	if d.StopLoss != nil {
		t.StopLoss = *d.StopLoss
	}
	if d.TakeProfit != nil {
		t.TakeProfit = *d.TakeProfit
	}
	return t
}
