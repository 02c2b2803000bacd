package market

import (
	"context"
	"errors"
)

// ErrRateUnavailable is returned by a RateSource that cannot supply a
// conversion rate for the requested currency pair.
var ErrRateUnavailable = errors.New("conversion rate unavailable")

// RateSource supplies a live conversion rate between two currencies.
// Implementations are external (broker API, quote feed); the engine
// only consumes them. The context lets a torn-down caller abandon an
// in-flight lookup instead of acting on a stale result.
type RateSource interface {
	GetRate(ctx context.Context, from, to string) (float64, error)
}

// StaticRates is a RateSource backed by a fixed table, keyed "FROM/TO".
// Used in tests and offline runs.
type StaticRates map[string]float64

func (s StaticRates) GetRate(_ context.Context, from, to string) (float64, error) {
	if r, ok := s[from+"/"+to]; ok {
		return r, nil
	}
	return 0, ErrRateUnavailable
}
