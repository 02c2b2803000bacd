package discipline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
)

// planTrade is compliant on every rubric category against planProfile
// with a 10k reference balance.
func planTrade() journal.Trade {
	return journal.Trade{
		Pair:          "EURUSD",
		Direction:     "BUY",
		Lot:           0.5,
		Entry:         1.0850,
		Exit:          1.0920,
		StopLoss:      1.0800,
		TakeProfit:    1.0950,
		Date:          "2024-03-01",
		Time:          "09:15",
		Tags:          []string{"breakout"},
		HasScreenshot: true,
	}
}

func planProfile() Profile {
	return Profile{MaxRiskPct: 2.5, TargetRewardRatio: 2.0, AccountCurrency: "USD"}
}

func TestScorePerfectTrade(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	total, b := s.Score(planTrade(), planProfile(), 10_000)

	assert.Equal(t, 100, total)
	assert.Equal(t, journal.Breakdown{Risk: 25, Plan: 35, SL: 20, Time: 10, Doc: 10}, b)
}

func TestScoreBreakdownSumsToTotal(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	p := planProfile()

	variants := []journal.Trade{
		planTrade(),
		{},
		{Pair: "EURUSD", Lot: 0.5, Entry: 1.0850, StopLoss: 1.0800, Time: "23:30"},
		{Pair: "XAUUSD", Lot: 1, Entry: 2000, StopLoss: 1999, TakeProfit: 2002, SLMoved: true},
		{Pair: "EURUSD", Tags: []string{"a", "b"}, HasScreenshot: true},
	}
	for _, tr := range variants {
		for _, bal := range []float64{0, 10_000, 250} {
			total, b := s.Score(tr, p, bal)
			assert.Equal(t, b.Total(), total)
			assert.GreaterOrEqual(t, total, 0)
			assert.LessOrEqual(t, total, 100)
		}
	}
}

func TestScoreRiskRequiresBalance(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	_, b := s.Score(planTrade(), planProfile(), 0)
	assert.Zero(t, b.Risk, "no valid reference balance, no risk points")
}

func TestScorePartialPlanCredit(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	tr := planTrade()
	tr.TakeProfit = 0

	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Equal(t, 25, b.Risk)
	assert.Equal(t, 15, b.Plan, "stop sized to plan but no target set earns partial credit")
}

func TestScorePlanZeroWhenOffTarget(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	tr := planTrade()
	tr.TakeProfit = 1.1100 // RR 5.0, far outside the band

	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Zero(t, b.Plan)
}

func TestScoreStopLossIntegrity(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())

	tr := planTrade()
	tr.SLMoved = true
	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Zero(t, b.SL, "a moved stop forfeits the integrity points")

	tr = planTrade()
	tr.StopLoss = 0
	_, b = s.Score(tr, planProfile(), 10_000)
	assert.Zero(t, b.SL)
}

func TestScoreSessionTiming(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	p := planProfile()

	tests := []struct {
		time string
		want int
	}{
		{"00:05", 10}, // Asia
		{"09:00", 10}, // London
		{"14:30", 10}, // London/New York overlap
		{"21:59", 10}, // New York
		{"22:00", 0},
		{"23:30", 0},
	}
	for _, tc := range tests {
		tr := planTrade()
		tr.Time = tc.time
		_, b := s.Score(tr, p, 10_000)
		assert.Equal(t, tc.want, b.Time, tc.time)
	}
}

func TestScoreHourDefaultsToMidday(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	tr := planTrade()
	tr.Time = ""

	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Equal(t, 10, b.Time, "no parseable time lands on hour 12, inside London")
}

func TestScoreHourFromTimeBearingDate(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	tr := planTrade()
	tr.Time = ""
	tr.Date = "2024-03-01 23:10"

	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Zero(t, b.Time)
}

func TestScoreDocumentation(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())

	tr := planTrade()
	tr.Tags = nil
	_, b := s.Score(tr, planProfile(), 10_000)
	assert.Equal(t, 5, b.Doc)

	tr.HasScreenshot = false
	_, b = s.Score(tr, planProfile(), 10_000)
	assert.Zero(t, b.Doc)
}
