package discipline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
)

func TestRiskComplianceBandInclusive(t *testing.T) {
	t.Parallel()

	target := 1.0
	assert.True(t, RiskCompliance(target, target))
	assert.True(t, RiskCompliance(target+0.2, target), "the tolerance boundary is inclusive")
	assert.True(t, RiskCompliance(target-0.2, target))
	assert.False(t, RiskCompliance(target+0.2001, target))
	assert.False(t, RiskCompliance(target-0.2001, target))
}

func TestRiskComplianceBandCutsBothWays(t *testing.T) {
	t.Parallel()

	// Risking deliberately less than the plan is non-compliant exactly
	// like risking more.
	assert.False(t, RiskCompliance(0.3, 1.0))
}

func TestRewardComplianceBand(t *testing.T) {
	t.Parallel()

	assert.True(t, RewardCompliance(2.0, 2.0))
	assert.True(t, RewardCompliance(2.2, 2.0))
	assert.True(t, RewardCompliance(1.8, 2.0))
	assert.False(t, RewardCompliance(2.21, 2.0))
	assert.False(t, RewardCompliance(3.0, 2.0))
}

func TestRiskPct(t *testing.T) {
	t.Parallel()

	cat := market.DefaultCatalog()
	tr := journal.Trade{Pair: "EURUSD", Lot: 0.5, Entry: 1.0850, StopLoss: 1.0800}

	// 0.0050 * 0.5 * 100000 / 10000 * 100
	assert.InDelta(t, 2.5, RiskPct(tr, cat, 10_000), 1e-9)

	assert.True(t, math.IsInf(RiskPct(tr, cat, 0), 1))
	assert.True(t, math.IsInf(RiskPct(tr, cat, -500), 1))
}

func TestRewardRatio(t *testing.T) {
	t.Parallel()

	tr := journal.Trade{Entry: 1.0850, StopLoss: 1.0800, TakeProfit: 1.0950}
	assert.InDelta(t, 2.0, RewardRatio(tr), 1e-9)

	tr.StopLoss = tr.Entry
	assert.Zero(t, RewardRatio(tr), "no stop distance means no ratio")
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	s := NewScorer(market.DefaultCatalog())
	p := Profile{MaxRiskPct: 2.5, TargetRewardRatio: 2.0, AccountCurrency: "USD"}
	tr := journal.Trade{
		Pair: "EURUSD", Lot: 0.5,
		Entry: 1.0850, StopLoss: 1.0800, TakeProfit: 1.0950,
	}

	c := s.Evaluate(tr, p, 10_000)
	assert.True(t, c.RiskOK)
	assert.True(t, c.RROK)

	c = s.Evaluate(tr, p, 5_000)
	assert.False(t, c.RiskOK, "same trade on half the balance doubles the realized risk")
	assert.True(t, c.RROK)
}
