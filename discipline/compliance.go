package discipline

import (
	"math"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
)

// Tolerance is the fixed absolute band around a target value within
// which a realized risk or reward figure still counts as compliant.
// The boundary is inclusive.
const Tolerance = 0.2

// Profile is an account's risk policy: the inputs every compliance and
// discipline check grades against. Read-only to this package.
type Profile struct {
	MaxRiskPct        float64
	TargetRewardRatio float64
	AccountCurrency   string
}

// RiskCompliance reports whether the realized risk percentage sits
// within the tolerance band of the target. The band cuts both ways:
// risking less than planned fails the check exactly like risking more.
// What is graded is plan consistency, not loss limiting.
func RiskCompliance(riskPct, targetRiskPct float64) bool {
	return math.Abs(riskPct-targetRiskPct) <= Tolerance
}

// RewardCompliance reports whether the realized reward/risk ratio sits
// within the tolerance band of the target ratio.
func RewardCompliance(rr, targetRR float64) bool {
	return math.Abs(rr-targetRR) <= Tolerance
}

// RiskPct is the realized risk as a percentage of the reference
// balance: the monetary distance to the stop over the balance held
// before the trade. Infinite when there is no usable balance.
func RiskPct(t journal.Trade, cat *market.Catalog, refBalance float64) float64 {
	if refBalance <= 0 {
		return math.Inf(1)
	}
	return math.Abs(t.Entry-t.StopLoss) * t.Lot * cat.ContractSize(t.Pair) / refBalance * 100
}

// RewardRatio is the realized reward/risk ratio, zero when no stop
// distance exists.
func RewardRatio(t journal.Trade) float64 {
	risk := math.Abs(t.Entry - t.StopLoss)
	if risk == 0 {
		return 0
	}
	return math.Abs(t.TakeProfit-t.Entry) / risk
}

// Compliance is the outcome of evaluating one trade against a profile.
type Compliance struct {
	RiskOK bool
	RROK   bool
}
