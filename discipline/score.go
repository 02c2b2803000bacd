package discipline

import (
	"time"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
)

// Rubric weights. The five categories are independent and additive and
// sum to at most 100.
const (
	riskPoints    = 25
	planPoints    = 35
	planPartial   = 15
	slPoints      = 20
	sessionPoints = 10
	docTagPoints  = 5
	docShotPoints = 5
)

// Trading session windows in ticket-local hours. London and New York
// overlap on purpose; either window satisfies the timing check.
var sessions = [][2]int{
	{0, 8},   // Asia
	{8, 16},  // London
	{13, 22}, // New York
}

// Scorer grades trades against an account profile. Instrument data
// comes from the injected catalog, same as everywhere else.
type Scorer struct {
	catalog *market.Catalog
}

func NewScorer(c *market.Catalog) *Scorer {
	return &Scorer{catalog: c}
}

// Evaluate runs the two compliance checks for one trade.
// refBalance is the account balance held before the trade.
func (s *Scorer) Evaluate(t journal.Trade, p Profile, refBalance float64) Compliance {
	return Compliance{
		RiskOK: RiskCompliance(RiskPct(t, s.catalog, refBalance), p.MaxRiskPct),
		RROK:   RewardCompliance(RewardRatio(t), p.TargetRewardRatio),
	}
}

// Score computes the 0-100 discipline score and its breakdown. It is
// pure and deterministic: rerun it whenever the trade or the profile
// changes, nothing updates incrementally.
func (s *Scorer) Score(t journal.Trade, p Profile, refBalance float64) (int, journal.Breakdown) {
	var b journal.Breakdown
	c := s.Evaluate(t, p, refBalance)

	if c.RiskOK && refBalance > 0 {
		b.Risk = riskPoints
	}

	switch {
	case t.Entry != 0 && t.StopLoss != 0 && t.TakeProfit != 0 && c.RROK:
		b.Plan = planPoints
	case t.TakeProfit == 0 && b.Risk > 0:
		// No target was set, but the stop was sized to plan: partial
		// credit for the half of the plan that exists.
		b.Plan = planPartial
	}

	if t.StopLoss != 0 && !t.SLMoved {
		b.SL = slPoints
	}

	if inSession(tradeHour(t)) {
		b.Time = sessionPoints
	}

	if len(t.Tags) > 0 {
		b.Doc += docTagPoints
	}
	if t.HasScreenshot {
		b.Doc += docShotPoints
	}

	return b.Total(), b
}

// tradeHour resolves the hour the trade executed: the ticket time if it
// parses, a time-bearing date if not, and neutral midday as the final
// fallback so undated trades still land inside a session window.
func tradeHour(t journal.Trade) int {
	if ts, err := time.Parse("15:04", t.Time); err == nil {
		return ts.Hour()
	}
	for _, layout := range []string{"2006-01-02 15:04", time.RFC3339} {
		if ts, err := time.Parse(layout, t.Date); err == nil {
			return ts.Hour()
		}
	}
	return 12
}

func inSession(hour int) bool {
	for _, w := range sessions {
		if hour >= w[0] && hour < w[1] {
			return true
		}
	}
	return false
}
