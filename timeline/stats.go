package timeline

import "github.com/rustyeddy/tradelog/journal"

// Stats aggregates trade performance. Balance adjustments shape the
// running balance but are excluded from every figure here.
type Stats struct {
	Trades    int
	Wins      int
	Losses    int
	WinRate   float64 // percent of trades closed in profit
	NetProfit float64
	AvgScore  float64 // mean discipline score
}

// Compute derives win/loss statistics from the raw record set. Order
// does not matter; only the timeline cares about ordering.
func Compute(records []journal.Trade) Stats {
	var s Stats
	scoreSum := 0
	for _, t := range records {
		if t.IsAdjustment {
			continue
		}
		s.Trades++
		s.NetProfit += t.Profit
		scoreSum += t.DisciplineScore
		switch {
		case t.Profit > 0:
			s.Wins++
		case t.Profit < 0:
			s.Losses++
		}
	}
	if s.Trades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Trades) * 100
		s.AvgScore = float64(scoreSum) / float64(s.Trades)
	}
	return s
}
