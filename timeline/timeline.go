package timeline

import (
	"sort"

	"github.com/rustyeddy/tradelog/journal"
)

// Entry is one chronologically-ordered point of an account's equity
// history. Entries are derived on demand from the full record set and
// never persisted; the journal stays the source of truth.
type Entry struct {
	ID             string
	Date           string
	Profit         float64
	RunningBalance float64
	PercentReturn  float64
	IsAdjustment   bool
}

// Build canonicalizes an unordered record set into the equity timeline.
//
// Records sort by (date ascending, id ascending); ids are ULIDs, so the
// same-day tie-break is insertion order and the result is reproducible
// for any input permutation. The running balance accumulates every
// record, adjustments included. Percent return is measured against the
// balance held before the record and defined as zero when that balance
// is not positive.
func Build(records []journal.Trade) []Entry {
	sorted := make([]journal.Trade, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})

	entries := make([]Entry, 0, len(sorted))
	balance := 0.0
	for _, t := range sorted {
		pct := 0.0
		if balance > 0 {
			pct = t.Profit / balance * 100
		}
		balance += t.Profit
		entries = append(entries, Entry{
			ID:             t.ID,
			Date:           t.Date,
			Profit:         t.Profit,
			RunningBalance: balance,
			PercentReturn:  pct,
			IsAdjustment:   t.IsAdjustment,
		})
	}
	return entries
}

// Day is one calendar date of the timeline, with trade profit and
// balance adjustments summed separately so calendars and equity curves
// can render deposits apart from performance.
type Day struct {
	Date     string
	Profit   float64
	Deposits float64
	Balance  float64
	Trades   int
}

// ByDay groups ordered entries by calendar date.
func ByDay(entries []Entry) []Day {
	var days []Day
	for _, e := range entries {
		if len(days) == 0 || days[len(days)-1].Date != e.Date {
			days = append(days, Day{Date: e.Date})
		}
		d := &days[len(days)-1]
		if e.IsAdjustment {
			d.Deposits += e.Profit
		} else {
			d.Profit += e.Profit
			d.Trades++
		}
		d.Balance = e.RunningBalance
	}
	return days
}
