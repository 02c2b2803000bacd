package timeline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradelog/journal"
)

func sampleRecords() []journal.Trade {
	return []journal.Trade{
		{ID: "01A", Date: "2024-01-02", Profit: 1000, IsAdjustment: true, Pair: journal.AdjustmentPair},
		{ID: "01B", Date: "2024-01-03", Profit: 50, Pair: "EURUSD", DisciplineScore: 80},
		{ID: "01C", Date: "2024-01-03", Profit: -20, Pair: "EURUSD", DisciplineScore: 60},
		{ID: "01D", Date: "2024-01-05", Profit: 130, Pair: "XAUUSD", DisciplineScore: 100},
		{ID: "01E", Date: "2024-01-05", Profit: -500, IsAdjustment: true, Pair: journal.AdjustmentPair},
	}
}

func TestBuildOrderAndBalances(t *testing.T) {
	t.Parallel()

	entries := Build(sampleRecords())
	require.Len(t, entries, 5)

	wantIDs := []string{"01A", "01B", "01C", "01D", "01E"}
	wantBalances := []float64{1000, 1050, 1030, 1160, 660}
	for i, e := range entries {
		assert.Equal(t, wantIDs[i], e.ID)
		assert.InDelta(t, wantBalances[i], e.RunningBalance, 1e-9)
	}

	// Balance invariant: every prefix sum equals the running balance.
	sum := 0.0
	for _, e := range entries {
		sum += e.Profit
		assert.InDelta(t, sum, e.RunningBalance, 1e-9)
	}
}

func TestBuildPercentReturns(t *testing.T) {
	t.Parallel()

	entries := Build(sampleRecords())

	assert.Zero(t, entries[0].PercentReturn, "no balance exists before the first record")
	assert.InDelta(t, 5.0, entries[1].PercentReturn, 1e-9)        // 50 / 1000
	assert.InDelta(t, -20.0/1050*100, entries[2].PercentReturn, 1e-9)
}

func TestBuildPermutationInvariant(t *testing.T) {
	t.Parallel()

	canonical := Build(sampleRecords())

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := sampleRecords()
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, canonical, Build(shuffled))
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	records[0], records[3] = records[3], records[0]
	before := make([]journal.Trade, len(records))
	copy(before, records)

	Build(records)
	assert.Equal(t, before, records)
}

func TestBuildZeroBalanceReturns(t *testing.T) {
	t.Parallel()

	entries := Build([]journal.Trade{
		{ID: "01A", Date: "2024-01-02", Profit: -100, Pair: "EURUSD"},
		{ID: "01B", Date: "2024-01-03", Profit: 40, Pair: "EURUSD"},
	})

	require.Len(t, entries, 2)
	assert.Zero(t, entries[0].PercentReturn)
	assert.Zero(t, entries[1].PercentReturn, "percent return is defined as zero on a non-positive balance")
	assert.InDelta(t, -60.0, entries[1].RunningBalance, 1e-9)
}

func TestByDay(t *testing.T) {
	t.Parallel()

	days := ByDay(Build(sampleRecords()))
	require.Len(t, days, 3)

	assert.Equal(t, "2024-01-02", days[0].Date)
	assert.InDelta(t, 1000.0, days[0].Deposits, 1e-9)
	assert.Zero(t, days[0].Profit)
	assert.Zero(t, days[0].Trades)

	assert.Equal(t, "2024-01-03", days[1].Date)
	assert.InDelta(t, 30.0, days[1].Profit, 1e-9)
	assert.Equal(t, 2, days[1].Trades)
	assert.InDelta(t, 1030.0, days[1].Balance, 1e-9)

	assert.Equal(t, "2024-01-05", days[2].Date)
	assert.InDelta(t, 130.0, days[2].Profit, 1e-9)
	assert.InDelta(t, -500.0, days[2].Deposits, 1e-9)
	assert.InDelta(t, 660.0, days[2].Balance, 1e-9)
}

func TestComputeExcludesAdjustments(t *testing.T) {
	t.Parallel()

	s := Compute(sampleRecords())

	assert.Equal(t, 3, s.Trades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.InDelta(t, 2.0/3.0*100, s.WinRate, 1e-9)
	assert.InDelta(t, 160.0, s.NetProfit, 1e-9)
	assert.InDelta(t, 80.0, s.AvgScore, 1e-9)
}

func TestComputeEmpty(t *testing.T) {
	t.Parallel()

	s := Compute(nil)
	assert.Zero(t, s.Trades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.AvgScore)
}
