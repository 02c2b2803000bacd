package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a trade id has no row.
var ErrNotFound = errors.New("trade not found")

const tradeColumns = `id, pair, direction, lot, entry, exit, stop_loss, take_profit,
	profit, currency, fees, trade_date, trade_time, tags, notes,
	is_off_plan, risk_respected, sl_moved, has_screenshot,
	is_adjustment, discipline_score, discipline_breakdown`

// Get returns a single trade by id.
func (j *SQLite) Get(tradeID string) (Trade, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE id = ?`, tradeID)

	t, err := j.scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
		}
		return Trade{}, err
	}
	return t, nil
}

// List returns every record, trades and adjustments interleaved, in
// timeline order.
func (j *SQLite) List() ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY trade_date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := j.scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBetween returns records whose trade date falls within
// [start, end], both YYYY-MM-DD inclusive.
func (j *SQLite) ListBetween(start, end string) ([]Trade, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_date >= ? AND trade_date <= ?
		ORDER BY trade_date ASC, id ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := j.scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a trade by id.
func (j *SQLite) Delete(tradeID string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q: %w", tradeID, ErrNotFound)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (j *SQLite) scanTrade(row scannable) (Trade, error) {
	var (
		t         Trade
		tags      string
		breakdown string
		offPlan   int
		riskResp  int
		slMoved   int
		shot      int
		adj       int
	)

	err := row.Scan(
		&t.ID, &t.Pair, &t.Direction, &t.Lot, &t.Entry, &t.Exit, &t.StopLoss, &t.TakeProfit,
		&t.Profit, &t.Currency, &t.Fees, &t.Date, &t.Time, &tags, &t.Notes,
		&offPlan, &riskResp, &slMoved, &shot,
		&adj, &t.DisciplineScore, &breakdown,
	)
	if err != nil {
		return Trade{}, err
	}

	if tags != "" && tags != "[]" {
		if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
			// Rows predating the JSON format hold a bare comma join.
			t.Tags = strings.Split(tags, ",")
		}
	}
	t.IsOffPlan = offPlan != 0
	t.RiskRespected = riskResp != 0
	t.SLMoved = slMoved != 0
	t.HasScreenshot = shot != 0
	t.IsAdjustment = adj != 0

	// A breakdown that fails to deserialize reads back empty rather
	// than failing the whole row.
	if err := json.Unmarshal([]byte(breakdown), &t.Breakdown); err != nil {
		t.Breakdown = Breakdown{}
		j.log.Warn().Str("trade", t.ID).Msg("malformed discipline breakdown, defaulting to empty")
	}

	return t, nil
}
