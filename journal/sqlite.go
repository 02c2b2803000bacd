package journal

import (
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rustyeddy/tradelog/pkg/id"
)

// SQLite is the Journal implementation backing the CLI. Boolean flags
// are stored as 0/1 integers and the discipline breakdown as a JSON
// payload, rehydrated on read.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{
		db:  db,
		log: log.With().Str("component", "journal").Logger(),
	}, nil
}

// Record inserts or replaces a trade and returns its id. Records
// arriving without an id get a fresh ULID, which keeps same-day
// records sorted by insertion order.
func (j *SQLite) Record(t Trade) (string, error) {
	if t.ID == "" {
		t.ID = id.New()
	}

	breakdown, err := json.Marshal(t.Breakdown)
	if err != nil {
		return "", err
	}

	// Tags go down as a JSON array so a comma inside a tag survives the
	// round trip.
	tags := []byte("[]")
	if len(t.Tags) > 0 {
		if tags, err = json.Marshal(t.Tags); err != nil {
			return "", err
		}
	}

	_, err = j.db.Exec(`
		INSERT OR REPLACE INTO trades
		(id, pair, direction, lot, entry, exit, stop_loss, take_profit,
		 profit, currency, fees, trade_date, trade_time, tags, notes,
		 is_off_plan, risk_respected, sl_moved, has_screenshot,
		 is_adjustment, discipline_score, discipline_breakdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Pair, t.Direction, t.Lot, t.Entry, t.Exit, t.StopLoss, t.TakeProfit,
		t.Profit, t.Currency, t.Fees, t.Date, t.Time, string(tags), t.Notes,
		b2i(t.IsOffPlan), b2i(t.RiskRespected), b2i(t.SLMoved), b2i(t.HasScreenshot),
		b2i(t.IsAdjustment), t.DisciplineScore, string(breakdown),
	)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// RecordAdjustment persists a deposit (positive) or withdrawal
// (negative) under the reserved adjustment marker.
func (j *SQLite) RecordAdjustment(date string, amount float64, notes string) (string, error) {
	return j.Record(Trade{
		Pair:         AdjustmentPair,
		Profit:       amount,
		Date:         date,
		Notes:        notes,
		IsAdjustment: true,
	})
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
