package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL DEFAULT '',
	lot REAL NOT NULL DEFAULT 0,
	entry REAL NOT NULL DEFAULT 0,
	exit REAL NOT NULL DEFAULT 0,
	stop_loss REAL NOT NULL DEFAULT 0,
	take_profit REAL NOT NULL DEFAULT 0,
	profit REAL NOT NULL DEFAULT 0,
	currency TEXT NOT NULL DEFAULT '',
	fees REAL NOT NULL DEFAULT 0,
	trade_date TEXT NOT NULL,
	trade_time TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	is_off_plan INTEGER NOT NULL DEFAULT 0,
	risk_respected INTEGER NOT NULL DEFAULT 0,
	sl_moved INTEGER NOT NULL DEFAULT 0,
	has_screenshot INTEGER NOT NULL DEFAULT 0,
	is_adjustment INTEGER NOT NULL DEFAULT 0,
	discipline_score INTEGER NOT NULL DEFAULT 0,
	discipline_breakdown TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date, id);
`
