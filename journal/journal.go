package journal

// Trade is the canonical persisted trade record: the fields read off
// the ticket plus the resolved profit, currency and scoring results.
// Price fields use zero as "not set", matching how tickets omit them.
type Trade struct {
	ID         string
	Pair       string
	Direction  string
	Lot        float64
	Entry      float64
	Exit       float64
	StopLoss   float64
	TakeProfit float64
	Profit     float64
	Currency   string
	Fees       float64
	Date       string // YYYY-MM-DD
	Time       string // HH:MM, empty when the ticket carried no time
	Tags       []string
	Notes      string

	IsOffPlan     bool
	RiskRespected bool
	SLMoved       bool
	HasScreenshot bool

	DisciplineScore int
	Breakdown       Breakdown

	// IsAdjustment marks deposits and withdrawals. They carry a signed
	// Profit under the reserved AdjustmentPair marker, count toward the
	// running balance, and stay out of win/loss statistics.
	IsAdjustment bool
}

// AdjustmentPair is the reserved pair marker for balance adjustments.
const AdjustmentPair = "BALANCE"

// Breakdown is the per-category discipline score. The field sum always
// equals the trade's total score.
type Breakdown struct {
	Plan int `json:"plan"`
	Risk int `json:"risk"`
	SL   int `json:"sl"`
	Time int `json:"time"`
	Doc  int `json:"doc"`
}

func (b Breakdown) Total() int {
	return b.Plan + b.Risk + b.SL + b.Time + b.Doc
}

// Journal persists trades and balance adjustments for one account.
type Journal interface {
	Record(Trade) (string, error)
	Get(id string) (Trade, error)
	List() ([]Trade, error)
	Delete(id string) error
	Close() error
}
