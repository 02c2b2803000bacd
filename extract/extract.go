package extract

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradelog/market"
)

// Direction of a trade as printed on the ticket.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Draft is the structured result of parsing one ticket's recognized
// text. Pointer fields stay nil when the text never yielded the value.
// An empty Pair means the text was unparseable; callers must treat that
// as a failed extraction, not an empty trade.
type Draft struct {
	Pair       string
	Direction  Direction
	Lot        float64
	Entry      *float64
	Exit       *float64
	StopLoss   *float64
	TakeProfit *float64
	Profit     *float64 // literal profit printed on the ticket
	Fees       float64
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
}

// Extractor parses recognized ticket text into Drafts. Instrument
// knowledge comes from the injected catalog so the same heuristics
// serve every call site.
type Extractor struct {
	catalog *market.Catalog
	symbols []string // known codes, sorted for deterministic matching
}

func New(c *market.Catalog) *Extractor {
	syms := make([]string, 0, len(c.Classes))
	for sym := range c.Classes {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return &Extractor{catalog: c, symbols: syms}
}

// forwardWindow bounds how far below the anchor line the detail fields
// are searched. Broker tickets keep SL/TP, fees and prices within a few
// lines of the summary line.
const forwardWindow = 15

var (
	arrows = strings.NewReplacer(
		"→", " ", "⇒", " ", "➔", " ", "↑", " ", "↓", " ",
		"->", " ", "=>", " ", "»", " ", "›", " ",
	)

	anchorRe   = regexp.MustCompile(`\b(BUY|SELL)\s+([0-9]+(?:[.,][0-9]+)?)`)
	bareCodeRe = regexp.MustCompile(`\b[A-Z]{6}\b`)

	// Combined date+time takes priority over date-only.
	dateTimeRe = regexp.MustCompile(`(\d{4})[.\-](\d{2})[.\-](\d{2})[\sT]+(\d{1,2}):(\d{2})(?::\d{2})?`)
	dateRe     = regexp.MustCompile(`(\d{4})[.\-](\d{2})[.\-](\d{2})`)

	// Label patterns tolerate the usual OCR confusions: a digit 5 read
	// for the letter S, stray punctuation between the label letters.
	slRe     = regexp.MustCompile(`(?:^|[^A-Z0-9])[S5][\s.\-]?L[\s.:]*(-?[0-9]+(?:[.,][0-9]+)?)`)
	tpRe     = regexp.MustCompile(`(?:^|[^A-Z0-9])T[\s.\-]?P[\s.:]*(-?[0-9]+(?:[.,][0-9]+)?)`)
	chargeRe = regexp.MustCompile(`(?:CHARGE|COMMISSION)S?[\s.:]*(-?[0-9]+(?:[.,][0-9]+)?)`)
	swapRe   = regexp.MustCompile(`SWAP[\s.:]*(-?[0-9]+(?:[.,][0-9]+)?)`)

	profitRe  = regexp.MustCompile(`PROFIT[\s.:]*(-?[0-9]+[.,][0-9]{2,})`)
	decimalRe = regexp.MustCompile(`-?[0-9]+\.[0-9]{2,}`)
)

// Extract parses one block of recognized text. It is deterministic:
// the same input always yields the same Draft.
//
// The parse anchors on the bottommost line carrying a direction, a lot
// size and an instrument code (brokers print the summary line near the
// bottom of the ticket), then folds the following lines into the draft
// one field slot at a time, first match wins.
func (e *Extractor) Extract(raw string) Draft {
	lines := normalize(raw)

	anchor := -1
	var d Draft
	for i := len(lines) - 1; i >= 0; i-- {
		if cand, ok := e.parseAnchor(lines[i]); ok {
			anchor, d = i, cand
			break
		}
	}
	if anchor < 0 {
		return Draft{}
	}

	st := scanState{d: d}
	end := anchor + 1 + forwardWindow
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[anchor+1 : end] {
		st = e.scanLine(st, line)
	}
	return st.d
}

// normalize collapses arrow glyphs to spaces, uppercases, and splits
// into trimmed lines, discarding anything too short to carry a field.
func normalize(raw string) []string {
	up := strings.ToUpper(arrows.Replace(raw))
	var lines []string
	for _, line := range strings.Split(up, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 2 {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseAnchor recognizes a summary line: direction followed by a
// numeric lot, plus either a known instrument code or a bare six-letter
// token as fallback for pairs the catalog does not list.
func (e *Extractor) parseAnchor(line string) (Draft, bool) {
	m := anchorRe.FindStringSubmatch(line)
	if m == nil {
		return Draft{}, false
	}

	pair := ""
	for _, sym := range e.symbols {
		if strings.Contains(line, sym) {
			pair = sym
			break
		}
	}
	if pair == "" {
		pair = bareCodeRe.FindString(line)
	}
	if pair == "" {
		return Draft{}, false
	}

	lot, err := parseNum(m[2])
	if err != nil {
		return Draft{}, false
	}
	return Draft{Pair: pair, Direction: Direction(m[1]), Lot: lot}, true
}

// scanState carries the draft plus the per-scan bookkeeping that is not
// part of the draft itself.
type scanState struct {
	d          Draft
	chargeSeen bool
	swapSeen   bool
	pricesDone bool
}

// scanLine folds one line into the accumulated state. Slot priority:
// date/time, then SL/TP, then fees, then the entry/exit/profit line.
// A line consumed by a label slot never feeds the price slot.
func (e *Extractor) scanLine(st scanState, line string) scanState {
	if st.d.Date == "" {
		if m := dateTimeRe.FindStringSubmatch(line); m != nil {
			st.d.Date = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
			h, _ := strconv.Atoi(m[4])
			mi, _ := strconv.Atoi(m[5])
			st.d.Time = fmt.Sprintf("%02d:%02d", h, mi)
		} else if m := dateRe.FindStringSubmatch(line); m != nil {
			st.d.Date = fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		}
	}

	labelled := false

	if m := slRe.FindStringSubmatch(line); m != nil {
		labelled = true
		if st.d.StopLoss == nil {
			// A zero stop-loss on the ticket means "not set".
			if v, err := parseNum(m[1]); err == nil && v != 0 {
				st.d.StopLoss = &v
			}
		}
	}
	if m := tpRe.FindStringSubmatch(line); m != nil {
		labelled = true
		if st.d.TakeProfit == nil {
			if v, err := parseNum(m[1]); err == nil && v != 0 {
				st.d.TakeProfit = &v
			}
		}
	}

	if m := chargeRe.FindStringSubmatch(line); m != nil {
		labelled = true
		if !st.chargeSeen {
			if v, err := parseNum(m[1]); err == nil {
				st.d.Fees += math.Abs(v)
				st.chargeSeen = true
			}
		}
	}
	if m := swapRe.FindStringSubmatch(line); m != nil {
		labelled = true
		if !st.swapSeen {
			if v, err := parseNum(m[1]); err == nil {
				st.d.Fees += math.Abs(v)
				st.swapSeen = true
			}
		}
	}

	if labelled || st.pricesDone || repeatsDate(line, st.d.Date) {
		return st
	}

	if m := profitRe.FindStringSubmatch(line); m != nil {
		if v, err := parseNum(m[1]); err == nil {
			st.d.Profit = &v
			st.pricesDone = true
		}
		return st
	}

	// Any date token still on the line (a close timestamp, say) would
	// read as a decimal; strip it before scanning for prices.
	nums := decimalRe.FindAllString(dateRe.ReplaceAllString(line, " "), -1)
	switch len(nums) {
	case 3:
		st.d.Entry = parsedNum(nums[0])
		st.d.Exit = parsedNum(nums[1])
		st.d.Profit = parsedNum(nums[2])
		st.pricesDone = true
	case 2:
		st.d.Entry = parsedNum(nums[0])
		st.d.Exit = parsedNum(nums[1])
		st.pricesDone = true
	}
	return st
}

// repeatsDate reports whether a line carries the date already folded
// into the draft. Tickets repeat the open timestamp near the price row;
// those repeats never feed the price slot.
func repeatsDate(line, date string) bool {
	m := dateRe.FindStringSubmatch(line)
	return m != nil && m[1]+"-"+m[2]+"-"+m[3] == date
}

func parseNum(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func parsedNum(s string) *float64 {
	v, err := parseNum(s)
	if err != nil {
		return nil
	}
	return &v
}
