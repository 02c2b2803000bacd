package timeline

import (
	"encoding/csv"
	"os"
	"strconv"
)

// ExportCSV writes the timeline to a CSV file for spreadsheet and
// charting consumers.
func ExportCSV(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "date", "profit", "running_balance", "percent_return", "is_adjustment"}); err != nil {
		f.Close()
		return err
	}

	for _, e := range entries {
		w.Write([]string{
			e.ID,
			e.Date,
			fnum(e.Profit),
			fnum(e.RunningBalance),
			fnum(e.PercentReturn),
			strconv.FormatBool(e.IsAdjustment),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fnum(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
