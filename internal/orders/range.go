package orders

import (
	"fmt"
	"sort"
	"time"

	"github.com/kingcart/console/internal/model"
	"github.com/kingcart/console/internal/report"
)

const dateLayout = "2006-01-02"

// FilterByRange keeps the orders whose date falls inside [fromDate, toDate],
// compared as calendar dates, inclusive on both ends. fromDate and toDate use
// the YYYY-MM-DD form the date picker emits. Orders whose timestamp cannot be
// parsed are excluded.
func FilterByRange(recs []model.OrderRecord, fromDate, toDate string) ([]model.OrderRecord, error) {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return nil, fmt.Errorf("invalid from date %q: %w", fromDate, err)
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return nil, fmt.Errorf("invalid to date %q: %w", toDate, err)
	}
	if from.After(to) {
		return nil, fmt.Errorf("from date %s is after to date %s", fromDate, toDate)
	}

	var out []model.OrderRecord
	for _, r := range recs {
		t, err := report.ParseDate(r.Date)
		if err != nil {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if !day.Before(from) && !day.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

// SortByDateDesc sorts orders latest first, the display order the dashboard
// uses. The sort is stable; orders with unparseable dates keep their relative
// position at the end.
func SortByDateDesc(recs []model.OrderRecord) {
	key := func(r model.OrderRecord) time.Time {
		t, err := report.ParseDate(r.Date)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return key(recs[i]).After(key(recs[j]))
	})
}
