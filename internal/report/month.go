package report

import (
	"time"

	apperrors "moneyflow/internal/errors"
	"moneyflow/internal/models"
)

// monthLayout is the YYYY-MM month-key layout.
const monthLayout = "2006-01"

// ParseMonthKey validates a YYYY-MM month key and returns the first day of
// that month.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(monthLayout, key)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidMonthKey, err)
	}
	return t, nil
}

// CurrentMonthKey returns the month key for the current calendar month.
func CurrentMonthKey() string {
	return time.Now().Format(monthLayout)
}

// MonthLabel renders a month key for display, e.g. "2024-03" -> "March 2024".
func MonthLabel(key string) string {
	t, err := ParseMonthKey(key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}

// FilterByMonth retains the transactions whose date falls within the given
// calendar month, preserving input order. Dates are parsed, not
// prefix-matched, so a malformed date can never sneak into a month by
// sharing its first seven characters; transactions with unparseable dates
// are silently excluded.
func FilterByMonth(txs []models.Transaction, monthKey string) ([]models.Transaction, error) {
	month, err := ParseMonthKey(monthKey)
	if err != nil {
		return nil, err
	}

	var out []models.Transaction
	for _, tx := range txs {
		d, err := time.Parse(models.DateLayout, tx.Date)
		if err != nil {
			continue
		}
		if d.Year() == month.Year() && d.Month() == month.Month() {
			out = append(out, tx)
		}
	}
	return out, nil
}
