package customer

import (
	"strings"
	"time"

	"github.com/bankingsystem/services/pkg/dto"
	"gorm.io/gorm"
)

// withFilters composes the optional listing filters into one query: each
// supplied filter ANDs a condition, absent filters add nothing. The name
// filter matches any of the three name columns, case-insensitively.
func withFilters(f dto.CustomerListFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if name := strings.TrimSpace(f.Name); name != "" {
			pattern := "%" + strings.ToLower(name) + "%"
			tx = tx.Where(
				"LOWER(cust_first_name) LIKE ? OR LOWER(cust_last_name) LIKE ? OR LOWER(cust_other_name) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		if f.StartDate != nil {
			tx = tx.Where("created_at >= ?", startOfDay(*f.StartDate))
		}
		if f.EndDate != nil {
			tx = tx.Where("created_at <= ?", endOfDay(*f.EndDate))
		}
		return tx
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay keeps the inclusive upper bound at 23:59:59.999 of the given day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999*int(time.Millisecond), t.Location())
}
