// Package repository carries helpers shared by the per-entity GORM stores.
package repository

import "gorm.io/gorm"

const (
	DefaultPage = 0
	DefaultSize = 10
)

// NormalizePage applies the listing defaults: zero-based page, size 10.
func NormalizePage(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	return page, size
}

// Paginate is a scope applying the offset/limit window for a zero-based page.
func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(page * size).Limit(size)
	}
}

// TotalPages is ceil(total/size) with the convention that an empty result set
// still has zero pages.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
