// Package pagination implements the offset/limit windowing and filter
// contract shared by every collection endpoint.
package pagination

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is a validated skip/limit window.
type Params struct {
	Skip  int
	Limit int
}

// Normalize clamps the window: skip >= 0, 1 <= limit <= MaxLimit.
func (p Params) Normalize() Params {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Page is the envelope returned by collection endpoints.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage computes the page metadata for a window over total matching rows.
// A zero limit would divide by zero; both page numbers degrade to 1 instead.
func NewPage[T any](items []T, total int64, skip, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}

	page := 1
	pages := 1
	if limit > 0 {
		page = skip/limit + 1
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  limit,
		Pages: pages,
	}
}

// GORM scopes. Blank filter values are no-ops: an absent query parameter is
// never translated into an "equals empty string" predicate.

func Window(p Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}

// FilterEq applies an equality filter when value is non-blank.
func FilterEq(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(value) == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// FilterLike applies a case-insensitive substring filter when value is
// non-blank. LOWER/LIKE keeps the predicate portable across drivers.
func FilterLike(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(value) == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE LOWER(?)", "%"+value+"%")
	}
}

// FilterOwner restricts to rows owned by ownerID when mine is set.
func FilterOwner(column string, ownerID uint, mine bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !mine {
			return db
		}
		return db.Where(column+" = ?", ownerID)
	}
}

// FilterMinMax applies optional numeric range bounds.
func FilterMinMax(column string, min, max *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}
