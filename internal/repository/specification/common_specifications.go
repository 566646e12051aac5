package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sortable turn record columns
const (
	ColumnCreatedAt  = "created_at"
	ColumnConfidence = "confidence"
	ColumnDurationMs = "duration_ms"
)

var sortable = map[string]bool{
	ColumnCreatedAt:  true,
	ColumnConfidence: true,
	ColumnDurationMs: true,
}

type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// OrderBy sorts turns on one of the sortable columns. Anything else sorts by
// creation time.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	field := s.Field
	if !sortable[field] {
		field = ColumnCreatedAt
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: field}, Desc: s.Desc})
}

// Newest lists the latest turns first.
func Newest() Specification {
	return OrderBy{Field: ColumnCreatedAt, Desc: true}
}

// Pagination windows a listing. A non-positive Limit returns every row from Offset.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	db = db.Offset(max(s.Offset, 0))
	if s.Limit > 0 {
		db = db.Limit(s.Limit)
	}
	return db
}
