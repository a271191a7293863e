package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const defaultQueryTimeout = 10 * time.Second

// base carries the GORM handle and the per-query deadline shared by every repository.
type base struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func newBase(db *gorm.DB, queryTimeout time.Duration) base {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	return base{db: db, queryTimeout: queryTimeout}
}

// conn returns a session bound to ctx with the query deadline applied.
// The caller must invoke the returned cancel func once the query is done.
func (b base) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, b.queryTimeout)
	return b.db.WithContext(ctx), cancel
}
