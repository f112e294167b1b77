package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Session returns a gorm session bound to ctx. When tx is non-nil every
// statement of the session runs inside that *sql.Tx, so repositories built on
// gorm take part in transactions opened by services on the raw *sql.DB.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	s := db.WithContext(ctx)
	if tx != nil {
		s.Statement.ConnPool = tx
	}
	return s
}
