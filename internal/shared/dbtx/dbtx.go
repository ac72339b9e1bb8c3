package dbtx

import (
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm session whose statements run on tx.
// A nil tx returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	session := db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
