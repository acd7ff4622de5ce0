package sqlite

import (
	"time"

	"rnote/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens (or creates) the database file and migrates the schema.
//
// The pool is capped at a single connection: every request runs its
// statements on one exclusive connection for its whole duration, so
// requests are serialized against the store.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Folder{},
		&entity.Attribute{},
		&entity.Note{},
		&entity.Relation{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
