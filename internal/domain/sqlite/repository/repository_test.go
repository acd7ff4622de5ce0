package repository

import (
	"testing"

	"rnote/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Folder{},
		&entity.Attribute{},
		&entity.Note{},
		&entity.Relation{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		UUID:         uuid.NewString(),
		Name:         "tester",
		Email:        email,
		PasswordHash: "x",
		CreatedAt:    1,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func newTestFolder(t *testing.T, repo *DefaultFolderRepository, userID int64, name, tags string, parentID *int64) *entity.Folder {
	t.Helper()

	folder := &entity.Folder{
		UUID:      uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Tags:      tags,
		CreatedAt: 1,
	}

	var attrs [entity.AttributeCount]entity.Attribute
	if err := repo.Create(folder, attrs, parentID); err != nil {
		t.Fatalf("failed to create test folder %q: %v", name, err)
	}
	return folder
}

func folderNames(folders []*entity.Folder) []string {
	names := make([]string, len(folders))
	for i, folder := range folders {
		names[i] = folder.Name
	}
	return names
}

func containsFolder(folders []*entity.Folder, id int64) bool {
	for _, folder := range folders {
		if folder.ID == id {
			return true
		}
	}
	return false
}
