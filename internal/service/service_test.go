package service

import (
	"testing"

	"rnote/internal/domain/entity"
	"rnote/internal/domain/sqlite/repository"
	"rnote/internal/utils/validators"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Service tests run against real repositories over an in-memory
// database; only the HTTP layer is absent.
type testEnv struct {
	db      *gorm.DB
	folders *DefaultFolderService
	notes   *DefaultNoteService
	users   *UserService
	actor   *entity.User
}

func newTestEnv(t *testing.T) *testEnv {
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

	validate := validator.New()
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("tagchars", validators.TagChars)

	userRepo := repository.NewUserRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	relationRepo := repository.NewRelationRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	actor := &entity.User{
		UUID:         uuid.NewString(),
		Name:         "tester",
		Email:        "tester@example.com",
		PasswordHash: "x",
		CreatedAt:    1,
	}
	if err := userRepo.Save(actor); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return &testEnv{
		db:      db,
		folders: NewFolderService(folderRepo, relationRepo, validate),
		notes:   NewNoteService(noteRepo, folderRepo, validate),
		users:   NewUserService(userRepo, validate, []byte("test-secret")),
		actor:   actor,
	}
}

func (e *testEnv) secondUser(t *testing.T) *entity.User {
	t.Helper()

	user := &entity.User{
		UUID:         uuid.NewString(),
		Name:         "other",
		Email:        "other@example.com",
		PasswordHash: "x",
		CreatedAt:    1,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create second user: %v", err)
	}
	return user
}
