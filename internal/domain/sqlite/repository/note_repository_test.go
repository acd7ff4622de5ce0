package repository

import (
	"testing"

	"rnote/internal/domain/entity"

	"github.com/google/uuid"
)

func newTestNote(t *testing.T, repo *DefaultNoteRepository, user *entity.User, folder *entity.Folder, title string, createdAt int64) *entity.Note {
	t.Helper()

	note := &entity.Note{
		UUID:       uuid.NewString(),
		UserID:     user.ID,
		FolderID:   folder.ID,
		FolderUUID: folder.UUID,
		Title:      title,
		Body:       "body of " + title,
		CreatedAt:  createdAt,
	}
	if err := repo.Save(note); err != nil {
		t.Fatalf("failed to create test note %q: %v", title, err)
	}
	return note
}

func TestLoadNotesAscendingByCreation(t *testing.T) {
	db := newTestDB(t)
	folderRepo := NewFolderRepository(db)
	noteRepo := NewNoteRepository(db)
	user := newTestUser(t, db, "a@example.com")
	folder := newTestFolder(t, folderRepo, user.ID, "Recipes", "food", nil)

	// Inserted out of order on purpose.
	newTestNote(t, noteRepo, user, folder, "second", 20)
	newTestNote(t, noteRepo, user, folder, "first", 10)
	newTestNote(t, noteRepo, user, folder, "third", 30)

	notes, err := noteRepo.LoadNotes(user.ID, folder.ID)
	if err != nil {
		t.Fatalf("LoadNotes() error: %v", err)
	}
	if len(notes) != 3 {
		t.Fatalf("LoadNotes() returned %d notes, want 3", len(notes))
	}

	want := []string{"first", "second", "third"}
	for i, note := range notes {
		if note.Title != want[i] {
			t.Errorf("notes[%d] = %q, want %q", i, note.Title, want[i])
		}
	}
}

func TestLoadAllRelatedNotesSpansOneHop(t *testing.T) {
	db := newTestDB(t)
	folderRepo := NewFolderRepository(db)
	relationRepo := NewRelationRepository(db)
	noteRepo := NewNoteRepository(db)
	user := newTestUser(t, db, "a@example.com")

	home := newTestFolder(t, folderRepo, user.ID, "Recipes", "food", nil)
	linked := newTestFolder(t, folderRepo, user.ID, "Italian", "food italian", nil)
	distant := newTestFolder(t, folderRepo, user.ID, "Travel", "trip", nil)

	if err := relationRepo.Link(home.ID, linked.ID); err != nil {
		t.Fatalf("Link() error: %v", err)
	}
	// distant is related to linked, not to home: two hops away.
	if err := relationRepo.Link(linked.ID, distant.ID); err != nil {
		t.Fatalf("Link() error: %v", err)
	}

	newTestNote(t, noteRepo, user, home, "own", 20)
	newTestNote(t, noteRepo, user, linked, "neighbour", 10)
	newTestNote(t, noteRepo, user, distant, "far away", 5)

	notes, err := noteRepo.LoadAllRelatedNotes(user.ID, home.ID)
	if err != nil {
		t.Fatalf("LoadAllRelatedNotes() error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("LoadAllRelatedNotes() returned %d notes, want 2", len(notes))
	}

	// Oldest first across folders.
	if notes[0].Title != "neighbour" || notes[1].Title != "own" {
		t.Errorf("order = [%q, %q], want [neighbour, own]", notes[0].Title, notes[1].Title)
	}
	if notes[0].FolderName != "Italian" {
		t.Errorf("joined folder name = %q, want Italian", notes[0].FolderName)
	}
	if notes[0].FolderTags != "food italian" {
		t.Errorf("joined folder tags = %q, want %q", notes[0].FolderTags, "food italian")
	}
}

func TestNoteLookupsAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	folderRepo := NewFolderRepository(db)
	noteRepo := NewNoteRepository(db)
	owner := newTestUser(t, db, "a@example.com")
	stranger := newTestUser(t, db, "b@example.com")
	folder := newTestFolder(t, folderRepo, owner.ID, "Recipes", "food", nil)

	note := newTestNote(t, noteRepo, owner, folder, "secret", 1)

	got, err := noteRepo.FindByID(stranger.ID, folder.ID, note.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if got != nil {
		t.Error("stranger can read another user's note")
	}

	notes, err := noteRepo.LoadNotes(stranger.ID, folder.ID)
	if err != nil {
		t.Fatalf("LoadNotes() error: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("stranger sees %d notes, want 0", len(notes))
	}
}
