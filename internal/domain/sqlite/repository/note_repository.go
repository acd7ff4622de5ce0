package repository

import (
	"errors"

	"rnote/internal/domain/entity"

	"gorm.io/gorm"
)

// RelatedNote is a note row joined with the name/tags of the folder it
// lives in, as produced by LoadAllRelatedNotes.
type RelatedNote struct {
	entity.Note
	FolderName string
	FolderTags string
}

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (n *DefaultNoteRepository) FindByUUID(uuid string) (*entity.Note, error) {
	var note entity.Note
	err := n.db.Where("uuid = ?", uuid).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (n *DefaultNoteRepository) FindByID(userID, folderID, noteID int64) (*entity.Note, error) {
	var note entity.Note
	err := n.db.
		Where("user_id = ? AND folder_id = ? AND id = ?", userID, folderID, noteID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// LoadNotes returns the folder's notes in ascending creation order.
// Callers wanting newest-first reverse the slice themselves.
func (n *DefaultNoteRepository) LoadNotes(userID, folderID int64) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := n.db.
		Where("user_id = ? AND folder_id = ?", userID, folderID).
		Order("created_at ASC, id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// LoadAllRelatedNotes returns the notes of the folder itself plus the
// notes of every folder one hop away in the relation graph, ascending
// by creation time across all of them.
func (n *DefaultNoteRepository) LoadAllRelatedNotes(userID, folderID int64) ([]*RelatedNote, error) {
	var notes []*RelatedNote
	err := n.db.Raw(`
		SELECT notes.*, folders.name AS folder_name, folders.tags AS folder_tags
		FROM notes
		INNER JOIN folders ON notes.folder_id = folders.id
		WHERE (notes.folder_id = ?
			OR notes.folder_id IN (
				SELECT child_id FROM relations WHERE parent_id = ? AND child_id IS NOT NULL
				UNION SELECT parent_id FROM relations WHERE child_id = ?))
		AND folders.user_id = ?
		ORDER BY notes.created_at ASC, notes.id ASC`,
		folderID, folderID, folderID, userID).
		Scan(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (n *DefaultNoteRepository) Save(note *entity.Note) error {
	return n.db.Save(note).Error
}

func (n *DefaultNoteRepository) Delete(note *entity.Note) error {
	return n.db.Delete(note).Error
}
