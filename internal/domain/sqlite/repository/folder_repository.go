package repository

import (
	"errors"
	"strings"

	"rnote/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultFolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *DefaultFolderRepository {
	return &DefaultFolderRepository{db: db}
}

func (f *DefaultFolderRepository) FindByUUID(uuid string) (*entity.Folder, error) {
	var folder entity.Folder
	err := f.db.Where("uuid = ?", uuid).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (f *DefaultFolderRepository) FindByID(userID, folderID int64) (*entity.Folder, error) {
	var folder entity.Folder
	err := f.db.Where("user_id = ? AND id = ?", userID, folderID).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// FindAll returns the user's folders whose name contains nameQuery
// (case-insensitive, empty matches everything). Tag filtering and
// ordering are applied in memory by the caller.
func (f *DefaultFolderRepository) FindAll(userID int64, nameQuery string) ([]*entity.Folder, error) {
	var folders []*entity.Folder
	err := f.db.
		Where("user_id = ? AND name LIKE ?", userID, "%"+nameQuery+"%").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (f *DefaultFolderRepository) Attributes(folderID int64) ([]*entity.Attribute, error) {
	var attrs []*entity.Attribute
	err := f.db.
		Where("folder_id = ?", folderID).
		Order("position ASC").
		Find(&attrs).Error
	if err != nil {
		return nil, err
	}
	return attrs, nil
}

// Create inserts the folder, its three attribute slots and its graph
// membership in a single transaction. When parentID is non-nil the
// membership row is a real edge (parent=parentID, child=new folder),
// otherwise a placeholder row with a NULL child.
//
// The generated id is read back from the insert itself, so there is
// no re-select-by-name step and no window for a name collision to
// slip between the two.
func (f *DefaultFolderRepository) Create(folder *entity.Folder, attrs [entity.AttributeCount]entity.Attribute, parentID *int64) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(folder).Error; err != nil {
			return err
		}

		for i := range attrs {
			attrs[i].FolderID = folder.ID
			attrs[i].Position = i + 1
			if err := tx.Create(&attrs[i]).Error; err != nil {
				return err
			}
		}

		relation := &entity.Relation{ParentID: folder.ID}
		if parentID != nil {
			relation = &entity.Relation{ParentID: *parentID, ChildID: &folder.ID}
		}
		return tx.Create(relation).Error
	})
}

// Update overwrites name/tags and rewrites the three attribute rows in
// place by position. Attribute rows are never added or removed here.
func (f *DefaultFolderRepository) Update(userID, folderID int64, name, tags string, attrs [entity.AttributeCount]entity.Attribute) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Exec("UPDATE folders SET name = ?, tags = ? WHERE id = ? AND user_id = ?",
				name, tags, folderID, userID).Error
		if err != nil {
			return err
		}

		for i, attr := range attrs {
			err = tx.
				Exec("UPDATE attributes SET name = ?, value = ? WHERE position = ? AND folder_id = ?",
					attr.Name, attr.Value, i+1, folderID).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the folder with everything hanging off it: attribute
// slots, notes, and every relation row touching the folder from either
// side. One transaction, so a failure leaves the folder intact.
func (f *DefaultFolderRepository) Delete(userID, folderID int64) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM attributes WHERE folder_id = ?", folderID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM notes WHERE folder_id = ? AND user_id = ?", folderID, userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM relations WHERE parent_id = ? OR child_id = ?", folderID, folderID).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM folders WHERE user_id = ? AND id = ?", userID, folderID).Error
	})
}

// HasName reports whether the user already owns a folder with the
// given name, compared case-insensitively.
func (f *DefaultFolderRepository) HasName(userID int64, name string) (bool, error) {
	var exists int
	err := f.db.
		Raw("SELECT EXISTS(SELECT 1 FROM folders WHERE user_id = ? AND LOWER(name) = ?)",
			userID, strings.ToLower(name)).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}
