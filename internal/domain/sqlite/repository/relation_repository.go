package repository

import (
	"rnote/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultRelationRepository maintains the folder relation graph as a
// flat directed-edge table. Linking and unlinking touch at most two
// rows; in exchange every read has to union both edge directions,
// which also deduplicates reciprocal edges.
type DefaultRelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *DefaultRelationRepository {
	return &DefaultRelationRepository{db: db}
}

// Link inserts a single directed edge (parent=to, child=from). It does
// not guard against self-links; the service layer rejects those.
func (r *DefaultRelationRepository) Link(fromFolderID, toFolderID int64) error {
	return r.db.
		Exec("INSERT INTO relations (parent_id, child_id) VALUES (?, ?)", toFolderID, fromFolderID).
		Error
}

// Unlink deletes every edge between the two folders, whichever
// direction it was stored in.
func (r *DefaultRelationRepository) Unlink(fromFolderID, toFolderID int64) error {
	return r.db.
		Exec("DELETE FROM relations WHERE (parent_id = ? AND child_id = ?) OR (child_id = ? AND parent_id = ?)",
			toFolderID, fromFolderID, toFolderID, fromFolderID).
		Error
}

// Related returns the folders linked to folderID from either edge
// direction, restricted to the owner. The UNION deduplicates folders
// reachable through both directions.
func (r *DefaultRelationRepository) Related(userID, folderID int64) ([]*entity.Folder, error) {
	var folders []*entity.Folder
	err := r.db.Raw(`
		SELECT * FROM folders
		WHERE id IN (SELECT child_id FROM relations WHERE parent_id = ? AND child_id IS NOT NULL)
		AND user_id = ?
		UNION
		SELECT * FROM folders
		WHERE id IN (SELECT parent_id FROM relations WHERE child_id = ?)
		AND user_id = ?`,
		folderID, userID, folderID, userID).
		Scan(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// Linkable returns the user's folders that could still be linked to
// folderID: everything except the folder itself and its current
// relations, filtered by the name query.
func (r *DefaultRelationRepository) Linkable(userID, folderID int64, nameQuery string) ([]*entity.Folder, error) {
	var folders []*entity.Folder
	err := r.db.Raw(`
		SELECT * FROM folders
		WHERE id NOT IN (
			SELECT child_id FROM relations WHERE parent_id = ? AND child_id IS NOT NULL
			UNION SELECT parent_id FROM relations WHERE child_id = ?
			UNION SELECT ?)
		AND name LIKE ? AND user_id = ?`,
		folderID, folderID, folderID, "%"+nameQuery+"%", userID).
		Scan(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// RelatedMatching is Related narrowed by a name query, used to
// populate the unlink picker.
func (r *DefaultRelationRepository) RelatedMatching(userID, folderID int64, nameQuery string) ([]*entity.Folder, error) {
	var folders []*entity.Folder
	err := r.db.Raw(`
		SELECT * FROM folders
		WHERE name LIKE ? AND user_id = ?
		AND id IN (
			SELECT child_id FROM relations WHERE parent_id = ? AND child_id IS NOT NULL
			UNION SELECT parent_id FROM relations WHERE child_id = ?)`,
		"%"+nameQuery+"%", userID, folderID, folderID).
		Scan(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// MembershipCount returns the number of relation rows touching the
// folder, placeholder included.
func (r *DefaultRelationRepository) MembershipCount(folderID int64) (int, error) {
	var count int
	err := r.db.
		Raw("SELECT COUNT(*) FROM relations WHERE parent_id = ? OR child_id = ?", folderID, folderID).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
