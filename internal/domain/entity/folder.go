package entity

// AttributeCount is the fixed number of attribute slots every folder
// owns. Slots are created with the folder and rewritten as a triple,
// never added or removed individually.
const AttributeCount = 3

type Folder struct {
	ID        int64  `gorm:"primaryKey"`
	UUID      string `gorm:"not null;uniqueIndex"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_folders_owner_name"` // References: users(id)
	Name      string `gorm:"not null;uniqueIndex:idx_folders_owner_name"`
	Tags      string `gorm:"not null"` // space-separated, lower-cased
	CreatedAt int64  `gorm:"not null"`
}

// Attribute is one of a folder's three fixed-position key/value slots.
// Position is 1-based; an unused slot keeps empty name and value.
type Attribute struct {
	ID       int64  `gorm:"primaryKey"`
	FolderID int64  `gorm:"not null;index"` // References: folders(id)
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null"`
	Value    string `gorm:"not null"`
}
