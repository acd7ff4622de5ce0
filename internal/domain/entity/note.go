package entity

type Note struct {
	ID         int64  `gorm:"primaryKey"`
	UUID       string `gorm:"not null;uniqueIndex"`
	UserID     int64  `gorm:"not null;index"` // References: users(id)
	FolderID   int64  `gorm:"not null;index"` // References: folders(id)
	FolderUUID string `gorm:"not null"`       // denormalized from folders(uuid)
	Title      string `gorm:"not null"`
	Body       string `gorm:"not null"`
	URL        string `gorm:"not null"`
	URLPreview string `gorm:"not null"`
	CreatedAt  int64  `gorm:"not null"`
}
