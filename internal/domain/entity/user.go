package entity

// User is a registered account. Emails are stored lower-cased and
// looked up lower-cased, so "Foo@Bar.com" and "foo@bar.com" resolve
// to the same account.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	UUID         string `gorm:"not null;uniqueIndex"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    int64  `gorm:"not null"`
}
