package repository

import (
	"errors"
	"strings"

	"rnote/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

// FindByEmail lower-cases the address before lookup, matching the
// lower-cased form stored at registration.
func (u *DefaultUserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) FindByUUID(uuid string) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("uuid = ?", uuid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) ExistsByEmail(email string) (bool, error) {
	var exists int
	err := u.db.
		Raw("SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", strings.ToLower(email)).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	user.Email = strings.ToLower(user.Email)
	return u.db.Save(user).Error
}
