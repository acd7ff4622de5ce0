package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether the persistence layer rejected a
// write for a unique index. The sqlite driver surfaces these as plain
// errors rather than gorm.ErrDuplicatedKey, so the message is checked
// as well.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
