package repository

import (
	"errors"
	"fmt"

	"github.com/pennypilote/pennypilote/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts gorm errors to domain errors so that
// database concerns stay inside the infrastructure layer. The error
// chain is traversed because gorm wraps driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		switch {
		case errors.Is(cur, gorm.ErrDuplicatedKey):
			return fmt.Errorf("%w: duplicated key", domain.ErrConstraintViolation)
		case errors.Is(cur, gorm.ErrForeignKeyViolated):
			return fmt.Errorf("%w: foreign key", domain.ErrConstraintViolation)
		case errors.Is(cur, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
	}
	return err
}
