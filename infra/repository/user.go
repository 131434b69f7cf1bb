package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/repository"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a gorm-backed UserRepository bound to the
// given session.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	row := &User{
		ID:    create.ID,
		Name:  create.Name,
		Email: create.Email,
	}
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(row).Error)
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var row User
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(&row), nil
}

func (r *userRepository) List(ctx context.Context) ([]*dto.UserRead, error) {
	var rows []User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.UserRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapUserToDTO(&rows[i]))
	}
	return result, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error,
	)
}

func mapUserToDTO(row *User) *dto.UserRead {
	return &dto.UserRead{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}

var _ repository.UserRepository = (*userRepository)(nil)
