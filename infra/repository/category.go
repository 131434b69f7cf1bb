package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a gorm-backed CategoryRepository bound
// to the given session.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, create *dto.CategoryCreate) error {
	row := &Category{
		ID:          create.ID,
		Name:        create.Name,
		Description: create.Description,
	}
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(row).Error)
}

func (r *categoryRepository) Get(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error) {
	var row Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoryToDTO(&row), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*dto.CategoryRead, error) {
	var rows []Category
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.CategoryRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapCategoryToDTO(&rows[i]))
	}
	return result, nil
}

func (r *categoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&Category{}, "id = ?", id).Error,
	)
}

func mapCategoryToDTO(row *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

var _ repository.CategoryRepository = (*categoryRepository)(nil)
