package products

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smontoya/kickstore-backend/pkg/db/models"
	"github.com/smontoya/kickstore-backend/pkg/enums"
)

// ErrNotFound is returned when no product row matches the lookup.
var ErrNotFound = errors.New("product not found")

// ListFilter narrows List results. Nil fields are ignored.
type ListFilter struct {
	Family          *enums.ProductFamily
	Category        *enums.ProductCategory
	IncludeInactive bool
}

// Repository is the storage port for catalog rows.
type Repository interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context, filter ListFilter) ([]models.Product, error)
}

type gormRepository struct {
	conn *gorm.DB
}

// NewRepository wires a gorm-backed Repository.
func NewRepository(conn *gorm.DB) (Repository, error) {
	if conn == nil {
		return nil, errors.New("db connection is required")
	}
	return &gormRepository{conn: conn}, nil
}

func (r *gormRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.conn.WithContext(ctx).Create(product).Error
}

func (r *gormRepository) Update(ctx context.Context, product *models.Product) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("name", "slug", "description", "family", "category", "price", "image_path", "sizes", "is_active").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.conn.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.conn.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *gormRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.conn.WithContext(ctx).First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *gormRepository) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	query := r.conn.WithContext(ctx).Model(&models.Product{})
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Family != nil {
		query = query.Where("family = ?", *filter.Family)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var rows []models.Product
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
