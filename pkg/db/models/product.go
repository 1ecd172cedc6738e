package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/pkg/enums"
)

// Product is a catalog row. Price is whole Colombian pesos; ImagePath points
// into the media bucket, the public URL is derived at read time.
type Product struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	Slug        string                `gorm:"column:slug;not null;uniqueIndex"`
	Description *string               `gorm:"column:description"`
	Family      enums.ProductFamily   `gorm:"column:family;not null"`
	Category    enums.ProductCategory `gorm:"column:category;not null"`
	Price       decimal.Decimal       `gorm:"column:price;type:numeric(12,0);not null"`
	ImagePath   string                `gorm:"column:image_path;not null"`
	Sizes       []string              `gorm:"column:sizes;type:jsonb;serializer:json"`
	IsActive    bool                  `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name for GORM.
func (Product) TableName() string {
	return "products"
}
