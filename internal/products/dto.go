package products

import (
	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/pkg/db/models"
)

func (s *service) toCatalog(row models.Product) catalog.Product {
	description := ""
	if row.Description != nil {
		description = *row.Description
	}
	return catalog.Product{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: description,
		Image:       s.images.PublicURL(row.ImagePath),
		Family:      row.Family,
		Category:    row.Category,
		Price:       row.Price,
		Sizes:       row.Sizes,
	}
}
