// Package products owns the admin-facing catalog CRUD. The service validates
// input, generates slugs, and maps storage failures into the shared error
// taxonomy so gorm details never leak past this package.
package products

import (
	"context"
	stdErrors "errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/pkg/db"
	"github.com/smontoya/kickstore-backend/pkg/db/models"
	"github.com/smontoya/kickstore-backend/pkg/enums"
	"github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// ImageURLResolver derives a public URL from a stored image path.
type ImageURLResolver interface {
	PublicURL(objectPath string) string
}

// CreateInput is the payload for a new catalog row.
type CreateInput struct {
	Name        string
	Description *string
	Family      string
	Category    string
	Price       decimal.Decimal
	ImagePath   string
	Sizes       []string
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	Family      *string
	Category    *string
	Price       *decimal.Decimal
	ImagePath   *string
	Sizes       []string
	IsActive    *bool
}

// ListInput narrows the public product listing.
type ListInput struct {
	Family          string
	Category        string
	IncludeInactive bool
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (catalog.Product, error)
	Update(ctx context.Context, productID string, input UpdateInput) (catalog.Product, error)
	Delete(ctx context.Context, productID string, hard bool) error
	Get(ctx context.Context, productID string) (catalog.Product, error)
	List(ctx context.Context, input ListInput) ([]catalog.Product, error)
}

type service struct {
	repo   Repository
	images ImageURLResolver
	logg   *logger.Logger
}

func NewService(repo Repository, images ImageURLResolver, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, stdErrors.New("repository is required")
	}
	if images == nil {
		return nil, stdErrors.New("image url resolver is required")
	}
	if logg == nil {
		return nil, stdErrors.New("logger is required")
	}
	return &service{repo: repo, images: images, logg: logg}, nil
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds a URL-safe slug from a product name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *service) Create(ctx context.Context, input CreateInput) (catalog.Product, error) {
	family, category, err := validateTaxonomy(input.Family, input.Category)
	if err != nil {
		return catalog.Product{}, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return catalog.Product{}, errors.New(errors.CodeValidation, "product name is required")
	}
	if !input.Price.IsPositive() {
		return catalog.Product{}, errors.New(errors.CodeValidation, "price must be positive")
	}
	if input.ImagePath == "" {
		return catalog.Product{}, errors.New(errors.CodeValidation, "image path is required")
	}
	slug := Slugify(input.Name)
	if slug == "" {
		return catalog.Product{}, errors.New(errors.CodeValidation, "product name yields an empty slug")
	}

	row := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: input.Description,
		Family:      family,
		Category:    category,
		Price:       input.Price.Round(0),
		ImagePath:   input.ImagePath,
		Sizes:       input.Sizes,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "") {
			return catalog.Product{}, errors.Wrap(errors.CodeConflict, err, "a product with this name already exists")
		}
		return catalog.Product{}, errors.Wrap(errors.CodeDependency, err, "creating product failed")
	}

	s.logg.Info(s.logg.WithProductID(ctx, row.ID.String()), "product created")
	return s.toCatalog(*row), nil
}

func (s *service) Update(ctx context.Context, productID string, input UpdateInput) (catalog.Product, error) {
	id, err := parseProductID(productID)
	if err != nil {
		return catalog.Product{}, err
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return catalog.Product{}, mapRepoError(err, "loading product failed")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return catalog.Product{}, errors.New(errors.CodeValidation, "product name is required")
		}
		row.Name = name
		row.Slug = Slugify(name)
	}
	if input.Description != nil {
		row.Description = input.Description
	}
	if input.Family != nil || input.Category != nil {
		familyRaw := row.Family.String()
		if input.Family != nil {
			familyRaw = *input.Family
		}
		categoryRaw := row.Category.String()
		if input.Category != nil {
			categoryRaw = *input.Category
		}
		family, category, taxErr := validateTaxonomy(familyRaw, categoryRaw)
		if taxErr != nil {
			return catalog.Product{}, taxErr
		}
		row.Family = family
		row.Category = category
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return catalog.Product{}, errors.New(errors.CodeValidation, "price must be positive")
		}
		row.Price = input.Price.Round(0)
	}
	if input.ImagePath != nil {
		if *input.ImagePath == "" {
			return catalog.Product{}, errors.New(errors.CodeValidation, "image path is required")
		}
		row.ImagePath = *input.ImagePath
	}
	if input.Sizes != nil {
		row.Sizes = input.Sizes
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "") {
			return catalog.Product{}, errors.Wrap(errors.CodeConflict, err, "a product with this name already exists")
		}
		return catalog.Product{}, mapRepoError(err, "updating product failed")
	}

	s.logg.Info(s.logg.WithProductID(ctx, row.ID.String()), "product updated")
	return s.toCatalog(*row), nil
}

// Delete deactivates a product by default; hard removes the row entirely.
func (s *service) Delete(ctx context.Context, productID string, hard bool) error {
	id, err := parseProductID(productID)
	if err != nil {
		return err
	}

	if hard {
		err = s.repo.Delete(ctx, id)
	} else {
		err = s.repo.Deactivate(ctx, id)
	}
	if err != nil {
		return mapRepoError(err, "deleting product failed")
	}

	s.logg.Info(s.logg.WithProductID(ctx, id.String()), "product deleted")
	return nil
}

func (s *service) Get(ctx context.Context, productID string) (catalog.Product, error) {
	id, err := parseProductID(productID)
	if err != nil {
		return catalog.Product{}, err
	}
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return catalog.Product{}, mapRepoError(err, "loading product failed")
	}
	return s.toCatalog(*row), nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]catalog.Product, error) {
	filter := ListFilter{IncludeInactive: input.IncludeInactive}

	if input.Family != "" {
		family, err := enums.ParseProductFamily(input.Family)
		if err != nil {
			return nil, errors.Wrap(errors.CodeValidation, err, "unknown product family")
		}
		filter.Family = &family
	}
	if input.Category != "" {
		category, err := enums.ParseProductCategory(input.Category)
		if err != nil {
			return nil, errors.Wrap(errors.CodeValidation, err, "unknown product category")
		}
		filter.Category = &category
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeDependency, err, "listing products failed")
	}

	out := make([]catalog.Product, len(rows))
	for i, row := range rows {
		out[i] = s.toCatalog(row)
	}
	return out, nil
}

func validateTaxonomy(familyRaw, categoryRaw string) (enums.ProductFamily, enums.ProductCategory, error) {
	family, err := enums.ParseProductFamily(familyRaw)
	if err != nil {
		return "", "", errors.Wrap(errors.CodeValidation, err, "unknown product family")
	}
	category, err := enums.ParseProductCategory(categoryRaw)
	if err != nil {
		return "", "", errors.Wrap(errors.CodeValidation, err, "unknown product category")
	}
	return family, category, nil
}

func parseProductID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(errors.CodeValidation, err, "invalid product id")
	}
	return id, nil
}

func mapRepoError(err error, message string) error {
	if stdErrors.Is(err, ErrNotFound) {
		return errors.Wrap(errors.CodeNotFound, err, "product not found")
	}
	return errors.Wrap(errors.CodeDependency, err, message)
}
