package products

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smontoya/kickstore-backend/pkg/db/models"
	"github.com/smontoya/kickstore-backend/pkg/enums"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

type stubRepo struct {
	rows      map[uuid.UUID]*models.Product
	createErr error
	listErr   error
}

func newStubRepo() *stubRepo {
	return &stubRepo{rows: map[uuid.UUID]*models.Product{}}
}

func (s *stubRepo) Create(_ context.Context, product *models.Product) error {
	if s.createErr != nil {
		return s.createErr
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	s.rows[product.ID] = &copied
	return nil
}

func (s *stubRepo) Update(_ context.Context, product *models.Product) error {
	if _, ok := s.rows[product.ID]; !ok {
		return ErrNotFound
	}
	copied := *product
	s.rows[product.ID] = &copied
	return nil
}

func (s *stubRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	row, ok := s.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.IsActive = false
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	for _, row := range s.rows {
		if row.Slug == slug {
			copied := *row
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRepo) List(_ context.Context, filter ListFilter) ([]models.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Product
	for _, row := range s.rows {
		if !filter.IncludeInactive && !row.IsActive {
			continue
		}
		if filter.Family != nil && row.Family != *filter.Family {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

type stubResolver struct{}

func (stubResolver) PublicURL(objectPath string) string {
	return "https://cdn.example.com/" + objectPath
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	svc, err := NewService(repo, stubResolver{}, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	require.NoError(t, err)
	return svc
}

func validCreateInput() CreateInput {
	return CreateInput{
		Name:      "Jordan 1 Chicago",
		Family:    "jordan",
		Category:  "sneakers",
		Price:     decimal.NewFromInt(250000),
		ImagePath: "products/jordan1_chicago.jpg",
		Sizes:     []string{"40", "41", "42"},
	}
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr, "expected taxonomy error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestServiceCreateDerivesSlugAndPublicURL(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo())

	created, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "https://cdn.example.com/products/jordan1_chicago.jpg", created.Image)
	assert.Equal(t, enums.ProductFamilyJordan, created.Family)
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"empty name", func(in *CreateInput) { in.Name = "  " }},
		{"zero price", func(in *CreateInput) { in.Price = decimal.Zero }},
		{"negative price", func(in *CreateInput) { in.Price = decimal.NewFromInt(-1) }},
		{"unknown family", func(in *CreateInput) { in.Family = "boots" }},
		{"unknown category", func(in *CreateInput) { in.Category = "hats" }},
		{"missing image", func(in *CreateInput) { in.ImagePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			_, err := svc.Create(ctx, input)
			assertCode(t, err, pkgerrors.CodeValidation)
		})
	}
}

func TestServiceCreateMapsUniqueViolationToConflict(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	repo.createErr = errors.New(`duplicate key value violates unique constraint "idx_products_slug"`)
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), validCreateInput())
	assertCode(t, err, pkgerrors.CodeConflict)
}

func TestServiceUpdatePartialFields(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(300000)
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, created.Name, updated.Name)
}

func TestServiceUpdateUnknownIDIsNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo())

	name := "New Name"
	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateInput{Name: &name})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateRejectsMalformedID(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo())

	_, err := svc.Update(context.Background(), "not-a-uuid", UpdateInput{})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceDeleteSoftThenHard(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateInput())
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(ctx, created.ID, false))
	assert.False(t, repo.rows[id].IsActive)

	require.NoError(t, svc.Delete(ctx, created.ID, true))
	assert.NotContains(t, repo.rows, id)

	assertCode(t, svc.Delete(ctx, created.ID, true), pkgerrors.CodeNotFound)
}

func TestServiceListRejectsUnknownFamily(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubRepo())

	_, err := svc.List(context.Background(), ListInput{Family: "boots"})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceListMapsRepoFailureToDependency(t *testing.T) {
	t.Parallel()

	repo := newStubRepo()
	repo.listErr = errors.New("connection refused")
	svc := newTestService(t, repo)

	_, err := svc.List(context.Background(), ListInput{})
	assertCode(t, err, pkgerrors.CodeDependency)
}
