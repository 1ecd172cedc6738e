package products

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smontoya/kickstore-backend/pkg/db/models"
	"github.com/smontoya/kickstore-backend/pkg/enums"
)

func testRepo(t *testing.T) Repository {
	t.Helper()

	// unique in-memory database per test, shared across the test's connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Product{}))

	t.Cleanup(func() {
		sqlDB, dbErr := conn.DB()
		if dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	repo, err := NewRepository(conn)
	require.NoError(t, err)
	return repo
}

func seedRow(t *testing.T, repo Repository, name, slug string, family enums.ProductFamily, createdAt time.Time) *models.Product {
	t.Helper()
	row := &models.Product{
		Name:      name,
		Slug:      slug,
		Family:    family,
		Category:  enums.ProductCategorySneakers,
		Price:     decimal.NewFromInt(250000),
		ImagePath: "products/" + slug + ".jpg",
		Sizes:     []string{"40", "41"},
		IsActive:  true,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), row))
	return row
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := testRepo(t)

	row := seedRow(t, repo, "Jordan 1 Chicago", "jordan-1-chicago", enums.ProductFamilyJordan, time.Now())
	assert.NotEqual(t, uuid.Nil, row.ID)

	loaded, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan 1 Chicago", loaded.Name)
	assert.Equal(t, []string{"40", "41"}, loaded.Sizes)
}

func TestRepositoryCreateDuplicateSlugFails(t *testing.T) {
	repo := testRepo(t)

	seedRow(t, repo, "Jordan 1", "jordan-1", enums.ProductFamilyJordan, time.Now())

	dup := &models.Product{
		Name:      "Jordan 1 Again",
		Slug:      "jordan-1",
		Family:    enums.ProductFamilyJordan,
		Category:  enums.ProductCategorySneakers,
		Price:     decimal.NewFromInt(100000),
		ImagePath: "products/dup.jpg",
		IsActive:  true,
	}
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRepositoryUpdatePersistsChanges(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	row := seedRow(t, repo, "Airmax 90", "airmax-90", enums.ProductFamilyAirmax, time.Now())
	row.Price = decimal.NewFromInt(300000)
	row.IsActive = false

	require.NoError(t, repo.Update(ctx, row))

	loaded, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Price.Equal(decimal.NewFromInt(300000)))
	assert.False(t, loaded.IsActive)
}

func TestRepositoryUpdateMissingRowReturnsNotFound(t *testing.T) {
	repo := testRepo(t)

	ghost := &models.Product{
		ID:        uuid.New(),
		Name:      "Ghost",
		Slug:      "ghost",
		Family:    enums.ProductFamilyCasual,
		Category:  enums.ProductCategoryCasual,
		Price:     decimal.NewFromInt(1),
		ImagePath: "products/ghost.jpg",
	}
	err := repo.Update(context.Background(), ghost)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRepositoryDeactivateHidesFromList(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	row := seedRow(t, repo, "Jordan 4 Bred", "jordan-4-bred", enums.ProductFamilyJordan, time.Now())
	require.NoError(t, repo.Deactivate(ctx, row.ID))

	rows, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	all, err := repo.List(ctx, ListFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepositoryDeleteRemovesRow(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	row := seedRow(t, repo, "Airmax 97", "airmax-97", enums.ProductFamilyAirmax, time.Now())
	require.NoError(t, repo.Delete(ctx, row.ID))

	_, err := repo.GetByID(ctx, row.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, row.ID), ErrNotFound))
}

func TestRepositoryListFiltersFamilyNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seedRow(t, repo, "Jordan 1", "jordan-1", enums.ProductFamilyJordan, base)
	newest := seedRow(t, repo, "Jordan 11", "jordan-11", enums.ProductFamilyJordan, base.Add(30*time.Minute))
	seedRow(t, repo, "Airmax 90", "airmax-90", enums.ProductFamilyAirmax, base.Add(10*time.Minute))

	family := enums.ProductFamilyJordan
	rows, err := repo.List(ctx, ListFilter{Family: &family})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newest.ID, rows[0].ID)
}

func TestRepositoryGetBySlug(t *testing.T) {
	repo := testRepo(t)

	seedRow(t, repo, "Jordan 14", "jordan-14", enums.ProductFamilyJordan, time.Now())

	loaded, err := repo.GetBySlug(context.Background(), "jordan-14")
	require.NoError(t, err)
	assert.Equal(t, "Jordan 14", loaded.Name)

	_, err = repo.GetBySlug(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}
