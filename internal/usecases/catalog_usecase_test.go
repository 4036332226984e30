package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digimart.backend/internal/domain/entities"
	"digimart.backend/internal/usecases"
)

func TestCatalogListPublic_NormalizesQuery(t *testing.T) {
	productRepo := new(MockProductRepository)
	uc := usecases.NewCatalogUsecase(productRepo)
	ctx := context.Background()

	var captured *entities.CatalogQuery
	productRepo.On("ListPublic", ctx, mock.AnythingOfType("*entities.CatalogQuery")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entities.CatalogQuery)
		}).
		Return([]*entities.CatalogItem{}, int64(0), nil)

	_, _, err := uc.ListPublic(ctx, &entities.CatalogQuery{
		SortBy:  "  Price ",
		SortDir: "ASC",
		Offset:  -3,
		Limit:   0,
		Search:  "  gopher  ",
	})
	require.NoError(t, err)
	require.Equal(t, entities.CatalogSortPrice, captured.SortBy)
	require.Equal(t, "asc", captured.SortDir)
	require.Equal(t, 0, captured.Offset)
	require.Equal(t, 20, captured.Limit)
	require.Equal(t, "gopher", captured.Search)
}

func TestCatalogListPublic_DefaultsAndCaps(t *testing.T) {
	productRepo := new(MockProductRepository)
	uc := usecases.NewCatalogUsecase(productRepo)
	ctx := context.Background()

	var captured *entities.CatalogQuery
	productRepo.On("ListPublic", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entities.CatalogQuery)
		}).
		Return([]*entities.CatalogItem{}, int64(0), nil)

	_, _, err := uc.ListPublic(ctx, &entities.CatalogQuery{
		SortBy:  "sold_count; DROP TABLE products",
		SortDir: "sideways",
		Limit:   9999,
	})
	require.NoError(t, err)
	require.Equal(t, entities.CatalogSortCreatedAt, captured.SortBy, "unknown sort keys fall back to created_at")
	require.Equal(t, "desc", captured.SortDir)
	require.Equal(t, 100, captured.Limit, "limit is capped")
}

func TestCatalogListPublic_PassesThroughResults(t *testing.T) {
	productRepo := new(MockProductRepository)
	uc := usecases.NewCatalogUsecase(productRepo)
	ctx := context.Background()

	items := []*entities.CatalogItem{{Title: "A"}, {Title: "B"}}
	productRepo.On("ListPublic", ctx, mock.Anything).Return(items, int64(42), nil)

	got, total, err := uc.ListPublic(ctx, &entities.CatalogQuery{})
	require.NoError(t, err)
	require.Equal(t, items, got)
	require.EqualValues(t, 42, total)
}
