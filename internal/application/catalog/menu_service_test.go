package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodcourt/storefront/internal/domain/catalog"
)

func TestMenuService_CuisinesWithFood(t *testing.T) {
	mockCuisineRepo := new(MockCuisineRepository)
	service := NewMenuService(mockCuisineRepo)

	ctx := context.Background()
	indian := *createTestCuisine(1, "Indian")
	indian.Foods = []catalog.Food{*createTestFood(1, 1, "Biryani"), *createTestFood(2, 1, "Butter Chicken")}
	empty := *createTestCuisine(2, "Japanese")

	mockCuisineRepo.On("FindAllWithActiveFoods", ctx).Return([]catalog.Cuisine{indian, empty}, nil)

	result, err := service.CuisinesWithFood(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Indian", result[0].Name)
	assert.Len(t, result[0].Foods, 2)
	assert.Equal(t, "Indian", result[0].Foods[0].CuisineName)
	assert.Empty(t, result[1].Foods)
}

func TestCuisineService_Create_Duplicate(t *testing.T) {
	mockCuisineRepo := new(MockCuisineRepository)
	service := NewCuisineService(mockCuisineRepo)

	ctx := context.Background()
	mockCuisineRepo.On("ExistsByName", ctx, "Indian").Return(true, nil)

	result, err := service.Create(ctx, CreateCuisineRequest{Name: "Indian"})

	assert.Error(t, err)
	assert.Nil(t, result)
	mockCuisineRepo.AssertNotCalled(t, "Save", ctx, "Indian")
}

func TestCuisineService_Create_Success(t *testing.T) {
	mockCuisineRepo := new(MockCuisineRepository)
	service := NewCuisineService(mockCuisineRepo)

	ctx := context.Background()
	mockCuisineRepo.On("ExistsByName", ctx, "Thai").Return(false, nil)
	mockCuisineRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Cuisine")).Return(nil)

	result, err := service.Create(ctx, CreateCuisineRequest{Name: "Thai"})

	assert.NoError(t, err)
	assert.Equal(t, "Thai", result.Name)
	mockCuisineRepo.AssertExpectations(t)
}
