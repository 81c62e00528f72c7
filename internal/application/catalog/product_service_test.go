package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	svc := NewProductService(productRepo, categoryRepo, zap.NewNop())

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:  "Keyboard",
		Price: decimal.NewFromFloat(89.99),
		Stock: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, 10, product.Stock)
	assert.True(t, product.Active)
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	categoryID := uuid.New()
	categoryRepo.On("FindByID", mock.Anything, categoryID).Return(nil, shared.ErrNotFound)

	svc := NewProductService(productRepo, categoryRepo, zap.NewNop())

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:       "Keyboard",
		Price:      decimal.NewFromInt(10),
		CategoryID: &categoryID,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_FOUND", domainErr.Code)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_CustomersSeeActiveOnly(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	filter := shared.DefaultFilter()

	productRepo.On("FindActive", mock.Anything, filter).Return([]catalog.Product{}, nil)

	svc := NewProductService(productRepo, categoryRepo, zap.NewNop())

	_, err := svc.ListProducts(context.Background(), filter, false)
	require.NoError(t, err)
	productRepo.AssertCalled(t, "FindActive", mock.Anything, filter)
	productRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	id := uuid.New()
	productRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	svc := NewProductService(productRepo, categoryRepo, zap.NewNop())

	err := svc.DeleteProduct(context.Background(), id)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("ExistsByName", mock.Anything, "Peripherals").Return(true, nil)

	svc := NewCategoryService(categoryRepo, productRepo, zap.NewNop())

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Peripherals"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}

func TestCategoryService_DeleteCategory_RejectsNonEmpty(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	category, err := catalog.NewCategory("Peripherals", "")
	require.NoError(t, err)

	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	productRepo.On("CountByCategory", mock.Anything, category.ID).Return(int64(3), nil)

	svc := NewCategoryService(categoryRepo, productRepo, zap.NewNop())

	err = svc.DeleteCategory(context.Background(), category.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CATEGORY_NOT_EMPTY", domainErr.Code)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	category, err := catalog.NewCategory("Peripherals", "")
	require.NoError(t, err)

	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	productRepo.On("CountByCategory", mock.Anything, category.ID).Return(int64(0), nil)
	categoryRepo.On("Delete", mock.Anything, category.ID).Return(nil)

	svc := NewCategoryService(categoryRepo, productRepo, zap.NewNop())

	require.NoError(t, svc.DeleteCategory(context.Background(), category.ID))
	categoryRepo.AssertExpectations(t)
}
