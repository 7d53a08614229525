package interfaces

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/application"
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type MockCategoryService struct {
	list     *application.CategoryList
	category *domain.Category
	err      error
}

func (m *MockCategoryService) ListCategories(userID int) (*application.CategoryList, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *MockCategoryService) GetCategory(userID int, kind domain.Kind, categoryID int) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.category, nil
}

func (m *MockCategoryService) CreateCategory(userID int, kind domain.Kind, title string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: 1, Title: title, UserID: userID, Kind: kind}, nil
}

func (m *MockCategoryService) UpdateCategory(userID int, kind domain.Kind, categoryID int, title string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: categoryID, Title: title, UserID: userID, Kind: kind}, nil
}

func (m *MockCategoryService) DeleteCategory(userID int, kind domain.Kind, categoryID int) error {
	return m.err
}
