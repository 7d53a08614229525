package application

import (
	"errors"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

// OperationUsageChecker is the slice of the operation ledger the category
// deletion guard needs.
type OperationUsageChecker interface {
	ExistsForCategory(userID int, kind domain.Kind, categoryID int) (bool, error)
}

type CategoryList struct {
	Income  []domain.Category `json:"income"`
	Expense []domain.Category `json:"expense"`
}

type CategoryService struct {
	repo  domain.CategoryRepository
	usage OperationUsageChecker
}

func NewCategoryService(repo domain.CategoryRepository, usage OperationUsageChecker) *CategoryService {
	return &CategoryService{repo: repo, usage: usage}
}

func (s *CategoryService) ListCategories(userID int) (*CategoryList, error) {
	income, err := s.repo.FindByUser(domain.Income, userID)
	if err != nil {
		return nil, err
	}
	expense, err := s.repo.FindByUser(domain.Expense, userID)
	if err != nil {
		return nil, err
	}
	return &CategoryList{Income: income, Expense: expense}, nil
}

func (s *CategoryService) GetCategory(userID int, kind domain.Kind, categoryID int) (*domain.Category, error) {
	if !kind.IsValid() {
		return nil, financeErrors.NewValidationError("valid type (income or expense) is required")
	}
	return s.repo.FindByID(kind, categoryID, userID)
}

func (s *CategoryService) CreateCategory(userID int, kind domain.Kind, title string) (*domain.Category, error) {
	if title == "" || !kind.IsValid() {
		return nil, financeErrors.NewValidationError("title and valid type (income or expense) are required")
	}
	category := &domain.Category{Title: title, UserID: userID, Kind: kind}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(userID int, kind domain.Kind, categoryID int, title string) (*domain.Category, error) {
	if title == "" || !kind.IsValid() {
		return nil, financeErrors.NewValidationError("title and valid type (income or expense) are required")
	}
	category, err := s.repo.FindByID(kind, categoryID, userID)
	if err != nil {
		return nil, err
	}
	category.Title = title
	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category unless any of the caller's operations
// of the same kind still references it.
func (s *CategoryService) DeleteCategory(userID int, kind domain.Kind, categoryID int) error {
	if !kind.IsValid() {
		return financeErrors.NewValidationError("valid type (income or expense) is required")
	}
	if _, err := s.repo.FindByID(kind, categoryID, userID); err != nil {
		return err
	}
	used, err := s.usage.ExistsForCategory(userID, kind, categoryID)
	if err != nil {
		return err
	}
	if used {
		return financeErrors.ErrCategoryInUse
	}
	return s.repo.Delete(kind, categoryID, userID)
}

// CategoryExists backs the operation ledger's referential check.
func (s *CategoryService) CategoryExists(userID int, kind domain.Kind, categoryID int) (bool, error) {
	_, err := s.repo.FindByID(kind, categoryID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, financeErrors.ErrCategoryNotFound) {
		return false, nil
	}
	return false, err
}
