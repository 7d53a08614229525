package infrastructure

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

const (
	incomeCategoriesCollection  = "income-categories"
	expenseCategoriesCollection = "expense-categories"
)

// categoriesDoc is the on-disk shape: one top-level field named after the
// kind holding the ordered category list.
type categoriesDoc map[string][]domain.Category

type CategoryRepository struct {
	store *storage.Store
}

func NewCategoryRepository(store *storage.Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func categoriesCollection(kind domain.Kind) string {
	if kind == domain.Expense {
		return expenseCategoriesCollection
	}
	return incomeCategoriesCollection
}

func (r *CategoryRepository) load(kind domain.Kind) ([]domain.Category, error) {
	doc := categoriesDoc{}
	if err := r.store.Load(categoriesCollection(kind), &doc); err != nil {
		return nil, financeErrors.NewStorageError(err)
	}
	return doc[string(kind)], nil
}

func (r *CategoryRepository) save(kind domain.Kind, categories []domain.Category) error {
	if categories == nil {
		categories = []domain.Category{}
	}
	doc := categoriesDoc{string(kind): categories}
	if err := r.store.Save(categoriesCollection(kind), doc); err != nil {
		return financeErrors.NewStorageError(err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(kind domain.Kind, userID int) ([]domain.Category, error) {
	categories, err := r.load(kind)
	if err != nil {
		return nil, err
	}
	owned := []domain.Category{}
	for _, category := range categories {
		if category.UserID == userID {
			owned = append(owned, category)
		}
	}
	return owned, nil
}

func (r *CategoryRepository) FindByID(kind domain.Kind, categoryID, userID int) (*domain.Category, error) {
	categories, err := r.load(kind)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == categoryID && category.UserID == userID {
			return &category, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

// Save assigns the next id — max over the entire kind collection plus one,
// not filtered by user — and persists the category.
func (r *CategoryRepository) Save(category *domain.Category) error {
	defer r.store.Lock(categoriesCollection(category.Kind))()

	categories, err := r.load(category.Kind)
	if err != nil {
		return err
	}

	nextID := 1
	for _, existing := range categories {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	category.ID = nextID

	categories = append(categories, *category)
	return r.save(category.Kind, categories)
}

func (r *CategoryRepository) Update(category domain.Category) error {
	defer r.store.Lock(categoriesCollection(category.Kind))()

	categories, err := r.load(category.Kind)
	if err != nil {
		return err
	}
	for i, existing := range categories {
		if existing.ID == category.ID && existing.UserID == category.UserID {
			categories[i] = category
			return r.save(category.Kind, categories)
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (r *CategoryRepository) Delete(kind domain.Kind, categoryID, userID int) error {
	defer r.store.Lock(categoriesCollection(kind))()

	categories, err := r.load(kind)
	if err != nil {
		return err
	}
	for i, existing := range categories {
		if existing.ID == categoryID && existing.UserID == userID {
			categories = append(categories[:i], categories[i+1:]...)
			return r.save(kind, categories)
		}
	}
	return financeErrors.ErrCategoryNotFound
}
